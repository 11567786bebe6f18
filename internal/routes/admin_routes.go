package routes

import (
	"github.com/gin-gonic/gin"

	"vtpartner/internal/controllers"
)

func AdminRoutes(r *gin.RouterGroup, ctl *controllers.Controller) {
	r.POST("/all_branches", ctl.AllBranches)
	r.POST("/all_allowed_cities", ctl.AllAllowedCities)
	r.POST("/update_allowed_city", ctl.UpdateAllowedCity)
	r.POST("/all_pincodes", ctl.AllPincodes)
	r.POST("/add_new_pincode", ctl.AddNewPincode)
	r.POST("/all_enquiries", ctl.AllEnquiries)
}
