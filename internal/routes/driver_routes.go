package routes

import (
	"github.com/gin-gonic/gin"

	"vtpartner/internal/controllers"
)

func DriverRoutes(r *gin.RouterGroup, ctl *controllers.Controller) {
	r.POST("/register_agent", ctl.RegisterAgent)
	r.POST("/check_driver_existence", ctl.CheckDriverExistence)
	r.POST("/check_handyman_existence", ctl.CheckHandymanExistence)
	r.POST("/confirm_enquiry_conversion", ctl.ConfirmEnquiryConversion)
	r.POST("/edit_driver_details", ctl.EditDriverDetails)
	r.POST("/edit_handyman_details", ctl.EditHandymanDetails)
}
