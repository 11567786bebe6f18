package routes

import (
	"github.com/gin-gonic/gin"

	"vtpartner/internal/controllers"
)

// WebsiteRoutes are the public, unauthenticated endpoints behind the marketing site.
func WebsiteRoutes(r *gin.RouterGroup, ctl *controllers.Controller) {
	website := r.Group("/website")
	{
		website.POST("/all_services", ctl.AllServices)
		website.POST("/all_sub_categories", ctl.AllSubCategories)
		website.POST("/all_allowed_cities", ctl.AllAllowedCities)
		website.POST("/all_gallery_images", ctl.AllGalleryImages)
		website.POST("/add_enquiry", ctl.AddEnquiry)
	}
}
