package routes

import (
	"github.com/gin-gonic/gin"

	"vtpartner/internal/controllers"
)

func ServiceRoutes(r *gin.RouterGroup, ctl *controllers.Controller) {
	r.POST("/all_services", ctl.AllServices)
	r.POST("/all_sub_categories", ctl.AllSubCategories)
	r.POST("/all_other_services", ctl.AllOtherServices)
	r.POST("/all_gallery_images", ctl.AllGalleryImages)
}
