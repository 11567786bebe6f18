package controllers

import (
	"context"
	"fmt"

	"github.com/gin-gonic/gin"

	"vtpartner/internal/models"
	"vtpartner/internal/validate"
)

// AllServices lists every service category with its type name.
func (ctl *Controller) AllServices(c *gin.Context) {
	cachedList(c, ctl.cache, "services", "services_details", ctl.store.ListServices)
}

func (ctl *Controller) AllSubCategories(c *gin.Context) {
	var body struct {
		CategoryID validate.NullInt `json:"category_id" binding:"required"`
	}
	if !bind(c, &body) {
		return
	}
	id := body.CategoryID.Int64
	cachedList(c, ctl.cache, fmt.Sprintf("sub_categories:%d", id), "sub_categories_details",
		func(ctx context.Context) ([]models.SubCategory, error) {
			return ctl.store.ListSubCategories(ctx, id)
		})
}

func (ctl *Controller) AllOtherServices(c *gin.Context) {
	var body struct {
		SubCatID validate.NullInt `json:"sub_cat_id" binding:"required"`
	}
	if !bind(c, &body) {
		return
	}
	id := body.SubCatID.Int64
	cachedList(c, ctl.cache, fmt.Sprintf("other_services:%d", id), "other_services_details",
		func(ctx context.Context) ([]models.OtherService, error) {
			return ctl.store.ListOtherServices(ctx, id)
		})
}

func (ctl *Controller) AllGalleryImages(c *gin.Context) {
	var body struct {
		CategoryID validate.NullInt `json:"category_id" binding:"required"`
	}
	if !bind(c, &body) {
		return
	}
	id := body.CategoryID.Int64
	cachedList(c, ctl.cache, fmt.Sprintf("gallery:%d", id), "gallery_images",
		func(ctx context.Context) ([]models.GalleryImage, error) {
			return ctl.store.ListGalleryImages(ctx, id)
		})
}
