package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"vtpartner/internal/apperr"
	"vtpartner/internal/logger"
	"vtpartner/internal/models"
	"vtpartner/internal/validate"
)

// AllEnquiries lists enquiries, newest first, optionally filtered by status.
func (ctl *Controller) AllEnquiries(c *gin.Context) {
	var body struct {
		Status validate.NullInt `json:"status"`
	}
	if !bind(c, &body) {
		return
	}
	enquiries, err := ctl.store.ListEnquiries(c.Request.Context(), body.Status.Ptr())
	respondList(c, "enquiries", enquiries, err)
}

// AddEnquiry is the public intake form. New enquiries start open.
func (ctl *Controller) AddEnquiry(c *gin.Context) {
	var body struct {
		CategoryID validate.NullInt `json:"category_id" binding:"required"`
		SubCatID   validate.NullInt `json:"sub_cat_id"`
		ServiceID  validate.NullInt `json:"service_id"`
		VehicleID  validate.NullInt `json:"vehicle_id"`
		CityID     validate.NullInt `json:"city_id" binding:"required"`
		Name       string           `json:"name" binding:"required"`
		MobileNo   string           `json:"mobile_no" binding:"required"`
		SourceType string           `json:"source_type" binding:"required"`
	}
	if !bind(c, &body) {
		return
	}

	enquiry := models.Enquiry{
		CategoryID: body.CategoryID.Int64,
		SubCatID:   body.SubCatID.Ptr(),
		ServiceID:  body.ServiceID.Ptr(),
		VehicleID:  body.VehicleID.Ptr(),
		CityID:     body.CityID.Int64,
		Name:       body.Name,
		MobileNo:   body.MobileNo,
		SourceType: body.SourceType,
	}
	if err := ctl.store.CreateEnquiry(c.Request.Context(), &enquiry); err != nil {
		fail(c, apperr.Internal("An error occurred while saving the enquiry", err))
		return
	}
	logger.FromGin(c).WithField("enquiry_id", enquiry.EnquiryID).Info("enquiry received")
	c.JSON(http.StatusOK, gin.H{"message": "Enquiry submitted successfully", "enquiry_id": enquiry.EnquiryID})
}
