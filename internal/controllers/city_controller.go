package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"vtpartner/internal/apperr"
	"vtpartner/internal/models"
	"vtpartner/internal/validate"
)

const cacheKeyCities = "cities"

func (ctl *Controller) AllAllowedCities(c *gin.Context) {
	cachedList(c, ctl.cache, cacheKeyCities, "cities", ctl.store.ListCities)
}

func (ctl *Controller) UpdateAllowedCity(c *gin.Context) {
	var body struct {
		CityID       validate.NullInt `json:"city_id" binding:"required"`
		CityName     string           `json:"city_name" binding:"required"`
		Pincode      string           `json:"pincode" binding:"required"`
		BgImage      string           `json:"bg_image" binding:"required"`
		PincodeUntil string           `json:"pincode_until" binding:"required"`
		Description  string           `json:"description" binding:"required"`
	}
	if !bind(c, &body) {
		return
	}

	city := models.City{
		CityID:       uint(body.CityID.Int64),
		CityName:     body.CityName,
		Pincode:      body.Pincode,
		BgImage:      body.BgImage,
		PincodeUntil: body.PincodeUntil,
		Description:  body.Description,
	}
	if err := ctl.store.UpdateCity(c.Request.Context(), city); err != nil {
		fail(c, storeError(err, "An error occurred while updating the city"))
		return
	}
	ctl.cache.Invalidate(c.Request.Context(), cacheKeyCities)
	c.JSON(http.StatusOK, gin.H{"message": "City updated successfully"})
}

func (ctl *Controller) AllPincodes(c *gin.Context) {
	var body struct {
		CityID validate.NullInt `json:"city_id" binding:"required"`
	}
	if !bind(c, &body) {
		return
	}
	pincodes, err := ctl.store.ListPincodes(c.Request.Context(), body.CityID.Int64)
	respondList(c, "pincodes", pincodes, err)
}

// AddNewPincode adds a serviceable pincode. The duplicate check is advisory.
func (ctl *Controller) AddNewPincode(c *gin.Context) {
	var body struct {
		CityID        validate.NullInt `json:"city_id" binding:"required"`
		Pincode       string           `json:"pincode" binding:"required"`
		PincodeStatus validate.NullInt `json:"pincode_status" binding:"required"`
	}
	if !bind(c, &body) {
		return
	}

	ctx := c.Request.Context()
	n, err := ctl.store.CountPincodes(ctx, body.Pincode)
	if err != nil {
		fail(c, apperr.Internal("An error occurred while checking the pincode", err))
		return
	}
	if n > 0 {
		fail(c, apperr.Conflict("Pincode already exists"))
		return
	}

	pincode := models.Pincode{
		Pincode:       body.Pincode,
		CityID:        body.CityID.Int64,
		PincodeStatus: int(body.PincodeStatus.Int64),
	}
	if err := ctl.store.CreatePincode(ctx, &pincode); err != nil {
		fail(c, apperr.Internal("An error occurred while adding the pincode", err))
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Pincode added successfully", "pincode_id": pincode.PincodeID})
}
