package controllers

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	"vtpartner/internal/apperr"
	"vtpartner/internal/models"
	"vtpartner/internal/validate"
)

func (ctl *Controller) AllVehicles(c *gin.Context) {
	var body struct {
		CategoryID validate.NullInt `json:"category_id" binding:"required"`
	}
	if !bind(c, &body) {
		return
	}
	vehicles, err := ctl.store.ListVehicles(c.Request.Context(), body.CategoryID.Int64)
	respondList(c, "vehicle_details", vehicles, err)
}

// AddVehicle adds a vehicle to a category's catalog. Names are unique per
// category, compared case-insensitively.
func (ctl *Controller) AddVehicle(c *gin.Context) {
	var body struct {
		VehicleName string           `json:"vehicle_name" binding:"required"`
		Weight      *float64         `json:"weight" binding:"required"`
		CategoryID  validate.NullInt `json:"category_id" binding:"required"`
		Description string           `json:"description" binding:"required"`
		Image       string           `json:"image" binding:"required"`
		SizeImage   string           `json:"size_image" binding:"required"`
	}
	if !bind(c, &body) {
		return
	}

	ctx := c.Request.Context()
	name := strings.TrimSpace(body.VehicleName)
	n, err := ctl.store.CountVehiclesByName(ctx, body.CategoryID.Int64, name)
	if err != nil {
		fail(c, apperr.Internal("An error occurred while checking the vehicle", err))
		return
	}
	if n > 0 {
		fail(c, apperr.Conflict("Vehicle already exists"))
		return
	}

	vehicle := models.Vehicle{
		VehicleName: name,
		Weight:      *body.Weight,
		CategoryID:  body.CategoryID.Int64,
		Description: body.Description,
		Image:       body.Image,
		SizeImage:   body.SizeImage,
	}
	if err := ctl.store.CreateVehicle(ctx, &vehicle); err != nil {
		fail(c, apperr.Internal("An error occurred while adding the vehicle", err))
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Vehicle added successfully", "vehicle_id": vehicle.VehicleID})
}

func (ctl *Controller) VehiclePriceList(c *gin.Context) {
	var body struct {
		CityID validate.NullInt `json:"city_id" binding:"required"`
	}
	if !bind(c, &body) {
		return
	}
	prices, err := ctl.store.ListVehiclePrices(c.Request.Context(), body.CityID.Int64)
	respondList(c, "vehicle_prices", prices, err)
}

// AddVehiclePrice sets a vehicle's fare in a city. One price per city and vehicle.
func (ctl *Controller) AddVehiclePrice(c *gin.Context) {
	var body struct {
		CityID             validate.NullInt `json:"city_id" binding:"required"`
		VehicleID          validate.NullInt `json:"vehicle_id" binding:"required"`
		StartingPricePerKm *float64         `json:"starting_price_per_km" binding:"required"`
		MinimumTime        *float64         `json:"minimum_time" binding:"required"`
		PriceTypeID        validate.NullInt `json:"price_type_id" binding:"required"`
	}
	if !bind(c, &body) {
		return
	}

	ctx := c.Request.Context()
	n, err := ctl.store.CountVehiclePrices(ctx, body.CityID.Int64, body.VehicleID.Int64)
	if err != nil {
		fail(c, apperr.Internal("An error occurred while checking the vehicle price", err))
		return
	}
	if n > 0 {
		fail(c, apperr.Conflict("Vehicle price already exists for this city"))
		return
	}

	price := models.VehiclePrice{
		CityID:             body.CityID.Int64,
		VehicleID:          body.VehicleID.Int64,
		StartingPricePerKm: *body.StartingPricePerKm,
		MinimumTime:        *body.MinimumTime,
		PriceTypeID:        body.PriceTypeID.Int64,
	}
	if err := ctl.store.CreateVehiclePrice(ctx, &price); err != nil {
		fail(c, apperr.Internal("An error occurred while adding the vehicle price", err))
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Vehicle price added successfully", "price_id": price.PriceID})
}
