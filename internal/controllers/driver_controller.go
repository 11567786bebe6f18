package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"vtpartner/internal/registration"
	"vtpartner/internal/validate"
)

// RegisterAgent creates a driver or handyman from an enquiry.
// When a step after the insert fails the 500 body still carries driverId.
func (ctl *Controller) RegisterAgent(c *gin.Context) {
	var req registration.RegisterRequest
	if !bind(c, &req) {
		return
	}

	res, err := ctl.registration.Register(c.Request.Context(), req)
	if err != nil {
		failWithAgent(c, err, res.AgentID)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"message":  "Driver registered successfully",
		"driverId": res.AgentID,
	})
}

// CheckDriverExistence reports whether a driver with the phone exists in the
// category. A match also marks the enquiry converted.
func (ctl *Controller) CheckDriverExistence(c *gin.Context) {
	var req registration.CheckRequest
	if !bind(c, &req) {
		return
	}
	ex, err := ctl.registration.CheckDriverExistence(c.Request.Context(), req)
	respondExistence(c, ex, err)
}

// CheckHandymanExistence is CheckDriverExistence for handymen.
func (ctl *Controller) CheckHandymanExistence(c *gin.Context) {
	var req registration.CheckRequest
	if !bind(c, &req) {
		return
	}
	ex, err := ctl.registration.CheckHandymanExistence(c.Request.Context(), req)
	respondExistence(c, ex, err)
}

func respondExistence(c *gin.Context, ex registration.Existence, err error) {
	if err != nil {
		failWithAgent(c, err, ex.AgentID)
		return
	}
	if !ex.Exists {
		c.JSON(http.StatusOK, gin.H{"exists": false})
		return
	}
	c.JSON(http.StatusOK, gin.H{"exists": true, "driverId": ex.AgentID})
}

// ConfirmEnquiryConversion marks an enquiry converted. Repeating it is harmless.
func (ctl *Controller) ConfirmEnquiryConversion(c *gin.Context) {
	var body struct {
		EnquiryID validate.NullInt `json:"enquiry_id" binding:"required"`
	}
	if !bind(c, &body) {
		return
	}
	if err := ctl.registration.ConfirmConversion(c.Request.Context(), body.EnquiryID); err != nil {
		fail(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Enquiry marked as converted"})
}

func (ctl *Controller) EditDriverDetails(c *gin.Context) {
	var req registration.EditDriverRequest
	if !bind(c, &req) {
		return
	}
	if err := ctl.registration.EditDriver(c.Request.Context(), req); err != nil {
		fail(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Driver details updated successfully"})
}

func (ctl *Controller) EditHandymanDetails(c *gin.Context) {
	var req registration.EditHandymanRequest
	if !bind(c, &req) {
		return
	}
	if err := ctl.registration.EditHandyman(c.Request.Context(), req); err != nil {
		fail(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Handyman details updated successfully"})
}

// failWithAgent is fail plus the id of an agent row written before the failure.
func failWithAgent(c *gin.Context, err error, agentID uint) {
	if agentID == 0 {
		fail(c, err)
		return
	}
	failWith(c, err, gin.H{"driverId": agentID})
}
