package controllers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"golang.org/x/crypto/bcrypt"

	"vtpartner/internal/apperr"
	"vtpartner/internal/logger"
	"vtpartner/internal/middleware"
	"vtpartner/internal/models"
)

// Login exchanges an admin's email and password for a bearer token.
// An unknown email and a wrong password are both reported as "No Data Found".
func (ctl *Controller) Login(c *gin.Context) {
	var body struct {
		Email    string `json:"email" binding:"required"`
		Password string `json:"password" binding:"required"`
	}
	if !bind(c, &body) {
		return
	}

	admin, err := ctl.store.FindAdminByEmail(c.Request.Context(), body.Email)
	if err != nil {
		fail(c, storeError(err, "An error occurred while logging in"))
		return
	}
	if err := bcrypt.CompareHashAndPassword([]byte(admin.Password), []byte(body.Password)); err != nil {
		if !errors.Is(err, bcrypt.ErrMismatchedHashAndPassword) {
			logger.FromGin(c).WithError(err).WithField("admin_id", admin.AdminID).Warn("stored password hash unusable")
		}
		fail(c, apperr.NotFound())
		return
	}

	token, err := ctl.jwt.GenerateToken(admin)
	if err != nil {
		fail(c, apperr.Internal("could not generate token", err))
		return
	}

	logger.FromGin(c).WithField("admin_id", admin.AdminID).Info("admin logged in")
	c.JSON(http.StatusOK, gin.H{
		"token": token,
		"user":  prepareAdminResponse(admin),
	})
}

func prepareAdminResponse(admin models.Admin) gin.H {
	return gin.H{
		"id":    admin.AdminID,
		"role":  admin.AdminRole,
		"name":  admin.AdminName,
		"email": admin.Email,
	}
}

// HashPassword returns the bcrypt hash stored for an admin password.
func HashPassword(password string) (string, error) {
	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return "", err
	}
	return string(hash), nil
}

// AllBranches lists the branches of the authenticated admin.
func (ctl *Controller) AllBranches(c *gin.Context) {
	adminID := c.GetUint(middleware.CtxAdminID)
	branches, err := ctl.store.ListBranches(c.Request.Context(), int64(adminID))
	respondList(c, "branches", branches, err)
}
