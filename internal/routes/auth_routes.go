package routes

import (
	"github.com/gin-gonic/gin"

	"vtpartner/internal/controllers"
	"vtpartner/internal/middleware"
)

func AuthRoutes(r *gin.RouterGroup, ctl *controllers.Controller, limiter *middleware.RateLimiter) {
	if limiter != nil {
		r.POST("/login", limiter.Middleware(), ctl.Login)
		return
	}
	r.POST("/login", ctl.Login)
}
