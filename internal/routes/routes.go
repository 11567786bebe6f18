package routes

import (
	"io"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"vtpartner/internal/controllers"
	"vtpartner/internal/logger"
	"vtpartner/internal/metrics"
	"vtpartner/internal/middleware"
)

// Options carries what the router needs from the process.
type Options struct {
	Controller   *controllers.Controller
	JWT          *middleware.JWT
	LoginLimiter *middleware.RateLimiter
	CORSOrigins  []string
	AccessLog    io.Writer
}

func SetupRouter(o Options) *gin.Engine {
	r := gin.New()
	r.Use(gin.Recovery())
	r.Use(logger.RequestID())
	if o.AccessLog != nil {
		r.Use(logger.AccessLog(o.AccessLog))
	}
	r.Use(middleware.Metrics())
	r.Use(middleware.CORS(o.CORSOrigins))

	OpsRoutes(r, o.Controller)

	v1 := r.Group("/api/v1")
	WebsiteRoutes(v1, o.Controller)

	dashboard := v1.Group("/dashboard")
	AuthRoutes(dashboard, o.Controller, o.LoginLimiter)

	protected := dashboard.Group("")
	protected.Use(o.JWT.RequireAuth())
	AdminRoutes(protected, o.Controller)
	VehicleRoutes(protected, o.Controller)
	ServiceRoutes(protected, o.Controller)
	DriverRoutes(protected, o.Controller)

	return r
}

// OpsRoutes exposes liveness and Prometheus metrics.
func OpsRoutes(r *gin.Engine, ctl *controllers.Controller) {
	metrics.RegisterDefault()
	r.GET("/healthz", ctl.Healthz)
	r.GET("/metrics", gin.WrapH(promhttp.HandlerFor(metrics.Registry, promhttp.HandlerOpts{})))
}
