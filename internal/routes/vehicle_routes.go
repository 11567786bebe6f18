package routes

import (
	"github.com/gin-gonic/gin"

	"vtpartner/internal/controllers"
)

func VehicleRoutes(r *gin.RouterGroup, ctl *controllers.Controller) {
	r.POST("/all_vehicles", ctl.AllVehicles)
	r.POST("/add_vehicle", ctl.AddVehicle)
	r.POST("/vehicle_price_list", ctl.VehiclePriceList)
	r.POST("/add_vehicle_price", ctl.AddVehiclePrice)
}
