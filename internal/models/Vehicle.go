// internal/models/vehicle.go
package models

// Vehicle is a catalog entry a driver can be registered against.
type Vehicle struct {
	VehicleID   uint    `json:"vehicle_id" gorm:"column:vehicle_id;primaryKey"`
	VehicleName string  `json:"vehicle_name" gorm:"column:vehicle_name"`
	Weight      float64 `json:"weight" gorm:"column:weight"`
	CategoryID  int64   `json:"category_id" gorm:"column:category_id;index"`
	Description string  `json:"description" gorm:"column:description"`
	Image       string  `json:"image" gorm:"column:image"`
	SizeImage   string  `json:"size_image" gorm:"column:size_image"`
	Time        float64 `json:"time" gorm:"column:time"`
}

func (Vehicle) TableName() string { return "vehiclestbl" }

// VehiclePrice is the per-city fare for a vehicle.
type VehiclePrice struct {
	PriceID            uint    `json:"price_id" gorm:"column:price_id;primaryKey"`
	CityID             int64   `json:"city_id" gorm:"column:city_id;index"`
	VehicleID          int64   `json:"vehicle_id" gorm:"column:vehicle_id"`
	StartingPricePerKm float64 `json:"starting_price_per_km" gorm:"column:starting_price_per_km"`
	MinimumTime        float64 `json:"minimum_time" gorm:"column:minimum_time"`
	PriceTypeID        int64   `json:"price_type_id" gorm:"column:price_type_id"`
	Time               float64 `json:"time" gorm:"column:time"`
}

func (VehiclePrice) TableName() string { return "vehicle_city_wise_price_tbl" }
