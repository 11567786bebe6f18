package models

// City is a city the platform operates in.
type City struct {
	CityID       uint    `json:"city_id" gorm:"column:city_id;primaryKey"`
	CityName     string  `json:"city_name" gorm:"column:city_name"`
	Pincode      string  `json:"pincode" gorm:"column:pincode"`
	BgImage      string  `json:"bg_image" gorm:"column:bg_image"`
	Time         float64 `json:"time" gorm:"column:time"`
	PincodeUntil string  `json:"pincode_until" gorm:"column:pincode_until"`
	Description  string  `json:"description" gorm:"column:description"`
	Status       int     `json:"status" gorm:"column:status"`
}

func (City) TableName() string { return "available_citys_tbl" }

type Pincode struct {
	PincodeID     uint    `json:"pincode_id" gorm:"column:pincode_id;primaryKey"`
	Pincode       string  `json:"pincode" gorm:"column:pincode;index"`
	CityID        int64   `json:"city_id" gorm:"column:city_id;index"`
	CreationTime  float64 `json:"creation_time" gorm:"column:creation_time"`
	PincodeStatus int     `json:"pincode_status" gorm:"column:pincode_status"`
}

func (Pincode) TableName() string { return "allowed_pincodes_tbl" }
