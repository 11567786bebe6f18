package models

import (
	"time"
)

// Enquiry status values the intake workflow moves between. Other values may exist
// in the store and are left untouched.
const (
	EnquiryStatusOpen      = 0
	EnquiryStatusConverted = 2
)

// Enquiry is an inbound request that registration converts into a driver or agent.
type Enquiry struct {
	EnquiryID  uint      `json:"enquiry_id" gorm:"column:enquiry_id;primaryKey"`
	CategoryID int64     `json:"category_id" gorm:"column:category_id"`
	SubCatID   *int64    `json:"sub_cat_id" gorm:"column:sub_cat_id"`
	ServiceID  *int64    `json:"service_id" gorm:"column:service_id"`
	VehicleID  *int64    `json:"vehicle_id" gorm:"column:vehicle_id"`
	CityID     int64     `json:"city_id" gorm:"column:city_id"`
	Name       string    `json:"name" gorm:"column:name"`
	MobileNo   string    `json:"mobile_no" gorm:"column:mobile_no"`
	SourceType string    `json:"source_type" gorm:"column:source_type"`
	TimeAt     time.Time `json:"time_at" gorm:"column:time_at;autoCreateTime"`
	Status     int       `json:"status" gorm:"column:status;index"`
}

func (Enquiry) TableName() string { return "enquirytbl" }
