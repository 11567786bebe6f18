package models

import (
	"time"
)

// Owner is the party that owns the vehicle a driver operates.
// Owners are resolved by mobile number; the unique index keeps one row per number.
type Owner struct {
	OwnerID       uint      `json:"owner_id" gorm:"column:owner_id;primaryKey"`
	OwnerName     string    `json:"owner_name" gorm:"column:owner_name"`
	OwnerMobileNo string    `json:"owner_mobile_no" gorm:"column:owner_mobile_no;uniqueIndex"`
	HouseNo       string    `json:"house_no" gorm:"column:house_no"`
	CityName      string    `json:"city_name" gorm:"column:city_name"`
	Address       string    `json:"address" gorm:"column:address"`
	ProfilePhoto  string    `json:"profile_photo" gorm:"column:profile_photo"`
	CreatedAt     time.Time `json:"time" gorm:"column:time;autoCreateTime"`
}

func (Owner) TableName() string { return "owner_tbl" }
