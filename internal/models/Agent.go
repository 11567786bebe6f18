package models

import (
	"time"
)

// Agent status markers. Rows created through enquiry registration start pending;
// verified rows are written by the verification flow, never by registration.
const (
	AgentStatusPending  = 0
	AgentStatusVerified = 1
)

// Agent is implemented by every driver/agent variant model.
type Agent interface {
	Category() Category
	AgentID() uint
	SetAgentID(id uint)
	DisplayName() string
	SetDisplayName(name string)
	Profile() *AgentProfile
}

// VehicleAgent is implemented by the variants that drive an owner's vehicle.
type VehicleAgent interface {
	Agent
	Vehicle() *VehicleDetails
}

// AgentProfile holds the personal and identity document fields every variant shares.
type AgentProfile struct {
	MobileNo        string    `json:"mobile_no" gorm:"column:mobile_no;index"`
	Gender          string    `json:"gender" gorm:"column:gender"`
	AadharNo        string    `json:"aadhar_no" gorm:"column:aadhar_no"`
	PanCardNo       string    `json:"pan_card_no" gorm:"column:pan_card_no"`
	FullAddress     string    `json:"full_address" gorm:"column:full_address"`
	CityID          int64     `json:"city_id" gorm:"column:city_id"`
	CategoryID      int64     `json:"category_id" gorm:"column:category_id"`
	ProfilePic      string    `json:"profile_pic" gorm:"column:profile_pic"`
	AadharCardFront string    `json:"aadhar_card_front" gorm:"column:aadhar_card_front"`
	AadharCardBack  string    `json:"aadhar_card_back" gorm:"column:aadhar_card_back"`
	PanCardFront    string    `json:"pan_card_front" gorm:"column:pan_card_front"`
	PanCardBack     string    `json:"pan_card_back" gorm:"column:pan_card_back"`
	Status          int       `json:"status" gorm:"column:status"`
	CreatedAt       time.Time `json:"time" gorm:"column:time;autoCreateTime"`
}

// VehicleDetails is the vehicle and owner block of the vehicle-driving variants.
type VehicleDetails struct {
	VehicleID              int64  `json:"vehicle_id" gorm:"column:vehicle_id"`
	OwnerID                *uint  `json:"owner_id" gorm:"column:owner_id"`
	DrivingLicense         string `json:"driving_license" gorm:"column:driving_license"`
	RCNo                   string `json:"rc_no" gorm:"column:rc_no"`
	InsuranceNo            string `json:"insurance_no" gorm:"column:insurance_no"`
	NocNo                  string `json:"noc_no" gorm:"column:noc_no"`
	PollutionCertificateNo string `json:"pollution_certificate_no" gorm:"column:pollution_certificate_no"`
	VehiclePlateImage      string `json:"vehicle_plate_image" gorm:"column:vehicle_plate_image"`
	VehicleImage           string `json:"vehicle_image" gorm:"column:vehicle_image"`
	RCImage                string `json:"rc_image" gorm:"column:rc_image"`
	InsuranceImage         string `json:"insurance_image" gorm:"column:insurance_image"`
}

// AgentDocument is a supplementary (label, image) pair attached after the agent row exists.
// It is stored in the category's document table, keyed by the category's identifier column.
type AgentDocument struct {
	Name     string `json:"document_name" binding:"required"`
	ImageURL string `json:"document_image_url" binding:"required"`
}
