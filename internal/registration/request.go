package registration

import (
	"strings"

	"github.com/go-playground/validator/v10"

	"vtpartner/internal/models"
	"vtpartner/internal/validate"
)

// Category-conditional rules. A field tagged with one of these is required
// only when the request's category_id resolves to a matching category.
const (
	tagRequiredVehicle  = "required_vehicle"
	tagRequiredHandyman = "required_handyman"
)

func init() {
	v := validate.Engine()
	if err := v.RegisterValidation(tagRequiredVehicle, requiredFor(models.Category.OwnsVehicle)); err != nil {
		panic(err)
	}
	if err := v.RegisterValidation(tagRequiredHandyman, requiredFor(func(c models.Category) bool {
		return c == models.CategoryHandyman
	})); err != nil {
		panic(err)
	}
}

// requiredFor passes while the category is missing or unknown, leaving those
// cases to the category_id rule and Resolve.
func requiredFor(applies func(models.Category) bool) validator.Func {
	return func(fl validator.FieldLevel) bool {
		f, ok := fl.Parent().Interface().(AgentFields)
		if !ok || !f.CategoryID.Valid {
			return true
		}
		d, err := models.Resolve(f.CategoryID.Int64)
		if err != nil || !applies(d.Category) {
			return true
		}
		return !fl.Field().IsZero()
	}
}

// OwnerInput is the optional owner block of a registration or edit.
type OwnerInput struct {
	Name         string `json:"owner_name"`
	MobileNo     string `json:"owner_mobile_no"`
	HouseNo      string `json:"owner_house_no"`
	CityName     string `json:"owner_city_name"`
	Address      string `json:"owner_address"`
	ProfilePhoto string `json:"owner_photo_url"`
}

// Present reports whether the block should be processed: both name and phone are given.
func (o OwnerInput) Present() bool {
	return strings.TrimSpace(o.Name) != "" && strings.TrimSpace(o.MobileNo) != ""
}

func (o OwnerInput) model() models.Owner {
	return models.Owner{
		OwnerName:     o.Name,
		OwnerMobileNo: o.MobileNo,
		HouseNo:       o.HouseNo,
		CityName:      o.CityName,
		Address:       o.Address,
		ProfilePhoto:  o.ProfilePhoto,
	}
}

// AgentFields are the personal, document and category-specific fields shared by
// registration and edit requests.
type AgentFields struct {
	AgentName  string           `json:"agent_name" binding:"required"`
	MobileNo   string           `json:"mobile_no" binding:"required"`
	Gender     string           `json:"gender" binding:"required"`
	AadharNo   string           `json:"aadhar_no" binding:"required"`
	PanNo      string           `json:"pan_no" binding:"required"`
	CategoryID validate.NullInt `json:"category_id" binding:"required"`
	CityID     validate.NullInt `json:"city_id" binding:"required"`

	FullAddress     string `json:"full_address"`
	ProfilePic      string `json:"profile_pic"`
	AadharCardFront string `json:"aadhar_card_front"`
	AadharCardBack  string `json:"aadhar_card_back"`
	PanCardFront    string `json:"pan_card_front"`
	PanCardBack     string `json:"pan_card_back"`

	// Vehicle categories.
	VehicleID              validate.NullInt `json:"vehicle_id" binding:"required_vehicle"`
	DrivingLicense         string           `json:"driving_license"`
	RCNo                   string           `json:"rc_no"`
	InsuranceNo            string           `json:"insurance_no"`
	NocNo                  string           `json:"noc_no"`
	PollutionCertificateNo string           `json:"pollution_certificate_no"`
	VehiclePlateImage      string           `json:"vehicle_plate_image"`
	VehicleImage           string           `json:"vehicle_image"`
	RCImage                string           `json:"rc_image"`
	InsuranceImage         string           `json:"insurance_image"`

	// Handyman.
	SubCatID  validate.NullInt `json:"sub_cat_id" binding:"required_handyman"`
	ServiceID validate.NullInt `json:"service_id" binding:"required_handyman"`

	OwnerInput
}

// build returns the category's typed model populated from f, with the given status.
func (f AgentFields) build(c models.Category, status int) models.Agent {
	a := c.NewAgent()
	a.SetDisplayName(f.AgentName)
	*a.Profile() = models.AgentProfile{
		MobileNo:        f.MobileNo,
		Gender:          f.Gender,
		AadharNo:        f.AadharNo,
		PanCardNo:       f.PanNo,
		FullAddress:     f.FullAddress,
		CityID:          f.CityID.Int64,
		CategoryID:      f.CategoryID.Int64,
		ProfilePic:      f.ProfilePic,
		AadharCardFront: f.AadharCardFront,
		AadharCardBack:  f.AadharCardBack,
		PanCardFront:    f.PanCardFront,
		PanCardBack:     f.PanCardBack,
		Status:          status,
	}

	switch v := a.(type) {
	case models.VehicleAgent:
		*v.Vehicle() = models.VehicleDetails{
			VehicleID:              f.VehicleID.Int64,
			DrivingLicense:         f.DrivingLicense,
			RCNo:                   f.RCNo,
			InsuranceNo:            f.InsuranceNo,
			NocNo:                  f.NocNo,
			PollutionCertificateNo: f.PollutionCertificateNo,
			VehiclePlateImage:      f.VehiclePlateImage,
			VehicleImage:           f.VehicleImage,
			RCImage:                f.RCImage,
			InsuranceImage:         f.InsuranceImage,
		}
	case *models.Handyman:
		v.SubCatID = f.SubCatID.Int64
		v.ServiceID = f.ServiceID.Int64
	}
	return a
}

// RegisterRequest is the body of a registration against an enquiry.
type RegisterRequest struct {
	EnquiryID validate.NullInt `json:"enquiry_id" binding:"required"`
	AgentFields
	Documents []models.AgentDocument `json:"documents" binding:"omitempty,dive"`
}

// EditDriverRequest is the body of a driver edit.
type EditDriverRequest struct {
	DriverID validate.NullInt `json:"driver_id" binding:"required"`
	AgentFields
}

// EditHandymanRequest is the body of a handyman edit.
type EditHandymanRequest struct {
	HandymanID validate.NullInt `json:"handyman_id" binding:"required"`
	AgentFields
}

// CheckRequest is the body of an existence check.
type CheckRequest struct {
	MobileNo   string           `json:"mobile_no" binding:"required"`
	CategoryID validate.NullInt `json:"category_id" binding:"required"`
	EnquiryID  validate.NullInt `json:"enquiry_id" binding:"required"`
}
