// Package store is the data access layer the handlers and the registration workflow run on.
package store

import (
	"context"
	"errors"

	"vtpartner/internal/models"
)

var (
	// ErrNotFound is returned when a read matches no rows or an update affects none.
	ErrNotFound = errors.New("no data found")
	// ErrDuplicate is returned when an insert violates a unique constraint.
	ErrDuplicate = errors.New("duplicate key")
	// ErrNoIdentifier is returned when an insert succeeded but no generated id came back.
	ErrNoIdentifier = errors.New("insert returned no identifier")
)

// Store is the persistence interface. Implementations must be safe for concurrent use.
type Store interface {
	// Auth
	FindAdminByEmail(ctx context.Context, email string) (models.Admin, error)
	ListBranches(ctx context.Context, adminID int64) ([]models.Branch, error)

	// Owners
	FindOwnerByPhone(ctx context.Context, phone string) (models.Owner, error)
	CreateOwner(ctx context.Context, owner *models.Owner) error
	UpdateOwner(ctx context.Context, owner *models.Owner) error

	// Drivers and agents
	CreateAgent(ctx context.Context, agent models.Agent) (uint, error)
	UpdateAgent(ctx context.Context, agent models.Agent) error
	FindAgentByPhone(ctx context.Context, category models.Category, phone string) (uint, error)
	FindHandymanByPhone(ctx context.Context, phone string, categoryID int64) (uint, error)
	AttachDocument(ctx context.Context, category models.Category, agentID uint, doc models.AgentDocument) error

	// Enquiries
	CreateEnquiry(ctx context.Context, enquiry *models.Enquiry) error
	ListEnquiries(ctx context.Context, status *int64) ([]models.Enquiry, error)
	// MarkEnquiryConverted moves an open enquiry to converted. Other statuses are left alone.
	MarkEnquiryConverted(ctx context.Context, enquiryID int64) error

	// Cities and pincodes
	ListCities(ctx context.Context) ([]models.City, error)
	UpdateCity(ctx context.Context, city models.City) error
	ListPincodes(ctx context.Context, cityID int64) ([]models.Pincode, error)
	CountPincodes(ctx context.Context, pincode string) (int64, error)
	CreatePincode(ctx context.Context, pincode *models.Pincode) error

	// Vehicles and prices
	ListVehicles(ctx context.Context, categoryID int64) ([]models.Vehicle, error)
	CountVehiclesByName(ctx context.Context, categoryID int64, name string) (int64, error)
	CreateVehicle(ctx context.Context, vehicle *models.Vehicle) error
	ListVehiclePrices(ctx context.Context, cityID int64) ([]models.VehiclePrice, error)
	CountVehiclePrices(ctx context.Context, cityID, vehicleID int64) (int64, error)
	CreateVehiclePrice(ctx context.Context, price *models.VehiclePrice) error

	// Service catalog
	ListServices(ctx context.Context) ([]models.ServiceListing, error)
	ListSubCategories(ctx context.Context, categoryID int64) ([]models.SubCategory, error)
	ListOtherServices(ctx context.Context, subCatID int64) ([]models.OtherService, error)
	ListGalleryImages(ctx context.Context, categoryID int64) ([]models.GalleryImage, error)
}

// nonEmpty turns an empty read result into ErrNotFound.
func nonEmpty[T any](rows []T, err error) ([]T, error) {
	if err != nil {
		return nil, err
	}
	if len(rows) == 0 {
		return nil, ErrNotFound
	}
	return rows, nil
}
