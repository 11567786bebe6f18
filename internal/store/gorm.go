package store

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/lib/pq"
	"gorm.io/gorm"

	"vtpartner/internal/models"
)

// uniqueViolation is the Postgres SQLSTATE for a unique constraint violation.
const uniqueViolation = "23505"

// Gorm implements Store on a gorm handle backed by the shared Postgres pool.
type Gorm struct {
	db *gorm.DB
}

func NewGorm(db *gorm.DB) *Gorm {
	return &Gorm{db: db}
}

// Migrate creates schema (when set) and every table the service reads and writes.
// Tables land in the first schema of the connection's search_path.
func (s *Gorm) Migrate(schema string) error {
	if schema != "" {
		if err := s.db.Exec(schemaDDL(schema)).Error; err != nil {
			return fmt.Errorf("create schema %s: %w", schema, err)
		}
	}
	err := s.db.AutoMigrate(
		&models.Admin{}, &models.Branch{},
		&models.City{}, &models.Pincode{},
		&models.CategoryType{}, &models.ServiceCategory{}, &models.SubCategory{},
		&models.OtherService{}, &models.GalleryImage{},
		&models.Vehicle{}, &models.VehiclePrice{},
		&models.Enquiry{}, &models.Owner{},
		&models.GoodsDriver{}, &models.CabDriver{}, &models.JcbCraneDriver{},
		&models.OtherDriver{}, &models.Handyman{},
	)
	if err != nil {
		return err
	}
	for _, c := range models.Categories() {
		d, _ := models.Resolve(int64(c))
		if err := s.db.Exec(documentTableDDL(d)).Error; err != nil {
			return fmt.Errorf("create %s: %w", d.DocumentTable, err)
		}
	}
	return nil
}

func schemaDDL(schema string) string {
	return "CREATE SCHEMA IF NOT EXISTS " + pq.QuoteIdentifier(schema)
}

func documentTableDDL(d models.Dispatch) string {
	return fmt.Sprintf(`CREATE TABLE IF NOT EXISTS %s (
	document_id BIGSERIAL PRIMARY KEY,
	%s BIGINT NOT NULL,
	document_name TEXT NOT NULL,
	document_image_url TEXT NOT NULL,
	time TIMESTAMPTZ NOT NULL DEFAULT NOW()
)`, d.DocumentTable, d.IDColumn)
}

// translate maps driver errors onto the store's sentinel errors.
func translate(err error) error {
	if err == nil {
		return nil
	}
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return ErrNotFound
	}
	var pgErr *pq.Error
	if errors.As(err, &pgErr) && pgErr.Code == uniqueViolation {
		return fmt.Errorf("%w: %s", ErrDuplicate, pgErr.Constraint)
	}
	return err
}

func epochNow() float64 {
	return float64(time.Now().Unix())
}

// --- Auth ---

func (s *Gorm) FindAdminByEmail(ctx context.Context, email string) (models.Admin, error) {
	var admin models.Admin
	if err := s.db.WithContext(ctx).Where("email = ?", email).First(&admin).Error; err != nil {
		return models.Admin{}, translate(err)
	}
	return admin, nil
}

func (s *Gorm) ListBranches(ctx context.Context, adminID int64) ([]models.Branch, error) {
	var branches []models.Branch
	err := s.db.WithContext(ctx).
		Table("branchtbl").
		Select("branchtbl.*").
		Joins("JOIN admintbl ON admintbl.branch_id = branchtbl.branch_id").
		Where("admintbl.admin_id = ?", adminID).
		Scan(&branches).Error
	return nonEmpty(branches, translate(err))
}

// --- Owners ---

func (s *Gorm) FindOwnerByPhone(ctx context.Context, phone string) (models.Owner, error) {
	var owner models.Owner
	if err := s.db.WithContext(ctx).Where("owner_mobile_no = ?", phone).First(&owner).Error; err != nil {
		return models.Owner{}, translate(err)
	}
	return owner, nil
}

func (s *Gorm) CreateOwner(ctx context.Context, owner *models.Owner) error {
	if err := s.db.WithContext(ctx).Create(owner).Error; err != nil {
		return translate(err)
	}
	if owner.OwnerID == 0 {
		return ErrNoIdentifier
	}
	return nil
}

func (s *Gorm) UpdateOwner(ctx context.Context, owner *models.Owner) error {
	res := s.db.WithContext(ctx).Model(&models.Owner{}).
		Where("owner_id = ?", owner.OwnerID).
		Updates(map[string]any{
			"owner_name":    owner.OwnerName,
			"house_no":      owner.HouseNo,
			"city_name":     owner.CityName,
			"address":       owner.Address,
			"profile_photo": owner.ProfilePhoto,
		})
	if res.Error != nil {
		return translate(res.Error)
	}
	if res.RowsAffected == 0 {
		return ErrNotFound
	}
	return nil
}

// --- Drivers and agents ---

func (s *Gorm) CreateAgent(ctx context.Context, agent models.Agent) (uint, error) {
	if err := s.db.WithContext(ctx).Create(agent).Error; err != nil {
		return 0, translate(err)
	}
	if agent.AgentID() == 0 {
		return 0, ErrNoIdentifier
	}
	return agent.AgentID(), nil
}

func (s *Gorm) UpdateAgent(ctx context.Context, agent models.Agent) error {
	if agent.AgentID() == 0 {
		return ErrNotFound
	}
	d, err := models.Resolve(int64(agent.Category()))
	if err != nil {
		return err
	}
	// Select("*") writes zero values too, so an edit can clear a column.
	res := s.db.WithContext(ctx).Model(agent).
		Select("*").
		Omit(d.IDColumn, "time", "status").
		Updates(agent)
	if res.Error != nil {
		return translate(res.Error)
	}
	if res.RowsAffected == 0 {
		return ErrNotFound
	}
	return nil
}

func (s *Gorm) FindAgentByPhone(ctx context.Context, category models.Category, phone string) (uint, error) {
	d, err := models.Resolve(int64(category))
	if err != nil {
		return 0, err
	}
	var ids []uint
	err = s.db.WithContext(ctx).
		Table(d.Table).
		Where("mobile_no = ?", phone).
		Order(d.IDColumn).
		Limit(1).
		Pluck(d.IDColumn, &ids).Error
	if err != nil {
		return 0, translate(err)
	}
	if len(ids) == 0 {
		return 0, ErrNotFound
	}
	return ids[0], nil
}

func (s *Gorm) FindHandymanByPhone(ctx context.Context, phone string, categoryID int64) (uint, error) {
	var ids []uint
	err := s.db.WithContext(ctx).
		Model(&models.Handyman{}).
		Where("mobile_no = ? AND category_id = ?", phone, categoryID).
		Order("handyman_id").
		Limit(1).
		Pluck("handyman_id", &ids).Error
	if err != nil {
		return 0, translate(err)
	}
	if len(ids) == 0 {
		return 0, ErrNotFound
	}
	return ids[0], nil
}

func (s *Gorm) AttachDocument(ctx context.Context, category models.Category, agentID uint, doc models.AgentDocument) error {
	d, err := models.Resolve(int64(category))
	if err != nil {
		return err
	}
	row := map[string]any{
		d.IDColumn:           agentID,
		"document_name":      doc.Name,
		"document_image_url": doc.ImageURL,
		"time":               time.Now(),
	}
	return translate(s.db.WithContext(ctx).Table(d.DocumentTable).Create(row).Error)
}

// --- Enquiries ---

func (s *Gorm) CreateEnquiry(ctx context.Context, enquiry *models.Enquiry) error {
	enquiry.Status = models.EnquiryStatusOpen
	if err := s.db.WithContext(ctx).Create(enquiry).Error; err != nil {
		return translate(err)
	}
	if enquiry.EnquiryID == 0 {
		return ErrNoIdentifier
	}
	return nil
}

func (s *Gorm) ListEnquiries(ctx context.Context, status *int64) ([]models.Enquiry, error) {
	var enquiries []models.Enquiry
	q := s.db.WithContext(ctx).Model(&models.Enquiry{})
	if status != nil {
		q = q.Where("status = ?", *status)
	}
	err := q.Order("enquiry_id DESC").Find(&enquiries).Error
	return nonEmpty(enquiries, translate(err))
}

// MarkEnquiryConverted moves an open enquiry to converted. Any other status,
// converted included, is left as it is.
func (s *Gorm) MarkEnquiryConverted(ctx context.Context, enquiryID int64) error {
	db := s.db.WithContext(ctx)
	res := db.Model(&models.Enquiry{}).
		Where("enquiry_id = ? AND status = ?", enquiryID, models.EnquiryStatusOpen).
		Update("status", models.EnquiryStatusConverted)
	if res.Error != nil {
		return translate(res.Error)
	}
	if res.RowsAffected > 0 {
		return nil
	}
	var n int64
	if err := db.Model(&models.Enquiry{}).Where("enquiry_id = ?", enquiryID).Count(&n).Error; err != nil {
		return translate(err)
	}
	if n == 0 {
		return ErrNotFound
	}
	return nil
}

// --- Cities and pincodes ---

func (s *Gorm) ListCities(ctx context.Context) ([]models.City, error) {
	var cities []models.City
	err := s.db.WithContext(ctx).Order("city_id").Find(&cities).Error
	return nonEmpty(cities, translate(err))
}

func (s *Gorm) UpdateCity(ctx context.Context, city models.City) error {
	res := s.db.WithContext(ctx).Model(&models.City{}).
		Where("city_id = ?", city.CityID).
		Updates(map[string]any{
			"city_name":     city.CityName,
			"pincode":       city.Pincode,
			"bg_image":      city.BgImage,
			"pincode_until": city.PincodeUntil,
			"description":   city.Description,
			"time":          gorm.Expr("EXTRACT(EPOCH FROM CURRENT_TIMESTAMP)"),
		})
	if res.Error != nil {
		return translate(res.Error)
	}
	if res.RowsAffected == 0 {
		return ErrNotFound
	}
	return nil
}

func (s *Gorm) ListPincodes(ctx context.Context, cityID int64) ([]models.Pincode, error) {
	var pincodes []models.Pincode
	err := s.db.WithContext(ctx).Where("city_id = ?", cityID).Order("pincode").Find(&pincodes).Error
	return nonEmpty(pincodes, translate(err))
}

func (s *Gorm) CountPincodes(ctx context.Context, pincode string) (int64, error) {
	var n int64
	err := s.db.WithContext(ctx).Model(&models.Pincode{}).Where("pincode = ?", pincode).Count(&n).Error
	return n, translate(err)
}

func (s *Gorm) CreatePincode(ctx context.Context, pincode *models.Pincode) error {
	pincode.CreationTime = epochNow()
	return translate(s.db.WithContext(ctx).Create(pincode).Error)
}

// --- Vehicles and prices ---

func (s *Gorm) ListVehicles(ctx context.Context, categoryID int64) ([]models.Vehicle, error) {
	var vehicles []models.Vehicle
	err := s.db.WithContext(ctx).Where("category_id = ?", categoryID).Order("vehicle_id").Find(&vehicles).Error
	return nonEmpty(vehicles, translate(err))
}

func (s *Gorm) CountVehiclesByName(ctx context.Context, categoryID int64, name string) (int64, error) {
	var n int64
	err := s.db.WithContext(ctx).Model(&models.Vehicle{}).
		Where("category_id = ? AND LOWER(vehicle_name) = LOWER(?)", categoryID, name).
		Count(&n).Error
	return n, translate(err)
}

func (s *Gorm) CreateVehicle(ctx context.Context, vehicle *models.Vehicle) error {
	vehicle.Time = epochNow()
	return translate(s.db.WithContext(ctx).Create(vehicle).Error)
}

func (s *Gorm) ListVehiclePrices(ctx context.Context, cityID int64) ([]models.VehiclePrice, error) {
	var prices []models.VehiclePrice
	err := s.db.WithContext(ctx).Where("city_id = ?", cityID).Order("price_id").Find(&prices).Error
	return nonEmpty(prices, translate(err))
}

func (s *Gorm) CountVehiclePrices(ctx context.Context, cityID, vehicleID int64) (int64, error) {
	var n int64
	err := s.db.WithContext(ctx).Model(&models.VehiclePrice{}).
		Where("city_id = ? AND vehicle_id = ?", cityID, vehicleID).
		Count(&n).Error
	return n, translate(err)
}

func (s *Gorm) CreateVehiclePrice(ctx context.Context, price *models.VehiclePrice) error {
	price.Time = epochNow()
	return translate(s.db.WithContext(ctx).Create(price).Error)
}

// --- Service catalog ---

func (s *Gorm) ListServices(ctx context.Context) ([]models.ServiceListing, error) {
	var services []models.ServiceListing
	err := s.db.WithContext(ctx).
		Table("categorytbl").
		Select("categorytbl.category_id, categorytbl.category_name, categorytbl.category_type_id, " +
			"categorytbl.category_image, category_type_tbl.category_type, categorytbl.epoch").
		Joins("JOIN category_type_tbl ON category_type_tbl.cat_type_id = categorytbl.category_type_id").
		Order("categorytbl.category_id ASC").
		Scan(&services).Error
	return nonEmpty(services, translate(err))
}

func (s *Gorm) ListSubCategories(ctx context.Context, categoryID int64) ([]models.SubCategory, error) {
	var subs []models.SubCategory
	err := s.db.WithContext(ctx).Where("category_id = ?", categoryID).Order("sub_cat_id").Find(&subs).Error
	return nonEmpty(subs, translate(err))
}

func (s *Gorm) ListOtherServices(ctx context.Context, subCatID int64) ([]models.OtherService, error) {
	var services []models.OtherService
	err := s.db.WithContext(ctx).Where("sub_cat_id = ?", subCatID).Order("service_id").Find(&services).Error
	return nonEmpty(services, translate(err))
}

func (s *Gorm) ListGalleryImages(ctx context.Context, categoryID int64) ([]models.GalleryImage, error) {
	var images []models.GalleryImage
	err := s.db.WithContext(ctx).Where("category_id = ?", categoryID).Order("gallery_id DESC").Find(&images).Error
	return nonEmpty(images, translate(err))
}
