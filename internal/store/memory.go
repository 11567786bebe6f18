package store

import (
	"context"
	"reflect"
	"sort"
	"strings"
	"sync"
	"time"

	"vtpartner/internal/models"
)

// Memory is an in-process Store for local development and tests.
// It follows the same not-found and uniqueness rules as the Postgres store.
type Memory struct {
	mu  sync.Mutex
	seq map[string]uint

	admins        []models.Admin
	branches      []models.Branch
	owners        map[uint]models.Owner
	agents        map[models.Category]map[uint]models.Agent
	documents     map[models.Category]map[uint][]models.AgentDocument
	enquiries     map[uint]models.Enquiry
	cities        map[uint]models.City
	pincodes      []models.Pincode
	vehicles      []models.Vehicle
	prices        []models.VehiclePrice
	services      []models.ServiceListing
	subCategories []models.SubCategory
	otherServices []models.OtherService
	gallery       []models.GalleryImage
}

func NewMemory() *Memory {
	return &Memory{
		seq:       map[string]uint{},
		owners:    map[uint]models.Owner{},
		agents:    map[models.Category]map[uint]models.Agent{},
		documents: map[models.Category]map[uint][]models.AgentDocument{},
		enquiries: map[uint]models.Enquiry{},
		cities:    map[uint]models.City{},
	}
}

func (m *Memory) next(name string) uint {
	m.seq[name]++
	return m.seq[name]
}

// cloneAgent copies the struct behind an Agent so stored rows do not alias caller values.
func cloneAgent(a models.Agent) models.Agent {
	v := reflect.ValueOf(a).Elem()
	c := reflect.New(v.Type())
	c.Elem().Set(v)
	return c.Interface().(models.Agent)
}

// --- Seeding and inspection ---

func (m *Memory) AddAdmin(a models.Admin) models.Admin {
	m.mu.Lock()
	defer m.mu.Unlock()
	a.AdminID = m.next("admin")
	m.admins = append(m.admins, a)
	return a
}

func (m *Memory) AddBranch(b models.Branch) models.Branch {
	m.mu.Lock()
	defer m.mu.Unlock()
	b.BranchID = m.next("branch")
	m.branches = append(m.branches, b)
	return b
}

func (m *Memory) AddCity(c models.City) models.City {
	m.mu.Lock()
	defer m.mu.Unlock()
	c.CityID = m.next("city")
	m.cities[c.CityID] = c
	return c
}

func (m *Memory) AddService(s models.ServiceListing) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.services = append(m.services, s)
}

func (m *Memory) AddSubCategory(s models.SubCategory) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.subCategories = append(m.subCategories, s)
}

func (m *Memory) AddOtherService(s models.OtherService) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.otherServices = append(m.otherServices, s)
}

func (m *Memory) AddGalleryImage(g models.GalleryImage) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.gallery = append(m.gallery, g)
}

// AddEnquiry stores e as given. A zero EnquiryID is assigned the next id.
func (m *Memory) AddEnquiry(e models.Enquiry) models.Enquiry {
	m.mu.Lock()
	defer m.mu.Unlock()
	if e.EnquiryID == 0 {
		e.EnquiryID = m.next("enquiry")
	} else if e.EnquiryID > m.seq["enquiry"] {
		m.seq["enquiry"] = e.EnquiryID
	}
	m.enquiries[e.EnquiryID] = e
	return e
}

// Enquiry returns the stored enquiry with the given id.
func (m *Memory) Enquiry(id uint) (models.Enquiry, bool) {
	m.mu.Lock()
	defer m.mu.Unlock()
	e, ok := m.enquiries[id]
	return e, ok
}

// SetEnquiryStatus overwrites an enquiry's status.
func (m *Memory) SetEnquiryStatus(id uint, status int) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if e, ok := m.enquiries[id]; ok {
		e.Status = status
		m.enquiries[id] = e
	}
}

// Owners returns every stored owner ordered by id.
func (m *Memory) Owners() []models.Owner {
	m.mu.Lock()
	defer m.mu.Unlock()
	out := make([]models.Owner, 0, len(m.owners))
	for _, o := range m.owners {
		out = append(out, o)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].OwnerID < out[j].OwnerID })
	return out
}

// Agent returns a copy of the stored agent row.
func (m *Memory) Agent(category models.Category, id uint) (models.Agent, bool) {
	m.mu.Lock()
	defer m.mu.Unlock()
	a, ok := m.agents[category][id]
	if !ok {
		return nil, false
	}
	return cloneAgent(a), true
}

// AgentCount returns how many agents of the category are stored.
func (m *Memory) AgentCount(category models.Category) int {
	m.mu.Lock()
	defer m.mu.Unlock()
	return len(m.agents[category])
}

// Documents returns the documents attached to an agent.
func (m *Memory) Documents(category models.Category, agentID uint) []models.AgentDocument {
	m.mu.Lock()
	defer m.mu.Unlock()
	return append([]models.AgentDocument(nil), m.documents[category][agentID]...)
}

// --- Auth ---

func (m *Memory) FindAdminByEmail(_ context.Context, email string) (models.Admin, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	for _, a := range m.admins {
		if a.Email == email {
			return a, nil
		}
	}
	return models.Admin{}, ErrNotFound
}

func (m *Memory) ListBranches(_ context.Context, adminID int64) ([]models.Branch, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	var out []models.Branch
	for _, a := range m.admins {
		if int64(a.AdminID) != adminID {
			continue
		}
		for _, b := range m.branches {
			if int64(b.BranchID) == a.BranchID {
				out = append(out, b)
			}
		}
	}
	return nonEmpty(out, nil)
}

// --- Owners ---

func (m *Memory) FindOwnerByPhone(_ context.Context, phone string) (models.Owner, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	for _, o := range m.owners {
		if o.OwnerMobileNo == phone {
			return o, nil
		}
	}
	return models.Owner{}, ErrNotFound
}

func (m *Memory) CreateOwner(_ context.Context, owner *models.Owner) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	for _, o := range m.owners {
		if o.OwnerMobileNo == owner.OwnerMobileNo {
			return ErrDuplicate
		}
	}
	owner.OwnerID = m.next("owner")
	owner.CreatedAt = time.Now()
	m.owners[owner.OwnerID] = *owner
	return nil
}

func (m *Memory) UpdateOwner(_ context.Context, owner *models.Owner) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	cur, ok := m.owners[owner.OwnerID]
	if !ok {
		return ErrNotFound
	}
	cur.OwnerName = owner.OwnerName
	cur.HouseNo = owner.HouseNo
	cur.CityName = owner.CityName
	cur.Address = owner.Address
	cur.ProfilePhoto = owner.ProfilePhoto
	m.owners[owner.OwnerID] = cur
	return nil
}

// --- Drivers and agents ---

func (m *Memory) CreateAgent(_ context.Context, agent models.Agent) (uint, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	c := agent.Category()
	if m.agents[c] == nil {
		m.agents[c] = map[uint]models.Agent{}
	}
	agent.SetAgentID(m.next("agent:" + c.String()))
	agent.Profile().CreatedAt = time.Now()
	m.agents[c][agent.AgentID()] = cloneAgent(agent)
	return agent.AgentID(), nil
}

func (m *Memory) UpdateAgent(_ context.Context, agent models.Agent) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	c := agent.Category()
	cur, ok := m.agents[c][agent.AgentID()]
	if !ok {
		return ErrNotFound
	}
	next := cloneAgent(agent)
	next.Profile().CreatedAt = cur.Profile().CreatedAt
	next.Profile().Status = cur.Profile().Status
	m.agents[c][agent.AgentID()] = next
	return nil
}

func (m *Memory) FindAgentByPhone(_ context.Context, category models.Category, phone string) (uint, error) {
	if _, err := models.Resolve(int64(category)); err != nil {
		return 0, err
	}
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.lowestAgentID(category, func(a models.Agent) bool {
		return a.Profile().MobileNo == phone
	})
}

func (m *Memory) FindHandymanByPhone(_ context.Context, phone string, categoryID int64) (uint, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.lowestAgentID(models.CategoryHandyman, func(a models.Agent) bool {
		return a.Profile().MobileNo == phone && a.Profile().CategoryID == categoryID
	})
}

func (m *Memory) lowestAgentID(category models.Category, match func(models.Agent) bool) (uint, error) {
	var found uint
	for id, a := range m.agents[category] {
		if match(a) && (found == 0 || id < found) {
			found = id
		}
	}
	if found == 0 {
		return 0, ErrNotFound
	}
	return found, nil
}

func (m *Memory) AttachDocument(_ context.Context, category models.Category, agentID uint, doc models.AgentDocument) error {
	if _, err := models.Resolve(int64(category)); err != nil {
		return err
	}
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.documents[category] == nil {
		m.documents[category] = map[uint][]models.AgentDocument{}
	}
	m.documents[category][agentID] = append(m.documents[category][agentID], doc)
	return nil
}

// --- Enquiries ---

func (m *Memory) CreateEnquiry(_ context.Context, enquiry *models.Enquiry) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	enquiry.EnquiryID = m.next("enquiry")
	enquiry.Status = models.EnquiryStatusOpen
	enquiry.TimeAt = time.Now()
	m.enquiries[enquiry.EnquiryID] = *enquiry
	return nil
}

func (m *Memory) ListEnquiries(_ context.Context, status *int64) ([]models.Enquiry, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	var out []models.Enquiry
	for _, e := range m.enquiries {
		if status == nil || int64(e.Status) == *status {
			out = append(out, e)
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i].EnquiryID > out[j].EnquiryID })
	return nonEmpty(out, nil)
}

func (m *Memory) MarkEnquiryConverted(_ context.Context, enquiryID int64) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	e, ok := m.enquiries[uint(enquiryID)]
	if !ok {
		return ErrNotFound
	}
	if e.Status == models.EnquiryStatusOpen {
		e.Status = models.EnquiryStatusConverted
		m.enquiries[e.EnquiryID] = e
	}
	return nil
}

// --- Cities and pincodes ---

func (m *Memory) ListCities(_ context.Context) ([]models.City, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	out := make([]models.City, 0, len(m.cities))
	for _, c := range m.cities {
		out = append(out, c)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].CityID < out[j].CityID })
	return nonEmpty(out, nil)
}

func (m *Memory) UpdateCity(_ context.Context, city models.City) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	cur, ok := m.cities[city.CityID]
	if !ok {
		return ErrNotFound
	}
	cur.CityName = city.CityName
	cur.Pincode = city.Pincode
	cur.BgImage = city.BgImage
	cur.PincodeUntil = city.PincodeUntil
	cur.Description = city.Description
	cur.Time = epochNow()
	m.cities[city.CityID] = cur
	return nil
}

func (m *Memory) ListPincodes(_ context.Context, cityID int64) ([]models.Pincode, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	var out []models.Pincode
	for _, p := range m.pincodes {
		if p.CityID == cityID {
			out = append(out, p)
		}
	}
	return nonEmpty(out, nil)
}

func (m *Memory) CountPincodes(_ context.Context, pincode string) (int64, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	var n int64
	for _, p := range m.pincodes {
		if p.Pincode == pincode {
			n++
		}
	}
	return n, nil
}

func (m *Memory) CreatePincode(_ context.Context, pincode *models.Pincode) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	pincode.PincodeID = m.next("pincode")
	pincode.CreationTime = epochNow()
	m.pincodes = append(m.pincodes, *pincode)
	return nil
}

// --- Vehicles and prices ---

func (m *Memory) ListVehicles(_ context.Context, categoryID int64) ([]models.Vehicle, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	var out []models.Vehicle
	for _, v := range m.vehicles {
		if v.CategoryID == categoryID {
			out = append(out, v)
		}
	}
	return nonEmpty(out, nil)
}

func (m *Memory) CountVehiclesByName(_ context.Context, categoryID int64, name string) (int64, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	var n int64
	for _, v := range m.vehicles {
		if v.CategoryID == categoryID && strings.EqualFold(v.VehicleName, name) {
			n++
		}
	}
	return n, nil
}

func (m *Memory) CreateVehicle(_ context.Context, vehicle *models.Vehicle) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	vehicle.VehicleID = m.next("vehicle")
	vehicle.Time = epochNow()
	m.vehicles = append(m.vehicles, *vehicle)
	return nil
}

func (m *Memory) ListVehiclePrices(_ context.Context, cityID int64) ([]models.VehiclePrice, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	var out []models.VehiclePrice
	for _, p := range m.prices {
		if p.CityID == cityID {
			out = append(out, p)
		}
	}
	return nonEmpty(out, nil)
}

func (m *Memory) CountVehiclePrices(_ context.Context, cityID, vehicleID int64) (int64, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	var n int64
	for _, p := range m.prices {
		if p.CityID == cityID && p.VehicleID == vehicleID {
			n++
		}
	}
	return n, nil
}

func (m *Memory) CreateVehiclePrice(_ context.Context, price *models.VehiclePrice) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	price.PriceID = m.next("price")
	price.Time = epochNow()
	m.prices = append(m.prices, *price)
	return nil
}

// --- Service catalog ---

func (m *Memory) ListServices(_ context.Context) ([]models.ServiceListing, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	out := append([]models.ServiceListing(nil), m.services...)
	sort.Slice(out, func(i, j int) bool { return out[i].CategoryID < out[j].CategoryID })
	return nonEmpty(out, nil)
}

func (m *Memory) ListSubCategories(_ context.Context, categoryID int64) ([]models.SubCategory, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	var out []models.SubCategory
	for _, s := range m.subCategories {
		if s.CategoryID == categoryID {
			out = append(out, s)
		}
	}
	return nonEmpty(out, nil)
}

func (m *Memory) ListOtherServices(_ context.Context, subCatID int64) ([]models.OtherService, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	var out []models.OtherService
	for _, s := range m.otherServices {
		if s.SubCatID == subCatID {
			out = append(out, s)
		}
	}
	return nonEmpty(out, nil)
}

func (m *Memory) ListGalleryImages(_ context.Context, categoryID int64) ([]models.GalleryImage, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	var out []models.GalleryImage
	for _, g := range m.gallery {
		if g.CategoryID == categoryID {
			out = append(out, g)
		}
	}
	return nonEmpty(out, nil)
}
