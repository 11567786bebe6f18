package registration

import (
	"context"
	"encoding/json"
	"errors"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"vtpartner/internal/apperr"
	"vtpartner/internal/models"
	"vtpartner/internal/store"
	"vtpartner/internal/validate"
)

// faultyStore wraps the memory store, counts writes and injects failures.
type faultyStore struct {
	*store.Memory

	mu                sync.Mutex
	writes            int
	staleOwnerLookups int
	createAgentErr    error
	attachErr         error
	markErr           error
}

func newFaultyStore() *faultyStore {
	return &faultyStore{Memory: store.NewMemory()}
}

func (f *faultyStore) wrote() {
	f.mu.Lock()
	f.writes++
	f.mu.Unlock()
}

func (f *faultyStore) Writes() int {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.writes
}

func (f *faultyStore) FindOwnerByPhone(ctx context.Context, phone string) (models.Owner, error) {
	f.mu.Lock()
	stale := f.staleOwnerLookups > 0
	if stale {
		f.staleOwnerLookups--
	}
	f.mu.Unlock()
	if stale {
		return models.Owner{}, store.ErrNotFound
	}
	return f.Memory.FindOwnerByPhone(ctx, phone)
}

func (f *faultyStore) CreateOwner(ctx context.Context, o *models.Owner) error {
	f.wrote()
	return f.Memory.CreateOwner(ctx, o)
}

func (f *faultyStore) UpdateOwner(ctx context.Context, o *models.Owner) error {
	f.wrote()
	return f.Memory.UpdateOwner(ctx, o)
}

func (f *faultyStore) CreateAgent(ctx context.Context, a models.Agent) (uint, error) {
	f.wrote()
	if f.createAgentErr != nil {
		return 0, f.createAgentErr
	}
	return f.Memory.CreateAgent(ctx, a)
}

func (f *faultyStore) UpdateAgent(ctx context.Context, a models.Agent) error {
	f.wrote()
	return f.Memory.UpdateAgent(ctx, a)
}

func (f *faultyStore) AttachDocument(ctx context.Context, c models.Category, id uint, d models.AgentDocument) error {
	f.wrote()
	if f.attachErr != nil {
		return f.attachErr
	}
	return f.Memory.AttachDocument(ctx, c, id, d)
}

func (f *faultyStore) MarkEnquiryConverted(ctx context.Context, id int64) error {
	f.wrote()
	if f.markErr != nil {
		return f.markErr
	}
	return f.Memory.MarkEnquiryConverted(ctx, id)
}

const handymanBody = `{
	"enquiry_id": 10,
	"category_id": "5",
	"agent_name": "A",
	"mobile_no": "9999999999",
	"gender": "M",
	"aadhar_no": "1234",
	"pan_no": "ABCD1",
	"city_id": 2,
	"sub_cat_id": 3,
	"service_id": 4
}`

func decode(t *testing.T, body string) RegisterRequest {
	t.Helper()
	var req RegisterRequest
	require.NoError(t, json.Unmarshal([]byte(body), &req))
	return req
}

func goodsRequest(enquiryID int64, phone, ownerPhone string) RegisterRequest {
	req := RegisterRequest{EnquiryID: validate.Int(enquiryID)}
	req.AgentName = "Ravi"
	req.MobileNo = phone
	req.Gender = "M"
	req.AadharNo = "1111"
	req.PanNo = "PAN1"
	req.CategoryID = validate.Int(int64(models.CategoryGoods))
	req.CityID = validate.Int(1)
	req.VehicleID = validate.Int(7)
	if ownerPhone != "" {
		req.OwnerInput = OwnerInput{Name: "Owner", MobileNo: ownerPhone, Address: "Main road"}
	}
	return req
}

func seedEnquiry(s *faultyStore, id uint) {
	s.AddEnquiry(models.Enquiry{EnquiryID: id, Status: models.EnquiryStatusOpen})
}

func enquiryStatus(t *testing.T, s *faultyStore, id uint) int {
	t.Helper()
	e, ok := s.Enquiry(id)
	require.True(t, ok)
	return e.Status
}

func TestRegisterHandyman(t *testing.T) {
	s := newFaultyStore()
	seedEnquiry(s, 10)

	res, err := NewService(s).Register(context.Background(), decode(t, handymanBody))
	require.NoError(t, err)

	assert.NotZero(t, res.AgentID)
	assert.Nil(t, res.OwnerID)
	assert.Equal(t, models.CategoryHandyman, res.Category)
	assert.Equal(t, 1, s.AgentCount(models.CategoryHandyman))
	assert.Empty(t, s.Owners())
	assert.Equal(t, models.EnquiryStatusConverted, enquiryStatus(t, s, 10))

	a, ok := s.Agent(models.CategoryHandyman, res.AgentID)
	require.True(t, ok)
	h := a.(*models.Handyman)
	assert.Equal(t, "A", h.Name)
	assert.Equal(t, int64(3), h.SubCatID)
	assert.Equal(t, int64(4), h.ServiceID)
	assert.Equal(t, int64(5), h.CategoryID)
	assert.Equal(t, models.AgentStatusPending, h.Status)
}

func TestRegisterMissingCategory(t *testing.T) {
	s := newFaultyStore()
	seedEnquiry(s, 10)
	req := decode(t, handymanBody)
	req.CategoryID = validate.NullInt{}

	_, err := NewService(s).Register(context.Background(), req)

	require.True(t, apperr.Is(err, apperr.KindMissingFields))
	var e *apperr.Error
	require.True(t, errors.As(err, &e))
	assert.Equal(t, []string{"category_id"}, e.Fields)
	assert.Zero(t, s.Writes())
	assert.Equal(t, models.EnquiryStatusOpen, enquiryStatus(t, s, 10))
}

func TestRegisterReportsEveryMissingField(t *testing.T) {
	s := newFaultyStore()
	_, err := NewService(s).Register(context.Background(), decode(t, `{"agent_name":"A","gender":"","city_id":null}`))

	var e *apperr.Error
	require.True(t, errors.As(err, &e))
	assert.Equal(t, apperr.KindMissingFields, e.Kind)
	assert.Equal(t, []string{"enquiry_id", "mobile_no", "gender", "aadhar_no", "pan_no", "category_id", "city_id"}, e.Fields)
	assert.Zero(t, s.Writes())
}

func TestRegisterUnknownCategory(t *testing.T) {
	s := newFaultyStore()
	seedEnquiry(s, 10)
	req := decode(t, handymanBody)
	req.CategoryID = validate.Int(99)
	req.OwnerInput = OwnerInput{Name: "O", MobileNo: "8888888888"}

	_, err := NewService(s).Register(context.Background(), req)

	assert.True(t, apperr.Is(err, apperr.KindInvalidCategory))
	assert.Zero(t, s.Writes())
}

func TestRegisterCategoryConditionalFields(t *testing.T) {
	s := newFaultyStore()
	svc := NewService(s)

	req := goodsRequest(1, "9000000001", "")
	req.VehicleID = validate.NullInt{}
	_, err := svc.Register(context.Background(), req)
	var e *apperr.Error
	require.True(t, errors.As(err, &e))
	assert.Equal(t, []string{"vehicle_id"}, e.Fields)

	hreq := decode(t, handymanBody)
	hreq.SubCatID = validate.NullInt{}
	hreq.ServiceID = validate.NullInt{}
	_, err = svc.Register(context.Background(), hreq)
	require.True(t, errors.As(err, &e))
	assert.Equal(t, []string{"sub_cat_id", "service_id"}, e.Fields)

	req = goodsRequest(1, "9000000001", "")
	req.Gender = ""
	req.VehicleID = validate.NullInt{}
	req.Documents = []models.AgentDocument{{ImageURL: "rc.png"}}
	_, err = svc.Register(context.Background(), req)
	require.True(t, errors.As(err, &e))
	assert.Equal(t, []string{"gender", "vehicle_id", "documents[0].document_name"}, e.Fields)

	assert.Zero(t, s.Writes())
}

func TestRegisterRejectsIncompleteDocumentsBeforeWriting(t *testing.T) {
	s := newFaultyStore()
	req := goodsRequest(1, "9000000001", "")
	req.Documents = []models.AgentDocument{{Name: "RC", ImageURL: "rc.png"}, {Name: "NOC"}}

	_, err := NewService(s).Register(context.Background(), req)
	var e *apperr.Error
	require.True(t, errors.As(err, &e))
	assert.Equal(t, []string{"documents[1].document_image_url"}, e.Fields)
	assert.Zero(t, s.Writes())
}

func TestRegisterSameOwnerPhoneTwice(t *testing.T) {
	s := newFaultyStore()
	seedEnquiry(s, 1)
	seedEnquiry(s, 2)
	svc := NewService(s)

	first, err := svc.Register(context.Background(), goodsRequest(1, "9000000001", "7777777777"))
	require.NoError(t, err)
	second, err := svc.Register(context.Background(), goodsRequest(2, "9000000002", "7777777777"))
	require.NoError(t, err)

	require.Len(t, s.Owners(), 1)
	require.NotNil(t, first.OwnerID)
	require.NotNil(t, second.OwnerID)
	assert.Equal(t, *first.OwnerID, *second.OwnerID)

	a, _ := s.Agent(models.CategoryGoods, second.AgentID)
	assert.Equal(t, first.OwnerID, a.(models.VehicleAgent).Vehicle().OwnerID)
}

func TestRegisterHandymanIgnoresOwnerBlock(t *testing.T) {
	s := newFaultyStore()
	seedEnquiry(s, 10)
	req := decode(t, handymanBody)
	req.OwnerInput = OwnerInput{Name: "O", MobileNo: "7777777777"}

	res, err := NewService(s).Register(context.Background(), req)
	require.NoError(t, err)
	assert.Nil(t, res.OwnerID)
	assert.Empty(t, s.Owners())
}

func TestRegisterOwnerBlockNeedsNameAndPhone(t *testing.T) {
	s := newFaultyStore()
	seedEnquiry(s, 1)
	req := goodsRequest(1, "9000000001", "")
	req.OwnerInput = OwnerInput{MobileNo: "7777777777"}

	res, err := NewService(s).Register(context.Background(), req)
	require.NoError(t, err)
	assert.Nil(t, res.OwnerID)
	assert.Empty(t, s.Owners())
}

func TestResolveOwnerConcurrentCreate(t *testing.T) {
	s := newFaultyStore()
	winner := models.Owner{OwnerName: "First", OwnerMobileNo: "7777777777"}
	require.NoError(t, s.Memory.CreateOwner(context.Background(), &winner))
	// The first lookup misses, as it would for a request racing the winner's insert.
	s.staleOwnerLookups = 1

	id, err := NewService(s).ResolveOwner(context.Background(), OwnerInput{Name: "Second", MobileNo: "7777777777"})
	require.NoError(t, err)
	assert.Equal(t, winner.OwnerID, id)
	assert.Len(t, s.Owners(), 1)
}

func TestRegisterNoIdentifier(t *testing.T) {
	s := newFaultyStore()
	seedEnquiry(s, 1)
	s.createAgentErr = store.ErrNoIdentifier

	_, err := NewService(s).Register(context.Background(), goodsRequest(1, "9000000001", ""))
	assert.True(t, apperr.Is(err, apperr.KindRegistrationIncomplete))
	assert.Equal(t, models.EnquiryStatusOpen, enquiryStatus(t, s, 1))
}

func TestRegisterInsertFailure(t *testing.T) {
	s := newFaultyStore()
	s.createAgentErr = errors.New("connection reset")

	res, err := NewService(s).Register(context.Background(), goodsRequest(1, "9000000001", ""))
	assert.True(t, apperr.Is(err, apperr.KindInternal))
	assert.ErrorContains(t, err, "connection reset")
	assert.Zero(t, res.AgentID)
}

func TestDocumentFailureKeepsDriver(t *testing.T) {
	s := newFaultyStore()
	seedEnquiry(s, 1)
	svc := NewService(s)
	s.attachErr = errors.New("disk full")
	req := goodsRequest(1, "9000000001", "")
	req.Documents = []models.AgentDocument{{Name: "RC", ImageURL: "rc.png"}}

	res, err := svc.Register(context.Background(), req)
	require.Error(t, err)
	assert.Equal(t, apperr.KindInternal, apperr.KindOf(err))
	require.NotZero(t, res.AgentID)
	assert.Equal(t, models.EnquiryStatusOpen, enquiryStatus(t, s, 1))

	ex, err := svc.CheckDriverExistence(context.Background(), CheckRequest{
		MobileNo:   "9000000001",
		CategoryID: validate.Int(int64(models.CategoryGoods)),
		EnquiryID:  validate.Int(1),
	})
	require.NoError(t, err)
	assert.True(t, ex.Exists)
	assert.Equal(t, res.AgentID, ex.AgentID)
}

func TestRegisterAttachesDocuments(t *testing.T) {
	s := newFaultyStore()
	seedEnquiry(s, 1)
	req := goodsRequest(1, "9000000001", "")
	req.Documents = []models.AgentDocument{{Name: "RC", ImageURL: "rc.png"}, {Name: "NOC", ImageURL: "noc.png"}}

	res, err := NewService(s).Register(context.Background(), req)
	require.NoError(t, err)
	assert.Equal(t, req.Documents, s.Documents(models.CategoryGoods, res.AgentID))
	assert.Empty(t, s.Documents(models.CategoryCab, res.AgentID))
}

func TestEnquiryUpdateFailureThenConfirm(t *testing.T) {
	s := newFaultyStore()
	seedEnquiry(s, 1)
	svc := NewService(s)
	s.markErr = errors.New("timeout")

	res, err := svc.Register(context.Background(), goodsRequest(1, "9000000001", ""))
	require.Error(t, err)
	require.NotZero(t, res.AgentID)
	assert.Equal(t, 1, s.AgentCount(models.CategoryGoods))
	assert.Equal(t, models.EnquiryStatusOpen, enquiryStatus(t, s, 1))

	s.markErr = nil
	require.NoError(t, svc.ConfirmConversion(context.Background(), validate.Int(1)))
	assert.Equal(t, models.EnquiryStatusConverted, enquiryStatus(t, s, 1))
	require.NoError(t, svc.ConfirmConversion(context.Background(), validate.Int(1)))
	assert.Equal(t, models.EnquiryStatusConverted, enquiryStatus(t, s, 1))
}

func TestConfirmConversion(t *testing.T) {
	s := newFaultyStore()
	svc := NewService(s)

	assert.True(t, apperr.Is(svc.ConfirmConversion(context.Background(), validate.NullInt{}), apperr.KindMissingFields))
	assert.True(t, apperr.Is(svc.ConfirmConversion(context.Background(), validate.Int(404)), apperr.KindNotFound))

	s.AddEnquiry(models.Enquiry{EnquiryID: 3, Status: 3})
	require.NoError(t, svc.ConfirmConversion(context.Background(), validate.Int(3)))
	assert.Equal(t, 3, enquiryStatus(t, s, 3))
}

func TestRegisterRerunDoesNotCrash(t *testing.T) {
	s := newFaultyStore()
	seedEnquiry(s, 10)
	svc := NewService(s)

	_, err := svc.Register(context.Background(), decode(t, handymanBody))
	require.NoError(t, err)
	assert.NotPanics(t, func() {
		_, _ = svc.Register(context.Background(), decode(t, handymanBody))
	})
	assert.Equal(t, models.EnquiryStatusConverted, enquiryStatus(t, s, 10))
}

func TestCheckDriverExistenceAdvancesEnquiry(t *testing.T) {
	s := newFaultyStore()
	seedEnquiry(s, 5)
	driver := &models.GoodsDriver{Name: "Existing"}
	driver.MobileNo = "9123456780"
	id, err := s.Memory.CreateAgent(context.Background(), driver)
	require.NoError(t, err)
	svc := NewService(s)

	ex, err := svc.CheckDriverExistence(context.Background(), CheckRequest{
		MobileNo:   "9123456780",
		CategoryID: validate.Int(int64(models.CategoryGoods)),
		EnquiryID:  validate.Int(5),
	})
	require.NoError(t, err)
	assert.Equal(t, Existence{Exists: true, AgentID: id}, ex)
	assert.Equal(t, models.EnquiryStatusConverted, enquiryStatus(t, s, 5))
}

func TestCheckDriverExistenceNoMatchIsPure(t *testing.T) {
	s := newFaultyStore()
	seedEnquiry(s, 5)
	driver := &models.CabDriver{Name: "Cab"}
	driver.MobileNo = "9123456780"
	_, err := s.Memory.CreateAgent(context.Background(), driver)
	require.NoError(t, err)

	ex, err := NewService(s).CheckDriverExistence(context.Background(), CheckRequest{
		MobileNo:   "9123456780",
		CategoryID: validate.Int(int64(models.CategoryGoods)),
		EnquiryID:  validate.Int(5),
	})
	require.NoError(t, err)
	assert.False(t, ex.Exists)
	assert.Zero(t, s.Writes())
	assert.Equal(t, models.EnquiryStatusOpen, enquiryStatus(t, s, 5))
}

func TestCheckDriverExistenceValidation(t *testing.T) {
	svc := NewService(newFaultyStore())

	_, err := svc.CheckDriverExistence(context.Background(), CheckRequest{MobileNo: "1"})
	var e *apperr.Error
	require.True(t, errors.As(err, &e))
	assert.Equal(t, []string{"category_id", "enquiry_id"}, e.Fields)

	_, err = svc.CheckDriverExistence(context.Background(), CheckRequest{
		MobileNo: "1", CategoryID: validate.Int(42), EnquiryID: validate.Int(1),
	})
	assert.True(t, apperr.Is(err, apperr.KindInvalidCategory))
}

func TestCheckExistenceEnquiryFailure(t *testing.T) {
	s := newFaultyStore()
	driver := &models.GoodsDriver{}
	driver.MobileNo = "9123456780"
	id, err := s.Memory.CreateAgent(context.Background(), driver)
	require.NoError(t, err)
	s.markErr = errors.New("timeout")

	ex, err := NewService(s).CheckDriverExistence(context.Background(), CheckRequest{
		MobileNo:   "9123456780",
		CategoryID: validate.Int(int64(models.CategoryGoods)),
		EnquiryID:  validate.Int(5),
	})
	assert.True(t, apperr.Is(err, apperr.KindInternal))
	assert.Equal(t, id, ex.AgentID)
}

func TestCheckHandymanExistence(t *testing.T) {
	s := newFaultyStore()
	seedEnquiry(s, 10)
	svc := NewService(s)
	res, err := svc.Register(context.Background(), decode(t, handymanBody))
	require.NoError(t, err)
	seedEnquiry(s, 11)

	ex, err := svc.CheckHandymanExistence(context.Background(), CheckRequest{
		MobileNo: "9999999999", CategoryID: validate.Int(5), EnquiryID: validate.Int(11),
	})
	require.NoError(t, err)
	assert.Equal(t, Existence{Exists: true, AgentID: res.AgentID}, ex)
	assert.Equal(t, models.EnquiryStatusConverted, enquiryStatus(t, s, 11))

	ex, err = svc.CheckHandymanExistence(context.Background(), CheckRequest{
		MobileNo: "9999999999", CategoryID: validate.Int(6), EnquiryID: validate.Int(11),
	})
	require.NoError(t, err)
	assert.False(t, ex.Exists)
}

func TestEditDriver(t *testing.T) {
	s := newFaultyStore()
	seedEnquiry(s, 1)
	svc := NewService(s)
	res, err := svc.Register(context.Background(), goodsRequest(1, "9000000001", "7777777777"))
	require.NoError(t, err)

	edit := EditDriverRequest{DriverID: validate.Int(int64(res.AgentID)), AgentFields: goodsRequest(1, "9000000001", "").AgentFields}
	edit.AgentName = "Ravi Kumar"
	edit.OwnerInput = OwnerInput{Name: "Owner Renamed", MobileNo: "7777777777", Address: "New road"}
	require.NoError(t, svc.EditDriver(context.Background(), edit))

	a, _ := s.Agent(models.CategoryGoods, res.AgentID)
	assert.Equal(t, "Ravi Kumar", a.DisplayName())
	owners := s.Owners()
	require.Len(t, owners, 1)
	assert.Equal(t, "Owner Renamed", owners[0].OwnerName)
	assert.Equal(t, "New road", owners[0].Address)
	assert.Equal(t, *res.OwnerID, *a.(models.VehicleAgent).Vehicle().OwnerID)

	edit.OwnerInput = OwnerInput{Name: "Second Owner", MobileNo: "6666666666"}
	require.NoError(t, svc.EditDriver(context.Background(), edit))
	assert.Len(t, s.Owners(), 2)
}

func TestEditErrors(t *testing.T) {
	s := newFaultyStore()
	svc := NewService(s)
	fields := goodsRequest(1, "9000000001", "").AgentFields

	err := svc.EditDriver(context.Background(), EditDriverRequest{AgentFields: fields})
	var e *apperr.Error
	require.True(t, errors.As(err, &e))
	assert.Equal(t, []string{"driver_id"}, e.Fields)

	err = svc.EditDriver(context.Background(), EditDriverRequest{DriverID: validate.Int(99), AgentFields: fields})
	assert.True(t, apperr.Is(err, apperr.KindNotFound))

	handyman := decode(t, handymanBody).AgentFields
	err = svc.EditDriver(context.Background(), EditDriverRequest{DriverID: validate.Int(1), AgentFields: handyman})
	assert.True(t, apperr.Is(err, apperr.KindInvalidCategory))

	err = svc.EditHandyman(context.Background(), EditHandymanRequest{HandymanID: validate.Int(1), AgentFields: fields})
	assert.True(t, apperr.Is(err, apperr.KindInvalidCategory))
}

func TestEditHandyman(t *testing.T) {
	s := newFaultyStore()
	seedEnquiry(s, 10)
	svc := NewService(s)
	res, err := svc.Register(context.Background(), decode(t, handymanBody))
	require.NoError(t, err)

	edit := EditHandymanRequest{HandymanID: validate.Int(int64(res.AgentID)), AgentFields: decode(t, handymanBody).AgentFields}
	edit.ServiceID = validate.Int(9)
	require.NoError(t, svc.EditHandyman(context.Background(), edit))

	a, _ := s.Agent(models.CategoryHandyman, res.AgentID)
	assert.Equal(t, int64(9), a.(*models.Handyman).ServiceID)
}
