package store

import (
	"context"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"vtpartner/internal/apperr"
	"vtpartner/internal/models"
)

var _ Store = (*Memory)(nil)
var _ Store = (*Gorm)(nil)

func TestMemoryEmptyListsAreNotFound(t *testing.T) {
	m := NewMemory()
	ctx := context.Background()

	_, err := m.ListCities(ctx)
	assert.ErrorIs(t, err, ErrNotFound)
	_, err = m.ListPincodes(ctx, 1)
	assert.ErrorIs(t, err, ErrNotFound)
	_, err = m.ListVehicles(ctx, 1)
	assert.ErrorIs(t, err, ErrNotFound)
	_, err = m.ListEnquiries(ctx, nil)
	assert.ErrorIs(t, err, ErrNotFound)
	_, err = m.ListBranches(ctx, 1)
	assert.ErrorIs(t, err, ErrNotFound)
	_, err = m.FindAdminByEmail(ctx, "x@y")
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestMemoryOwnerPhoneIsUnique(t *testing.T) {
	m := NewMemory()
	ctx := context.Background()

	a := models.Owner{OwnerName: "A", OwnerMobileNo: "7777777777"}
	require.NoError(t, m.CreateOwner(ctx, &a))
	assert.NotZero(t, a.OwnerID)

	b := models.Owner{OwnerName: "B", OwnerMobileNo: "7777777777"}
	assert.ErrorIs(t, m.CreateOwner(ctx, &b), ErrDuplicate)

	got, err := m.FindOwnerByPhone(ctx, "7777777777")
	require.NoError(t, err)
	assert.Equal(t, a.OwnerID, got.OwnerID)

	assert.ErrorIs(t, m.UpdateOwner(ctx, &models.Owner{OwnerID: 99}), ErrNotFound)
}

func TestMemoryConcurrentOwnerCreates(t *testing.T) {
	m := NewMemory()
	var wg sync.WaitGroup
	for i := 0; i < 20; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			o := models.Owner{OwnerMobileNo: "7777777777"}
			_ = m.CreateOwner(context.Background(), &o)
		}()
	}
	wg.Wait()
	assert.Len(t, m.Owners(), 1)
}

func TestMemoryAgentsHaveSeparateIdentitySpaces(t *testing.T) {
	m := NewMemory()
	ctx := context.Background()

	goods := &models.GoodsDriver{Name: "G"}
	goods.MobileNo = "1"
	cab := &models.CabDriver{Name: "C"}
	cab.MobileNo = "1"

	gid, err := m.CreateAgent(ctx, goods)
	require.NoError(t, err)
	cid, err := m.CreateAgent(ctx, cab)
	require.NoError(t, err)
	assert.Equal(t, uint(1), gid)
	assert.Equal(t, uint(1), cid)

	found, err := m.FindAgentByPhone(ctx, models.CategoryCab, "1")
	require.NoError(t, err)
	assert.Equal(t, cid, found)

	_, err = m.FindAgentByPhone(ctx, models.CategoryJcbCrane, "1")
	assert.ErrorIs(t, err, ErrNotFound)

	_, err = m.FindAgentByPhone(ctx, models.Category(42), "1")
	assert.True(t, apperr.Is(err, apperr.KindInvalidCategory))
}

func TestMemoryStoredAgentsAreCopies(t *testing.T) {
	m := NewMemory()
	d := &models.GoodsDriver{Name: "Before"}
	id, err := m.CreateAgent(context.Background(), d)
	require.NoError(t, err)

	d.Name = "After"
	got, ok := m.Agent(models.CategoryGoods, id)
	require.True(t, ok)
	assert.Equal(t, "Before", got.DisplayName())
}

func TestMemoryUpdateAgentKeepsStatus(t *testing.T) {
	m := NewMemory()
	ctx := context.Background()
	d := &models.OtherDriver{Name: "O"}
	d.Status = models.AgentStatusVerified
	id, err := m.CreateAgent(ctx, d)
	require.NoError(t, err)

	upd := &models.OtherDriver{OtherDriverID: id, Name: "O2"}
	require.NoError(t, m.UpdateAgent(ctx, upd))
	got, _ := m.Agent(models.CategoryOtherDriver, id)
	assert.Equal(t, "O2", got.DisplayName())
	assert.Equal(t, models.AgentStatusVerified, got.Profile().Status)

	assert.ErrorIs(t, m.UpdateAgent(ctx, &models.OtherDriver{OtherDriverID: 50}), ErrNotFound)
}

func TestMemoryHandymanLookupMatchesCategory(t *testing.T) {
	m := NewMemory()
	ctx := context.Background()
	h := &models.Handyman{Name: "H"}
	h.MobileNo = "5"
	h.CategoryID = 5
	id, err := m.CreateAgent(ctx, h)
	require.NoError(t, err)

	got, err := m.FindHandymanByPhone(ctx, "5", 5)
	require.NoError(t, err)
	assert.Equal(t, id, got)

	_, err = m.FindHandymanByPhone(ctx, "5", 4)
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestMemoryMarkEnquiryConvertedIsForwardOnly(t *testing.T) {
	m := NewMemory()
	ctx := context.Background()
	open := models.Enquiry{Name: "open"}
	require.NoError(t, m.CreateEnquiry(ctx, &open))
	closed := m.AddEnquiry(models.Enquiry{Status: 4})

	require.NoError(t, m.MarkEnquiryConverted(ctx, int64(open.EnquiryID)))
	require.NoError(t, m.MarkEnquiryConverted(ctx, int64(open.EnquiryID)))
	e, _ := m.Enquiry(open.EnquiryID)
	assert.Equal(t, models.EnquiryStatusConverted, e.Status)

	require.NoError(t, m.MarkEnquiryConverted(ctx, int64(closed.EnquiryID)))
	e, _ = m.Enquiry(closed.EnquiryID)
	assert.Equal(t, 4, e.Status)

	for _, status := range []int{1, -1} {
		other := m.AddEnquiry(models.Enquiry{Status: status})
		require.NoError(t, m.MarkEnquiryConverted(ctx, int64(other.EnquiryID)))
		e, _ = m.Enquiry(other.EnquiryID)
		assert.Equal(t, status, e.Status, "status %d is not open and must not move", status)
	}

	assert.ErrorIs(t, m.MarkEnquiryConverted(ctx, 999), ErrNotFound)
}

func TestMemoryListEnquiriesFiltersByStatus(t *testing.T) {
	m := NewMemory()
	ctx := context.Background()
	m.AddEnquiry(models.Enquiry{Name: "a"})
	m.AddEnquiry(models.Enquiry{Name: "b", Status: models.EnquiryStatusConverted})

	all, err := m.ListEnquiries(ctx, nil)
	require.NoError(t, err)
	assert.Len(t, all, 2)
	assert.Equal(t, "b", all[0].Name)

	open := int64(models.EnquiryStatusOpen)
	only, err := m.ListEnquiries(ctx, &open)
	require.NoError(t, err)
	require.Len(t, only, 1)
	assert.Equal(t, "a", only[0].Name)
}

func TestMemoryCatalogCounts(t *testing.T) {
	m := NewMemory()
	ctx := context.Background()

	require.NoError(t, m.CreatePincode(ctx, &models.Pincode{Pincode: "411001", CityID: 1}))
	n, err := m.CountPincodes(ctx, "411001")
	require.NoError(t, err)
	assert.Equal(t, int64(1), n)

	require.NoError(t, m.CreateVehicle(ctx, &models.Vehicle{VehicleName: "Tata Ace", CategoryID: 1}))
	n, err = m.CountVehiclesByName(ctx, 1, "tata ace")
	require.NoError(t, err)
	assert.Equal(t, int64(1), n)
	n, err = m.CountVehiclesByName(ctx, 2, "Tata Ace")
	require.NoError(t, err)
	assert.Zero(t, n)

	require.NoError(t, m.CreateVehiclePrice(ctx, &models.VehiclePrice{CityID: 1, VehicleID: 1}))
	n, err = m.CountVehiclePrices(ctx, 1, 1)
	require.NoError(t, err)
	assert.Equal(t, int64(1), n)
}

func TestMemoryUpdateCity(t *testing.T) {
	m := NewMemory()
	ctx := context.Background()
	c := m.AddCity(models.City{CityName: "Pune"})

	c.CityName = "Pune City"
	require.NoError(t, m.UpdateCity(ctx, c))
	cities, err := m.ListCities(ctx)
	require.NoError(t, err)
	assert.Equal(t, "Pune City", cities[0].CityName)
	assert.NotZero(t, cities[0].Time)

	assert.ErrorIs(t, m.UpdateCity(ctx, models.City{CityID: 77}), ErrNotFound)
}
