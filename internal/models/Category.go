package models

import (
	"vtpartner/internal/apperr"
)

// Category identifies which driver/agent variant a registration targets.
type Category int64

const (
	CategoryGoods       Category = 1
	CategoryCab         Category = 2
	CategoryJcbCrane    Category = 3
	CategoryOtherDriver Category = 4
	CategoryHandyman    Category = 5
)

// Dispatch names the storage a category's agents live in.
type Dispatch struct {
	Category      Category
	Table         string
	NameColumn    string
	IDColumn      string
	DocumentTable string
}

var dispatchTable = map[Category]Dispatch{
	CategoryGoods: {
		Category:      CategoryGoods,
		Table:         TableGoodsDrivers,
		NameColumn:    "driver_first_name",
		IDColumn:      "goods_driver_id",
		DocumentTable: "goods_driver_documents_tbl",
	},
	CategoryCab: {
		Category:      CategoryCab,
		Table:         TableCabDrivers,
		NameColumn:    "driver_first_name",
		IDColumn:      "cab_driver_id",
		DocumentTable: "cab_driver_documents_tbl",
	},
	CategoryJcbCrane: {
		Category:      CategoryJcbCrane,
		Table:         TableJcbCraneDrivers,
		NameColumn:    "driver_name",
		IDColumn:      "jcb_crane_driver_id",
		DocumentTable: "jcb_crane_driver_documents_tbl",
	},
	CategoryOtherDriver: {
		Category:      CategoryOtherDriver,
		Table:         TableOtherDrivers,
		NameColumn:    "driver_first_name",
		IDColumn:      "other_driver_id",
		DocumentTable: "other_driver_documents_tbl",
	},
	CategoryHandyman: {
		Category:      CategoryHandyman,
		Table:         TableHandymen,
		NameColumn:    "name",
		IDColumn:      "handyman_id",
		DocumentTable: "handyman_documents_tbl",
	},
}

// Resolve maps a raw category id to its dispatch entry.
// Ids outside the known set are rejected with an InvalidCategory error.
func Resolve(id int64) (Dispatch, error) {
	d, ok := dispatchTable[Category(id)]
	if !ok {
		return Dispatch{}, apperr.InvalidCategory(id)
	}
	return d, nil
}

// Categories lists every category the dispatch table knows, in id order.
func Categories() []Category {
	return []Category{CategoryGoods, CategoryCab, CategoryJcbCrane, CategoryOtherDriver, CategoryHandyman}
}

func (c Category) String() string {
	switch c {
	case CategoryGoods:
		return "goods"
	case CategoryCab:
		return "cab"
	case CategoryJcbCrane:
		return "jcb_crane"
	case CategoryOtherDriver:
		return "other_driver"
	case CategoryHandyman:
		return "handyman"
	default:
		return "unknown"
	}
}

// OwnsVehicle reports whether agents of this category drive an owner's vehicle.
func (c Category) OwnsVehicle() bool {
	switch c {
	case CategoryGoods, CategoryCab, CategoryJcbCrane, CategoryOtherDriver:
		return true
	default:
		return false
	}
}

// NewAgent returns an empty model of the category's variant, or nil for an unknown category.
func (c Category) NewAgent() Agent {
	switch c {
	case CategoryGoods:
		return &GoodsDriver{}
	case CategoryCab:
		return &CabDriver{}
	case CategoryJcbCrane:
		return &JcbCraneDriver{}
	case CategoryOtherDriver:
		return &OtherDriver{}
	case CategoryHandyman:
		return &Handyman{}
	default:
		return nil
	}
}
