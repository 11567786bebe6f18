package models

type CategoryType struct {
	CatTypeID    uint   `json:"cat_type_id" gorm:"column:cat_type_id;primaryKey"`
	CategoryType string `json:"category_type" gorm:"column:category_type"`
}

func (CategoryType) TableName() string { return "category_type_tbl" }

// ServiceCategory is a top-level service offered on the website (goods, cab, handyman, ...).
type ServiceCategory struct {
	CategoryID     uint    `json:"category_id" gorm:"column:category_id;primaryKey"`
	CategoryName   string  `json:"category_name" gorm:"column:category_name"`
	CategoryTypeID int64   `json:"category_type_id" gorm:"column:category_type_id"`
	CategoryImage  string  `json:"category_image" gorm:"column:category_image"`
	Epoch          float64 `json:"epoch" gorm:"column:epoch"`
}

func (ServiceCategory) TableName() string { return "categorytbl" }

// ServiceListing is a category joined with its type name, as listed publicly.
type ServiceListing struct {
	CategoryID     uint    `json:"category_id"`
	CategoryName   string  `json:"category_name"`
	CategoryTypeID int64   `json:"category_type_id"`
	CategoryImage  string  `json:"category_image"`
	CategoryType   string  `json:"category_type"`
	Epoch          float64 `json:"epoch"`
}

type SubCategory struct {
	SubCatID   uint    `json:"sub_cat_id" gorm:"column:sub_cat_id;primaryKey"`
	SubCatName string  `json:"sub_cat_name" gorm:"column:sub_cat_name"`
	CategoryID int64   `json:"category_id" gorm:"column:category_id;index"`
	Image      string  `json:"image" gorm:"column:image"`
	Epoch      float64 `json:"epoch" gorm:"column:epoch"`
}

func (SubCategory) TableName() string { return "sub_categorytbl" }

type OtherService struct {
	ServiceID    uint    `json:"service_id" gorm:"column:service_id;primaryKey"`
	ServiceName  string  `json:"service_name" gorm:"column:service_name"`
	SubCatID     int64   `json:"sub_cat_id" gorm:"column:sub_cat_id;index"`
	ServiceImage string  `json:"service_image" gorm:"column:service_image"`
	Epoch        float64 `json:"epoch" gorm:"column:epoch"`
}

func (OtherService) TableName() string { return "other_servicestbl" }

type GalleryImage struct {
	GalleryID  uint    `json:"gallery_id" gorm:"column:gallery_id;primaryKey"`
	ImageURL   string  `json:"image_url" gorm:"column:image_url"`
	CategoryID int64   `json:"category_id" gorm:"column:category_id;index"`
	Epoch      float64 `json:"epoch" gorm:"column:epoch"`
}

func (GalleryImage) TableName() string { return "service_gallery_tbl" }
