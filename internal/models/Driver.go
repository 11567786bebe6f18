package models

const (
	TableGoodsDrivers    = "goods_driverstbl"
	TableCabDrivers      = "cab_driverstbl"
	TableJcbCraneDrivers = "jcb_crane_driverstbl"
	TableOtherDrivers    = "other_driverstbl"
	TableHandymen        = "handymantbl"
)

type GoodsDriver struct {
	GoodsDriverID  uint   `json:"goods_driver_id" gorm:"column:goods_driver_id;primaryKey"`
	Name           string `json:"driver_first_name" gorm:"column:driver_first_name"`
	AgentProfile   `gorm:"embedded"`
	VehicleDetails `gorm:"embedded"`
}

func (GoodsDriver) TableName() string           { return TableGoodsDrivers }
func (*GoodsDriver) Category() Category         { return CategoryGoods }
func (d *GoodsDriver) AgentID() uint            { return d.GoodsDriverID }
func (d *GoodsDriver) SetAgentID(id uint)       { d.GoodsDriverID = id }
func (d *GoodsDriver) DisplayName() string      { return d.Name }
func (d *GoodsDriver) SetDisplayName(n string)  { d.Name = n }
func (d *GoodsDriver) Profile() *AgentProfile   { return &d.AgentProfile }
func (d *GoodsDriver) Vehicle() *VehicleDetails { return &d.VehicleDetails }

type CabDriver struct {
	CabDriverID    uint   `json:"cab_driver_id" gorm:"column:cab_driver_id;primaryKey"`
	Name           string `json:"driver_first_name" gorm:"column:driver_first_name"`
	AgentProfile   `gorm:"embedded"`
	VehicleDetails `gorm:"embedded"`
}

func (CabDriver) TableName() string           { return TableCabDrivers }
func (*CabDriver) Category() Category         { return CategoryCab }
func (d *CabDriver) AgentID() uint            { return d.CabDriverID }
func (d *CabDriver) SetAgentID(id uint)       { d.CabDriverID = id }
func (d *CabDriver) DisplayName() string      { return d.Name }
func (d *CabDriver) SetDisplayName(n string)  { d.Name = n }
func (d *CabDriver) Profile() *AgentProfile   { return &d.AgentProfile }
func (d *CabDriver) Vehicle() *VehicleDetails { return &d.VehicleDetails }

type JcbCraneDriver struct {
	JcbCraneDriverID uint   `json:"jcb_crane_driver_id" gorm:"column:jcb_crane_driver_id;primaryKey"`
	Name             string `json:"driver_name" gorm:"column:driver_name"`
	AgentProfile     `gorm:"embedded"`
	VehicleDetails   `gorm:"embedded"`
}

func (JcbCraneDriver) TableName() string           { return TableJcbCraneDrivers }
func (*JcbCraneDriver) Category() Category         { return CategoryJcbCrane }
func (d *JcbCraneDriver) AgentID() uint            { return d.JcbCraneDriverID }
func (d *JcbCraneDriver) SetAgentID(id uint)       { d.JcbCraneDriverID = id }
func (d *JcbCraneDriver) DisplayName() string      { return d.Name }
func (d *JcbCraneDriver) SetDisplayName(n string)  { d.Name = n }
func (d *JcbCraneDriver) Profile() *AgentProfile   { return &d.AgentProfile }
func (d *JcbCraneDriver) Vehicle() *VehicleDetails { return &d.VehicleDetails }

type OtherDriver struct {
	OtherDriverID  uint   `json:"other_driver_id" gorm:"column:other_driver_id;primaryKey"`
	Name           string `json:"driver_first_name" gorm:"column:driver_first_name"`
	AgentProfile   `gorm:"embedded"`
	VehicleDetails `gorm:"embedded"`
}

func (OtherDriver) TableName() string           { return TableOtherDrivers }
func (*OtherDriver) Category() Category         { return CategoryOtherDriver }
func (d *OtherDriver) AgentID() uint            { return d.OtherDriverID }
func (d *OtherDriver) SetAgentID(id uint)       { d.OtherDriverID = id }
func (d *OtherDriver) DisplayName() string      { return d.Name }
func (d *OtherDriver) SetDisplayName(n string)  { d.Name = n }
func (d *OtherDriver) Profile() *AgentProfile   { return &d.AgentProfile }
func (d *OtherDriver) Vehicle() *VehicleDetails { return &d.VehicleDetails }

// Handyman is the service-provider variant; it carries a sub-category and service instead of a vehicle.
type Handyman struct {
	HandymanID   uint   `json:"handyman_id" gorm:"column:handyman_id;primaryKey"`
	Name         string `json:"name" gorm:"column:name"`
	SubCatID     int64  `json:"sub_cat_id" gorm:"column:sub_cat_id"`
	ServiceID    int64  `json:"service_id" gorm:"column:service_id"`
	AgentProfile `gorm:"embedded"`
}

func (Handyman) TableName() string          { return TableHandymen }
func (*Handyman) Category() Category        { return CategoryHandyman }
func (h *Handyman) AgentID() uint           { return h.HandymanID }
func (h *Handyman) SetAgentID(id uint)      { h.HandymanID = id }
func (h *Handyman) DisplayName() string     { return h.Name }
func (h *Handyman) SetDisplayName(n string) { h.Name = n }
func (h *Handyman) Profile() *AgentProfile  { return &h.AgentProfile }
