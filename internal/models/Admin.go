package models

// Admin is a dashboard user. Password holds a bcrypt hash.
type Admin struct {
	AdminID   uint   `json:"id" gorm:"column:admin_id;primaryKey"`
	AdminName string `json:"name" gorm:"column:admin_name"`
	Email     string `json:"email" gorm:"column:email;uniqueIndex"`
	Password  string `json:"-" gorm:"column:password"`
	AdminRole string `json:"role" gorm:"column:admin_role"`
	BranchID  int64  `json:"branch_id" gorm:"column:branch_id"`
}

func (Admin) TableName() string { return "admintbl" }

type Branch struct {
	BranchID     uint    `json:"branch_id" gorm:"column:branch_id;primaryKey"`
	BranchName   string  `json:"branch_name" gorm:"column:branch_name"`
	Location     string  `json:"location" gorm:"column:location"`
	CityID       int64   `json:"city_id" gorm:"column:city_id"`
	RegDate      string  `json:"reg_date" gorm:"column:reg_date"`
	CreationTime float64 `json:"creation_time" gorm:"column:creation_time"`
	BranchStatus int     `json:"branch_status" gorm:"column:branch_status"`
}

func (Branch) TableName() string { return "branchtbl" }
