// Package models contains database model definitions.
package models

// Wine table and column names. The catalog table is filled by an external
// import and uses capitalized column names.
const (
	WineTable = "vinos"

	WineColumnID       = "Id"
	WineColumnTitle    = "Title"
	WineColumnVariety  = "Variety"
	WineColumnWinery   = "Winery"
	WineColumnProvince = "Province"
)

// Wine is one row of the read-only wine catalog.
type Wine struct {
	ID          int64    `gorm:"column:Id;primaryKey"    json:"Id"`
	Title       string   `gorm:"column:Title"            json:"Title"`
	Vintage     *int     `gorm:"column:Vintage"          json:"Vintage"`
	Country     string   `gorm:"column:Country"          json:"Country"`
	County      *string  `gorm:"column:County"           json:"County"`
	Designation *string  `gorm:"column:Designation"      json:"Designation"`
	Points      int      `gorm:"column:Points"           json:"Points"`
	Price       *float64 `gorm:"column:Price"            json:"Price"`
	Province    *string  `gorm:"column:Province"         json:"Province"`
	Variety     *string  `gorm:"column:Variety"          json:"Variety"`
	Winery      *string  `gorm:"column:Winery"           json:"Winery"`
}

// TableName maps Wine to the catalog table.
func (Wine) TableName() string {
	return WineTable
}
