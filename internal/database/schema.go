package database

// Laptop is one catalog row. Column names are lowercase single words because
// the SQL generator is instructed to wrap them in double quotes, and mixed
// case identifiers behave differently across dialects.
type Laptop struct {
	ID               uint    `gorm:"column:id;primaryKey"`
	ProductName      string  `gorm:"column:productname;not null"`
	Brand            string  `gorm:"column:brand;size:50;not null"`
	Price            float64 `gorm:"column:price;not null"`
	YearOfRelease    int     `gorm:"column:yearofrelease"`
	Storage          string  `gorm:"column:storage"`
	Memory           string  `gorm:"column:memory"`
	MemoryType       string  `gorm:"column:memorytype"`
	WeightKg         float64 `gorm:"column:weightkg"`
	GPU              string  `gorm:"column:gpu"`
	GraphicsCardType string  `gorm:"column:graphicscardtype;size:20"` // 'integrated' or 'dedicated'
	ScreenResolution string  `gorm:"column:screenresolution"`
	ProcessorModel   string  `gorm:"column:processormodel"`
	WarrantyYears    int     `gorm:"column:warrantyyears"`
}

func (Laptop) TableName() string {
	return "laptops"
}
