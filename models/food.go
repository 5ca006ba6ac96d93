package models

// Food is a catalog entry. All macro fields are densities per 100g;
// consumption math scales them by quantity/100.
type Food struct {
	ID       uint    `gorm:"primarykey" json:"id"`
	Name     string  `gorm:"not null;index" json:"name"`
	Calories float64 `gorm:"not null" json:"calories"`
	Proteins float64 `gorm:"default:0" json:"proteins"`
	Carbs    float64 `gorm:"default:0" json:"carbs"`
	Fats     float64 `gorm:"default:0" json:"fats"`
	UserID   *uint   `gorm:"index" json:"user_id"` // nil for ownerless seed rows
	IsPublic bool    `gorm:"default:false" json:"is_public"`
}
