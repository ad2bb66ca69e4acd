package model

import "fmt"

type MenuCategory string

const (
	CategoryFood     MenuCategory = "Food"
	CategoryBeverage MenuCategory = "Beverage"
)

// SyncActor is written to the audit columns of rows touched by the spreadsheet sync.
const SyncActor = "sync"

// MenuItem is a sellable item shown on the public menu.
// Price and Available are owned by the spreadsheet sync; the other fields belong to the admin console.
type MenuItem struct {
	BaseModel
	Name         string       `gorm:"type:varchar(255);not null;index" json:"name" validate:"required"`
	Description  string       `gorm:"type:text" json:"description"`
	Price        int64        `gorm:"default:0;not null" json:"price" validate:"gte=0"`
	Category     MenuCategory `gorm:"type:varchar(20);not null;default:'Food'" json:"category" validate:"required,menu_category"`
	Available    bool         `gorm:"not null" json:"available"`
	Image        string       `gorm:"type:varchar(500)" json:"image"`
	IsBestSeller bool         `gorm:"default:false" json:"is_best_seller"`
}

func (MenuItem) TableName() string {
	return "menu_items"
}

// NewSyncedMenuItem builds the record created when a spreadsheet row has no stored match.
func NewSyncedMenuItem(name string, price int64, available bool) *MenuItem {
	item := &MenuItem{
		Name:         name,
		Description:  PlaceholderDescription(name),
		Price:        price,
		Category:     CategoryFood,
		Available:    available,
		Image:        "",
		IsBestSeller: false,
	}
	item.CreatedBy = SyncActor
	item.UpdatedBy = SyncActor
	return item
}

func PlaceholderDescription(name string) string {
	return fmt.Sprintf("Description for %s", name)
}

// IsValidCategory reports whether c is one of the known menu categories
func IsValidCategory(c MenuCategory) bool {
	return c == CategoryFood || c == CategoryBeverage
}
