package store

import "github.com/shopspring/decimal"

// KnownSizes is the fixed size enumeration accepted for stock rows.
var KnownSizes = []string{"XS", "S", "M", "L", "XL", "XXL", "XXXL"}

// ValidSize reports whether label belongs to the known size enumeration.
func ValidSize(label string) bool {
	for _, s := range KnownSizes {
		if s == label {
			return true
		}
	}
	return false
}

// Item is one clothing product in the catalog.
type Item struct {
	ID          int64           `gorm:"primaryKey" json:"id"`
	Name        string          `gorm:"size:255;not null;index" json:"name"`
	Category    string          `gorm:"size:100;not null;index" json:"category"`
	Price       decimal.Decimal `gorm:"type:decimal(10,2);not null" json:"price"`
	Description string          `gorm:"type:text" json:"description"`
	Sizes       []SizeQuantity  `gorm:"constraint:OnDelete:CASCADE" json:"sizes"`
}

// SizeQuantity is the stock count for one item at one size.
// Uniqueness of (item, size) is enforced by idx_item_size.
type SizeQuantity struct {
	ID       int64  `gorm:"primaryKey" json:"-"`
	ItemID   int64  `gorm:"not null;uniqueIndex:idx_item_size" json:"-"`
	Size     string `gorm:"size:8;not null;uniqueIndex:idx_item_size" json:"size"`
	Quantity int    `gorm:"not null;check:quantity >= 0" json:"quantity"`
}

func (Item) TableName() string { return "items" }

func (SizeQuantity) TableName() string { return "item_sizes" }

// SizeMap flattens the item's stock rows into a size→quantity mapping.
func (i Item) SizeMap() map[string]int {
	sizes := make(map[string]int, len(i.Sizes))
	for _, sq := range i.Sizes {
		sizes[sq.Size] = sq.Quantity
	}
	return sizes
}
