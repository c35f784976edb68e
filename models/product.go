package models

import (
	"database/sql/driver"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/shopspring/decimal"
)

// Availability types. A product is either purchasable whenever it is active,
// or only inside the weekly windows described by its ScheduledDays.
const (
	AvailabilityAlways    = "always"
	AvailabilityScheduled = "scheduled"
)

// CategoryAll is the filter sentinel meaning "every category". It is never
// stored on a product.
const CategoryAll = "all"

var categories = []string{
	"acai",
	"combo",
	"milkshake",
	"vitamina",
	"sorvetes",
	"bebidas",
	"complementos",
	"sobremesas",
	"outros",
}

// Categories returns the fixed set of storable product categories.
func Categories() []string {
	out := make([]string, len(categories))
	copy(out, categories)
	return out
}

// ValidCategory reports whether c is one of the storable categories.
func ValidCategory(c string) bool {
	for _, known := range categories {
		if c == known {
			return true
		}
	}
	return false
}

// Product represents a sellable item in the delivery catalog.
// The id is assigned by the remote store on creation; demo products carry
// well-known "demo-" ids instead.
type Product struct {
	ID               string           `gorm:"primaryKey;default:gen_random_uuid()" json:"id"`
	Name             string           `gorm:"not null" json:"name"`
	Description      string           `gorm:"not null" json:"description"`
	Category         string           `gorm:"not null;index" json:"category"`
	Price            decimal.Decimal  `gorm:"type:decimal(10,2);not null" json:"price"`
	OriginalPrice    *decimal.Decimal `gorm:"type:decimal(10,2)" json:"original_price,omitempty"`
	ImageURL         string           `json:"image_url,omitempty"`
	IsActive         bool             `gorm:"not null;default:true;index" json:"is_active"`
	IsWeighable      bool             `gorm:"not null;default:false" json:"is_weighable"`
	PricePerGram     *decimal.Decimal `gorm:"type:decimal(10,4)" json:"price_per_gram,omitempty"`
	HasComplements   bool             `gorm:"not null;default:false" json:"has_complements"`
	ComplementGroups JSONDoc          `gorm:"type:jsonb" json:"complement_groups,omitempty"`
	Sizes            JSONDoc          `gorm:"type:jsonb" json:"sizes,omitempty"`
	AvailabilityType string           `gorm:"not null;default:always" json:"availability_type"`
	ScheduledDays    ScheduledDays    `gorm:"type:jsonb" json:"scheduled_days,omitempty"`
	CreatedAt        time.Time        `json:"created_at"`
	UpdatedAt        time.Time        `json:"updated_at"`
}

func (p *Product) TableName() string {
	return "delivery_products"
}

// ValidateDraft checks the preconditions for creating a product. It never
// touches the store: a draft that fails here must not reach the adapter.
func (p *Product) ValidateDraft() error {
	if strings.TrimSpace(p.Name) == "" {
		return &ValidationError{Field: "name", Reason: "must not be empty"}
	}
	if strings.TrimSpace(p.Description) == "" {
		return &ValidationError{Field: "description", Reason: "must not be empty"}
	}
	if !ValidCategory(p.Category) {
		return &ValidationError{Field: "category", Reason: fmt.Sprintf("unknown category %q", p.Category)}
	}
	if p.Price.IsNegative() {
		return &ValidationError{Field: "price", Reason: "must not be negative"}
	}
	return nil
}

// JSONDoc is an opaque structured sub-document (complement groups, sizes)
// stored as jsonb and passed through unmodified.
type JSONDoc []byte

func (d JSONDoc) Value() (driver.Value, error) {
	if len(d) == 0 {
		return nil, nil
	}
	return []byte(d), nil
}

func (d *JSONDoc) Scan(src any) error {
	switch v := src.(type) {
	case nil:
		*d = nil
	case []byte:
		*d = append((*d)[:0], v...)
	case string:
		*d = JSONDoc(v)
	default:
		return fmt.Errorf("cannot scan %T into JSONDoc", src)
	}
	return nil
}

func (d JSONDoc) MarshalJSON() ([]byte, error) {
	if len(d) == 0 {
		return []byte("null"), nil
	}
	return d, nil
}

func (d *JSONDoc) UnmarshalJSON(data []byte) error {
	if d == nil {
		return errors.New("JSONDoc: UnmarshalJSON on nil pointer")
	}
	*d = append((*d)[:0], data...)
	return nil
}
