// Package entity contains the core business objects of the project.
package entity

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// ProductCategory is the closed set of menu categories.
type ProductCategory string

const (
	CategoryMain    ProductCategory = "main"
	CategoryDrink   ProductCategory = "drink"
	CategoryDessert ProductCategory = "dessert"
	CategorySnack   ProductCategory = "snack"
)

// Valid reports whether c is a member of the closed category set.
func (c ProductCategory) Valid() bool {
	switch c {
	case CategoryMain, CategoryDrink, CategoryDessert, CategorySnack:
		return true
	}

	return false
}

// Product is a catalog item. The ordering core only reads products; the
// catalog owns all mutations.
type Product struct {
	ID          uuid.UUID       `json:"id"`           // The Global Unique Identifier (GUID) for the product.
	Name        string          `json:"name"`         // Display name on the menu.
	Description string          `json:"description"`  // Menu description text.
	Price       decimal.Decimal `json:"price"`        // Current price; snapshotted into order lines at placement.
	Category    ProductCategory `json:"category"`     // Menu category.
	IsAvailable bool            `json:"is_available"` // Whether the product can currently be ordered.
	Allergens   []string        `json:"allergens"`    // Declared allergens, e.g. ["peanut", "dairy"].
	DietaryTag  string          `json:"dietary_tag"`  // Optional dietary tag, e.g. "vegan".
	CreatedAt   time.Time       `json:"created_at"`   // Timestamp of when the product was created.
	UpdatedAt   time.Time       `json:"updated_at"`   // Timestamp of the last modification.
}
