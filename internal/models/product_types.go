package models

import (
	"fmt"
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// Product categories form a fixed set; the Attributes variant must match.
const (
	CategoryComboSet = "combo-set"
	CategoryNecklace = "necklace"
	CategoryEarrings = "earrings"
	CategoryBracelet = "bracelet"
)

// MaxFeatures and MaxGalleryImages cap the feature list and the gallery
// (the main image is counted separately).
const (
	MaxFeatures      = 4
	MaxGalleryImages = 4
)

// Product is the catalog document. InStock is derived from Stock and
// recomputed on every write path; it is never accepted from a client.
type Product struct {
	ID            primitive.ObjectID `json:"id" bson:"_id,omitempty"`
	Name          string             `json:"name" bson:"name"`
	Slug          string             `json:"slug" bson:"slug"`
	Category      string             `json:"category" bson:"category"`
	Price         float64            `json:"price" bson:"price"`
	DiscountPrice float64            `json:"discountPrice" bson:"discountPrice"`
	Stock         int                `json:"stock" bson:"stock"`
	InStock       bool               `json:"inStock" bson:"inStock"`
	Description   string             `json:"description" bson:"description"`
	Features      []string           `json:"features" bson:"features"`
	MainImage     string             `json:"mainImage" bson:"mainImage"`
	Images        []string           `json:"images" bson:"images"`
	Attributes    ProductAttributes  `json:"attributes" bson:"attributes"`
	CreatedAt     time.Time          `json:"createdAt" bson:"createdAt"`
	UpdatedAt     time.Time          `json:"updatedAt" bson:"updatedAt"`
}

// ProductAttributes is a tagged variant keyed by category: exactly one of the
// pointers is set, and it must be the one matching Product.Category. This
// replaces the untyped per-category map the old backend carried.
type ProductAttributes struct {
	ComboSet *ComboSetAttributes `json:"comboSet,omitempty" bson:"comboSet,omitempty"`
	Necklace *NecklaceAttributes `json:"necklace,omitempty" bson:"necklace,omitempty"`
	Earrings *EarringsAttributes `json:"earrings,omitempty" bson:"earrings,omitempty"`
	Bracelet *BraceletAttributes `json:"bracelet,omitempty" bson:"bracelet,omitempty"`
}

// BaseAttributes are the material fields shared by every category.
type BaseAttributes struct {
	Color      string  `json:"color" bson:"color"`
	Style      string  `json:"style" bson:"style"`
	Weight     float64 `json:"weight" bson:"weight"`
	WeightUnit string  `json:"weightUnit" bson:"weightUnit"`
	Purity     string  `json:"purity" bson:"purity"`
}

type ComboSetAttributes struct {
	BaseAttributes `bson:",inline"`
	PieceCount     int      `json:"pieceCount" bson:"pieceCount"`
	Includes       []string `json:"includes" bson:"includes"`
}

type NecklaceAttributes struct {
	BaseAttributes `bson:",inline"`
	ChainLength    string `json:"chainLength" bson:"chainLength"`
	ClaspType      string `json:"claspType" bson:"claspType"`
}

type EarringsAttributes struct {
	BaseAttributes `bson:",inline"`
	ClosureType    string `json:"closureType" bson:"closureType"`
}

type BraceletAttributes struct {
	BaseAttributes `bson:",inline"`
	Size           string `json:"size" bson:"size"`
	Adjustable     bool   `json:"adjustable" bson:"adjustable"`
}

// IsValidCategory reports whether the category is one of the fixed set.
func IsValidCategory(category string) bool {
	switch category {
	case CategoryComboSet, CategoryNecklace, CategoryEarrings, CategoryBracelet:
		return true
	}
	return false
}

// ComputeInStock derives the in-stock flag from a stock count. Every write
// path must go through this so the flag cannot drift from the count.
func ComputeInStock(stock int) bool {
	return stock > 0
}

// ValidateAttributes checks that the attribute variant set on the product
// matches its category: the matching pointer must be non-nil and every other
// pointer nil.
func (p *Product) ValidateAttributes() error {
	set := 0
	var matched bool
	if p.Attributes.ComboSet != nil {
		set++
		matched = matched || p.Category == CategoryComboSet
	}
	if p.Attributes.Necklace != nil {
		set++
		matched = matched || p.Category == CategoryNecklace
	}
	if p.Attributes.Earrings != nil {
		set++
		matched = matched || p.Category == CategoryEarrings
	}
	if p.Attributes.Bracelet != nil {
		set++
		matched = matched || p.Category == CategoryBracelet
	}

	if set == 0 {
		// Attributes are free-form per category in the storefront; an empty
		// variant is allowed, a wrong one is not.
		return nil
	}
	if set > 1 {
		return fmt.Errorf("product carries %d attribute variants, expected at most 1", set)
	}
	if !matched {
		return fmt.Errorf("attribute variant does not match category %q", p.Category)
	}
	return nil
}
