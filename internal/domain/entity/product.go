// Package entity contains the core business objects of the project.
package entity

import (
	"time"

	"github.com/google/uuid"
)

// Product is a catalog item listed by a vendor. Prices are minor currency
// units (cents). A nil Quantity means stock is untracked and never decremented.
type Product struct {
	ID           int64
	Title        string
	Slug         string
	Price        int64
	Quantity     *int32
	Status       ProductStatus
	VendorUserID uuid.UUID
	ImageURL     string
	CreatedAt    time.Time
	UpdatedAt    time.Time

	Vendor         *Vendor
	VariationTypes []VariationType
	Variations     []ProductVariation
}

// VariationType is one selectable axis of a product, e.g. "Color".
type VariationType struct {
	ID        int64
	ProductID int64
	Name      string
	Options   []VariationTypeOption
}

// VariationTypeOption is one concrete choice on a variation type. It may carry
// its own image which takes precedence over the product image in the cart.
type VariationTypeOption struct {
	ID              int64
	VariationTypeID int64
	Name            string
	ImageURL        string
}

// ProductVariation binds one full option selection to a price and/or stock
// override. Nil fields fall back to the product values.
type ProductVariation struct {
	ID        int64
	ProductID int64
	OptionIDs OptionSet
	Price     *int64
	Quantity  *int32
}

// VariationForOptions returns the variation whose option set equals the given
// selection, or nil when no variation matches.
func (p *Product) VariationForOptions(optionIDs OptionSet) *ProductVariation {
	for i := range p.Variations {
		if p.Variations[i].OptionIDs.Equal(optionIDs) {
			return &p.Variations[i]
		}
	}

	return nil
}

// PriceForOptions resolves the unit price for an option selection: the matching
// variation's override when present, otherwise the product base price. The
// match is order-independent.
func (p *Product) PriceForOptions(optionIDs OptionSet) int64 {
	if variation := p.VariationForOptions(optionIDs); variation != nil && variation.Price != nil {
		return *variation.Price
	}

	return p.Price
}

// ImageForOptions returns the image of the first selected option (in selection
// order) that carries one, falling back to the product image.
func (p *Product) ImageForOptions(optionIDs OptionSet) string {
	for _, optionID := range optionIDs {
		if option := p.optionByID(optionID); option != nil && option.ImageURL != "" {
			return option.ImageURL
		}
	}

	return p.ImageURL
}

// DefaultOptionSelection picks the first option of every variation type. Used
// when a shopper adds to cart without explicit selections.
func (p *Product) DefaultOptionSelection() OptionSet {
	selection := make(OptionSet, 0, len(p.VariationTypes))
	for _, variationType := range p.VariationTypes {
		if len(variationType.Options) > 0 {
			selection = append(selection, variationType.Options[0].ID)
		}
	}

	return selection
}

// OptionByID resolves a selected option together with its variation type.
func (p *Product) OptionByID(optionID int64) (*VariationTypeOption, *VariationType) {
	for i := range p.VariationTypes {
		variationType := &p.VariationTypes[i]
		for j := range variationType.Options {
			if variationType.Options[j].ID == optionID {
				return &variationType.Options[j], variationType
			}
		}
	}

	return nil, nil
}

func (p *Product) optionByID(optionID int64) *VariationTypeOption {
	option, _ := p.OptionByID(optionID)

	return option
}
