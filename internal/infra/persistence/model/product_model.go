// Package model contains the GORM persistence models mirroring the database tables.
package model

import (
	"time"

	"github.com/google/uuid"
)

// ProductModel mirrors the 'products' table. Catalog rows use bigint identity
// keys; prices are minor currency units. A NULL quantity means untracked stock.
type ProductModel struct {
	ID           int64  `gorm:"primaryKey;autoIncrement"`
	Title        string `gorm:"type:varchar(255);not null"`
	Slug         string `gorm:"type:varchar(255);unique;not null"`
	Price        int64  `gorm:"not null"`
	Quantity     *int32
	Status       string    `gorm:"type:varchar(20);not null;default:'draft';index"`
	VendorUserID uuid.UUID `gorm:"type:uuid;not null;index"`
	ImageURL     string    `gorm:"type:text"`
	CreatedAt    time.Time
	UpdatedAt    time.Time

	Vendor         *VendorModel            `gorm:"foreignKey:VendorUserID;references:UserID"`
	VariationTypes []VariationTypeModel    `gorm:"foreignKey:ProductID"`
	Variations     []ProductVariationModel `gorm:"foreignKey:ProductID"`
}

// TableName explicitly sets the table name for GORM.
func (ProductModel) TableName() string {
	return "products"
}

// VariationTypeModel mirrors the 'variation_types' table.
type VariationTypeModel struct {
	ID        int64  `gorm:"primaryKey;autoIncrement"`
	ProductID int64  `gorm:"not null;index"`
	Name      string `gorm:"type:varchar(100);not null"`
	CreatedAt time.Time
	UpdatedAt time.Time

	Options []VariationTypeOptionModel `gorm:"foreignKey:VariationTypeID"`
}

// TableName explicitly sets the table name for GORM.
func (VariationTypeModel) TableName() string {
	return "variation_types"
}

// VariationTypeOptionModel mirrors the 'variation_type_options' table.
type VariationTypeOptionModel struct {
	ID              int64  `gorm:"primaryKey;autoIncrement"`
	VariationTypeID int64  `gorm:"not null;index"`
	Name            string `gorm:"type:varchar(100);not null"`
	ImageURL        string `gorm:"type:text"`
	CreatedAt       time.Time
	UpdatedAt       time.Time
}

// TableName explicitly sets the table name for GORM.
func (VariationTypeOptionModel) TableName() string {
	return "variation_type_options"
}

// ProductVariationModel mirrors the 'product_variations' table. OptionIDs holds
// the canonical JSON of the sorted option id set, so equal selections always
// land on the same row regardless of input order.
type ProductVariationModel struct {
	ID        int64  `gorm:"primaryKey;autoIncrement"`
	ProductID int64  `gorm:"not null;uniqueIndex:idx_product_variations_selection"`
	OptionIDs string `gorm:"type:varchar(255);not null;uniqueIndex:idx_product_variations_selection"`
	Price     *int64
	Quantity  *int32
	CreatedAt time.Time
	UpdatedAt time.Time
}

// TableName explicitly sets the table name for GORM.
func (ProductVariationModel) TableName() string {
	return "product_variations"
}
