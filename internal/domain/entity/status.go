package entity

// ProductStatus represents the storefront visibility of a product.
type ProductStatus string

const (
	// ProductStatusDraft hides the product from the storefront.
	ProductStatusDraft ProductStatus = "draft"
	// ProductStatusPublished lists the product, provided its vendor is approved.
	ProductStatusPublished ProductStatus = "published"
)

// String returns the string representation of the ProductStatus.
func (s ProductStatus) String() string {
	return string(s)
}

// OrderStatus represents the payment state of an order. The transition is
// monotonic: a paid order never returns to draft.
type OrderStatus string

const (
	// OrderStatusDraft marks an order created at checkout, awaiting payment.
	OrderStatusDraft OrderStatus = "draft"
	// OrderStatusPaid marks an order whose checkout session completed.
	OrderStatusPaid OrderStatus = "paid"
)

// String returns the string representation of the OrderStatus.
func (s OrderStatus) String() string {
	return string(s)
}

// VendorStatus represents the approval state of a vendor account.
type VendorStatus string

const (
	// VendorStatusPending marks a vendor awaiting approval.
	VendorStatusPending VendorStatus = "pending"
	// VendorStatusApproved marks a vendor whose products are sellable.
	VendorStatusApproved VendorStatus = "approved"
	// VendorStatusRejected marks a refused vendor application.
	VendorStatusRejected VendorStatus = "rejected"
)

// String returns the string representation of the VendorStatus.
func (s VendorStatus) String() string {
	return string(s)
}
