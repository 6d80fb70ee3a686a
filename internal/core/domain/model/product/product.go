// Package product contains the Product aggregate: a seller's listing with the
// price that order totals are computed from at creation time.
package product

import (
	"errors"

	"marketplace/internal/core/domain/model/kernel"
	"marketplace/internal/pkg/errs"
)

var (
	// ErrProductIsNotConstructed is returned when a Product instance was not
	// created through NewProduct or RestoreProduct.
	ErrProductIsNotConstructed = errors.New("Product must be created via NewProduct or RestoreProduct constructor")
)

// Product is a seller's listing. Orders capture the price at creation; later
// price changes on the product never affect existing orders.
type Product struct {
	id          kernel.UUID
	sellerID    kernel.UUID
	title       string
	description string
	price       kernel.Money
	stock       int
	isActive    bool

	isConstructed bool
}

// NewProduct creates an active product listing.
func NewProduct(
	id kernel.UUID,
	sellerID kernel.UUID,
	title string,
	description string,
	price kernel.Money,
	stock int,
) (*Product, error) {
	p := &Product{
		isActive:      true,
		isConstructed: true,
	}

	if err := errors.Join(
		p.setID(id),
		p.setSellerID(sellerID),
		p.setTitle(title),
		p.setPrice(price),
		p.setStock(stock),
	); err != nil {
		return nil, err
	}

	p.description = description
	return p, nil
}

// RestoreProduct reconstructs a product from persistence.
func RestoreProduct(
	id kernel.UUID,
	sellerID kernel.UUID,
	title string,
	description string,
	price kernel.Money,
	stock int,
	isActive bool,
) (*Product, error) {
	p, err := NewProduct(id, sellerID, title, description, price, stock)
	if err != nil {
		return nil, err
	}

	p.isActive = isActive
	return p, nil
}

// Validate ensures the Product instance was properly constructed.
func (p *Product) Validate() error {
	if p == nil || !p.isConstructed {
		return ErrProductIsNotConstructed
	}
	return nil
}

// IsEqual compares two products by their unique identifiers.
func (p *Product) IsEqual(other *Product) bool {
	return other != nil && p.id.IsEqual(other.id)
}

// ID returns the product's unique identifier.
func (p *Product) ID() kernel.UUID {
	return p.id
}

// SellerID returns the profile ID of the listing seller.
func (p *Product) SellerID() kernel.UUID {
	return p.sellerID
}

// Title returns the listing title.
func (p *Product) Title() string {
	return p.title
}

// Description returns the listing description, possibly empty.
func (p *Product) Description() string {
	return p.description
}

// Price returns the current per-item price.
func (p *Product) Price() kernel.Money {
	return p.price
}

// Stock returns the number of items available.
func (p *Product) Stock() int {
	return p.stock
}

// IsActive reports whether the listing can be ordered.
func (p *Product) IsActive() bool {
	return p.isActive
}

// IsSoldBy reports whether the given profile owns this listing.
func (p *Product) IsSoldBy(sellerID kernel.UUID) bool {
	return p.sellerID.IsEqual(sellerID)
}

// Deactivate takes the listing off the market. Existing orders are unaffected.
func (p *Product) Deactivate() {
	p.isActive = false
}

func (p *Product) setID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}
	p.id = id
	return nil
}

func (p *Product) setSellerID(sellerID kernel.UUID) error {
	if err := sellerID.Validate(); err != nil {
		return err
	}
	p.sellerID = sellerID
	return nil
}

func (p *Product) setTitle(title string) error {
	if title == "" {
		return errs.NewValueIsRequiredError("title")
	}
	p.title = title
	return nil
}

func (p *Product) setPrice(price kernel.Money) error {
	if err := price.Validate(); err != nil {
		return err
	}
	p.price = price
	return nil
}

func (p *Product) setStock(stock int) error {
	if stock < 0 {
		return errs.NewValueIsOutOfRangeError("stock", stock, 0, "unbounded")
	}
	p.stock = stock
	return nil
}
