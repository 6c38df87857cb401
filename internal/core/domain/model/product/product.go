// Package product holds the product entity referenced by order lines.
// Products are owned by another service; this model is read-only here and
// supplies the current unit price snapshotted into lines at order creation.
package product

import (
	"errors"

	"shoporders/internal/core/domain/model/kernel"
)

// ErrProductIsNotConstructed is returned when a Product instance was not created
// through the NewProduct factory method.
var ErrProductIsNotConstructed = errors.New("Product must be created via NewProduct constructor")

// Product is a catalog item that can appear on an order line.
type Product struct {
	id            kernel.UUID
	name          string
	price         kernel.Price
	isConstructed bool
}

// NewProduct creates a product reference with a validated identifier and price.
func NewProduct(id kernel.UUID, name string, price kernel.Price) (*Product, error) {
	if err := errors.Join(id.Validate(), price.Validate()); err != nil {
		return nil, err
	}

	return &Product{
		id:            id,
		name:          name,
		price:         price,
		isConstructed: true,
	}, nil
}

// Validate ensures the Product instance was properly constructed.
func (p *Product) Validate() error {
	if p == nil || !p.isConstructed {
		return ErrProductIsNotConstructed
	}
	return nil
}

// ID returns the product's unique identifier.
func (p *Product) ID() kernel.UUID {
	return p.id
}

// Name returns the catalog name.
func (p *Product) Name() string {
	return p.name
}

// Price returns the current unit price.
func (p *Product) Price() kernel.Price {
	return p.price
}
