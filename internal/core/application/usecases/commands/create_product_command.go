package commands

import (
	"errors"

	"marketplace/internal/core/domain/model/kernel"
	"marketplace/internal/pkg/errs"
	"marketplace/internal/pkg/guard"
)

var ErrCreateProductCommandIsNotConstructed = errors.New(
	"CreateProductCommand must be created via NewCreateProductCommand constructor",
)

// CreateProductCommand represents a seller's request to list a new product.
type CreateProductCommand struct { //nolint:recvcheck //using for validation
	productID   kernel.UUID
	sellerID    kernel.UUID
	title       string
	description string
	price       kernel.Money
	stock       int

	guard guard.ConstructorGuard
}

// NewCreateProductCommand creates a command to list a product.
// Title must be non-empty, price must be constructed and stock non-negative.
func NewCreateProductCommand(
	productID kernel.UUID,
	sellerID kernel.UUID,
	title string,
	description string,
	price kernel.Money,
	stock int,
) (CreateProductCommand, error) {
	cmd := CreateProductCommand{
		description: description,
		guard:       guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		cmd.setProductID(productID),
		cmd.setSellerID(sellerID),
		cmd.setTitle(title),
		cmd.setPrice(price),
		cmd.setStock(stock),
	); err != nil {
		return CreateProductCommand{}, err
	}

	return cmd, nil
}

// Validate ensures the command was created through the constructor.
func (c CreateProductCommand) Validate() error {
	return c.guard.Validate(ErrCreateProductCommandIsNotConstructed)
}

// ProductID returns the unique identifier for the new product.
func (c CreateProductCommand) ProductID() kernel.UUID {
	return c.productID
}

// SellerID returns the listing seller's profile identifier.
func (c CreateProductCommand) SellerID() kernel.UUID {
	return c.sellerID
}

// Title returns the product title.
func (c CreateProductCommand) Title() string {
	return c.title
}

// Description returns the product description.
func (c CreateProductCommand) Description() string {
	return c.description
}

// Price returns the per-item price.
func (c CreateProductCommand) Price() kernel.Money {
	return c.price
}

// Stock returns the number of items available.
func (c CreateProductCommand) Stock() int {
	return c.stock
}

func (c *CreateProductCommand) setProductID(productID kernel.UUID) error {
	if err := productID.Validate(); err != nil {
		return err
	}

	c.productID = productID
	return nil
}

func (c *CreateProductCommand) setSellerID(sellerID kernel.UUID) error {
	if err := sellerID.Validate(); err != nil {
		return err
	}

	c.sellerID = sellerID
	return nil
}

func (c *CreateProductCommand) setTitle(title string) error {
	if title == "" {
		return errs.NewValueIsRequiredError("title")
	}

	c.title = title
	return nil
}

func (c *CreateProductCommand) setPrice(price kernel.Money) error {
	if err := price.Validate(); err != nil {
		return err
	}

	c.price = price
	return nil
}

func (c *CreateProductCommand) setStock(stock int) error {
	if stock < 0 {
		return errs.NewValueIsInvalidError("stock")
	}

	c.stock = stock
	return nil
}
