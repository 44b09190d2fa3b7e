// Copyright (c) 2026 Drama Collection. All rights reserved.
// Author: dev@dramacollection.com

/*
Package cart implements the per-identity shopping cart state machine.

A cart is an ordered collection of lines, unique by product id, namespaced by
the owning identity's email. Every mutation re-serializes the full cart to the
identity's namespace; switching identities swaps the entire visible cart.

# Invariants

  - A line's quantity never exceeds its stock (increments clamp, never error).
  - A line with quantity 0 does not exist; it is removed instead.
  - The total is always computed fresh from the current lines, never cached.

# Validation Semantics

Malformed mutations (empty id, negative price, zero stock) are silent no-ops,
not errors: the storefront UI treats an impossible add as "nothing happened".
Malformed persisted entries are filtered out on load the same way.
*/
package cart

import (
	"github.com/dramacollection/storefront/internal/catalog/product"
)

// # Domain Entities

// Line is a cart entry: a product snapshot plus quantity bookkeeping.
//
// The snapshot is taken at add time so the cart remains renderable even if
// the catalog row changes later; stock is re-read from the catalog on every
// add so the clamp always uses the freshest value the service saw.
type Line struct {
	ProductID string  `json:"product_id"`
	Name      string  `json:"name"`
	Price     float64 `json:"price"`
	ImageURL  string  `json:"image_url"`
	Category  string  `json:"category"`
	Quantity  int     `json:"quantity"`
	Stock     int     `json:"stock"`
}

// Subtotal returns price × quantity for this line.
func (l Line) Subtotal() float64 {
	return l.Price * float64(l.Quantity)
}

// Valid reports whether a line satisfies the cart invariants.
//
// Used both as the load-time sanitation filter and as the mutation guard.
func (l Line) Valid() bool {
	return l.ProductID != "" &&
		l.Price >= 0 &&
		l.Quantity > 0 &&
		l.Stock >= l.Quantity
}

// Cart is the in-memory cart state for one identity.
//
// # Concurrency
//
// Cart is not safe for concurrent use. Each request loads its own copy from
// the identity's namespace, mutates it, and writes it back (last write wins).
type Cart struct {
	Lines []Line `json:"lines"`
}

// # State Machine

// Add inserts a product or increments its existing line by one.
//
// Silent no-op if the product id is empty, the price is negative, or the
// effective stock is not positive. Increments clamp at stock: an exceeding
// attempt leaves the quantity at stock with no error.
func (c *Cart) Add(p product.Product) {
	if p.ID == "" || p.Price < 0 || p.Stock <= 0 {
		return
	}

	for i := range c.Lines {
		if c.Lines[i].ProductID == p.ID {
			c.Lines[i].Stock = p.Stock
			c.Lines[i].Quantity++
			if c.Lines[i].Quantity > c.Lines[i].Stock {
				c.Lines[i].Quantity = c.Lines[i].Stock
			}
			return
		}
	}

	c.Lines = append(c.Lines, Line{
		ProductID: p.ID,
		Name:      p.Name,
		Price:     p.Price,
		ImageURL:  p.ImageURL,
		Category:  p.Category,
		Quantity:  1,
		Stock:     p.Stock,
	})
}

// DecrementOrRemove lowers a line's quantity by one, deleting the line when
// the quantity reaches zero. No-op if the id is not present.
func (c *Cart) DecrementOrRemove(productID string) {
	for i := range c.Lines {
		if c.Lines[i].ProductID == productID {
			c.Lines[i].Quantity--
			if c.Lines[i].Quantity <= 0 {
				c.Lines = append(c.Lines[:i], c.Lines[i+1:]...)
			}
			return
		}
	}
}

// RemoveAll deletes a line unconditionally regardless of its quantity.
// No-op if the id is not present.
func (c *Cart) RemoveAll(productID string) {
	for i := range c.Lines {
		if c.Lines[i].ProductID == productID {
			c.Lines = append(c.Lines[:i], c.Lines[i+1:]...)
			return
		}
	}
}

// IncreaseQuantity increments an existing line by one, clamped at stock.
// Unlike [Cart.Add] it never creates a line. No-op if the id is not present.
func (c *Cart) IncreaseQuantity(productID string) {
	for i := range c.Lines {
		if c.Lines[i].ProductID == productID {
			if c.Lines[i].Quantity < c.Lines[i].Stock {
				c.Lines[i].Quantity++
			}
			return
		}
	}
}

// DecreaseQuantity is an alias for [Cart.DecrementOrRemove]: it decrements an
// existing line, deleting it at zero.
func (c *Cart) DecreaseQuantity(productID string) {
	c.DecrementOrRemove(productID)
}

// QuantityOf returns the current quantity for a product id, or 0 if absent.
func (c *Cart) QuantityOf(productID string) int {
	for _, line := range c.Lines {
		if line.ProductID == productID {
			return line.Quantity
		}
	}
	return 0
}

// Total returns the sum of price × quantity over all current lines.
//
// It is recomputed on every call so it can never go stale relative to the
// lines themselves.
func (c *Cart) Total() float64 {
	var total float64
	for _, line := range c.Lines {
		total += line.Subtotal()
	}
	return total
}

// IsEmpty reports whether the cart has no lines.
func (c *Cart) IsEmpty() bool {
	return len(c.Lines) == 0
}

// # Load-Time Sanitation

// Sanitize filters out lines that violate the cart invariants.
//
// Persisted carts can carry entries written by older clients or corrupted by
// hand: wrong types fail JSON decoding upstream, while out-of-invariant
// values (negative price, quantity above stock, non-positive quantity) are
// dropped here. This is a defensive pass, never a hard failure.
func Sanitize(lines []Line) []Line {
	var clean []Line
	for _, line := range lines {
		if line.Valid() {
			clean = append(clean, line)
		}
	}
	return clean
}
