// Copyright (c) 2026 Drama Collection. All rights reserved.
// Author: dev@dramacollection.com

package cart_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/dramacollection/storefront/internal/cart"
	"github.com/dramacollection/storefront/internal/catalog/product"
)

func pearlNecklace() product.Product {
	return product.Product{
		ID:       "p-1",
		Name:     "İnci Kolye",
		Price:    100,
		ImageURL: "https://cdn.example.com/inci-kolye.jpg",
		Category: "kolye",
		Stock:    2,
	}
}

/*
TestCart_AddClampsAtStock verifies that repeated adds never push a line's
quantity past the product's stock.
*/
func TestCart_AddClampsAtStock(t *testing.T) {
	c := &cart.Cart{}
	p := pearlNecklace() // stock 2

	// 1. First add creates the line with quantity 1
	c.Add(p)
	assert.Equal(t, 1, c.QuantityOf(p.ID))

	// 2. Second add increments to stock
	c.Add(p)
	assert.Equal(t, 2, c.QuantityOf(p.ID))

	// 3. Further adds clamp silently
	c.Add(p)
	c.Add(p)
	assert.Equal(t, 2, c.QuantityOf(p.ID))
	assert.Len(t, c.Lines, 1)
}

/*
TestCart_AddTracksRestock verifies that every add refreshes the line's stock
snapshot from the catalog row it was handed, so a restock lifts the clamp and
a shrink tightens it.
*/
func TestCart_AddTracksRestock(t *testing.T) {
	c := &cart.Cart{}
	p := pearlNecklace() // stock 2

	// 1. Fill the line up to the original stock
	c.Add(p)
	c.Add(p)
	c.Add(p)
	assert.Equal(t, 2, c.QuantityOf(p.ID))

	// 2. A restocked row raises the clamp on the next add
	p.Stock = 5
	c.Add(p)
	assert.Equal(t, 3, c.QuantityOf(p.ID))
	assert.Equal(t, 5, c.Lines[0].Stock)

	// 3. A shrunk row pulls the quantity back down to the new stock
	p.Stock = 1
	c.Add(p)
	assert.Equal(t, 1, c.QuantityOf(p.ID))
	assert.Equal(t, 1, c.Lines[0].Stock)
}

/*
TestCart_AddInvalidIsNoOp verifies that malformed products never enter the
cart: empty id, negative price, and non-positive stock are all ignored.
*/
func TestCart_AddInvalidIsNoOp(t *testing.T) {
	c := &cart.Cart{}

	// 1. Empty product id
	noID := pearlNecklace()
	noID.ID = ""
	c.Add(noID)
	assert.True(t, c.IsEmpty())

	// 2. Negative price
	negative := pearlNecklace()
	negative.Price = -5
	c.Add(negative)
	assert.True(t, c.IsEmpty())

	// 3. Out of stock
	soldOut := pearlNecklace()
	soldOut.Stock = 0
	c.Add(soldOut)
	assert.True(t, c.IsEmpty())
}

/*
TestCart_TotalAcrossLines verifies the fresh total over a multi-line cart.
*/
func TestCart_TotalAcrossLines(t *testing.T) {
	c := &cart.Cart{}

	necklace := pearlNecklace() // 100 TL
	bracelet := product.Product{
		ID:       "p-2",
		Name:     "Gümüş Bileklik",
		Price:    15,
		Category: "bileklik",
		Stock:    5,
	}

	// 1. One necklace, two bracelets: 100 + 2*15
	c.Add(necklace)
	c.Add(bracelet)
	c.Add(bracelet)
	assert.InDelta(t, 130.0, c.Total(), 0.001)

	// 2. Removing a bracelet updates the total immediately
	c.DecrementOrRemove(bracelet.ID)
	assert.InDelta(t, 115.0, c.Total(), 0.001)
}

/*
TestCart_DecrementRemovesAtZero verifies monotonic decrement semantics:
the line disappears when the quantity hits zero and further decrements are
no-ops.
*/
func TestCart_DecrementRemovesAtZero(t *testing.T) {
	c := &cart.Cart{}
	p := pearlNecklace()

	c.Add(p)
	c.Add(p)
	assert.Equal(t, 2, c.QuantityOf(p.ID))

	// 1. Step down to 1
	c.DecrementOrRemove(p.ID)
	assert.Equal(t, 1, c.QuantityOf(p.ID))

	// 2. Step down removes the line
	c.DecrementOrRemove(p.ID)
	assert.Equal(t, 0, c.QuantityOf(p.ID))
	assert.True(t, c.IsEmpty())

	// 3. Decrement on an absent line is a no-op
	c.DecrementOrRemove(p.ID)
	assert.True(t, c.IsEmpty())
}

/*
TestCart_RemoveAllIgnoresQuantity verifies that RemoveAll deletes the line
in one step regardless of its quantity.
*/
func TestCart_RemoveAllIgnoresQuantity(t *testing.T) {
	c := &cart.Cart{}
	p := pearlNecklace()

	c.Add(p)
	c.Add(p)

	c.RemoveAll(p.ID)
	assert.True(t, c.IsEmpty())
}

/*
TestCart_IncreaseNeverCreates verifies that IncreaseQuantity only touches
existing lines, unlike Add.
*/
func TestCart_IncreaseNeverCreates(t *testing.T) {
	c := &cart.Cart{}

	// 1. Increase on an empty cart does nothing
	c.IncreaseQuantity("p-1")
	assert.True(t, c.IsEmpty())

	// 2. Increase on an existing line clamps at stock
	p := pearlNecklace()
	c.Add(p)
	c.IncreaseQuantity(p.ID)
	c.IncreaseQuantity(p.ID)
	assert.Equal(t, 2, c.QuantityOf(p.ID))
}

/*
TestSanitize verifies the load-time filter: out-of-invariant persisted lines
are dropped while healthy lines survive untouched.
*/
func TestSanitize(t *testing.T) {
	lines := []cart.Line{
		{ProductID: "ok", Price: 10, Quantity: 1, Stock: 3},
		{ProductID: "", Price: 10, Quantity: 1, Stock: 3},         // no id
		{ProductID: "neg", Price: -1, Quantity: 1, Stock: 3},      // negative price
		{ProductID: "zero", Price: 10, Quantity: 0, Stock: 3},     // non-positive quantity
		{ProductID: "over", Price: 10, Quantity: 5, Stock: 3},     // quantity above stock
		{ProductID: "edge", Price: 0, Quantity: 2, Stock: 2},      // free item at stock limit
	}

	clean := cart.Sanitize(lines)

	assert.Len(t, clean, 2)
	assert.Equal(t, "ok", clean[0].ProductID)
	assert.Equal(t, "edge", clean[1].ProductID)
}
