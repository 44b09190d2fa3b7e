// Copyright (c) 2026 Drama Collection. All rights reserved.
// Author: dev@dramacollection.com

/*
Package favorites implements the per-identity favorites set.

Favorites are product snapshots keyed by product id, unique within one
identity's set and namespaced by email. Unlike the cart there is no
quantity: a product is either favorited or it is not, and adding an
already-favorited product is an idempotent no-op.
*/
package favorites

import (
	"github.com/dramacollection/storefront/internal/catalog/product"
)

// Item is a favorited product snapshot, taken at favorite time so the list
// stays renderable even if the catalog row changes later.
type Item struct {
	ProductID string  `json:"product_id"`
	Name      string  `json:"name"`
	Price     float64 `json:"price"`
	ImageURL  string  `json:"image_url"`
	Category  string  `json:"category"`
}

// NewItem snapshots a catalog product into a favorites entry.
func NewItem(p product.Product) Item {
	return Item{
		ProductID: p.ID,
		Name:      p.Name,
		Price:     p.Price,
		ImageURL:  p.ImageURL,
		Category:  p.Category,
	}
}

// Set is one identity's favorites, ordered by insertion.
type Set struct {
	Items []Item `json:"items"`
}

// Contains reports whether a product id is in the set.
func (s *Set) Contains(productID string) bool {
	for _, item := range s.Items {
		if item.ProductID == productID {
			return true
		}
	}
	return false
}

// Add appends an item unless its product id is already present.
// Returns true when the set changed.
func (s *Set) Add(item Item) bool {
	if item.ProductID == "" || s.Contains(item.ProductID) {
		return false
	}
	s.Items = append(s.Items, item)
	return true
}

// Remove deletes an item by product id. Returns true when the set changed.
func (s *Set) Remove(productID string) bool {
	for i := range s.Items {
		if s.Items[i].ProductID == productID {
			s.Items = append(s.Items[:i], s.Items[i+1:]...)
			return true
		}
	}
	return false
}
