// Copyright (c) 2026 Drama Collection. All rights reserved.
// Author: dev@dramacollection.com

package orders_test

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/dramacollection/storefront/internal/cart"
	"github.com/dramacollection/storefront/internal/orders"
)

/*
TestBuildOrderMessage verifies the Turkish summary layout: greeting, one
bullet per line with the line subtotal, and the grand total.
*/
func TestBuildOrderMessage(t *testing.T) {
	lines := []cart.Line{
		{ProductID: "p-1", Name: "İnci Kolye", Price: 100, Quantity: 1, Stock: 2},
		{ProductID: "p-2", Name: "Gümüş Bileklik", Price: 15, Quantity: 2, Stock: 5},
	}

	message := orders.BuildOrderMessage(lines, 130)

	expected := "Merhaba, aşağıdaki ürünleri sipariş vermek istiyorum:\n\n" +
		"• İnci Kolye x1 - ₺100.00\n" +
		"• Gümüş Bileklik x2 - ₺30.00" +
		"\n\nToplam: ₺130.00"
	assert.Equal(t, expected, message)
}

/*
TestBuildWhatsAppURL verifies the deep link shape: the wa.me host, the
configured number, and percent-encoded text with no '+' for spaces.
*/
func TestBuildWhatsAppURL(t *testing.T) {
	link := orders.BuildWhatsAppURL("905550581207", "Merhaba dünya")

	assert.True(t, strings.HasPrefix(link, "https://wa.me/905550581207?text="))
	assert.NotContains(t, link, "+")
	assert.Contains(t, link, "%20")
}
