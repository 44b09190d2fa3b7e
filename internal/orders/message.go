// Copyright (c) 2026 Drama Collection. All rights reserved.
// Author: dev@dramacollection.com

package orders

import (
	"fmt"
	"net/url"
	"strings"

	"github.com/dramacollection/storefront/internal/cart"
	"github.com/dramacollection/storefront/pkg/slice"
)

// BuildOrderMessage renders the Turkish order summary that opens the
// WhatsApp conversation: a greeting, one bullet per line with its subtotal,
// and the grand total.
func BuildOrderMessage(lines []cart.Line, total float64) string {
	bullets := slice.Map(lines, func(line cart.Line) string {
		return fmt.Sprintf("• %s x%d - ₺%.2f", line.Name, line.Quantity, line.Subtotal())
	})

	var b strings.Builder
	b.WriteString("Merhaba, aşağıdaki ürünleri sipariş vermek istiyorum:\n\n")
	b.WriteString(strings.Join(bullets, "\n"))
	fmt.Fprintf(&b, "\n\nToplam: ₺%.2f", total)
	return b.String()
}

// BuildWhatsAppURL builds the wa.me deep link carrying the order message.
//
// Spaces must be percent-encoded rather than '+': WhatsApp renders '+'
// literally inside the prefilled text.
func BuildWhatsAppURL(number string, message string) string {
	escaped := strings.ReplaceAll(url.QueryEscape(message), "+", "%20")
	return fmt.Sprintf("https://wa.me/%s?text=%s", number, escaped)
}
