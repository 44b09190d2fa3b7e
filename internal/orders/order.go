package orders

import (
	"time"

	"github.com/dramacollection/storefront/internal/cart"
)

// Status tracks an order through the manual fulfilment flow. Orders are
// confirmed over WhatsApp by a human, so the machine states are coarse.
type Status string

const (
	StatusPending   Status = "pending"
	StatusConfirmed Status = "confirmed"
	StatusCancelled Status = "cancelled"
)

// Order is a checkout record: the cart snapshot at handoff time plus the
// computed total. The snapshot is immutable once written; fulfilment only
// moves the status.
type Order struct {
	ID        string      `json:"id"`
	Email     string      `json:"email"`
	Lines     []cart.Line `json:"lines"`
	Total     float64     `json:"total"`
	Status    Status      `json:"status"`
	CreatedAt time.Time   `json:"created_at"`
}

// CheckoutResult is what the storefront needs to hand the order to
// WhatsApp: the recorded order plus the prefilled conversation link.
type CheckoutResult struct {
	Order       *Order `json:"order"`
	WhatsAppURL string `json:"whatsapp_url"`
}
