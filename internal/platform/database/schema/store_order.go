package schema

// StoreOrderTable represents the 'store.order' table
//
// Lines are stored as a JSONB snapshot of the cart at checkout time, mirroring
// the document shape the messaging handoff is built from.
type StoreOrderTable struct {
	Table     string
	ID        string
	Email     string
	Lines     string
	Total     string
	Status    string
	CreatedAt string
}

// StoreOrder is the schema definition for store.order
var StoreOrder = StoreOrderTable{
	Table:     "store.order",
	ID:        "id",
	Email:     "email",
	Lines:     "lines",
	Total:     "total",
	Status:    "status",
	CreatedAt: "createdat",
}
