package orders

import "context"

type Repository interface {
	CreateOrder(context context.Context, o *Order) error
	ListOrders(context context.Context, limit, offset int) ([]*Order, int, error)
	ListOrdersByEmail(context context.Context, email string, limit, offset int) ([]*Order, int, error)
	GetOrderByID(context context.Context, id string) (*Order, error)
	UpdateOrderStatus(context context.Context, id string, status Status) error
	CountOrders(context context.Context) (int, error)
	TotalRevenue(context context.Context) (float64, error)
}
