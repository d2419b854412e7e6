package domain

import "time"

type OrderStatus string

const (
	OrderStatusPaid            OrderStatus = "paid"
	OrderStatusConfirmed       OrderStatus = "confirmed"
	OrderStatusPaymentRequired OrderStatus = "payment_required"
	OrderStatusCancelled       OrderStatus = "cancelled"
)

type Order struct {
	AccountID       string      `json:"account_id"`
	ExternalOrderID string      `json:"external_order_id"`
	Status          OrderStatus `json:"status"`
	TotalAmount     float64     `json:"total_amount"`
	PaidAmount      float64     `json:"paid_amount"`
	CurrencyID      string      `json:"currency_id"`
	BuyerID         string      `json:"buyer_id"`
	BuyerNickname   string      `json:"buyer_nickname"`
	DateCreated     time.Time   `json:"date_created"`
	DateClosed      *time.Time  `json:"date_closed"`
	SyncedAt        time.Time   `json:"synced_at"`
}

func (o *Order) IsPaid() bool {
	return o.Status == OrderStatusPaid
}

type OrderPage struct {
	Orders []*Order
	Total  int
}
