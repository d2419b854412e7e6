package mldomain

type OrderSearchResponse struct {
	Results []Order `json:"results"`
	Paging  Paging  `json:"paging"`
}

type Order struct {
	ID          int64   `json:"id"`
	Status      string  `json:"status"`
	TotalAmount float64 `json:"total_amount"`
	PaidAmount  float64 `json:"paid_amount"`
	CurrencyID  string  `json:"currency_id"`
	DateCreated string  `json:"date_created"`
	DateClosed  *string `json:"date_closed"`
	Buyer       Buyer   `json:"buyer"`
}

type Buyer struct {
	ID       int64  `json:"id"`
	Nickname string `json:"nickname"`
}
