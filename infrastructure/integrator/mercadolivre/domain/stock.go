package mldomain

type FulfillmentStock struct {
	InventoryID          string              `json:"inventory_id"`
	Total                int                 `json:"total"`
	AvailableQuantity    int                 `json:"available_quantity"`
	NotAvailableQuantity int                 `json:"not_available_quantity"`
	NotAvailableDetail   []StockDetail       `json:"not_available_detail"`
	ExternalReferences   []ExternalReference `json:"external_references"`
}

type StockDetail struct {
	Status   string `json:"status"`
	Quantity int    `json:"quantity"`
}

type ExternalReference struct {
	Type string `json:"type"`
	ID   string `json:"id"`
}
