package domain

import "time"

type StockStatus string

const (
	StockStatusOutOfStock  StockStatus = "out_of_stock"
	StockStatusLowQuality  StockStatus = "low_quality"
	StockStatusGoodQuality StockStatus = "good_quality"
)

type StockRecord struct {
	AccountID      string      `json:"account_id"`
	InventoryID    string      `json:"inventory_id"`
	ExternalItemID string      `json:"external_item_id"`
	AvailableUnits int         `json:"available_units"`
	ReservedUnits  int         `json:"reserved_units"`
	InboundUnits   int         `json:"inbound_units"`
	DamagedUnits   int         `json:"damaged_units"`
	LostUnits      int         `json:"lost_units"`
	StockStatus    StockStatus `json:"stock_status"`
	SyncedAt       time.Time   `json:"synced_at"`
}

// ClassifyStockStatus considera ruim quando avariados+perdidos passam de 10% do disponível
func ClassifyStockStatus(available, damaged, lost int) StockStatus {
	if available <= 0 {
		return StockStatusOutOfStock
	}

	if float64(damaged+lost) > float64(available)*0.10 {
		return StockStatusLowQuality
	}

	return StockStatusGoodQuality
}
