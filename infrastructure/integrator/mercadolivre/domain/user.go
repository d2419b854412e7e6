package mldomain

type User struct {
	ID               int64            `json:"id"`
	Nickname         string           `json:"nickname"`
	SiteID           string           `json:"site_id"`
	SellerReputation SellerReputation `json:"seller_reputation"`
}

type SellerReputation struct {
	LevelID           *string           `json:"level_id"`
	PowerSellerStatus *string           `json:"power_seller_status"`
	RealLevel         *string           `json:"real_level"`
	ProtectionEndDate *string           `json:"protection_end_date"`
	Transactions      Transactions      `json:"transactions"`
	Metrics           ReputationMetrics `json:"metrics"`
}

type Transactions struct {
	Total     int    `json:"total"`
	Completed int    `json:"completed"`
	Canceled  int    `json:"canceled"`
	Period    string `json:"period"`
}

type ReputationMetrics struct {
	Sales               SalesMetric   `json:"sales"`
	Claims              QualityMetric `json:"claims"`
	DelayedHandlingTime QualityMetric `json:"delayed_handling_time"`
	Cancellations       QualityMetric `json:"cancellations"`
}

type SalesMetric struct {
	Period    string `json:"period"`
	Completed int    `json:"completed"`
}

// QualityMetric traz o valor exibido e, durante o Decola, o valor real em excluded
type QualityMetric struct {
	Period   string          `json:"period"`
	Rate     float64         `json:"rate"`
	Value    int             `json:"value"`
	Excluded *ExcludedMetric `json:"excluded"`
}

type ExcludedMetric struct {
	RealRate  *float64 `json:"real_rate"`
	RealValue *int     `json:"real_value"`
}
