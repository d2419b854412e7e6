package mldomain

type AdvertiserResponse struct {
	Advertisers []Advertiser `json:"advertisers"`
}

type Advertiser struct {
	AdvertiserID   int64  `json:"advertiser_id"`
	SiteID         string `json:"site_id"`
	AdvertiserName string `json:"advertiser_name"`
	AccountName    string `json:"account_name"`
}

type CampaignsResponse struct {
	Results []Campaign `json:"results"`
	Paging  Paging     `json:"paging"`
}

type Campaign struct {
	ID      int64           `json:"id"`
	Name    string          `json:"name"`
	Status  string          `json:"status"`
	Budget  float64         `json:"budget"`
	Metrics CampaignMetrics `json:"metrics"`
}

type CampaignMetrics struct {
	Clicks         int     `json:"clicks"`
	Prints         int     `json:"prints"`
	Cost           float64 `json:"cost"`
	DirectAmount   float64 `json:"direct_amount"`
	IndirectAmount float64 `json:"indirect_amount"`
	TotalAmount    float64 `json:"total_amount"`
	UnitsQuantity  int     `json:"units_quantity"`
}

type ItemAd struct {
	ItemID     string `json:"item_id"`
	CampaignID int64  `json:"campaign_id"`
	Status     string `json:"status"`
}

type RecoveryStatus struct {
	Status    string  `json:"status"`
	StartDate *string `json:"start_date"`
	EndDate   *string `json:"end_date"`
}
