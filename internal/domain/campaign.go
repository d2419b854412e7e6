package domain

import (
	"strings"
	"time"
)

type CampaignStatus string

const (
	CampaignStatusActive CampaignStatus = "active"
	CampaignStatusPaused CampaignStatus = "paused"
)

type Campaign struct {
	AccountID   string         `json:"account_id"`
	CampaignID  string         `json:"campaign_id"`
	Name        string         `json:"name"`
	Status      CampaignStatus `json:"status"`
	Budget      float64        `json:"budget"`
	Spend       float64        `json:"spend"`
	Revenue     float64        `json:"revenue"`
	Clicks      int            `json:"clicks"`
	Impressions int            `json:"impressions"`
	UnitsSold   int            `json:"units_sold"`
	DateFrom    time.Time      `json:"date_from"`
	DateTo      time.Time      `json:"date_to"`
	SyncedAt    time.Time      `json:"synced_at"`
}

func (c *Campaign) IsActive() bool {
	return strings.EqualFold(string(c.Status), string(CampaignStatusActive))
}

type ItemAdStatus struct {
	ItemID     string `json:"item_id"`
	CampaignID string `json:"campaign_id"`
	Status     string `json:"status"`
}

func (s *ItemAdStatus) IsActive() bool {
	return s != nil && strings.EqualFold(s.Status, "active")
}
