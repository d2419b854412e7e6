package domain

import (
	"strconv"
	"strings"
	"time"
	"unicode/utf8"
)

type ListingStatus string

const (
	ListingStatusActive ListingStatus = "active"
	ListingStatusPaused ListingStatus = "paused"
	ListingStatusClosed ListingStatus = "closed"
	// ListingStatusInactive: sumiu da busca de ativos; o status real chega no próximo detalhe do item
	ListingStatusInactive ListingStatus = "inactive"
)

const (
	MinPhotoDimension        = 1200
	MinDescriptionLength     = 50
	ShippingModeME2          = "me2"
	ShippingModeDropOff      = "drop_off"
	ShippingModeNotSpecified = "not_specified"
)

var fiscalAttributeIDs = map[string]bool{
	"GTIN":       true,
	"EAN":        true,
	"NCM":        true,
	"SELLER_SKU": true,
}

type Listing struct {
	AccountID           string        `json:"account_id"`
	ExternalItemID      string        `json:"external_item_id"`
	Title               string        `json:"title"`
	Status              ListingStatus `json:"status"`
	Price               float64       `json:"price"`
	AvailableQuantity   int           `json:"available_quantity"`
	SoldQuantity        int           `json:"sold_quantity"`
	ShippingModes       []string      `json:"shipping_modes"`
	LogisticTypes       []string      `json:"logistic_types"`
	ShippingMode        string        `json:"shipping_mode"`
	LogisticType        string        `json:"logistic_type"`
	InventoryID         *string       `json:"inventory_id"`
	HasDescription      bool          `json:"has_description"`
	HasPictures         bool          `json:"has_pictures"`
	HasTaxData          bool          `json:"has_tax_data"`
	HasLowQualityPhotos bool          `json:"has_low_quality_photos"`
	MinPhotoDimension   int           `json:"min_photo_dimension"`
	PhotoCount          int           `json:"photo_count"`
	QualityScore        int           `json:"quality_score"`
	SyncedAt            time.Time     `json:"synced_at"`
}

func (l *Listing) IsActive() bool {
	return l.Status == ListingStatusActive
}

// NeedsStockSync indica itens ME2 com estoque no fulfillment
func (l *Listing) NeedsStockSync() bool {
	return l.InventoryID != nil && *l.InventoryID != "" && l.hasMode(ShippingModeME2)
}

func (l *Listing) hasMode(mode string) bool {
	for _, m := range l.effectiveModes() {
		if m == mode {
			return true
		}
	}
	return false
}

type ItemAttribute struct {
	ID    string
	Value string
}

type ItemPicture struct {
	Size    string
	MaxSize string
}

// ItemDetail é a visão normalizada de um item + descrição vinda do marketplace
type ItemDetail struct {
	ID                string
	Title             string
	Status            string
	Price             float64
	AvailableQuantity int
	SoldQuantity      int
	ShippingMode      string
	LogisticType      string
	Tags              []string
	InventoryID       *string
	Pictures          []ItemPicture
	Attributes        []ItemAttribute
	SaleTerms         []ItemAttribute
	Description       string
}

type ItemIDPage struct {
	IDs   []string
	Total int
}

type ListingQuality struct {
	HasDescription      bool
	HasPictures         bool
	HasTaxData          bool
	HasLowQualityPhotos bool
	MinPhotoDimension   int
	PhotoCount          int
}

// EvaluateListingQuality calcula as flags de qualidade a partir do detalhe do item
func EvaluateListingQuality(item *ItemDetail) ListingQuality {
	q := ListingQuality{
		PhotoCount:     len(item.Pictures),
		HasPictures:    len(item.Pictures) > 0,
		HasDescription: utf8.RuneCountInString(strings.TrimSpace(item.Description)) > MinDescriptionLength,
		HasTaxData:     hasFiscalAttribute(item.Attributes) || hasFiscalAttribute(item.SaleTerms),
	}

	parsed := false
	for _, picture := range item.Pictures {
		size := picture.MaxSize
		if size == "" {
			size = picture.Size
		}
		dimension, ok := parsePictureDimension(size)
		if !ok {
			continue
		}
		if !parsed || dimension < q.MinPhotoDimension {
			q.MinPhotoDimension = dimension
		}
		parsed = true
	}

	// sem nenhuma dimensão legível não há como afirmar baixa qualidade
	q.HasLowQualityPhotos = parsed && q.MinPhotoDimension < MinPhotoDimension

	return q
}

func hasFiscalAttribute(attributes []ItemAttribute) bool {
	for _, attr := range attributes {
		if fiscalAttributeIDs[strings.ToUpper(attr.ID)] && strings.TrimSpace(attr.Value) != "" {
			return true
		}
	}
	return false
}

// parsePictureDimension lê "LARGURAxALTURA" e retorna o menor lado
func parsePictureDimension(size string) (int, bool) {
	parts := strings.Split(strings.ToLower(size), "x")
	if len(parts) != 2 {
		return 0, false
	}

	width, err := strconv.Atoi(strings.TrimSpace(parts[0]))
	if err != nil {
		return 0, false
	}
	height, err := strconv.Atoi(strings.TrimSpace(parts[1]))
	if err != nil {
		return 0, false
	}

	return min(width, height), true
}

// BuildListing monta o Listing persistido a partir do item do marketplace
func BuildListing(accountID string, item *ItemDetail, syncedAt time.Time) *Listing {
	quality := EvaluateListingQuality(item)

	inferred := InferLogisticType(LogisticHints{
		Mode:         item.ShippingMode,
		LogisticType: item.LogisticType,
		InventoryID:  item.InventoryID,
		Tags:         item.Tags,
	})

	var modes []string
	if item.ShippingMode != "" {
		modes = []string{item.ShippingMode}
	}

	var types []string
	if inferred != "" {
		types = append(types, inferred)
	}
	if item.LogisticType != "" && item.LogisticType != inferred {
		types = append(types, item.LogisticType)
	}

	status := ListingStatus(item.Status)
	if status == "" {
		status = ListingStatusActive
	}

	listing := &Listing{
		AccountID:           accountID,
		ExternalItemID:      item.ID,
		Title:               item.Title,
		Status:              status,
		Price:               item.Price,
		AvailableQuantity:   item.AvailableQuantity,
		SoldQuantity:        item.SoldQuantity,
		ShippingModes:       modes,
		LogisticTypes:       types,
		ShippingMode:        item.ShippingMode,
		LogisticType:        inferred,
		InventoryID:         item.InventoryID,
		HasDescription:      quality.HasDescription,
		HasPictures:         quality.HasPictures,
		HasTaxData:          quality.HasTaxData,
		HasLowQualityPhotos: quality.HasLowQualityPhotos,
		MinPhotoDimension:   quality.MinPhotoDimension,
		PhotoCount:          quality.PhotoCount,
		SyncedAt:            syncedAt,
	}
	listing.QualityScore = CalculateBasicQualityScore(listing)

	return listing
}
