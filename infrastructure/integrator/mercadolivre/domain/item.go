package mldomain

type ItemSearchResponse struct {
	SellerID string   `json:"seller_id"`
	Results  []string `json:"results"`
	Paging   Paging   `json:"paging"`
}

type Item struct {
	ID                string       `json:"id"`
	Title             string       `json:"title"`
	Status            string       `json:"status"`
	Price             float64      `json:"price"`
	AvailableQuantity int          `json:"available_quantity"`
	SoldQuantity      int          `json:"sold_quantity"`
	InventoryID       *string      `json:"inventory_id"`
	Shipping          ItemShipping `json:"shipping"`
	Pictures          []Picture    `json:"pictures"`
	Attributes        []Attribute  `json:"attributes"`
	SaleTerms         []Attribute  `json:"sale_terms"`
	Tags              []string     `json:"tags"`
}

type ItemShipping struct {
	Mode         string   `json:"mode"`
	LogisticType string   `json:"logistic_type"`
	FreeShipping bool     `json:"free_shipping"`
	Tags         []string `json:"tags"`
}

type Picture struct {
	ID      string `json:"id"`
	URL     string `json:"secure_url"`
	Size    string `json:"size"`
	MaxSize string `json:"max_size"`
}

type Attribute struct {
	ID        string  `json:"id"`
	Name      string  `json:"name"`
	ValueID   *string `json:"value_id"`
	ValueName *string `json:"value_name"`
}

type ItemDescription struct {
	Text      string `json:"text"`
	PlainText string `json:"plain_text"`
}
