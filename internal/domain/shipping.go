package domain

type ShippingCategory string

const (
	ShippingCategoryFlex         ShippingCategory = "flex"
	ShippingCategoryAgencies     ShippingCategory = "agencies"
	ShippingCategoryCollection   ShippingCategory = "collection"
	ShippingCategoryFull         ShippingCategory = "full"
	ShippingCategoryCorreios     ShippingCategory = "correios"
	ShippingCategoryEnvioProprio ShippingCategory = "envio_proprio"
	ShippingCategoryOutro        ShippingCategory = "outro"
)

const (
	LogisticSelfService  = "self_service"
	LogisticXDDropOff    = "xd_drop_off"
	LogisticCrossDocking = "cross_docking"
	LogisticFulfillment  = "fulfillment"
	LogisticDropOff      = "drop_off"
)

// ShippingCategories lista as categorias classificáveis na ordem de exibição
var ShippingCategories = []ShippingCategory{
	ShippingCategoryFlex,
	ShippingCategoryAgencies,
	ShippingCategoryCollection,
	ShippingCategoryFull,
	ShippingCategoryCorreios,
	ShippingCategoryEnvioProprio,
}

type shippingPredicate struct {
	category ShippingCategory
	matches  func(l *Listing) bool
}

// As categorias não são exclusivas: cada predicado é avaliado de forma independente
var shippingPredicates = []shippingPredicate{
	{ShippingCategoryFlex, (*Listing).IsFlex},
	{ShippingCategoryAgencies, (*Listing).IsAgency},
	{ShippingCategoryCollection, (*Listing).IsCollection},
	{ShippingCategoryFull, (*Listing).IsFull},
	{ShippingCategoryCorreios, (*Listing).IsCorreios},
	{ShippingCategoryEnvioProprio, (*Listing).IsEnvioProprio},
}

func (l *Listing) IsFlex() bool {
	return l.hasMode(ShippingModeME2) && l.hasType(LogisticSelfService)
}

func (l *Listing) IsAgency() bool {
	return l.hasMode(ShippingModeME2) && l.hasType(LogisticXDDropOff)
}

func (l *Listing) IsCollection() bool {
	return l.hasMode(ShippingModeME2) && l.hasType(LogisticCrossDocking)
}

func (l *Listing) IsFull() bool {
	return l.hasMode(ShippingModeME2) && l.hasType(LogisticFulfillment)
}

func (l *Listing) IsCorreios() bool {
	return l.hasMode(ShippingModeDropOff) || (l.hasMode(ShippingModeME2) && l.hasType(LogisticDropOff))
}

func (l *Listing) IsEnvioProprio() bool {
	return l.hasMode(ShippingModeNotSpecified)
}

// GetAllShippingTypes retorna todas as categorias do anúncio, ou {Outro} se nenhuma casar
func (l *Listing) GetAllShippingTypes() []ShippingCategory {
	categories := make([]ShippingCategory, 0, len(shippingPredicates))
	for _, p := range shippingPredicates {
		if p.matches(l) {
			categories = append(categories, p.category)
		}
	}

	if len(categories) == 0 {
		return []ShippingCategory{ShippingCategoryOutro}
	}

	return categories
}

func (l *Listing) HasShippingCategory(category ShippingCategory) bool {
	for _, c := range l.GetAllShippingTypes() {
		if c == category {
			return true
		}
	}
	return false
}

// Arrays têm prioridade; os campos escalares legados só valem quando os arrays estão vazios
func (l *Listing) effectiveModes() []string {
	if len(l.ShippingModes) > 0 {
		return l.ShippingModes
	}
	if l.ShippingMode != "" {
		return []string{l.ShippingMode}
	}
	return nil
}

func (l *Listing) effectiveTypes() []string {
	if len(l.LogisticTypes) > 0 {
		return l.LogisticTypes
	}
	if l.LogisticType != "" {
		return []string{l.LogisticType}
	}
	return nil
}

func (l *Listing) hasType(logisticType string) bool {
	for _, t := range l.effectiveTypes() {
		if t == logisticType {
			return true
		}
	}
	return false
}

// CalculateBasicQualityScore pontua descrição (33), fotos (33) e dados fiscais (34)
func CalculateBasicQualityScore(l *Listing) int {
	score := 0
	if l.HasDescription {
		score += 33
	}
	if l.HasPictures {
		score += 33
	}
	if l.HasTaxData {
		score += 34
	}
	return score
}
