package domain

const (
	TagSelfServiceIn         = "self_service_in"
	TagMandatoryFreeShipping = "mandatory_free_shipping"
	TagCrossDocking          = "cross_docking"
)

// LogisticHints reúne os sinais parciais que o marketplace devolve para um item
type LogisticHints struct {
	Mode         string
	LogisticType string
	InventoryID  *string
	Tags         []string
}

func (h LogisticHints) hasTag(tag string) bool {
	for _, t := range h.Tags {
		if t == tag {
			return true
		}
	}
	return false
}

type LogisticRule struct {
	Name    string
	Matches func(h LogisticHints) bool
	Result  func(h LogisticHints) string
}

func constant(value string) func(LogisticHints) string {
	return func(LogisticHints) string { return value }
}

// LogisticRules é avaliada em ordem; a primeira regra que casar define o tipo logístico
var LogisticRules = []LogisticRule{
	{
		Name:    "inventory_id",
		Matches: func(h LogisticHints) bool { return h.InventoryID != nil && *h.InventoryID != "" },
		Result:  constant(LogisticFulfillment),
	},
	{
		Name:    "self_service_tag",
		Matches: func(h LogisticHints) bool { return h.hasTag(TagSelfServiceIn) },
		Result:  constant(LogisticSelfService),
	},
	{
		Name: "mandatory_free_shipping_tag",
		Matches: func(h LogisticHints) bool {
			return h.hasTag(TagMandatoryFreeShipping) && !h.hasTag(TagSelfServiceIn)
		},
		Result: constant(LogisticXDDropOff),
	},
	{
		Name:    "cross_docking_tag",
		Matches: func(h LogisticHints) bool { return h.hasTag(TagCrossDocking) },
		Result:  constant(LogisticCrossDocking),
	},
	{
		Name: "explicit_logistic_type",
		Matches: func(h LogisticHints) bool {
			return h.LogisticType != "" && h.LogisticType != LogisticSelfService
		},
		Result: func(h LogisticHints) string { return h.LogisticType },
	},
	{
		Name:    "me2_default",
		Matches: func(h LogisticHints) bool { return h.Mode == ShippingModeME2 },
		Result:  constant(LogisticSelfService),
	},
}

// InferLogisticType aplica LogisticRules e retorna "" se nenhuma regra casar
func InferLogisticType(h LogisticHints) string {
	for _, rule := range LogisticRules {
		if rule.Matches(h) {
			return rule.Result(h)
		}
	}
	return ""
}
