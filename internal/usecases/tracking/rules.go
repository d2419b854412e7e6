package tracking

import (
	"github.com/vfg2006/marketplace-sync-api/internal/domain"
)

// Facts são os sinais que alimentam as regras dos marcos
type Facts struct {
	TotalSales         int
	FlexListings       int
	FullListings       int
	FullStockAvailable bool
	DecolaActive       bool
	AdsEnabled         bool
	ActiveCampaigns    int
}

type Rule struct {
	Key      domain.MilestoneKey
	Phase    int
	Title    string
	Evaluate func(f Facts) (domain.MilestoneStatus, float64)
}

// Rules é o catálogo de marcos da jornada do vendedor
var Rules = []Rule{
	{
		Key:   domain.MilestoneFirstSale,
		Phase: 1,
		Title: "Primeira venda",
		Evaluate: func(f Facts) (domain.MilestoneStatus, float64) {
			return countProgress(f.TotalSales, 1)
		},
	},
	{
		Key:   domain.MilestoneTenSales,
		Phase: 1,
		Title: "10 vendas",
		Evaluate: func(f Facts) (domain.MilestoneStatus, float64) {
			return countProgress(f.TotalSales, 10)
		},
	},
	{
		Key:   domain.MilestoneFlexEnabled,
		Phase: 2,
		Title: "Mercado Envios Flex ativo",
		Evaluate: func(f Facts) (domain.MilestoneStatus, float64) {
			return boolProgress(f.FlexListings > 0)
		},
	},
	{
		Key:   domain.MilestoneFullEnabled,
		Phase: 2,
		Title: "Mercado Envios Full ativo",
		Evaluate: func(f Facts) (domain.MilestoneStatus, float64) {
			if f.FullStockAvailable {
				return domain.MilestoneCompleted, 100
			}
			if f.FullListings > 0 {
				return domain.MilestoneInProgress, 50
			}
			return domain.MilestoneNotStarted, 0
		},
	},
	{
		Key:   domain.MilestoneDecola,
		Phase: 3,
		Title: "Programa Decola",
		Evaluate: func(f Facts) (domain.MilestoneStatus, float64) {
			return boolProgress(f.DecolaActive)
		},
	},
	{
		Key:   domain.MilestoneAdsActive,
		Phase: 3,
		Title: "Mercado Ads com campanha ativa",
		Evaluate: func(f Facts) (domain.MilestoneStatus, float64) {
			if f.AdsEnabled && f.ActiveCampaigns > 0 {
				return domain.MilestoneCompleted, 100
			}
			if f.AdsEnabled {
				return domain.MilestoneInProgress, 50
			}
			return domain.MilestoneNotStarted, 0
		},
	},
}

func countProgress(count, target int) (domain.MilestoneStatus, float64) {
	switch {
	case count >= target:
		return domain.MilestoneCompleted, 100
	case count > 0:
		return domain.MilestoneInProgress, float64(count) * 100 / float64(target)
	default:
		return domain.MilestoneNotStarted, 0
	}
}

func boolProgress(done bool) (domain.MilestoneStatus, float64) {
	if done {
		return domain.MilestoneCompleted, 100
	}
	return domain.MilestoneNotStarted, 0
}
