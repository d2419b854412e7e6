package domain

import (
	"strings"
	"time"
)

type ReputationColor string

const (
	ReputationDarkGreen  ReputationColor = "dark_green"
	ReputationLightGreen ReputationColor = "light_green"
	ReputationYellow     ReputationColor = "yellow"
	ReputationOrange     ReputationColor = "orange"
	ReputationRed        ReputationColor = "red"
	ReputationGray       ReputationColor = "gray"
)

// QualityMetric guarda o valor exibido e, quando existir, o valor real (excluded.real_*)
type QualityMetric struct {
	Rate      float64  `json:"rate"`
	Value     int      `json:"value"`
	RealRate  *float64 `json:"real_rate,omitempty"`
	RealValue *int     `json:"real_value,omitempty"`
}

type SellerProfile struct {
	UserID              string
	Nickname            string
	LevelID             string
	PowerSellerStatus   string
	RealLevel           *string
	ProtectionEndDate   *time.Time
	Claims              QualityMetric
	DelayedHandlingTime QualityMetric
	Cancellations       QualityMetric
	TotalTransactions   int
}

type MetricValue struct {
	Rate  float64 `json:"rate"`
	Value int     `json:"value"`
}

type ReputationSnapshot struct {
	LevelID           string           `json:"level_id"`
	Color             ReputationColor  `json:"color"`
	PowerSellerStatus string           `json:"power_seller_status"`
	RealLevel         *string          `json:"real_level"`
	RealColor         ReputationColor  `json:"real_color"`
	ProtectionEndDate *time.Time       `json:"protection_end_date"`
	DecolaActive      bool             `json:"decola_active"`
	Claims            MetricValue      `json:"claims"`
	DelayedHandling   MetricValue      `json:"delayed_handling_time"`
	Cancellations     MetricValue      `json:"cancellations"`
	ProblemsCount     int              `json:"problems_count"`
	RecoveryProgram   *RecoveryProgram `json:"recovery_program,omitempty"`
}

type RecoveryProgram struct {
	Enrolled  bool       `json:"enrolled"`
	Status    string     `json:"status"`
	StartDate *time.Time `json:"start_date"`
	EndDate   *time.Time `json:"end_date"`
}

// ReputationColorFor converte o level_id do marketplace (ex: "5_green", "3_yellow") em cor
func ReputationColorFor(levelID string) ReputationColor {
	level := strings.ToLower(strings.TrimSpace(levelID))

	switch {
	case level == "":
		return ReputationGray
	case strings.HasPrefix(level, "5") && strings.Contains(level, "green"):
		return ReputationDarkGreen
	case strings.Contains(level, "green"):
		return ReputationLightGreen
	case strings.Contains(level, "yellow"):
		return ReputationYellow
	case strings.Contains(level, "orange"):
		return ReputationOrange
	case strings.Contains(level, "red"):
		return ReputationRed
	default:
		return ReputationGray
	}
}

// IsDecolaActive exige real_level e protection_end_date presentes e data de fim no futuro
func IsDecolaActive(realLevel *string, protectionEndDate *time.Time, now time.Time) bool {
	if realLevel == nil || *realLevel == "" || protectionEndDate == nil {
		return false
	}
	return protectionEndDate.After(now)
}
