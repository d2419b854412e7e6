package aggregating

import (
	"time"

	"github.com/vfg2006/marketplace-sync-api/internal/domain"
)

// BuildReputation monta o snapshot de reputação. Com Decola ativo os valores exibidos
// pelo marketplace são suprimidos, então as métricas vêm de excluded.real_*
func BuildReputation(profile *domain.SellerProfile, now time.Time) domain.ReputationSnapshot {
	if profile == nil {
		return domain.ReputationSnapshot{Color: domain.ReputationGray}
	}

	decolaActive := domain.IsDecolaActive(profile.RealLevel, profile.ProtectionEndDate, now)

	snapshot := domain.ReputationSnapshot{
		LevelID:           profile.LevelID,
		Color:             domain.ReputationColorFor(profile.LevelID),
		PowerSellerStatus: profile.PowerSellerStatus,
		RealLevel:         profile.RealLevel,
		ProtectionEndDate: profile.ProtectionEndDate,
		DecolaActive:      decolaActive,
		Claims:            qualityValue(profile.Claims, decolaActive),
		DelayedHandling:   qualityValue(profile.DelayedHandlingTime, decolaActive),
		Cancellations:     qualityValue(profile.Cancellations, decolaActive),
	}

	if profile.RealLevel != nil && *profile.RealLevel != "" {
		snapshot.RealColor = domain.ReputationColorFor(*profile.RealLevel)
	}

	if decolaActive {
		snapshot.ProblemsCount = snapshot.Claims.Value + snapshot.DelayedHandling.Value + snapshot.Cancellations.Value
	}

	return snapshot
}

func qualityValue(metric domain.QualityMetric, useReal bool) domain.MetricValue {
	value := domain.MetricValue{Rate: metric.Rate, Value: metric.Value}
	if !useReal {
		return value
	}

	if metric.RealRate != nil {
		value.Rate = *metric.RealRate
	}
	if metric.RealValue != nil {
		value.Value = *metric.RealValue
	}
	return value
}
