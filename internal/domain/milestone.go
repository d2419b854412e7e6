package domain

import "time"

type MilestoneStatus string

const (
	MilestoneNotStarted MilestoneStatus = "not_started"
	MilestoneInProgress MilestoneStatus = "in_progress"
	MilestoneCompleted  MilestoneStatus = "completed"
	MilestoneBlocked    MilestoneStatus = "blocked"
)

type MilestoneKey string

const (
	MilestoneFirstSale   MilestoneKey = "first_sale"
	MilestoneTenSales    MilestoneKey = "ten_sales"
	MilestoneFlexEnabled MilestoneKey = "flex_enabled"
	MilestoneFullEnabled MilestoneKey = "full_enabled"
	MilestoneDecola      MilestoneKey = "decola_active"
	MilestoneAdsActive   MilestoneKey = "ads_active"
)

type Milestone struct {
	ID          string          `json:"id"`
	AccountID   string          `json:"account_id"`
	Key         MilestoneKey    `json:"key"`
	Phase       int             `json:"phase"`
	Title       string          `json:"title"`
	Status      MilestoneStatus `json:"status"`
	Progress    float64         `json:"progress"`
	CompletedAt *time.Time      `json:"completed_at"`
	UpdatedAt   time.Time       `json:"updated_at"`
}

var statusRank = map[MilestoneStatus]int{
	MilestoneNotStarted: 0,
	MilestoneInProgress: 1,
	MilestoneCompleted:  2,
}

// CanTransition só permite avançar; blocked é alcançável de qualquer estado não concluído
func CanTransition(from, to MilestoneStatus) bool {
	if from == to {
		return true
	}
	if from == MilestoneCompleted {
		return false
	}
	if to == MilestoneBlocked {
		return true
	}
	if from == MilestoneBlocked {
		return to == MilestoneInProgress || to == MilestoneCompleted
	}
	return statusRank[to] > statusRank[from]
}

// Advance aplica um novo status/progresso sem nunca regredir; retorna true se algo mudou
func (m *Milestone) Advance(to MilestoneStatus, progress float64, now time.Time) bool {
	if m.Status == MilestoneCompleted || m.Status == MilestoneBlocked {
		return false
	}

	changed := false

	if to != m.Status && CanTransition(m.Status, to) {
		m.Status = to
		changed = true
		if to == MilestoneCompleted {
			completedAt := now
			m.CompletedAt = &completedAt
			progress = 100
		}
	}

	if progress > m.Progress && m.Status != MilestoneNotStarted {
		m.Progress = progress
		changed = true
	}

	if changed {
		m.UpdatedAt = now
	}

	return changed
}
