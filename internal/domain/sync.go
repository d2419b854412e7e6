package domain

import (
	"sync"
	"time"
)

type ResourceType string

const (
	ResourceUsers      ResourceType = "users"
	ResourceProducts   ResourceType = "products"
	ResourceOrders     ResourceType = "orders"
	ResourceStock      ResourceType = "stock"
	ResourceAds        ResourceType = "ads"
	ResourceRecovery   ResourceType = "recovery"
	ResourceMetrics    ResourceType = "metrics"
	ResourceMilestones ResourceType = "milestones"
)

type FailedItem struct {
	ID     string `json:"id"`
	Reason string `json:"reason"`
}

// BatchResult acumula o resultado item a item de um recurso
type BatchResult struct {
	mu        sync.Mutex
	Succeeded []string     `json:"succeeded"`
	Failed    []FailedItem `json:"failed"`
}

func (b *BatchResult) Success(id string) {
	b.mu.Lock()
	defer b.mu.Unlock()
	b.Succeeded = append(b.Succeeded, id)
}

func (b *BatchResult) Failure(id string, err error) {
	b.mu.Lock()
	defer b.mu.Unlock()
	reason := ""
	if err != nil {
		reason = err.Error()
	}
	b.Failed = append(b.Failed, FailedItem{ID: id, Reason: reason})
}

func (b *BatchResult) Synced() int {
	b.mu.Lock()
	defer b.mu.Unlock()
	return len(b.Succeeded)
}

func (b *BatchResult) Errors() int {
	b.mu.Lock()
	defer b.mu.Unlock()
	return len(b.Failed)
}

func (b *BatchResult) Summary() ResourceSummary {
	b.mu.Lock()
	defer b.mu.Unlock()
	failures := make([]FailedItem, len(b.Failed))
	copy(failures, b.Failed)
	return ResourceSummary{
		Synced:   len(b.Succeeded),
		Errors:   len(b.Failed),
		Failures: failures,
	}
}

type ResourceSummary struct {
	Synced   int          `json:"synced"`
	Errors   int          `json:"errors"`
	Failures []FailedItem `json:"failures,omitempty"`
}

type FeatureFlags struct {
	AdsEnabled             bool `json:"ads_enabled"`
	RecoveryProgramEnabled bool `json:"recovery_program_enabled"`
}

type SyncSummary struct {
	AccountID  string                           `json:"account_id"`
	RunID      string                           `json:"run_id"`
	StartedAt  time.Time                        `json:"started_at"`
	FinishedAt time.Time                        `json:"finished_at"`
	Resources  map[ResourceType]ResourceSummary `json:"resources"`
	Features   FeatureFlags                     `json:"features"`
	Fatal      bool                             `json:"fatal"`
	Partial    bool                             `json:"partial"`
	Error      string                           `json:"error,omitempty"`
}

func NewSyncSummary(accountID, runID string, startedAt time.Time) *SyncSummary {
	return &SyncSummary{
		AccountID: accountID,
		RunID:     runID,
		StartedAt: startedAt,
		Resources: make(map[ResourceType]ResourceSummary),
	}
}

func (s *SyncSummary) Record(resource ResourceType, batch *BatchResult) {
	if batch == nil {
		return
	}
	s.Resources[resource] = batch.Summary()
}

func (s *SyncSummary) TotalErrors() int {
	total := 0
	for _, r := range s.Resources {
		total += r.Errors
	}
	return total
}
