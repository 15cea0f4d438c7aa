package repository

import (
	"sync"

	"momentum-screener/internal/domain"
)

// InMemoryScanRepository holds the latest scan results. The screener
// replaces the whole list on each pass.
type InMemoryScanRepository struct {
	results []domain.ScanResult
	mu      sync.RWMutex
}

func NewInMemoryScanRepository() *InMemoryScanRepository {
	return &InMemoryScanRepository{results: []domain.ScanResult{}}
}

func (r *InMemoryScanRepository) SaveResults(results []domain.ScanResult) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.results = results
}

func (r *InMemoryScanRepository) GetResults() []domain.ScanResult {
	r.mu.RLock()
	defer r.mu.RUnlock()
	out := make([]domain.ScanResult, len(r.results))
	copy(out, r.results)
	return out
}
