package repository

import (
	"sync"

	"hipoteca-grid/domain"
)

// SimulationRepositoryMemory is an in-memory implementation of
// SimulationRepository.
type SimulationRepositoryMemory struct {
	mu   sync.Mutex
	data []domain.GridSearchResult
}

// NewSimulationRepositoryMemory creates a new in-memory simulation
// repository.
func NewSimulationRepositoryMemory() *SimulationRepositoryMemory {
	return &SimulationRepositoryMemory{
		data: []domain.GridSearchResult{},
	}
}

// Save stores the evaluated result in memory.
func (r *SimulationRepositoryMemory) Save(result domain.GridSearchResult) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	r.data = append(r.data, result)
	return nil
}

// List returns a copy of every stored result, in insertion order.
func (r *SimulationRepositoryMemory) List() ([]domain.GridSearchResult, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	out := make([]domain.GridSearchResult, len(r.data))
	copy(out, r.data)
	return out, nil
}
