package http

import (
	"encoding/json"
	"net/http"

	"hipoteca-grid/domain"
	"hipoteca-grid/repository"
	"hipoteca-grid/service"
)

// SimulationRequest son los parámetros completos de una simulación.
type SimulationRequest struct {
	Terms    domain.LoanTerms            `json:"prestamo"`
	Strategy domain.ExtraPaymentStrategy `json:"estrategia"`
	Expenses []domain.ExpenseItem        `json:"gastos"`
}

type SimulationHandler struct {
	repo  repository.SimulationRepository
	cache repository.CacheRepository
}

func NewSimulationHandler(repo repository.SimulationRepository, cache repository.CacheRepository) *SimulationHandler {
	return &SimulationHandler{repo: repo, cache: cache}
}

// Simulate ejecuta una simulación completa y devuelve el informe.
func (h *SimulationHandler) Simulate(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		http.Error(w, "method not allowed", http.StatusMethodNotAllowed)
		return
	}

	var req SimulationRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, "invalid request body", http.StatusBadRequest)
		return
	}

	sim, err := service.NewMortgageSimulation(req.Terms, req.Strategy, req.Expenses, h.repo, h.cache)
	if err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}

	report, err := sim.GenerarInforme()
	if err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(report)
}
