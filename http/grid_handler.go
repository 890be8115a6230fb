package http

import (
	"bytes"
	"encoding/json"
	"log"
	"net/http"
	"strings"

	"hipoteca-grid/domain"
	"hipoteca-grid/repository"
	"hipoteca-grid/service"
)

// GridSearchRequest configura y ejecuta un grid search completo.
type GridSearchRequest struct {
	Terms     domain.LoanTerms     `json:"prestamo"`
	Expenses  []domain.ExpenseItem `json:"gastos"`
	Space     domain.GridSpace     `json:"grid"`
	Criterion string               `json:"criterio"`
	TopN      int                  `json:"top_n"`
	Workers   int                  `json:"workers,omitempty"`
}

// GridSearchResponse es el leaderboard de estrategias para un criterio.
type GridSearchResponse struct {
	Criterion string                    `json:"criterio"`
	Evaluated int                       `json:"combinaciones_evaluadas"`
	Results   []domain.GridSearchResult `json:"resultados"`
}

type GridSearchHandler struct {
	repo repository.SimulationRepository
}

func NewGridSearchHandler(repo repository.SimulationRepository) *GridSearchHandler {
	return &GridSearchHandler{repo: repo}
}

// RunGrid ejecuta el barrido del espacio de estrategias y devuelve el
// top-N según el criterio pedido.
func (h *GridSearchHandler) RunGrid(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		http.Error(w, "method not allowed", http.StatusMethodNotAllowed)
		return
	}

	// Validar Content-Type
	contentType := r.Header.Get("Content-Type")
	if !strings.Contains(contentType, "application/json") {
		http.Error(w, "Content-Type must be application/json", http.StatusUnsupportedMediaType)
		return
	}

	var req GridSearchRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		log.Printf("Error decoding request body: %v", err)
		http.Error(w, "invalid request body", http.StatusBadRequest)
		return
	}

	if req.Criterion == "" {
		req.Criterion = domain.CriterionTotalSavings
	}

	grid := service.NewGridSearchService(h.repo)
	if err := grid.Configurar(req.Space); err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}

	var results []domain.GridSearchResult
	var err error
	if req.Workers > 1 {
		results, err = grid.EjecutarParalelo(r.Context(), req.Terms, req.Expenses, req.Workers)
	} else {
		results, err = grid.Ejecutar(req.Terms, req.Expenses)
	}
	if err != nil {
		log.Printf("Error running grid search: %v", err)
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}

	ranked, err := grid.Rank(req.Criterion, req.TopN)
	if err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}

	// Codificar JSON en buffer primero para evitar escribir header si falla
	var buf bytes.Buffer
	err = json.NewEncoder(&buf).Encode(GridSearchResponse{
		Criterion: req.Criterion,
		Evaluated: len(results),
		Results:   ranked,
	})
	if err != nil {
		log.Printf("Error encoding response: %v", err)
		http.Error(w, "internal server error", http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	if _, err := buf.WriteTo(w); err != nil {
		log.Printf("Error writing response: %v", err)
	}
}
