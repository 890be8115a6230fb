package http

import (
	"encoding/json"
	"net/http"

	"hipoteca-grid/domain"
	"hipoteca-grid/service"
)

type DistributionHandler struct {
	amortization *service.AmortizationService
	analyzer     *service.InterestDistributionAnalyzer
}

func NewDistributionHandler() *DistributionHandler {
	return &DistributionHandler{
		amortization: service.NewAmortizationService(),
		analyzer:     service.NewInterestDistributionAnalyzer(),
	}
}

// Analyze calcula la distribución acumulada de intereses del cuadro
// estándar, con los marcadores del 50% y el 80%.
func (h *DistributionHandler) Analyze(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		http.Error(w, "method not allowed", http.StatusMethodNotAllowed)
		return
	}

	var terms domain.LoanTerms
	if err := json.NewDecoder(r.Body).Decode(&terms); err != nil {
		http.Error(w, "invalid request body", http.StatusBadRequest)
		return
	}

	schedule, err := h.amortization.ComputeStandard(terms)
	if err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}

	summary, err := h.analyzer.Analyze(schedule)
	if err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(summary)
}
