package service

import (
	"errors"
	"testing"

	"hipoteca-grid/domain"
	"hipoteca-grid/repository"
)

type mockSimulationRepository struct {
	saved      []domain.GridSearchResult
	forceError bool
}

func (m *mockSimulationRepository) Save(result domain.GridSearchResult) error {
	if m.forceError {
		return errors.New("save error")
	}
	m.saved = append(m.saved, result)
	return nil
}

func (m *mockSimulationRepository) List() ([]domain.GridSearchResult, error) {
	return m.saved, nil
}

func TestGenerarInforme_FullReport(t *testing.T) {

	repo := &mockSimulationRepository{}
	cache := repository.NewMockCache()

	sim, err := NewMortgageSimulation(baseTerms(), domain.ExtraPaymentStrategy{
		InitialLumpSum: 10000,
		Mode:           domain.ModeConstante,
		Magnitude:      1800,
		Years:          10,
	}, []domain.ExpenseItem{
		{Name: "Comunidad", Amount: 50, AnnualGrowth: 3},
	}, repo, cache)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	report, err := sim.GenerarInforme()
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if len(report.Standard) != 360 {
		t.Errorf("expected 360 standard periods, got %d", len(report.Standard))
	}
	if len(report.Strategy) == 0 || len(report.Expenses) != len(report.Strategy) {
		t.Errorf("expected expenses aligned with the strategy schedule: %d vs %d", len(report.Expenses), len(report.Strategy))
	}
	if report.Distribution.Period50 == 0 {
		t.Errorf("expected interest distribution to be populated")
	}
	if report.Savings.InterestSavings <= 0 {
		t.Errorf("expected positive savings, got %.2f", report.Savings.InterestSavings)
	}

	if len(repo.saved) != 1 {
		t.Errorf("expected the savings summary to be persisted once, got %d", len(repo.saved))
	}
	if len(cache.Data) != 1 {
		t.Errorf("expected the report to be cached, got %d entries", len(cache.Data))
	}
}

func TestGenerarInforme_CacheHit(t *testing.T) {

	repo := &mockSimulationRepository{}
	cache := repository.NewMockCache()

	sim, err := NewMortgageSimulation(baseTerms(), domain.ExtraPaymentStrategy{InitialLumpSum: 5000}, nil, repo, cache)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	first, err := sim.GenerarInforme()
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	second, err := sim.GenerarInforme()
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if first.Savings != second.Savings {
		t.Errorf("expected identical cached savings: %+v vs %+v", first.Savings, second.Savings)
	}

	// La segunda llamada resuelve desde caché y no vuelve a persistir.
	if len(repo.saved) != 1 {
		t.Errorf("expected a single persisted result, got %d", len(repo.saved))
	}
}

func TestGenerarInforme_SaveFailureIsNotFatal(t *testing.T) {

	repo := &mockSimulationRepository{forceError: true}

	sim, err := NewMortgageSimulation(baseTerms(), domain.ExtraPaymentStrategy{}, nil, repo, nil)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if _, err := sim.GenerarInforme(); err != nil {
		t.Fatalf("expected the report despite the save failure, got %v", err)
	}
}

func TestGenerarInforme_ZeroRateLoan(t *testing.T) {

	terms := domain.LoanTerms{
		Principal:  120000,
		AnnualRate: 0,
		TermYears:  10,
		StartDate:  "2025-01-01",
	}

	sim, err := NewMortgageSimulation(terms, domain.ExtraPaymentStrategy{}, nil, nil, nil)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	report, err := sim.GenerarInforme()
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	// Sin intereses no hay distribución que analizar, pero el informe
	// sigue siendo válido.
	if report.Distribution.Period50 != 0 || len(report.Distribution.Points) != 0 {
		t.Errorf("expected empty distribution for a zero-rate loan")
	}
	if report.Savings.StandardInterest != 0 {
		t.Errorf("expected zero interest, got %.2f", report.Savings.StandardInterest)
	}
}

func TestNewMortgageSimulation_InvalidInputs(t *testing.T) {

	if _, err := NewMortgageSimulation(domain.LoanTerms{}, domain.ExtraPaymentStrategy{}, nil, nil, nil); !errors.Is(err, ErrInvalidLoanParameters) {
		t.Errorf("expected ErrInvalidLoanParameters, got %v", err)
	}

	if _, err := NewMortgageSimulation(baseTerms(), domain.ExtraPaymentStrategy{Magnitude: -1}, nil, nil, nil); !errors.Is(err, ErrInvalidStrategyParameters) {
		t.Errorf("expected ErrInvalidStrategyParameters, got %v", err)
	}

	badExpense := []domain.ExpenseItem{{Name: "", Amount: 10}}
	if _, err := NewMortgageSimulation(baseTerms(), domain.ExtraPaymentStrategy{}, badExpense, nil, nil); !errors.Is(err, ErrInvalidExpense) {
		t.Errorf("expected ErrInvalidExpense, got %v", err)
	}
}
