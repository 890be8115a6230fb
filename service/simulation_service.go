package service

import (
	"encoding/json"
	"errors"
	"fmt"
	"hash/fnv"
	"log"
	"time"

	"hipoteca-grid/domain"
	"hipoteca-grid/repository"
)

const reportCacheTTL = time.Hour

// MortgageSimulation representa una estrategia completamente
// especificada de principio a fin: cuadro estándar, cuadro con
// estrategia, gastos proyectados, distribución de intereses y ahorro.
type MortgageSimulation struct {
	terms    domain.LoanTerms
	strategy domain.ExtraPaymentStrategy
	expenses []domain.ExpenseItem

	amortization *AmortizationService
	projector    *ExpenseProjector
	analyzer     *InterestDistributionAnalyzer
	savings      *SavingsCalculator

	repo  repository.SimulationRepository
	cache repository.CacheRepository
}

// NewMortgageSimulation valida los parámetros y construye la
// simulación. repo y cache son opcionales; con nil no se persiste ni se
// cachea nada.
func NewMortgageSimulation(
	terms domain.LoanTerms,
	strategy domain.ExtraPaymentStrategy,
	expenses []domain.ExpenseItem,
	repo repository.SimulationRepository,
	cache repository.CacheRepository,
) (*MortgageSimulation, error) {
	amortization := NewAmortizationService()
	if err := amortization.ValidateTerms(terms); err != nil {
		return nil, err
	}
	if err := amortization.ValidateStrategy(terms, strategy); err != nil {
		return nil, err
	}

	projector := NewExpenseProjector()
	if err := projector.ValidateItems(expenses); err != nil {
		return nil, err
	}

	return &MortgageSimulation{
		terms:        terms,
		strategy:     strategy,
		expenses:     expenses,
		amortization: amortization,
		projector:    projector,
		analyzer:     NewInterestDistributionAnalyzer(),
		savings:      NewSavingsCalculator(),
		repo:         repo,
		cache:        cache,
	}, nil
}

// Terms devuelve los términos del préstamo de la simulación.
func (m *MortgageSimulation) Terms() domain.LoanTerms {
	return m.terms
}

// Strategy devuelve la estrategia de la simulación.
func (m *MortgageSimulation) Strategy() domain.ExtraPaymentStrategy {
	return m.strategy
}

// cacheKey deriva una clave determinista de todos los parámetros de la
// simulación.
func (m *MortgageSimulation) cacheKey() string {
	payload, err := json.Marshal(struct {
		Terms    domain.LoanTerms            `json:"terms"`
		Strategy domain.ExtraPaymentStrategy `json:"strategy"`
		Expenses []domain.ExpenseItem        `json:"expenses"`
	}{m.terms, m.strategy, m.expenses})
	if err != nil {
		return ""
	}

	h := fnv.New64a()
	h.Write(payload)
	return fmt.Sprintf("informe:%x", h.Sum64())
}

// GenerarInforme ejecuta la simulación completa. El informe se cachea
// por parámetros y el resumen de ahorro se persiste; ambos pasos son no
// críticos si fallan.
func (m *MortgageSimulation) GenerarInforme() (*domain.SimulationReport, error) {
	key := m.cacheKey()
	if m.cache != nil && key != "" {
		if raw, ok := m.cache.Get(key); ok {
			var cached domain.SimulationReport
			if err := json.Unmarshal([]byte(raw), &cached); err == nil {
				return &cached, nil
			}
		}
	}

	standard, err := m.amortization.ComputeStandard(m.terms)
	if err != nil {
		return nil, err
	}

	// Sin pagos extraordinarios ambos cuadros coinciden; se reutiliza
	// el estándar en lugar de recalcularlo.
	strategy := standard
	if !m.strategy.IsNoOp() {
		strategy, err = m.amortization.ComputeStrategy(m.terms, m.strategy)
		if err != nil {
			return nil, err
		}
	}

	start, err := m.amortization.startDate(m.terms)
	if err != nil {
		return nil, err
	}

	expenses, err := m.projector.Project(m.expenses, len(strategy), start)
	if err != nil {
		return nil, err
	}

	// Un préstamo a tipo cero no tiene distribución de intereses que
	// analizar; el informe sigue siendo válido.
	distribution, err := m.analyzer.Analyze(standard)
	if err != nil && !errors.Is(err, ErrEmptySchedule) {
		return nil, err
	}

	savings, err := m.savings.Compare(standard, strategy, expenses, m.strategy)
	if err != nil {
		return nil, err
	}

	report := &domain.SimulationReport{
		Standard:     standard,
		Strategy:     strategy,
		Expenses:     expenses,
		Distribution: distribution,
		Savings:      savings,
	}

	if m.cache != nil && key != "" {
		if raw, err := json.Marshal(report); err == nil {
			if err := m.cache.Set(key, string(raw), reportCacheTTL); err != nil {
				log.Printf("Warning: failed to cache simulation report: %v", err)
			}
		}
	}

	// Guardar el resultado (no crítico si falla)
	if m.repo != nil {
		err := m.repo.Save(domain.GridSearchResult{
			Strategy: m.strategy,
			Savings:  savings,
		})
		if err != nil {
			log.Printf("Warning: failed to save simulation result: %v", err)
		}
	}

	return report, nil
}
