package service

import (
	"context"
	"fmt"
	"log"
	"sort"

	"golang.org/x/sync/errgroup"

	"hipoteca-grid/domain"
	"hipoteca-grid/repository"
)

// GridSearchService explora exhaustivamente un espacio discreto de
// estrategias de amortización, ejecuta una simulación por combinación y
// ordena los resultados por distintos criterios.
type GridSearchService struct {
	space      domain.GridSpace
	configured bool

	terms    domain.LoanTerms
	expenses []domain.ExpenseItem
	results  []domain.GridSearchResult

	repo repository.SimulationRepository
}

// NewGridSearchService creates a new GridSearchService. repo es
// opcional; con nil los resultados no se persisten.
func NewGridSearchService(repo repository.SimulationRepository) *GridSearchService {
	return &GridSearchService{repo: repo}
}

// Configurar valida y fija el espacio de búsqueda. Un espacio con
// alguna dimensión vacía produce un producto cartesiano vacío y se
// rechaza.
func (g *GridSearchService) Configurar(space domain.GridSpace) error {
	if len(space.InitialValues) == 0 || len(space.Modes) == 0 || len(space.Years) == 0 {
		return fmt.Errorf("%w: todas las dimensiones necesitan al menos un candidato", ErrEmptyGridConfiguration)
	}
	for _, mode := range space.Modes {
		if mode != domain.ModeCuotas && mode != domain.ModeConstante {
			return fmt.Errorf("%w: tipo de amortización desconocido %q", ErrInvalidStrategyParameters, mode)
		}
		if len(space.Magnitudes[mode]) == 0 {
			return fmt.Errorf("%w: el tipo %q no tiene valores candidatos", ErrEmptyGridConfiguration, mode)
		}
	}
	if space.Limit < 0 {
		return fmt.Errorf("%w: límite de combinaciones negativo", ErrEmptyGridConfiguration)
	}

	g.space = space
	g.configured = true
	g.results = nil
	return nil
}

// Combinaciones materializa el producto cartesiano del espacio en su
// orden de anidamiento natural: aportación inicial, tipo, valor del
// tipo, años. Ninguna combinación se omite ni se deduplica.
func (g *GridSearchService) Combinaciones() []domain.ExtraPaymentStrategy {
	var combos []domain.ExtraPaymentStrategy
	for _, initial := range g.space.InitialValues {
		for _, mode := range g.space.Modes {
			for _, magnitude := range g.space.Magnitudes[mode] {
				for _, years := range g.space.Years {
					combos = append(combos, domain.ExtraPaymentStrategy{
						InitialLumpSum: initial,
						Mode:           mode,
						Magnitude:      magnitude,
						Years:          years,
					})
				}
			}
		}
	}

	if g.space.Limit > 0 && g.space.Limit < len(combos) {
		combos = combos[:g.space.Limit]
	}
	return combos
}

// evaluar ejecuta la simulación de una combinación concreta.
func (g *GridSearchService) evaluar(index int, strategy domain.ExtraPaymentStrategy) (domain.GridSearchResult, error) {
	sim, err := NewMortgageSimulation(g.terms, strategy, g.expenses, nil, nil)
	if err != nil {
		return domain.GridSearchResult{}, fmt.Errorf("combinación %d: %w", index, err)
	}

	report, err := sim.GenerarInforme()
	if err != nil {
		return domain.GridSearchResult{}, fmt.Errorf("combinación %d: %w", index, err)
	}

	return domain.GridSearchResult{
		Index:    index,
		Strategy: strategy,
		Savings:  report.Savings,
	}, nil
}

// Ejecutar evalúa todas las combinaciones del espacio configurado, en
// orden, sobre los términos y gastos dados. Determinista: las mismas
// entradas producen exactamente los mismos resultados.
func (g *GridSearchService) Ejecutar(terms domain.LoanTerms, expenses []domain.ExpenseItem) ([]domain.GridSearchResult, error) {
	if !g.configured {
		return nil, ErrEmptyGridConfiguration
	}

	g.terms = terms
	g.expenses = expenses

	combos := g.Combinaciones()
	results := make([]domain.GridSearchResult, len(combos))
	for i, strategy := range combos {
		result, err := g.evaluar(i, strategy)
		if err != nil {
			return nil, err
		}
		results[i] = result
	}

	g.finish(results)
	return g.snapshot(), nil
}

// EjecutarParalelo evalúa el grid con hasta workers simulaciones
// concurrentes. Cada combinación es una unidad independiente sin estado
// compartido y escribe en su propia posición, así que el resultado es
// idéntico al de Ejecutar.
func (g *GridSearchService) EjecutarParalelo(ctx context.Context, terms domain.LoanTerms, expenses []domain.ExpenseItem, workers int) ([]domain.GridSearchResult, error) {
	if !g.configured {
		return nil, ErrEmptyGridConfiguration
	}
	if workers < 1 {
		workers = 1
	}

	g.terms = terms
	g.expenses = expenses

	combos := g.Combinaciones()
	results := make([]domain.GridSearchResult, len(combos))

	group, _ := errgroup.WithContext(ctx)
	group.SetLimit(workers)
	for i, strategy := range combos {
		i, strategy := i, strategy
		group.Go(func() error {
			result, err := g.evaluar(i, strategy)
			if err != nil {
				return err
			}
			results[i] = result
			return nil
		})
	}
	if err := group.Wait(); err != nil {
		return nil, err
	}

	g.finish(results)
	return g.snapshot(), nil
}

// finish guarda los resultados y los persiste en orden de evaluación.
func (g *GridSearchService) finish(results []domain.GridSearchResult) {
	g.results = results

	if g.repo == nil {
		return
	}
	for _, result := range results {
		// Guardar el resultado (no crítico si falla)
		if err := g.repo.Save(result); err != nil {
			log.Printf("Warning: failed to save grid result %d: %v", result.Index, err)
		}
	}
}

func (g *GridSearchService) snapshot() []domain.GridSearchResult {
	out := make([]domain.GridSearchResult, len(g.results))
	copy(out, g.results)
	return out
}

// savingsProvisionRatio es el criterio compuesto ahorro absoluto entre
// provisión mensual.
func savingsProvisionRatio(s domain.SavingsSummary) float64 {
	if s.MonthlyProvision <= 0 {
		return 0
	}
	return s.InterestSavings / s.MonthlyProvision
}

// Rank devuelve los topN mejores resultados según el criterio. Los
// empates los resuelve el orden de evaluación (gana la primera
// combinación). Con topN <= 0 se devuelven todos.
func (g *GridSearchService) Rank(criterion string, topN int) ([]domain.GridSearchResult, error) {
	if len(g.results) == 0 {
		return nil, ErrNoResults
	}

	var less func(a, b domain.SavingsSummary) bool
	switch criterion {
	case domain.CriterionTotalSavings:
		less = func(a, b domain.SavingsSummary) bool { return a.InterestSavings > b.InterestSavings }
	case domain.CriterionSavingsPercentage:
		less = func(a, b domain.SavingsSummary) bool { return a.SavingsPercentage > b.SavingsPercentage }
	case domain.CriterionFinalInstallment:
		less = func(a, b domain.SavingsSummary) bool { return a.FinalInstallment < b.FinalInstallment }
	case domain.CriterionMonthlyProvision:
		less = func(a, b domain.SavingsSummary) bool { return a.MonthlyProvision < b.MonthlyProvision }
	case domain.CriterionSavingsProvision:
		less = func(a, b domain.SavingsSummary) bool { return savingsProvisionRatio(a) > savingsProvisionRatio(b) }
	default:
		return nil, fmt.Errorf("%w: %q", ErrUnknownCriterion, criterion)
	}

	ranked := g.snapshot()
	sort.SliceStable(ranked, func(i, j int) bool {
		return less(ranked[i].Savings, ranked[j].Savings)
	})

	if topN > 0 && topN < len(ranked) {
		ranked = ranked[:topN]
	}
	return ranked, nil
}

// Best devuelve la simulación completamente materializada de la mejor
// combinación según el criterio, para inspección posterior.
func (g *GridSearchService) Best(criterion string) (*MortgageSimulation, error) {
	ranked, err := g.Rank(criterion, 1)
	if err != nil {
		return nil, err
	}
	return NewMortgageSimulation(g.terms, ranked[0].Strategy, g.expenses, g.repo, nil)
}
