package service

import (
	"fmt"

	"hipoteca-grid/domain"
)

// InterestDistributionAnalyzer analiza cómo se concentran los intereses
// a lo largo del cuadro, para validar la elección del periodo de
// amortizaciones parciales.
type InterestDistributionAnalyzer struct{}

// NewInterestDistributionAnalyzer creates a new InterestDistributionAnalyzer.
func NewInterestDistributionAnalyzer() *InterestDistributionAnalyzer {
	return &InterestDistributionAnalyzer{}
}

// Analyze calcula la fracción acumulada de intereses por periodo y los
// primeros periodos en que se alcanza el 50% y el 80% del total.
func (a *InterestDistributionAnalyzer) Analyze(schedule domain.Schedule) (domain.InterestDistributionSummary, error) {
	if len(schedule) == 0 {
		return domain.InterestDistributionSummary{}, fmt.Errorf("%w: sin filas", ErrEmptySchedule)
	}

	total := schedule.TotalInterest()
	if total <= 0 {
		return domain.InterestDistributionSummary{}, fmt.Errorf("%w: intereses totales cero", ErrEmptySchedule)
	}

	summary := domain.InterestDistributionSummary{
		Points:        make([]domain.InterestDistributionPoint, 0, len(schedule)),
		TotalInterest: total,
	}

	cumulative := 0.0
	for _, row := range schedule {
		cumulative += row.Interest
		fraction := cumulative / total

		summary.Points = append(summary.Points, domain.InterestDistributionPoint{
			Period:             row.Period,
			CumulativeFraction: fraction,
		})

		// El empate lo resuelve el primer periodo que alcanza el umbral.
		if summary.Period50 == 0 && fraction >= InterestThreshold50 {
			summary.Period50 = row.Period
		}
		if summary.Period80 == 0 && fraction >= InterestThreshold80 {
			summary.Period80 = row.Period
		}
	}

	return summary, nil
}
