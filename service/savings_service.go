package service

import (
	"fmt"

	"hipoteca-grid/domain"
)

// SavingsCalculator deriva las métricas comparativas entre el cuadro
// estándar y el cuadro con estrategia.
type SavingsCalculator struct{}

// NewSavingsCalculator creates a new SavingsCalculator.
func NewSavingsCalculator() *SavingsCalculator {
	return &SavingsCalculator{}
}

// Compare calcula el resumen de ahorro de una estrategia: intereses
// totales de cada cuadro, ahorro absoluto y porcentual sobre el coste
// total estándar, cuota inicial y final de la estrategia y provisión
// mensual media durante el horizonte activo.
func (c *SavingsCalculator) Compare(
	standard, strategy domain.Schedule,
	expenses []domain.PeriodExpense,
	params domain.ExtraPaymentStrategy,
) (domain.SavingsSummary, error) {
	if len(standard) == 0 || len(strategy) == 0 {
		return domain.SavingsSummary{}, fmt.Errorf("%w: faltan cuadros que comparar", ErrEmptySchedule)
	}

	standardInterest := standard.TotalInterest()
	strategyInterest := strategy.TotalInterest()
	savings := standardInterest - strategyInterest

	// Ambos cuadros comparten el mismo capital inicial; el coste total
	// estándar es capital más intereses.
	principal := standard.TotalPrincipal()
	totalCost := principal + standardInterest

	percentage := 0.0
	if totalCost > 0 {
		percentage = savings / totalCost * 100
	}

	summary := domain.SavingsSummary{
		StandardInterest:   roundTo2Decimals(standardInterest),
		StrategyInterest:   roundTo2Decimals(strategyInterest),
		InterestSavings:    roundTo2Decimals(savings),
		SavingsPercentage:  roundTo2Decimals(percentage),
		InitialInstallment: roundTo2Decimals(firstNonZeroInstallment(strategy)),
		FinalInstallment:   roundTo2Decimals(lastNonZeroInstallment(strategy)),
		MonthlyProvision:   roundTo2Decimals(monthlyProvision(strategy, expenses, params)),
	}

	return summary, nil
}

// firstNonZeroInstallment devuelve la primera cuota distinta de cero.
func firstNonZeroInstallment(schedule domain.Schedule) float64 {
	for _, row := range schedule {
		if row.Installment > 0 {
			return row.Installment
		}
	}
	return 0
}

// lastNonZeroInstallment devuelve la última cuota en vigor antes de la
// cancelación.
func lastNonZeroInstallment(schedule domain.Schedule) float64 {
	for i := len(schedule) - 1; i >= 0; i-- {
		if schedule[i].Installment > 0 {
			return schedule[i].Installment
		}
	}
	return 0
}

// monthlyProvision promedia, sobre el horizonte activo de la
// estrategia, la suma de cuota, gastos del periodo y una reserva
// nocional igual a las aportaciones extraordinarias prorrateadas mes a
// mes. Produce una cifra única de esfuerzo mensual comparable entre
// estrategias, independiente de cuándo caigan las aportaciones.
func monthlyProvision(strategy domain.Schedule, expenses []domain.PeriodExpense, params domain.ExtraPaymentStrategy) float64 {
	horizon := len(strategy)
	if params.Years > 0 && params.Years*12 < horizon {
		horizon = params.Years * 12
	}
	if horizon == 0 {
		return 0
	}

	total := 0.0
	for i := 0; i < horizon; i++ {
		total += strategy[i].Installment + strategy[i].ExtraPayment
		if i < len(expenses) {
			total += expenses[i].Total
		}
	}

	return total / float64(horizon)
}
