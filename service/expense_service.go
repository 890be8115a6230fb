package service

import (
	"fmt"
	"math"
	"time"

	"hipoteca-grid/domain"
)

// ExpenseProjector proyecta gastos recurrentes con incremento anual
// compuesto sobre un horizonte de periodos mensuales.
type ExpenseProjector struct{}

// NewExpenseProjector creates a new ExpenseProjector.
func NewExpenseProjector() *ExpenseProjector {
	return &ExpenseProjector{}
}

// ValidateItems valida los gastos registrados: nombres únicos no
// vacíos, importes y tasas no negativas, modo de facturación conocido.
func (p *ExpenseProjector) ValidateItems(items []domain.ExpenseItem) error {
	seen := make(map[string]bool, len(items))
	for _, item := range items {
		if item.Name == "" {
			return fmt.Errorf("%w: el nombre no puede estar vacío", ErrInvalidExpense)
		}
		if seen[item.Name] {
			return fmt.Errorf("%w: nombre duplicado %q", ErrInvalidExpense, item.Name)
		}
		seen[item.Name] = true

		if item.Amount < 0 {
			return fmt.Errorf("%w: el valor de %q no puede ser negativo", ErrInvalidExpense, item.Name)
		}
		if item.AnnualGrowth < 0 {
			return fmt.Errorf("%w: la tasa de incremento anual de %q no puede ser negativa", ErrInvalidExpense, item.Name)
		}
		switch item.Billing {
		case "", domain.BillingMonthly, domain.BillingPeriodic:
		default:
			return fmt.Errorf("%w: modo de facturación desconocido %q", ErrInvalidExpense, item.Billing)
		}
	}
	return nil
}

// Project devuelve el gasto total de cada periodo 1..horizon. El
// importe del mes m (contando desde 0) es valor × (1+tasa/100)^⌊m/12⌋.
// Un gasto "periodic" se factura íntegro una vez por ciclo de 12 meses,
// en el mes en que ocurre por primera vez; un gasto "monthly" se
// factura todos los meses. Función pura: mismos datos, mismo resultado.
func (p *ExpenseProjector) Project(items []domain.ExpenseItem, horizon int, start time.Time) ([]domain.PeriodExpense, error) {
	if horizon < 0 {
		return nil, fmt.Errorf("%w: horizonte negativo", ErrInvalidExpense)
	}
	if err := p.ValidateItems(items); err != nil {
		return nil, err
	}

	expenses := make([]domain.PeriodExpense, horizon)
	for period := 1; period <= horizon; period++ {
		month := period - 1
		total := 0.0
		for _, item := range items {
			growth := math.Pow(1+item.AnnualGrowth/100, float64(month/12))
			if item.Billing == domain.BillingPeriodic {
				// La fase del cargo anual queda fijada en su primera
				// ocurrencia, el mes 0.
				if month%12 == 0 {
					total += item.Amount * growth
				}
				continue
			}
			total += item.Amount * growth
		}
		expenses[period-1] = domain.PeriodExpense{Period: period, Total: total}
	}

	return expenses, nil
}
