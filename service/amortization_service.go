package service

import (
	"fmt"
	"math"
	"time"

	"hipoteca-grid/domain"
)

// roundTo2Decimals redondea un float64 a 2 decimales
func roundTo2Decimals(value float64) float64 {
	return math.Round(value*100) / 100
}

// AmortizationService genera cuadros de amortización por el sistema
// francés: estándar y con estrategia de amortizaciones extraordinarias.
type AmortizationService struct{}

// NewAmortizationService creates a new AmortizationService.
func NewAmortizationService() *AmortizationService {
	return &AmortizationService{}
}

// monthlyInstallment calcula la cuota mensual según la fórmula de
// amortización francesa.
func monthlyInstallment(capital, monthlyRate float64, months int) float64 {
	if months <= 0 {
		return 0
	}
	if monthlyRate == 0 {
		return capital / float64(months)
	}

	denominator := 1 - math.Pow(1+monthlyRate, -float64(months))
	if math.Abs(denominator) < 1e-12 {
		return capital / float64(months)
	}

	return capital * monthlyRate / denominator
}

// ValidateTerms valida los parámetros básicos del préstamo.
func (s *AmortizationService) ValidateTerms(terms domain.LoanTerms) error {
	if terms.Principal <= 0 {
		return fmt.Errorf("%w: el capital inicial debe ser mayor que cero", ErrInvalidLoanParameters)
	}
	if terms.Principal > MaxLoanAmount {
		return fmt.Errorf("%w: el capital excede el máximo permitido de %.2f", ErrInvalidLoanParameters, float64(MaxLoanAmount))
	}
	if terms.AnnualRate < 0 {
		return fmt.Errorf("%w: la tasa de interés anual no puede ser negativa", ErrInvalidLoanParameters)
	}
	if terms.AnnualRate > MaxInterestRate {
		return fmt.Errorf("%w: la tasa excede el máximo permitido de %.2f%%", ErrInvalidLoanParameters, float64(MaxInterestRate))
	}
	if terms.TermYears <= 0 {
		return fmt.Errorf("%w: el plazo debe ser mayor que cero", ErrInvalidLoanParameters)
	}
	if terms.TermYears > MaxTermYears {
		return fmt.Errorf("%w: el plazo excede el máximo de %d años", ErrInvalidLoanParameters, MaxTermYears)
	}
	if terms.PaymentDay < 0 || terms.PaymentDay > MaxPaymentDay {
		return fmt.Errorf("%w: el día de pago debe estar entre 1 y %d", ErrInvalidLoanParameters, MaxPaymentDay)
	}
	if _, err := s.startDate(terms); err != nil {
		return err
	}
	return nil
}

// ValidateStrategy valida una estrategia de amortización extraordinaria
// frente a los términos del préstamo.
func (s *AmortizationService) ValidateStrategy(terms domain.LoanTerms, strategy domain.ExtraPaymentStrategy) error {
	if strategy.InitialLumpSum < 0 {
		return fmt.Errorf("%w: la amortización inicial no puede ser negativa", ErrInvalidStrategyParameters)
	}
	if strategy.InitialLumpSum >= terms.Principal {
		return fmt.Errorf("%w: la amortización inicial no puede igualar o superar el capital", ErrInvalidStrategyParameters)
	}
	if strategy.Magnitude < 0 {
		return fmt.Errorf("%w: el valor de amortización semestral no puede ser negativo", ErrInvalidStrategyParameters)
	}
	if strategy.Years < 0 {
		return fmt.Errorf("%w: los años de amortización parcial no pueden ser negativos", ErrInvalidStrategyParameters)
	}
	if strategy.Years > terms.TermYears {
		return fmt.Errorf("%w: los años de amortización parcial no pueden superar el plazo", ErrInvalidStrategyParameters)
	}
	if strategy.Magnitude > 0 && strategy.Years > 0 {
		if strategy.Mode != domain.ModeCuotas && strategy.Mode != domain.ModeConstante {
			return fmt.Errorf("%w: el tipo debe ser %q o %q", ErrInvalidStrategyParameters, domain.ModeCuotas, domain.ModeConstante)
		}
	}
	return nil
}

// startDate resuelve la fecha de inicio del préstamo ajustada al día de
// pago. Sin fecha explícita se usa el mes en curso.
func (s *AmortizationService) startDate(terms domain.LoanTerms) (time.Time, error) {
	day := terms.PaymentDay
	if day <= 0 {
		day = 1
	}
	if day > MaxPaymentDay {
		day = MaxPaymentDay
	}

	if terms.StartDate == "" {
		now := time.Now()
		return time.Date(now.Year(), now.Month(), day, 0, 0, 0, 0, time.UTC), nil
	}

	parsed, err := time.Parse("2006-01-02", terms.StartDate)
	if err != nil {
		return time.Time{}, fmt.Errorf("%w: fecha_inicio %q no tiene formato YYYY-MM-DD", ErrInvalidLoanParameters, terms.StartDate)
	}
	return time.Date(parsed.Year(), parsed.Month(), day, 0, 0, 0, 0, time.UTC), nil
}

// ComputeStandard genera el cuadro de amortización estándar, sin
// ninguna estrategia de amortización.
func (s *AmortizationService) ComputeStandard(terms domain.LoanTerms) (domain.Schedule, error) {
	if err := s.ValidateTerms(terms); err != nil {
		return nil, err
	}

	start, err := s.startDate(terms)
	if err != nil {
		return nil, err
	}

	capital := terms.Principal
	rate := terms.MonthlyRate()
	months := terms.TermMonths()
	installment := monthlyInstallment(capital, rate, months)

	schedule := make(domain.Schedule, 0, months)
	for i := 1; i <= months; i++ {
		interest := capital * rate
		principal := installment - interest
		periodInstallment := installment

		// El último pago absorbe el redondeo acumulado para dejar el
		// capital pendiente exactamente en cero.
		if i == months {
			principal = capital
			periodInstallment = principal + interest
		}

		capital -= principal
		if capital < 0 {
			capital = 0
		}

		schedule = append(schedule, domain.ScheduleRow{
			Period:               i,
			Date:                 start.AddDate(0, i, 0),
			Installment:          periodInstallment,
			Interest:             interest,
			Principal:            principal,
			Balance:              capital,
			EffectiveInstallment: installment,
		})
	}

	return schedule, nil
}

// ComputeStrategy genera el cuadro de amortización aplicando la
// estrategia: aportación inicial en el periodo 0 y aportaciones cada
// semestre durante los años configurados. Tras cada aportación la cuota
// se recalcula sobre el capital reducido y los meses restantes del
// plazo original (reducir cuota, mantener plazo).
func (s *AmortizationService) ComputeStrategy(terms domain.LoanTerms, strategy domain.ExtraPaymentStrategy) (domain.Schedule, error) {
	if err := s.ValidateTerms(terms); err != nil {
		return nil, err
	}
	if err := s.ValidateStrategy(terms, strategy); err != nil {
		return nil, err
	}

	start, err := s.startDate(terms)
	if err != nil {
		return nil, err
	}

	capital := terms.Principal - strategy.InitialLumpSum
	rate := terms.MonthlyRate()
	months := terms.TermMonths()
	installment := monthlyInstallment(capital, rate, months)
	extraHorizon := strategy.Years * 12

	schedule := make(domain.Schedule, 0, months)
	for i := 1; i <= months; i++ {
		interest := capital * rate
		principal := installment - interest
		if principal > capital {
			principal = capital
		}

		extra := 0.0
		if i%ExtraPaymentInterval == 0 && i <= extraHorizon {
			extra = strategy.ResolveExtra(installment)
			// Limitar la aportación extra al capital que quede tras la
			// amortización ordinaria del mes.
			if extra > capital-principal {
				extra = capital - principal
			}
			if extra < 0 {
				extra = 0
			}
		}

		periodInstallment := installment
		if i == months {
			extra = 0
			principal = capital
			periodInstallment = principal + interest
		}

		capital -= principal + extra
		if capital < BalanceTolerance {
			capital = 0
		}

		// Reducir cuota manteniendo plazo: recalcular sobre los meses
		// restantes del plazo original.
		if extra > 0 && i < months {
			installment = monthlyInstallment(capital, rate, months-i)
		}

		schedule = append(schedule, domain.ScheduleRow{
			Period:               i,
			Date:                 start.AddDate(0, i, 0),
			Installment:          periodInstallment,
			Interest:             interest,
			Principal:            principal,
			ExtraPayment:         extra,
			Balance:              capital,
			EffectiveInstallment: installment,
		})

		// Cancelación anticipada: no se generan más filas.
		if capital == 0 {
			break
		}
	}

	return schedule, nil
}
