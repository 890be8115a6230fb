package domain

import "time"

// LoanTerms describe una hipoteca a tipo fijo con sistema de
// amortización francés. Los términos son inmutables una vez creada la
// simulación.
type LoanTerms struct {
	Principal  float64 `json:"capital_inicial"`
	AnnualRate float64 `json:"tasa_anual"`
	TermYears  int     `json:"plazo_anios"`
	StartDate  string  `json:"fecha_inicio,omitempty"` // formato YYYY-MM-DD
	PaymentDay int     `json:"dia_pago,omitempty"`     // 1-28
}

// TermMonths devuelve el plazo total en meses.
func (t LoanTerms) TermMonths() int {
	return t.TermYears * 12
}

// MonthlyRate devuelve la tasa de interés mensual en tanto por uno.
func (t LoanTerms) MonthlyRate() float64 {
	return t.AnnualRate / 12 / 100
}

// ScheduleRow es una fila del cuadro de amortización. El periodo va de
// 1 a N y el capital pendiente es no creciente, con valor final 0.
type ScheduleRow struct {
	Period               int       `json:"periodo"`
	Date                 time.Time `json:"fecha"`
	Installment          float64   `json:"cuota"`
	Interest             float64   `json:"intereses"`
	Principal            float64   `json:"amortizacion"`
	ExtraPayment         float64   `json:"amortizacion_extra"`
	Balance              float64   `json:"capital_pendiente"`
	EffectiveInstallment float64   `json:"cuota_vigente"`
}

// Schedule es un cuadro de amortización completo, ordenado por periodo.
type Schedule []ScheduleRow

// TotalInterest suma la columna de intereses del cuadro.
func (s Schedule) TotalInterest() float64 {
	total := 0.0
	for _, row := range s {
		total += row.Interest
	}
	return total
}

// TotalPrincipal suma la amortización ordinaria y extraordinaria.
func (s Schedule) TotalPrincipal() float64 {
	total := 0.0
	for _, row := range s {
		total += row.Principal + row.ExtraPayment
	}
	return total
}
