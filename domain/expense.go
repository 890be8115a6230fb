package domain

// Modos de facturación de un gasto recurrente.
const (
	// BillingMonthly factura el importe todos los meses.
	BillingMonthly = "monthly"
	// BillingPeriodic factura el importe una vez por ciclo de 12 meses
	// (ej: una prima anual o el IBI).
	BillingPeriodic = "periodic"
)

// ExpenseItem es un gasto recurrente asociado a la vivienda, ajeno al
// saldo del préstamo, con incremento anual compuesto.
type ExpenseItem struct {
	Name         string  `json:"nombre"`
	Amount       float64 `json:"valor"`
	AnnualGrowth float64 `json:"tasa_incremento_anual"`
	Billing      string  `json:"billing_mode,omitempty"` // por defecto monthly
}

// PeriodExpense es el gasto total de un periodo mensual concreto.
type PeriodExpense struct {
	Period int     `json:"periodo"`
	Total  float64 `json:"gasto_total"`
}
