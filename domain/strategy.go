package domain

// Modos de amortización extraordinaria semestral.
const (
	// ModeCuotas interpreta la magnitud como número de cuotas mensuales.
	ModeCuotas = "cuotas"
	// ModeConstante interpreta la magnitud como importe fijo en euros.
	ModeConstante = "constante"
)

// ExtraPaymentStrategy define una estrategia de amortizaciones
// extraordinarias: una aportación inicial en el periodo 0 y aportaciones
// semestrales durante un número de años, siempre reduciendo cuota y
// manteniendo el plazo original.
type ExtraPaymentStrategy struct {
	InitialLumpSum float64 `json:"amortizacion_inicial"`
	Mode           string  `json:"amortizacion_tipo"`
	Magnitude      float64 `json:"amortizacion_valor"`
	Years          int     `json:"anios_amortizacion"`
}

// IsNoOp indica si la estrategia no aporta ningún pago extraordinario.
func (e ExtraPaymentStrategy) IsNoOp() bool {
	return e.InitialLumpSum == 0 && (e.Magnitude == 0 || e.Years == 0)
}

// ResolveExtra resuelve la magnitud semestral a un importe en euros
// dada la cuota mensual vigente.
func (e ExtraPaymentStrategy) ResolveExtra(currentInstallment float64) float64 {
	if e.Mode == ModeCuotas {
		return e.Magnitude * currentInstallment
	}
	return e.Magnitude
}
