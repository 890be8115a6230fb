package domain

// InterestDistributionPoint es la fracción acumulada de intereses
// pagada hasta un periodo.
type InterestDistributionPoint struct {
	Period             int     `json:"periodo"`
	CumulativeFraction float64 `json:"fraccion_acumulada"`
}

// InterestDistributionSummary localiza cuándo se cruzan los umbrales
// del 50% y 80% de los intereses totales de un cuadro.
type InterestDistributionSummary struct {
	Points        []InterestDistributionPoint `json:"puntos"`
	TotalInterest float64                     `json:"intereses_totales"`
	Period50      int                         `json:"periodo_50_pct"`
	Period80      int                         `json:"periodo_80_pct"`
}

// SavingsSummary compara una estrategia contra la amortización estándar.
type SavingsSummary struct {
	StandardInterest   float64 `json:"intereses_estandar"`
	StrategyInterest   float64 `json:"intereses_estrategia"`
	InterestSavings    float64 `json:"ahorro_intereses"`
	SavingsPercentage  float64 `json:"ahorro_porcentaje"`
	InitialInstallment float64 `json:"cuota_inicial"`
	FinalInstallment   float64 `json:"cuota_final"`
	MonthlyProvision   float64 `json:"provision_mensual"`
}

// SimulationReport es el informe completo de una simulación: cuadros,
// gastos proyectados, distribución de intereses y ahorro.
type SimulationReport struct {
	Standard     Schedule                    `json:"cuadro_estandar"`
	Strategy     Schedule                    `json:"cuadro_estrategia"`
	Expenses     []PeriodExpense             `json:"gastos"`
	Distribution InterestDistributionSummary `json:"distribucion_intereses"`
	Savings      SavingsSummary              `json:"ahorro"`
}
