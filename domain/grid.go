package domain

// GridSpace define el espacio de búsqueda de estrategias: cada
// dimensión es una lista de candidatos y las magnitudes van indexadas
// por modo. El producto cartesiano se enumera en orden de anidamiento
// natural: aportación inicial, modo, magnitud del modo, años.
type GridSpace struct {
	InitialValues []float64            `json:"amortizacion_inicial_valores"`
	Modes         []string             `json:"amortizacion_tipos"`
	Magnitudes    map[string][]float64 `json:"amortizacion_valores"`
	Years         []int                `json:"anios_amortizacion_valores"`
	Limit         int                  `json:"limite_combinaciones,omitempty"`
}

// Combinations devuelve el número total de combinaciones del espacio.
func (g GridSpace) Combinations() int {
	perMode := 0
	for _, mode := range g.Modes {
		perMode += len(g.Magnitudes[mode])
	}
	return len(g.InitialValues) * perMode * len(g.Years)
}

// GridSearchResult es el resultado de evaluar una combinación del
// espacio de búsqueda.
type GridSearchResult struct {
	Index    int                  `json:"indice"`
	Strategy ExtraPaymentStrategy `json:"parametros"`
	Savings  SavingsSummary       `json:"metricas"`
}

// Criterios de ordenación de resultados del grid search.
const (
	CriterionTotalSavings      = "ahorro_total"
	CriterionSavingsPercentage = "ahorro_porcentaje"
	CriterionFinalInstallment  = "cuota_final"
	CriterionMonthlyProvision  = "provision_mensual"
	CriterionSavingsProvision  = "relacion_ahorro_provision"
)
