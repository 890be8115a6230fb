package service

const (
	MaxLoanAmount   = 1_000_000_000.0 // 1 billón
	MaxInterestRate = 1000.0          // 1000% anual
	MaxTermYears    = 50
	MaxPaymentDay   = 28 // evita problemas con febrero

	// Las amortizaciones extraordinarias se aplican cada semestre.
	ExtraPaymentInterval = 6

	// Tolerancia para considerar el préstamo cancelado.
	BalanceTolerance = 0.01

	// Umbrales de la distribución acumulada de intereses.
	InterestThreshold50 = 0.50
	InterestThreshold80 = 0.80
)
