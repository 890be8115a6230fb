package service

import "errors"

var (
	// ErrInvalidLoanParameters indica capital, plazo o tasa inválidos.
	ErrInvalidLoanParameters = errors.New("parámetros de préstamo inválidos")

	// ErrInvalidStrategyParameters indica una estrategia de amortización
	// extraordinaria mal formada.
	ErrInvalidStrategyParameters = errors.New("parámetros de estrategia inválidos")

	// ErrInvalidExpense indica un gasto recurrente mal formado.
	ErrInvalidExpense = errors.New("gasto recurrente inválido")

	// ErrEmptySchedule indica un cuadro sin filas o sin intereses, sobre
	// el que no se puede calcular ninguna distribución.
	ErrEmptySchedule = errors.New("cuadro de amortización degenerado")

	// ErrEmptyGridConfiguration indica que el grid search se ejecutó sin
	// configurar o con alguna dimensión vacía.
	ErrEmptyGridConfiguration = errors.New("grid sin configurar o con dimensiones vacías")

	// ErrUnknownCriterion indica un criterio de ordenación no reconocido.
	ErrUnknownCriterion = errors.New("criterio de ordenación desconocido")

	// ErrNoResults indica que aún no hay resultados que ordenar.
	ErrNoResults = errors.New("no hay resultados: ejecute el grid primero")
)
