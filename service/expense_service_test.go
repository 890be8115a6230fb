package service

import (
	"errors"
	"testing"
	"time"

	"hipoteca-grid/domain"
)

func TestProject_MonthlyGrowth(t *testing.T) {

	projector := NewExpenseProjector()
	start := time.Date(2025, 6, 1, 0, 0, 0, 0, time.UTC)

	expenses, err := projector.Project([]domain.ExpenseItem{
		{Name: "Comunidad", Amount: 50, AnnualGrowth: 3},
	}, 36, start)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if len(expenses) != 36 {
		t.Fatalf("expected 36 periods, got %d", len(expenses))
	}

	// Primer año sin incremento, después interés compuesto anual.
	if !almostEqual(expenses[0].Total, 50, 0.001) {
		t.Errorf("month 0: expected 50, got %.4f", expenses[0].Total)
	}
	if !almostEqual(expenses[11].Total, 50, 0.001) {
		t.Errorf("month 11: expected 50, got %.4f", expenses[11].Total)
	}
	if !almostEqual(expenses[12].Total, 51.50, 0.001) {
		t.Errorf("month 12: expected 51.50, got %.4f", expenses[12].Total)
	}
	if !almostEqual(expenses[24].Total, 53.045, 0.001) {
		t.Errorf("month 24: expected 53.045, got %.4f", expenses[24].Total)
	}
}

func TestProject_PeriodicBilling(t *testing.T) {

	projector := NewExpenseProjector()
	start := time.Date(2025, 1, 1, 0, 0, 0, 0, time.UTC)

	expenses, err := projector.Project([]domain.ExpenseItem{
		{Name: "Seguro Hogar", Amount: 600, AnnualGrowth: 2, Billing: domain.BillingPeriodic},
	}, 30, start)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	// El cargo anual cae una vez por ciclo de 12 meses, en la fase de su
	// primera ocurrencia.
	for i, expense := range expenses {
		switch i {
		case 0:
			if !almostEqual(expense.Total, 600, 0.001) {
				t.Errorf("month 0: expected 600, got %.4f", expense.Total)
			}
		case 12:
			if !almostEqual(expense.Total, 612, 0.001) {
				t.Errorf("month 12: expected 612, got %.4f", expense.Total)
			}
		case 24:
			if !almostEqual(expense.Total, 624.24, 0.001) {
				t.Errorf("month 24: expected 624.24, got %.4f", expense.Total)
			}
		default:
			if expense.Total != 0 {
				t.Errorf("month %d: expected 0, got %.4f", i, expense.Total)
			}
		}
	}
}

func TestProject_MixedItems(t *testing.T) {

	projector := NewExpenseProjector()
	start := time.Date(2025, 1, 1, 0, 0, 0, 0, time.UTC)

	expenses, err := projector.Project([]domain.ExpenseItem{
		{Name: "Comunidad", Amount: 50, AnnualGrowth: 0},
		{Name: "IBI", Amount: 300, AnnualGrowth: 0, Billing: domain.BillingPeriodic},
	}, 13, start)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if !almostEqual(expenses[0].Total, 350, 0.001) {
		t.Errorf("month 0: expected 350, got %.4f", expenses[0].Total)
	}
	if !almostEqual(expenses[1].Total, 50, 0.001) {
		t.Errorf("month 1: expected 50, got %.4f", expenses[1].Total)
	}
	if !almostEqual(expenses[12].Total, 350, 0.001) {
		t.Errorf("month 12: expected 350, got %.4f", expenses[12].Total)
	}
}

func TestProject_InvalidItems(t *testing.T) {

	projector := NewExpenseProjector()
	start := time.Date(2025, 1, 1, 0, 0, 0, 0, time.UTC)

	cases := []struct {
		name  string
		items []domain.ExpenseItem
	}{
		{"empty name", []domain.ExpenseItem{{Name: "", Amount: 10}}},
		{"duplicate name", []domain.ExpenseItem{{Name: "IBI", Amount: 10}, {Name: "IBI", Amount: 20}}},
		{"negative amount", []domain.ExpenseItem{{Name: "IBI", Amount: -10}}},
		{"negative growth", []domain.ExpenseItem{{Name: "IBI", Amount: 10, AnnualGrowth: -3}}},
		{"unknown billing", []domain.ExpenseItem{{Name: "IBI", Amount: 10, Billing: "semanal"}}},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			if _, err := projector.Project(tc.items, 12, start); !errors.Is(err, ErrInvalidExpense) {
				t.Errorf("expected ErrInvalidExpense, got %v", err)
			}
		})
	}
}
