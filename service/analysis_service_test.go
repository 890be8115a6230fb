package service

import (
	"errors"
	"testing"

	"hipoteca-grid/domain"
)

func TestAnalyze_ThresholdOrdering(t *testing.T) {

	amortization := NewAmortizationService()
	analyzer := NewInterestDistributionAnalyzer()

	schedule, err := amortization.ComputeStandard(baseTerms())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	summary, err := analyzer.Analyze(schedule)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if summary.Period50 <= 0 || summary.Period80 <= 0 {
		t.Fatalf("expected both thresholds to be reached, got 50%%=%d 80%%=%d", summary.Period50, summary.Period80)
	}
	if summary.Period50 > summary.Period80 {
		t.Errorf("expected 50%% period %d <= 80%% period %d", summary.Period50, summary.Period80)
	}
	if summary.Period80 > len(schedule) {
		t.Errorf("expected 80%% period within %d periods, got %d", len(schedule), summary.Period80)
	}

	// Los intereses se concentran al principio: el 50% debe cruzarse
	// antes de la mitad del plazo.
	if summary.Period50 >= len(schedule)/2 {
		t.Errorf("expected front-loaded interest, 50%% crossed at period %d", summary.Period50)
	}

	last := summary.Points[len(summary.Points)-1]
	if !almostEqual(last.CumulativeFraction, 1, 1e-9) {
		t.Errorf("expected cumulative fraction to end at 1, got %.12f", last.CumulativeFraction)
	}
}

func TestAnalyze_HandBuiltSchedule(t *testing.T) {

	analyzer := NewInterestDistributionAnalyzer()

	schedule := domain.Schedule{
		{Period: 1, Interest: 5},
		{Period: 2, Interest: 3},
		{Period: 3, Interest: 1},
		{Period: 4, Interest: 1},
	}

	summary, err := analyzer.Analyze(schedule)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if summary.Period50 != 1 {
		t.Errorf("expected 50%% at period 1, got %d", summary.Period50)
	}
	if summary.Period80 != 2 {
		t.Errorf("expected 80%% at period 2, got %d", summary.Period80)
	}
	if summary.TotalInterest != 10 {
		t.Errorf("expected total interest 10, got %f", summary.TotalInterest)
	}
}

func TestAnalyze_DegenerateSchedules(t *testing.T) {

	analyzer := NewInterestDistributionAnalyzer()

	if _, err := analyzer.Analyze(nil); !errors.Is(err, ErrEmptySchedule) {
		t.Errorf("expected ErrEmptySchedule for empty schedule, got %v", err)
	}

	zeroInterest := domain.Schedule{{Period: 1, Interest: 0}, {Period: 2, Interest: 0}}
	if _, err := analyzer.Analyze(zeroInterest); !errors.Is(err, ErrEmptySchedule) {
		t.Errorf("expected ErrEmptySchedule for zero interest, got %v", err)
	}
}
