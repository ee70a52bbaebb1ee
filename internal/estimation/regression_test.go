package estimation

import (
	"errors"
	"math"
	"testing"
)

func TestFitLinear_RecoversExactRelation(t *testing.T) {
	rows := syntheticRows(60)
	columns := BuildSchema(rows)
	X := make([][]float64, len(rows))
	y := make([]float64, len(rows))
	for i, r := range rows {
		X[i], _ = EncodeRow(columns, inputFromRow(r))
		y[i] = r.ActualPrice
	}

	m, err := FitLinear(X, y, 1e-9)
	if err != nil {
		t.Fatalf("fit: %v", err)
	}
	for i := range X {
		got, err := m.Predict(X[i])
		if err != nil {
			t.Fatalf("predict: %v", err)
		}
		if math.Abs(got-y[i]) > 0.01 {
			t.Fatalf("row %d: expected %.4f, got %.4f", i, y[i], got)
		}
	}
}

func TestFitLinear_Errors(t *testing.T) {
	if _, err := FitLinear(nil, nil, 1e-6); !errors.Is(err, ErrData) {
		t.Fatalf("expected ErrData, got %v", err)
	}
	if _, err := FitLinear([][]float64{{1, 2}, {1}}, []float64{1, 2}, 1e-6); !errors.Is(err, ErrData) {
		t.Fatalf("expected ErrData for ragged rows, got %v", err)
	}
	if _, err := FitLinear([][]float64{{1}, {2}}, []float64{1, 2}, 0); err == nil {
		t.Fatalf("expected error for non-positive ridge")
	}
}

func TestLinearModel_Predict(t *testing.T) {
	m := &LinearModel{Intercept: 10, Coefficients: []float64{2, 3}}
	got, err := m.Predict([]float64{1, 1})
	if err != nil || got != 15 {
		t.Fatalf("expected 15, got %v (%v)", got, err)
	}
	if _, err := m.Predict([]float64{1}); !errors.Is(err, ErrInference) {
		t.Fatalf("expected ErrInference on shape mismatch, got %v", err)
	}
	if _, err := m.Predict([]float64{math.Inf(1), 0}); !errors.Is(err, ErrInference) {
		t.Fatalf("expected ErrInference on non-finite output, got %v", err)
	}
}

func TestRSquared(t *testing.T) {
	if got := RSquared([]float64{1, 2, 3}, []float64{1, 2, 3}); got != 1 {
		t.Fatalf("expected 1, got %v", got)
	}
	if got := RSquared([]float64{5, 5}, []float64{4, 6}); !math.IsNaN(got) {
		t.Fatalf("expected NaN for constant targets, got %v", got)
	}
	if got := RSquared([]float64{1}, []float64{1}); !math.IsNaN(got) {
		t.Fatalf("expected NaN for a single value, got %v", got)
	}
	if got := RSquared([]float64{1, 2, 3}, []float64{2, 2, 2}); got != 0 {
		t.Fatalf("expected 0 for mean predictor, got %v", got)
	}
}
