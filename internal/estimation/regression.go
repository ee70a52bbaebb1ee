package estimation

import (
	"fmt"
	"math"

	"gonum.org/v1/gonum/floats"
	"gonum.org/v1/gonum/mat"
)

// AlgorithmLinear names the ordinary (lightly ridge-regularised) least
// squares model.
const AlgorithmLinear = "linear_regression"

// LinearModel is y = Intercept + Coefficients·x.
type LinearModel struct {
	Intercept    float64   `json:"intercept"`
	Coefficients []float64 `json:"coefficients"`
}

// FitLinear fits a linear model by solving the ridge normal equations on
// centered data, (XcᵀXc + λI)β = Xcᵀyc, so the intercept is not penalised.
//
// One indicator per category plus an intercept makes XᵀX singular; ridge must
// be > 0 and is scaled by the mean diagonal of XcᵀXc.
func FitLinear(X [][]float64, y []float64, ridge float64) (*LinearModel, error) {
	n := len(X)
	if n == 0 || n != len(y) {
		return nil, fmt.Errorf("%w: %d feature rows for %d targets", ErrData, n, len(y))
	}
	p := len(X[0])
	for i, row := range X {
		if len(row) != p {
			return nil, fmt.Errorf("%w: row %d has %d features, expected %d", ErrData, i, len(row), p)
		}
	}
	if ridge <= 0 {
		return nil, fmt.Errorf("ridge must be positive, got %v", ridge)
	}

	xMean := make([]float64, p)
	for _, row := range X {
		floats.Add(xMean, row)
	}
	floats.Scale(1/float64(n), xMean)
	yMean := floats.Sum(y) / float64(n)

	xtx := mat.NewSymDense(p, nil)
	xty := mat.NewVecDense(p, nil)
	centered := make([]float64, p)
	for i, row := range X {
		floats.SubTo(centered, row, xMean)
		yc := y[i] - yMean
		for a := 0; a < p; a++ {
			xty.SetVec(a, xty.AtVec(a)+centered[a]*yc)
			for b := a; b < p; b++ {
				xtx.SetSym(a, b, xtx.At(a, b)+centered[a]*centered[b])
			}
		}
	}

	diag := 0.0
	for a := 0; a < p; a++ {
		diag += xtx.At(a, a)
	}
	lambda := ridge * math.Max(1, diag/float64(p))
	for a := 0; a < p; a++ {
		xtx.SetSym(a, a, xtx.At(a, a)+lambda)
	}

	var chol mat.Cholesky
	if ok := chol.Factorize(xtx); !ok {
		return nil, fmt.Errorf("%w: normal equations are not positive definite", ErrData)
	}
	var beta mat.VecDense
	if err := chol.SolveVecTo(&beta, xty); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrData, err)
	}

	coef := make([]float64, p)
	for a := range coef {
		coef[a] = beta.AtVec(a)
	}
	return &LinearModel{
		Intercept:    yMean - floats.Dot(coef, xMean),
		Coefficients: coef,
	}, nil
}

// Predict evaluates the model on one aligned feature vector.
func (m *LinearModel) Predict(x []float64) (float64, error) {
	if m == nil {
		return 0, fmt.Errorf("%w: no model", ErrInference)
	}
	if len(x) != len(m.Coefficients) {
		return 0, fmt.Errorf("%w: feature vector has %d columns, model expects %d", ErrInference, len(x), len(m.Coefficients))
	}
	v := m.Intercept + floats.Dot(m.Coefficients, x)
	if math.IsNaN(v) || math.IsInf(v, 0) {
		return 0, fmt.Errorf("%w: non-finite prediction", ErrInference)
	}
	return v, nil
}
