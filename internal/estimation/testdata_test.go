package estimation

import (
	"context"
	"fmt"
	"sync"

	"reliant_crm/internal/domain/entities"
)

// syntheticRows builds a corpus whose price is an exact linear function of
// the features, so a fitted model should reproduce it.
func syntheticRows(n int) []entities.TrainingRow {
	types := []entities.ProductType{entities.ProductTypeWindow, entities.ProductTypeDoor}
	materials := []entities.Material{entities.MaterialUPVC, entities.MaterialAluminium, entities.MaterialTimber}
	rows := make([]entities.TrainingRow, 0, n)
	for i := 0; i < n; i++ {
		pt := types[i%len(types)]
		m := materials[(i/2)%len(materials)]
		w := 0.5 + float64(i%7)*0.25
		h := 0.8 + float64(i%5)*0.3
		q := 1 + i%4
		price := 40 + 120*w + 75*h + 30*float64(q)
		if pt == entities.ProductTypeDoor {
			price += 150
		}
		switch m {
		case entities.MaterialAluminium:
			price += 60
		case entities.MaterialTimber:
			price += 110
		}
		rows = append(rows, entities.TrainingRow{
			QuotationID: fmt.Sprintf("q-%03d", i/3),
			LineNo:      i % 3,
			Width:       w,
			Height:      h,
			Quantity:    q,
			ProductType: pt,
			Material:    m,
			ActualPrice: price,
		})
	}
	return rows
}

func linearPrice(w, h float64, q int, pt entities.ProductType, m entities.Material) float64 {
	price := 40 + 120*w + 75*h + 30*float64(q)
	if pt == entities.ProductTypeDoor {
		price += 150
	}
	switch m {
	case entities.MaterialAluminium:
		price += 60
	case entities.MaterialTimber:
		price += 110
	}
	return price
}

type fakeSource struct {
	rows []entities.TrainingRow
	err  error
}

func (f *fakeSource) ListTrainingRows(context.Context) ([]entities.TrainingRow, error) {
	return f.rows, f.err
}

type memoryStore struct {
	mu    sync.Mutex
	saved *Artifact
	saves int
	err   error
}

func (m *memoryStore) Save(_ context.Context, a *Artifact) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.err != nil {
		return m.err
	}
	m.saves++
	m.saved = a.clone()
	return nil
}

func (m *memoryStore) Load(context.Context) (*Artifact, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.saved == nil {
		return nil, ErrArtifactNotFound
	}
	return m.saved.clone(), nil
}

func constantArtifact(columns []string, intercept float64) *Artifact {
	return &Artifact{
		ID:        "test",
		SchemaID:  SchemaID(columns),
		Algorithm: AlgorithmLinear,
		Columns:   columns,
		Model:     LinearModel{Intercept: intercept, Coefficients: make([]float64, len(columns))},
	}
}
