package estimation

import (
	"context"
	"errors"
	"math"
	"reflect"
	"testing"

	"reliant_crm/internal/domain/entities"
)

func newTestTrainer(src TrainingSource, store ArtifactStore) *Trainer {
	return NewTrainer(src, store, DefaultTrainerOptions(), nil)
}

func TestTrainer_Train(t *testing.T) {
	t.Run("success persists artifact", func(t *testing.T) {
		store := &memoryStore{}
		tr := newTestTrainer(&fakeSource{rows: syntheticRows(40)}, store)

		a, err := tr.Train(context.Background())
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if store.saves != 1 {
			t.Fatalf("expected one save, got %d", store.saves)
		}
		if err := a.Validate(); err != nil {
			t.Fatalf("invalid artifact: %v", err)
		}
		if a.Metrics.TrainRows != 32 || a.Metrics.TestRows != 8 {
			t.Fatalf("unexpected split: %+v", a.Metrics)
		}
		if a.Metrics.R2 == nil || *a.Metrics.R2 < 0.99 {
			t.Fatalf("expected near perfect fit, got %+v", a.Metrics.R2)
		}
		want := []string{"width", "height", "quantity", "product_type_Door", "product_type_Window", "material_Aluminium", "material_Timber", "material_uPVC"}
		if !reflect.DeepEqual(a.Columns, want) {
			t.Fatalf("expected %v, got %v", want, a.Columns)
		}
	})

	t.Run("source failure aborts before writing", func(t *testing.T) {
		store := &memoryStore{saved: constantArtifact([]string{"width", "height", "quantity"}, 1)}
		tr := newTestTrainer(&fakeSource{err: errors.New("connection refused")}, store)

		_, err := tr.Train(context.Background())
		if !errors.Is(err, ErrConnectivity) {
			t.Fatalf("expected ErrConnectivity, got %v", err)
		}
		if store.saves != 0 || store.saved.Model.Intercept != 1 {
			t.Fatalf("previous artifact must be untouched")
		}
	})

	t.Run("empty corpus is a data error", func(t *testing.T) {
		store := &memoryStore{}
		tr := newTestTrainer(&fakeSource{}, store)

		_, err := tr.Train(context.Background())
		if !errors.Is(err, ErrData) {
			t.Fatalf("expected ErrData, got %v", err)
		}
		if store.saves != 0 {
			t.Fatalf("nothing should be written")
		}
	})

	t.Run("insufficient corpus is a data error", func(t *testing.T) {
		tr := newTestTrainer(&fakeSource{rows: syntheticRows(3)}, &memoryStore{})
		if _, err := tr.Train(context.Background()); !errors.Is(err, ErrData) {
			t.Fatalf("expected ErrData, got %v", err)
		}
	})

	t.Run("store failure is reported", func(t *testing.T) {
		store := &memoryStore{err: errors.New("disk full")}
		tr := newTestTrainer(&fakeSource{rows: syntheticRows(20)}, store)
		if _, err := tr.Train(context.Background()); err == nil {
			t.Fatalf("expected save error")
		}
	})
}

func TestTrainer_FitIsReproducible(t *testing.T) {
	rows := syntheticRows(45)
	tr := newTestTrainer(nil, nil)

	a1, err := tr.Fit(rows)
	if err != nil {
		t.Fatalf("fit: %v", err)
	}

	shuffled := append([]entities.TrainingRow(nil), rows...)
	for i, j := 0, len(shuffled)-1; i < j; i, j = i+1, j-1 {
		shuffled[i], shuffled[j] = shuffled[j], shuffled[i]
	}
	a2, err := tr.Fit(shuffled)
	if err != nil {
		t.Fatalf("fit: %v", err)
	}

	if !reflect.DeepEqual(a1.Columns, a2.Columns) || a1.SchemaID != a2.SchemaID {
		t.Fatalf("column lists differ: %v vs %v", a1.Columns, a2.Columns)
	}
	if a1.Metrics.TrainRows != a2.Metrics.TrainRows || a1.Metrics.TestRows != a2.Metrics.TestRows {
		t.Fatalf("partition sizes differ")
	}
	for i := range a1.Model.Coefficients {
		if math.Abs(a1.Model.Coefficients[i]-a2.Model.Coefficients[i]) > 1e-9 {
			t.Fatalf("coefficient %d differs: %v vs %v", i, a1.Model.Coefficients[i], a2.Model.Coefficients[i])
		}
	}
}

func TestTrainer_FitOnlyObservedCategories(t *testing.T) {
	rows := syntheticRows(30)
	windowsOnly := rows[:0:0]
	for _, r := range rows {
		if r.ProductType == entities.ProductTypeWindow {
			windowsOnly = append(windowsOnly, r)
		}
	}

	a, err := newTestTrainer(nil, nil).Fit(windowsOnly)
	if err != nil {
		t.Fatalf("fit: %v", err)
	}
	for _, c := range a.Columns {
		if c == ProductTypeColumn(entities.ProductTypeDoor) {
			t.Fatalf("unobserved category must not get a column: %v", a.Columns)
		}
	}
}
