package estimation

import (
	"context"
	"fmt"
	"math"
	"sort"
	"time"

	"reliant_crm/internal/domain/entities"
	"reliant_crm/internal/infrastructure/logger"
)

// TrainingSource supplies historical priced lines joined with catalog attributes.
type TrainingSource interface {
	ListTrainingRows(ctx context.Context) ([]entities.TrainingRow, error)
}

type TrainerOptions struct {
	ArtifactID   string
	Seed         int64
	TestFraction float64
	MinRows      int
	Ridge        float64
}

func DefaultTrainerOptions() TrainerOptions {
	return TrainerOptions{
		ArtifactID:   "quotation-price-model",
		Seed:         42,
		TestFraction: 0.2,
		MinRows:      5,
		Ridge:        1e-6,
	}
}

// Trainer builds price models from the full historical corpus.
type Trainer struct {
	source TrainingSource
	store  ArtifactStore
	opts   TrainerOptions
	log    *logger.Logger
	now    func() time.Time
}

func NewTrainer(source TrainingSource, store ArtifactStore, opts TrainerOptions, log *logger.Logger) *Trainer {
	def := DefaultTrainerOptions()
	if opts.ArtifactID == "" {
		opts.ArtifactID = def.ArtifactID
	}
	if opts.TestFraction <= 0 || opts.TestFraction >= 1 {
		opts.TestFraction = def.TestFraction
	}
	if opts.MinRows < 2 {
		opts.MinRows = 2
	}
	if opts.Ridge <= 0 {
		opts.Ridge = def.Ridge
	}
	return &Trainer{
		source: source,
		store:  store,
		opts:   opts,
		log:    logger.OrNop(log).Component("estimation.trainer"),
		now:    func() time.Time { return time.Now().UTC() },
	}
}

// Train reads the corpus, fits a model and persists it. Nothing is written
// unless fitting succeeds.
func (t *Trainer) Train(ctx context.Context) (*Artifact, error) {
	t.log.Info("training start", "artifact_id", t.opts.ArtifactID)
	rows, err := t.source.ListTrainingRows(ctx)
	if err != nil {
		t.log.Error("loading training rows failed", "error", err)
		return nil, fmt.Errorf("%w: %w", ErrConnectivity, err)
	}
	t.log.Info("training rows loaded", "rows", len(rows))

	a, err := t.Fit(rows)
	if err != nil {
		t.log.Error("training aborted", "error", err)
		return nil, err
	}

	if err := t.store.Save(ctx, a); err != nil {
		t.log.Error("saving artifact failed", "artifact_id", a.ID, "error", err)
		return nil, fmt.Errorf("save artifact: %w", err)
	}
	t.log.Info("training complete", "artifact_id", a.ID, "schema_id", a.SchemaID, "columns", len(a.Columns))
	return a, nil
}

// Fit builds an artifact from rows without touching storage.
func (t *Trainer) Fit(rows []entities.TrainingRow) (*Artifact, error) {
	if len(rows) < t.opts.MinRows {
		return nil, fmt.Errorf("%w: %d rows, need at least %d", ErrData, len(rows), t.opts.MinRows)
	}
	rows = append([]entities.TrainingRow(nil), rows...)
	sort.SliceStable(rows, func(i, j int) bool {
		if rows[i].QuotationID != rows[j].QuotationID {
			return rows[i].QuotationID < rows[j].QuotationID
		}
		return rows[i].LineNo < rows[j].LineNo
	})
	for i, r := range rows {
		if !finite(r.Width) || !finite(r.Height) || !finite(r.ActualPrice) {
			return nil, fmt.Errorf("%w: row %d (quotation %s) has non-finite values", ErrData, i, r.QuotationID)
		}
	}

	columns := BuildSchema(rows)
	X := make([][]float64, len(rows))
	y := make([]float64, len(rows))
	for i, r := range rows {
		X[i], _ = EncodeRow(columns, inputFromRow(r))
		y[i] = r.ActualPrice
	}

	trainIdx, testIdx := SplitIndices(len(rows), t.opts.TestFraction, t.opts.Seed)
	model, err := FitLinear(pickRows(X, trainIdx), pickValues(y, trainIdx), t.opts.Ridge)
	if err != nil {
		return nil, err
	}

	actual := pickValues(y, testIdx)
	predicted := make([]float64, len(testIdx))
	for i, idx := range testIdx {
		v, err := model.Predict(X[idx])
		if err != nil {
			return nil, err
		}
		predicted[i] = v
	}

	metrics := Metrics{
		TrainRows:    len(trainIdx),
		TestRows:     len(testIdx),
		Seed:         t.opts.Seed,
		TestFraction: t.opts.TestFraction,
	}
	if r2 := RSquared(actual, predicted); !math.IsNaN(r2) {
		metrics.R2 = &r2
		t.log.Info("model evaluated", "r2", fmt.Sprintf("%.2f", r2), "train_rows", len(trainIdx), "test_rows", len(testIdx))
	} else {
		t.log.Warn("model evaluation undefined on hold-out", "test_rows", len(testIdx))
	}

	return &Artifact{
		ID:        t.opts.ArtifactID,
		SchemaID:  SchemaID(columns),
		Algorithm: AlgorithmLinear,
		Columns:   columns,
		Model:     *model,
		Metrics:   metrics,
		TrainedAt: t.now(),
	}, nil
}

func pickRows(X [][]float64, idx []int) [][]float64 {
	out := make([][]float64, len(idx))
	for i, j := range idx {
		out[i] = X[j]
	}
	return out
}

func pickValues(v []float64, idx []int) []float64 {
	out := make([]float64, len(idx))
	for i, j := range idx {
		out[i] = v[j]
	}
	return out
}

func finite(v float64) bool { return !math.IsNaN(v) && !math.IsInf(v, 0) }
