package estimation

import (
	"context"
	"fmt"

	"reliant_crm/internal/domain/entities"
	"reliant_crm/internal/infrastructure/logger"
)

// Estimate is the result of one prediction.
type Estimate struct {
	Price    entities.EstimatedPrice
	SchemaID string
	// UnseenCategories lists request categories the model was not trained on
	// ("field=value"). Their indicators were left at zero.
	UnseenCategories []string
}

// Predictor serves estimates from the artifact currently held by its handle.
type Predictor struct {
	handle *ArtifactHandle
	log    *logger.Logger
}

func NewPredictor(handle *ArtifactHandle, log *logger.Logger) *Predictor {
	return &Predictor{handle: handle, log: logger.OrNop(log).Component("estimation.predictor")}
}

// Predict estimates the price of a hypothetical item. Inputs are expected to
// be validated by the caller.
func (p *Predictor) Predict(_ context.Context, in PredictionInput) (est Estimate, err error) {
	a := p.handle.Load()
	if a == nil {
		return Estimate{}, ErrModelUnavailable
	}

	defer func() {
		if r := recover(); r != nil {
			p.log.Error("inference panic", "schema_id", a.SchemaID, "panic", r)
			est, err = Estimate{}, fmt.Errorf("%w: %v", ErrInference, r)
		}
	}()

	x, unseen := EncodeRow(a.Columns, in)
	if len(unseen) > 0 {
		p.log.Warn("prediction with categories unseen at training", "unseen", unseen, "schema_id", a.SchemaID)
	}
	raw, err := a.Model.Predict(x)
	if err != nil {
		p.log.Error("inference failed", "schema_id", a.SchemaID, "error", err)
		return Estimate{}, err
	}
	return Estimate{
		Price:            entities.NewEstimatedPrice(raw),
		SchemaID:         a.SchemaID,
		UnseenCategories: unseen,
	}, nil
}

// Refresh loads the stored artifact and swaps it in. On error the current
// artifact stays in place.
func (p *Predictor) Refresh(ctx context.Context, store ArtifactStore) (*Artifact, error) {
	a, err := store.Load(ctx)
	if err != nil {
		return nil, err
	}
	if err := p.handle.Replace(a); err != nil {
		p.log.Error("rejecting stored artifact", "error", err)
		return nil, err
	}
	p.log.Info("artifact loaded", "artifact_id", a.ID, "schema_id", a.SchemaID, "columns", len(a.Columns))
	return p.Current(), nil
}

// Current returns a copy of the artifact in use, or nil.
func (p *Predictor) Current() *Artifact {
	a := p.handle.Load()
	if a == nil {
		return nil
	}
	return a.clone()
}

// Use publishes an already trained artifact.
func (p *Predictor) Use(a *Artifact) error {
	if err := p.handle.Replace(a); err != nil {
		return err
	}
	p.log.Info("artifact swapped", "artifact_id", a.ID, "schema_id", a.SchemaID)
	return nil
}
