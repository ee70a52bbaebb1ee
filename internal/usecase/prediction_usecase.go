package usecase

import (
	"context"
	"errors"
	"fmt"
	"reliant_crm/internal/estimation"
	"reliant_crm/internal/infrastructure/logger"
	"sync"
)

var (
	ErrInvalidPredictionInput = errors.New("invalid prediction input")
	ErrTrainingNotConfigured  = errors.New("model training not configured")
	ErrTrainingInProgress     = errors.New("model training already in progress")
)

// IPredictionUseCase serves price estimates and manages the model artifact.
//
// Estimates are advisory: they are never written into a quotation.
type IPredictionUseCase interface {
	Predict(ctx context.Context, in estimation.PredictionInput) (estimation.Estimate, error)
	ModelInfo(ctx context.Context) (*estimation.Artifact, error)
	ReloadModel(ctx context.Context) (*estimation.Artifact, error)
	TrainModel(ctx context.Context) (*estimation.Artifact, error)
}

type PredictionUseCase struct {
	predictor *estimation.Predictor
	store     estimation.ArtifactStore
	trainer   *estimation.Trainer
	log       *logger.Logger

	training sync.Mutex
}

var _ IPredictionUseCase = (*PredictionUseCase)(nil)

// NewPredictionUseCase wires the predictor to its artifact store. trainer may
// be nil, in which case TrainModel reports ErrTrainingNotConfigured.
func NewPredictionUseCase(predictor *estimation.Predictor, store estimation.ArtifactStore, trainer *estimation.Trainer, log *logger.Logger) *PredictionUseCase {
	return &PredictionUseCase{
		predictor: predictor,
		store:     store,
		trainer:   trainer,
		log:       logger.OrNop(log).Component("prediction.usecase"),
	}
}

func (u *PredictionUseCase) Predict(ctx context.Context, in estimation.PredictionInput) (estimation.Estimate, error) {
	if !positive(in.Width) || !positive(in.Height) {
		return estimation.Estimate{}, fmt.Errorf("%w: width and height must be positive", ErrInvalidPredictionInput)
	}
	if in.Quantity < 1 {
		return estimation.Estimate{}, fmt.Errorf("%w: quantity must be at least 1", ErrInvalidPredictionInput)
	}
	if !in.ProductType.Valid() {
		return estimation.Estimate{}, fmt.Errorf("%w: unknown product_type %q", ErrInvalidPredictionInput, in.ProductType)
	}
	if !in.Material.Valid() {
		return estimation.Estimate{}, fmt.Errorf("%w: unknown material %q", ErrInvalidPredictionInput, in.Material)
	}
	return u.predictor.Predict(ctx, in)
}

func (u *PredictionUseCase) ModelInfo(context.Context) (*estimation.Artifact, error) {
	a := u.predictor.Current()
	if a == nil {
		return nil, estimation.ErrModelUnavailable
	}
	return a, nil
}

// ReloadModel swaps in the stored artifact. In-flight predictions finish on
// the artifact they started with.
func (u *PredictionUseCase) ReloadModel(ctx context.Context) (*estimation.Artifact, error) {
	if u.store == nil {
		return nil, estimation.ErrArtifactNotFound
	}
	a, err := u.predictor.Refresh(ctx, u.store)
	if err != nil {
		u.log.Warn("model reload failed", "error", err)
		return nil, err
	}
	return a, nil
}

// TrainModel retrains from the full history, persists the artifact and
// publishes it. Only one training runs at a time.
func (u *PredictionUseCase) TrainModel(ctx context.Context) (*estimation.Artifact, error) {
	if u.trainer == nil {
		return nil, ErrTrainingNotConfigured
	}
	if !u.training.TryLock() {
		return nil, ErrTrainingInProgress
	}
	defer u.training.Unlock()

	a, err := u.trainer.Train(ctx)
	if err != nil {
		return nil, err
	}
	if err := u.predictor.Use(a); err != nil {
		u.log.Error("publishing trained artifact failed", "artifact_id", a.ID, "error", err)
		return nil, err
	}
	return u.predictor.Current(), nil
}
