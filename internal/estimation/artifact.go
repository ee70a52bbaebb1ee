package estimation

import (
	"context"
	"fmt"
	"sync/atomic"
	"time"
)

// Artifact is a trained price model together with the exact feature columns
// it was fitted on. Once published through an ArtifactHandle it is never
// mutated.
type Artifact struct {
	ID        string      `json:"id"`
	SchemaID  string      `json:"schema_id"`
	Algorithm string      `json:"algorithm"`
	Columns   []string    `json:"columns"`
	Model     LinearModel `json:"model"`
	Metrics   Metrics     `json:"metrics"`
	TrainedAt time.Time   `json:"trained_at"`
}

// Metrics are training diagnostics. R2 is nil when it could not be computed.
type Metrics struct {
	R2           *float64 `json:"r2,omitempty"`
	TrainRows    int      `json:"train_rows"`
	TestRows     int      `json:"test_rows"`
	Seed         int64    `json:"seed"`
	TestFraction float64  `json:"test_fraction"`
}

// Validate checks that the model and the column list belong together.
func (a *Artifact) Validate() error {
	if a == nil {
		return ErrModelUnavailable
	}
	if len(a.Columns) == 0 {
		return fmt.Errorf("%w: artifact %q has no columns", ErrStaleArtifact, a.ID)
	}
	if got := SchemaID(a.Columns); got != a.SchemaID {
		return fmt.Errorf("%w: artifact %q stamped %q, columns hash to %q", ErrStaleArtifact, a.ID, a.SchemaID, got)
	}
	if len(a.Model.Coefficients) != len(a.Columns) {
		return fmt.Errorf("%w: artifact %q has %d coefficients for %d columns", ErrStaleArtifact, a.ID, len(a.Model.Coefficients), len(a.Columns))
	}
	return nil
}

func (a *Artifact) clone() *Artifact {
	c := *a
	c.Columns = append([]string(nil), a.Columns...)
	c.Model.Coefficients = append([]float64(nil), a.Model.Coefficients...)
	if a.Metrics.R2 != nil {
		r2 := *a.Metrics.R2
		c.Metrics.R2 = &r2
	}
	return &c
}

// ArtifactStore is the single named slot holding the latest artifact.
type ArtifactStore interface {
	// Save replaces the stored artifact. A failed Save leaves the previous
	// artifact intact.
	Save(ctx context.Context, a *Artifact) error
	// Load returns the stored artifact or ErrArtifactNotFound.
	Load(ctx context.Context) (*Artifact, error)
}

// ArtifactHandle owns the artifact used for predictions. Readers get a
// consistent artifact; Replace swaps it with a single atomic pointer store.
type ArtifactHandle struct {
	current atomic.Pointer[Artifact]
}

func NewArtifactHandle() *ArtifactHandle { return &ArtifactHandle{} }

// Load returns the current artifact, or nil when none has been published.
func (h *ArtifactHandle) Load() *Artifact {
	return h.current.Load()
}

// Replace validates a and publishes a private copy of it.
func (h *ArtifactHandle) Replace(a *Artifact) error {
	if err := a.Validate(); err != nil {
		return err
	}
	h.current.Store(a.clone())
	return nil
}
