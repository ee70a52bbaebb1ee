// Package estimation learns quotation prices from historical lines and serves
// point estimates for hypothetical items.
//
// Estimates are statistical and independent from the pricing engine: they
// never read catalog base prices and may diverge from the quoted price of the
// same item.
package estimation

import "errors"

var (
	// ErrModelUnavailable is returned by every prediction while no artifact is loaded.
	ErrModelUnavailable = errors.New("price model unavailable")
	// ErrInference wraps unexpected failures while evaluating the model.
	ErrInference = errors.New("price model inference failed")
	// ErrData is returned when the training corpus is empty or unusable.
	ErrData = errors.New("insufficient training data")
	// ErrConnectivity is returned when historical lines cannot be read.
	ErrConnectivity = errors.New("training data source unavailable")
	// ErrStaleArtifact flags an artifact whose schema id does not match its columns.
	ErrStaleArtifact = errors.New("artifact feature schema mismatch")
	// ErrArtifactNotFound is returned by stores whose slot is empty.
	ErrArtifactNotFound = errors.New("artifact not found")
)
