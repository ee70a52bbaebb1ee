package response

import (
	"reliant_crm/internal/domain/entities"
	"reliant_crm/internal/estimation"
	"time"
)

type PredictQuoteResponse struct {
	PredictedPrice entities.EstimatedPrice `json:"predicted_price"`
	PriceKind      string                  `json:"price_kind"`
	SchemaID       string                  `json:"schema_id"`
	Warnings       []string                `json:"warnings,omitempty"`
}

func FromEstimate(e estimation.Estimate) PredictQuoteResponse {
	res := PredictQuoteResponse{
		PredictedPrice: e.Price,
		PriceKind:      PriceKindEstimate,
		SchemaID:       e.SchemaID,
	}
	for _, u := range e.UnseenCategories {
		res.Warnings = append(res.Warnings, "category not seen in training data: "+u)
	}
	return res
}

type ModelMetricsResponse struct {
	R2           *float64 `json:"r2,omitempty"`
	TrainRows    int      `json:"train_rows"`
	TestRows     int      `json:"test_rows"`
	Seed         int64    `json:"seed"`
	TestFraction float64  `json:"test_fraction"`
}

type ModelInfoResponse struct {
	ID        string               `json:"id"`
	SchemaID  string               `json:"schema_id"`
	Algorithm string               `json:"algorithm"`
	Columns   []string             `json:"columns"`
	Metrics   ModelMetricsResponse `json:"metrics"`
	TrainedAt time.Time            `json:"trained_at"`
}

func FromArtifact(a *estimation.Artifact) ModelInfoResponse {
	return ModelInfoResponse{
		ID:        a.ID,
		SchemaID:  a.SchemaID,
		Algorithm: a.Algorithm,
		Columns:   a.Columns,
		Metrics: ModelMetricsResponse{
			R2:           a.Metrics.R2,
			TrainRows:    a.Metrics.TrainRows,
			TestRows:     a.Metrics.TestRows,
			Seed:         a.Metrics.Seed,
			TestFraction: a.Metrics.TestFraction,
		},
		TrainedAt: a.TrainedAt,
	}
}
