package modelstore

import (
	"context"
	"errors"
	"os"
	"path/filepath"
	"testing"
	"time"

	"reliant_crm/internal/estimation"

	"github.com/aws/aws-sdk-go-v2/service/dynamodb"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb/types"
)

func sampleArtifact() *estimation.Artifact {
	columns := []string{"width", "height", "quantity", "product_type=window"}
	r2 := 0.91
	return &estimation.Artifact{
		ID:        "quotation-price-model",
		SchemaID:  estimation.SchemaID(columns),
		Algorithm: estimation.AlgorithmLinear,
		Columns:   columns,
		Model:     estimation.LinearModel{Intercept: 12.5, Coefficients: []float64{100, 80, 30, 15}},
		Metrics:   estimation.Metrics{R2: &r2, TrainRows: 8, TestRows: 2, Seed: 42, TestFraction: 0.2},
		TrainedAt: time.Date(2024, 6, 1, 8, 0, 0, 0, time.UTC),
	}
}

func TestFileStore(t *testing.T) {
	t.Run("empty slot reports not found", func(t *testing.T) {
		s := NewFileStore(filepath.Join(t.TempDir(), "model.json"))
		_, err := s.Load(context.Background())
		if !errors.Is(err, estimation.ErrArtifactNotFound) {
			t.Fatalf("expected ErrArtifactNotFound, got %v", err)
		}
	})

	t.Run("save then load returns a valid artifact", func(t *testing.T) {
		path := filepath.Join(t.TempDir(), "nested", "model.json")
		s := NewFileStore(path)
		want := sampleArtifact()
		if err := s.Save(context.Background(), want); err != nil {
			t.Fatalf("save: %v", err)
		}
		got, err := s.Load(context.Background())
		if err != nil {
			t.Fatalf("load: %v", err)
		}
		if err := got.Validate(); err != nil {
			t.Fatalf("loaded artifact invalid: %v", err)
		}
		if got.SchemaID != want.SchemaID || *got.Metrics.R2 != 0.91 || !got.TrainedAt.Equal(want.TrainedAt) {
			t.Fatalf("unexpected artifact: %+v", got)
		}
		entries, _ := os.ReadDir(filepath.Dir(path))
		if len(entries) != 1 {
			t.Fatalf("expected only the artifact file, found %d entries", len(entries))
		}
	})

	t.Run("corrupt document is stale", func(t *testing.T) {
		path := filepath.Join(t.TempDir(), "model.json")
		if err := os.WriteFile(path, []byte("{not json"), 0o644); err != nil {
			t.Fatalf("write: %v", err)
		}
		_, err := NewFileStore(path).Load(context.Background())
		if !errors.Is(err, estimation.ErrStaleArtifact) {
			t.Fatalf("expected ErrStaleArtifact, got %v", err)
		}
	})
}

type fakeItems struct {
	items map[string]map[string]types.AttributeValue
}

func (f *fakeItems) PutItem(_ context.Context, in *dynamodb.PutItemInput, _ ...func(*dynamodb.Options)) (*dynamodb.PutItemOutput, error) {
	id := in.Item["id"].(*types.AttributeValueMemberS).Value
	f.items[id] = in.Item
	return &dynamodb.PutItemOutput{}, nil
}

func (f *fakeItems) GetItem(_ context.Context, in *dynamodb.GetItemInput, _ ...func(*dynamodb.Options)) (*dynamodb.GetItemOutput, error) {
	id := in.Key["id"].(*types.AttributeValueMemberS).Value
	return &dynamodb.GetItemOutput{Item: f.items[id]}, nil
}

func TestDynamoStore(t *testing.T) {
	ddb := &fakeItems{items: map[string]map[string]types.AttributeValue{}}
	s := NewDynamoStore(ddb, "quotation-price-model")

	if _, err := s.Load(context.Background()); !errors.Is(err, estimation.ErrArtifactNotFound) {
		t.Fatalf("expected ErrArtifactNotFound, got %v", err)
	}

	want := sampleArtifact()
	if err := s.Save(context.Background(), want); err != nil {
		t.Fatalf("save: %v", err)
	}
	got, err := s.Load(context.Background())
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	if got.SchemaID != want.SchemaID || len(got.Model.Coefficients) != 4 {
		t.Fatalf("unexpected artifact: %+v", got)
	}
}
