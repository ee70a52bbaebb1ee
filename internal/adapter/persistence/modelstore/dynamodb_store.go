package modelstore

import (
	"context"
	"encoding/json"
	"fmt"
	"os"
	"time"

	"reliant_crm/internal/estimation"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/feature/dynamodb/attributevalue"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb/types"
)

const defaultModelsTableName = "price_models"

// ItemAPI is the part of *dynamodb.Client the store needs.
type ItemAPI interface {
	PutItem(ctx context.Context, in *dynamodb.PutItemInput, optFns ...func(*dynamodb.Options)) (*dynamodb.PutItemOutput, error)
	GetItem(ctx context.Context, in *dynamodb.GetItemInput, optFns ...func(*dynamodb.Options)) (*dynamodb.GetItemOutput, error)
}

type artifactItem struct {
	ID        string `dynamodbav:"id"`
	SchemaID  string `dynamodbav:"schema_id"`
	TrainedAt string `dynamodbav:"trained_at"`
	Document  string `dynamodbav:"document"`
}

// DynamoStore keeps the artifact as one item keyed by artifact id.
//
// Table requirements:
//   - PK: id (string)
type DynamoStore struct {
	ddb        ItemAPI
	tableName  string
	artifactID string
}

var _ estimation.ArtifactStore = (*DynamoStore)(nil)

func NewDynamoStore(ddb ItemAPI, artifactID string) *DynamoStore {
	table := os.Getenv("MODEL_ARTIFACTS_TABLE")
	if table == "" {
		table = defaultModelsTableName
	}
	return &DynamoStore{ddb: ddb, tableName: table, artifactID: artifactID}
}

// Save overwrites the slot with a single PutItem.
func (s *DynamoStore) Save(ctx context.Context, a *estimation.Artifact) error {
	doc, err := json.Marshal(a)
	if err != nil {
		return fmt.Errorf("encode artifact: %w", err)
	}
	av, err := attributevalue.MarshalMap(artifactItem{
		ID:        s.artifactID,
		SchemaID:  a.SchemaID,
		TrainedAt: a.TrainedAt.UTC().Format(time.RFC3339Nano),
		Document:  string(doc),
	})
	if err != nil {
		return err
	}
	_, err = s.ddb.PutItem(ctx, &dynamodb.PutItemInput{
		TableName: aws.String(s.tableName),
		Item:      av,
	})
	return err
}

func (s *DynamoStore) Load(ctx context.Context) (*estimation.Artifact, error) {
	out, err := s.ddb.GetItem(ctx, &dynamodb.GetItemInput{
		TableName: aws.String(s.tableName),
		Key: map[string]types.AttributeValue{
			"id": &types.AttributeValueMemberS{Value: s.artifactID},
		},
		ConsistentRead: aws.Bool(true),
	})
	if err != nil {
		return nil, err
	}
	if len(out.Item) == 0 {
		return nil, estimation.ErrArtifactNotFound
	}
	var it artifactItem
	if err := attributevalue.UnmarshalMap(out.Item, &it); err != nil {
		return nil, err
	}
	var a estimation.Artifact
	if err := json.Unmarshal([]byte(it.Document), &a); err != nil {
		return nil, fmt.Errorf("%w: decode artifact %q: %v", estimation.ErrStaleArtifact, it.ID, err)
	}
	return &a, nil
}
