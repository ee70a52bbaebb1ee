package repository

import (
	"context"
	"sort"

	"reliant_crm/internal/domain/entities"
	"reliant_crm/internal/usecase/interfaces"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/feature/dynamodb/attributevalue"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb"
	"github.com/shopspring/decimal"
)

const defaultCatalogTableName = "catalog_items"

type catalogItem struct {
	ID          string `dynamodbav:"id"`
	Name        string `dynamodbav:"name"`
	ProductType string `dynamodbav:"product_type"`
	Material    string `dynamodbav:"material"`
	BasePrice   string `dynamodbav:"base_price"`
	CreatedAt   string `dynamodbav:"created_at"`
}

// CatalogDynamoRepository persists CatalogItem entities in DynamoDB.
//
// Table requirements:
//   - PK: id (string)
//
// base_price is stored as a decimal string so it round-trips exactly.
type CatalogDynamoRepository struct {
	ddb       DynamoAPI
	tableName string
}

var _ interfaces.ICatalogItemRepository = (*CatalogDynamoRepository)(nil)

func NewCatalogDynamoRepository(ddb DynamoAPI) *CatalogDynamoRepository {
	return &CatalogDynamoRepository{
		ddb:       ddb,
		tableName: getenvDefault("CATALOG_TABLE", defaultCatalogTableName),
	}
}

func (r *CatalogDynamoRepository) Create(ctx context.Context, item entities.CatalogItem) (entities.CatalogItem, error) {
	av, err := attributevalue.MarshalMap(toCatalogItem(item))
	if err != nil {
		return entities.CatalogItem{}, err
	}
	_, err = r.ddb.PutItem(ctx, &dynamodb.PutItemInput{
		TableName:                aws.String(r.tableName),
		Item:                     av,
		ConditionExpression:      aws.String("attribute_not_exists(#id)"),
		ExpressionAttributeNames: map[string]string{"#id": "id"},
	})
	if err != nil {
		return entities.CatalogItem{}, err
	}
	return item, nil
}

func (r *CatalogDynamoRepository) GetByID(ctx context.Context, id string) (entities.CatalogItem, error) {
	out, err := r.ddb.GetItem(ctx, &dynamodb.GetItemInput{
		TableName:      aws.String(r.tableName),
		Key:            idKey(id),
		ConsistentRead: aws.Bool(true),
	})
	if err != nil {
		return entities.CatalogItem{}, err
	}
	if len(out.Item) == 0 {
		return entities.CatalogItem{}, nil
	}
	var it catalogItem
	if err := attributevalue.UnmarshalMap(out.Item, &it); err != nil {
		return entities.CatalogItem{}, err
	}
	return fromCatalogItem(it)
}

func (r *CatalogDynamoRepository) List(ctx context.Context) ([]entities.CatalogItem, error) {
	raw, err := scanAll(ctx, r.ddb, &dynamodb.ScanInput{TableName: aws.String(r.tableName)})
	if err != nil {
		return nil, err
	}
	items := make([]entities.CatalogItem, 0, len(raw))
	for _, m := range raw {
		var it catalogItem
		if err := attributevalue.UnmarshalMap(m, &it); err != nil {
			return nil, err
		}
		item, err := fromCatalogItem(it)
		if err != nil {
			return nil, err
		}
		items = append(items, item)
	}
	sort.Slice(items, func(i, j int) bool { return items[i].Name < items[j].Name })
	return items, nil
}

func toCatalogItem(c entities.CatalogItem) catalogItem {
	return catalogItem{
		ID:          c.ID,
		Name:        c.Name,
		ProductType: string(c.ProductType),
		Material:    string(c.Material),
		BasePrice:   c.BasePrice.String(),
		CreatedAt:   formatTime(c.CreatedAt),
	}
}

func fromCatalogItem(it catalogItem) (entities.CatalogItem, error) {
	price, err := decimal.NewFromString(it.BasePrice)
	if err != nil {
		return entities.CatalogItem{}, err
	}
	return entities.CatalogItem{
		ID:          it.ID,
		Name:        it.Name,
		ProductType: entities.ProductType(it.ProductType),
		Material:    entities.Material(it.Material),
		BasePrice:   price,
		CreatedAt:   parseTime(it.CreatedAt),
	}, nil
}
