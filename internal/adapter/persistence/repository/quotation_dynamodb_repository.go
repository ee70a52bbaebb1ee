package repository

import (
	"context"
	"errors"
	"sort"

	"reliant_crm/internal/domain/entities"
	"reliant_crm/internal/usecase/interfaces"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/feature/dynamodb/attributevalue"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb/types"
)

const (
	defaultQuotationsTableName  = "quotations"
	quotationsCustomerIDIndex   = "customer_id-index"
	quotationStatusUpdateClause = "SET #status = :next, #updated_at = :updated_at"
)

type quotationLineItem struct {
	LineNo        int     `dynamodbav:"line_no"`
	CatalogItemID string  `dynamodbav:"catalog_item_id"`
	Width         float64 `dynamodbav:"width"`
	Height        float64 `dynamodbav:"height"`
	Quantity      int     `dynamodbav:"quantity"`
	Price         string  `dynamodbav:"price"`
}

type quotationItem struct {
	ID         string              `dynamodbav:"id"`
	CustomerID string              `dynamodbav:"customer_id"`
	UserID     string              `dynamodbav:"user_id,omitempty"`
	TotalPrice string              `dynamodbav:"total_price"`
	Status     string              `dynamodbav:"status"`
	Lines      []quotationLineItem `dynamodbav:"lines"`
	CreatedAt  string              `dynamodbav:"created_at"`
	UpdatedAt  string              `dynamodbav:"updated_at"`
}

// QuotationDynamoRepository persists Quotation entities in DynamoDB.
//
// Table requirements:
//   - PK: id (string)
//   - GSI: customer_id-index (PK: customer_id)
//
// Lines are embedded in the quotation item.
type QuotationDynamoRepository struct {
	ddb          DynamoAPI
	tableName    string
	catalogTable string
}

var _ interfaces.IQuotationRepository = (*QuotationDynamoRepository)(nil)

func NewQuotationDynamoRepository(ddb DynamoAPI) *QuotationDynamoRepository {
	return &QuotationDynamoRepository{
		ddb:          ddb,
		tableName:    getenvDefault("QUOTATIONS_TABLE", defaultQuotationsTableName),
		catalogTable: getenvDefault("CATALOG_TABLE", defaultCatalogTableName),
	}
}

func (r *QuotationDynamoRepository) Create(ctx context.Context, q entities.Quotation) (entities.Quotation, error) {
	av, err := attributevalue.MarshalMap(toQuotationItem(q))
	if err != nil {
		return entities.Quotation{}, err
	}
	_, err = r.ddb.PutItem(ctx, &dynamodb.PutItemInput{
		TableName:                aws.String(r.tableName),
		Item:                     av,
		ConditionExpression:      aws.String("attribute_not_exists(#id)"),
		ExpressionAttributeNames: map[string]string{"#id": "id"},
	})
	if err != nil {
		return entities.Quotation{}, err
	}
	return q, nil
}

func (r *QuotationDynamoRepository) GetByID(ctx context.Context, id string) (entities.Quotation, error) {
	out, err := r.ddb.GetItem(ctx, &dynamodb.GetItemInput{
		TableName:      aws.String(r.tableName),
		Key:            idKey(id),
		ConsistentRead: aws.Bool(true),
	})
	if err != nil {
		return entities.Quotation{}, err
	}
	if len(out.Item) == 0 {
		return entities.Quotation{}, nil
	}
	return unmarshalQuotation(out.Item)
}

func (r *QuotationDynamoRepository) ListByCustomerID(ctx context.Context, customerID string) ([]entities.Quotation, error) {
	raw, err := queryAll(ctx, r.ddb, &dynamodb.QueryInput{
		TableName:              aws.String(r.tableName),
		IndexName:              aws.String(quotationsCustomerIDIndex),
		KeyConditionExpression: aws.String("customer_id = :cid"),
		ExpressionAttributeValues: map[string]types.AttributeValue{
			":cid": &types.AttributeValueMemberS{Value: customerID},
		},
	})
	if err != nil {
		return nil, err
	}
	items := make([]entities.Quotation, 0, len(raw))
	for _, m := range raw {
		q, err := unmarshalQuotation(m)
		if err != nil {
			return nil, err
		}
		items = append(items, q)
	}
	sort.Slice(items, func(i, j int) bool { return items[i].CreatedAt.Before(items[j].CreatedAt) })
	return items, nil
}

func (r *QuotationDynamoRepository) UpdateStatus(ctx context.Context, id string, from, next entities.QuotationStatus) (entities.Quotation, error) {
	names := mergeNames(
		map[string]string{"#id": "id", "#status": "status"},
		map[string]string{"#updated_at": "updated_at"},
	)
	out, err := r.ddb.UpdateItem(ctx, &dynamodb.UpdateItemInput{
		TableName:                aws.String(r.tableName),
		Key:                      idKey(id),
		ConditionExpression:      aws.String("attribute_exists(#id) AND #status = :from"),
		UpdateExpression:         aws.String(quotationStatusUpdateClause),
		ExpressionAttributeNames: names,
		ExpressionAttributeValues: map[string]types.AttributeValue{
			":from":       &types.AttributeValueMemberS{Value: string(from)},
			":next":       &types.AttributeValueMemberS{Value: string(next)},
			":updated_at": &types.AttributeValueMemberS{Value: formatTime(nowUTC())},
		},
		ReturnValues: types.ReturnValueAllNew,
	})
	if err != nil {
		var cfe *types.ConditionalCheckFailedException
		if errors.As(err, &cfe) {
			return entities.Quotation{}, nil
		}
		return entities.Quotation{}, err
	}
	return unmarshalQuotation(out.Attributes)
}

// Delete removes the quotation with its embedded lines and reports whether it existed.
func (r *QuotationDynamoRepository) Delete(ctx context.Context, id string) (bool, error) {
	out, err := r.ddb.DeleteItem(ctx, &dynamodb.DeleteItemInput{
		TableName:    aws.String(r.tableName),
		Key:          idKey(id),
		ReturnValues: types.ReturnValueAllOld,
	})
	if err != nil {
		return false, err
	}
	return len(out.Attributes) > 0, nil
}

// ListTrainingRows scans every quotation and joins its lines with the
// catalog table.
func (r *QuotationDynamoRepository) ListTrainingRows(ctx context.Context) ([]entities.TrainingRow, error) {
	rawCatalog, err := scanAll(ctx, r.ddb, &dynamodb.ScanInput{TableName: aws.String(r.catalogTable)})
	if err != nil {
		return nil, err
	}
	catalog := make(map[string]entities.CatalogItem, len(rawCatalog))
	for _, m := range rawCatalog {
		var it catalogItem
		if err := attributevalue.UnmarshalMap(m, &it); err != nil {
			return nil, err
		}
		c, err := fromCatalogItem(it)
		if err != nil {
			return nil, err
		}
		catalog[c.ID] = c
	}

	rawQuotations, err := scanAll(ctx, r.ddb, &dynamodb.ScanInput{TableName: aws.String(r.tableName)})
	if err != nil {
		return nil, err
	}
	quotations := make([]entities.Quotation, 0, len(rawQuotations))
	for _, m := range rawQuotations {
		q, err := unmarshalQuotation(m)
		if err != nil {
			return nil, err
		}
		quotations = append(quotations, q)
	}
	return joinTrainingRows(quotations, catalog), nil
}

// joinTrainingRows flattens quotation lines into training rows ordered by
// quotation id then line position. Lines whose catalog item is gone are skipped.
func joinTrainingRows(quotations []entities.Quotation, catalog map[string]entities.CatalogItem) []entities.TrainingRow {
	var rows []entities.TrainingRow
	for _, q := range quotations {
		for i, l := range q.Lines {
			c, ok := catalog[l.CatalogItemID]
			if !ok {
				continue
			}
			rows = append(rows, entities.TrainingRow{
				QuotationID: q.ID,
				LineNo:      i,
				Width:       l.Width,
				Height:      l.Height,
				Quantity:    l.Quantity,
				ProductType: c.ProductType,
				Material:    c.Material,
				ActualPrice: l.Price.Float64(),
			})
		}
	}
	sort.SliceStable(rows, func(i, j int) bool {
		if rows[i].QuotationID != rows[j].QuotationID {
			return rows[i].QuotationID < rows[j].QuotationID
		}
		return rows[i].LineNo < rows[j].LineNo
	})
	return rows
}

func unmarshalQuotation(m map[string]types.AttributeValue) (entities.Quotation, error) {
	var it quotationItem
	if err := attributevalue.UnmarshalMap(m, &it); err != nil {
		return entities.Quotation{}, err
	}
	return fromQuotationItem(it)
}

func toQuotationItem(q entities.Quotation) quotationItem {
	lines := make([]quotationLineItem, len(q.Lines))
	for i, l := range q.Lines {
		lines[i] = quotationLineItem{
			LineNo:        i,
			CatalogItemID: l.CatalogItemID,
			Width:         l.Width,
			Height:        l.Height,
			Quantity:      l.Quantity,
			Price:         l.Price.String(),
		}
	}
	return quotationItem{
		ID:         q.ID,
		CustomerID: q.CustomerID,
		UserID:     q.UserID,
		TotalPrice: q.TotalPrice.String(),
		Status:     string(q.Status),
		Lines:      lines,
		CreatedAt:  formatTime(q.CreatedAt),
		UpdatedAt:  formatTime(q.UpdatedAt),
	}
}

func fromQuotationItem(it quotationItem) (entities.Quotation, error) {
	total, err := entities.ParseQuotedPrice(it.TotalPrice)
	if err != nil {
		return entities.Quotation{}, err
	}
	sort.SliceStable(it.Lines, func(i, j int) bool { return it.Lines[i].LineNo < it.Lines[j].LineNo })
	lines := make([]entities.PricedLine, len(it.Lines))
	for i, l := range it.Lines {
		price, err := entities.ParseQuotedPrice(l.Price)
		if err != nil {
			return entities.Quotation{}, err
		}
		lines[i] = entities.PricedLine{
			CatalogItemID: l.CatalogItemID,
			Width:         l.Width,
			Height:        l.Height,
			Quantity:      l.Quantity,
			Price:         price,
		}
	}
	return entities.Quotation{
		ID:         it.ID,
		CustomerID: it.CustomerID,
		UserID:     it.UserID,
		TotalPrice: total,
		Status:     entities.QuotationStatus(it.Status),
		Lines:      lines,
		CreatedAt:  parseTime(it.CreatedAt),
		UpdatedAt:  parseTime(it.UpdatedAt),
	}, nil
}
