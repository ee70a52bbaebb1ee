package repository

import (
	"context"
	"sort"

	"reliant_crm/internal/domain/entities"
	"reliant_crm/internal/usecase/interfaces"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/feature/dynamodb/attributevalue"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb/types"
)

const (
	defaultPaymentsTableName = "payments"
	paymentsQuotationIDIndex = "quotation_id-index"
)

type quotationPaymentItem struct {
	ID                 string                 `dynamodbav:"id"`
	QuotationID        string                 `dynamodbav:"quotation_id"`
	Date               string                 `dynamodbav:"date"`
	Status             string                 `dynamodbav:"status"`
	Amount             string                 `dynamodbav:"amount"`
	ProviderPayload    map[string]interface{} `dynamodbav:"provider_payload,omitempty"`
	ProviderPayloadRaw string                 `dynamodbav:"provider_payload_raw,omitempty"`
}

// QuotationPaymentDynamoRepository persists QuotationPayment entities in DynamoDB.
//
// Table requirements:
//   - PK: id (string)
//   - GSI: quotation_id-index (PK: quotation_id)
type QuotationPaymentDynamoRepository struct {
	ddb       DynamoAPI
	tableName string
}

var _ interfaces.IQuotationPaymentRepository = (*QuotationPaymentDynamoRepository)(nil)

func NewQuotationPaymentDynamoRepository(ddb DynamoAPI) *QuotationPaymentDynamoRepository {
	return &QuotationPaymentDynamoRepository{
		ddb:       ddb,
		tableName: getenvDefault("PAYMENTS_TABLE", defaultPaymentsTableName),
	}
}

func (r *QuotationPaymentDynamoRepository) Create(ctx context.Context, p entities.QuotationPayment) (entities.QuotationPayment, error) {
	av, err := attributevalue.MarshalMap(toQuotationPaymentItem(p))
	if err != nil {
		return entities.QuotationPayment{}, err
	}
	_, err = r.ddb.PutItem(ctx, &dynamodb.PutItemInput{
		TableName:           aws.String(r.tableName),
		Item:                av,
		ConditionExpression: aws.String("attribute_not_exists(#id)"),
		ExpressionAttributeNames: map[string]string{
			"#id": "id",
		},
	})
	if err != nil {
		return entities.QuotationPayment{}, err
	}
	return p, nil
}

func (r *QuotationPaymentDynamoRepository) ListByQuotationID(ctx context.Context, quotationID string) ([]entities.QuotationPayment, error) {
	raw, err := queryAll(ctx, r.ddb, &dynamodb.QueryInput{
		TableName:              aws.String(r.tableName),
		IndexName:              aws.String(paymentsQuotationIDIndex),
		KeyConditionExpression: aws.String("quotation_id = :qid"),
		ExpressionAttributeValues: map[string]types.AttributeValue{
			":qid": &types.AttributeValueMemberS{Value: quotationID},
		},
	})
	if err != nil {
		return nil, err
	}

	items := make([]entities.QuotationPayment, 0, len(raw))
	for _, m := range raw {
		var it quotationPaymentItem
		if err := attributevalue.UnmarshalMap(m, &it); err != nil {
			return nil, err
		}
		p, err := fromQuotationPaymentItem(it)
		if err != nil {
			return nil, err
		}
		items = append(items, p)
	}
	sort.Slice(items, func(i, j int) bool { return items[i].Date.Before(items[j].Date) })
	return items, nil
}

func toQuotationPaymentItem(p entities.QuotationPayment) quotationPaymentItem {
	return quotationPaymentItem{
		ID:                 p.ID,
		QuotationID:        p.QuotationID,
		Date:               formatTime(p.Date),
		Status:             string(p.Status),
		Amount:             p.Amount.String(),
		ProviderPayload:    p.ProviderPayload,
		ProviderPayloadRaw: string(p.ProviderPayloadRaw),
	}
}

func fromQuotationPaymentItem(it quotationPaymentItem) (entities.QuotationPayment, error) {
	amount, err := entities.ParseQuotedPrice(it.Amount)
	if err != nil {
		return entities.QuotationPayment{}, err
	}
	return entities.QuotationPayment{
		ID:                 it.ID,
		QuotationID:        it.QuotationID,
		Date:               parseTime(it.Date),
		Status:             entities.PaymentStatus(it.Status),
		Amount:             amount,
		ProviderPayload:    it.ProviderPayload,
		ProviderPayloadRaw: []byte(it.ProviderPayloadRaw),
	}, nil
}
