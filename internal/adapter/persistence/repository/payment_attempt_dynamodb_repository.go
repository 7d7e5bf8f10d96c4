package repository

import (
	"context"
	"time"

	"pata_amiga/internal/domain/entities"
	"pata_amiga/internal/usecase/interfaces"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/feature/dynamodb/attributevalue"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb/types"
)

const (
	defaultPaymentAttemptsTableName = "payment_attempts"
	paymentAttemptsOrderIDIndex     = "order_id-index"
)

type paymentAttemptItem struct {
	ID                 string `dynamodbav:"id"`
	OrderID            string `dynamodbav:"order_id"`
	Instrument         string `dynamodbav:"instrument"`
	Status             string `dynamodbav:"status"`
	StatusDetail       string `dynamodbav:"status_detail,omitempty"`
	QRCode             string `dynamodbav:"qr_code,omitempty"`
	QRCodeBase64       string `dynamodbav:"qr_code_base64,omitempty"`
	Date               string `dynamodbav:"date"`
	ProviderPayloadRaw string `dynamodbav:"provider_payload_raw,omitempty"`
}

// PaymentAttemptDynamoRepository persists PaymentAttempt entities in DynamoDB.
//
// Table requirements:
//   - PK: id (string)
//   - GSI: order_id-index (PK: order_id)
//
// ProviderPayloadRaw keeps the original gateway body (JSON) for audit.

type PaymentAttemptDynamoRepository struct {
	ddb       *dynamodb.Client
	tableName string
}

var _ interfaces.IPaymentAttemptRepository = (*PaymentAttemptDynamoRepository)(nil)

func NewPaymentAttemptDynamoRepository(ddb *dynamodb.Client) *PaymentAttemptDynamoRepository {
	return &PaymentAttemptDynamoRepository{
		ddb:       ddb,
		tableName: getenvDefault("PAYMENT_ATTEMPTS_TABLE", defaultPaymentAttemptsTableName),
	}
}

func (r *PaymentAttemptDynamoRepository) Create(ctx context.Context, a entities.PaymentAttempt) (entities.PaymentAttempt, error) {
	av, err := attributevalue.MarshalMap(toPaymentAttemptItem(a))
	if err != nil {
		return entities.PaymentAttempt{}, err
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
		return entities.PaymentAttempt{}, err
	}
	return a, nil
}

func (r *PaymentAttemptDynamoRepository) GetByID(ctx context.Context, id string) (entities.PaymentAttempt, error) {
	out, err := r.ddb.GetItem(ctx, &dynamodb.GetItemInput{
		TableName: aws.String(r.tableName),
		Key: map[string]types.AttributeValue{
			"id": &types.AttributeValueMemberS{Value: id},
		},
		ConsistentRead: aws.Bool(true),
	})
	if err != nil {
		return entities.PaymentAttempt{}, err
	}
	if len(out.Item) == 0 {
		return entities.PaymentAttempt{}, nil
	}

	var it paymentAttemptItem
	if err := attributevalue.UnmarshalMap(out.Item, &it); err != nil {
		return entities.PaymentAttempt{}, err
	}
	return fromPaymentAttemptItem(it), nil
}

func (r *PaymentAttemptDynamoRepository) ListByOrderID(ctx context.Context, orderID string) ([]entities.PaymentAttempt, error) {
	out, err := r.ddb.Query(ctx, &dynamodb.QueryInput{
		TableName:              aws.String(r.tableName),
		IndexName:              aws.String(paymentAttemptsOrderIDIndex),
		KeyConditionExpression: aws.String("order_id = :oid"),
		ExpressionAttributeValues: map[string]types.AttributeValue{
			":oid": &types.AttributeValueMemberS{Value: orderID},
		},
	})
	if err != nil {
		return nil, err
	}

	attempts := make([]entities.PaymentAttempt, 0, len(out.Items))
	for _, raw := range out.Items {
		var it paymentAttemptItem
		if err := attributevalue.UnmarshalMap(raw, &it); err != nil {
			return nil, err
		}
		attempts = append(attempts, fromPaymentAttemptItem(it))
	}
	return attempts, nil
}

func toPaymentAttemptItem(a entities.PaymentAttempt) paymentAttemptItem {
	return paymentAttemptItem{
		ID:                 a.ID,
		OrderID:            a.OrderID,
		Instrument:         string(a.Instrument),
		Status:             a.Status,
		StatusDetail:       a.StatusDetail,
		QRCode:             a.QRCode,
		QRCodeBase64:       a.QRCodeBase64,
		Date:               a.Date.UTC().Format(time.RFC3339Nano),
		ProviderPayloadRaw: string(a.ProviderPayloadRaw),
	}
}

func fromPaymentAttemptItem(it paymentAttemptItem) entities.PaymentAttempt {
	dt, _ := time.Parse(time.RFC3339Nano, it.Date)
	return entities.PaymentAttempt{
		ID:                 it.ID,
		OrderID:            it.OrderID,
		Instrument:         entities.Instrument(it.Instrument),
		Status:             it.Status,
		StatusDetail:       it.StatusDetail,
		QRCode:             it.QRCode,
		QRCodeBase64:       it.QRCodeBase64,
		Date:               dt,
		ProviderPayloadRaw: []byte(it.ProviderPayloadRaw),
	}
}
