package repository

import (
	"context"
	"encoding/json"
	"time"

	"pata_amiga/internal/domain/entities"
	"pata_amiga/internal/usecase/interfaces"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/feature/dynamodb/attributevalue"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb/types"
)

const (
	defaultOrdersTableName = "orders"
	ordersIdempotencyIndex = "idempotency_key-index"
)

type orderItem struct {
	ID             string  `dynamodbav:"id"`
	SessionID      string  `dynamodbav:"session_id"`
	IdempotencyKey string  `dynamodbav:"idempotency_key"`
	ItemsJSON      string  `dynamodbav:"items_json"`
	AddressJSON    string  `dynamodbav:"address_json"`
	QuoteJSON      string  `dynamodbav:"quote_json"`
	Subtotal       float64 `dynamodbav:"subtotal"`
	Total          float64 `dynamodbav:"total"`
	Status         string  `dynamodbav:"status"`
	CreatedAt      string  `dynamodbav:"created_at"`
	UpdatedAt      string  `dynamodbav:"updated_at"`
}

// OrderDynamoRepository persists Order entities in DynamoDB.
//
// Table requirements:
//   - PK: id (string)
//   - GSI: idempotency_key-index (PK: idempotency_key)
//
// Line items, address and quote are stored as JSON blobs: they are immutable
// snapshots, never queried field-by-field.

type OrderDynamoRepository struct {
	ddb       *dynamodb.Client
	tableName string
}

var _ interfaces.IOrderRepository = (*OrderDynamoRepository)(nil)

func NewOrderDynamoRepository(ddb *dynamodb.Client) *OrderDynamoRepository {
	return &OrderDynamoRepository{
		ddb:       ddb,
		tableName: getenvDefault("ORDERS_TABLE", defaultOrdersTableName),
	}
}

func (r *OrderDynamoRepository) Create(ctx context.Context, o entities.Order) (entities.Order, error) {
	it, err := toOrderItem(o)
	if err != nil {
		return entities.Order{}, err
	}
	av, err := attributevalue.MarshalMap(it)
	if err != nil {
		return entities.Order{}, err
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
		return entities.Order{}, err
	}
	return o, nil
}

func (r *OrderDynamoRepository) GetByID(ctx context.Context, id string) (entities.Order, error) {
	out, err := r.ddb.GetItem(ctx, &dynamodb.GetItemInput{
		TableName: aws.String(r.tableName),
		Key: map[string]types.AttributeValue{
			"id": &types.AttributeValueMemberS{Value: id},
		},
		ConsistentRead: aws.Bool(true),
	})
	if err != nil {
		return entities.Order{}, err
	}
	if len(out.Item) == 0 {
		return entities.Order{}, nil
	}

	var it orderItem
	if err := attributevalue.UnmarshalMap(out.Item, &it); err != nil {
		return entities.Order{}, err
	}
	return fromOrderItem(it)
}

func (r *OrderDynamoRepository) GetByIdempotencyKey(ctx context.Context, key string) (entities.Order, error) {
	out, err := r.ddb.Query(ctx, &dynamodb.QueryInput{
		TableName:              aws.String(r.tableName),
		IndexName:              aws.String(ordersIdempotencyIndex),
		KeyConditionExpression: aws.String("idempotency_key = :key"),
		ExpressionAttributeValues: map[string]types.AttributeValue{
			":key": &types.AttributeValueMemberS{Value: key},
		},
		Limit: aws.Int32(1),
	})
	if err != nil {
		return entities.Order{}, err
	}
	if len(out.Items) == 0 {
		return entities.Order{}, nil
	}

	var it orderItem
	if err := attributevalue.UnmarshalMap(out.Items[0], &it); err != nil {
		return entities.Order{}, err
	}
	return fromOrderItem(it)
}

func (r *OrderDynamoRepository) UpdateStatus(ctx context.Context, id string, status entities.OrderStatus) (entities.Order, error) {
	now := time.Now().UTC().Format(time.RFC3339Nano)
	out, err := r.ddb.UpdateItem(ctx, &dynamodb.UpdateItemInput{
		TableName: aws.String(r.tableName),
		Key: map[string]types.AttributeValue{
			"id": &types.AttributeValueMemberS{Value: id},
		},
		UpdateExpression: aws.String("SET #status = :status, #updated_at = :updated_at"),
		ExpressionAttributeNames: map[string]string{
			"#status":     "status",
			"#updated_at": "updated_at",
		},
		ExpressionAttributeValues: map[string]types.AttributeValue{
			":status":     &types.AttributeValueMemberS{Value: string(status)},
			":updated_at": &types.AttributeValueMemberS{Value: now},
		},
		ConditionExpression: aws.String("attribute_exists(id)"),
		ReturnValues:        types.ReturnValueAllNew,
	})
	if err != nil {
		return entities.Order{}, err
	}

	var it orderItem
	if err := attributevalue.UnmarshalMap(out.Attributes, &it); err != nil {
		return entities.Order{}, err
	}
	return fromOrderItem(it)
}

func toOrderItem(o entities.Order) (orderItem, error) {
	items, err := json.Marshal(o.Items)
	if err != nil {
		return orderItem{}, err
	}
	address, err := json.Marshal(o.Address)
	if err != nil {
		return orderItem{}, err
	}
	quote, err := json.Marshal(o.ShippingQuote)
	if err != nil {
		return orderItem{}, err
	}
	return orderItem{
		ID:             o.ID,
		SessionID:      o.SessionID,
		IdempotencyKey: o.IdempotencyKey,
		ItemsJSON:      string(items),
		AddressJSON:    string(address),
		QuoteJSON:      string(quote),
		Subtotal:       o.Subtotal,
		Total:          o.Total,
		Status:         string(o.Status),
		CreatedAt:      o.CreatedAt.UTC().Format(time.RFC3339Nano),
		UpdatedAt:      o.UpdatedAt.UTC().Format(time.RFC3339Nano),
	}, nil
}

func fromOrderItem(it orderItem) (entities.Order, error) {
	var items []entities.CartLineItem
	if it.ItemsJSON != "" {
		if err := json.Unmarshal([]byte(it.ItemsJSON), &items); err != nil {
			return entities.Order{}, err
		}
	}
	var address entities.Address
	if it.AddressJSON != "" {
		if err := json.Unmarshal([]byte(it.AddressJSON), &address); err != nil {
			return entities.Order{}, err
		}
	}
	var quote entities.ShippingQuote
	if it.QuoteJSON != "" {
		if err := json.Unmarshal([]byte(it.QuoteJSON), &quote); err != nil {
			return entities.Order{}, err
		}
	}

	createdAt, _ := time.Parse(time.RFC3339Nano, it.CreatedAt)
	updatedAt, _ := time.Parse(time.RFC3339Nano, it.UpdatedAt)
	return entities.Order{
		ID:             it.ID,
		SessionID:      it.SessionID,
		IdempotencyKey: it.IdempotencyKey,
		Items:          items,
		Address:        address,
		ShippingQuote:  quote,
		Subtotal:       it.Subtotal,
		Total:          it.Total,
		Status:         entities.OrderStatus(it.Status),
		CreatedAt:      createdAt,
		UpdatedAt:      updatedAt,
	}, nil
}
