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

const defaultCartsTableName = "carts"

type cartLineItemAttr struct {
	ProductID     string  `dynamodbav:"product_id"`
	Name          string  `dynamodbav:"name,omitempty"`
	UnitPrice     float64 `dynamodbav:"unit_price"`
	Quantity      int     `dynamodbav:"quantity"`
	PurchaseMode  string  `dynamodbav:"purchase_mode"`
	FrequencyDays int     `dynamodbav:"frequency_days,omitempty"`
}

type cartItem struct {
	SessionID string             `dynamodbav:"session_id"`
	Items     []cartLineItemAttr `dynamodbav:"items"`
	UpdatedAt string             `dynamodbav:"updated_at"`
}

// CartDynamoRepository persists the per-session cart blob in DynamoDB.
//
// Table requirements:
//   - PK: session_id (string)
//
// A missing item is a valid empty cart, not an error: sessions start empty.

type CartDynamoRepository struct {
	ddb       *dynamodb.Client
	tableName string
}

var _ interfaces.ICartRepository = (*CartDynamoRepository)(nil)

func NewCartDynamoRepository(ddb *dynamodb.Client) *CartDynamoRepository {
	return &CartDynamoRepository{
		ddb:       ddb,
		tableName: getenvDefault("CARTS_TABLE", defaultCartsTableName),
	}
}

func (r *CartDynamoRepository) Get(ctx context.Context, sessionID string) (entities.Cart, error) {
	out, err := r.ddb.GetItem(ctx, &dynamodb.GetItemInput{
		TableName: aws.String(r.tableName),
		Key: map[string]types.AttributeValue{
			"session_id": &types.AttributeValueMemberS{Value: sessionID},
		},
		ConsistentRead: aws.Bool(true),
	})
	if err != nil {
		return entities.Cart{}, err
	}
	if len(out.Item) == 0 {
		return entities.Cart{SessionID: sessionID}, nil
	}

	var it cartItem
	if err := attributevalue.UnmarshalMap(out.Item, &it); err != nil {
		return entities.Cart{}, err
	}
	return fromCartItem(it), nil
}

func (r *CartDynamoRepository) Save(ctx context.Context, cart entities.Cart) error {
	av, err := attributevalue.MarshalMap(toCartItem(cart))
	if err != nil {
		return err
	}

	_, err = r.ddb.PutItem(ctx, &dynamodb.PutItemInput{
		TableName: aws.String(r.tableName),
		Item:      av,
	})
	return err
}

func (r *CartDynamoRepository) Delete(ctx context.Context, sessionID string) error {
	_, err := r.ddb.DeleteItem(ctx, &dynamodb.DeleteItemInput{
		TableName: aws.String(r.tableName),
		Key: map[string]types.AttributeValue{
			"session_id": &types.AttributeValueMemberS{Value: sessionID},
		},
	})
	return err
}

func toCartItem(cart entities.Cart) cartItem {
	items := make([]cartLineItemAttr, 0, len(cart.Items))
	for _, it := range cart.Items {
		items = append(items, cartLineItemAttr{
			ProductID:     it.ProductID,
			Name:          it.Name,
			UnitPrice:     it.UnitPrice,
			Quantity:      it.Quantity,
			PurchaseMode:  string(it.PurchaseMode),
			FrequencyDays: it.FrequencyDays,
		})
	}
	return cartItem{
		SessionID: cart.SessionID,
		Items:     items,
		UpdatedAt: time.Now().UTC().Format(time.RFC3339Nano),
	}
}

func fromCartItem(it cartItem) entities.Cart {
	items := make([]entities.CartLineItem, 0, len(it.Items))
	for _, li := range it.Items {
		items = append(items, entities.CartLineItem{
			ProductID:     li.ProductID,
			Name:          li.Name,
			UnitPrice:     li.UnitPrice,
			Quantity:      li.Quantity,
			PurchaseMode:  entities.PurchaseMode(li.PurchaseMode),
			FrequencyDays: li.FrequencyDays,
		})
	}
	return entities.Cart{SessionID: it.SessionID, Items: items}
}
