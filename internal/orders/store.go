package orders

import (
	"context"
	"errors"
	"fmt"
	"sort"
	"time"

	"github.com/aws/aws-sdk-go-v2/feature/dynamodb/attributevalue"
	dyn "github.com/aws/aws-sdk-go-v2/service/dynamodb"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb/types"
	"github.com/aws/smithy-go"
	"github.com/google/uuid"

	"github.com/quickchow/go-food-orders/internal/aws"
	"github.com/quickchow/go-food-orders/internal/validation"
)

// DefaultExtraFee is the flat service fee applied at persistence time when a
// submission does not carry one.
const DefaultExtraFee = 100.0

var (
	// ErrNotFound indicates no order exists under the requested id.
	ErrNotFound = errors.New("order not found")
	// ErrNoRecognizedFields indicates an update request carried nothing the
	// store knows how to apply; the store is never touched in that case.
	ErrNoRecognizedFields = errors.New("no recognized fields to update")
)

// Store encapsulates operations on the orders table.
type Store struct {
	client    aws.DynamoDBAPI
	tableName string
	nowFunc   func() time.Time
	idFunc    func() string
}

// NewStore creates a new orders Store.
func NewStore(client aws.DynamoDBAPI, tableName string) *Store {
	return &Store{
		client:    client,
		tableName: tableName,
		nowFunc:   time.Now,
		idFunc:    uuid.NewString,
	}
}

// Create persists a normalized payload. It assigns the id and both
// timestamps, applies the extra-fee default, and returns the stored record.
func (s *Store) Create(ctx context.Context, payload *Order) (*Order, error) {
	now := s.nowFunc().UTC()
	stored := *payload
	stored.OrderID = s.idFunc()
	stored.CreatedAt = now
	stored.UpdatedAt = now
	if stored.ExtraFee == nil {
		fee := DefaultExtraFee
		stored.ExtraFee = &fee
	}

	item, err := attributevalue.MarshalMap(stored)
	if err != nil {
		return nil, fmt.Errorf("marshal order: %w", err)
	}

	_, err = s.client.PutItem(ctx, &dyn.PutItemInput{
		TableName: &s.tableName,
		Item:      item,
	})
	if err != nil {
		return nil, fmt.Errorf("put order: %w", err)
	}

	return &stored, nil
}

// ListAll returns every order, newest first. The admin dashboard renders the
// whole set, so there is no pagination at the API level; the scan still
// follows LastEvaluatedKey so large tables come back complete.
func (s *Store) ListAll(ctx context.Context) ([]*Order, error) {
	var all []*Order
	var startKey map[string]types.AttributeValue

	for {
		out, err := s.client.Scan(ctx, &dyn.ScanInput{
			TableName:         &s.tableName,
			ExclusiveStartKey: startKey,
		})
		if err != nil {
			return nil, fmt.Errorf("scan orders: %w", err)
		}

		var page []*Order
		if err := attributevalue.UnmarshalListOfMaps(out.Items, &page); err != nil {
			return nil, fmt.Errorf("unmarshal orders: %w", err)
		}
		all = append(all, page...)

		if len(out.LastEvaluatedKey) == 0 {
			break
		}
		startKey = out.LastEvaluatedKey
	}

	sort.SliceStable(all, func(i, j int) bool {
		return all[i].CreatedAt.After(all[j].CreatedAt)
	})

	return all, nil
}

// Get fetches an order by id. Returns (nil, nil) if not found.
func (s *Store) Get(ctx context.Context, orderID string) (*Order, error) {
	out, err := s.client.GetItem(ctx, &dyn.GetItemInput{
		TableName: &s.tableName,
		Key: map[string]types.AttributeValue{
			"order_id": &types.AttributeValueMemberS{Value: orderID},
		},
	})
	if err != nil {
		return nil, fmt.Errorf("get order: %w", err)
	}
	if len(out.Item) == 0 {
		return nil, nil
	}

	var o Order
	if err := attributevalue.UnmarshalMap(out.Item, &o); err != nil {
		return nil, fmt.Errorf("unmarshal order: %w", err)
	}
	return &o, nil
}

// UpdatePaymentConfirmed applies the one post-creation mutation an order
// supports. The update request must carry paymentConfirmed, otherwise
// ErrNoRecognizedFields is returned before the store is touched. The write is
// a single conditional UpdateItem, so concurrent updates to the same id are
// resolved by the store's atomic document update.
func (s *Store) UpdatePaymentConfirmed(ctx context.Context, orderID string, req *validation.UpdateOrderRequest) (*Order, error) {
	if req == nil || req.PaymentConfirmed == nil {
		return nil, ErrNoRecognizedFields
	}

	now := s.nowFunc().UTC()
	input := &dyn.UpdateItemInput{
		TableName: &s.tableName,
		Key: map[string]types.AttributeValue{
			"order_id": &types.AttributeValueMemberS{Value: orderID},
		},
		UpdateExpression: awsString("SET payment_confirmed = :pc, updated_at = :ua"),
		ExpressionAttributeValues: map[string]types.AttributeValue{
			":pc": &types.AttributeValueMemberBOOL{Value: *req.PaymentConfirmed},
			":ua": &types.AttributeValueMemberS{Value: now.Format(time.RFC3339Nano)},
		},
		ConditionExpression: awsString("attribute_exists(order_id)"),
		ReturnValues:        types.ReturnValueAllNew,
	}

	out, err := s.client.UpdateItem(ctx, input)
	if err != nil {
		var cond *types.ConditionalCheckFailedException
		if errors.As(err, &cond) {
			return nil, ErrNotFound
		}
		// the SDK sometimes surfaces the condition failure as a generic API
		// error rather than the typed exception
		var apiErr smithy.APIError
		if errors.As(err, &apiErr) && apiErr.ErrorCode() == "ConditionalCheckFailedException" {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("update order: %w", err)
	}

	var o Order
	if err := attributevalue.UnmarshalMap(out.Attributes, &o); err != nil {
		return nil, fmt.Errorf("unmarshal order: %w", err)
	}
	return &o, nil
}

func awsString(s string) *string { return &s }
