package users

import (
	"context"
	"fmt"
	"time"

	"github.com/aws/aws-sdk-go-v2/feature/dynamodb/attributevalue"
	dyn "github.com/aws/aws-sdk-go-v2/service/dynamodb"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb/types"

	"github.com/quickchow/go-food-orders/internal/aws"
)

// User represents the customer record stored in the users table. Phone is the
// primary key, which is what makes the directory deduplicated: one record per
// phone number, ever.
type User struct {
	Phone     string    `dynamodbav:"phone" json:"phone"` // PK
	FullName  string    `dynamodbav:"full_name" json:"fullName"`
	CreatedAt time.Time `dynamodbav:"created_at" json:"createdAt"`
	UpdatedAt time.Time `dynamodbav:"updated_at" json:"updatedAt"`
}

// Store encapsulates operations on the users table.
type Store struct {
	client    aws.DynamoDBAPI
	tableName string
	nowFunc   func() time.Time
}

// NewStore creates a new users Store.
func NewStore(client aws.DynamoDBAPI, tableName string) *Store {
	return &Store{
		client:    client,
		tableName: tableName,
		nowFunc:   time.Now,
	}
}

// Upsert ensures a record exists for the phone number: created with both
// timestamps when absent, otherwise fullName and updated_at are refreshed
// while if_not_exists keeps the original created_at. One write either way,
// and calling it twice with the same phone leaves exactly one record.
func (s *Store) Upsert(ctx context.Context, fullName, phone string) (*User, error) {
	now := s.nowFunc().UTC().Format(time.RFC3339Nano)

	input := &dyn.UpdateItemInput{
		TableName: &s.tableName,
		Key: map[string]types.AttributeValue{
			"phone": &types.AttributeValueMemberS{Value: phone},
		},
		UpdateExpression: awsString("SET full_name = :fn, updated_at = :ua, created_at = if_not_exists(created_at, :ca)"),
		ExpressionAttributeValues: map[string]types.AttributeValue{
			":fn": &types.AttributeValueMemberS{Value: fullName},
			":ua": &types.AttributeValueMemberS{Value: now},
			":ca": &types.AttributeValueMemberS{Value: now},
		},
		ReturnValues: types.ReturnValueAllNew,
	}

	out, err := s.client.UpdateItem(ctx, input)
	if err != nil {
		return nil, fmt.Errorf("upsert user: %w", err)
	}

	var u User
	if err := attributevalue.UnmarshalMap(out.Attributes, &u); err != nil {
		return nil, fmt.Errorf("unmarshal user: %w", err)
	}
	return &u, nil
}

func awsString(s string) *string { return &s }
