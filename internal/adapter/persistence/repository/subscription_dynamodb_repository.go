package repository

import (
	"context"
	"strconv"
	"time"

	"subscription_billing/internal/domain/entities"
	"subscription_billing/internal/usecase/interfaces"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/feature/dynamodb/attributevalue"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb/types"
)

const defaultSubscriptionsTableName = "subscriptions"

type subscriptionItem struct {
	UserID    string `dynamodbav:"user_id"`
	PlanID    string `dynamodbav:"plan_id"`
	PlanName  string `dynamodbav:"plan_name"`
	Status    string `dynamodbav:"status"`
	PaymentID string `dynamodbav:"payment_id"`
	Amount    string `dynamodbav:"amount"`
	Currency  string `dynamodbav:"currency"`
	CreatedAt string `dynamodbav:"created_at"`
	UpdatedAt string `dynamodbav:"updated_at"`
}

// SubscriptionDynamoRepository persists Subscription documents in DynamoDB.
//
// Table requirements:
//   - PK: user_id (string), one document per user.
//
// Upsert relies on UpdateItem semantics: the SET expression creates the item
// when absent and merges when present, preserving attributes the expression
// does not name. created_at is written with if_not_exists so the first
// activation's timestamp survives later merges.

type SubscriptionDynamoRepository struct {
	ddb       *dynamodb.Client
	tableName string
}

var _ interfaces.ISubscriptionRepository = (*SubscriptionDynamoRepository)(nil)

func NewSubscriptionDynamoRepository(ddb *dynamodb.Client) *SubscriptionDynamoRepository {
	return &SubscriptionDynamoRepository{
		ddb:       ddb,
		tableName: getenvDefault("SUBSCRIPTIONS_TABLE", defaultSubscriptionsTableName),
	}
}

func (r *SubscriptionDynamoRepository) Upsert(ctx context.Context, s entities.Subscription) (entities.Subscription, error) {
	now := time.Now().UTC().Format(time.RFC3339Nano)

	expr := "SET #plan_id = :plan_id, #plan_name = :plan_name, #status = :status, " +
		"#payment_id = :payment_id, #amount = :amount, #currency = :currency, " +
		"#updated_at = :updated_at, #created_at = if_not_exists(#created_at, :created_at)"

	out, err := r.ddb.UpdateItem(ctx, &dynamodb.UpdateItemInput{
		TableName: aws.String(r.tableName),
		Key: map[string]types.AttributeValue{
			"user_id": &types.AttributeValueMemberS{Value: s.UserID},
		},
		UpdateExpression: aws.String(expr),
		ExpressionAttributeValues: map[string]types.AttributeValue{
			":plan_id":    &types.AttributeValueMemberS{Value: s.PlanID},
			":plan_name":  &types.AttributeValueMemberS{Value: s.PlanName},
			":status":     &types.AttributeValueMemberS{Value: string(s.Status)},
			":payment_id": &types.AttributeValueMemberS{Value: s.PaymentID},
			":amount":     &types.AttributeValueMemberN{Value: floatToString(s.Amount)},
			":currency":   &types.AttributeValueMemberS{Value: s.Currency},
			":updated_at": &types.AttributeValueMemberS{Value: now},
			":created_at": &types.AttributeValueMemberS{Value: now},
		},
		ExpressionAttributeNames: map[string]string{
			"#plan_id":    "plan_id",
			"#plan_name":  "plan_name",
			"#status":     "status",
			"#payment_id": "payment_id",
			"#amount":     "amount",
			"#currency":   "currency",
			"#updated_at": "updated_at",
			"#created_at": "created_at",
		},
		ReturnValues: types.ReturnValueAllNew,
	})
	if err != nil {
		return entities.Subscription{}, err
	}
	if len(out.Attributes) == 0 {
		return s, nil
	}

	var it subscriptionItem
	if err := attributevalue.UnmarshalMap(out.Attributes, &it); err != nil {
		return entities.Subscription{}, err
	}
	return fromSubscriptionItem(it), nil
}

func (r *SubscriptionDynamoRepository) GetByUserID(ctx context.Context, userID string) (entities.Subscription, error) {
	out, err := r.ddb.GetItem(ctx, &dynamodb.GetItemInput{
		TableName: aws.String(r.tableName),
		Key: map[string]types.AttributeValue{
			"user_id": &types.AttributeValueMemberS{Value: userID},
		},
		ConsistentRead: aws.Bool(true),
	})
	if err != nil {
		return entities.Subscription{}, err
	}
	if len(out.Item) == 0 {
		return entities.Subscription{}, nil
	}

	var it subscriptionItem
	if err := attributevalue.UnmarshalMap(out.Item, &it); err != nil {
		return entities.Subscription{}, err
	}
	return fromSubscriptionItem(it), nil
}

func fromSubscriptionItem(it subscriptionItem) entities.Subscription {
	createdAt, _ := time.Parse(time.RFC3339Nano, it.CreatedAt)
	updatedAt, _ := time.Parse(time.RFC3339Nano, it.UpdatedAt)
	amount, _ := strconv.ParseFloat(it.Amount, 64)
	return entities.Subscription{
		UserID:    it.UserID,
		PlanID:    it.PlanID,
		PlanName:  it.PlanName,
		Status:    entities.SubscriptionStatus(it.Status),
		PaymentID: it.PaymentID,
		Amount:    amount,
		Currency:  it.Currency,
		CreatedAt: createdAt,
		UpdatedAt: updatedAt,
	}
}
