package repository

import (
	"context"
	"time"

	"subscription_billing/internal/domain/entities"
	"subscription_billing/internal/usecase/interfaces"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/feature/dynamodb/attributevalue"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb/types"
)

const (
	defaultPaymentsTableName = "payments"
	paymentsUserIDIndex      = "user_id-index"
	paymentsPaymentIDIndex   = "payment_id-index"
)

type paymentItem struct {
	ID              string  `dynamodbav:"id"`
	UserID          string  `dynamodbav:"user_id"`
	PlanID          string  `dynamodbav:"plan_id"`
	PlanName        string  `dynamodbav:"plan_name"`
	UserEmail       string  `dynamodbav:"user_email,omitempty"`
	PaymentID       string  `dynamodbav:"payment_id,omitempty"`
	Status          string  `dynamodbav:"status"`
	Amount          float64 `dynamodbav:"amount"`
	Currency        string  `dynamodbav:"currency"`
	MerchantOrderID string  `dynamodbav:"merchant_order_id,omitempty"`
	PreferenceID    string  `dynamodbav:"preference_id,omitempty"`
	Source          string  `dynamodbav:"source"`
	CreatedAt       string  `dynamodbav:"created_at"`
}

// PaymentDynamoRepository persists PaymentRecord entities in DynamoDB.
//
// Table requirements:
//   - PK: id (string, uuid)
//   - GSI: user_id-index (PK: user_id)
//   - GSI: payment_id-index (PK: payment_id)
//
// The table is an append log: every accepted event is a new item.

type PaymentDynamoRepository struct {
	ddb       *dynamodb.Client
	tableName string
}

var _ interfaces.IPaymentRepository = (*PaymentDynamoRepository)(nil)

func NewPaymentDynamoRepository(ddb *dynamodb.Client) *PaymentDynamoRepository {
	return &PaymentDynamoRepository{
		ddb:       ddb,
		tableName: getenvDefault("PAYMENTS_TABLE", defaultPaymentsTableName),
	}
}

func (r *PaymentDynamoRepository) Create(ctx context.Context, p entities.PaymentRecord) (entities.PaymentRecord, error) {
	it := toPaymentItem(p)
	av, err := attributevalue.MarshalMap(it)
	if err != nil {
		return entities.PaymentRecord{}, err
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
		return entities.PaymentRecord{}, err
	}
	return p, nil
}

func (r *PaymentDynamoRepository) GetByID(ctx context.Context, id string) (entities.PaymentRecord, error) {
	out, err := r.ddb.GetItem(ctx, &dynamodb.GetItemInput{
		TableName: aws.String(r.tableName),
		Key: map[string]types.AttributeValue{
			"id": &types.AttributeValueMemberS{Value: id},
		},
		ConsistentRead: aws.Bool(true),
	})
	if err != nil {
		return entities.PaymentRecord{}, err
	}
	if len(out.Item) == 0 {
		return entities.PaymentRecord{}, nil
	}

	var it paymentItem
	if err := attributevalue.UnmarshalMap(out.Item, &it); err != nil {
		return entities.PaymentRecord{}, err
	}
	return fromPaymentItem(it), nil
}

// GetByPaymentID resolves a record by the processor-assigned payment id.
// Returns a zero record when none exists. With redelivery the index may hold
// several items for one payment id; the first is enough for the dedup check.
func (r *PaymentDynamoRepository) GetByPaymentID(ctx context.Context, paymentID string) (entities.PaymentRecord, error) {
	out, err := r.ddb.Query(ctx, &dynamodb.QueryInput{
		TableName:              aws.String(r.tableName),
		IndexName:              aws.String(paymentsPaymentIDIndex),
		KeyConditionExpression: aws.String("payment_id = :pid"),
		ExpressionAttributeValues: map[string]types.AttributeValue{
			":pid": &types.AttributeValueMemberS{Value: paymentID},
		},
		Limit: aws.Int32(1),
	})
	if err != nil {
		return entities.PaymentRecord{}, err
	}
	if len(out.Items) == 0 {
		return entities.PaymentRecord{}, nil
	}

	var it paymentItem
	if err := attributevalue.UnmarshalMap(out.Items[0], &it); err != nil {
		return entities.PaymentRecord{}, err
	}
	return fromPaymentItem(it), nil
}

func (r *PaymentDynamoRepository) ListByUserID(ctx context.Context, userID string) ([]entities.PaymentRecord, error) {
	out, err := r.ddb.Query(ctx, &dynamodb.QueryInput{
		TableName:              aws.String(r.tableName),
		IndexName:              aws.String(paymentsUserIDIndex),
		KeyConditionExpression: aws.String("user_id = :uid"),
		ExpressionAttributeValues: map[string]types.AttributeValue{
			":uid": &types.AttributeValueMemberS{Value: userID},
		},
	})
	if err != nil {
		return nil, err
	}

	items := make([]entities.PaymentRecord, 0, len(out.Items))
	for _, raw := range out.Items {
		var it paymentItem
		if err := attributevalue.UnmarshalMap(raw, &it); err != nil {
			return nil, err
		}
		items = append(items, fromPaymentItem(it))
	}
	return items, nil
}

func toPaymentItem(p entities.PaymentRecord) paymentItem {
	return paymentItem{
		ID:              p.ID,
		UserID:          p.UserID,
		PlanID:          p.PlanID,
		PlanName:        p.PlanName,
		UserEmail:       p.UserEmail,
		PaymentID:       p.PaymentID,
		Status:          string(p.Status),
		Amount:          p.Amount,
		Currency:        p.Currency,
		MerchantOrderID: p.MerchantOrderID,
		PreferenceID:    p.PreferenceID,
		Source:          string(p.Source),
		CreatedAt:       p.CreatedAt.UTC().Format(time.RFC3339Nano),
	}
}

func fromPaymentItem(it paymentItem) entities.PaymentRecord {
	createdAt, _ := time.Parse(time.RFC3339Nano, it.CreatedAt)
	return entities.PaymentRecord{
		ID:              it.ID,
		UserID:          it.UserID,
		PlanID:          it.PlanID,
		PlanName:        it.PlanName,
		UserEmail:       it.UserEmail,
		PaymentID:       it.PaymentID,
		Status:          entities.PaymentStatus(it.Status),
		Amount:          it.Amount,
		Currency:        it.Currency,
		MerchantOrderID: it.MerchantOrderID,
		PreferenceID:    it.PreferenceID,
		Source:          entities.EventSource(it.Source),
		CreatedAt:       createdAt,
	}
}
