package repository

import (
	"context"
	"fmt"
	"time"

	"claimscope/internal/domain/entities"
	"claimscope/internal/infrastructure/database"
	"claimscope/internal/usecase/interfaces"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/feature/dynamodb/attributevalue"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb/types"
	"github.com/shopspring/decimal"
)

type claimPaymentItem struct {
	ID           string                 `dynamodbav:"id"`
	EstimateID   string                 `dynamodbav:"estimate_id"`
	CoverageID   string                 `dynamodbav:"coverage_id"`
	Amount       string                 `dynamodbav:"amount"`
	Date         string                 `dynamodbav:"date"`
	Status       string                 `dynamodbav:"status"`
	MPPayload    map[string]interface{} `dynamodbav:"mp_payload,omitempty"`
	MPPayloadRaw string                 `dynamodbav:"mp_payload_raw,omitempty"`
}

// ClaimPaymentDynamoRepository persists ClaimPayment entities in DynamoDB.
//
// Table requirements:
//   - PK: id (string)
//   - GSI: estimate_id-index (PK: estimate_id)

type ClaimPaymentDynamoRepository struct {
	ddb       dynamoAPI
	tableName string
}

var _ interfaces.IClaimPaymentRepository = (*ClaimPaymentDynamoRepository)(nil)

func NewClaimPaymentDynamoRepository(ddb dynamoAPI, tableName string) *ClaimPaymentDynamoRepository {
	return &ClaimPaymentDynamoRepository{ddb: ddb, tableName: tableName}
}

func (r *ClaimPaymentDynamoRepository) Create(ctx context.Context, p entities.ClaimPayment) (entities.ClaimPayment, error) {
	av, err := attributevalue.MarshalMap(toClaimPaymentItem(p))
	if err != nil {
		return entities.ClaimPayment{}, err
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
		return entities.ClaimPayment{}, err
	}
	return p, nil
}

func (r *ClaimPaymentDynamoRepository) GetByID(ctx context.Context, id string) (entities.ClaimPayment, error) {
	out, err := r.ddb.GetItem(ctx, &dynamodb.GetItemInput{
		TableName: aws.String(r.tableName),
		Key: map[string]types.AttributeValue{
			"id": &types.AttributeValueMemberS{Value: id},
		},
		ConsistentRead: aws.Bool(true),
	})
	if err != nil {
		return entities.ClaimPayment{}, err
	}
	if len(out.Item) == 0 {
		return entities.ClaimPayment{}, nil
	}

	var it claimPaymentItem
	if err := attributevalue.UnmarshalMap(out.Item, &it); err != nil {
		return entities.ClaimPayment{}, err
	}
	return fromClaimPaymentItem(it)
}

// ListByEstimateID follows pagination so the remaining payable is computed from every payment.
func (r *ClaimPaymentDynamoRepository) ListByEstimateID(ctx context.Context, estimateID string) ([]entities.ClaimPayment, error) {
	in := &dynamodb.QueryInput{
		TableName:              aws.String(r.tableName),
		IndexName:              aws.String(database.PaymentsEstimateIDIndex),
		KeyConditionExpression: aws.String("#eid = :eid"),
		ExpressionAttributeNames: map[string]string{
			"#eid": "estimate_id",
		},
		ExpressionAttributeValues: map[string]types.AttributeValue{
			":eid": &types.AttributeValueMemberS{Value: estimateID},
		},
	}

	items := make([]entities.ClaimPayment, 0)
	for {
		out, err := r.ddb.Query(ctx, in)
		if err != nil {
			return nil, err
		}
		for _, raw := range out.Items {
			var it claimPaymentItem
			if err := attributevalue.UnmarshalMap(raw, &it); err != nil {
				return nil, err
			}
			p, err := fromClaimPaymentItem(it)
			if err != nil {
				return nil, err
			}
			items = append(items, p)
		}
		if len(out.LastEvaluatedKey) == 0 {
			return items, nil
		}
		in.ExclusiveStartKey = out.LastEvaluatedKey
	}
}

func toClaimPaymentItem(p entities.ClaimPayment) claimPaymentItem {
	return claimPaymentItem{
		ID:           p.ID,
		EstimateID:   p.EstimateID,
		CoverageID:   p.CoverageID,
		Amount:       p.Amount.StringFixed(2),
		Date:         p.Date.UTC().Format(time.RFC3339Nano),
		Status:       string(p.Status),
		MPPayload:    p.MPPayload,
		MPPayloadRaw: string(p.MPPayloadRaw),
	}
}

// An unreadable amount is an error, never zero.
func fromClaimPaymentItem(it claimPaymentItem) (entities.ClaimPayment, error) {
	dt, _ := time.Parse(time.RFC3339Nano, it.Date)
	amount, err := decimal.NewFromString(it.Amount)
	if err != nil {
		return entities.ClaimPayment{}, fmt.Errorf("decode claim payment %s amount: %w", it.ID, err)
	}
	return entities.ClaimPayment{
		ID:           it.ID,
		EstimateID:   it.EstimateID,
		CoverageID:   it.CoverageID,
		Amount:       amount,
		Date:         dt,
		Status:       entities.PaymentStatus(it.Status),
		MPPayload:    it.MPPayload,
		MPPayloadRaw: []byte(it.MPPayloadRaw),
	}, nil
}
