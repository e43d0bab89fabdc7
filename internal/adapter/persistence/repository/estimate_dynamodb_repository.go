package repository

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"claimscope/internal/domain/entities"
	"claimscope/internal/infrastructure/logger"
	"claimscope/internal/usecase/interfaces"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/feature/dynamodb/attributevalue"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb/types"
)

type estimateItem struct {
	ID          string `dynamodbav:"id"`
	ClaimNumber string `dynamodbav:"claim_number"`
	Status      string `dynamodbav:"status"`
	RCV         string `dynamodbav:"rcv"`
	Document    string `dynamodbav:"document"`
	CreatedAt   string `dynamodbav:"created_at"`
	UpdatedAt   string `dynamodbav:"updated_at"`
}

// EstimateDynamoRepository persists whole estimate trees in DynamoDB.
//
// Table requirements:
//   - PK: id (string)
//
// The tree is stored as a JSON document attribute so a mutation is a single conditional put.

type EstimateDynamoRepository struct {
	ddb       dynamoAPI
	tableName string
}

var _ interfaces.IEstimateRepository = (*EstimateDynamoRepository)(nil)

func NewEstimateDynamoRepository(ddb dynamoAPI, tableName string) *EstimateDynamoRepository {
	return &EstimateDynamoRepository{ddb: ddb, tableName: tableName}
}

func (r *EstimateDynamoRepository) Create(ctx context.Context, e entities.Estimate) (entities.Estimate, error) {
	if err := r.put(ctx, e, "attribute_not_exists(#id)"); err != nil {
		return entities.Estimate{}, err
	}
	return e, nil
}

func (r *EstimateDynamoRepository) GetByID(ctx context.Context, id string) (entities.Estimate, error) {
	out, err := r.ddb.GetItem(ctx, &dynamodb.GetItemInput{
		TableName: aws.String(r.tableName),
		Key: map[string]types.AttributeValue{
			"id": &types.AttributeValueMemberS{Value: id},
		},
		ConsistentRead: aws.Bool(true),
	})
	if err != nil {
		return entities.Estimate{}, err
	}
	if len(out.Item) == 0 {
		return entities.Estimate{}, nil
	}

	var it estimateItem
	if err := attributevalue.UnmarshalMap(out.Item, &it); err != nil {
		return entities.Estimate{}, err
	}
	return fromEstimateItem(it)
}

// Save replaces the stored tree. It returns an empty Estimate when the estimate was deleted
// in the meantime.
func (r *EstimateDynamoRepository) Save(ctx context.Context, e entities.Estimate) (entities.Estimate, error) {
	err := r.put(ctx, e, "attribute_exists(#id)")
	if err != nil {
		var cfe *types.ConditionalCheckFailedException
		if errors.As(err, &cfe) {
			logger.Warnf(ctx, "[estimate][repository] save on missing estimate estimate_id=%s", e.ID)
			return entities.Estimate{}, nil
		}
		return entities.Estimate{}, err
	}
	return e, nil
}

func (r *EstimateDynamoRepository) Delete(ctx context.Context, id string) (bool, error) {
	out, err := r.ddb.DeleteItem(ctx, &dynamodb.DeleteItemInput{
		TableName: aws.String(r.tableName),
		Key: map[string]types.AttributeValue{
			"id": &types.AttributeValueMemberS{Value: id},
		},
		ReturnValues: types.ReturnValueAllOld,
	})
	if err != nil {
		return false, err
	}
	return len(out.Attributes) > 0, nil
}

func (r *EstimateDynamoRepository) put(ctx context.Context, e entities.Estimate, condition string) error {
	it, err := toEstimateItem(e)
	if err != nil {
		return err
	}
	av, err := attributevalue.MarshalMap(it)
	if err != nil {
		return err
	}

	_, err = r.ddb.PutItem(ctx, &dynamodb.PutItemInput{
		TableName:           aws.String(r.tableName),
		Item:                av,
		ConditionExpression: aws.String(condition),
		ExpressionAttributeNames: map[string]string{
			"#id": "id",
		},
	})
	return err
}

func toEstimateItem(e entities.Estimate) (estimateItem, error) {
	doc, err := json.Marshal(e)
	if err != nil {
		return estimateItem{}, fmt.Errorf("encode estimate %s: %w", e.ID, err)
	}
	return estimateItem{
		ID:          e.ID,
		ClaimNumber: e.ClaimNumber,
		Status:      string(e.Status),
		RCV:         e.Totals.RCV.StringFixed(2),
		Document:    string(doc),
		CreatedAt:   e.CreatedAt.UTC().Format(time.RFC3339Nano),
		UpdatedAt:   e.UpdatedAt.UTC().Format(time.RFC3339Nano),
	}, nil
}

func fromEstimateItem(it estimateItem) (entities.Estimate, error) {
	var e entities.Estimate
	if err := json.Unmarshal([]byte(it.Document), &e); err != nil {
		return entities.Estimate{}, fmt.Errorf("decode estimate %s: %w", it.ID, err)
	}
	e.ID = it.ID
	return e, nil
}
