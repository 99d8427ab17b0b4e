package repository

import (
	"context"
	"fmt"

	"thecodecup/internal/domain/entities"
	"thecodecup/internal/usecase/interfaces"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/feature/dynamodb/attributevalue"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb/types"
)

const defaultAppStateTableName = "app_state"

type snapshotItem struct {
	ID        string `dynamodbav:"id"`
	Payload   string `dynamodbav:"payload"`
	UpdatedAt string `dynamodbav:"updated_at"`
}

// dynamoAPI is the subset of *dynamodb.Client used by the snapshot slot.
type dynamoAPI interface {
	GetItem(ctx context.Context, params *dynamodb.GetItemInput, optFns ...func(*dynamodb.Options)) (*dynamodb.GetItemOutput, error)
	PutItem(ctx context.Context, params *dynamodb.PutItemInput, optFns ...func(*dynamodb.Options)) (*dynamodb.PutItemOutput, error)
	DeleteItem(ctx context.Context, params *dynamodb.DeleteItemInput, optFns ...func(*dynamodb.Options)) (*dynamodb.DeleteItemOutput, error)
}

// SnapshotDynamoRepository keeps the app snapshot as a single DynamoDB item.
//
// Table requirements:
//   - PK: id (string), holding the slot key
//
// The snapshot JSON lives in the payload attribute. Every save overwrites the
// item; there is no history.

type SnapshotDynamoRepository struct {
	ddb       dynamoAPI
	tableName string
	key       string
}

var _ interfaces.ISnapshotRepository = (*SnapshotDynamoRepository)(nil)

func NewSnapshotDynamoRepository(ddb *dynamodb.Client) *SnapshotDynamoRepository {
	return newSnapshotDynamoRepository(ddb)
}

func newSnapshotDynamoRepository(ddb dynamoAPI) *SnapshotDynamoRepository {
	return &SnapshotDynamoRepository{
		ddb:       ddb,
		tableName: getenvDefault("APP_STATE_TABLE", defaultAppStateTableName),
		key:       slotKey(),
	}
}

func (r *SnapshotDynamoRepository) Load(ctx context.Context) (*entities.Snapshot, error) {
	out, err := r.ddb.GetItem(ctx, &dynamodb.GetItemInput{
		TableName:      aws.String(r.tableName),
		Key:            r.itemKey(),
		ConsistentRead: aws.Bool(true),
	})
	if err != nil {
		return nil, fmt.Errorf("get snapshot item: %w", err)
	}
	if len(out.Item) == 0 {
		return nil, nil
	}

	var it snapshotItem
	if err := attributevalue.UnmarshalMap(out.Item, &it); err != nil {
		return nil, nil
	}
	snap, ok := entities.DecodeSnapshot([]byte(it.Payload))
	if !ok {
		return nil, nil
	}
	return snap, nil
}

func (r *SnapshotDynamoRepository) Save(ctx context.Context, s entities.Snapshot) error {
	payload, err := entities.EncodeSnapshot(s)
	if err != nil {
		return fmt.Errorf("encode snapshot: %w", err)
	}
	av, err := attributevalue.MarshalMap(snapshotItem{
		ID:        r.key,
		Payload:   string(payload),
		UpdatedAt: nowRFC3339(),
	})
	if err != nil {
		return err
	}

	_, err = r.ddb.PutItem(ctx, &dynamodb.PutItemInput{
		TableName: aws.String(r.tableName),
		Item:      av,
	})
	if err != nil {
		return fmt.Errorf("put snapshot item: %w", err)
	}
	return nil
}

func (r *SnapshotDynamoRepository) Clear(ctx context.Context) error {
	_, err := r.ddb.DeleteItem(ctx, &dynamodb.DeleteItemInput{
		TableName: aws.String(r.tableName),
		Key:       r.itemKey(),
	})
	if err != nil {
		return fmt.Errorf("delete snapshot item: %w", err)
	}
	return nil
}

func (r *SnapshotDynamoRepository) itemKey() map[string]types.AttributeValue {
	return map[string]types.AttributeValue{
		"id": &types.AttributeValueMemberS{Value: r.key},
	}
}

func (r *SnapshotDynamoRepository) TableName() string {
	return r.tableName
}
