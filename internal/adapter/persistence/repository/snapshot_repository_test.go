package repository

import (
	"context"
	"errors"
	"path/filepath"
	"testing"
	"time"

	"thecodecup/internal/domain/entities"
	"thecodecup/internal/infrastructure/database"

	"github.com/aws/aws-sdk-go-v2/feature/dynamodb/attributevalue"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb/types"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/require"
)

func sampleSnapshot() entities.Snapshot {
	item, _ := entities.FindCatalogItem("1")
	s := entities.DefaultSnapshot()
	s.Cart = []entities.CartLine{{
		Item: item, Size: entities.SizeLarge, Select: entities.SelectCold, Shot: entities.ShotDouble,
		Quantity: 2, LineTotal: decimal.RequireFromString("9"),
	}}
	s.Orders = []entities.Order{{
		ID:         "order-1",
		CreatedAt:  time.Date(2025, 9, 20, 10, 30, 0, 0, time.UTC),
		DateTime:   "20 September | 10:30 AM",
		Lines:      s.Cart,
		Subtotal:   decimal.RequireFromString("9"),
		Discount:   decimal.Zero,
		TotalPrice: decimal.RequireFromString("9"),
		Status:     entities.OrderStatusDelivered,
	}}
	s.LoyaltyStamps = 3
	s.TotalPoints = 48
	s.IsDarkMode = true
	return s
}

func TestSnapshotMemoryRepository(t *testing.T) {
	ctx := context.Background()

	t.Run("empty slot loads nothing", func(t *testing.T) {
		repo := NewSnapshotMemoryRepository()
		snap, err := repo.Load(ctx)
		if err != nil || snap != nil {
			t.Fatalf("expected (nil, nil), got (%v, %v)", snap, err)
		}
	})

	t.Run("save then load round trips", func(t *testing.T) {
		repo := NewSnapshotMemoryRepository()
		in := sampleSnapshot()
		require.NoError(t, repo.Save(ctx, in))

		out, err := repo.Load(ctx)
		require.NoError(t, err)
		require.NotNil(t, out)
		require.Equal(t, in.LoyaltyStamps, out.LoyaltyStamps)
		require.Equal(t, in.TotalPoints, out.TotalPoints)
		require.Len(t, out.Orders, 1)
		require.True(t, out.Orders[0].TotalPrice.Equal(in.Orders[0].TotalPrice))
		require.True(t, out.IsDarkMode)
	})

	t.Run("corrupt data is treated as no snapshot", func(t *testing.T) {
		repo := NewSnapshotMemoryRepositoryWithData([]byte("{not json"))
		snap, err := repo.Load(ctx)
		if err != nil || snap != nil {
			t.Fatalf("expected (nil, nil), got (%v, %v)", snap, err)
		}
	})

	t.Run("clear wipes the slot", func(t *testing.T) {
		repo := NewSnapshotMemoryRepository()
		require.NoError(t, repo.Save(ctx, sampleSnapshot()))
		require.NoError(t, repo.Clear(ctx))
		snap, err := repo.Load(ctx)
		if err != nil || snap != nil {
			t.Fatalf("expected (nil, nil) after clear, got (%v, %v)", snap, err)
		}
		if len(repo.Raw()) != 0 {
			t.Fatalf("expected empty raw data")
		}
	})
}

func TestSnapshotSQLiteRepository(t *testing.T) {
	ctx := context.Background()
	db, err := database.OpenSQLite(ctx, filepath.Join(t.TempDir(), "state.db"))
	require.NoError(t, err)
	t.Cleanup(func() { _ = db.Close() })

	repo, err := NewSnapshotSQLiteRepository(ctx, db)
	require.NoError(t, err)

	t.Run("empty table loads nothing", func(t *testing.T) {
		snap, err := repo.Load(ctx)
		require.NoError(t, err)
		require.Nil(t, snap)
	})

	t.Run("last write wins", func(t *testing.T) {
		first := sampleSnapshot()
		second := sampleSnapshot()
		second.TotalPoints = 120

		require.NoError(t, repo.Save(ctx, first))
		require.NoError(t, repo.Save(ctx, second))

		out, err := repo.Load(ctx)
		require.NoError(t, err)
		require.NotNil(t, out)
		require.Equal(t, 120, out.TotalPoints)
		require.Len(t, out.Cart, 1)
		require.Equal(t, entities.SizeLarge, out.Cart[0].Size)
	})

	t.Run("table is reused by a second repository", func(t *testing.T) {
		again, err := NewSnapshotSQLiteRepository(ctx, db)
		require.NoError(t, err)
		out, err := again.Load(ctx)
		require.NoError(t, err)
		require.NotNil(t, out)
	})

	t.Run("malformed row is treated as no snapshot", func(t *testing.T) {
		_, err := db.ExecContext(ctx, `UPDATE app_state SET value = ? WHERE key = ?`, "[]garbage", defaultSlotKey)
		require.NoError(t, err)
		out, err := repo.Load(ctx)
		require.NoError(t, err)
		require.Nil(t, out)
	})

	t.Run("clear", func(t *testing.T) {
		require.NoError(t, repo.Save(ctx, sampleSnapshot()))
		require.NoError(t, repo.Clear(ctx))
		out, err := repo.Load(ctx)
		require.NoError(t, err)
		require.Nil(t, out)
	})
}

type fakeDynamo struct {
	items  map[string]map[string]types.AttributeValue
	getErr error
	putErr error
}

func newFakeDynamo() *fakeDynamo {
	return &fakeDynamo{items: map[string]map[string]types.AttributeValue{}}
}

func keyOf(key map[string]types.AttributeValue) string {
	if s, ok := key["id"].(*types.AttributeValueMemberS); ok {
		return s.Value
	}
	return ""
}

func (f *fakeDynamo) GetItem(_ context.Context, in *dynamodb.GetItemInput, _ ...func(*dynamodb.Options)) (*dynamodb.GetItemOutput, error) {
	if f.getErr != nil {
		return nil, f.getErr
	}
	return &dynamodb.GetItemOutput{Item: f.items[keyOf(in.Key)]}, nil
}

func (f *fakeDynamo) PutItem(_ context.Context, in *dynamodb.PutItemInput, _ ...func(*dynamodb.Options)) (*dynamodb.PutItemOutput, error) {
	if f.putErr != nil {
		return nil, f.putErr
	}
	f.items[keyOf(in.Item)] = in.Item
	return &dynamodb.PutItemOutput{}, nil
}

func (f *fakeDynamo) DeleteItem(_ context.Context, in *dynamodb.DeleteItemInput, _ ...func(*dynamodb.Options)) (*dynamodb.DeleteItemOutput, error) {
	delete(f.items, keyOf(in.Key))
	return &dynamodb.DeleteItemOutput{}, nil
}

func TestSnapshotDynamoRepository(t *testing.T) {
	ctx := context.Background()

	t.Run("missing item loads nothing", func(t *testing.T) {
		repo := newSnapshotDynamoRepository(newFakeDynamo())
		snap, err := repo.Load(ctx)
		require.NoError(t, err)
		require.Nil(t, snap)
	})

	t.Run("save writes the slot key and payload", func(t *testing.T) {
		fake := newFakeDynamo()
		repo := newSnapshotDynamoRepository(fake)
		require.NoError(t, repo.Save(ctx, sampleSnapshot()))

		raw, ok := fake.items[defaultSlotKey]
		require.True(t, ok)
		var it snapshotItem
		require.NoError(t, attributevalue.UnmarshalMap(raw, &it))
		require.Equal(t, defaultSlotKey, it.ID)
		require.NotEmpty(t, it.Payload)
		require.NotEmpty(t, it.UpdatedAt)

		out, err := repo.Load(ctx)
		require.NoError(t, err)
		require.Equal(t, 3, out.LoyaltyStamps)
	})

	t.Run("table and key come from env", func(t *testing.T) {
		t.Setenv("APP_STATE_TABLE", "custom_table")
		t.Setenv("STATE_SLOT_KEY", "custom_key")
		repo := newSnapshotDynamoRepository(newFakeDynamo())
		require.Equal(t, "custom_table", repo.tableName)
		require.Equal(t, "custom_key", repo.key)
	})

	t.Run("undecodable payload is treated as no snapshot", func(t *testing.T) {
		fake := newFakeDynamo()
		fake.items[defaultSlotKey] = map[string]types.AttributeValue{
			"id":      &types.AttributeValueMemberS{Value: defaultSlotKey},
			"payload": &types.AttributeValueMemberS{Value: "nope"},
		}
		repo := newSnapshotDynamoRepository(fake)
		snap, err := repo.Load(ctx)
		require.NoError(t, err)
		require.Nil(t, snap)
	})

	t.Run("io errors are returned", func(t *testing.T) {
		fake := newFakeDynamo()
		fake.getErr = errors.New("throttled")
		fake.putErr = errors.New("throttled")
		repo := newSnapshotDynamoRepository(fake)

		_, err := repo.Load(ctx)
		require.ErrorIs(t, err, fake.getErr)
		require.ErrorIs(t, repo.Save(ctx, sampleSnapshot()), fake.putErr)
	})

	t.Run("clear deletes the item", func(t *testing.T) {
		fake := newFakeDynamo()
		repo := newSnapshotDynamoRepository(fake)
		require.NoError(t, repo.Save(ctx, sampleSnapshot()))
		require.NoError(t, repo.Clear(ctx))
		require.Empty(t, fake.items)
	})
}
