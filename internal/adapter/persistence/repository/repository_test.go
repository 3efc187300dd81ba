package repository

import (
	"context"
	"testing"
	"time"

	"atelier_orders/internal/domain/entities"
	"atelier_orders/internal/usecase/interfaces"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/feature/dynamodb/attributevalue"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb/types"
	"github.com/pkg/errors"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// stubDynamo records the last input of each call and answers with the
// configured outputs.
type stubDynamo struct {
	DynamoAPI

	putIn      *dynamodb.PutItemInput
	putErr     error
	getOut     *dynamodb.GetItemOutput
	queryIn    *dynamodb.QueryInput
	queryOut   *dynamodb.QueryOutput
	scanIn     *dynamodb.ScanInput
	scanOut    *dynamodb.ScanOutput
	updateIn   *dynamodb.UpdateItemInput
	updateOut  *dynamodb.UpdateItemOutput
	updateErr  error
	transactIn *dynamodb.TransactWriteItemsInput
	transactEr error
}

func (s *stubDynamo) PutItem(_ context.Context, in *dynamodb.PutItemInput, _ ...func(*dynamodb.Options)) (*dynamodb.PutItemOutput, error) {
	s.putIn = in
	return &dynamodb.PutItemOutput{}, s.putErr
}

func (s *stubDynamo) GetItem(_ context.Context, _ *dynamodb.GetItemInput, _ ...func(*dynamodb.Options)) (*dynamodb.GetItemOutput, error) {
	if s.getOut == nil {
		return &dynamodb.GetItemOutput{}, nil
	}
	return s.getOut, nil
}

func (s *stubDynamo) Query(_ context.Context, in *dynamodb.QueryInput, _ ...func(*dynamodb.Options)) (*dynamodb.QueryOutput, error) {
	s.queryIn = in
	if s.queryOut == nil {
		return &dynamodb.QueryOutput{}, nil
	}
	return s.queryOut, nil
}

func (s *stubDynamo) Scan(_ context.Context, in *dynamodb.ScanInput, _ ...func(*dynamodb.Options)) (*dynamodb.ScanOutput, error) {
	s.scanIn = in
	if s.scanOut == nil {
		return &dynamodb.ScanOutput{}, nil
	}
	return s.scanOut, nil
}

func (s *stubDynamo) UpdateItem(_ context.Context, in *dynamodb.UpdateItemInput, _ ...func(*dynamodb.Options)) (*dynamodb.UpdateItemOutput, error) {
	s.updateIn = in
	if s.updateOut == nil {
		return &dynamodb.UpdateItemOutput{}, s.updateErr
	}
	return s.updateOut, s.updateErr
}

func (s *stubDynamo) TransactWriteItems(_ context.Context, in *dynamodb.TransactWriteItemsInput, _ ...func(*dynamodb.Options)) (*dynamodb.TransactWriteItemsOutput, error) {
	s.transactIn = in
	return &dynamodb.TransactWriteItemsOutput{}, s.transactEr
}

var refNow = time.Date(2026, 3, 10, 9, 30, 0, 500, time.UTC)

func sampleOrder() entities.Order {
	paid := refNow.Add(time.Hour)
	return entities.Order{
		ID:          "ord-1",
		CustomerRef: "tg_42",
		ClientProfile: entities.ProfileSnapshot{
			FullName:    "Selam Bekele",
			PhoneNumber: "251911223344",
			City:        "Addis Ababa",
		},
		OrderType:             entities.OrderTypeCustomEventDress,
		Occasion:              entities.OccasionWedding,
		EventDate:             refNow.AddDate(0, 0, 8),
		PreferredDeliveryDate: refNow.AddDate(0, 0, 6),
		IsRushOrder:           true,
		RushMultiplier:        decimal.RequireFromString("1.4"),
		DaysUntilDelivery:     6,
		Measurements:          entities.Measurements{entities.MeasurementWaist: 0, entities.MeasurementBust: 90.5},
		Inspiration:           &entities.MediaRef{URL: "http://cdn/x", StorageID: "inspirations/x"},
		BasePrice:             decimal.RequireFromString("1001.25"),
		TotalPrice:            decimal.NewFromInt(1402),
		DepositAmount:         decimal.NewFromInt(421),
		DepositPaid:           true,
		DepositPaidAt:         &paid,
		DepositCollected:      decimal.NewFromInt(421),
		Status:                entities.OrderStatusPaid,
		History:               []string{"rev-0"},
		Version:               3,
		CreatedAt:             refNow,
		UpdatedAt:             paid,
	}
}

func TestOrderItem_RoundTripThroughAttributeValues(t *testing.T) {
	o := sampleOrder()

	av, err := attributevalue.MarshalMap(toOrderItem(o))
	require.NoError(t, err)
	var it orderItem
	require.NoError(t, attributevalue.UnmarshalMap(av, &it))
	got := fromOrderItem(it)

	assert.True(t, got.BasePrice.Equal(o.BasePrice))
	assert.True(t, got.RushMultiplier.Equal(o.RushMultiplier))
	assert.True(t, got.CreatedAt.Equal(o.CreatedAt), "nanoseconds survive")
	require.NotNil(t, got.DepositPaidAt)
	assert.True(t, got.DepositPaidAt.Equal(*o.DepositPaidAt))
	assert.True(t, got.DepositCollected.Equal(o.DepositCollected))
	assert.Nil(t, got.FinalPaymentPaidAt)
	assert.Equal(t, 0.0, got.Measurements[entities.MeasurementWaist])
	_, present := got.Measurements[entities.MeasurementWaist]
	assert.True(t, present)
	assert.Equal(t, o.Inspiration, got.Inspiration)
	assert.Equal(t, o.History, got.History)
}

func TestFormatTime_SortsLexicographically(t *testing.T) {
	a := formatTime(refNow)
	b := formatTime(refNow.Add(time.Millisecond))
	c := formatTime(refNow.Add(time.Second))
	assert.Less(t, a, b)
	assert.Less(t, b, c)
	assert.Equal(t, "", formatTime(time.Time{}))
}

func TestOrderRepository_UpdateIsVersionConditional(t *testing.T) {
	ddb := &stubDynamo{}
	repo := NewOrderDynamoRepository(ddb, "orders")

	got, err := repo.Update(context.Background(), sampleOrder(), 3)
	require.NoError(t, err)
	assert.Equal(t, int64(4), got.Version)

	require.NotNil(t, ddb.putIn.ConditionExpression)
	assert.Contains(t, *ddb.putIn.ConditionExpression, "=")
	var stored orderItem
	require.NoError(t, attributevalue.UnmarshalMap(ddb.putIn.Item, &stored))
	assert.Equal(t, int64(4), stored.Version)

	ddb.putErr = &types.ConditionalCheckFailedException{Message: aws.String("stale")}
	_, err = repo.Update(context.Background(), sampleOrder(), 3)
	assert.ErrorIs(t, err, interfaces.ErrConcurrentUpdate)
}

func TestOrderRepository_GetByIDMissingReturnsZero(t *testing.T) {
	repo := NewOrderDynamoRepository(&stubDynamo{}, "orders")
	got, err := repo.GetByID(context.Background(), "nope")
	require.NoError(t, err)
	assert.Empty(t, got.ID)
}

func TestOrderRepository_ListPicksIndex(t *testing.T) {
	older, newer := sampleOrder(), sampleOrder()
	newer.ID, newer.CreatedAt = "ord-2", refNow.Add(time.Hour)
	items := make([]map[string]types.AttributeValue, 0, 2)
	for _, o := range []entities.Order{older, newer} {
		av, err := attributevalue.MarshalMap(toOrderItem(o))
		require.NoError(t, err)
		items = append(items, av)
	}

	t.Run("status uses the status index", func(t *testing.T) {
		ddb := &stubDynamo{queryOut: &dynamodb.QueryOutput{Items: items}}
		repo := NewOrderDynamoRepository(ddb, "orders")

		got, err := repo.List(context.Background(), interfaces.OrderFilter{Status: entities.OrderStatusPaid, RushOnly: true}, interfaces.NewPage(1, 10))
		require.NoError(t, err)
		require.Len(t, got, 2)
		assert.Equal(t, "ord-2", got[0].ID, "newest first")
		assert.Equal(t, ordersStatusIndex, aws.ToString(ddb.queryIn.IndexName))
		assert.NotNil(t, ddb.queryIn.FilterExpression)
	})

	t.Run("no filter scans", func(t *testing.T) {
		ddb := &stubDynamo{scanOut: &dynamodb.ScanOutput{Items: items}}
		repo := NewOrderDynamoRepository(ddb, "orders")

		n, err := repo.Count(context.Background(), interfaces.OrderFilter{})
		require.NoError(t, err)
		assert.Equal(t, 2, n)
		assert.Nil(t, ddb.scanIn.FilterExpression)
	})

	t.Run("customer uses the customer index", func(t *testing.T) {
		ddb := &stubDynamo{queryOut: &dynamodb.QueryOutput{Items: items[:1]}}
		repo := NewOrderDynamoRepository(ddb, "orders")

		got, err := repo.List(context.Background(), interfaces.OrderFilter{CustomerRef: "tg_42"}, interfaces.NewPage(1, 10))
		require.NoError(t, err)
		assert.Len(t, got, 1)
		assert.Equal(t, ordersCustomerIndex, aws.ToString(ddb.queryIn.IndexName))
		assert.Nil(t, ddb.queryIn.FilterExpression)
	})
}

func TestRevisionRepository_TransactionalWrites(t *testing.T) {
	ddb := &stubDynamo{}
	orders := NewOrderDynamoRepository(ddb, "orders")
	repo := NewRevisionDynamoRepository(ddb, "revisions", orders)

	rev := entities.Revision{
		ID:          "rev-1",
		OrderID:     "ord-1",
		Status:      entities.RevisionStatusPending,
		RevisionFee: decimal.NewFromInt(100),
		CreatedAt:   refNow,
	}

	_, o, err := repo.CreateWithOrder(context.Background(), rev, sampleOrder(), 3)
	require.NoError(t, err)
	assert.Equal(t, int64(4), o.Version)
	require.Len(t, ddb.transactIn.TransactItems, 2)
	assert.Equal(t, "revisions", aws.ToString(ddb.transactIn.TransactItems[0].Put.TableName))
	assert.Equal(t, "orders", aws.ToString(ddb.transactIn.TransactItems[1].Put.TableName))

	ddb.transactEr = &types.TransactionCanceledException{
		CancellationReasons: []types.CancellationReason{
			{Code: aws.String("None")},
			{Code: aws.String("ConditionalCheckFailed")},
		},
	}
	rev.Status = entities.RevisionStatusApplied
	_, _, err = repo.UpdateWithOrder(context.Background(), rev, entities.RevisionStatusApproved, sampleOrder(), 3)
	assert.ErrorIs(t, err, interfaces.ErrConcurrentUpdate)

	ddb.transactEr = errors.New("throttled")
	_, _, err = repo.UpdateWithOrder(context.Background(), rev, entities.RevisionStatusApproved, sampleOrder(), 3)
	require.Error(t, err)
	assert.NotErrorIs(t, err, interfaces.ErrConcurrentUpdate)
}

func TestRevisionRepository_ListByOrderIDAscending(t *testing.T) {
	var items []map[string]types.AttributeValue
	for _, n := range []int{2, 0, 1} {
		av, err := attributevalue.MarshalMap(toRevisionItem(entities.Revision{
			ID:             "rev",
			OrderID:        "ord-1",
			RevisionNumber: n,
			CreatedAt:      refNow,
		}))
		require.NoError(t, err)
		items = append(items, av)
	}
	ddb := &stubDynamo{queryOut: &dynamodb.QueryOutput{Items: items}}
	repo := NewRevisionDynamoRepository(ddb, "revisions", NewOrderDynamoRepository(ddb, "orders"))

	got, err := repo.ListByOrderID(context.Background(), "ord-1")
	require.NoError(t, err)
	require.Len(t, got, 3)
	for i, r := range got {
		assert.Equal(t, i, r.RevisionNumber)
	}
	assert.Equal(t, revisionsOrderIndex, aws.ToString(ddb.queryIn.IndexName))
}

func TestClientProfileRepository_Upsert(t *testing.T) {
	stored, err := attributevalue.MarshalMap(clientProfileItem{
		CustomerRef: "tg_42",
		FullName:    "Selam Bekele",
		TotalOrders: 2,
		CreatedAt:   formatTime(refNow.AddDate(0, -1, 0)),
		UpdatedAt:   formatTime(refNow),
	})
	require.NoError(t, err)
	ddb := &stubDynamo{updateOut: &dynamodb.UpdateItemOutput{Attributes: stored}}
	repo := NewClientProfileDynamoRepository(ddb, "client_profiles")

	got, err := repo.Upsert(context.Background(), entities.ClientProfile{CustomerRef: "tg_42", FullName: "Selam Bekele", UpdatedAt: refNow})
	require.NoError(t, err)
	assert.Equal(t, 2, got.TotalOrders)
	assert.Contains(t, aws.ToString(ddb.updateIn.UpdateExpression), "if_not_exists")
	assert.Equal(t, types.ReturnValueAllNew, ddb.updateIn.ReturnValues)
}

func TestClientProfileRepository_IncrementMissingProfile(t *testing.T) {
	ddb := &stubDynamo{updateErr: &types.ConditionalCheckFailedException{}}
	repo := NewClientProfileDynamoRepository(ddb, "client_profiles")

	err := repo.IncrementOrderCount(context.Background(), "tg_missing")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "does not exist")
	assert.Contains(t, aws.ToString(ddb.updateIn.UpdateExpression), "ADD")
}

func TestBillingPaymentItem_KeepsAmountAndPurpose(t *testing.T) {
	p := entities.BillingPayment{
		ID:         "pay-1",
		OrderID:    "ord-1",
		RevisionID: "rev-2",
		Purpose:    entities.PaymentPurposeRevisionFee,
		Amount:     decimal.RequireFromString("100.5"),
		Date:       refNow,
		Status:     entities.PaymentStatusApproved,
	}
	got := fromBillingPaymentItem(toBillingPaymentItem(p))
	assert.True(t, got.Amount.Equal(p.Amount))
	assert.Equal(t, p.Purpose, got.Purpose)
	assert.Equal(t, p.RevisionID, got.RevisionID)
	assert.True(t, got.Date.Equal(p.Date))
}
