package repository

import (
	"context"
	"sort"

	"atelier_orders/internal/domain/entities"
	"atelier_orders/internal/usecase/interfaces"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/feature/dynamodb/attributevalue"
	"github.com/aws/aws-sdk-go-v2/feature/dynamodb/expression"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb/types"
	"github.com/pkg/errors"
	log "github.com/sirupsen/logrus"
)

const (
	ordersCustomerIndex = "customer_ref-index"
	ordersStatusIndex   = "status-index"
)

type profileSnapshotItem struct {
	FullName        string `dynamodbav:"full_name"`
	PhoneNumber     string `dynamodbav:"phone_number"`
	City            string `dynamodbav:"city"`
	InstagramHandle string `dynamodbav:"instagram_handle"`
}

type mediaItem struct {
	URL       string `dynamodbav:"url"`
	StorageID string `dynamodbav:"storage_id"`
}

type orderItem struct {
	ID            string              `dynamodbav:"id"`
	CustomerRef   string              `dynamodbav:"customer_ref"`
	ClientProfile profileSnapshotItem `dynamodbav:"client_profile"`

	OrderType        string `dynamodbav:"order_type"`
	Occasion         string `dynamodbav:"occasion"`
	FabricPreference string `dynamodbav:"fabric_preference"`
	CollectionID     string `dynamodbav:"collection_id,omitempty"`

	EventDate             string `dynamodbav:"event_date"`
	PreferredDeliveryDate string `dynamodbav:"preferred_delivery_date"`
	IsRushOrder           bool   `dynamodbav:"is_rush_order"`
	RushMultiplier        string `dynamodbav:"rush_multiplier"`
	DaysUntilDelivery     int    `dynamodbav:"days_until_delivery"`

	Measurements    map[string]float64 `dynamodbav:"measurements"`
	BodyConcerns    string             `dynamodbav:"body_concerns"`
	ColorPreference string             `dynamodbav:"color_preference"`
	Inspiration     *mediaItem         `dynamodbav:"inspiration,omitempty"`

	TermsAccepted            bool   `dynamodbav:"terms_accepted"`
	TermsAcceptedAt          string `dynamodbav:"terms_accepted_at,omitempty"`
	RevisionPolicyAccepted   bool   `dynamodbav:"revision_policy_accepted"`
	RevisionPolicyAcceptedAt string `dynamodbav:"revision_policy_accepted_at,omitempty"`

	BasePrice          string `dynamodbav:"base_price"`
	TotalPrice         string `dynamodbav:"total_price"`
	DepositAmount      string `dynamodbav:"deposit_amount"`
	DepositPaid        bool   `dynamodbav:"deposit_paid"`
	DepositPaidAt      string `dynamodbav:"deposit_paid_at,omitempty"`
	FinalPaymentPaid   bool   `dynamodbav:"final_payment_paid"`
	FinalPaymentPaidAt string `dynamodbav:"final_payment_paid_at,omitempty"`
	DepositCollected   string `dynamodbav:"deposit_collected,omitempty"`

	Status          string   `dynamodbav:"status"`
	StatusChangedBy string   `dynamodbav:"status_changed_by,omitempty"`
	StatusChangedAt string   `dynamodbav:"status_changed_at,omitempty"`
	RevisionCount   int      `dynamodbav:"revision_count"`
	History         []string `dynamodbav:"history"`
	AdminNotes      string   `dynamodbav:"admin_notes"`

	Version   int64  `dynamodbav:"version"`
	CreatedAt string `dynamodbav:"created_at"`
	UpdatedAt string `dynamodbav:"updated_at"`
}

// OrderDynamoRepository persists Order entities in DynamoDB.
//
// Table requirements:
//   - PK: id (string)
//   - GSI customer_ref-index: customer_ref / created_at
//   - GSI status-index: status / created_at
//
// Writes after creation are conditional on the stored version.
type OrderDynamoRepository struct {
	ddb       DynamoAPI
	tableName string
}

var _ interfaces.IOrderRepository = (*OrderDynamoRepository)(nil)

func NewOrderDynamoRepository(ddb DynamoAPI, tableName string) *OrderDynamoRepository {
	return &OrderDynamoRepository{ddb: ddb, tableName: tableName}
}

func (r *OrderDynamoRepository) Create(ctx context.Context, o entities.Order) (entities.Order, error) {
	av, err := attributevalue.MarshalMap(toOrderItem(o))
	if err != nil {
		return entities.Order{}, errors.Wrap(err, "marshal order")
	}
	_, err = r.ddb.PutItem(ctx, &dynamodb.PutItemInput{
		TableName:                aws.String(r.tableName),
		Item:                     av,
		ConditionExpression:      aws.String("attribute_not_exists(#id)"),
		ExpressionAttributeNames: map[string]string{"#id": "id"},
	})
	if err != nil {
		return entities.Order{}, errors.Wrap(err, "put order")
	}
	return o, nil
}

func (r *OrderDynamoRepository) GetByID(ctx context.Context, id string) (entities.Order, error) {
	out, err := r.ddb.GetItem(ctx, &dynamodb.GetItemInput{
		TableName:      aws.String(r.tableName),
		Key:            keyID(id),
		ConsistentRead: aws.Bool(true),
	})
	if err != nil {
		return entities.Order{}, errors.Wrap(err, "get order")
	}
	if len(out.Item) == 0 {
		return entities.Order{}, nil
	}
	var it orderItem
	if err := attributevalue.UnmarshalMap(out.Item, &it); err != nil {
		return entities.Order{}, errors.Wrap(err, "unmarshal order")
	}
	return fromOrderItem(it), nil
}

func (r *OrderDynamoRepository) Update(ctx context.Context, o entities.Order, expectedVersion int64) (entities.Order, error) {
	put, err := r.conditionalPut(o, expectedVersion)
	if err != nil {
		return entities.Order{}, err
	}
	if _, err := r.ddb.PutItem(ctx, &dynamodb.PutItemInput{
		TableName:                 put.TableName,
		Item:                      put.Item,
		ConditionExpression:       put.ConditionExpression,
		ExpressionAttributeNames:  put.ExpressionAttributeNames,
		ExpressionAttributeValues: put.ExpressionAttributeValues,
	}); err != nil {
		return entities.Order{}, conditionFailed(err, "update order")
	}
	o.Version = expectedVersion + 1
	return o, nil
}

// conditionalPut builds the versioned write of o shared with the
// transactional revision writes.
func (r *OrderDynamoRepository) conditionalPut(o entities.Order, expectedVersion int64) (*types.Put, error) {
	o.Version = expectedVersion + 1
	av, err := attributevalue.MarshalMap(toOrderItem(o))
	if err != nil {
		return nil, errors.Wrap(err, "marshal order")
	}
	cond := expression.Name("version").Equal(expression.Value(expectedVersion))
	expr, err := expression.NewBuilder().WithCondition(cond).Build()
	if err != nil {
		return nil, errors.Wrap(err, "build order condition")
	}
	return &types.Put{
		TableName:                 aws.String(r.tableName),
		Item:                      av,
		ConditionExpression:       expr.Condition(),
		ExpressionAttributeNames:  expr.Names(),
		ExpressionAttributeValues: expr.Values(),
	}, nil
}

func (r *OrderDynamoRepository) List(ctx context.Context, filter interfaces.OrderFilter, page interfaces.Page) ([]entities.Order, error) {
	all, err := r.collect(ctx, filter)
	if err != nil {
		return nil, err
	}
	return interfaces.Slice(all, page), nil
}

func (r *OrderDynamoRepository) Count(ctx context.Context, filter interfaces.OrderFilter) (int, error) {
	all, err := r.collect(ctx, filter)
	if err != nil {
		return 0, err
	}
	return len(all), nil
}

func (r *OrderDynamoRepository) ListAll(ctx context.Context) ([]entities.Order, error) {
	return r.collect(ctx, interfaces.OrderFilter{})
}

// collect reads every matching order, newest first. It queries a GSI when
// the filter pins a customer or a single status and scans otherwise.
func (r *OrderDynamoRepository) collect(ctx context.Context, f interfaces.OrderFilter) ([]entities.Order, error) {
	var (
		keyCond *expression.KeyConditionBuilder
		index   string
		conds   []expression.ConditionBuilder
	)
	switch {
	case f.CustomerRef != "":
		kc := expression.Key("customer_ref").Equal(expression.Value(f.CustomerRef))
		keyCond, index = &kc, ordersCustomerIndex
		if f.Status != "" {
			conds = append(conds, expression.Name("status").Equal(expression.Value(string(f.Status))))
		}
	case f.Status != "":
		kc := expression.Key("status").Equal(expression.Value(string(f.Status)))
		keyCond, index = &kc, ordersStatusIndex
	}
	if len(f.Statuses) > 0 {
		ops := make([]expression.OperandBuilder, 0, len(f.Statuses))
		for _, s := range f.Statuses {
			ops = append(ops, expression.Value(string(s)))
		}
		conds = append(conds, expression.Name("status").In(ops[0], ops[1:]...))
	}
	if f.RushOnly {
		conds = append(conds, expression.Name("is_rush_order").Equal(expression.Value(true)))
	}
	if f.DeliveryFrom != nil {
		conds = append(conds, expression.Name("preferred_delivery_date").GreaterThanEqual(expression.Value(formatTime(*f.DeliveryFrom))))
	}
	if f.DeliveryTo != nil {
		conds = append(conds, expression.Name("preferred_delivery_date").LessThanEqual(expression.Value(formatTime(*f.DeliveryTo))))
	}

	raw, err := readAll(ctx, r.ddb, r.tableName, index, keyCond, conds)
	if err != nil {
		return nil, errors.Wrap(err, "list orders")
	}
	out := make([]entities.Order, 0, len(raw))
	for _, item := range raw {
		var it orderItem
		if err := attributevalue.UnmarshalMap(item, &it); err != nil {
			log.WithError(err).Warn("[order][repository] skipping malformed item")
			continue
		}
		out = append(out, fromOrderItem(it))
	}
	sort.SliceStable(out, func(i, j int) bool {
		if !out[i].CreatedAt.Equal(out[j].CreatedAt) {
			return out[i].CreatedAt.After(out[j].CreatedAt)
		}
		return out[i].ID < out[j].ID
	})
	return out, nil
}

func toOrderItem(o entities.Order) orderItem {
	it := orderItem{
		ID:          o.ID,
		CustomerRef: o.CustomerRef,
		ClientProfile: profileSnapshotItem{
			FullName:        o.ClientProfile.FullName,
			PhoneNumber:     o.ClientProfile.PhoneNumber,
			City:            o.ClientProfile.City,
			InstagramHandle: o.ClientProfile.InstagramHandle,
		},
		OrderType:                string(o.OrderType),
		Occasion:                 string(o.Occasion),
		FabricPreference:         o.FabricPreference,
		CollectionID:             o.CollectionID,
		EventDate:                formatTime(o.EventDate),
		PreferredDeliveryDate:    formatTime(o.PreferredDeliveryDate),
		IsRushOrder:              o.IsRushOrder,
		RushMultiplier:           formatMoney(o.RushMultiplier),
		DaysUntilDelivery:        o.DaysUntilDelivery,
		Measurements:             measurementsToItem(o.Measurements),
		BodyConcerns:             o.BodyConcerns,
		ColorPreference:          o.ColorPreference,
		Inspiration:              mediaToItem(o.Inspiration),
		TermsAccepted:            o.TermsAccepted,
		TermsAcceptedAt:          formatTimePtr(o.TermsAcceptedAt),
		RevisionPolicyAccepted:   o.RevisionPolicyAccepted,
		RevisionPolicyAcceptedAt: formatTimePtr(o.RevisionPolicyAcceptedAt),
		BasePrice:                formatMoney(o.BasePrice),
		TotalPrice:               formatMoney(o.TotalPrice),
		DepositAmount:            formatMoney(o.DepositAmount),
		DepositPaid:              o.DepositPaid,
		DepositPaidAt:            formatTimePtr(o.DepositPaidAt),
		FinalPaymentPaid:         o.FinalPaymentPaid,
		FinalPaymentPaidAt:       formatTimePtr(o.FinalPaymentPaidAt),
		DepositCollected:         formatMoney(o.DepositCollected),
		Status:                   string(o.Status),
		StatusChangedBy:          o.StatusChangedBy,
		StatusChangedAt:          formatTimePtr(o.StatusChangedAt),
		RevisionCount:            o.RevisionCount,
		History:                  append([]string{}, o.History...),
		AdminNotes:               o.AdminNotes,
		Version:                  o.Version,
		CreatedAt:                formatTime(o.CreatedAt),
		UpdatedAt:                formatTime(o.UpdatedAt),
	}
	return it
}

func fromOrderItem(it orderItem) entities.Order {
	history := it.History
	if history == nil {
		history = []string{}
	}
	return entities.Order{
		ID:          it.ID,
		CustomerRef: it.CustomerRef,
		ClientProfile: entities.ProfileSnapshot{
			FullName:        it.ClientProfile.FullName,
			PhoneNumber:     it.ClientProfile.PhoneNumber,
			City:            it.ClientProfile.City,
			InstagramHandle: it.ClientProfile.InstagramHandle,
		},
		OrderType:                entities.OrderType(it.OrderType),
		Occasion:                 entities.Occasion(it.Occasion),
		FabricPreference:         it.FabricPreference,
		CollectionID:             it.CollectionID,
		EventDate:                parseTime(it.EventDate),
		PreferredDeliveryDate:    parseTime(it.PreferredDeliveryDate),
		IsRushOrder:              it.IsRushOrder,
		RushMultiplier:           parseMoney(it.RushMultiplier),
		DaysUntilDelivery:        it.DaysUntilDelivery,
		Measurements:             measurementsFromItem(it.Measurements),
		BodyConcerns:             it.BodyConcerns,
		ColorPreference:          it.ColorPreference,
		Inspiration:              mediaFromItem(it.Inspiration),
		TermsAccepted:            it.TermsAccepted,
		TermsAcceptedAt:          parseTimePtr(it.TermsAcceptedAt),
		RevisionPolicyAccepted:   it.RevisionPolicyAccepted,
		RevisionPolicyAcceptedAt: parseTimePtr(it.RevisionPolicyAcceptedAt),
		BasePrice:                parseMoney(it.BasePrice),
		TotalPrice:               parseMoney(it.TotalPrice),
		DepositAmount:            parseMoney(it.DepositAmount),
		DepositPaid:              it.DepositPaid,
		DepositPaidAt:            parseTimePtr(it.DepositPaidAt),
		FinalPaymentPaid:         it.FinalPaymentPaid,
		FinalPaymentPaidAt:       parseTimePtr(it.FinalPaymentPaidAt),
		DepositCollected:         parseMoney(it.DepositCollected),
		Status:                   entities.OrderStatus(it.Status),
		StatusChangedBy:          it.StatusChangedBy,
		StatusChangedAt:          parseTimePtr(it.StatusChangedAt),
		RevisionCount:            it.RevisionCount,
		History:                  history,
		AdminNotes:               it.AdminNotes,
		Version:                  it.Version,
		CreatedAt:                parseTime(it.CreatedAt),
		UpdatedAt:                parseTime(it.UpdatedAt),
	}
}

func measurementsToItem(m entities.Measurements) map[string]float64 {
	out := make(map[string]float64, len(m))
	for k, v := range m {
		out[string(k)] = v
	}
	return out
}

func measurementsFromItem(m map[string]float64) entities.Measurements {
	out := make(entities.Measurements, len(m))
	for k, v := range m {
		out[entities.MeasurementName(k)] = v
	}
	return out
}

func mediaToItem(m *entities.MediaRef) *mediaItem {
	if m == nil {
		return nil
	}
	return &mediaItem{URL: m.URL, StorageID: m.StorageID}
}

func mediaFromItem(m *mediaItem) *entities.MediaRef {
	if m == nil {
		return nil
	}
	return &entities.MediaRef{URL: m.URL, StorageID: m.StorageID}
}
