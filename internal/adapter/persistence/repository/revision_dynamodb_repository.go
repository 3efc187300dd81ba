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
	revisionsOrderIndex    = "order_id-index"
	revisionsStatusIndex   = "status-index"
	revisionsCustomerIndex = "customer_ref-index"
)

type revisionItem struct {
	ID             string `dynamodbav:"id"`
	OrderID        string `dynamodbav:"order_id"`
	CustomerRef    string `dynamodbav:"customer_ref"`
	RevisionNumber int    `dynamodbav:"revision_number"`

	Measurements    map[string]float64 `dynamodbav:"measurements"`
	Inspiration     *mediaItem         `dynamodbav:"inspiration,omitempty"`
	BodyConcerns    string             `dynamodbav:"body_concerns"`
	ColorPreference string             `dynamodbav:"color_preference"`

	IsFree            bool   `dynamodbav:"is_free"`
	RevisionFee       string `dynamodbav:"revision_fee"`
	RevisionFeePaid   bool   `dynamodbav:"revision_fee_paid"`
	RevisionFeePaidAt string `dynamodbav:"revision_fee_paid_at,omitempty"`

	Status         string `dynamodbav:"status"`
	RevisionReason string `dynamodbav:"revision_reason"`
	ApprovedBy     string `dynamodbav:"approved_by,omitempty"`
	ApprovedAt     string `dynamodbav:"approved_at,omitempty"`
	AdminNotes     string `dynamodbav:"admin_notes"`

	CreatedAt string `dynamodbav:"created_at"`
	UpdatedAt string `dynamodbav:"updated_at"`
}

// RevisionDynamoRepository persists the revision ledger in DynamoDB.
//
// Table requirements:
//   - PK: id (string)
//   - GSI order_id-index: order_id / revision_number
//   - GSI status-index: status / created_at
//   - GSI customer_ref-index: customer_ref / created_at
//
// Writes that touch the owning order go through TransactWriteItems against
// the orders table.
type RevisionDynamoRepository struct {
	ddb       DynamoAPI
	tableName string
	orders    *OrderDynamoRepository
}

var _ interfaces.IRevisionRepository = (*RevisionDynamoRepository)(nil)

func NewRevisionDynamoRepository(ddb DynamoAPI, tableName string, orders *OrderDynamoRepository) *RevisionDynamoRepository {
	return &RevisionDynamoRepository{ddb: ddb, tableName: tableName, orders: orders}
}

func (r *RevisionDynamoRepository) GetByID(ctx context.Context, id string) (entities.Revision, error) {
	out, err := r.ddb.GetItem(ctx, &dynamodb.GetItemInput{
		TableName:      aws.String(r.tableName),
		Key:            keyID(id),
		ConsistentRead: aws.Bool(true),
	})
	if err != nil {
		return entities.Revision{}, errors.Wrap(err, "get revision")
	}
	if len(out.Item) == 0 {
		return entities.Revision{}, nil
	}
	var it revisionItem
	if err := attributevalue.UnmarshalMap(out.Item, &it); err != nil {
		return entities.Revision{}, errors.Wrap(err, "unmarshal revision")
	}
	return fromRevisionItem(it), nil
}

func (r *RevisionDynamoRepository) ListByOrderID(ctx context.Context, orderID string) ([]entities.Revision, error) {
	kc := expression.Key("order_id").Equal(expression.Value(orderID))
	raw, err := readAll(ctx, r.ddb, r.tableName, revisionsOrderIndex, &kc, nil)
	if err != nil {
		return nil, errors.Wrap(err, "list revisions by order")
	}
	out := r.decode(raw)
	sort.SliceStable(out, func(i, j int) bool {
		return out[i].RevisionNumber < out[j].RevisionNumber
	})
	return out, nil
}

func (r *RevisionDynamoRepository) List(ctx context.Context, filter interfaces.RevisionFilter, page interfaces.Page) ([]entities.Revision, error) {
	all, err := r.collect(ctx, filter)
	if err != nil {
		return nil, err
	}
	return interfaces.Slice(all, page), nil
}

func (r *RevisionDynamoRepository) Count(ctx context.Context, filter interfaces.RevisionFilter) (int, error) {
	all, err := r.collect(ctx, filter)
	if err != nil {
		return 0, err
	}
	return len(all), nil
}

func (r *RevisionDynamoRepository) collect(ctx context.Context, f interfaces.RevisionFilter) ([]entities.Revision, error) {
	var (
		keyCond *expression.KeyConditionBuilder
		index   string
		conds   []expression.ConditionBuilder
	)
	switch {
	case f.CustomerRef != "":
		kc := expression.Key("customer_ref").Equal(expression.Value(f.CustomerRef))
		keyCond, index = &kc, revisionsCustomerIndex
		if f.Status != "" {
			conds = append(conds, expression.Name("status").Equal(expression.Value(string(f.Status))))
		}
	case f.Status != "":
		kc := expression.Key("status").Equal(expression.Value(string(f.Status)))
		keyCond, index = &kc, revisionsStatusIndex
	}

	raw, err := readAll(ctx, r.ddb, r.tableName, index, keyCond, conds)
	if err != nil {
		return nil, errors.Wrap(err, "list revisions")
	}
	out := r.decode(raw)
	sort.SliceStable(out, func(i, j int) bool {
		if !out[i].CreatedAt.Equal(out[j].CreatedAt) {
			return out[i].CreatedAt.After(out[j].CreatedAt)
		}
		return out[i].ID < out[j].ID
	})
	return out, nil
}

func (r *RevisionDynamoRepository) decode(raw []map[string]types.AttributeValue) []entities.Revision {
	out := make([]entities.Revision, 0, len(raw))
	for _, item := range raw {
		var it revisionItem
		if err := attributevalue.UnmarshalMap(item, &it); err != nil {
			log.WithError(err).Warn("[revision][repository] skipping malformed item")
			continue
		}
		out = append(out, fromRevisionItem(it))
	}
	return out
}

func (r *RevisionDynamoRepository) CreateWithOrder(ctx context.Context, rev entities.Revision, o entities.Order, expectedOrderVersion int64) (entities.Revision, entities.Order, error) {
	av, err := attributevalue.MarshalMap(toRevisionItem(rev))
	if err != nil {
		return entities.Revision{}, entities.Order{}, errors.Wrap(err, "marshal revision")
	}
	orderPut, err := r.orders.conditionalPut(o, expectedOrderVersion)
	if err != nil {
		return entities.Revision{}, entities.Order{}, err
	}

	_, err = r.ddb.TransactWriteItems(ctx, &dynamodb.TransactWriteItemsInput{
		TransactItems: []types.TransactWriteItem{
			{Put: &types.Put{
				TableName:                aws.String(r.tableName),
				Item:                     av,
				ConditionExpression:      aws.String("attribute_not_exists(#id)"),
				ExpressionAttributeNames: map[string]string{"#id": "id"},
			}},
			{Put: orderPut},
		},
	})
	if err != nil {
		return entities.Revision{}, entities.Order{}, conditionFailed(err, "create revision")
	}
	o.Version = expectedOrderVersion + 1
	return rev, o, nil
}

func (r *RevisionDynamoRepository) Update(ctx context.Context, rev entities.Revision, expectedStatus entities.RevisionStatus) (entities.Revision, error) {
	put, err := r.statusGuardedPut(rev, expectedStatus)
	if err != nil {
		return entities.Revision{}, err
	}
	if _, err := r.ddb.PutItem(ctx, &dynamodb.PutItemInput{
		TableName:                 put.TableName,
		Item:                      put.Item,
		ConditionExpression:       put.ConditionExpression,
		ExpressionAttributeNames:  put.ExpressionAttributeNames,
		ExpressionAttributeValues: put.ExpressionAttributeValues,
	}); err != nil {
		return entities.Revision{}, conditionFailed(err, "update revision")
	}
	return rev, nil
}

func (r *RevisionDynamoRepository) UpdateWithOrder(ctx context.Context, rev entities.Revision, expectedStatus entities.RevisionStatus, o entities.Order, expectedOrderVersion int64) (entities.Revision, entities.Order, error) {
	revPut, err := r.statusGuardedPut(rev, expectedStatus)
	if err != nil {
		return entities.Revision{}, entities.Order{}, err
	}
	orderPut, err := r.orders.conditionalPut(o, expectedOrderVersion)
	if err != nil {
		return entities.Revision{}, entities.Order{}, err
	}

	_, err = r.ddb.TransactWriteItems(ctx, &dynamodb.TransactWriteItemsInput{
		TransactItems: []types.TransactWriteItem{
			{Put: revPut},
			{Put: orderPut},
		},
	})
	if err != nil {
		return entities.Revision{}, entities.Order{}, conditionFailed(err, "update revision with order")
	}
	o.Version = expectedOrderVersion + 1
	return rev, o, nil
}

func (r *RevisionDynamoRepository) statusGuardedPut(rev entities.Revision, expectedStatus entities.RevisionStatus) (*types.Put, error) {
	av, err := attributevalue.MarshalMap(toRevisionItem(rev))
	if err != nil {
		return nil, errors.Wrap(err, "marshal revision")
	}
	cond := expression.AttributeExists(expression.Name("id")).
		And(expression.Name("status").Equal(expression.Value(string(expectedStatus))))
	expr, err := expression.NewBuilder().WithCondition(cond).Build()
	if err != nil {
		return nil, errors.Wrap(err, "build revision condition")
	}
	return &types.Put{
		TableName:                 aws.String(r.tableName),
		Item:                      av,
		ConditionExpression:       expr.Condition(),
		ExpressionAttributeNames:  expr.Names(),
		ExpressionAttributeValues: expr.Values(),
	}, nil
}

func toRevisionItem(r entities.Revision) revisionItem {
	return revisionItem{
		ID:                r.ID,
		OrderID:           r.OrderID,
		CustomerRef:       r.CustomerRef,
		RevisionNumber:    r.RevisionNumber,
		Measurements:      measurementsToItem(r.Measurements),
		Inspiration:       mediaToItem(r.Inspiration),
		BodyConcerns:      r.BodyConcerns,
		ColorPreference:   r.ColorPreference,
		IsFree:            r.IsFree,
		RevisionFee:       formatMoney(r.RevisionFee),
		RevisionFeePaid:   r.RevisionFeePaid,
		RevisionFeePaidAt: formatTimePtr(r.RevisionFeePaidAt),
		Status:            string(r.Status),
		RevisionReason:    r.RevisionReason,
		ApprovedBy:        r.ApprovedBy,
		ApprovedAt:        formatTimePtr(r.ApprovedAt),
		AdminNotes:        r.AdminNotes,
		CreatedAt:         formatTime(r.CreatedAt),
		UpdatedAt:         formatTime(r.UpdatedAt),
	}
}

func fromRevisionItem(it revisionItem) entities.Revision {
	return entities.Revision{
		ID:                it.ID,
		OrderID:           it.OrderID,
		CustomerRef:       it.CustomerRef,
		RevisionNumber:    it.RevisionNumber,
		Measurements:      measurementsFromItem(it.Measurements),
		Inspiration:       mediaFromItem(it.Inspiration),
		BodyConcerns:      it.BodyConcerns,
		ColorPreference:   it.ColorPreference,
		IsFree:            it.IsFree,
		RevisionFee:       parseMoney(it.RevisionFee),
		RevisionFeePaid:   it.RevisionFeePaid,
		RevisionFeePaidAt: parseTimePtr(it.RevisionFeePaidAt),
		Status:            entities.RevisionStatus(it.Status),
		RevisionReason:    it.RevisionReason,
		ApprovedBy:        it.ApprovedBy,
		ApprovedAt:        parseTimePtr(it.ApprovedAt),
		AdminNotes:        it.AdminNotes,
		CreatedAt:         parseTime(it.CreatedAt),
		UpdatedAt:         parseTime(it.UpdatedAt),
	}
}
