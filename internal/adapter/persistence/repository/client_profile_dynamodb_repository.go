package repository

import (
	"context"
	"sort"
	"time"

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

const clientsPhoneIndex = "phone_number-index"

type clientProfileItem struct {
	CustomerRef     string `dynamodbav:"customer_ref"`
	FullName        string `dynamodbav:"full_name"`
	PhoneNumber     string `dynamodbav:"phone_number"`
	City            string `dynamodbav:"city"`
	InstagramHandle string `dynamodbav:"instagram_handle"`
	TotalOrders     int    `dynamodbav:"total_orders"`
	CreatedAt       string `dynamodbav:"created_at"`
	UpdatedAt       string `dynamodbav:"updated_at"`
}

// ClientProfileDynamoRepository persists client profiles in DynamoDB.
//
// Table requirements:
//   - PK: customer_ref (string)
//   - GSI phone_number-index: phone_number
type ClientProfileDynamoRepository struct {
	ddb       DynamoAPI
	tableName string
	now       func() time.Time
}

var _ interfaces.IClientProfileRepository = (*ClientProfileDynamoRepository)(nil)

func NewClientProfileDynamoRepository(ddb DynamoAPI, tableName string) *ClientProfileDynamoRepository {
	return &ClientProfileDynamoRepository{ddb: ddb, tableName: tableName, now: time.Now}
}

func (r *ClientProfileDynamoRepository) key(customerRef string) map[string]types.AttributeValue {
	return map[string]types.AttributeValue{
		"customer_ref": &types.AttributeValueMemberS{Value: customerRef},
	}
}

// Upsert overwrites the contact fields. created_at and total_orders are
// only initialised when the item is new.
func (r *ClientProfileDynamoRepository) Upsert(ctx context.Context, p entities.ClientProfile) (entities.ClientProfile, error) {
	updatedAt := p.UpdatedAt
	if updatedAt.IsZero() {
		updatedAt = r.now()
	}
	createdAt := p.CreatedAt
	if createdAt.IsZero() {
		createdAt = updatedAt
	}

	upd := expression.Set(expression.Name("full_name"), expression.Value(p.FullName)).
		Set(expression.Name("phone_number"), expression.Value(p.PhoneNumber)).
		Set(expression.Name("city"), expression.Value(p.City)).
		Set(expression.Name("instagram_handle"), expression.Value(p.InstagramHandle)).
		Set(expression.Name("updated_at"), expression.Value(formatTime(updatedAt))).
		Set(expression.Name("created_at"), expression.IfNotExists(expression.Name("created_at"), expression.Value(formatTime(createdAt)))).
		Set(expression.Name("total_orders"), expression.IfNotExists(expression.Name("total_orders"), expression.Value(0)))
	expr, err := expression.NewBuilder().WithUpdate(upd).Build()
	if err != nil {
		return entities.ClientProfile{}, errors.Wrap(err, "build profile update")
	}

	out, err := r.ddb.UpdateItem(ctx, &dynamodb.UpdateItemInput{
		TableName:                 aws.String(r.tableName),
		Key:                       r.key(p.CustomerRef),
		UpdateExpression:          expr.Update(),
		ExpressionAttributeNames:  expr.Names(),
		ExpressionAttributeValues: expr.Values(),
		ReturnValues:              types.ReturnValueAllNew,
	})
	if err != nil {
		return entities.ClientProfile{}, errors.Wrap(err, "upsert profile")
	}
	var it clientProfileItem
	if err := attributevalue.UnmarshalMap(out.Attributes, &it); err != nil {
		return entities.ClientProfile{}, errors.Wrap(err, "unmarshal profile")
	}
	return fromClientProfileItem(it), nil
}

func (r *ClientProfileDynamoRepository) IncrementOrderCount(ctx context.Context, customerRef string) error {
	upd := expression.Add(expression.Name("total_orders"), expression.Value(1)).
		Set(expression.Name("updated_at"), expression.Value(formatTime(r.now())))
	return r.update(ctx, customerRef, upd, "increment order count")
}

func (r *ClientProfileDynamoRepository) SetOrderCount(ctx context.Context, customerRef string, count int) error {
	upd := expression.Set(expression.Name("total_orders"), expression.Value(count))
	return r.update(ctx, customerRef, upd, "set order count")
}

func (r *ClientProfileDynamoRepository) update(ctx context.Context, customerRef string, upd expression.UpdateBuilder, op string) error {
	cond := expression.AttributeExists(expression.Name("customer_ref"))
	expr, err := expression.NewBuilder().WithUpdate(upd).WithCondition(cond).Build()
	if err != nil {
		return errors.Wrap(err, op)
	}
	_, err = r.ddb.UpdateItem(ctx, &dynamodb.UpdateItemInput{
		TableName:                 aws.String(r.tableName),
		Key:                       r.key(customerRef),
		UpdateExpression:          expr.Update(),
		ConditionExpression:       expr.Condition(),
		ExpressionAttributeNames:  expr.Names(),
		ExpressionAttributeValues: expr.Values(),
	})
	if err != nil {
		var cfe *types.ConditionalCheckFailedException
		if errors.As(err, &cfe) {
			return errors.Errorf("%s: profile %s does not exist", op, customerRef)
		}
		return errors.Wrap(err, op)
	}
	return nil
}

func (r *ClientProfileDynamoRepository) GetByCustomerRef(ctx context.Context, customerRef string) (entities.ClientProfile, error) {
	out, err := r.ddb.GetItem(ctx, &dynamodb.GetItemInput{
		TableName:      aws.String(r.tableName),
		Key:            r.key(customerRef),
		ConsistentRead: aws.Bool(true),
	})
	if err != nil {
		return entities.ClientProfile{}, errors.Wrap(err, "get profile")
	}
	if len(out.Item) == 0 {
		return entities.ClientProfile{}, nil
	}
	var it clientProfileItem
	if err := attributevalue.UnmarshalMap(out.Item, &it); err != nil {
		return entities.ClientProfile{}, errors.Wrap(err, "unmarshal profile")
	}
	return fromClientProfileItem(it), nil
}

func (r *ClientProfileDynamoRepository) GetByPhoneNumber(ctx context.Context, phoneNumber string) (entities.ClientProfile, error) {
	kc := expression.Key("phone_number").Equal(expression.Value(phoneNumber))
	expr, err := expression.NewBuilder().WithKeyCondition(kc).Build()
	if err != nil {
		return entities.ClientProfile{}, errors.Wrap(err, "build phone query")
	}
	out, err := r.ddb.Query(ctx, &dynamodb.QueryInput{
		TableName:                 aws.String(r.tableName),
		IndexName:                 aws.String(clientsPhoneIndex),
		KeyConditionExpression:    expr.KeyCondition(),
		ExpressionAttributeNames:  expr.Names(),
		ExpressionAttributeValues: expr.Values(),
		Limit:                     aws.Int32(1),
	})
	if err != nil {
		return entities.ClientProfile{}, errors.Wrap(err, "query profile by phone")
	}
	if len(out.Items) == 0 {
		return entities.ClientProfile{}, nil
	}
	var it clientProfileItem
	if err := attributevalue.UnmarshalMap(out.Items[0], &it); err != nil {
		return entities.ClientProfile{}, errors.Wrap(err, "unmarshal profile")
	}
	return fromClientProfileItem(it), nil
}

func (r *ClientProfileDynamoRepository) List(ctx context.Context, page interfaces.Page) ([]entities.ClientProfile, error) {
	all, err := r.all(ctx)
	if err != nil {
		return nil, err
	}
	return interfaces.Slice(all, page), nil
}

func (r *ClientProfileDynamoRepository) Count(ctx context.Context) (int, error) {
	all, err := r.all(ctx)
	if err != nil {
		return 0, err
	}
	return len(all), nil
}

func (r *ClientProfileDynamoRepository) all(ctx context.Context) ([]entities.ClientProfile, error) {
	raw, err := readAll(ctx, r.ddb, r.tableName, "", nil, nil)
	if err != nil {
		return nil, errors.Wrap(err, "list profiles")
	}
	out := make([]entities.ClientProfile, 0, len(raw))
	for _, item := range raw {
		var it clientProfileItem
		if err := attributevalue.UnmarshalMap(item, &it); err != nil {
			log.WithError(err).Warn("[client_profile][repository] skipping malformed item")
			continue
		}
		out = append(out, fromClientProfileItem(it))
	}
	sort.SliceStable(out, func(i, j int) bool {
		if !out[i].UpdatedAt.Equal(out[j].UpdatedAt) {
			return out[i].UpdatedAt.After(out[j].UpdatedAt)
		}
		return out[i].CustomerRef < out[j].CustomerRef
	})
	return out, nil
}

func fromClientProfileItem(it clientProfileItem) entities.ClientProfile {
	return entities.ClientProfile{
		CustomerRef:     it.CustomerRef,
		FullName:        it.FullName,
		PhoneNumber:     it.PhoneNumber,
		City:            it.City,
		InstagramHandle: it.InstagramHandle,
		TotalOrders:     it.TotalOrders,
		CreatedAt:       parseTime(it.CreatedAt),
		UpdatedAt:       parseTime(it.UpdatedAt),
	}
}
