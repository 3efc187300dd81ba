package database

import (
	"context"
	"sort"

	"atelier_orders/internal/infrastructure/config"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb/types"
	"github.com/pkg/errors"
	log "github.com/sirupsen/logrus"
)

// TableAPI is the subset of the DynamoDB client used for bootstrapping.
type TableAPI interface {
	CreateTable(ctx context.Context, params *dynamodb.CreateTableInput, optFns ...func(*dynamodb.Options)) (*dynamodb.CreateTableOutput, error)
}

type index struct {
	name, hash, rng string
	rngType         types.ScalarAttributeType
}

// TableDefinitions returns the tables and indexes the repositories expect.
func TableDefinitions(c config.Config) []*dynamodb.CreateTableInput {
	return []*dynamodb.CreateTableInput{
		table(c.OrdersTable, "id",
			index{name: "customer_ref-index", hash: "customer_ref", rng: "created_at", rngType: types.ScalarAttributeTypeS},
			index{name: "status-index", hash: "status", rng: "created_at", rngType: types.ScalarAttributeTypeS},
		),
		table(c.RevisionsTable, "id",
			index{name: "order_id-index", hash: "order_id", rng: "revision_number", rngType: types.ScalarAttributeTypeN},
			index{name: "status-index", hash: "status", rng: "created_at", rngType: types.ScalarAttributeTypeS},
			index{name: "customer_ref-index", hash: "customer_ref", rng: "created_at", rngType: types.ScalarAttributeTypeS},
		),
		table(c.ClientsTable, "customer_ref",
			index{name: "phone_number-index", hash: "phone_number"},
		),
		table(c.PaymentsTable, "id",
			index{name: "order_id-index", hash: "order_id"},
		),
	}
}

func table(name, pk string, indexes ...index) *dynamodb.CreateTableInput {
	attrs := map[string]types.ScalarAttributeType{pk: types.ScalarAttributeTypeS}
	in := &dynamodb.CreateTableInput{
		TableName:   aws.String(name),
		BillingMode: types.BillingModePayPerRequest,
		KeySchema: []types.KeySchemaElement{
			{AttributeName: aws.String(pk), KeyType: types.KeyTypeHash},
		},
	}
	for _, ix := range indexes {
		attrs[ix.hash] = types.ScalarAttributeTypeS
		keys := []types.KeySchemaElement{{AttributeName: aws.String(ix.hash), KeyType: types.KeyTypeHash}}
		if ix.rng != "" {
			attrs[ix.rng] = ix.rngType
			keys = append(keys, types.KeySchemaElement{AttributeName: aws.String(ix.rng), KeyType: types.KeyTypeRange})
		}
		in.GlobalSecondaryIndexes = append(in.GlobalSecondaryIndexes, types.GlobalSecondaryIndex{
			IndexName:  aws.String(ix.name),
			KeySchema:  keys,
			Projection: &types.Projection{ProjectionType: types.ProjectionTypeAll},
		})
	}
	for _, name := range sortedKeys(attrs) {
		in.AttributeDefinitions = append(in.AttributeDefinitions, types.AttributeDefinition{
			AttributeName: aws.String(name),
			AttributeType: attrs[name],
		})
	}
	return in
}

func sortedKeys(m map[string]types.ScalarAttributeType) []string {
	keys := make([]string, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}

// EnsureTables creates every missing table. Existing tables are left as
// they are.
func EnsureTables(ctx context.Context, ddb TableAPI, c config.Config) error {
	for _, in := range TableDefinitions(c) {
		logger := log.WithField("table", aws.ToString(in.TableName))
		_, err := ddb.CreateTable(ctx, in)
		var inUse *types.ResourceInUseException
		switch {
		case err == nil:
			logger.Info("[database] table created")
		case errors.As(err, &inUse):
			logger.Debug("[database] table exists")
		default:
			return errors.Wrapf(err, "create table %s", aws.ToString(in.TableName))
		}
	}
	return nil
}
