package database

import (
	"context"
	"testing"

	"atelier_orders/internal/infrastructure/config"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb/types"
	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type stubTables struct {
	created []string
	exists  map[string]bool
	err     error
}

func (s *stubTables) CreateTable(_ context.Context, in *dynamodb.CreateTableInput, _ ...func(*dynamodb.Options)) (*dynamodb.CreateTableOutput, error) {
	name := aws.ToString(in.TableName)
	if s.err != nil {
		return nil, s.err
	}
	if s.exists[name] {
		return nil, &types.ResourceInUseException{Message: aws.String("exists")}
	}
	s.created = append(s.created, name)
	return &dynamodb.CreateTableOutput{}, nil
}

func testConfig() config.Config {
	return config.Config{OrdersTable: "orders", RevisionsTable: "revisions", ClientsTable: "client_profiles", PaymentsTable: "payments"}
}

func TestTableDefinitions_RevisionIndexes(t *testing.T) {
	defs := TableDefinitions(testConfig())
	require.Len(t, defs, 4)

	revisions := defs[1]
	assert.Equal(t, "revisions", aws.ToString(revisions.TableName))
	require.Len(t, revisions.GlobalSecondaryIndexes, 3)

	attrs := map[string]types.ScalarAttributeType{}
	for _, a := range revisions.AttributeDefinitions {
		attrs[aws.ToString(a.AttributeName)] = a.AttributeType
	}
	assert.Equal(t, types.ScalarAttributeTypeN, attrs["revision_number"])
	assert.Equal(t, types.ScalarAttributeTypeS, attrs["order_id"])
	assert.Len(t, attrs, 6, "id, order_id, revision_number, status, created_at, customer_ref")

	clients := defs[2]
	assert.Equal(t, "customer_ref", aws.ToString(clients.KeySchema[0].AttributeName))
}

func TestEnsureTables(t *testing.T) {
	t.Run("skips existing tables", func(t *testing.T) {
		ddb := &stubTables{exists: map[string]bool{"orders": true}}
		require.NoError(t, EnsureTables(context.Background(), ddb, testConfig()))
		assert.Equal(t, []string{"revisions", "client_profiles", "payments"}, ddb.created)
	})

	t.Run("other errors stop", func(t *testing.T) {
		ddb := &stubTables{err: errors.New("access denied")}
		err := EnsureTables(context.Background(), ddb, testConfig())
		require.Error(t, err)
		assert.Contains(t, err.Error(), "create table orders")
	})
}
