package repository

import (
	"context"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/feature/dynamodb/expression"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb/types"
	"github.com/pkg/errors"
)

// readAll pages through a Query on index (when keyCond is set) or a Scan of
// the table, applying conds as a filter expression.
func readAll(ctx context.Context, ddb DynamoAPI, table, index string, keyCond *expression.KeyConditionBuilder, conds []expression.ConditionBuilder) ([]map[string]types.AttributeValue, error) {
	b := expression.NewBuilder()
	if keyCond != nil {
		b = b.WithKeyCondition(*keyCond)
	}
	if filter, ok := joinConditions(conds); ok {
		b = b.WithFilter(filter)
	}

	var (
		expr expression.Expression
		err  error
	)
	if keyCond != nil || len(conds) > 0 {
		if expr, err = b.Build(); err != nil {
			return nil, errors.Wrap(err, "build expression")
		}
	}

	var items []map[string]types.AttributeValue
	if keyCond != nil {
		in := &dynamodb.QueryInput{
			TableName:                 aws.String(table),
			IndexName:                 aws.String(index),
			KeyConditionExpression:    expr.KeyCondition(),
			FilterExpression:          expr.Filter(),
			ExpressionAttributeNames:  expr.Names(),
			ExpressionAttributeValues: expr.Values(),
		}
		p := dynamodb.NewQueryPaginator(ddb, in)
		for p.HasMorePages() {
			out, err := p.NextPage(ctx)
			if err != nil {
				return nil, err
			}
			items = append(items, out.Items...)
		}
		return items, nil
	}

	in := &dynamodb.ScanInput{TableName: aws.String(table)}
	if len(conds) > 0 {
		in.FilterExpression = expr.Filter()
		in.ExpressionAttributeNames = expr.Names()
		in.ExpressionAttributeValues = expr.Values()
	}
	p := dynamodb.NewScanPaginator(ddb, in)
	for p.HasMorePages() {
		out, err := p.NextPage(ctx)
		if err != nil {
			return nil, err
		}
		items = append(items, out.Items...)
	}
	return items, nil
}

func joinConditions(conds []expression.ConditionBuilder) (expression.ConditionBuilder, bool) {
	switch len(conds) {
	case 0:
		return expression.ConditionBuilder{}, false
	case 1:
		return conds[0], true
	}
	return expression.And(conds[0], conds[1], conds[2:]...), true
}
