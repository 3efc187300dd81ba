package database

import (
	"context"

	"atelier_orders/internal/infrastructure/config"

	"github.com/aws/aws-sdk-go-v2/aws"
	awsconfig "github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/credentials"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb"
	"github.com/aws/aws-sdk-go-v2/service/s3"
	"github.com/pkg/errors"
	log "github.com/sirupsen/logrus"
)

// NewAWSConfig builds the shared SDK config. Static credentials default to
// "local" so DynamoDB Local and MinIO work without real keys.
func NewAWSConfig(ctx context.Context, c config.Config) (aws.Config, error) {
	creds := credentials.NewStaticCredentialsProvider(c.AWSAccessKeyID, c.AWSSecretAccessKey, "")
	cfg, err := awsconfig.LoadDefaultConfig(ctx,
		awsconfig.WithRegion(c.AWSRegion),
		awsconfig.WithCredentialsProvider(creds),
	)
	if err != nil {
		return aws.Config{}, errors.Wrap(err, "load aws config")
	}
	return cfg, nil
}

// NewDynamoDBClient honours DYNAMODB_ENDPOINT for local runs.
func NewDynamoDBClient(awsCfg aws.Config, c config.Config) *dynamodb.Client {
	return dynamodb.NewFromConfig(awsCfg, func(o *dynamodb.Options) {
		if c.DynamoDBEndpoint != "" {
			log.WithField("endpoint", c.DynamoDBEndpoint).Info("[database] using custom dynamodb endpoint")
			o.BaseEndpoint = aws.String(c.DynamoDBEndpoint)
		}
	})
}

// NewS3Client honours S3_ENDPOINT and switches to path-style addressing
// when it is set.
func NewS3Client(awsCfg aws.Config, c config.Config) *s3.Client {
	return s3.NewFromConfig(awsCfg, func(o *s3.Options) {
		if c.S3Endpoint != "" {
			log.WithField("endpoint", c.S3Endpoint).Info("[database] using custom s3 endpoint")
			o.BaseEndpoint = aws.String(c.S3Endpoint)
			o.UsePathStyle = true
		}
	})
}
