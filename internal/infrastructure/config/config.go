// Package config loads service settings from the environment. A .env file
// in the working directory is read first when present.
package config

import (
	"strings"
	"time"

	_ "github.com/joho/godotenv/autoload"
	"github.com/kelseyhightower/envconfig"
	"github.com/pkg/errors"
	log "github.com/sirupsen/logrus"
)

const (
	StorageDynamoDB = "dynamodb"
	StorageMemory   = "memory"
)

type Config struct {
	Port      string `envconfig:"PORT" default:"8080"`
	LogLevel  string `envconfig:"LOG_LEVEL" default:"info"`
	LogFormat string `envconfig:"LOG_FORMAT" default:"json"`

	StorageBackend string `envconfig:"STORAGE_BACKEND" default:"dynamodb"`

	AWSRegion          string `envconfig:"AWS_REGION" default:"us-east-1"`
	AWSAccessKeyID     string `envconfig:"AWS_ACCESS_KEY_ID" default:"local"`
	AWSSecretAccessKey string `envconfig:"AWS_SECRET_ACCESS_KEY" default:"local"`
	DynamoDBEndpoint   string `envconfig:"DYNAMODB_ENDPOINT"`
	OrdersTable        string `envconfig:"ORDERS_TABLE" default:"orders"`
	RevisionsTable     string `envconfig:"REVISIONS_TABLE" default:"revisions"`
	ClientsTable       string `envconfig:"CLIENTS_TABLE" default:"client_profiles"`
	PaymentsTable      string `envconfig:"PAYMENTS_TABLE" default:"payments"`

	S3Bucket         string        `envconfig:"S3_BUCKET"`
	S3Endpoint       string        `envconfig:"S3_ENDPOINT"`
	S3PublicBaseURL  string        `envconfig:"S3_PUBLIC_BASE_URL"`
	UploadAttempts   int           `envconfig:"UPLOAD_ATTEMPTS" default:"3"`
	UploadRetryDelay time.Duration `envconfig:"UPLOAD_RETRY_DELAY" default:"2s"`

	AMQPURL               string   `envconfig:"AMQP_URL"`
	NotificationsExchange string   `envconfig:"NOTIFICATIONS_EXCHANGE" default:"atelier.notifications"`
	OperatorChatIDs       []string `envconfig:"OPERATOR_CHAT_IDS"`
	AdminURL              string   `envconfig:"ADMIN_URL" default:"http://localhost:3000/admin"`

	MercadoPagoAccessToken     string `envconfig:"MERCADOPAGO_ACCESS_TOKEN"`
	MercadoPagoTestPayerEmail  string `envconfig:"MERCADOPAGO_TEST_PAYER_EMAIL"`
	MercadoPagoTestPayerUserID string `envconfig:"MERCADOPAGO_TEST_PAYER_USER_ID"`
	PaymentGatewayMock         bool   `envconfig:"PAYMENT_GATEWAY_MOCK" default:"false"`
}

func Load() (Config, error) {
	var c Config
	if err := envconfig.Process("", &c); err != nil {
		return Config{}, errors.Wrap(err, "read environment")
	}
	c.StorageBackend = strings.ToLower(strings.TrimSpace(c.StorageBackend))
	switch c.StorageBackend {
	case StorageDynamoDB, StorageMemory:
	default:
		return Config{}, errors.Errorf("unsupported STORAGE_BACKEND %q", c.StorageBackend)
	}
	if c.UploadAttempts < 1 {
		return Config{}, errors.New("UPLOAD_ATTEMPTS must be at least 1")
	}
	return c, nil
}

// SandboxPayments reports whether the Mercado Pago token is a test token.
func (c Config) SandboxPayments() bool {
	return strings.HasPrefix(strings.TrimSpace(c.MercadoPagoAccessToken), "TEST-")
}

// SetupLogging applies LOG_LEVEL and LOG_FORMAT to the standard logrus
// logger.
func SetupLogging(c Config) {
	if strings.EqualFold(c.LogFormat, "text") {
		log.SetFormatter(&log.TextFormatter{FullTimestamp: true})
	} else {
		log.SetFormatter(&log.JSONFormatter{})
	}
	level, err := log.ParseLevel(c.LogLevel)
	if err != nil {
		log.WithError(err).Warn("[config] unknown LOG_LEVEL; using info")
		level = log.InfoLevel
	}
	log.SetLevel(level)
}
