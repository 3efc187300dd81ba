package main

import (
	"context"

	"atelier_orders/internal/adapter/http/handlers"
	"atelier_orders/internal/adapter/http/routes"
	"atelier_orders/internal/adapter/persistence/memory"
	"atelier_orders/internal/adapter/persistence/repository"
	"atelier_orders/internal/infrastructure/config"
	"atelier_orders/internal/infrastructure/database"
	"atelier_orders/internal/infrastructure/notifications"
	"atelier_orders/internal/infrastructure/payments"
	"atelier_orders/internal/infrastructure/storage"
	"atelier_orders/internal/usecase"
	"atelier_orders/internal/usecase/interfaces"

	"github.com/gin-gonic/gin"
	"github.com/pkg/errors"
	log "github.com/sirupsen/logrus"
)

type repositories struct {
	orders    interfaces.IOrderRepository
	revisions interfaces.IRevisionRepository
	profiles  interfaces.IClientProfileRepository
	payments  interfaces.IBillingPaymentRepository
	storage   interfaces.IContentStorage
}

// application is the wired service: repositories, collaborators and use
// cases for one configuration.
type application struct {
	cfg       config.Config
	notifier  *usecase.Notifier
	orders    *usecase.OrderUseCase
	revisions *usecase.RevisionUseCase
	profiles  *usecase.ClientProfileUseCase
	payments  *usecase.PaymentUseCase
	closers   []func() error
}

func newApplication(ctx context.Context, cfg config.Config) (*application, error) {
	app := &application{cfg: cfg}

	repos, err := app.repositories(ctx)
	if err != nil {
		return nil, err
	}

	app.notifier = usecase.NewNotifier(app.dispatcher(), cfg.AdminURL)
	app.revisions = usecase.NewRevisionUseCase(repos.orders, repos.revisions, app.notifier, nil)
	app.profiles = usecase.NewClientProfileUseCase(repos.profiles, repos.orders, nil)
	app.orders = usecase.NewOrderUseCase(repos.orders, app.revisions, app.profiles, repos.storage, app.notifier, usecase.OrderUseCaseConfig{
		UploadAttempts:   cfg.UploadAttempts,
		UploadRetryDelay: cfg.UploadRetryDelay,
	})
	app.payments = usecase.NewPaymentUseCase(repos.payments, app.gateway(), app.orders, app.revisions, usecase.PaymentConfig{
		MockMode:        cfg.PaymentGatewayMock,
		SandboxToken:    cfg.SandboxPayments(),
		TestPayerEmail:  cfg.MercadoPagoTestPayerEmail,
		TestPayerUserID: cfg.MercadoPagoTestPayerUserID,
	})
	return app, nil
}

func (a *application) repositories(ctx context.Context) (repositories, error) {
	if a.cfg.StorageBackend == config.StorageMemory {
		log.Warn("[main] using in-memory storage; data is lost on exit")
		store := memory.NewStore()
		return repositories{
			orders:    store.Orders(),
			revisions: store.Revisions(),
			profiles:  store.ClientProfiles(),
			payments:  store.Payments(),
			storage:   memory.NewContentStorage("http://localhost:" + a.cfg.Port + "/media"),
		}, nil
	}

	awsCfg, err := database.NewAWSConfig(ctx, a.cfg)
	if err != nil {
		return repositories{}, err
	}
	ddb := database.NewDynamoDBClient(awsCfg, a.cfg)
	orders := repository.NewOrderDynamoRepository(ddb, a.cfg.OrdersTable)
	repos := repositories{
		orders:    orders,
		revisions: repository.NewRevisionDynamoRepository(ddb, a.cfg.RevisionsTable, orders),
		profiles:  repository.NewClientProfileDynamoRepository(ddb, a.cfg.ClientsTable),
		payments:  repository.NewBillingPaymentDynamoRepository(ddb, a.cfg.PaymentsTable),
	}
	if a.cfg.S3Bucket != "" {
		repos.storage = storage.NewS3ContentStorage(database.NewS3Client(awsCfg, a.cfg), a.cfg.S3Bucket, a.cfg.AWSRegion, a.cfg.S3PublicBaseURL)
	} else {
		log.Warn("[main] S3_BUCKET not set; photo uploads will fail")
	}
	return repos, nil
}

func (a *application) dispatcher() interfaces.INotificationDispatcher {
	if a.cfg.AMQPURL == "" {
		log.Info("[main] AMQP_URL not set; notifications are logged only")
		return notifications.NewLogDispatcher(nil)
	}
	d, err := notifications.DialAMQPDispatcher(a.cfg.AMQPURL, a.cfg.NotificationsExchange, a.cfg.OperatorChatIDs)
	if err != nil {
		log.WithError(err).Error("[main] notification broker unavailable; notifications are logged only")
		return notifications.NewLogDispatcher(nil)
	}
	a.closers = append(a.closers, d.Close)
	return d
}

func (a *application) gateway() interfaces.IPaymentGateway {
	if a.cfg.PaymentGatewayMock {
		log.Info("[main] payment gateway mock mode enabled")
		return nil
	}
	g, err := payments.NewMercadoPagoGateway(a.cfg.MercadoPagoAccessToken)
	if err != nil {
		log.WithError(err).Warn("[main] Mercado Pago gateway not configured")
		return nil
	}
	return g
}

func (a *application) router() *gin.Engine {
	return routes.NewRouter(routes.Handlers{
		Orders:    handlers.NewOrderHandler(a.orders),
		Revisions: handlers.NewRevisionHandler(a.revisions, a.orders),
		Clients:   handlers.NewClientProfileHandler(a.profiles),
		Payments:  handlers.NewBillingPaymentHandler(a.payments, a.orders, a.revisions, a.cfg.PaymentGatewayMock),
	})
}

// close waits for in-flight notifications and repairs, then releases
// connections.
func (a *application) close() error {
	a.notifier.Drain()
	var errs []error
	for _, c := range a.closers {
		if err := c(); err != nil {
			errs = append(errs, err)
		}
	}
	if len(errs) > 0 {
		return errors.Errorf("close: %v", errs)
	}
	return nil
}
