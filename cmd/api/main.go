package main

import (
	"context"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	_ "atelier_orders/docs"
	"atelier_orders/internal/infrastructure/config"
	"atelier_orders/internal/infrastructure/database"

	"github.com/gin-gonic/gin"
	"github.com/pkg/errors"
	log "github.com/sirupsen/logrus"
	"github.com/urfave/cli/v2"
)

// @title           Atelier Orders API
// @version         1.0
// @description     Custom garment orders: rush pricing, deposits, revisions and client profiles.

// @host localhost:8080

// @BasePath  /v1

// @securityDefinitions.apikey CustomerRef
// @in header
// @name X-Customer-Ref

// @securityDefinitions.apikey ActorRef
// @in header
// @name X-Actor-Ref

const shutdownTimeout = 20 * time.Second

func main() {
	app := &cli.App{
		Name:   "atelier-orders",
		Usage:  "order lifecycle and revision pricing service",
		Action: serve,
		Commands: []*cli.Command{
			{
				Name:   "serve",
				Usage:  "run the HTTP API",
				Action: serve,
			},
			{
				Name:  "repair-history",
				Usage: "append the missing originating revision to orders",
				Flags: []cli.Flag{
					&cli.StringFlag{Name: "order", Usage: "repair only this order id"},
				},
				Action: repairHistory,
			},
			{
				Name:   "create-tables",
				Usage:  "create the DynamoDB tables and indexes when missing",
				Action: createTables,
			},
		},
	}

	if err := app.Run(os.Args); err != nil {
		log.WithError(err).Fatal("[main] exited with error")
	}
}

func loadConfig() (config.Config, error) {
	cfg, err := config.Load()
	if err != nil {
		return config.Config{}, err
	}
	config.SetupLogging(cfg)
	return cfg, nil
}

func serve(c *cli.Context) error {
	cfg, err := loadConfig()
	if err != nil {
		return err
	}
	if lvl := log.GetLevel(); lvl < log.DebugLevel {
		gin.SetMode(gin.ReleaseMode)
	}

	ctx, stop := signal.NotifyContext(c.Context, os.Interrupt, syscall.SIGTERM)
	defer stop()

	app, err := newApplication(ctx, cfg)
	if err != nil {
		return err
	}

	srv := &http.Server{
		Addr:              ":" + cfg.Port,
		Handler:           app.router(),
		ReadHeaderTimeout: 10 * time.Second,
	}
	serveErr := make(chan error, 1)
	go func() {
		log.WithField("port", cfg.Port).Info("[main] listening")
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			serveErr <- err
		}
		close(serveErr)
	}()

	select {
	case err := <-serveErr:
		if err != nil {
			return errors.Wrap(err, "http server")
		}
	case <-ctx.Done():
		log.Info("[main] shutting down")
	}

	shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		log.WithError(err).Error("[main] http shutdown")
	}
	return app.close()
}

func repairHistory(c *cli.Context) error {
	cfg, err := loadConfig()
	if err != nil {
		return err
	}
	app, err := newApplication(c.Context, cfg)
	if err != nil {
		return err
	}
	defer func() {
		if err := app.close(); err != nil {
			log.WithError(err).Warn("[main] close")
		}
	}()

	if id := c.String("order"); id != "" {
		o, err := app.orders.RepairHistory(c.Context, id)
		if err != nil {
			return err
		}
		log.WithFields(log.Fields{"order_id": o.ID, "history": len(o.History)}).Info("[main] order history repaired")
		return nil
	}
	n, err := app.orders.RepairAllHistories(c.Context)
	log.WithField("repaired", n).Info("[main] history repair done")
	return err
}

func createTables(c *cli.Context) error {
	cfg, err := loadConfig()
	if err != nil {
		return err
	}
	awsCfg, err := database.NewAWSConfig(c.Context, cfg)
	if err != nil {
		return err
	}
	return database.EnsureTables(c.Context, database.NewDynamoDBClient(awsCfg, cfg), cfg)
}
