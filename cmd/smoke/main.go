package main

import (
	"context"
	"flag"
	"fmt"
	stdlog "log"
	"os"
	"os/signal"
	"syscall"

	"github.com/AlekSi/pointer"
	"github.com/google/uuid"
	"golang.org/x/sync/errgroup"
	"uberdirect/internal/pkg/config"
	"uberdirect/internal/pkg/dotenv"
	"uberdirect/internal/pkg/uberclient"
	"uberdirect/pkg/logger"
	"uberdirect/pkg/logger/zap_adapter"
	"uberdirect/pkg/uberdirect"
	"uberdirect/pkg/uberdirect/models"
)

const manifestTotalValue = 2500

var flags = []dotenv.Flag{
	{Name: "client_id", Env: "client_id", Usage: "Uber Direct client id"},
	{Name: "client_secret", Env: "client_secret", Usage: "Uber Direct client secret"},
	{Name: "customer_id", Env: "customer_id", Usage: "Uber Direct customer id"},
	{Name: "api-url", Env: "UBER_API_URL", Usage: "API host, e.g. http://localhost:8080 for the sandbox"},
	{Name: "auth-url", Env: "UBER_AUTH_URL", Usage: "OAuth host"},
}

func main() {
	if !smoke(flag.CommandLine, os.Args[1:]) {
		os.Exit(1)
	}
}

// smoke возвращает false, если прогон упал. os.Exit вызывается уже после Sync логгера.
func smoke(flagSet *flag.FlagSet, args []string) bool {
	if err := dotenv.LoadArgs(flagSet, args, ".env", flags...); err != nil {
		stdlog.Printf("failed to load .env file: %v", err)
		return false
	}

	cfg, err := config.LoadSmoke()
	if err != nil {
		stdlog.Printf("load config: %v", err)
		return false
	}

	zapLogger, err := zap_adapter.NewZapAdapter(cfg.LogLevel)
	if err != nil {
		stdlog.Printf("failed to initialize logger: %v", err)
		return false
	}
	defer func() {
		if err := zapLogger.Sync(); err != nil {
			stdlog.Printf("failed to sync logger: %v", err)
		}
	}()

	var appLogger logger.Logger = zapLogger
	mainLog := appLogger.With()

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGTERM, syscall.SIGINT)
	defer stop()

	if err := run(ctx, appLogger, cfg); err != nil {
		mainLog.Error("smoke failed", logger.NewField("error", err))
		return false
	}
	mainLog.Info("smoke passed")
	return true
}

func run(ctx context.Context, log logger.Logger, cfg *config.Smoke) error {
	client, creds, err := uberclient.Connect(ctx, log, cfg)
	if err != nil {
		return err
	}

	runLog := log.With(logger.NewField("customer_id", creds.CustomerID))

	pickupAddress, err := models.StructuredAddress{
		StreetAddress: []string{"20 W 34th St", "Floor 2"},
		City:          "New York",
		State:         "NY",
		ZipCode:       "10001",
		Country:       "US",
	}.Encode()
	if err != nil {
		return fmt.Errorf("pickup address: %w", err)
	}

	dropoffAddress, err := models.StructuredAddress{
		StreetAddress: []string{"285 Fulton St"},
		City:          "New York",
		State:         "NY",
		ZipCode:       "10006",
		Country:       "US",
	}.Encode()
	if err != nil {
		return fmt.Errorf("dropoff address: %w", err)
	}

	quote, err := client.CreateQuote(ctx, creds, models.CreateQuoteRequest{
		PickupAddress:      pickupAddress,
		DropoffAddress:     dropoffAddress,
		PickupPhoneNumber:  pointer.To("+15555555555"),
		DropoffPhoneNumber: pointer.To("+15555555556"),
		ManifestTotalValue: pointer.ToInt(manifestTotalValue),
	})
	if err != nil {
		return fmt.Errorf("create quote: %w", err)
	}
	runLog.Info("quote created",
		logger.NewField("quote_id", pointer.Get(quote.ID)),
		logger.NewField("fee", pointer.Get(quote.Fee)),
		logger.NewField("currency", pointer.Get(quote.Currency)),
	)

	req := models.NewCreateDeliveryRequest(
		models.Contact{Name: "Store", Address: pickupAddress, PhoneNumber: "+15555555555"},
		models.Contact{Name: "Customer", Address: dropoffAddress, PhoneNumber: "+15555555556"},
		models.NewManifestItem("Bow tie", 1, models.SizeSmall),
	)
	req.QuoteID = quote.ID
	req.ManifestTotalValue = pointer.ToInt(manifestTotalValue)
	req.IdempotencyKey = pointer.To(uuid.NewString())
	if cfg.RoboCourier {
		req.TestSpecifications = models.NewTestSpecifications(models.RoboCourierModeAuto)
	}

	created, err := client.CreateDelivery(ctx, creds, req)
	if err != nil {
		return fmt.Errorf("create delivery: %w", err)
	}
	deliveryID := pointer.Get(created.ID)
	runLog.Info("delivery created",
		logger.NewField("delivery_id", deliveryID),
		logger.NewField("status", pointer.Get(created.Status)),
		logger.NewField("tracking_url", pointer.Get(created.TrackingURL)),
	)

	got, err := client.GetDelivery(ctx, creds, deliveryID)
	if err != nil {
		return fmt.Errorf("get delivery: %w", err)
	}
	runLog.Info("delivery fetched",
		logger.NewField("delivery_id", deliveryID),
		logger.NewField("status", pointer.Get(got.Status)),
	)

	updated, err := client.UpdateDelivery(ctx, creds, deliveryID, models.UpdateDeliveryRequest{
		DropoffNotes: pointer.To("Second floor, black door"),
	})
	if err != nil {
		return fmt.Errorf("update delivery: %w", err)
	}
	runLog.Info("delivery updated",
		logger.NewField("delivery_id", deliveryID),
		logger.NewField("dropoff_notes", pointer.Get(pointer.Get(updated.Dropoff).Notes)),
	)

	if err := fanOut(ctx, runLog, client, creds, deliveryID); err != nil {
		return err
	}

	if cfg.RoboCourier {
		return nil
	}

	canceled, err := client.CancelDelivery(ctx, creds, deliveryID)
	if err != nil {
		return fmt.Errorf("cancel delivery: %w", err)
	}
	runLog.Info("delivery canceled",
		logger.NewField("delivery_id", deliveryID),
		logger.NewField("status", pointer.Get(canceled.Status)),
	)
	return nil
}

// fanOut проверяет, что один клиент работает из нескольких горутин.
func fanOut(ctx context.Context, log logger.Logger, client *uberdirect.Client, creds uberdirect.Credentials, deliveryID string) error {
	g, gCtx := errgroup.WithContext(ctx)

	g.Go(func() error {
		d, err := client.GetDelivery(gCtx, creds, deliveryID)
		if err != nil {
			return fmt.Errorf("get delivery: %w", err)
		}
		log.Debug("parallel get", logger.NewField("status", pointer.Get(d.Status)))
		return nil
	})

	g.Go(func() error {
		list, err := client.ListDeliveries(gCtx, creds, models.ListDeliveriesRequest{
			Filter: pointer.To(models.StatusOngoing),
			Limit:  pointer.ToInt(10),
		})
		if err != nil {
			return fmt.Errorf("list deliveries: %w", err)
		}
		log.Info("ongoing deliveries",
			logger.NewField("count", len(list.Data)),
			logger.NewField("total_count", pointer.Get(list.TotalCount)),
		)
		return nil
	})

	return g.Wait()
}
