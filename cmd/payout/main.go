package main

import (
	"context"
	"log/slog"
	"time"

	"bazaar/config"
	"bazaar/internal/domain/service"
	logs "bazaar/internal/infra/log"
	"bazaar/internal/infra/persistence/postgres"
	"bazaar/internal/infra/stripe"
	"bazaar/internal/usecase"
	"bazaar/internal/usecase/impl"

	"go.uber.org/fx"
)

type runBatchParams struct {
	fx.In
	fx.Lifecycle
	fx.Shutdowner

	Config   *config.Config
	Logger   *slog.Logger
	PayoutUC usecase.PayoutUsecase
}

func main() {
	fx.New(
		injectInfra(),
		injectRepo(),
		injectService(),
		injectUsecase(),
		fx.Invoke(
			runBatch,
		),
	).Run()
}

func injectInfra() fx.Option {
	return fx.Provide(
		config.New,
		logs.New,
		context.Background,
		postgres.New,
	)
}

func injectRepo() fx.Option {
	return fx.Options(
		fx.Provide(
			postgres.NewVendorRepository,
			postgres.NewTransactionManager,
		),
	)
}

func injectService() fx.Option {
	return fx.Options(
		fx.Provide(
			newPaymentGateway,
		),
	)
}

// newPaymentGateway exposes the Stripe client through the domain interface
func newPaymentGateway(cfg *config.Config) service.PaymentGateway {
	return stripe.NewClient(cfg.Stripe)
}

func injectUsecase() fx.Option {
	return fx.Options(
		fx.Provide(
			impl.NewPayoutService,
		),
	)
}

// runBatch executes one payout batch per interval. A zero interval runs a
// single batch and exits, which suits cron-style scheduling.
func runBatch(ctx context.Context, params runBatchParams) {
	run := func() {
		result, err := params.PayoutUC.RunBatch(ctx, time.Now())
		if err != nil {
			params.Logger.Error("payout batch failed", slog.String("error", err.Error()))

			return
		}

		var paid, skipped, failed int
		for _, vendor := range result.Vendors {
			switch {
			case vendor.Err != nil:
				failed++
			case vendor.Skipped:
				skipped++
			default:
				paid++
			}
		}

		params.Logger.Info("payout batch finished",
			slog.Time("until", result.Until),
			slog.Int("paid", paid),
			slog.Int("skipped", skipped),
			slog.Int("failed", failed),
		)
	}

	interval := params.Config.Payout.Interval

	go func() {
		run()

		if interval <= 0 {
			if err := params.Shutdowner.Shutdown(); err != nil {
				params.Logger.Error("failed to shut down", slog.String("error", err.Error()))
			}

			return
		}

		ticker := time.NewTicker(interval)
		defer ticker.Stop()

		for {
			select {
			case <-ctx.Done():
				return
			case <-ticker.C:
				run()
			}
		}
	}()
}
