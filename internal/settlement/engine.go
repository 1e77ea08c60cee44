// Package settlement records wallpaper sales and distributes the proceeds.
package settlement

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"naijawalls/internal/store"

	"github.com/google/uuid"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/metric"
	"go.opentelemetry.io/otel/trace"
)

// CreatorShareRate is the fixed fraction of a sale credited to the creator.
const CreatorShareRate = 0.70

// ErrInvalidInput is returned before any store call when the request is
// missing required fields or carries a negative amount.
var ErrInvalidInput = errors.New("invalid settlement input")

// ErrAmountMismatch is returned when the caller-supplied amount does not
// equal the wallpaper's current price. The amount is never trusted blindly;
// a client must not be able to settle below the listed price.
var ErrAmountMismatch = errors.New("amount does not match wallpaper price")

func New(catalog store.Catalog, logger *slog.Logger) *Engine {
	meter := otel.Meter("naijawalls/internal/settlement")
	settled, _ := meter.Int64Counter("settlement.purchases")

	return &Engine{
		catalog: catalog,
		logger:  logger,
		tracer:  otel.Tracer("naijawalls/internal/settlement"),
		settled: settled,
	}
}

type Engine struct {
	catalog store.Catalog
	logger  *slog.Logger
	tracer  trace.Tracer
	settled metric.Int64Counter
}

// SettlePurchase durably records a sale of the given wallpaper to the buyer.
// The purchase record, the wallpaper's download counter and the creator's
// earnings are written as one transactional unit: a failure anywhere aborts
// the whole settlement and leaves no partial state behind.
func (e *Engine) SettlePurchase(ctx context.Context, buyerID, wallpaperID string, amount int64) (*store.Purchase, error) {
	ctx, span := e.tracer.Start(ctx, "settlement.SettlePurchase")
	defer span.End()

	if buyerID == "" {
		return nil, fmt.Errorf("%w: missing buyer id", ErrInvalidInput)
	}
	if wallpaperID == "" {
		return nil, fmt.Errorf("%w: missing wallpaper id", ErrInvalidInput)
	}
	if amount < 0 {
		return nil, fmt.Errorf("%w: negative amount %d", ErrInvalidInput, amount)
	}

	w, err := e.catalog.GetWallpaper(ctx, wallpaperID)
	if err != nil {
		return nil, err
	}
	if amount != w.Price {
		return nil, fmt.Errorf("%w: got %d, price is %d", ErrAmountMismatch, amount, w.Price)
	}

	op := store.SettleOp{
		Purchase: store.Purchase{
			UserID:        buyerID,
			WallpaperID:   wallpaperID,
			Amount:        amount,
			Timestamp:     time.Now().UTC(),
			TransactionID: "tr_" + uuid.NewString(),
		},
		CreatorShare: float64(amount) * CreatorShareRate,
	}

	res, err := e.catalog.Settle(ctx, op)
	if err != nil {
		return nil, fmt.Errorf("settle purchase: %w", err)
	}

	if !res.CreatorCredited {
		// Tolerated, but kept distinct from a normal settlement so orphaned
		// wallpapers are visible in the logs.
		e.logger.Warn("creator not credited, creatorId did not resolve",
			"wallpaperId", wallpaperID,
			"creatorId", w.CreatorID,
			"transactionId", op.Purchase.TransactionID,
		)
	}

	e.settled.Add(ctx, 1, metric.WithAttributes(attribute.Bool("credited", res.CreatorCredited)))
	e.logger.Info("purchase settled",
		"purchaseId", res.Purchase.ID,
		"wallpaperId", wallpaperID,
		"buyerId", buyerID,
		"amount", amount,
	)

	return res.Purchase, nil
}
