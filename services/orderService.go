package services

import (
	"context"
	"errors"
	"log/slog"

	"restaurant-api/models"

	"github.com/shopspring/decimal"
)

const (
	DefaultNewerLimit = 100
	MaxNewerLimit     = 500
)

// OrderService places orders and answers the query surface over them.
type OrderService interface {
	PlaceOrder(ctx context.Context, req OrderRequest) (*models.Order, error)
	GetByID(ctx context.Context, orderID uint) (*models.Order, error)
	GetByTable(ctx context.Context, tableID string) ([]models.Order, error)
	GetLatest(ctx context.Context) (*models.Order, error)
	GetNewerThan(ctx context.Context, orderID uint, limit int) ([]models.Order, error)
	UpdateStatus(ctx context.Context, orderID uint, change StatusChange) (*models.Order, error)
}

type orderService struct {
	fiscal  FiscalProvider
	builder *OrderBuilder
	store   OrderStore
	log     *slog.Logger
}

func NewOrderService(fiscal FiscalProvider, builder *OrderBuilder, store OrderStore, log *slog.Logger) OrderService {
	if log == nil {
		log = slog.Default()
	}
	return &orderService{fiscal: fiscal, builder: builder, store: store, log: log}
}

// PlaceOrder resolves the fiscal snapshot first, then builds the aggregate, then commits it. Any
// failure before the commit leaves storage untouched.
func (s *orderService) PlaceOrder(ctx context.Context, req OrderRequest) (*models.Order, error) {
	if err := validateRequest(req); err != nil {
		return nil, err
	}

	snap, err := LoadFiscalSnapshot(ctx, s.fiscal, req.WhouseID)
	if err != nil {
		s.log.ErrorContext(ctx, "fiscal configuration unavailable", "whouse_id", req.WhouseID, "error", err)
		return nil, err
	}

	agg, err := s.builder.Build(ctx, req, snap)
	if err != nil {
		if !IsValidation(err) && !isCatalogMiss(err) {
			s.log.ErrorContext(ctx, "order build failed", "table_id", req.TableID, "error", err)
		}
		return nil, err
	}

	orderID, err := s.store.Commit(ctx, agg)
	if err != nil {
		s.log.ErrorContext(ctx, "order commit failed", "table_id", req.TableID, "lines", len(agg.Lines), "error", err)
		return nil, err
	}

	agg.Order.Lines = agg.Lines
	s.log.InfoContext(ctx, "order placed",
		"order_id", orderID,
		"table_id", req.TableID,
		"lines", len(agg.Lines),
		"order_amount", agg.Order.OrderAmount.StringFixed(2),
		"vat_value", agg.Order.VatValue.StringFixed(2),
	)
	return &agg.Order, nil
}

func isCatalogMiss(err error) bool {
	return errors.Is(err, ErrItemNotFound) || errors.Is(err, ErrPackageNotFound) || errors.Is(err, ErrSizeNotFound)
}

func (s *orderService) GetByID(ctx context.Context, orderID uint) (*models.Order, error) {
	return s.store.FindByID(ctx, orderID)
}

func (s *orderService) GetByTable(ctx context.Context, tableID string) ([]models.Order, error) {
	return s.store.FindByTable(ctx, tableID)
}

// GetLatest returns nil without error when no order exists yet.
func (s *orderService) GetLatest(ctx context.Context) (*models.Order, error) {
	order, err := s.store.Latest(ctx)
	if errors.Is(err, ErrOrderNotFound) {
		return nil, nil
	}
	return order, err
}

func (s *orderService) GetNewerThan(ctx context.Context, orderID uint, limit int) ([]models.Order, error) {
	return s.store.NewerThan(ctx, orderID, ClampNewerLimit(limit))
}

// ClampNewerLimit applies the default for non-positive limits and caps at MaxNewerLimit.
func ClampNewerLimit(limit int) int {
	if limit <= 0 {
		return DefaultNewerLimit
	}
	if limit > MaxNewerLimit {
		return MaxNewerLimit
	}
	return limit
}

func (s *orderService) UpdateStatus(ctx context.Context, orderID uint, change StatusChange) (*models.Order, error) {
	if !models.ValidOrderStatus(change.Status) {
		return nil, validationf("status", "must be one of %v", models.OrderStatuses)
	}
	if change.PaidAmount != nil && change.PaidAmount.LessThan(decimal.Zero) {
		return nil, validationf("paidAmount", "must not be negative")
	}
	order, err := s.store.UpdateStatus(ctx, orderID, change)
	if err != nil {
		return nil, err
	}
	s.log.InfoContext(ctx, "order status updated", "order_id", orderID, "status", change.Status, "changed_by", change.ChangedBy)
	return order, nil
}
