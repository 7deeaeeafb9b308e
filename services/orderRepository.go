package services

import (
	"context"
	"errors"
	"fmt"
	"time"

	"restaurant-api/models"

	"github.com/shopspring/decimal"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// OrderStore persists aggregates and answers point queries over placed orders.
type OrderStore interface {
	Commit(ctx context.Context, agg *OrderAggregate) (uint, error)
	FindByID(ctx context.Context, orderID uint) (*models.Order, error)
	FindByTable(ctx context.Context, tableID string) ([]models.Order, error)
	Latest(ctx context.Context) (*models.Order, error)
	NewerThan(ctx context.Context, orderID uint, limit int) ([]models.Order, error)
	UpdateStatus(ctx context.Context, orderID uint, change StatusChange) (*models.Order, error)
}

// StatusChange is the only mutation allowed on a placed order.
type StatusChange struct {
	Status     string
	PaidAmount *decimal.Decimal
	ChangedBy  string
	IPAddress  string
}

type OrderRepository struct {
	db  *gorm.DB
	now func() time.Time
}

func NewOrderRepository(db *gorm.DB) *OrderRepository {
	return &OrderRepository{db: db, now: time.Now}
}

// Commit writes the order header, its lines, the invoice, the invoice lines and the ledger entry in
// one transaction. Any failure rolls every group back and returns ErrPersistence; the aggregate's
// ids are reset so no id escapes a failed commit. Commit ignores cancellation of ctx once started.
func (r *OrderRepository) Commit(ctx context.Context, agg *OrderAggregate) (uint, error) {
	ctx = context.WithoutCancel(ctx)

	err := r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Omit(clause.Associations).Create(&agg.Order).Error; err != nil {
			return fmt.Errorf("insert order: %w", err)
		}
		agg.AssignOrderID(agg.Order.OrderID)

		if len(agg.Lines) > 0 {
			if err := tx.Create(&agg.Lines).Error; err != nil {
				return fmt.Errorf("insert order lines: %w", err)
			}
		}

		if err := tx.Omit(clause.Associations).Create(&agg.Invoice).Error; err != nil {
			return fmt.Errorf("insert invoice: %w", err)
		}
		agg.AssignInvoiceID(agg.Invoice.InvocID)

		if len(agg.InvoiceLines) > 0 {
			if err := tx.Create(&agg.InvoiceLines).Error; err != nil {
				return fmt.Errorf("insert invoice lines: %w", err)
			}
		}

		if err := tx.Create(&agg.Ledger).Error; err != nil {
			return fmt.Errorf("insert ledger entry: %w", err)
		}
		return nil
	})
	if err != nil {
		agg.AssignOrderID(0)
		agg.AssignInvoiceID(0)
		for i := range agg.Lines {
			agg.Lines[i].DetailID = 0
		}
		for i := range agg.InvoiceLines {
			agg.InvoiceLines[i].DetailID = 0
		}
		agg.Ledger.AcvtyID = 0
		return 0, fmt.Errorf("%w: %w", ErrPersistence, err)
	}
	return agg.Order.OrderID, nil
}

func orderedLines(db *gorm.DB) *gorm.DB {
	return db.Order("detail_id ASC")
}

func (r *OrderRepository) FindByID(ctx context.Context, orderID uint) (*models.Order, error) {
	var order models.Order
	err := r.db.WithContext(ctx).Preload("Lines", orderedLines).First(&order, orderID).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrOrderNotFound
		}
		return nil, fmt.Errorf("find order %d: %w", orderID, err)
	}
	return &order, nil
}

// FindByTable returns the table's orders newest first.
func (r *OrderRepository) FindByTable(ctx context.Context, tableID string) ([]models.Order, error) {
	var orders []models.Order
	err := r.db.WithContext(ctx).
		Preload("Lines", orderedLines).
		Where("reference = ?", tableID).
		Order("added_date DESC, order_id DESC").
		Find(&orders).Error
	if err != nil {
		return nil, fmt.Errorf("find orders for table %s: %w", tableID, err)
	}
	return orders, nil
}

// Latest returns the order with the highest id, or ErrOrderNotFound when there are none.
func (r *OrderRepository) Latest(ctx context.Context) (*models.Order, error) {
	var order models.Order
	err := r.db.WithContext(ctx).Order("order_id DESC").Take(&order).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrOrderNotFound
		}
		return nil, fmt.Errorf("find latest order: %w", err)
	}
	return &order, nil
}

// NewerThan is a primary-key range scan returning ids strictly greater than orderID, ascending.
func (r *OrderRepository) NewerThan(ctx context.Context, orderID uint, limit int) ([]models.Order, error) {
	var orders []models.Order
	err := r.db.WithContext(ctx).
		Where("order_id > ?", orderID).
		Order("order_id ASC").
		Limit(limit).
		Find(&orders).Error
	if err != nil {
		return nil, fmt.Errorf("find orders after %d: %w", orderID, err)
	}
	return orders, nil
}

// UpdateStatus changes status and optionally the paid amount, logging the change in the same
// transaction.
func (r *OrderRepository) UpdateStatus(ctx context.Context, orderID uint, change StatusChange) (*models.Order, error) {
	err := r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		var order models.Order
		err := tx.Clauses(clause.Locking{Strength: "UPDATE"}).First(&order, orderID).Error
		if err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return ErrOrderNotFound
			}
			return fmt.Errorf("lock order %d: %w", orderID, err)
		}
		before := order

		updates := map[string]interface{}{
			"status":       change.Status,
			"updated_by":   change.ChangedBy,
			"updated_date": r.now().UTC(),
		}
		if change.PaidAmount != nil {
			paid := change.PaidAmount.Round(2)
			if paid.IsNegative() {
				return validationf("paidAmount", "must not be negative")
			}
			if paid.GreaterThan(order.TotalAmount()) {
				return validationf("paidAmount", "%s exceeds order total %s", paid.StringFixed(2), order.TotalAmount().StringFixed(2))
			}
			updates["paid_amount"] = paid
			order.PaidAmount = paid
		}
		order.Status = change.Status

		if err := tx.Model(&models.Order{}).Where("order_id = ?", orderID).Updates(updates).Error; err != nil {
			return fmt.Errorf("update order %d: %w", orderID, err)
		}
		return writeStatusLog(tx, &before, &order, change.ChangedBy, change.IPAddress, r.now().UTC())
	})
	if err != nil {
		return nil, err
	}
	return r.FindByID(ctx, orderID)
}

func writeStatusLog(tx *gorm.DB, before, after *models.Order, changedBy, ip string, at time.Time) error {
	entry := models.OrderStatusLog{
		OrderID:   after.OrderID,
		OldStatus: before.Status,
		NewStatus: after.Status,
		ChangedBy: changedBy,
		ChangedAt: at,
	}
	if !before.PaidAmount.Equal(after.PaidAmount) {
		oldPaid := before.PaidAmount.StringFixed(2)
		newPaid := after.PaidAmount.StringFixed(2)
		entry.OldPaid = &oldPaid
		entry.NewPaid = &newPaid
	}
	if ip != "" {
		entry.IPAddress = &ip
	}
	if err := tx.Create(&entry).Error; err != nil {
		return fmt.Errorf("insert status log: %w", err)
	}
	return nil
}
