package services

import (
	"context"
	"fmt"
	"strings"
	"time"
	"unicode/utf8"

	"restaurant-api/models"

	"github.com/shopspring/decimal"
)

const (
	orderFromOutside      = "outside"
	orderTypeTable        = "table"
	orderSourceMenu       = "digital menu"
	mealTypePackage       = "packageID"
	invoiceTypeRestaurant = "restaurant"
	serviceTypeMeal       = "mealOrder"
	activityRestaurant    = "restaurant"
	recordActive          = "active"
	printPending          = "pending"
	prepPending           = "pending"
	commissionPending     = "pending"
)

var hundred = decimal.NewFromInt(100)

// CartLine is one requested item of a placement request.
type CartLine struct {
	ItemID    uint
	Quantity  int
	PackageID *uint
	SizeID    *uint
	Discount  decimal.Decimal
	Notes     string
}

type OrderRequest struct {
	Lines     []CartLine
	TableName string
	TableID   string
	WhouseID  string
}

// OrderAggregate is a fully priced order with its accounting records, not yet persisted.
// Order ids on children are zero until AssignOrderID.
type OrderAggregate struct {
	Order        models.Order
	Lines        []models.OrderLine
	Invoice      models.Invoice
	InvoiceLines []models.InvoiceLine
	Ledger       models.LedgerEntry
}

// AssignOrderID stamps the persisted order id onto every dependent record.
func (a *OrderAggregate) AssignOrderID(id uint) {
	a.Order.OrderID = id
	for i := range a.Lines {
		a.Lines[i].OrderID = id
	}
	a.Invoice.Reference = id
	for i := range a.InvoiceLines {
		a.InvoiceLines[i].OrderID = id
	}
	a.Ledger.TransRef = id
}

// AssignInvoiceID stamps the persisted invoice id onto the invoice lines.
func (a *OrderAggregate) AssignInvoiceID(id uint) {
	a.Invoice.InvocID = id
	for i := range a.InvoiceLines {
		a.InvoiceLines[i].InvocID = id
	}
}

type BuilderOptions struct {
	// ClientID is the accounting payee/client the ledger and invoice are booked against.
	ClientID string
	// Source tags addedBy/updatedBy on every record.
	Source string
	Now    func() time.Time
}

type OrderBuilder struct {
	catalog CatalogStore
	opts    BuilderOptions
}

func NewOrderBuilder(catalog CatalogStore, opts BuilderOptions) *OrderBuilder {
	if opts.Now == nil {
		opts.Now = time.Now
	}
	if opts.ClientID == "" {
		opts.ClientID = "701"
	}
	if opts.Source == "" {
		opts.Source = "pwa"
	}
	return &OrderBuilder{catalog: catalog, opts: opts}
}

// Build validates and prices every line against the catalog. All checks run before anything is
// returned, so a failed build never reaches persistence.
func (b *OrderBuilder) Build(ctx context.Context, req OrderRequest, fiscal FiscalSnapshot) (*OrderAggregate, error) {
	if err := validateRequest(req); err != nil {
		return nil, err
	}

	now := b.opts.Now().UTC()
	items := make(map[uint]*models.MealItem)
	packages := make(map[uint]*models.MealPackage)

	lines := make([]models.OrderLine, 0, len(req.Lines))
	subtotal := decimal.Zero

	for i, cl := range req.Lines {
		item, ok := items[cl.ItemID]
		if !ok {
			found, err := b.catalog.FindItem(ctx, cl.ItemID)
			if err != nil {
				return nil, err
			}
			item = found
			items[cl.ItemID] = item
		}

		packageID := item.PackageID
		if cl.PackageID != nil {
			packageID = *cl.PackageID
		}
		pkg, ok := packages[packageID]
		if !ok {
			found, err := b.catalog.FindPackage(ctx, packageID)
			if err != nil {
				return nil, err
			}
			pkg = found
			packages[packageID] = pkg
		}

		unitPrice := item.CostPrice
		sizeName := ""
		if cl.SizeID != nil {
			size, err := b.catalog.FindSize(ctx, item.ItemID, *cl.SizeID)
			if err != nil {
				return nil, err
			}
			unitPrice = size.Price
			sizeName = size.SizeName
		}
		unitPrice = unitPrice.Round(2)

		gross := unitPrice.Mul(decimal.NewFromInt(int64(cl.Quantity)))
		discount := cl.Discount.Round(2)
		if discount.GreaterThan(gross) {
			return nil, validationf(fmt.Sprintf("items.%d.discount", i), "discount %s exceeds line amount %s", discount.StringFixed(2), gross.StringFixed(2))
		}
		lineTotal := gross.Sub(discount)
		subtotal = subtotal.Add(lineTotal)

		station := item.OrderTo
		if station == "" {
			station = models.StationKitchen
		}

		lines = append(lines, models.OrderLine{
			MealType:      mealTypePackage,
			MealID:        item.ItemID,
			ItemName:      item.ItemName,
			PackageID:     pkg.PackageID,
			PackageName:   pkg.PackageName,
			SizeID:        cl.SizeID,
			SizeName:      sizeName,
			Quantity:      cl.Quantity,
			CostPrice:     unitPrice,
			Discount:      discount,
			LineTotal:     lineTotal,
			OrderTo:       station,
			Status:        models.StatusOrdered,
			PrintStatus:   printPending,
			PaidStatus:    models.PaidStatusUnpaid,
			Notes:         strings.TrimSpace(cl.Notes),
			PrepareTime:   item.EffectivePrepareTime(pkg),
			PrepareStatus: prepPending,
			AddedBy:       b.opts.Source,
			UpdatedBy:     b.opts.Source,
			AddedDate:     now,
			UpdatedDate:   now,
		})
	}

	tax := CalculateTax(subtotal, fiscal.TaxRate)

	agg := &OrderAggregate{
		Order: models.Order{
			WhouseID:    req.WhouseID,
			OrderFrom:   orderFromOutside,
			OrderType:   orderTypeTable,
			OrderSource: orderSourceMenu,
			Reference:   req.TableID,
			TableLabel:  req.TableName,
			OrderAmount: subtotal,
			PaidAmount:  decimal.Zero,
			FinanceYr:   fiscal.Period,
			Status:      models.StatusOrdered,
			VatValue:    tax,
			VatPercents: fiscal.TaxRate,
			VatStatus:   recordActive,
			PrintStatus: printPending,
			AddedBy:     b.opts.Source,
			UpdatedBy:   b.opts.Source,
			AddedDate:   now,
			UpdatedDate: now,
		},
		Lines: lines,
		Invoice: models.Invoice{
			WhouseID:         req.WhouseID,
			InvceType:        invoiceTypeRestaurant,
			PayeeID:          b.opts.ClientID,
			CommissionAmount: decimal.Zero,
			CommissionStatus: commissionPending,
			PaidStatus:       models.PaidStatusUnpaid,
			Remarks:          fmt.Sprintf("Restaurant order for table %s", req.TableName),
			FinanceYr:        fiscal.Period,
			Status:           recordActive,
			AddedBy:          b.opts.Source,
			UpdatedBy:        b.opts.Source,
			AddedDate:        now,
			UpdatedDate:      now,
		},
		Ledger: models.LedgerEntry{
			AcvtyType: activityRestaurant,
			ClientID:  b.opts.ClientID,
			AmountIn:  subtotal,
			AmountOut: decimal.Zero,
			Vat:       tax,
			FinanceYr: fiscal.Period,
			AddedBy:   b.opts.Source,
			AddedDate: now,
		},
	}

	agg.InvoiceLines = make([]models.InvoiceLine, 0, len(lines))
	for _, l := range lines {
		offered := l.ItemName
		if l.SizeName != "" {
			offered = fmt.Sprintf("%s (%s)", l.ItemName, l.SizeName)
		}
		agg.InvoiceLines = append(agg.InvoiceLines, models.InvoiceLine{
			ServiceType:   serviceTypeMeal,
			Reference:     req.TableID,
			Quantity:      l.Quantity,
			Price:         l.CostPrice,
			Discount:      l.Discount,
			PaidStatus:    models.PaidStatusUnpaid,
			Status:        recordActive,
			WhatOffered:   offered,
			PropertyPrice: l.CostPrice,
			UserGenerated: b.opts.Source,
			AddedBy:       b.opts.Source,
			UpdatedBy:     b.opts.Source,
			DateGenerated: now,
			AddedDate:     now,
			UpdatedDate:   now,
		})
	}

	return agg, nil
}

// CalculateTax returns subtotal × rate / 100 rounded half away from zero to cents.
func CalculateTax(subtotal, ratePercent decimal.Decimal) decimal.Decimal {
	return subtotal.Mul(ratePercent).Div(hundred).Round(2)
}

func validateRequest(req OrderRequest) error {
	if len(req.Lines) == 0 {
		return validationf("items", "at least one item is required")
	}
	if strings.TrimSpace(req.TableName) == "" {
		return validationf("tableName", "is required")
	}
	if strings.TrimSpace(req.TableID) == "" {
		return validationf("tableID", "is required")
	}
	if strings.TrimSpace(req.WhouseID) == "" {
		return validationf("whouseID", "is required")
	}
	for i, l := range req.Lines {
		if l.ItemID == 0 {
			return validationf(fmt.Sprintf("items.%d.itemID", i), "is required")
		}
		if l.Quantity < 1 {
			return validationf(fmt.Sprintf("items.%d.quantity", i), "must be at least 1")
		}
		if l.Discount.IsNegative() {
			return validationf(fmt.Sprintf("items.%d.discount", i), "must not be negative")
		}
		if utf8.RuneCountInString(l.Notes) > 500 {
			return validationf(fmt.Sprintf("items.%d.notes", i), "must be at most 500 characters")
		}
	}
	return nil
}
