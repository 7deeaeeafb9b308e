package controllers

import (
	"restaurant-api/dtos"
	"restaurant-api/models"
)

const (
	dateLayout = "2006-01-02"
	timeLayout = "15:04:05"
)

func placeOrderResult(o *models.Order) dtos.PlaceOrderResult {
	return dtos.PlaceOrderResult{
		OrderID:     o.OrderID,
		OrderAmount: o.OrderAmount.InexactFloat64(),
		VatValue:    o.VatValue.InexactFloat64(),
		TotalAmount: o.TotalAmount().InexactFloat64(),
		TableName:   o.TableLabel,
		OrderDate:   o.AddedDate.Format(dateLayout),
		OrderTime:   o.AddedDate.Format(timeLayout),
	}
}

func orderView(o *models.Order) dtos.OrderView {
	items := make([]dtos.OrderLineView, 0, len(o.Lines))
	for _, l := range o.Lines {
		items = append(items, dtos.OrderLineView{
			DetailID:      l.DetailID,
			ItemID:        l.MealID,
			ItemName:      l.ItemName,
			PackageID:     l.PackageID,
			PackageName:   l.PackageName,
			SizeID:        l.SizeID,
			SizeName:      l.SizeName,
			Quantity:      l.Quantity,
			CostPrice:     l.CostPrice.InexactFloat64(),
			Discount:      l.Discount.InexactFloat64(),
			LineTotal:     l.LineTotal.InexactFloat64(),
			OrderTo:       l.OrderTo,
			Notes:         l.Notes,
			PrepareTime:   l.PrepareTime,
			PrepareStatus: l.PrepareStatus,
			Status:        l.Status,
			AddedDate:     l.AddedDate,
		})
	}
	return dtos.OrderView{
		OrderID:     o.OrderID,
		TableName:   o.TableLabel,
		TableID:     o.Reference,
		WhouseID:    o.WhouseID,
		OrderAmount: o.OrderAmount.InexactFloat64(),
		VatPercents: o.VatPercents.InexactFloat64(),
		VatValue:    o.VatValue.InexactFloat64(),
		TotalAmount: o.TotalAmount().InexactFloat64(),
		PaidAmount:  o.PaidAmount.InexactFloat64(),
		FinanceYr:   o.FinanceYr,
		Status:      o.Status,
		OrderDate:   o.AddedDate.Format(dateLayout),
		OrderTime:   o.AddedDate.Format(timeLayout),
		Items:       items,
	}
}

func orderViews(orders []models.Order) []dtos.OrderView {
	views := make([]dtos.OrderView, 0, len(orders))
	for i := range orders {
		views = append(views, orderView(&orders[i]))
	}
	return views
}

func latestOrder(o *models.Order) *dtos.LatestOrder {
	if o == nil {
		return nil
	}
	return &dtos.LatestOrder{
		OrderID:     o.OrderID,
		TableName:   o.TableLabel,
		OrderAmount: o.OrderAmount.InexactFloat64(),
		OrderDate:   o.AddedDate.Format(dateLayout),
	}
}

func newerOrders(orders []models.Order) []dtos.NewerOrder {
	out := make([]dtos.NewerOrder, 0, len(orders))
	for _, o := range orders {
		out = append(out, dtos.NewerOrder{
			OrderID:     o.OrderID,
			TableName:   o.TableLabel,
			TableID:     o.Reference,
			WhouseID:    o.WhouseID,
			OrderAmount: o.OrderAmount.InexactFloat64(),
			VatValue:    o.VatValue.InexactFloat64(),
			TotalAmount: o.TotalAmount().InexactFloat64(),
			OrderDate:   o.AddedDate.Format(dateLayout),
			OrderTime:   o.AddedDate.Format(timeLayout),
			Status:      o.Status,
		})
	}
	return out
}
