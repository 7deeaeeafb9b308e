package dtos

import "time"

type CartLineInput struct {
	ItemID    uint     `json:"itemID" binding:"required"`
	Quantity  int      `json:"quantity" binding:"required,min=1"`
	PackageID *uint    `json:"packageID,omitempty"`
	SizeID    *uint    `json:"sizeID,omitempty"`
	Discount  *float64 `json:"discount,omitempty" binding:"omitempty,min=0"`
	Notes     *string  `json:"notes,omitempty" binding:"omitempty,max=500"`
}

type PlaceOrderInput struct {
	Items     []CartLineInput `json:"items" binding:"required,min=1,dive"`
	TableName string          `json:"tableName" binding:"required"`
	TableID   string          `json:"tableID" binding:"required"`
	WhouseID  string          `json:"whouseID" binding:"required"`
}

type PlaceOrderResult struct {
	OrderID     uint    `json:"orderID"`
	OrderAmount float64 `json:"orderAmount"`
	VatValue    float64 `json:"vatValue"`
	TotalAmount float64 `json:"totalAmount"`
	TableName   string  `json:"tableName"`
	OrderDate   string  `json:"orderDate"`
	OrderTime   string  `json:"orderTime"`
}

type UpdateStatusInput struct {
	Status     string   `json:"status" binding:"required"`
	PaidAmount *float64 `json:"paidAmount,omitempty"`
}

type OrderLineView struct {
	DetailID      uint      `json:"detailID"`
	ItemID        uint      `json:"itemID"`
	ItemName      string    `json:"itemName"`
	PackageID     uint      `json:"packageID"`
	PackageName   string    `json:"packageName"`
	SizeID        *uint     `json:"sizeID,omitempty"`
	SizeName      string    `json:"sizeName,omitempty"`
	Quantity      int       `json:"quantity"`
	CostPrice     float64   `json:"costPrice"`
	Discount      float64   `json:"discount"`
	LineTotal     float64   `json:"lineTotal"`
	OrderTo       string    `json:"orderTo"`
	Notes         string    `json:"notes"`
	PrepareTime   int       `json:"prepareTime"`
	PrepareStatus string    `json:"prepareStatus"`
	Status        string    `json:"status"`
	AddedDate     time.Time `json:"addedDate"`
}

type OrderView struct {
	OrderID     uint            `json:"orderID"`
	TableName   string          `json:"tableName"`
	TableID     string          `json:"tableID"`
	WhouseID    string          `json:"whouseID"`
	OrderAmount float64         `json:"orderAmount"`
	VatPercents float64         `json:"vatPercents"`
	VatValue    float64         `json:"vatValue"`
	TotalAmount float64         `json:"totalAmount"`
	PaidAmount  float64         `json:"paidAmount"`
	FinanceYr   string          `json:"financeYr"`
	Status      string          `json:"status"`
	OrderDate   string          `json:"orderDate"`
	OrderTime   string          `json:"orderTime"`
	Items       []OrderLineView `json:"items"`
}

type LatestOrder struct {
	OrderID     uint    `json:"orderID"`
	TableName   string  `json:"tableName"`
	OrderAmount float64 `json:"orderAmount"`
	OrderDate   string  `json:"orderDate"`
}

type NewerOrder struct {
	OrderID     uint    `json:"orderID"`
	TableName   string  `json:"tableName"`
	TableID     string  `json:"tableID"`
	WhouseID    string  `json:"whouseID"`
	OrderAmount float64 `json:"orderAmount"`
	VatValue    float64 `json:"vatValue"`
	TotalAmount float64 `json:"totalAmount"`
	OrderDate   string  `json:"orderDate"`
	OrderTime   string  `json:"orderTime"`
	Status      string  `json:"status"`
}
