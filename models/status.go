package models

// Fulfillment statuses shared by orders and order lines. Completed applies to orders only.
const (
	StatusOrdered   = "ordered"
	StatusPreparing = "preparing"
	StatusReady     = "ready"
	StatusServed    = "served"
	StatusCancelled = "cancelled"
	StatusCompleted = "completed"
)

// OrderStatuses lists the status values in lifecycle order.
var OrderStatuses = []string{
	StatusOrdered,
	StatusPreparing,
	StatusReady,
	StatusServed,
	StatusCancelled,
	StatusCompleted,
}

// ValidOrderStatus reports whether s is one of the fixed order status values.
// Any valid status may follow any other.
func ValidOrderStatus(s string) bool {
	for _, v := range OrderStatuses {
		if v == s {
			return true
		}
	}
	return false
}

// Stations a line can be routed to.
const (
	StationKitchen = "kitchen"
	StationDrinks  = "drinks"
	StationCoffee  = "coffee"
)

const PaidStatusUnpaid = "unpaid"
