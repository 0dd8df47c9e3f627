package domain

import "time"

type ShipmentStatus string

const (
	ShipmentPending   ShipmentStatus = "PENDING"
	ShipmentInTransit ShipmentStatus = "IN_TRANSIT"
	ShipmentDelivered ShipmentStatus = "DELIVERED"
	ShipmentReturned  ShipmentStatus = "RETURNED"
	ShipmentFailed    ShipmentStatus = "FAILED"
)

// ValidShipmentStatus reports whether s is a known shipment status.
func ValidShipmentStatus(s string) bool {
	switch ShipmentStatus(s) {
	case ShipmentPending, ShipmentInTransit, ShipmentDelivered, ShipmentReturned, ShipmentFailed:
		return true
	}
	return false
}

// OrderStatusFor maps a carrier status update to the order status it drives,
// or "" when the order is left untouched.
func (s ShipmentStatus) OrderStatusFor() OrderStatus {
	switch s {
	case ShipmentInTransit:
		return OrderShipped
	case ShipmentDelivered:
		return OrderDelivered
	case ShipmentReturned:
		return OrderReturned
	}
	return ""
}

type Shipment struct {
	ID             int64          `json:"id"`
	OrderID        int64          `json:"orderId"`
	Carrier        string         `json:"carrier,omitempty"`
	TrackingNumber string         `json:"trackingNumber,omitempty"`
	LabelURL       string         `json:"labelUrl,omitempty"`
	Status         ShipmentStatus `json:"status"`
	ShippedAt      *time.Time     `json:"shippedAt,omitempty"`
	DeliveredAt    *time.Time     `json:"deliveredAt,omitempty"`
	CreatedAt      time.Time      `json:"createdAt"`
}
