package domain

import "testing"

func TestShipmentOrderStatusFor(t *testing.T) {
	cases := []struct {
		status ShipmentStatus
		want   OrderStatus
	}{
		{ShipmentInTransit, OrderShipped},
		{ShipmentDelivered, OrderDelivered},
		{ShipmentReturned, OrderReturned},
		{ShipmentPending, ""},
		{ShipmentFailed, ""},
	}
	for _, tc := range cases {
		if got := tc.status.OrderStatusFor(); got != tc.want {
			t.Fatalf("%s: got %q want %q", tc.status, got, tc.want)
		}
	}
}

func TestValidMovementReason(t *testing.T) {
	valid := []string{
		"ORDER_PLACED", "ORDER_CANCELLED", "ORDER_RETURNED", "ORDER_REFUNDED",
		"SUPPLIER_INBOUND", "ADMIN_ADJUSTMENT", "STOCKTAKE", "DAMAGED", "LOST",
	}
	for _, r := range valid {
		if !ValidMovementReason(r) {
			t.Fatalf("%s should be valid", r)
		}
	}
	if ValidMovementReason("SHRINKAGE") || ValidMovementReason("") {
		t.Fatal("unknown reasons must be rejected")
	}
}
