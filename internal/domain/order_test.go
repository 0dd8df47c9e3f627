package domain

import "testing"

func TestOrderStatusTransitions(t *testing.T) {
	from := []OrderStatus{OrderPending, OrderProcessing, OrderShipped, OrderCancelled, OrderReturned}
	for _, s := range from {
		if !s.CanTransitionTo(OrderCancelled) {
			t.Fatalf("%s should allow transitions", s)
		}
	}
	for _, next := range []OrderStatus{OrderPending, OrderProcessing, OrderShipped, OrderCancelled, OrderReturned} {
		if OrderDelivered.CanTransitionTo(next) {
			t.Fatalf("DELIVERED must be terminal, allowed %s", next)
		}
	}
}

func TestValidOrderStatus(t *testing.T) {
	for _, s := range []string{"PENDING", "PROCESSING", "SHIPPED", "DELIVERED", "CANCELLED", "RETURNED"} {
		if !ValidOrderStatus(s) {
			t.Fatalf("%s should be valid", s)
		}
	}
	if ValidOrderStatus("SHIPPING") || ValidOrderStatus("") {
		t.Fatal("unknown statuses must be rejected")
	}
}

func TestValidPaymentStatus(t *testing.T) {
	for _, s := range []string{"PENDING", "INITIATED", "SUCCESS", "FAILED", "CANCELLED", "REFUNDED"} {
		if !ValidPaymentStatus(s) {
			t.Fatalf("%s should be valid", s)
		}
	}
	if ValidPaymentStatus("PAID") {
		t.Fatal("unknown payment status must be rejected")
	}
}
