package domain

import (
	"testing"

	"github.com/shopspring/decimal"
)

func TestCartSubtotalExactDecimal(t *testing.T) {
	cart := Cart{Items: []CartItem{
		{Price: decimal.RequireFromString("0.10"), Quantity: 3},
		{Price: decimal.RequireFromString("19.99"), Quantity: 2},
	}}
	want := decimal.RequireFromString("40.28")
	if got := cart.Subtotal(); !got.Equal(want) {
		t.Fatalf("subtotal = %s, want %s", got, want)
	}
}

func TestCartItemTotal(t *testing.T) {
	item := CartItem{Price: decimal.RequireFromString("12.50"), Quantity: 4}
	if got := item.ItemTotal(); !got.Equal(decimal.RequireFromString("50.00")) {
		t.Fatalf("item total = %s", got)
	}
}
