package domain

import "time"

// MovementReason is the closed set of reason codes for inventory movements.
type MovementReason string

const (
	ReasonOrderPlaced     MovementReason = "ORDER_PLACED"
	ReasonOrderCancelled  MovementReason = "ORDER_CANCELLED"
	ReasonOrderReturned   MovementReason = "ORDER_RETURNED"
	ReasonOrderRefunded   MovementReason = "ORDER_REFUNDED"
	ReasonSupplierInbound MovementReason = "SUPPLIER_INBOUND"
	ReasonAdminAdjustment MovementReason = "ADMIN_ADJUSTMENT"
	ReasonStocktake       MovementReason = "STOCKTAKE"
	ReasonDamaged         MovementReason = "DAMAGED"
	ReasonLost            MovementReason = "LOST"
)

// ValidMovementReason reports whether s is a known reason code.
func ValidMovementReason(s string) bool {
	switch MovementReason(s) {
	case ReasonOrderPlaced, ReasonOrderCancelled, ReasonOrderReturned,
		ReasonOrderRefunded, ReasonSupplierInbound, ReasonAdminAdjustment,
		ReasonStocktake, ReasonDamaged, ReasonLost:
		return true
	}
	return false
}

// Inventory tracks live stock for one variant. Quantity never goes below
// zero and is only mutated together with a movement row.
type Inventory struct {
	ID          int64     `json:"id"`
	VariantID   int64     `json:"variantId"`
	Quantity    int       `json:"quantity"`
	SafetyStock int       `json:"safetyStock"`
	UpdatedAt   time.Time `json:"updatedAt"`
}

// InventoryMovement is an append-only ledger entry; the sum of deltas for a
// variant equals the variant's current Inventory.Quantity.
type InventoryMovement struct {
	ID          int64          `json:"id"`
	InventoryID int64          `json:"inventoryId"`
	VariantID   int64          `json:"variantId"`
	Delta       int            `json:"delta"`
	Reason      MovementReason `json:"reason"`
	ActorID     *int64         `json:"actorId,omitempty"`
	CreatedAt   time.Time      `json:"createdAt"`
}
