package domain

import "time"

type Wishlist struct {
	ID        int64          `json:"id"`
	UserID    int64          `json:"userId"`
	Items     []WishlistItem `json:"items"`
	CreatedAt time.Time      `json:"createdAt"`
}

type WishlistItem struct {
	ID         int64     `json:"id"`
	WishlistID int64     `json:"wishlistId"`
	ProductID  int64     `json:"productId"`
	Product    *Product  `json:"product,omitempty"`
	CreatedAt  time.Time `json:"createdAt"`
}
