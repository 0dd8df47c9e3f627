package domain

import "time"

type Address struct {
	ID                int64     `json:"id"`
	UserID            int64     `json:"userId"`
	Label             string    `json:"label,omitempty"`
	Line1             string    `json:"line1"`
	Line2             string    `json:"line2,omitempty"`
	City              string    `json:"city"`
	State             string    `json:"state,omitempty"`
	PostalCode        string    `json:"postalCode"`
	Country           string    `json:"country"`
	IsDefaultShipping bool      `json:"isDefaultShipping"`
	IsDefaultBilling  bool      `json:"isDefaultBilling"`
	CreatedAt         time.Time `json:"createdAt"`
}
