package models

import "time"

// User represents a registered auction participant. The nickname is both
// the unique key and the display name.
type User struct {
	Nickname string `json:"nickname"`
}

// Product represents an item up for auction. CurrentPrice starts equal to
// InitialPrice and only ever increases through accepted bids.
type Product struct {
	ID           string  `json:"id"`
	Name         string  `json:"name"`
	InitialPrice float64 `json:"initial_price"`
	CurrentPrice float64 `json:"current_price"`
	Seller       string  `json:"seller"`
}

// Bid represents an accepted price proposal on a product
type Bid struct {
	ID        string    `json:"id"`
	ProductID string    `json:"product_id"`
	Bidder    string    `json:"bidder"`
	Amount    float64   `json:"amount"`
	CreatedAt time.Time `json:"created_at"`
}
