package helpers

import (
	model "auction-server/internal/models"
)

// Request/Response DTOs. Field names are the wire contract; the success
// booleans carry business outcomes, so none of the request fields use
// binding validation — rejection rules live in the service and the store.
type RegisterUserRequest struct {
	Nickname string `json:"nickname"`
}

type RegisterUserResponse struct {
	Success bool `json:"success"`
}

type AddProductRequest struct {
	Name         string  `json:"name"`
	InitialPrice float64 `json:"initial_price"`
	Seller       string  `json:"seller"`
}

type AddProductResponse struct {
	Success   bool   `json:"success"`
	ProductID string `json:"product_id,omitempty"`
}

type GetProductsResponse struct {
	Products []model.Product `json:"products"`
}

type PlaceBidRequest struct {
	ProductID string  `json:"product_id"`
	Bidder    string  `json:"bidder"`
	Amount    float64 `json:"amount"`
}

type PlaceBidResponse struct {
	Success bool `json:"success"`
}

type ProductBidsResponse struct {
	Bids []model.Bid `json:"bids"`
}
