package auctionerrors

import "errors"

// Business rejections, surfaced to clients as success=false
var (
	ErrNicknameTaken   = errors.New("nickname already registered")
	ErrProductNotFound = errors.New("product not found")
	ErrBidTooLow       = errors.New("bid not higher than current price")
)

// Internal errors
var (
	ErrDuplicateProductID = errors.New("duplicate product id")
)
