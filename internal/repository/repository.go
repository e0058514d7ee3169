package repository

import (
	"fmt"
	"sync"

	"auction-server/internal/auctionerrors"
	model "auction-server/internal/models"
)

// AuctionStore defines the marketplace state interface for the auction system
type AuctionStore interface {
	RegisterUser(nickname string) error
	AddProduct(product model.Product) error
	ListProducts() []model.Product
	PlaceBid(bid model.Bid) (model.Product, error)
	GetBidsByProduct(productID string) ([]model.Bid, error)
}

// AuctionState is a concurrency-safe in-memory implementation of AuctionStore.
// All marketplace state lives behind a single lock; every operation performs
// its full read-modify-write inside one critical section, so concurrent calls
// are linearizable and no caller can observe a partially-updated product.
type AuctionState struct {
	mu       sync.RWMutex
	users    map[string]model.User    // key: nickname
	products map[string]model.Product // key: productID
	bids     map[string][]model.Bid   // key: productID -> accepted bids, in acceptance order
}

// NewAuctionState creates a new empty in-memory auction state
func NewAuctionState() *AuctionState {
	return &AuctionState{
		users:    make(map[string]model.User),
		products: make(map[string]model.Product),
		bids:     make(map[string][]model.Bid),
	}
}

// RegisterUser inserts a nickname if it is not already taken. The existence
// check and the insert happen under the same lock.
func (s *AuctionState) RegisterUser(nickname string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, ok := s.users[nickname]; ok {
		return fmt.Errorf("register user %q: %w", nickname, auctionerrors.ErrNicknameTaken)
	}
	s.users[nickname] = model.User{Nickname: nickname}
	return nil
}

// AddProduct stores a new product. The caller is responsible for assigning a
// fresh unique ID; a collision is an internal error, not a business rejection.
func (s *AuctionState) AddProduct(product model.Product) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, ok := s.products[product.ID]; ok {
		return fmt.Errorf("add product %s: %w", product.ID, auctionerrors.ErrDuplicateProductID)
	}
	s.products[product.ID] = product
	return nil
}

// ListProducts returns a snapshot copy of all products. The copy is taken
// under the read lock, so it can never contain a torn price.
func (s *AuctionState) ListProducts() []model.Product {
	s.mu.RLock()
	defer s.mu.RUnlock()

	products := make([]model.Product, 0, len(s.products))
	for _, p := range s.products {
		products = append(products, p)
	}
	return products
}

// PlaceBid accepts a bid if the product exists and the amount is strictly
// greater than its current price. The comparison, the price update and the
// history append all happen inside one critical section, so two concurrent
// bids can never both be accepted against the same stale price.
func (s *AuctionState) PlaceBid(bid model.Bid) (model.Product, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	product, ok := s.products[bid.ProductID]
	if !ok {
		return model.Product{}, fmt.Errorf("place bid on product %s: %w", bid.ProductID, auctionerrors.ErrProductNotFound)
	}
	if bid.Amount <= product.CurrentPrice {
		return model.Product{}, fmt.Errorf("place bid on product %s: %w", bid.ProductID, auctionerrors.ErrBidTooLow)
	}

	product.CurrentPrice = bid.Amount
	s.products[bid.ProductID] = product
	s.bids[bid.ProductID] = append(s.bids[bid.ProductID], bid)

	return product, nil
}

// GetBidsByProduct returns a copy of the accepted-bid history for a product,
// in acceptance order. A product with no bids yet returns an empty slice.
func (s *AuctionState) GetBidsByProduct(productID string) ([]model.Bid, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	if _, ok := s.products[productID]; !ok {
		return nil, fmt.Errorf("get bids for product %s: %w", productID, auctionerrors.ErrProductNotFound)
	}
	return append([]model.Bid(nil), s.bids[productID]...), nil
}
