package auction

import (
	"errors"
	"fmt"
	"time"

	"auction-server/internal/auctionerrors"
	"auction-server/internal/models"
	"auction-server/internal/repository"
	"auction-server/utils"
)

// AuctionService implements the four marketplace operations plus the
// bid-history read. It assigns IDs and timestamps and logs every mutation
// attempt; all invariant enforcement lives in the store.
type AuctionService struct {
	store repository.AuctionStore
}

// NewAuctionService creates a new AuctionService instance
func NewAuctionService(store repository.AuctionStore) *AuctionService {
	return &AuctionService{
		store: store,
	}
}

// RegisterUser registers a nickname. A duplicate nickname is a normal
// outcome, reported via auctionerrors.ErrNicknameTaken. The nickname is not
// otherwise inspected; empty-string handling is a client concern.
func (s *AuctionService) RegisterUser(nickname string) error {
	utils.Info("user registration attempt", map[string]any{"nickname": nickname})

	if err := s.store.RegisterUser(nickname); err != nil {
		if errors.Is(err, auctionerrors.ErrNicknameTaken) {
			utils.Warn("user already exists", map[string]any{"nickname": nickname})
			return err
		}
		return fmt.Errorf("service: failed to register user %q: %w", nickname, err)
	}

	utils.Info("user registered", map[string]any{"nickname": nickname})
	return nil
}

// AddProduct creates a product with a fresh opaque ID and a current price
// equal to the initial price. There is no rejection path today: the seller is
// not checked against the registered-user set and the price is not validated.
func (s *AuctionService) AddProduct(name string, initialPrice float64, seller string) (models.Product, error) {
	product := models.Product{
		ID:           utils.GenerateID(),
		Name:         name,
		InitialPrice: initialPrice,
		CurrentPrice: initialPrice,
		Seller:       seller,
	}

	if err := s.store.AddProduct(product); err != nil {
		return models.Product{}, fmt.Errorf("service: failed to add product %q by %s: %w", name, seller, err)
	}

	utils.Info("product added", map[string]any{
		"product_id":    product.ID,
		"name":          product.Name,
		"seller":        product.Seller,
		"initial_price": product.InitialPrice,
	})
	return product, nil
}

// GetProducts returns a consistent snapshot of all products
func (s *AuctionService) GetProducts() []models.Product {
	return s.store.ListProducts()
}

// PlaceBid records a bid if it strictly exceeds the product's current price
// at evaluation time. Unknown products and too-low amounts are normal
// rejections; the bidder is accepted as-is without a registration check.
func (s *AuctionService) PlaceBid(productID, bidder string, amount float64) (models.Bid, error) {
	utils.Info("bid attempt", map[string]any{
		"product_id": productID,
		"bidder":     bidder,
		"amount":     amount,
	})

	bid := models.Bid{
		ID:        utils.GenerateID(),
		ProductID: productID,
		Bidder:    bidder,
		Amount:    amount,
		CreatedAt: time.Now().UTC(),
	}

	product, err := s.store.PlaceBid(bid)
	if err != nil {
		utils.Warn("bid rejected", map[string]any{
			"product_id": productID,
			"bidder":     bidder,
			"amount":     amount,
			"reason":     err.Error(),
		})
		return models.Bid{}, fmt.Errorf("service: failed to place bid on product %s by %s: %w", productID, bidder, err)
	}

	utils.Info("bid accepted", map[string]any{
		"product_id": productID,
		"bidder":     bidder,
		"new_price":  product.CurrentPrice,
	})
	return bid, nil
}

// GetBidsForProduct returns the accepted-bid history for a product
func (s *AuctionService) GetBidsForProduct(productID string) ([]models.Bid, error) {
	bids, err := s.store.GetBidsByProduct(productID)
	if err != nil {
		return nil, fmt.Errorf("service: failed to get bids for product %s: %w", productID, err)
	}
	return bids, nil
}
