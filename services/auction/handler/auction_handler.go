package handler

import (
	"errors"
	"net/http"

	"auction-server/internal/auctionerrors"
	model "auction-server/internal/models"
	"auction-server/services/auction/helpers"
	"auction-server/utils"

	"github.com/gin-gonic/gin"
)

type AuctionServiceInterface interface {
	RegisterUser(nickname string) error
	AddProduct(name string, initialPrice float64, seller string) (model.Product, error)
	GetProducts() []model.Product
	PlaceBid(productID, bidder string, amount float64) (model.Bid, error)
	GetBidsForProduct(productID string) ([]model.Bid, error)
}

type AuctionHandler struct {
	service AuctionServiceInterface
}

func NewAuctionHandler(service AuctionServiceInterface) *AuctionHandler {
	return &AuctionHandler{service: service}
}

// RegisterUserHandler handles POST /users
func (h *AuctionHandler) RegisterUserHandler(c *gin.Context) {
	var req helpers.RegisterUserRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		helpers.HandleBindError(c, "RegisterUserHandler", err)
		return
	}

	if err := h.service.RegisterUser(req.Nickname); err != nil {
		if helpers.IsBusinessRejection(err) {
			c.JSON(http.StatusOK, helpers.RegisterUserResponse{Success: false})
			return
		}
		utils.JSONError(c, http.StatusInternalServerError, err, "internal server error")
		utils.Error("RegisterUserHandler: failed to register user", map[string]any{
			"nickname": req.Nickname,
			"error":    err.Error(),
		})
		return
	}

	c.JSON(http.StatusOK, helpers.RegisterUserResponse{Success: true})
	helpers.LogSuccess("RegisterUserHandler", "user registered", map[string]any{
		"nickname": req.Nickname,
	})
}

// AddProductHandler handles POST /products
func (h *AuctionHandler) AddProductHandler(c *gin.Context) {
	var req helpers.AddProductRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		helpers.HandleBindError(c, "AddProductHandler", err)
		return
	}

	product, err := h.service.AddProduct(req.Name, req.InitialPrice, req.Seller)
	if err != nil {
		utils.JSONError(c, http.StatusInternalServerError, err, "internal server error")
		utils.Error("AddProductHandler: failed to add product", map[string]any{
			"name":   req.Name,
			"seller": req.Seller,
			"error":  err.Error(),
		})
		return
	}

	c.JSON(http.StatusOK, helpers.AddProductResponse{Success: true, ProductID: product.ID})
	helpers.LogSuccess("AddProductHandler", "product added", map[string]any{
		"product_id": product.ID,
		"name":       product.Name,
		"seller":     product.Seller,
	})
}

// GetProductsHandler handles GET /products
func (h *AuctionHandler) GetProductsHandler(c *gin.Context) {
	products := h.service.GetProducts()
	if products == nil {
		products = []model.Product{}
	}

	c.JSON(http.StatusOK, helpers.GetProductsResponse{Products: products})
	helpers.LogSuccess("GetProductsHandler", "products listed", map[string]any{
		"count": len(products),
	})
}

// PlaceBidHandler handles POST /bids
func (h *AuctionHandler) PlaceBidHandler(c *gin.Context) {
	var req helpers.PlaceBidRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		helpers.HandleBindError(c, "PlaceBidHandler", err)
		return
	}

	bid, err := h.service.PlaceBid(req.ProductID, req.Bidder, req.Amount)
	if err != nil {
		// Unknown product and too-low amount are reported identically
		if helpers.IsBusinessRejection(err) {
			c.JSON(http.StatusOK, helpers.PlaceBidResponse{Success: false})
			return
		}
		utils.JSONError(c, http.StatusInternalServerError, err, "internal server error")
		utils.Error("PlaceBidHandler: failed to place bid", map[string]any{
			"product_id": req.ProductID,
			"bidder":     req.Bidder,
			"error":      err.Error(),
		})
		return
	}

	c.JSON(http.StatusOK, helpers.PlaceBidResponse{Success: true})
	helpers.LogSuccess("PlaceBidHandler", "bid placed", map[string]any{
		"bid_id":     bid.ID,
		"product_id": bid.ProductID,
		"bidder":     bid.Bidder,
		"amount":     bid.Amount,
	})
}

// GetProductBidsHandler handles GET /products/:product_id/bids
func (h *AuctionHandler) GetProductBidsHandler(c *gin.Context) {
	productID := c.Param("product_id")
	bids, err := h.service.GetBidsForProduct(productID)
	if err != nil {
		if errors.Is(err, auctionerrors.ErrProductNotFound) {
			utils.JSONError(c, http.StatusNotFound, err, "product not found")
			utils.Warn("GetProductBidsHandler: product not found", map[string]any{"product_id": productID})
			return
		}
		utils.JSONError(c, http.StatusInternalServerError, err, "internal server error")
		utils.Warn("GetProductBidsHandler: error retrieving bids", map[string]any{"product_id": productID, "error": err.Error()})
		return
	}

	if bids == nil {
		bids = []model.Bid{}
	}

	c.JSON(http.StatusOK, helpers.ProductBidsResponse{Bids: bids})
	helpers.LogSuccess("GetProductBidsHandler", "bids retrieved", map[string]any{
		"product_id": productID,
		"count":      len(bids),
	})
}
