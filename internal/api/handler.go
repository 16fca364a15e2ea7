package api

import (
	"net/http"
	"strconv"
	"time"

	"storefront-service/internal/auth"
	"storefront-service/internal/cart"
	"storefront-service/internal/checkout"
	"storefront-service/internal/models"
	"storefront-service/internal/shipping"
	"storefront-service/internal/store"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

// Handler contains HTTP handlers
type Handler struct {
	store    *store.Store
	carts    *cart.Store
	resolver *shipping.Resolver
	checkout *checkout.Orchestrator
	auth     *auth.Service
}

// NewHandler creates a new HTTP handler
func NewHandler(
	store *store.Store,
	carts *cart.Store,
	resolver *shipping.Resolver,
	orchestrator *checkout.Orchestrator,
	authService *auth.Service,
) *Handler {
	return &Handler{
		store:    store,
		carts:    carts,
		resolver: resolver,
		checkout: orchestrator,
		auth:     authService,
	}
}

// SetupRoutes sets up HTTP routes
func (h *Handler) SetupRoutes(router *gin.Engine) {
	router.Use(gin.Recovery())
	router.Use(prometheusMiddleware())
	router.Use(gin.Logger())

	router.GET("/health", h.healthCheck)
	router.GET("/ready", h.readinessCheck)

	router.GET("/metrics", gin.WrapH(promhttp.Handler()))

	v1 := router.Group("/api/v1")
	{
		v1.POST("/auth/login", h.login)
		v1.GET("/auth/verify", h.verifyToken)

		v1.GET("/products", h.listProducts)
		v1.GET("/products/:id", h.getProduct)

		v1.GET("/shipping-rates", h.listShippingRates)
		v1.GET("/neighborhoods", h.listNeighborhoods)

		v1.GET("/store/status", h.getStoreStatus)

		v1.POST("/carts", h.createCart)
		v1.GET("/carts/:id", h.getCart)
		v1.POST("/carts/:id/items", h.addCartItem)
		v1.PATCH("/carts/:id/items/:productID", h.setCartItemQuantity)
		v1.DELETE("/carts/:id/items/:productID", h.removeCartItem)
		v1.DELETE("/carts/:id", h.clearCart)
		v1.POST("/carts/:id/checkout", h.finalizeCheckout)

		admin := v1.Group("", authRequired(h.auth))
		{
			admin.POST("/products", h.createProduct)
			admin.PATCH("/products/:id", h.updateProduct)
			admin.DELETE("/products/:id", h.deleteProduct)

			admin.POST("/shipping-rates", h.createShippingRate)
			admin.PATCH("/shipping-rates/:id", h.updateShippingRate)
			admin.DELETE("/shipping-rates/:id", h.deleteShippingRate)

			admin.PUT("/store/status", h.setStoreStatus)
		}
	}
}

// healthCheck handles health check requests
func (h *Handler) healthCheck(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"status": "healthy",
		"time":   time.Now().Unix(),
	})
}

// readinessCheck handles readiness check requests
func (h *Handler) readinessCheck(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"status": "ready",
		"time":   time.Now().Unix(),
	})
}

// createCart issues a new empty cart ID
func (h *Handler) createCart(c *gin.Context) {
	c.JSON(http.StatusCreated, gin.H{
		"cart": models.Cart{ID: uuid.New().String(), Lines: []models.CartLine{}},
	})
}

// getCart returns the current cart contents
func (h *Handler) getCart(c *gin.Context) {
	cartData, err := h.carts.Load(c.Request.Context(), c.Param("id"))
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{
			"error":   "Failed to load cart",
			"details": err.Error(),
		})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"cart":     cartData,
		"subtotal": cartData.Subtotal(),
	})
}

// AddCartItemRequest adds a product to a cart
type AddCartItemRequest struct {
	ProductID int64  `json:"product_id" binding:"required"`
	Quantity  int    `json:"quantity" binding:"required,min=1"`
	Notes     string `json:"notes"`
}

// addCartItem handles add-to-cart, snapshotting the product into the line
func (h *Handler) addCartItem(c *gin.Context) {
	var req AddCartItemRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error":   "Invalid request body",
			"details": err.Error(),
		})
		return
	}

	product, err := h.store.GetProductByID(c.Request.Context(), req.ProductID)
	if err != nil {
		c.JSON(http.StatusNotFound, gin.H{
			"error":   "Product not found",
			"details": err.Error(),
		})
		return
	}
	if !product.Available {
		c.JSON(http.StatusConflict, gin.H{
			"error": "Product is not available",
		})
		return
	}

	cartData, err := h.carts.AddOrMerge(c.Request.Context(), c.Param("id"), *product, req.Quantity, req.Notes)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{
			"error":   "Failed to update cart",
			"details": err.Error(),
		})
		return
	}

	c.JSON(http.StatusOK, gin.H{"cart": cartData})
}

// SetQuantityRequest overwrites a line quantity
type SetQuantityRequest struct {
	Quantity int `json:"quantity"`
}

// setCartItemQuantity overwrites a line's quantity; zero or less removes it
func (h *Handler) setCartItemQuantity(c *gin.Context) {
	productID, err := strconv.ParseInt(c.Param("productID"), 10, 64)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid product ID"})
		return
	}

	var req SetQuantityRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error":   "Invalid request body",
			"details": err.Error(),
		})
		return
	}

	cartData, err := h.carts.SetQuantity(c.Request.Context(), c.Param("id"), productID, req.Quantity)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{
			"error":   "Failed to update cart",
			"details": err.Error(),
		})
		return
	}

	c.JSON(http.StatusOK, gin.H{"cart": cartData})
}

// removeCartItem deletes a line from the cart
func (h *Handler) removeCartItem(c *gin.Context) {
	productID, err := strconv.ParseInt(c.Param("productID"), 10, 64)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid product ID"})
		return
	}

	cartData, err := h.carts.Remove(c.Request.Context(), c.Param("id"), productID)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{
			"error":   "Failed to update cart",
			"details": err.Error(),
		})
		return
	}

	c.JSON(http.StatusOK, gin.H{"cart": cartData})
}

// clearCart empties the cart
func (h *Handler) clearCart(c *gin.Context) {
	if err := h.carts.Clear(c.Request.Context(), c.Param("id")); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{
			"error":   "Failed to clear cart",
			"details": err.Error(),
		})
		return
	}
	c.Status(http.StatusNoContent)
}

// finalizeCheckout runs the checkout pipeline and returns the handoff link
func (h *Handler) finalizeCheckout(c *gin.Context) {
	var info models.DeliveryInfo
	if err := c.ShouldBindJSON(&info); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error":   "Invalid request body",
			"details": err.Error(),
		})
		return
	}

	status, err := h.store.GetStoreStatus(c.Request.Context())
	if err == nil && !status.IsOpen {
		c.JSON(http.StatusConflict, gin.H{
			"error": "Store is closed",
		})
		return
	}

	result, fieldErrs, err := h.checkout.Finalize(c.Request.Context(), c.Param("id"), info)
	if fieldErrs != nil {
		c.JSON(http.StatusUnprocessableEntity, gin.H{
			"error":  "Validation failed",
			"fields": fieldErrs,
		})
		return
	}
	if err != nil {
		c.JSON(http.StatusUnprocessableEntity, gin.H{
			"error":   "Failed to finalize order",
			"details": err.Error(),
		})
		return
	}

	c.JSON(http.StatusOK, result)
}

// listNeighborhoods returns the known neighborhoods from the rate resolver
func (h *Handler) listNeighborhoods(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"neighborhoods": h.resolver.Neighborhoods(c.Request.Context()),
	})
}
