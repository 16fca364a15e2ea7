package api

import (
	"net/http"
	"strconv"
	"strings"

	"storefront-service/internal/models"

	"github.com/gin-gonic/gin"
	"github.com/lib/pq"
)

// LoginRequest carries admin credentials
type LoginRequest struct {
	User     string `json:"user" binding:"required"`
	Password string `json:"password" binding:"required"`
}

// login issues an admin bearer token
func (h *Handler) login(c *gin.Context) {
	var req LoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error":   "Invalid request body",
			"details": err.Error(),
		})
		return
	}

	token, err := h.auth.Login(req.User, req.Password)
	if err != nil {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Invalid credentials"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"token": token})
}

// verifyToken reports whether the presented bearer token is valid
func (h *Handler) verifyToken(c *gin.Context) {
	token := bearerToken(c)
	if token == "" {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Missing bearer token"})
		return
	}

	subject, err := h.auth.Verify(token)
	if err != nil {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Invalid token"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"valid": true, "subject": subject})
}

func bearerToken(c *gin.Context) string {
	header := c.GetHeader("Authorization")
	if !strings.HasPrefix(header, "Bearer ") {
		return ""
	}
	return strings.TrimPrefix(header, "Bearer ")
}

// listProducts returns the catalog, optionally filtered by category
func (h *Handler) listProducts(c *gin.Context) {
	category := c.Query("category")
	if category != "" && !models.ValidCategory(category) {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid category"})
		return
	}

	products, err := h.store.GetProducts(c.Request.Context(), category)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{
			"error":   "Failed to list products",
			"details": err.Error(),
		})
		return
	}

	c.JSON(http.StatusOK, gin.H{"products": products})
}

// getProduct returns a single product by ID
func (h *Handler) getProduct(c *gin.Context) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid product ID"})
		return
	}

	product, err := h.store.GetProductByID(c.Request.Context(), id)
	if err != nil {
		c.JSON(http.StatusNotFound, gin.H{
			"error":   "Product not found",
			"details": err.Error(),
		})
		return
	}

	c.JSON(http.StatusOK, gin.H{"product": product})
}

// ProductRequest is the admin create/update payload. Price in centavos.
type ProductRequest struct {
	Name        string   `json:"name" binding:"required"`
	Price       int64    `json:"price" binding:"required,min=0"`
	ImageURL    string   `json:"image_url"`
	Category    string   `json:"category" binding:"required"`
	Description string   `json:"description"`
	Tags        []string `json:"tags"`
	Available   bool     `json:"available"`
}

// createProduct adds a product to the catalog
func (h *Handler) createProduct(c *gin.Context) {
	var req ProductRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error":   "Invalid request body",
			"details": err.Error(),
		})
		return
	}
	if !models.ValidCategory(req.Category) {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid category"})
		return
	}

	product := &models.Product{
		Name:        req.Name,
		Price:       req.Price,
		ImageURL:    req.ImageURL,
		Category:    req.Category,
		Description: req.Description,
		Tags:        pq.StringArray(req.Tags),
		Available:   req.Available,
	}

	if err := h.store.CreateProduct(c.Request.Context(), product); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{
			"error":   "Failed to create product",
			"details": err.Error(),
		})
		return
	}

	c.JSON(http.StatusCreated, gin.H{"product": product})
}

// updateProduct modifies an existing product
func (h *Handler) updateProduct(c *gin.Context) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid product ID"})
		return
	}

	var req ProductRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error":   "Invalid request body",
			"details": err.Error(),
		})
		return
	}
	if !models.ValidCategory(req.Category) {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid category"})
		return
	}

	product := &models.Product{
		ID:          id,
		Name:        req.Name,
		Price:       req.Price,
		ImageURL:    req.ImageURL,
		Category:    req.Category,
		Description: req.Description,
		Tags:        pq.StringArray(req.Tags),
		Available:   req.Available,
	}

	if err := h.store.UpdateProduct(c.Request.Context(), product); err != nil {
		c.JSON(http.StatusNotFound, gin.H{
			"error":   "Failed to update product",
			"details": err.Error(),
		})
		return
	}

	c.JSON(http.StatusOK, gin.H{"product": product})
}

// deleteProduct removes a product from the catalog
func (h *Handler) deleteProduct(c *gin.Context) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid product ID"})
		return
	}

	if err := h.store.DeleteProduct(c.Request.Context(), id); err != nil {
		c.JSON(http.StatusNotFound, gin.H{
			"error":   "Failed to delete product",
			"details": err.Error(),
		})
		return
	}

	c.Status(http.StatusNoContent)
}

// listShippingRates lists the persisted shipping rates
func (h *Handler) listShippingRates(c *gin.Context) {
	rates, err := h.store.GetShippingRates(c.Request.Context())
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{
			"error":   "Failed to list shipping rates",
			"details": err.Error(),
		})
		return
	}

	c.JSON(http.StatusOK, gin.H{"shipping_rates": rates})
}

// ShippingRateRequest is the admin create/update payload. Fee in centavos.
type ShippingRateRequest struct {
	Neighborhood string `json:"neighborhood" binding:"required"`
	Fee          int64  `json:"fee" binding:"min=0"`
}

// createShippingRate adds a neighborhood rate and refreshes the resolver
func (h *Handler) createShippingRate(c *gin.Context) {
	var req ShippingRateRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error":   "Invalid request body",
			"details": err.Error(),
		})
		return
	}

	rate := &models.ShippingRate{Neighborhood: req.Neighborhood, Fee: req.Fee}
	if err := h.store.CreateShippingRate(c.Request.Context(), rate); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{
			"error":   "Failed to create shipping rate",
			"details": err.Error(),
		})
		return
	}

	h.resolver.ClearCache()
	c.JSON(http.StatusCreated, gin.H{"shipping_rate": rate})
}

// updateShippingRate modifies a neighborhood rate and refreshes the resolver
func (h *Handler) updateShippingRate(c *gin.Context) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid shipping rate ID"})
		return
	}

	var req ShippingRateRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error":   "Invalid request body",
			"details": err.Error(),
		})
		return
	}

	rate := &models.ShippingRate{ID: id, Neighborhood: req.Neighborhood, Fee: req.Fee}
	if err := h.store.UpdateShippingRate(c.Request.Context(), rate); err != nil {
		c.JSON(http.StatusNotFound, gin.H{
			"error":   "Failed to update shipping rate",
			"details": err.Error(),
		})
		return
	}

	h.resolver.ClearCache()
	c.JSON(http.StatusOK, gin.H{"shipping_rate": rate})
}

// deleteShippingRate removes a neighborhood rate and refreshes the resolver
func (h *Handler) deleteShippingRate(c *gin.Context) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid shipping rate ID"})
		return
	}

	if err := h.store.DeleteShippingRate(c.Request.Context(), id); err != nil {
		c.JSON(http.StatusNotFound, gin.H{
			"error":   "Failed to delete shipping rate",
			"details": err.Error(),
		})
		return
	}

	h.resolver.ClearCache()
	c.Status(http.StatusNoContent)
}

// getStoreStatus returns the open/closed flag
func (h *Handler) getStoreStatus(c *gin.Context) {
	status, err := h.store.GetStoreStatus(c.Request.Context())
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{
			"error":   "Failed to get store status",
			"details": err.Error(),
		})
		return
	}

	c.JSON(http.StatusOK, status)
}

// StoreStatusRequest toggles the store open/closed
type StoreStatusRequest struct {
	IsOpen *bool `json:"is_open" binding:"required"`
}

// setStoreStatus toggles the store open/closed flag
func (h *Handler) setStoreStatus(c *gin.Context) {
	var req StoreStatusRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error":   "Invalid request body",
			"details": err.Error(),
		})
		return
	}

	if err := h.store.SetStoreStatus(c.Request.Context(), *req.IsOpen); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{
			"error":   "Failed to set store status",
			"details": err.Error(),
		})
		return
	}

	c.JSON(http.StatusOK, gin.H{"is_open": *req.IsOpen})
}
