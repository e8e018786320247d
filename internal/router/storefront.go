package router

import (
	"errors"
	"log"
	"net/http"

	"github.com/gin-gonic/gin"

	"tiendia.app/api/pkg/cart"
	"tiendia.app/api/pkg/checkout"
	"tiendia.app/api/pkg/global"
	"tiendia.app/api/pkg/models"
	"tiendia.app/api/pkg/mongo"
	"tiendia.app/api/pkg/redis"
)

// CartView is the session cart as the storefront renders it: ordered lines
// plus the derived total and badge count.
type CartView struct {
	Items     []cart.Line `json:"items"`
	Total     float64     `json:"total"`
	ItemCount int         `json:"item_count"`
}

func cartView(c *cart.Cart) CartView {
	return CartView{
		Items:     c.Lines(),
		Total:     c.Total(),
		ItemCount: c.ItemCount(),
	}
}

// GetStorefront loads a store's public page: profile plus product list.
// Unknown usernames are distinguished from any other load failure.
func GetStorefront(c *gin.Context) {
	username := c.Param("username")
	ctx := c.Request.Context()

	if page, err := redis.GetStorefrontFromCache(ctx, username); err == nil {
		c.Header("X-Cache", "HIT")
		c.JSON(http.StatusOK, global.SuccessResponse(page))
		return
	}

	store, err := mongo.GetStoreByUsername(ctx, username)
	if err != nil {
		if errors.Is(err, mongo.ErrStoreNotFound) {
			c.JSON(http.StatusNotFound, global.ErrorResponse("This page does not exist", []global.ValidationError{
				{Field: "username", Message: "No store exists with this username", Code: "not_found"},
			}))
			return
		}
		log.Printf("Error fetching store from MongoDB: %v", err)
		c.JSON(http.StatusInternalServerError, global.ErrorResponse("Failed to load store", nil))
		return
	}

	products, err := mongo.GetProductsByStore(ctx, store.ID)
	if err != nil {
		log.Printf("Error fetching products from MongoDB: %v", err)
		c.JSON(http.StatusInternalServerError, global.ErrorResponse("Failed to load store", nil))
		return
	}

	page := &redis.StorefrontPage{
		Store:    store.PublicProfile(),
		Products: products,
	}

	if cacheErr := redis.CacheStorefront(ctx, username, page); cacheErr != nil {
		log.Printf("Warning: Failed to cache storefront page: %v", cacheErr)
	}

	c.Header("X-Cache", "MISS")
	c.JSON(http.StatusOK, global.SuccessResponse(page))
}

// loadStorefrontStore resolves the :username path param and writes the
// storefront error responses itself on failure.
func loadStorefrontStore(c *gin.Context) (*models.Store, bool) {
	store, err := mongo.GetStoreByUsername(c.Request.Context(), c.Param("username"))
	if err != nil {
		if errors.Is(err, mongo.ErrStoreNotFound) {
			c.JSON(http.StatusNotFound, global.ErrorResponse("This page does not exist", []global.ValidationError{
				{Field: "username", Message: "No store exists with this username", Code: "not_found"},
			}))
			return nil, false
		}
		c.JSON(http.StatusInternalServerError, global.ErrorResponse("Failed to load store", nil))
		return nil, false
	}
	return store, true
}

func GetSessionCart(c *gin.Context) {
	sessionCart, err := redis.LoadCart(c.Request.Context(), c.Param("username"), c.Param("sessionId"))
	if err != nil {
		c.JSON(http.StatusInternalServerError, global.ErrorResponse("Failed to load cart", nil))
		return
	}
	c.JSON(http.StatusOK, global.SuccessResponse(cartView(sessionCart)))
}

// AddCartItem adds one unit of a product to the session cart. Sized products
// go through the size-selection gate: a missing or unknown size is rejected
// with the declared size names so the client can present the choice.
func AddCartItem(c *gin.Context) {
	var req models.AddToCartRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, global.ErrorResponse("Invalid request data", []global.ValidationError{
			{Field: "request", Message: err.Error(), Code: "validation_error"},
		}))
		return
	}

	store, ok := loadStorefrontStore(c)
	if !ok {
		return
	}

	ctx := c.Request.Context()
	username := c.Param("username")
	sessionID := c.Param("sessionId")

	product, err := mongo.GetProduct(ctx, store.ID, req.ProductID)
	if err != nil {
		if errors.Is(err, mongo.ErrProductNotFound) {
			c.JSON(http.StatusNotFound, global.ErrorResponse("Product not found", []global.ValidationError{
				{Field: "product_id", Message: "No product exists with this id", Code: "not_found"},
			}))
			return
		}
		c.JSON(http.StatusInternalServerError, global.ErrorResponse("Failed to fetch product", nil))
		return
	}

	sessionCart, err := redis.LoadCart(ctx, username, sessionID)
	if err != nil {
		c.JSON(http.StatusInternalServerError, global.ErrorResponse("Failed to load cart", nil))
		return
	}

	var picker cart.Picker
	picker.RequestAdd(sessionCart, *product)
	if picker.IsOpen() {
		if req.Size == "" {
			c.JSON(http.StatusBadRequest, global.ErrorResponse("Size selection required", sizeChoices(product)))
			return
		}
		if err := picker.Select(sessionCart, req.Size); err != nil {
			c.JSON(http.StatusBadRequest, global.ErrorResponse("Unknown size", sizeChoices(product)))
			return
		}
	}

	if err := redis.SaveCart(ctx, username, sessionID, sessionCart); err != nil {
		c.JSON(http.StatusInternalServerError, global.ErrorResponse("Failed to save cart", nil))
		return
	}

	c.JSON(http.StatusOK, global.SuccessResponse(cartView(sessionCart)))
}

func sizeChoices(product *models.Product) []global.ValidationError {
	choices := make([]global.ValidationError, 0, len(product.Sizes))
	for _, s := range product.Sizes {
		choices = append(choices, global.ValidationError{Field: "size", Message: s.Name, Code: "size_option"})
	}
	return choices
}

// UpdateCartItem sets a line's quantity to an absolute value; zero or
// negative removes the line. A missing line is a no-op, not an error.
func UpdateCartItem(c *gin.Context) {
	var req models.UpdateCartItemRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, global.ErrorResponse("Invalid request data", []global.ValidationError{
			{Field: "request", Message: err.Error(), Code: "validation_error"},
		}))
		return
	}

	ctx := c.Request.Context()
	username := c.Param("username")
	sessionID := c.Param("sessionId")

	sessionCart, err := redis.LoadCart(ctx, username, sessionID)
	if err != nil {
		c.JSON(http.StatusInternalServerError, global.ErrorResponse("Failed to load cart", nil))
		return
	}

	sessionCart.UpdateQuantity(req.ProductID, req.Size, *req.Quantity)

	if err := redis.SaveCart(ctx, username, sessionID, sessionCart); err != nil {
		c.JSON(http.StatusInternalServerError, global.ErrorResponse("Failed to save cart", nil))
		return
	}

	c.JSON(http.StatusOK, global.SuccessResponse(cartView(sessionCart)))
}

func RemoveCartItem(c *gin.Context) {
	var req models.RemoveFromCartRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, global.ErrorResponse("Invalid request data", []global.ValidationError{
			{Field: "request", Message: err.Error(), Code: "validation_error"},
		}))
		return
	}

	ctx := c.Request.Context()
	username := c.Param("username")
	sessionID := c.Param("sessionId")

	sessionCart, err := redis.LoadCart(ctx, username, sessionID)
	if err != nil {
		c.JSON(http.StatusInternalServerError, global.ErrorResponse("Failed to load cart", nil))
		return
	}

	sessionCart.Remove(req.ProductID, req.Size)

	if err := redis.SaveCart(ctx, username, sessionID, sessionCart); err != nil {
		c.JSON(http.StatusInternalServerError, global.ErrorResponse("Failed to save cart", nil))
		return
	}

	c.JSON(http.StatusOK, global.SuccessResponse(cartView(sessionCart)))
}

func ClearSessionCart(c *gin.Context) {
	if err := redis.ClearCart(c.Request.Context(), c.Param("username"), c.Param("sessionId")); err != nil {
		c.JSON(http.StatusInternalServerError, global.ErrorResponse("Failed to clear cart", nil))
		return
	}
	c.JSON(http.StatusOK, global.SuccessResponse(cartView(cart.New())))
}

// CheckoutLink composes the WhatsApp order message for the session cart and
// returns the wa.me deep link the client opens. An empty cart is rejected;
// sending never clears the cart.
func CheckoutLink(c *gin.Context) {
	store, ok := loadStorefrontStore(c)
	if !ok {
		return
	}

	sessionCart, err := redis.LoadCart(c.Request.Context(), c.Param("username"), c.Param("sessionId"))
	if err != nil {
		c.JSON(http.StatusInternalServerError, global.ErrorResponse("Failed to load cart", nil))
		return
	}

	if sessionCart.IsEmpty() {
		c.JSON(http.StatusBadRequest, global.ErrorResponse("Cart is empty", []global.ValidationError{
			{Field: "cart", Message: "Add at least one item before checking out", Code: "empty_cart"},
		}))
		return
	}

	c.JSON(http.StatusOK, global.SuccessResponse(map[string]interface{}{
		"url":     checkout.OrderLink(store.Name, store.Phone, sessionCart),
		"message": checkout.ComposeOrderMessage(store.Name, sessionCart),
	}))
}
