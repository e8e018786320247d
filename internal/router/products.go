package router

import (
	"encoding/json"
	"errors"
	"log"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"tiendia.app/api/pkg/ai"
	"tiendia.app/api/pkg/global"
	"tiendia.app/api/pkg/models"
	"tiendia.app/api/pkg/mongo"
	"tiendia.app/api/pkg/redis"
)

func productIDParam(c *gin.Context) (int64, bool) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil || id < 1 {
		c.JSON(http.StatusBadRequest, global.ErrorResponse("Invalid product id", []global.ValidationError{
			{Field: "id", Message: "Product id must be a positive integer", Code: "invalid_format"},
		}))
		return 0, false
	}
	return id, true
}

// invalidateOwnStorefront drops the cached public page after a catalog
// mutation. Cache errors are logged, never surfaced.
func invalidateOwnStorefront(c *gin.Context) {
	store, err := mongo.GetStoreByID(c.Request.Context(), storeIDFromContext(c))
	if err != nil {
		log.Printf("Warning: Failed to resolve store for cache invalidation: %v", err)
		return
	}
	if err := redis.InvalidateStorefront(c.Request.Context(), store.Username); err != nil {
		log.Printf("Warning: Failed to invalidate storefront cache: %v", err)
	}
}

func ListMyProducts(c *gin.Context) {
	products, err := mongo.GetProductsByStore(c.Request.Context(), storeIDFromContext(c))
	if err != nil {
		c.JSON(http.StatusInternalServerError, global.ErrorResponse("Failed to get products", nil))
		return
	}
	c.JSON(http.StatusOK, global.SuccessResponse(products))
}

func CreateProduct(c *gin.Context) {
	var req models.CreateProductRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, global.ErrorResponse("Invalid request data", []global.ValidationError{
			{Field: "request", Message: err.Error(), Code: "validation_error"},
		}))
		return
	}

	ctx := c.Request.Context()
	storeID := storeIDFromContext(c)

	productID, err := mongo.NextProductID(ctx, storeID)
	if err != nil {
		c.JSON(http.StatusInternalServerError, global.ErrorResponse("Failed to create product", nil))
		return
	}

	created, err := mongo.CreateProduct(ctx, req.ToProduct(storeID, productID))
	if err != nil {
		c.JSON(http.StatusInternalServerError, global.ErrorResponse("Failed to create product", nil))
		return
	}

	invalidateOwnStorefront(c)
	c.JSON(http.StatusCreated, global.SuccessResponse(created))
}

func EditProduct(c *gin.Context) {
	productID, ok := productIDParam(c)
	if !ok {
		return
	}

	var updates map[string]interface{}
	if err := c.ShouldBindJSON(&updates); err != nil {
		c.JSON(http.StatusBadRequest, global.ErrorResponse("Invalid JSON format", []global.ValidationError{
			{Field: "body", Message: err.Error(), Code: "json_parse_error"},
		}))
		return
	}

	// Identity and ownership fields never change through this endpoint.
	immutableFields := []string{"_id", "id", "product_id", "store_id", "created_at"}
	for _, field := range immutableFields {
		if _, exists := updates[field]; exists {
			delete(updates, field)
			log.Printf("Warning: Removed immutable field '%s' from update request", field)
		}
	}

	if len(updates) == 0 {
		c.JSON(http.StatusBadRequest, global.ErrorResponse("No updates provided", []global.ValidationError{
			{Field: "body", Message: "Request body must contain at least one field to update", Code: "empty_updates"},
		}))
		return
	}

	// Replacing the size list re-keys every size: synthetic ids belong to
	// this catalog revision, and carts hold snapshots anyway.
	if rawSizes, exists := updates["sizes"]; exists {
		sizes, err := parseSizeUpdates(rawSizes)
		if err != nil {
			c.JSON(http.StatusBadRequest, global.ErrorResponse("Invalid sizes", []global.ValidationError{
				{Field: "sizes", Message: err.Error(), Code: "validation_error"},
			}))
			return
		}
		updates["sizes"] = sizes
	}

	updated, err := mongo.UpdateProduct(c.Request.Context(), storeIDFromContext(c), productID, updates)
	if err != nil {
		if errors.Is(err, mongo.ErrProductNotFound) {
			c.JSON(http.StatusNotFound, global.ErrorResponse("Product not found", []global.ValidationError{
				{Field: "id", Message: "No product exists with this id", Code: "not_found"},
			}))
			return
		}
		log.Printf("Error updating product in MongoDB: %v", err)
		c.JSON(http.StatusInternalServerError, global.ErrorResponse("Failed to update product", nil))
		return
	}

	invalidateOwnStorefront(c)
	c.JSON(http.StatusOK, global.SuccessResponse(updated))
}

func parseSizeUpdates(raw interface{}) ([]models.Size, error) {
	encoded, err := json.Marshal(raw)
	if err != nil {
		return nil, err
	}
	var inputs []models.SizeInput
	if err := json.Unmarshal(encoded, &inputs); err != nil {
		return nil, errors.New("sizes must be a list of {name, stock} objects")
	}

	sizes := make([]models.Size, 0, len(inputs))
	for _, in := range inputs {
		if in.Name == "" {
			return nil, errors.New("size name is required")
		}
		if in.Stock < 0 {
			return nil, errors.New("size stock cannot be negative")
		}
		sizes = append(sizes, models.Size{ID: uuid.NewString(), Name: in.Name, Stock: in.Stock})
	}
	return sizes, nil
}

func DeleteProduct(c *gin.Context) {
	productID, ok := productIDParam(c)
	if !ok {
		return
	}

	deleted, err := mongo.DeleteProduct(c.Request.Context(), storeIDFromContext(c), productID)
	if err != nil {
		if errors.Is(err, mongo.ErrProductNotFound) {
			c.JSON(http.StatusNotFound, global.ErrorResponse("Product not found", []global.ValidationError{
				{Field: "id", Message: "No product exists with this id", Code: "not_found"},
			}))
			return
		}
		log.Printf("Error deleting product from MongoDB: %v", err)
		c.JSON(http.StatusInternalServerError, global.ErrorResponse("Failed to delete product", nil))
		return
	}

	invalidateOwnStorefront(c)
	c.JSON(http.StatusOK, global.SuccessResponse(map[string]interface{}{
		"deleted_product": deleted,
		"message":         "Product successfully deleted",
	}))
}

// GenerateProductImage asks the AI service for a studio photo of the product
// and appends the result to the product's image list.
func GenerateProductImage(c *gin.Context) {
	productID, ok := productIDParam(c)
	if !ok {
		return
	}

	if !ai.IsEnabled() {
		c.JSON(http.StatusServiceUnavailable, global.ErrorResponse("AI image generation is not available", nil))
		return
	}

	ctx := c.Request.Context()
	storeID := storeIDFromContext(c)

	product, err := mongo.GetProduct(ctx, storeID, productID)
	if err != nil {
		if errors.Is(err, mongo.ErrProductNotFound) {
			c.JSON(http.StatusNotFound, global.ErrorResponse("Product not found", []global.ValidationError{
				{Field: "id", Message: "No product exists with this id", Code: "not_found"},
			}))
			return
		}
		c.JSON(http.StatusInternalServerError, global.ErrorResponse("Failed to fetch product", nil))
		return
	}

	image, err := ai.GenerateProductImage(ctx, product)
	if err != nil {
		c.JSON(http.StatusBadGateway, global.ErrorResponse("Image generation failed", nil))
		return
	}

	updates := map[string]interface{}{
		"images": append(product.Images, image.URL),
	}
	if product.ImageURL == "" {
		updates["image_url"] = image.URL
	}

	updated, err := mongo.UpdateProduct(ctx, storeID, productID, updates)
	if err != nil {
		c.JSON(http.StatusInternalServerError, global.ErrorResponse("Failed to save generated image", nil))
		return
	}

	invalidateOwnStorefront(c)
	c.JSON(http.StatusOK, global.SuccessResponse(map[string]interface{}{
		"image":   image,
		"product": updated,
	}))
}

// GenerateProductDescription returns AI-written sales copy for the product
// without persisting it; the dashboard lets the owner edit before saving.
func GenerateProductDescription(c *gin.Context) {
	productID, ok := productIDParam(c)
	if !ok {
		return
	}

	if !ai.IsEnabled() {
		c.JSON(http.StatusServiceUnavailable, global.ErrorResponse("AI description generation is not available", nil))
		return
	}

	ctx := c.Request.Context()

	product, err := mongo.GetProduct(ctx, storeIDFromContext(c), productID)
	if err != nil {
		if errors.Is(err, mongo.ErrProductNotFound) {
			c.JSON(http.StatusNotFound, global.ErrorResponse("Product not found", []global.ValidationError{
				{Field: "id", Message: "No product exists with this id", Code: "not_found"},
			}))
			return
		}
		c.JSON(http.StatusInternalServerError, global.ErrorResponse("Failed to fetch product", nil))
		return
	}

	description, err := ai.GenerateProductDescription(ctx, product)
	if err != nil {
		c.JSON(http.StatusBadGateway, global.ErrorResponse("Description generation failed", nil))
		return
	}

	c.JSON(http.StatusOK, global.SuccessResponse(map[string]string{"description": description}))
}
