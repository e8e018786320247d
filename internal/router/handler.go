package router

import (
	"errors"
	"log"
	"net/http"

	"github.com/gin-gonic/gin"
	"golang.org/x/crypto/bcrypt"

	"tiendia.app/api/pkg/auth"
	"tiendia.app/api/pkg/email"
	"tiendia.app/api/pkg/global"
	"tiendia.app/api/pkg/models"
	"tiendia.app/api/pkg/mongo"
	"tiendia.app/api/pkg/redis"
)

func HealthCheck(c *gin.Context) {
	db := mongo.GetDatabase()
	if err := db.Client().Ping(c, nil); err != nil {
		c.JSON(http.StatusInternalServerError, global.ErrorResponse("Database connection failed", nil))
		return
	}
	c.JSON(http.StatusOK, global.SuccessResponse(map[string]string{"status": "OK", "database": "Connected"}))
}

func RegisterStore(c *gin.Context) {
	var req models.RegisterStoreRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, global.ErrorResponse("Invalid request data", []global.ValidationError{
			{Field: "request", Message: err.Error(), Code: "validation_error"},
		}))
		return
	}

	hashedPassword, err := bcrypt.GenerateFromPassword([]byte(req.Password), bcrypt.DefaultCost)
	if err != nil {
		c.JSON(http.StatusInternalServerError, global.ErrorResponse("Failed to process password", nil))
		return
	}

	store := &models.Store{
		Username: req.Username,
		Name:     req.Name,
		Email:    req.Email,
		Password: string(hashedPassword),
		Phone:    req.Phone,
	}

	createdStore, err := mongo.CreateStore(c.Request.Context(), store)
	if err != nil {
		if errors.Is(err, mongo.ErrEmailTaken) {
			c.JSON(http.StatusConflict, global.ErrorResponse("Email already registered", []global.ValidationError{
				{Field: "email", Message: "This email is already in use", Code: "duplicate_email"},
			}))
			return
		}
		if errors.Is(err, mongo.ErrUsernameTaken) {
			c.JSON(http.StatusConflict, global.ErrorResponse("Username already taken", []global.ValidationError{
				{Field: "username", Message: "This username is already in use", Code: "duplicate_username"},
			}))
			return
		}
		c.JSON(http.StatusInternalServerError, global.ErrorResponse("Failed to create store", nil))
		return
	}

	if emailErr := email.SendWelcomeEmail(createdStore.Name, createdStore.Email, createdStore.Username); emailErr != nil {
		log.Printf("Warning: Failed to send welcome email: %v", emailErr)
	}

	token, err := auth.GenerateToken(createdStore.ID.Hex(), createdStore.Email)
	if err != nil {
		c.JSON(http.StatusInternalServerError, global.ErrorResponse("Failed to issue token", nil))
		return
	}

	c.JSON(http.StatusCreated, global.SuccessResponse(map[string]interface{}{
		"store": createdStore,
		"token": token,
	}))
}

func Login(c *gin.Context) {
	var req models.LoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, global.ErrorResponse("Invalid request data", []global.ValidationError{
			{Field: "request", Message: err.Error(), Code: "validation_error"},
		}))
		return
	}

	store, err := mongo.GetStoreByEmail(c.Request.Context(), req.Email)
	if err != nil {
		if errors.Is(err, mongo.ErrStoreNotFound) {
			c.JSON(http.StatusUnauthorized, global.ErrorResponse("Invalid email or password", nil))
			return
		}
		c.JSON(http.StatusInternalServerError, global.ErrorResponse("Failed to log in", nil))
		return
	}

	if err := bcrypt.CompareHashAndPassword([]byte(store.Password), []byte(req.Password)); err != nil {
		c.JSON(http.StatusUnauthorized, global.ErrorResponse("Invalid email or password", nil))
		return
	}

	token, err := auth.GenerateToken(store.ID.Hex(), store.Email)
	if err != nil {
		c.JSON(http.StatusInternalServerError, global.ErrorResponse("Failed to issue token", nil))
		return
	}

	c.JSON(http.StatusOK, global.SuccessResponse(map[string]interface{}{
		"store": store,
		"token": token,
	}))
}

func GetMyStore(c *gin.Context) {
	store, err := mongo.GetStoreByID(c.Request.Context(), storeIDFromContext(c))
	if err != nil {
		c.JSON(http.StatusInternalServerError, global.ErrorResponse("Failed to fetch store", nil))
		return
	}
	c.JSON(http.StatusOK, global.SuccessResponse(store))
}

func UpdateMyStore(c *gin.Context) {
	var req models.UpdateStoreRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, global.ErrorResponse("Invalid request data", []global.ValidationError{
			{Field: "request", Message: err.Error(), Code: "validation_error"},
		}))
		return
	}

	store, err := mongo.UpdateStore(c.Request.Context(), storeIDFromContext(c), &req)
	if err != nil {
		c.JSON(http.StatusInternalServerError, global.ErrorResponse("Failed to update store", nil))
		return
	}

	if cacheErr := redis.InvalidateStorefront(c.Request.Context(), store.Username); cacheErr != nil {
		log.Printf("Warning: Failed to invalidate storefront cache: %v", cacheErr)
	}

	c.JSON(http.StatusOK, global.SuccessResponse(store))
}

func GetMyCatalogStats(c *gin.Context) {
	stats, err := mongo.GetCatalogStats(c.Request.Context(), storeIDFromContext(c))
	if err != nil {
		c.JSON(http.StatusInternalServerError, global.ErrorResponse("Failed to fetch catalog stats", nil))
		return
	}
	c.JSON(http.StatusOK, global.SuccessResponse(stats))
}
