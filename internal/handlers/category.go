package handlers

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"bloghub/internal/db"
	"bloghub/internal/models"
	"bloghub/internal/utils"
	"bloghub/internal/validate"
)

const (
	categoryCacheKey = "categories:all"
	categoryCacheTTL = 60 * time.Second
)

type CategoryHandler struct{}

func NewCategoryHandler() *CategoryHandler {
	return &CategoryHandler{}
}

type createCategoryRequest struct {
	Name string `json:"name"`
}

func (h *CategoryHandler) Create(c *gin.Context) {
	var req createCategoryRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		message(c, http.StatusBadRequest, `"name" is required`)
		return
	}

	if verr := validate.CategoryName(req.Name); verr != nil {
		rejected(c, verr)
		return
	}

	category := models.Category{Name: req.Name}
	if err := db.DB.WithContext(c.Request.Context()).Create(&category).Error; err != nil {
		storeFailure(c, err)
		return
	}

	utils.GetCache().Delete(categoryCacheKey)
	c.JSON(http.StatusCreated, category)
}

func (h *CategoryHandler) List(c *gin.Context) {
	cache := utils.GetCache()
	if cached, ok := cache.Get(categoryCacheKey); ok {
		if categories, ok := cached.([]models.Category); ok {
			c.JSON(http.StatusOK, categories)
			return
		}
	}

	var categories []models.Category
	if err := db.DB.WithContext(c.Request.Context()).Find(&categories).Error; err != nil {
		storeFailure(c, err)
		return
	}

	cache.Set(categoryCacheKey, categories, categoryCacheTTL)
	c.JSON(http.StatusOK, categories)
}
