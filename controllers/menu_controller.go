package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/rtu-kota/canteen-api/models"
	"github.com/rtu-kota/canteen-api/store"
)

// MenuController serves the canteen menu
type MenuController struct {
	items     *store.Collection[models.MenuItem]
	validator *models.Validator
}

// NewMenuController returns a MenuController persisting into s
func NewMenuController(s store.Store, v *models.Validator) *MenuController {
	return &MenuController{
		items:     store.NewCollection[models.MenuItem](s, models.MenuItemCollection),
		validator: v,
	}
}

// AddMenuItem handles POST /api/menu
func (mc *MenuController) AddMenuItem(c *gin.Context) {
	item := models.NewMenuItem()
	if !bindAndValidate(c, mc.validator, &item) {
		return
	}

	id, err := mc.items.Create(c.Request.Context(), item)
	if err != nil {
		respondStoreError(c, "add menu item", err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"id":      id,
		"message": "Menu item added",
	})
}

// ListMenu handles GET /api/menu with an optional exact category filter
func (mc *MenuController) ListMenu(c *gin.Context) {
	filter := store.Filter{}
	if category := c.Query("category"); category != "" {
		filter["category"] = category
	}

	docs, err := mc.items.List(c.Request.Context(), filter)
	if err != nil {
		respondStoreError(c, "list menu", err)
		return
	}

	c.JSON(http.StatusOK, publicDocuments(docs))
}
