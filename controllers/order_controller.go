package controllers

import (
	"log"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/rtu-kota/canteen-api/middleware"
	"github.com/rtu-kota/canteen-api/models"
	"github.com/rtu-kota/canteen-api/store"
)

// OrderController handles order placement and lookup
type OrderController struct {
	orders    *store.Collection[models.Order]
	validator *models.Validator
}

// NewOrderController returns an OrderController persisting into s
func NewOrderController(s store.Store, v *models.Validator) *OrderController {
	return &OrderController{
		orders:    store.NewCollection[models.Order](s, models.OrderCollection),
		validator: v,
	}
}

// CreateOrder handles POST /api/orders.
// Items and total_amount are stored as sent; they are not checked against the menu.
func (oc *OrderController) CreateOrder(c *gin.Context) {
	order := models.NewOrder()
	if !bindAndValidate(c, oc.validator, &order) {
		return
	}

	if !models.IsKnownStatus(order.Status) {
		log.Printf("[%s] order uses undocumented status %q", middleware.GetRequestID(c), order.Status)
	}

	id, err := oc.orders.Create(c.Request.Context(), order)
	if err != nil {
		respondStoreError(c, "create order", err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"id":      id,
		"message": "Order placed",
	})
}

// ListOrders handles GET /api/orders with an optional exact phone filter
func (oc *OrderController) ListOrders(c *gin.Context) {
	filter := store.Filter{}
	if phone := c.Query("phone"); phone != "" {
		filter["phone"] = phone
	}

	docs, err := oc.orders.List(c.Request.Context(), filter)
	if err != nil {
		respondStoreError(c, "list orders", err)
		return
	}

	c.JSON(http.StatusOK, publicDocuments(docs))
}
