package controllers

import (
	"errors"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/yeremiapane/fundraiser-shop/models"
	"github.com/yeremiapane/fundraiser-shop/services"
	"github.com/yeremiapane/fundraiser-shop/utils"
)

type OrderController struct {
	Orders *services.OrderService
	Cart   *services.CartService
}

func NewOrderController(orders *services.OrderService, cart *services.CartService) *OrderController {
	return &OrderController{Orders: orders, Cart: cart}
}

// CreateOrder -> checkout the current cart
func (oc *OrderController) CreateOrder(c *gin.Context) {
	var body struct {
		CustomerName            string                `json:"customerName" binding:"required"`
		CustomerContact         string                `json:"customerContact" binding:"required"`
		DeliveryOption          models.DeliveryOption `json:"deliveryOption" binding:"required"`
		DeliveryAddress         string                `json:"deliveryAddress"`
		ZelleConfirmationNumber string                `json:"zelleConfirmationNumber" binding:"required"`
		IsRecurring             bool                  `json:"isRecurring"`
	}
	if err := c.ShouldBindJSON(&body); err != nil {
		utils.RespondError(c, http.StatusBadRequest, err)
		return
	}

	if !body.DeliveryOption.IsValid() {
		utils.RespondError(c, http.StatusBadRequest, ErrInvalidDelivery)
		return
	}
	if body.DeliveryOption == models.Delivery && strings.TrimSpace(body.DeliveryAddress) == "" {
		utils.RespondError(c, http.StatusBadRequest, ErrAddressRequired)
		return
	}
	if oc.Cart.Snapshot().IsEmpty() {
		utils.RespondError(c, http.StatusBadRequest, ErrEmptyCart)
		return
	}

	order := oc.Orders.CreateOrder(services.CreateOrderInput{
		CustomerName:            strings.TrimSpace(body.CustomerName),
		CustomerContact:         strings.TrimSpace(body.CustomerContact),
		DeliveryOption:          body.DeliveryOption,
		DeliveryAddress:         strings.TrimSpace(body.DeliveryAddress),
		ZelleConfirmationNumber: strings.TrimSpace(body.ZelleConfirmationNumber),
		IsRecurring:             body.IsRecurring,
	})

	utils.RespondJSON(c, http.StatusCreated, "Order created", order)
}

// GetAllOrders -> every order, or ?status=pending / ?status=fulfilled
func (oc *OrderController) GetAllOrders(c *gin.Context) {
	switch c.Query("status") {
	case "":
		utils.RespondJSON(c, http.StatusOK, "List of orders", oc.Orders.List())
	case "pending":
		utils.RespondJSON(c, http.StatusOK, "Pending orders", oc.Orders.ListByFulfillment(false))
	case "fulfilled":
		utils.RespondJSON(c, http.StatusOK, "Fulfilled orders", oc.Orders.ListByFulfillment(true))
	default:
		utils.RespondError(c, http.StatusBadRequest, errors.New("status must be pending or fulfilled"))
	}
}

// GetOrderByID -> detail 1 order
func (oc *OrderController) GetOrderByID(c *gin.Context) {
	order, ok := oc.Orders.Get(c.Param("order_id"))
	if !ok {
		utils.RespondError(c, http.StatusNotFound, ErrOrderNotFound)
		return
	}
	utils.RespondJSON(c, http.StatusOK, "Order detail", order)
}

// UpdateOrder -> admin edit; the total is recomputed by the service
func (oc *OrderController) UpdateOrder(c *gin.Context) {
	var patch models.OrderPatch
	if err := c.ShouldBindJSON(&patch); err != nil {
		utils.RespondError(c, http.StatusBadRequest, err)
		return
	}
	if err := normalizePatch(&patch); err != nil {
		utils.RespondError(c, http.StatusBadRequest, err)
		return
	}

	current, ok := oc.Orders.Get(c.Param("order_id"))
	if !ok {
		utils.RespondError(c, http.StatusNotFound, ErrOrderNotFound)
		return
	}
	// the merged order must still carry an address when it is a delivery
	patch.Apply(&current)
	if current.DeliveryOption == models.Delivery && strings.TrimSpace(current.DeliveryAddress) == "" {
		utils.RespondError(c, http.StatusBadRequest, ErrAddressRequired)
		return
	}

	order, ok := oc.Orders.UpdateOrder(c.Param("order_id"), patch)
	if !ok {
		utils.RespondError(c, http.StatusNotFound, ErrOrderNotFound)
		return
	}
	utils.RespondJSON(c, http.StatusOK, "Order updated", order)
}

// ToggleFulfilled -> mark fulfilled / unfulfilled
func (oc *OrderController) ToggleFulfilled(c *gin.Context) {
	order, ok := oc.Orders.ToggleFulfilled(c.Param("order_id"))
	if !ok {
		utils.RespondError(c, http.StatusNotFound, ErrOrderNotFound)
		return
	}

	message := "Order marked as unfulfilled"
	if order.IsFulfilled {
		message = "Order marked as fulfilled"
	}
	utils.RespondJSON(c, http.StatusOK, message, order)
}

// normalizePatch rejects values the edit form can't produce and fills product names
// from the catalog for newly added rows.
func normalizePatch(p *models.OrderPatch) error {
	if p.Items != nil {
		items := *p.Items
		for i := range items {
			product, ok := models.FindProduct(items[i].ProductID)
			if !ok {
				return ErrProductNotFound
			}
			if !items[i].Size.IsValid() {
				return ErrInvalidSize
			}
			if items[i].ProductName == "" {
				items[i].ProductName = product.Name
			}
		}
	}
	if p.DonationAmount != nil && *p.DonationAmount < 0 {
		return ErrNegativeDonation
	}
	if p.DeliveryOption != nil && !p.DeliveryOption.IsValid() {
		return ErrInvalidDelivery
	}
	if p.AssignedGroup != nil && !p.AssignedGroup.IsValid() {
		return ErrInvalidGroup
	}
	return nil
}
