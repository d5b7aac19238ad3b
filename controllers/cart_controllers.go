package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/yeremiapane/fundraiser-shop/models"
	"github.com/yeremiapane/fundraiser-shop/services"
	"github.com/yeremiapane/fundraiser-shop/utils"
)

type CartController struct {
	Cart *services.CartService
}

func NewCartController(cart *services.CartService) *CartController {
	return &CartController{Cart: cart}
}

type cartView struct {
	models.Cart
	Subtotal float64 `json:"subtotal"`
	Total    float64 `json:"total"`
}

func newCartView(cart models.Cart) cartView {
	return cartView{
		Cart:     cart,
		Subtotal: services.ProductSubtotal(cart.Items),
		Total:    services.ComputeTotal(cart.Items, false, cart.DonationAmount),
	}
}

type cartItemKey struct {
	ProductID string           `json:"productId" binding:"required"`
	Size      models.OrderSize `json:"size" binding:"required"`
}

// GetCart -> current cart with running totals
func (cc *CartController) GetCart(c *gin.Context) {
	utils.RespondJSON(c, http.StatusOK, "Cart", newCartView(cc.Cart.Snapshot()))
}

// AddItem -> merge a product/size into the cart
func (cc *CartController) AddItem(c *gin.Context) {
	var body struct {
		cartItemKey
		Quantity int `json:"quantity" binding:"required,gt=0"`
	}
	if err := c.ShouldBindJSON(&body); err != nil {
		utils.RespondError(c, http.StatusBadRequest, err)
		return
	}
	if _, ok := models.FindProduct(body.ProductID); !ok {
		utils.RespondError(c, http.StatusNotFound, ErrProductNotFound)
		return
	}
	if !body.Size.IsValid() {
		utils.RespondError(c, http.StatusBadRequest, ErrInvalidSize)
		return
	}

	cc.Cart.AddItem(body.ProductID, body.Size, body.Quantity)
	utils.RespondJSON(c, http.StatusOK, "Item added", newCartView(cc.Cart.Snapshot()))
}

// UpdateQuantity -> set the quantity of a line, 0 or less removes it
func (cc *CartController) UpdateQuantity(c *gin.Context) {
	var body struct {
		cartItemKey
		Quantity *int `json:"quantity" binding:"required"`
	}
	if err := c.ShouldBindJSON(&body); err != nil {
		utils.RespondError(c, http.StatusBadRequest, err)
		return
	}

	cc.Cart.UpdateQuantity(body.ProductID, body.Size, *body.Quantity)
	utils.RespondJSON(c, http.StatusOK, "Cart updated", newCartView(cc.Cart.Snapshot()))
}

// RemoveItem -> drop a line
func (cc *CartController) RemoveItem(c *gin.Context) {
	var body cartItemKey
	if err := c.ShouldBindJSON(&body); err != nil {
		utils.RespondError(c, http.StatusBadRequest, err)
		return
	}

	cc.Cart.RemoveItem(body.ProductID, body.Size)
	utils.RespondJSON(c, http.StatusOK, "Item removed", newCartView(cc.Cart.Snapshot()))
}

// SetDonation -> free-form donation added on top of the products
func (cc *CartController) SetDonation(c *gin.Context) {
	var body struct {
		Amount *float64 `json:"amount" binding:"required"`
	}
	if err := c.ShouldBindJSON(&body); err != nil {
		utils.RespondError(c, http.StatusBadRequest, err)
		return
	}
	if *body.Amount < 0 {
		utils.RespondError(c, http.StatusBadRequest, ErrNegativeDonation)
		return
	}

	cc.Cart.SetDonation(*body.Amount)
	utils.RespondJSON(c, http.StatusOK, "Donation updated", newCartView(cc.Cart.Snapshot()))
}

// ClearCart -> discard everything
func (cc *CartController) ClearCart(c *gin.Context) {
	cc.Cart.Clear()
	utils.RespondJSON(c, http.StatusOK, "Cart cleared", newCartView(cc.Cart.Snapshot()))
}
