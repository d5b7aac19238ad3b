package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/yeremiapane/fundraiser-shop/models"
	"github.com/yeremiapane/fundraiser-shop/utils"
)

type CatalogController struct{}

func NewCatalogController() *CatalogController {
	return &CatalogController{}
}

type productView struct {
	models.Product
	TutorialLabel string `json:"tutorialLabel,omitempty"`
}

func newProductView(p models.Product) productView {
	v := productView{Product: p}
	if p.Tutorial != nil {
		v.TutorialLabel = p.Tutorial.Label()
	}
	return v
}

// GetAllProducts -> the whole catalog
func (cc *CatalogController) GetAllProducts(c *gin.Context) {
	products := models.Products()
	views := make([]productView, 0, len(products))
	for _, p := range products {
		views = append(views, newProductView(p))
	}
	utils.RespondJSON(c, http.StatusOK, "List of products", views)
}

// GetProductByID -> one product
func (cc *CatalogController) GetProductByID(c *gin.Context) {
	product, ok := models.FindProduct(c.Param("product_id"))
	if !ok {
		utils.RespondError(c, http.StatusNotFound, ErrProductNotFound)
		return
	}
	utils.RespondJSON(c, http.StatusOK, "Product detail", newProductView(product))
}

// GetPrices -> size to unit price table
func (cc *CatalogController) GetPrices(c *gin.Context) {
	type priceView struct {
		Size      models.OrderSize `json:"size"`
		UnitPrice float64          `json:"unitPrice"`
		Display   string           `json:"display"`
	}

	prices := make([]priceView, 0, len(models.OrderSizes))
	for _, size := range models.OrderSizes {
		price, _ := models.UnitPrice(size)
		prices = append(prices, priceView{Size: size, UnitPrice: price, Display: utils.FormatUSD(price)})
	}
	utils.RespondJSON(c, http.StatusOK, "Prices", prices)
}

// GetGroups -> volunteer groups in rotation order
func (cc *CatalogController) GetGroups(c *gin.Context) {
	utils.RespondJSON(c, http.StatusOK, "Volunteer groups", models.GroupNames)
}
