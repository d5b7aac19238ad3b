package controllers

import (
	"bytes"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/yeremiapane/fundraiser-shop/services"
	"github.com/yeremiapane/fundraiser-shop/utils"
)

type AdminController struct {
	Gate   *services.AdminGate
	Tokens *utils.TokenIssuer
	Orders *services.OrderService
}

func NewAdminController(gate *services.AdminGate, tokens *utils.TokenIssuer, orders *services.OrderService) *AdminController {
	return &AdminController{Gate: gate, Tokens: tokens, Orders: orders}
}

// Login -> shared passphrase for organizers, returns a bearer token
func (ac *AdminController) Login(c *gin.Context) {
	var input struct {
		Password string `json:"password" binding:"required"`
	}
	if err := c.ShouldBindJSON(&input); err != nil {
		utils.RespondError(c, http.StatusBadRequest, err)
		return
	}

	if !ac.Gate.Login(input.Password) {
		utils.InfoLogger.WithField("client", c.ClientIP()).Warn("admin login rejected")
		utils.RespondError(c, http.StatusUnauthorized, ErrInvalidCredentials)
		return
	}

	token, err := ac.Tokens.GenerateToken(utils.RoleAdmin)
	if err != nil {
		utils.RespondError(c, http.StatusInternalServerError, err)
		return
	}

	utils.InfoLogger.WithField("client", c.ClientIP()).Info("admin logged in")
	utils.RespondJSON(c, http.StatusOK, "Login successful", gin.H{"token": token})
}

// Logout -> clears the admin flag
func (ac *AdminController) Logout(c *gin.Context) {
	ac.Gate.Logout()
	utils.RespondJSON(c, http.StatusOK, "Logged out", nil)
}

// GetDashboardStats -> sales by volunteer group
func (ac *AdminController) GetDashboardStats(c *gin.Context) {
	stats := ac.Orders.DashboardStats()

	utils.RespondJSON(c, http.StatusOK, "Dashboard stats retrieved successfully", gin.H{
		"stats": stats,
		"display": gin.H{
			"totalRevenue":  utils.FormatUSD(stats.TotalRevenue),
			"avgOrderValue": utils.FormatUSD(stats.AvgOrderValue),
		},
	})
}

// GetProductionSummary -> units to prepare for the pending orders
func (ac *AdminController) GetProductionSummary(c *gin.Context) {
	utils.RespondJSON(c, http.StatusOK, "Production summary", ac.Orders.ProductionSummary())
}

// ExportProductionPDF -> printable packing sheet
func (ac *AdminController) ExportProductionPDF(c *gin.Context) {
	var buf bytes.Buffer
	now := time.Now()
	if err := services.WriteProductionPDF(&buf, ac.Orders.ProductionSummary(), ac.Orders.ListByFulfillment(false), now); err != nil {
		utils.ErrorLogger.Printf("Error generating production PDF: %v", err)
		utils.RespondError(c, http.StatusInternalServerError, err)
		return
	}

	c.Header("Content-Disposition", "attachment; filename=production-"+now.Format("2006-01-02")+".pdf")
	c.Data(http.StatusOK, "application/pdf", buf.Bytes())
}
