package controllers

import (
	"net/http"

	"crmbackend/service"

	"github.com/gin-gonic/gin"
)

func SalesReport(c *gin.Context) {
	var filter service.SalesFilter
	if err := c.ShouldBindQuery(&filter); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	rows, err := reportService.SalesReport(c.Request.Context(), filter)
	if err != nil {
		respondError(c, "SalesReport", err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"rows": rows, "count": len(rows)})
}

func PurchasesReport(c *gin.Context) {
	var filter service.PurchasesFilter
	if err := c.ShouldBindQuery(&filter); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	rows, err := reportService.PurchasesReport(c.Request.Context(), filter)
	if err != nil {
		respondError(c, "PurchasesReport", err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"rows": rows, "count": len(rows)})
}

func BalanceReport(c *gin.Context) {
	rows, err := reportService.BalanceReport(c.Request.Context(), c.Query("from"), c.Query("to"))
	if err != nil {
		respondError(c, "BalanceReport", err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"rows": rows})
}

func ProductSalesReport(c *gin.Context) {
	rows, err := reportService.ProductSalesReport(c.Request.Context())
	if err != nil {
		respondError(c, "ProductSalesReport", err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"rows": rows})
}

// Dashboard returns the per-collection document counts for the landing page
// widgets.
func Dashboard(c *gin.Context) {
	counts, err := reportService.Dashboard(c.Request.Context())
	if err != nil {
		respondError(c, "Dashboard", err)
		return
	}
	c.JSON(http.StatusOK, counts)
}
