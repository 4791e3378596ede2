package handlers

import (
	"fmt"
	"net/http"

	"crmbackend/controllers"
	"crmbackend/service"

	"github.com/gin-gonic/gin"
	"github.com/xuri/excelize/v2"
)

const sheetName = "Sheet1"

func writeWorkbook(c *gin.Context, f *excelize.File, filename string) {
	c.Header("Content-Type", "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet")
	c.Header("Content-Disposition", "attachment; filename="+filename)
	if err := f.Write(c.Writer); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to write workbook"})
	}
}

func setHeaderRow(f *excelize.File, headers []string) {
	for i, h := range headers {
		cell, _ := excelize.CoordinatesToCellName(i+1, 1)
		f.SetCellValue(sheetName, cell, h)
	}
}

// ExportSales streams the filtered sales report as an .xlsx attachment.
func ExportSales(c *gin.Context) {
	var filter service.SalesFilter
	if err := c.ShouldBindQuery(&filter); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	rows, err := controllers.Reports().SalesReport(c.Request.Context(), filter)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to build sales report"})
		return
	}

	f := excelize.NewFile()
	setHeaderRow(f, []string{"Number", "Client", "Sale Date", "Status", "Payment", "Total", "Balance"})
	for i, r := range rows {
		row := i + 2
		f.SetCellValue(sheetName, "A"+fmt.Sprint(row), r.Number)
		f.SetCellValue(sheetName, "B"+fmt.Sprint(row), r.ClientID)
		f.SetCellValue(sheetName, "C"+fmt.Sprint(row), r.SaleDate)
		f.SetCellValue(sheetName, "D"+fmt.Sprint(row), r.ServiceStatus)
		f.SetCellValue(sheetName, "E"+fmt.Sprint(row), r.PaymentOption)
		f.SetCellValue(sheetName, "F"+fmt.Sprint(row), r.Total)
		f.SetCellValue(sheetName, "G"+fmt.Sprint(row), r.Balance)
	}
	writeWorkbook(c, f, "sales.xlsx")
}

func ExportPurchases(c *gin.Context) {
	var filter service.PurchasesFilter
	if err := c.ShouldBindQuery(&filter); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	rows, err := controllers.Reports().PurchasesReport(c.Request.Context(), filter)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to build purchases report"})
		return
	}

	f := excelize.NewFile()
	setHeaderRow(f, []string{"Number", "Provider", "Purchase Date", "Status", "Subtotal", "Freight", "Customs", "Total"})
	for i, r := range rows {
		row := i + 2
		f.SetCellValue(sheetName, "A"+fmt.Sprint(row), r.Number)
		f.SetCellValue(sheetName, "B"+fmt.Sprint(row), r.ProviderID)
		f.SetCellValue(sheetName, "C"+fmt.Sprint(row), r.PurchaseDate)
		f.SetCellValue(sheetName, "D"+fmt.Sprint(row), r.ServiceStatus)
		f.SetCellValue(sheetName, "E"+fmt.Sprint(row), r.Subtotal)
		f.SetCellValue(sheetName, "F"+fmt.Sprint(row), r.Freight)
		f.SetCellValue(sheetName, "G"+fmt.Sprint(row), r.Customs)
		f.SetCellValue(sheetName, "H"+fmt.Sprint(row), r.TotalFinal)
	}
	writeWorkbook(c, f, "purchases.xlsx")
}

func ExportBalance(c *gin.Context) {
	rows, err := controllers.Reports().BalanceReport(c.Request.Context(), c.Query("from"), c.Query("to"))
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to build balance report"})
		return
	}

	f := excelize.NewFile()
	setHeaderRow(f, []string{"Period", "Sales", "Purchases", "Balance"})
	for i, r := range rows {
		row := i + 2
		f.SetCellValue(sheetName, "A"+fmt.Sprint(row), r.Period)
		f.SetCellValue(sheetName, "B"+fmt.Sprint(row), r.Sales)
		f.SetCellValue(sheetName, "C"+fmt.Sprint(row), r.Purchases)
		f.SetCellValue(sheetName, "D"+fmt.Sprint(row), r.Balance)
	}
	writeWorkbook(c, f, "balance.xlsx")
}
