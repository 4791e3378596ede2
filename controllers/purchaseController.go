package controllers

import (
	"net/http"
	"time"

	"crmbackend/cache"
	"crmbackend/config"
	"crmbackend/models"

	"github.com/gin-gonic/gin"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
)

func ListPurchases(c *gin.Context) {
	filter := bson.M{}
	if providerID := c.Query("provider_id"); providerID != "" {
		filter["provider_id"] = providerID
	}
	if status := c.Query("status"); status != "" {
		filter["service_status"] = status
	}
	listPaged(c, config.PurchaseCollection, "purchases", filter, nil)
}

func GetPurchase(c *gin.Context) {
	number := c.Param("number")

	var purchase models.Purchase
	err := config.PurchaseCollection.FindOne(c.Request.Context(), bson.M{"number": number}).Decode(&purchase)
	if err != nil {
		if err == mongo.ErrNoDocuments {
			c.JSON(http.StatusNotFound, gin.H{"error": "Purchase not found"})
		} else {
			respondError(c, "GetPurchase", err)
		}
		return
	}

	lines, err := purchaseService.Lines(c.Request.Context(), number)
	if err != nil {
		respondError(c, "GetPurchase", err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"purchase": purchase, "lines": lines})
}

func AddPurchase(c *gin.Context) {
	var purchase models.Purchase
	if err := c.ShouldBindJSON(&purchase); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	if purchase.Freight < 0 || purchase.Customs < 0 {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Freight and customs must be non-negative"})
		return
	}

	count, err := config.PurchaseCollection.CountDocuments(c.Request.Context(), bson.M{"number": purchase.Number})
	if err != nil {
		respondError(c, "AddPurchase", err)
		return
	}
	if count > 0 {
		c.JSON(http.StatusConflict, gin.H{"error": "Purchase number already exists"})
		return
	}

	purchase.ID = primitive.NewObjectID()
	purchase.Subtotal = 0
	purchase.TotalFinal = purchase.Freight + purchase.Customs
	if purchase.ServiceStatus == "" {
		purchase.ServiceStatus = "pending"
	}
	purchase.CreatedAt = time.Now()
	purchase.UpdatedAt = purchase.CreatedAt

	if _, err := config.PurchaseCollection.InsertOne(c.Request.Context(), purchase); err != nil {
		respondError(c, "AddPurchase", err)
		return
	}
	cache.Shared.Bump("purchases")
	c.JSON(http.StatusCreated, purchase)
}

func UpdatePurchase(c *gin.Context) {
	number := c.Param("number")

	var input models.UpdatePurchase
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	update := bson.M{"updated_at": time.Now()}
	if input.ProviderID != "" {
		update["provider_id"] = input.ProviderID
	}
	if input.PurchaseDate != "" {
		update["purchase_date"] = input.PurchaseDate
	}
	if input.ReceptionDate != "" {
		update["reception_date"] = input.ReceptionDate
	}
	if input.PaymentTypeID != "" {
		update["paymenttype_id"] = input.PaymentTypeID
	}
	if input.PaymentType2ID != "" {
		update["paymenttype2_id"] = input.PaymentType2ID
	}
	if input.Balance != nil {
		update["balance"] = *input.Balance
	}
	if input.ServiceStatus != "" {
		if input.ServiceStatus != "pending" && input.ServiceStatus != "done" {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Service status must be pending or done"})
			return
		}
		update["service_status"] = input.ServiceStatus
	}
	costsChanged := false
	if input.Freight != nil {
		if *input.Freight < 0 {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Freight must be non-negative"})
			return
		}
		update["freight"] = *input.Freight
		costsChanged = true
	}
	if input.Customs != nil {
		if *input.Customs < 0 {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Customs must be non-negative"})
			return
		}
		update["customs"] = *input.Customs
		costsChanged = true
	}

	res, err := config.PurchaseCollection.UpdateOne(c.Request.Context(), bson.M{"number": number}, bson.M{"$set": update})
	if err != nil {
		respondError(c, "UpdatePurchase", err)
		return
	}
	if res.MatchedCount == 0 {
		c.JSON(http.StatusNotFound, gin.H{"error": "Purchase not found"})
		return
	}

	// freight or customs moved, so the stored totals must follow
	if costsChanged {
		if err := purchaseService.RecomputeTotals(c.Request.Context(), number); err != nil {
			respondError(c, "UpdatePurchase", err)
			return
		}
	}
	cache.Shared.Bump("purchases")
	c.JSON(http.StatusOK, gin.H{"message": "Purchase updated"})
}

func DeletePurchase(c *gin.Context) {
	if err := purchaseService.DeletePurchase(c.Request.Context(), c.Param("number")); err != nil {
		respondError(c, "DeletePurchase", err)
		return
	}
	cache.Shared.Bump("purchases")
	cache.Shared.Bump("purchaselines")
	c.JSON(http.StatusOK, gin.H{"message": "Purchase and lines deleted"})
}

func ListPurchaseLines(c *gin.Context) {
	lines, err := purchaseService.Lines(c.Request.Context(), c.Param("number"))
	if err != nil {
		respondError(c, "ListPurchaseLines", err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"lines": lines})
}

func AddPurchaseLine(c *gin.Context) {
	var line models.PurchaseLine
	if err := c.ShouldBindJSON(&line); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	line.PurchaseNumber = c.Param("number")

	if err := purchaseService.CreateLine(c.Request.Context(), &line); err != nil {
		respondError(c, "AddPurchaseLine", err)
		return
	}
	cache.Shared.Bump("purchases")
	cache.Shared.Bump("purchaselines")
	c.JSON(http.StatusCreated, line)
}

func UpdatePurchaseLine(c *gin.Context) {
	var input models.UpdatePurchaseLine
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	line, err := purchaseService.UpdateLine(c.Request.Context(), c.Param("id"), input)
	if err != nil {
		respondError(c, "UpdatePurchaseLine", err)
		return
	}
	cache.Shared.Bump("purchases")
	cache.Shared.Bump("purchaselines")
	c.JSON(http.StatusOK, line)
}

func DeletePurchaseLine(c *gin.Context) {
	if err := purchaseService.DeleteLine(c.Request.Context(), c.Param("id")); err != nil {
		respondError(c, "DeletePurchaseLine", err)
		return
	}
	cache.Shared.Bump("purchases")
	cache.Shared.Bump("purchaselines")
	c.JSON(http.StatusOK, gin.H{"message": "Line deleted"})
}
