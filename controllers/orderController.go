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

func ListOrders(c *gin.Context) {
	filter := bson.M{}
	if clientID := c.Query("client_id"); clientID != "" {
		filter["client_id"] = clientID
	}
	if status := c.Query("status"); status != "" {
		filter["service_status"] = status
	}
	listPaged(c, config.OrderCollection, "orders", filter, nil)
}

// GetOrder returns the order plus its lines and the total they imply.
func GetOrder(c *gin.Context) {
	number := c.Param("number")

	var order models.Order
	err := config.OrderCollection.FindOne(c.Request.Context(), bson.M{"number": number}).Decode(&order)
	if err != nil {
		if err == mongo.ErrNoDocuments {
			c.JSON(http.StatusNotFound, gin.H{"error": "Order not found"})
		} else {
			respondError(c, "GetOrder", err)
		}
		return
	}

	lines, linesTotal, err := orderService.LinesWithTotal(c.Request.Context(), number)
	if err != nil {
		respondError(c, "GetOrder", err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"order":       order,
		"lines":       lines,
		"lines_total": linesTotal,
	})
}

func AddOrder(c *gin.Context) {
	var order models.Order
	if err := c.ShouldBindJSON(&order); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	if order.PaymentOption != "" && order.PaymentOption != "full" && order.PaymentOption != "partial" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Payment option must be full or partial"})
		return
	}

	// the number is a business key: reject duplicates up front
	count, err := config.OrderCollection.CountDocuments(c.Request.Context(), bson.M{"number": order.Number})
	if err != nil {
		respondError(c, "AddOrder", err)
		return
	}
	if count > 0 {
		c.JSON(http.StatusConflict, gin.H{"error": "Order number already exists"})
		return
	}

	order.ID = primitive.NewObjectID()
	order.Total = 0
	if order.ServiceStatus == "" {
		order.ServiceStatus = "pending"
	}
	order.CreatedAt = time.Now()
	order.UpdatedAt = order.CreatedAt

	if _, err := config.OrderCollection.InsertOne(c.Request.Context(), order); err != nil {
		respondError(c, "AddOrder", err)
		return
	}
	cache.Shared.Bump("orders")
	c.JSON(http.StatusCreated, order)
}

func UpdateOrder(c *gin.Context) {
	number := c.Param("number")

	var input models.UpdateOrder
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	update := bson.M{"updated_at": time.Now()}
	if input.ClientID != "" {
		update["client_id"] = input.ClientID
	}
	if input.SaleDate != "" {
		update["sale_date"] = input.SaleDate
	}
	if input.DeliveryDate != "" {
		update["delivery_date"] = input.DeliveryDate
	}
	if input.PaymentOption != "" {
		if input.PaymentOption != "full" && input.PaymentOption != "partial" {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Payment option must be full or partial"})
			return
		}
		update["payment_option"] = input.PaymentOption
	}
	if input.PaymentTypeID != "" {
		update["paymenttype_id"] = input.PaymentTypeID
	}
	if input.PaymentType2ID != "" {
		update["paymenttype2_id"] = input.PaymentType2ID
	}
	if input.DeliveryTypeID != "" {
		update["deliverytype_id"] = input.DeliveryTypeID
	}
	if input.EmployeeID != "" {
		update["employee_id"] = input.EmployeeID
	}
	if input.ServiceStatus != "" {
		if input.ServiceStatus != "pending" && input.ServiceStatus != "done" {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Service status must be pending or done"})
			return
		}
		update["service_status"] = input.ServiceStatus
	}
	if input.PartialPaymentDate != "" {
		update["partial_payment_date"] = input.PartialPaymentDate
	}
	if input.Balance != nil {
		update["balance"] = *input.Balance
	}

	res, err := config.OrderCollection.UpdateOne(c.Request.Context(), bson.M{"number": number}, bson.M{"$set": update})
	if err != nil {
		respondError(c, "UpdateOrder", err)
		return
	}
	if res.MatchedCount == 0 {
		c.JSON(http.StatusNotFound, gin.H{"error": "Order not found"})
		return
	}
	cache.Shared.Bump("orders")
	c.JSON(http.StatusOK, gin.H{"message": "Order updated"})
}

// DeleteOrder cascades: every line is removed and its quantity restored to
// the product before the order document goes.
func DeleteOrder(c *gin.Context) {
	number := c.Param("number")

	if err := orderService.DeleteOrder(c.Request.Context(), number); err != nil {
		respondError(c, "DeleteOrder", err)
		return
	}
	cache.Shared.Bump("orders")
	cache.Shared.Bump("orderlines")
	cache.Shared.Bump("products")
	c.JSON(http.StatusOK, gin.H{"message": "Order and lines deleted, stock restored"})
}

func ListOrderLines(c *gin.Context) {
	lines, total, err := orderService.LinesWithTotal(c.Request.Context(), c.Param("number"))
	if err != nil {
		respondError(c, "ListOrderLines", err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"lines": lines, "total": total})
}

func AddOrderLine(c *gin.Context) {
	var line models.OrderLine
	if err := c.ShouldBindJSON(&line); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	line.OrderNumber = c.Param("number")

	if err := orderService.CreateLine(c.Request.Context(), &line); err != nil {
		respondError(c, "AddOrderLine", err)
		return
	}
	cache.Shared.Bump("orders")
	cache.Shared.Bump("orderlines")
	cache.Shared.Bump("products")
	c.JSON(http.StatusCreated, line)
}

func UpdateOrderLine(c *gin.Context) {
	var input models.UpdateOrderLine
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	line, err := orderService.UpdateLine(c.Request.Context(), c.Param("id"), input)
	if err != nil {
		respondError(c, "UpdateOrderLine", err)
		return
	}
	cache.Shared.Bump("orders")
	cache.Shared.Bump("orderlines")
	cache.Shared.Bump("products")
	c.JSON(http.StatusOK, line)
}

func DeleteOrderLine(c *gin.Context) {
	if err := orderService.DeleteLine(c.Request.Context(), c.Param("id")); err != nil {
		respondError(c, "DeleteOrderLine", err)
		return
	}
	cache.Shared.Bump("orders")
	cache.Shared.Bump("orderlines")
	cache.Shared.Bump("products")
	c.JSON(http.StatusOK, gin.H{"message": "Line deleted, stock restored"})
}
