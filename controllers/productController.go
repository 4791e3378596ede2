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

func ListProducts(c *gin.Context) {
	listPaged(c, config.ProductCollection, "products", bson.M{}, nil)
}

func GetProduct(c *gin.Context) {
	objID, err := primitive.ObjectIDFromHex(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid product ID"})
		return
	}

	var product models.Product
	err = config.ProductCollection.FindOne(c.Request.Context(), bson.M{"_id": objID}).Decode(&product)
	if err != nil {
		if err == mongo.ErrNoDocuments {
			c.JSON(http.StatusNotFound, gin.H{"error": "Product not found"})
		} else {
			respondError(c, "GetProduct", err)
		}
		return
	}
	c.JSON(http.StatusOK, product)
}

func AddProduct(c *gin.Context) {
	var product models.Product
	if err := c.ShouldBindJSON(&product); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	if product.Quantity < 0 || product.UnitPrice < 0 {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Quantity and unit price must not be negative"})
		return
	}

	product.ID = primitive.NewObjectID()
	product.CreatedAt = time.Now()
	product.UpdatedAt = product.CreatedAt

	if _, err := config.ProductCollection.InsertOne(c.Request.Context(), product); err != nil {
		respondError(c, "AddProduct", err)
		return
	}
	cache.Shared.Bump("products")
	c.JSON(http.StatusCreated, product)
}

// UpdateProduct edits descriptive fields and may set the stock directly
// (inventory corrections); everyday stock movement happens through order
// lines.
func UpdateProduct(c *gin.Context) {
	objID, err := primitive.ObjectIDFromHex(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid product ID"})
		return
	}

	var input models.UpdateProduct
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	update := bson.M{"updated_at": time.Now()}
	if input.Code != "" {
		update["code"] = input.Code
	}
	if input.Name != "" {
		update["name"] = input.Name
	}
	if input.Quantity != nil {
		if *input.Quantity < 0 {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Quantity must not be negative"})
			return
		}
		update["quantity"] = *input.Quantity
	}
	if input.UnitPrice != nil {
		update["unit_price"] = *input.UnitPrice
	}
	if input.Notes != "" {
		update["notes"] = input.Notes
	}
	if input.ReorderLevel != nil {
		update["reorder_level"] = *input.ReorderLevel
	}

	res, err := config.ProductCollection.UpdateOne(c.Request.Context(), bson.M{"_id": objID}, bson.M{"$set": update})
	if err != nil {
		respondError(c, "UpdateProduct", err)
		return
	}
	if res.MatchedCount == 0 {
		c.JSON(http.StatusNotFound, gin.H{"error": "Product not found"})
		return
	}
	cache.Shared.Bump("products")
	c.JSON(http.StatusOK, gin.H{"message": "Product updated"})
}

func DeleteProduct(c *gin.Context) {
	objID, err := primitive.ObjectIDFromHex(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid product ID"})
		return
	}

	res, err := config.ProductCollection.DeleteOne(c.Request.Context(), bson.M{"_id": objID})
	if err != nil {
		respondError(c, "DeleteProduct", err)
		return
	}
	if res.DeletedCount == 0 {
		c.JSON(http.StatusNotFound, gin.H{"error": "Product not found"})
		return
	}
	cache.Shared.Bump("products")
	c.JSON(http.StatusOK, gin.H{"message": "Product deleted"})
}
