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

func ListClients(c *gin.Context) {
	filter := bson.M{}
	if t := c.Query("type"); t != "" {
		filter["type"] = t
	}
	listPaged(c, config.ClientCollection, "clients", filter, nil)
}

func GetClient(c *gin.Context) {
	objID, err := primitive.ObjectIDFromHex(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid client ID"})
		return
	}

	var client models.Client
	err = config.ClientCollection.FindOne(c.Request.Context(), bson.M{"_id": objID}).Decode(&client)
	if err != nil {
		if err == mongo.ErrNoDocuments {
			c.JSON(http.StatusNotFound, gin.H{"error": "Client not found"})
		} else {
			respondError(c, "GetClient", err)
		}
		return
	}
	c.JSON(http.StatusOK, client)
}

func AddClient(c *gin.Context) {
	var client models.Client
	if err := c.ShouldBindJSON(&client); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	if client.Type != "person" && client.Type != "company" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Type must be person or company"})
		return
	}

	client.ID = primitive.NewObjectID()
	client.CreatedAt = time.Now()
	client.UpdatedAt = client.CreatedAt

	if _, err := config.ClientCollection.InsertOne(c.Request.Context(), client); err != nil {
		respondError(c, "AddClient", err)
		return
	}
	cache.Shared.Bump("clients")
	c.JSON(http.StatusCreated, client)
}

func UpdateClient(c *gin.Context) {
	objID, err := primitive.ObjectIDFromHex(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid client ID"})
		return
	}

	var input models.UpdateClient
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	update := bson.M{"updated_at": time.Now()}
	if input.Identification != "" {
		update["identification"] = input.Identification
	}
	if input.Name != "" {
		update["name"] = input.Name
	}
	if input.Type != "" {
		if input.Type != "person" && input.Type != "company" {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Type must be person or company"})
			return
		}
		update["type"] = input.Type
	}
	if input.Phone != "" {
		update["phone"] = input.Phone
	}
	if input.Email != "" {
		update["email"] = input.Email
	}
	if input.StateID != "" {
		update["state_id"] = input.StateID
	}
	if input.Location != "" {
		update["location"] = input.Location
	}

	res, err := config.ClientCollection.UpdateOne(c.Request.Context(), bson.M{"_id": objID}, bson.M{"$set": update})
	if err != nil {
		respondError(c, "UpdateClient", err)
		return
	}
	if res.MatchedCount == 0 {
		c.JSON(http.StatusNotFound, gin.H{"error": "Client not found"})
		return
	}
	cache.Shared.Bump("clients")
	c.JSON(http.StatusOK, gin.H{"message": "Client updated"})
}

func DeleteClient(c *gin.Context) {
	objID, err := primitive.ObjectIDFromHex(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid client ID"})
		return
	}

	res, err := config.ClientCollection.DeleteOne(c.Request.Context(), bson.M{"_id": objID})
	if err != nil {
		respondError(c, "DeleteClient", err)
		return
	}
	if res.DeletedCount == 0 {
		c.JSON(http.StatusNotFound, gin.H{"error": "Client not found"})
		return
	}
	cache.Shared.Bump("clients")
	c.JSON(http.StatusOK, gin.H{"message": "Client deleted"})
}
