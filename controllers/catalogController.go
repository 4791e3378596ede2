package controllers

import (
	"net/http"

	"crmbackend/cache"
	"crmbackend/config"
	"crmbackend/models"

	"github.com/gin-gonic/gin"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
)

func ListProviders(c *gin.Context) {
	listPaged(c, config.ProviderCollection, "providers", bson.M{}, nil)
}

func GetProvider(c *gin.Context) {
	id, err := primitive.ObjectIDFromHex(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid provider id"})
		return
	}

	var provider models.Provider
	err = config.ProviderCollection.FindOne(c.Request.Context(), bson.M{"_id": id}).Decode(&provider)
	if err != nil {
		if err == mongo.ErrNoDocuments {
			c.JSON(http.StatusNotFound, gin.H{"error": "Provider not found"})
		} else {
			respondError(c, "GetProvider", err)
		}
		return
	}
	c.JSON(http.StatusOK, provider)
}

func AddProvider(c *gin.Context) {
	var provider models.Provider
	if err := c.ShouldBindJSON(&provider); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	provider.ID = primitive.NewObjectID()
	if _, err := config.ProviderCollection.InsertOne(c.Request.Context(), provider); err != nil {
		respondError(c, "AddProvider", err)
		return
	}
	cache.Shared.Bump("providers")
	c.JSON(http.StatusCreated, provider)
}

func UpdateProvider(c *gin.Context) {
	id, err := primitive.ObjectIDFromHex(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid provider id"})
		return
	}

	var input models.UpdateProvider
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	update := bson.M{}
	if input.RUC != "" {
		update["ruc"] = input.RUC
	}
	if input.Name != "" {
		update["name"] = input.Name
	}
	if input.Phone != "" {
		update["phone"] = input.Phone
	}
	if input.Email != "" {
		update["email"] = input.Email
	}
	if input.Address != "" {
		update["address"] = input.Address
	}
	if len(update) == 0 {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Nothing to update"})
		return
	}

	res, err := config.ProviderCollection.UpdateOne(c.Request.Context(), bson.M{"_id": id}, bson.M{"$set": update})
	if err != nil {
		respondError(c, "UpdateProvider", err)
		return
	}
	if res.MatchedCount == 0 {
		c.JSON(http.StatusNotFound, gin.H{"error": "Provider not found"})
		return
	}
	cache.Shared.Bump("providers")
	c.JSON(http.StatusOK, gin.H{"message": "Provider updated"})
}

func DeleteProvider(c *gin.Context) {
	id, err := primitive.ObjectIDFromHex(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid provider id"})
		return
	}

	res, err := config.ProviderCollection.DeleteOne(c.Request.Context(), bson.M{"_id": id})
	if err != nil {
		respondError(c, "DeleteProvider", err)
		return
	}
	if res.DeletedCount == 0 {
		c.JSON(http.StatusNotFound, gin.H{"error": "Provider not found"})
		return
	}
	cache.Shared.Bump("providers")
	c.JSON(http.StatusOK, gin.H{"message": "Provider deleted"})
}

// lookupCollections whitelists the flat catalog tables reachable through the
// generic /catalogs/:table endpoints.
func lookupCollections() map[string]*mongo.Collection {
	return map[string]*mongo.Collection{
		"workertypes":   config.WorkerTypeCollection,
		"paymenttypes":  config.PaymentTypeCollection,
		"deliverytypes": config.DeliveryTypeCollection,
		"states":        config.StateCollection,
	}
}

func lookupTable(c *gin.Context) (string, *mongo.Collection, bool) {
	table := c.Param("table")
	coll, ok := lookupCollections()[table]
	if !ok {
		c.JSON(http.StatusNotFound, gin.H{"error": "Unknown catalog"})
		return "", nil, false
	}
	return table, coll, true
}

// ListCatalog serves the whole table from the TTL cache when it can; these
// tables hold a handful of rows and change rarely.
func ListCatalog(c *gin.Context) {
	table, coll, ok := lookupTable(c)
	if !ok {
		return
	}

	key := "lookup:" + table
	if cached, ok := cache.Shared.Get(key); ok {
		c.JSON(http.StatusOK, gin.H{"items": cached, "cached": true})
		return
	}

	cursor, err := coll.Find(c.Request.Context(), bson.M{})
	if err != nil {
		respondError(c, "ListCatalog", err)
		return
	}
	entries := []models.CatalogEntry{}
	if err := cursor.All(c.Request.Context(), &entries); err != nil {
		respondError(c, "ListCatalog", err)
		return
	}

	cache.Shared.Set(key, entries)
	c.JSON(http.StatusOK, gin.H{"items": entries})
}

func AddCatalogEntry(c *gin.Context) {
	table, coll, ok := lookupTable(c)
	if !ok {
		return
	}

	var entry models.CatalogEntry
	if err := c.ShouldBindJSON(&entry); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	entry.ID = primitive.NewObjectID()
	if _, err := coll.InsertOne(c.Request.Context(), entry); err != nil {
		respondError(c, "AddCatalogEntry", err)
		return
	}
	cache.Shared.Invalidate("lookup:" + table)
	c.JSON(http.StatusCreated, entry)
}

func UpdateCatalogEntry(c *gin.Context) {
	table, coll, ok := lookupTable(c)
	if !ok {
		return
	}
	id, err := primitive.ObjectIDFromHex(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid id"})
		return
	}

	var entry models.CatalogEntry
	if err := c.ShouldBindJSON(&entry); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	res, err := coll.UpdateOne(c.Request.Context(), bson.M{"_id": id},
		bson.M{"$set": bson.M{"description": entry.Description}})
	if err != nil {
		respondError(c, "UpdateCatalogEntry", err)
		return
	}
	if res.MatchedCount == 0 {
		c.JSON(http.StatusNotFound, gin.H{"error": "Entry not found"})
		return
	}
	cache.Shared.Invalidate("lookup:" + table)
	c.JSON(http.StatusOK, gin.H{"message": "Entry updated"})
}

func DeleteCatalogEntry(c *gin.Context) {
	table, coll, ok := lookupTable(c)
	if !ok {
		return
	}
	id, err := primitive.ObjectIDFromHex(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid id"})
		return
	}

	res, err := coll.DeleteOne(c.Request.Context(), bson.M{"_id": id})
	if err != nil {
		respondError(c, "DeleteCatalogEntry", err)
		return
	}
	if res.DeletedCount == 0 {
		c.JSON(http.StatusNotFound, gin.H{"error": "Entry not found"})
		return
	}
	cache.Shared.Invalidate("lookup:" + table)
	c.JSON(http.StatusOK, gin.H{"message": "Entry deleted"})
}
