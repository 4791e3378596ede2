package controllers

import (
	"net/http"

	"crmbackend/config"
	"crmbackend/models"
	"crmbackend/service"

	"github.com/gin-gonic/gin"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

func ListPermissions(c *gin.Context) {
	cursor, err := config.PermissionCollection.Find(c.Request.Context(), bson.M{})
	if err != nil {
		respondError(c, "ListPermissions", err)
		return
	}
	docs := []models.Permission{}
	if err := cursor.All(c.Request.Context(), &docs); err != nil {
		respondError(c, "ListPermissions", err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"permissions": docs, "modules": service.ModuleNames})
}

func GetPermission(c *gin.Context) {
	var doc models.Permission
	err := config.PermissionCollection.FindOne(c.Request.Context(),
		bson.M{"workertype": c.Param("workertype")}).Decode(&doc)
	if err != nil {
		if err == mongo.ErrNoDocuments {
			c.JSON(http.StatusNotFound, gin.H{"error": "Permission document not found"})
		} else {
			respondError(c, "GetPermission", err)
		}
		return
	}
	c.JSON(http.StatusOK, doc)
}

// UpsertPermission replaces the module flags for a worker type. Unknown
// module names in the payload are dropped rather than stored.
func UpsertPermission(c *gin.Context) {
	var doc models.Permission
	if err := c.ShouldBindJSON(&doc); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	known := make(map[string]bool, len(service.ModuleNames))
	for _, name := range service.ModuleNames {
		known[name] = true
	}
	modules := map[string]bool{}
	for name, allowed := range doc.Modules {
		if known[name] {
			modules[name] = allowed
		}
	}

	_, err := config.PermissionCollection.UpdateOne(c.Request.Context(),
		bson.M{"workertype": doc.WorkerType},
		bson.M{"$set": bson.M{"workertype": doc.WorkerType, "modules": modules}},
		options.Update().SetUpsert(true))
	if err != nil {
		respondError(c, "UpsertPermission", err)
		return
	}

	permissionService.Invalidate(doc.WorkerType)
	c.JSON(http.StatusOK, gin.H{"workertype": doc.WorkerType, "modules": modules})
}

func DeletePermission(c *gin.Context) {
	workerType := c.Param("workertype")
	if id, err := primitive.ObjectIDFromHex(workerType); err == nil {
		// tolerate deletion by document id as well
		var doc models.Permission
		if err := config.PermissionCollection.FindOne(c.Request.Context(), bson.M{"_id": id}).Decode(&doc); err == nil {
			workerType = doc.WorkerType
		}
	}

	res, err := config.PermissionCollection.DeleteOne(c.Request.Context(), bson.M{"workertype": workerType})
	if err != nil {
		respondError(c, "DeletePermission", err)
		return
	}
	if res.DeletedCount == 0 {
		c.JSON(http.StatusNotFound, gin.H{"error": "Permission document not found"})
		return
	}

	permissionService.Invalidate(workerType)
	c.JSON(http.StatusOK, gin.H{"message": "Permission document deleted"})
}
