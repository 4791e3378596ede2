package controllers

import (
	"net/http"

	"crmbackend/cache"
	"crmbackend/config"
	"crmbackend/models"
	"crmbackend/utils"

	"github.com/gin-gonic/gin"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
)

func ListEmployees(c *gin.Context) {
	filter := bson.M{}
	if status := c.Query("status"); status != "" {
		filter["status"] = status
	}
	listPaged(c, config.EmployeeCollection, "employees", filter, bson.M{"password": 0})
}

func GetEmployee(c *gin.Context) {
	objID, err := primitive.ObjectIDFromHex(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid employee ID"})
		return
	}

	var employee models.Employee
	err = config.EmployeeCollection.FindOne(c.Request.Context(), bson.M{"_id": objID}).Decode(&employee)
	if err != nil {
		if err == mongo.ErrNoDocuments {
			c.JSON(http.StatusNotFound, gin.H{"error": "Employee not found"})
		} else {
			respondError(c, "GetEmployee", err)
		}
		return
	}
	employee.Password = ""
	c.JSON(http.StatusOK, employee)
}

func AddEmployee(c *gin.Context) {
	var employee models.Employee
	if err := c.ShouldBindJSON(&employee); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	if !utils.IsDNI(employee.DNI) {
		c.JSON(http.StatusBadRequest, gin.H{"error": "DNI must have 8 digits"})
		return
	}
	if employee.Status == "" {
		employee.Status = "active"
	}
	// a custom password is optional; without one the DNI is the password
	if employee.Password != "" {
		hash, err := utils.HashPassword(employee.Password)
		if err != nil {
			respondError(c, "AddEmployee", err)
			return
		}
		employee.Password = hash
	}

	employee.ID = primitive.NewObjectID()
	if _, err := config.EmployeeCollection.InsertOne(c.Request.Context(), employee); err != nil {
		respondError(c, "AddEmployee", err)
		return
	}
	cache.Shared.Bump("employees")

	employee.Password = ""
	c.JSON(http.StatusCreated, employee)
}

func UpdateEmployee(c *gin.Context) {
	objID, err := primitive.ObjectIDFromHex(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid employee ID"})
		return
	}

	var input models.UpdateEmployee
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	update := bson.M{}
	if input.DNI != "" {
		if !utils.IsDNI(input.DNI) {
			c.JSON(http.StatusBadRequest, gin.H{"error": "DNI must have 8 digits"})
			return
		}
		update["dni"] = input.DNI
	}
	if input.FirstName != "" {
		update["first_name"] = input.FirstName
	}
	if input.LastName != "" {
		update["last_name"] = input.LastName
	}
	if input.Email != "" {
		update["email"] = input.Email
	}
	if input.Phone != "" {
		update["phone"] = input.Phone
	}
	if input.WorkerTypeID != "" {
		update["workertype_id"] = input.WorkerTypeID
	}
	if input.HireDate != "" {
		update["hire_date"] = input.HireDate
	}
	if input.TerminationDate != "" {
		update["termination_date"] = input.TerminationDate
	}
	if input.Workplace != "" {
		update["workplace"] = input.Workplace
	}
	if input.Status != "" {
		if input.Status != "active" && input.Status != "inactive" {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Status must be active or inactive"})
			return
		}
		update["status"] = input.Status
	}
	if input.Password != "" {
		hash, err := utils.HashPassword(input.Password)
		if err != nil {
			respondError(c, "UpdateEmployee", err)
			return
		}
		update["password"] = hash
	}
	if len(update) == 0 {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Nothing to update"})
		return
	}

	res, err := config.EmployeeCollection.UpdateOne(c.Request.Context(), bson.M{"_id": objID}, bson.M{"$set": update})
	if err != nil {
		respondError(c, "UpdateEmployee", err)
		return
	}
	if res.MatchedCount == 0 {
		c.JSON(http.StatusNotFound, gin.H{"error": "Employee not found"})
		return
	}
	cache.Shared.Bump("employees")
	c.JSON(http.StatusOK, gin.H{"message": "Employee updated"})
}

func DeleteEmployee(c *gin.Context) {
	objID, err := primitive.ObjectIDFromHex(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid employee ID"})
		return
	}

	res, err := config.EmployeeCollection.DeleteOne(c.Request.Context(), bson.M{"_id": objID})
	if err != nil {
		respondError(c, "DeleteEmployee", err)
		return
	}
	if res.DeletedCount == 0 {
		c.JSON(http.StatusNotFound, gin.H{"error": "Employee not found"})
		return
	}
	cache.Shared.Bump("employees")
	c.JSON(http.StatusOK, gin.H{"message": "Employee deleted"})
}
