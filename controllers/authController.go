package controllers

import (
	"errors"
	"fmt"
	"net/http"

	"crmbackend/models"
	"crmbackend/service"
	"crmbackend/utils"

	"github.com/gin-gonic/gin"
)

func Login(c *gin.Context) {
	var input models.LoginInput
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "DNI and password are required"})
		return
	}

	employee, role, err := authService.Login(c.Request.Context(), input.DNI, input.Password)
	if err != nil {
		switch {
		case errors.Is(err, service.ErrInvalidCredentials):
			c.JSON(http.StatusUnauthorized, gin.H{"error": "Invalid DNI or password"})
		case errors.Is(err, service.ErrInactiveEmployee):
			c.JSON(http.StatusUnauthorized, gin.H{"error": "Employee is inactive"})
		default:
			respondError(c, "Login", err)
		}
		return
	}

	fullName := fmt.Sprintf("%s %s", employee.FirstName, employee.LastName)
	token, err := utils.GenerateToken(employee.ID.Hex(), fullName, role)
	if err != nil {
		respondError(c, "Login", err)
		return
	}

	c.SetCookie("token", token, int(utils.SessionDuration.Seconds()), "/", "", false, true)
	c.JSON(http.StatusOK, gin.H{
		"token": token,
		"user": gin.H{
			"id":   employee.ID.Hex(),
			"name": fullName,
			"role": role,
		},
		"modules": permissionService.ModulesFor(c.Request.Context(), role),
	})
}

// Me returns the session identity plus the module flags the front-end uses
// to draw navigation.
func Me(c *gin.Context) {
	role := c.GetString("role")
	c.JSON(http.StatusOK, gin.H{
		"id":      c.GetString("employeeID"),
		"name":    c.GetString("employeeName"),
		"role":    role,
		"modules": permissionService.ModulesFor(c.Request.Context(), role),
	})
}
