package controllers

import (
	"errors"
	"net/http"
	"strconv"

	"crmbackend/cache"
	"crmbackend/config"
	"crmbackend/repository"
	"crmbackend/service"

	"github.com/gin-gonic/gin"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
)

var (
	orderService      *service.OrderService
	purchaseService   *service.PurchaseService
	authService       *service.AuthService
	permissionService *service.PermissionService
	reportService     *service.ReportService
)

// Init wires the services to their mongo-backed stores. Call after
// config.ConnectDatabase.
func Init() {
	orderService = service.NewOrderService(
		repository.NewProductMongo(),
		repository.NewOrderMongo(),
		repository.NewOrderLineMongo(),
	)
	purchaseService = service.NewPurchaseService(
		repository.NewPurchaseMongo(),
		repository.NewPurchaseLineMongo(),
	)
	authService = service.NewAuthService(
		repository.NewEmployeeMongo(),
		repository.NewWorkerTypeMongo(),
	)
	permissionService = service.NewPermissionService(
		repository.NewPermissionMongo(),
		cache.Shared,
	)
	reportService = service.NewReportService(repository.NewReportMongo())
}

// Permissions exposes the gate for route registration.
func Permissions() *service.PermissionService {
	return permissionService
}

// Reports exposes the report service to the export handlers.
func Reports() *service.ReportService {
	return reportService
}

// respondError maps service and repository errors onto the response
// taxonomy: 400 validation, 404 missing, 409 stock/closed conflicts, 500
// everything else.
func respondError(c *gin.Context, op string, err error) {
	var stockErr *service.InsufficientStockError
	switch {
	case errors.As(err, &stockErr):
		c.JSON(http.StatusConflict, gin.H{
			"error":     stockErr.Error(),
			"product":   stockErr.ProductName,
			"available": stockErr.Available,
			"requested": stockErr.Requested,
		})
	case errors.Is(err, service.ErrPurchaseClosed):
		c.JSON(http.StatusConflict, gin.H{"error": "Purchase is marked done and no longer editable"})
	case errors.Is(err, service.ErrInvalidInput):
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid input"})
	case errors.Is(err, repository.ErrNotFound):
		c.JSON(http.StatusNotFound, gin.H{"error": "Not found"})
	case errors.Is(err, repository.ErrBadCursor):
		c.JSON(http.StatusBadRequest, gin.H{"error": "Bad page cursor"})
	default:
		config.LogError("controllers", op, c.FullPath(), err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Internal error"})
	}
}

func pageQuery(c *gin.Context) repository.PageQuery {
	limit, _ := strconv.Atoi(c.DefaultQuery("limit", "10"))
	return repository.PageQuery{
		Limit:  limit,
		After:  c.Query("after"),
		Before: c.Query("before"),
	}
}

// listPaged serves one cursor page of a collection, through the page cache.
// The projection keeps sensitive fields out of both the response and the
// cached copy.
func listPaged(c *gin.Context, coll *mongo.Collection, name string, filter bson.M, projection bson.M) {
	q := pageQuery(c)
	key := cache.Shared.PageKey(name, q.After+"|"+q.Before+"|"+strconv.Itoa(q.Limit)+"|"+c.Request.URL.RawQuery)
	if cached, ok := cache.Shared.GetPage(key); ok {
		c.JSON(http.StatusOK, cached)
		return
	}

	docs, info, err := repository.Paginate(c.Request.Context(), coll, filter, q, projection)
	if err != nil {
		respondError(c, "listPaged", err)
		return
	}
	payload := gin.H{"items": docs, "page": info}
	cache.Shared.SetPage(key, payload)
	c.JSON(http.StatusOK, payload)
}
