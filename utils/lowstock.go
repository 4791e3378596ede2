package utils

import (
	"context"
	"fmt"
	"os"
	"strings"

	"crmbackend/config"
	"crmbackend/models"

	"go.mongodb.org/mongo-driver/bson"
)

// CheckLowStock runs once a day from the scheduler. Products whose stock is at
// or below their reorder level are collected into a single alert mail.
func CheckLowStock() {
	logg := config.GetLogger()
	logg.Info("starting low-stock sweep")

	filter := bson.M{"$expr": bson.M{"$lte": bson.A{"$quantity", "$reorder_level"}}, "reorder_level": bson.M{"$gt": 0}}

	cursor, err := config.ProductCollection.Find(context.TODO(), filter)
	if err != nil {
		config.LogError("utils", "CheckLowStock", "find products", err)
		return
	}
	defer cursor.Close(context.TODO())

	var lines []string
	for cursor.Next(context.TODO()) {
		var product models.Product
		if err := cursor.Decode(&product); err != nil {
			config.LogError("utils", "CheckLowStock", "decode product", err)
			continue
		}
		lines = append(lines, fmt.Sprintf("%s (%s): %.2f left, reorder at %.2f",
			product.Name, product.Code, product.Quantity, product.ReorderLevel))
	}
	if err := cursor.Err(); err != nil {
		config.LogError("utils", "CheckLowStock", "cursor", err)
		return
	}

	if len(lines) == 0 {
		logg.Info("low-stock sweep: nothing to report")
		return
	}

	to := os.Getenv("ALERT_EMAIL")
	if to == "" {
		logg.Warnf("low-stock sweep: %d products low but ALERT_EMAIL is not set", len(lines))
		return
	}

	body := "Products at or below reorder level:\n\n" + strings.Join(lines, "\n")
	if err := SendEmail(to, "Low stock alert", body); err != nil {
		config.LogError("utils", "CheckLowStock", "send mail", err)
		return
	}
	logg.Infof("low-stock sweep: alert sent for %d products", len(lines))
}
