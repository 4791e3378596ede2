package config

import (
	"context"
	"log"
	"os"
	"time"

	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

var (
	Client *mongo.Client

	ClientCollection       *mongo.Collection
	EmployeeCollection     *mongo.Collection
	ProductCollection      *mongo.Collection
	OrderCollection        *mongo.Collection
	OrderLineCollection    *mongo.Collection
	PurchaseCollection     *mongo.Collection
	PurchaseLineCollection *mongo.Collection
	ProviderCollection     *mongo.Collection
	WorkerTypeCollection   *mongo.Collection
	PaymentTypeCollection  *mongo.Collection
	DeliveryTypeCollection *mongo.Collection
	StateCollection        *mongo.Collection
	PermissionCollection   *mongo.Collection
)

func ConnectDatabase() {
	client, err := mongo.NewClient(options.Client().ApplyURI(os.Getenv("MONGO_URI")))
	if err != nil {
		log.Fatal(err)
	}

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	err = client.Connect(ctx)
	if err != nil {
		log.Fatal(err)
	}

	err = client.Ping(ctx, nil)
	if err != nil {
		log.Fatal(err)
	}

	dbName := os.Getenv("MONGO_DB")
	if dbName == "" {
		dbName = "grupocrm"
	}

	Client = client
	ClientCollection = client.Database(dbName).Collection("clients")
	EmployeeCollection = client.Database(dbName).Collection("employees")
	ProductCollection = client.Database(dbName).Collection("products")
	OrderCollection = client.Database(dbName).Collection("orders")
	OrderLineCollection = client.Database(dbName).Collection("orderlines")
	PurchaseCollection = client.Database(dbName).Collection("purchases")
	PurchaseLineCollection = client.Database(dbName).Collection("purchaselines")
	ProviderCollection = client.Database(dbName).Collection("providers")
	WorkerTypeCollection = client.Database(dbName).Collection("workertypes")
	PaymentTypeCollection = client.Database(dbName).Collection("paymenttypes")
	DeliveryTypeCollection = client.Database(dbName).Collection("deliverytypes")
	StateCollection = client.Database(dbName).Collection("states")
	PermissionCollection = client.Database(dbName).Collection("permissions")

	log.Println("Connected to MongoDB")
}
