package repository

import (
	"context"

	"crmbackend/config"
	"crmbackend/models"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
)

func objectID(id string) (primitive.ObjectID, error) {
	objID, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return primitive.NilObjectID, ErrNotFound
	}
	return objID, nil
}

type ProductMongo struct{}

func NewProductMongo() *ProductMongo { return &ProductMongo{} }

func (m *ProductMongo) GetByID(ctx context.Context, id string) (*models.Product, error) {
	objID, err := objectID(id)
	if err != nil {
		return nil, err
	}
	var product models.Product
	err = config.ProductCollection.FindOne(ctx, bson.M{"_id": objID}).Decode(&product)
	if err == mongo.ErrNoDocuments {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, err
	}
	return &product, nil
}

func (m *ProductMongo) AdjustStock(ctx context.Context, id string, delta float64) error {
	objID, err := objectID(id)
	if err != nil {
		return err
	}
	res, err := config.ProductCollection.UpdateOne(ctx,
		bson.M{"_id": objID},
		bson.M{"$inc": bson.M{"quantity": delta}})
	if err != nil {
		return err
	}
	if res.MatchedCount == 0 {
		return ErrNotFound
	}
	return nil
}

type OrderMongo struct{}

func NewOrderMongo() *OrderMongo { return &OrderMongo{} }

func (m *OrderMongo) GetByNumber(ctx context.Context, number string) (*models.Order, error) {
	var order models.Order
	err := config.OrderCollection.FindOne(ctx, bson.M{"number": number}).Decode(&order)
	if err == mongo.ErrNoDocuments {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, err
	}
	return &order, nil
}

func (m *OrderMongo) SetTotal(ctx context.Context, number string, total float64) error {
	_, err := config.OrderCollection.UpdateOne(ctx,
		bson.M{"number": number},
		bson.M{"$set": bson.M{"total": total}})
	return err
}

func (m *OrderMongo) DeleteByNumber(ctx context.Context, number string) error {
	res, err := config.OrderCollection.DeleteOne(ctx, bson.M{"number": number})
	if err != nil {
		return err
	}
	if res.DeletedCount == 0 {
		return ErrNotFound
	}
	return nil
}

type OrderLineMongo struct{}

func NewOrderLineMongo() *OrderLineMongo { return &OrderLineMongo{} }

func (m *OrderLineMongo) Insert(ctx context.Context, line *models.OrderLine) error {
	if line.ID.IsZero() {
		line.ID = primitive.NewObjectID()
	}
	_, err := config.OrderLineCollection.InsertOne(ctx, line)
	return err
}

func (m *OrderLineMongo) GetByID(ctx context.Context, id string) (*models.OrderLine, error) {
	objID, err := objectID(id)
	if err != nil {
		return nil, err
	}
	var line models.OrderLine
	err = config.OrderLineCollection.FindOne(ctx, bson.M{"_id": objID}).Decode(&line)
	if err == mongo.ErrNoDocuments {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, err
	}
	return &line, nil
}

func (m *OrderLineMongo) Update(ctx context.Context, line *models.OrderLine) error {
	res, err := config.OrderLineCollection.UpdateOne(ctx,
		bson.M{"_id": line.ID},
		bson.M{"$set": bson.M{
			"quantity":   line.Quantity,
			"unit_price": line.UnitPrice,
			"notes":      line.Notes,
		}})
	if err != nil {
		return err
	}
	if res.MatchedCount == 0 {
		return ErrNotFound
	}
	return nil
}

func (m *OrderLineMongo) Delete(ctx context.Context, id string) error {
	objID, err := objectID(id)
	if err != nil {
		return err
	}
	res, err := config.OrderLineCollection.DeleteOne(ctx, bson.M{"_id": objID})
	if err != nil {
		return err
	}
	if res.DeletedCount == 0 {
		return ErrNotFound
	}
	return nil
}

func (m *OrderLineMongo) ListByOrder(ctx context.Context, orderNumber string) ([]models.OrderLine, error) {
	cursor, err := config.OrderLineCollection.Find(ctx, bson.M{"order_number": orderNumber})
	if err != nil {
		return nil, err
	}
	var lines []models.OrderLine
	if err := cursor.All(ctx, &lines); err != nil {
		return nil, err
	}
	return lines, nil
}

type PurchaseMongo struct{}

func NewPurchaseMongo() *PurchaseMongo { return &PurchaseMongo{} }

func (m *PurchaseMongo) GetByNumber(ctx context.Context, number string) (*models.Purchase, error) {
	var purchase models.Purchase
	err := config.PurchaseCollection.FindOne(ctx, bson.M{"number": number}).Decode(&purchase)
	if err == mongo.ErrNoDocuments {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, err
	}
	return &purchase, nil
}

func (m *PurchaseMongo) SetTotals(ctx context.Context, number string, subtotal, totalFinal float64) error {
	_, err := config.PurchaseCollection.UpdateOne(ctx,
		bson.M{"number": number},
		bson.M{"$set": bson.M{"subtotal": subtotal, "total_final": totalFinal}})
	return err
}

func (m *PurchaseMongo) DeleteByNumber(ctx context.Context, number string) error {
	res, err := config.PurchaseCollection.DeleteOne(ctx, bson.M{"number": number})
	if err != nil {
		return err
	}
	if res.DeletedCount == 0 {
		return ErrNotFound
	}
	return nil
}

type PurchaseLineMongo struct{}

func NewPurchaseLineMongo() *PurchaseLineMongo { return &PurchaseLineMongo{} }

func (m *PurchaseLineMongo) Insert(ctx context.Context, line *models.PurchaseLine) error {
	if line.ID.IsZero() {
		line.ID = primitive.NewObjectID()
	}
	_, err := config.PurchaseLineCollection.InsertOne(ctx, line)
	return err
}

func (m *PurchaseLineMongo) GetByID(ctx context.Context, id string) (*models.PurchaseLine, error) {
	objID, err := objectID(id)
	if err != nil {
		return nil, err
	}
	var line models.PurchaseLine
	err = config.PurchaseLineCollection.FindOne(ctx, bson.M{"_id": objID}).Decode(&line)
	if err == mongo.ErrNoDocuments {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, err
	}
	return &line, nil
}

func (m *PurchaseLineMongo) Update(ctx context.Context, line *models.PurchaseLine) error {
	res, err := config.PurchaseLineCollection.UpdateOne(ctx,
		bson.M{"_id": line.ID},
		bson.M{"$set": bson.M{
			"quantity":   line.Quantity,
			"unit_price": line.UnitPrice,
			"line_total": line.LineTotal,
		}})
	if err != nil {
		return err
	}
	if res.MatchedCount == 0 {
		return ErrNotFound
	}
	return nil
}

func (m *PurchaseLineMongo) Delete(ctx context.Context, id string) error {
	objID, err := objectID(id)
	if err != nil {
		return err
	}
	res, err := config.PurchaseLineCollection.DeleteOne(ctx, bson.M{"_id": objID})
	if err != nil {
		return err
	}
	if res.DeletedCount == 0 {
		return ErrNotFound
	}
	return nil
}

func (m *PurchaseLineMongo) ListByPurchase(ctx context.Context, purchaseNumber string) ([]models.PurchaseLine, error) {
	cursor, err := config.PurchaseLineCollection.Find(ctx, bson.M{"purchase_number": purchaseNumber})
	if err != nil {
		return nil, err
	}
	var lines []models.PurchaseLine
	if err := cursor.All(ctx, &lines); err != nil {
		return nil, err
	}
	return lines, nil
}

type EmployeeMongo struct{}

func NewEmployeeMongo() *EmployeeMongo { return &EmployeeMongo{} }

func (m *EmployeeMongo) FindByDNI(ctx context.Context, dni string) (*models.Employee, error) {
	// the employees collection has stored the document number under three
	// different field names over the years
	filter := bson.M{"$or": bson.A{
		bson.M{"dni": dni},
		bson.M{"documento": dni},
		bson.M{"identification": dni},
	}}
	var employee models.Employee
	err := config.EmployeeCollection.FindOne(ctx, filter).Decode(&employee)
	if err == mongo.ErrNoDocuments {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, err
	}
	return &employee, nil
}

type WorkerTypeMongo struct{}

func NewWorkerTypeMongo() *WorkerTypeMongo { return &WorkerTypeMongo{} }

func (m *WorkerTypeMongo) GetDescription(ctx context.Context, id string) (string, error) {
	objID, err := objectID(id)
	if err != nil {
		return "", err
	}
	var entry models.CatalogEntry
	err = config.WorkerTypeCollection.FindOne(ctx, bson.M{"_id": objID}).Decode(&entry)
	if err == mongo.ErrNoDocuments {
		return "", ErrNotFound
	}
	if err != nil {
		return "", err
	}
	return entry.Description, nil
}

type PermissionMongo struct{}

func NewPermissionMongo() *PermissionMongo { return &PermissionMongo{} }

func (m *PermissionMongo) GetByWorkerType(ctx context.Context, workerType string) (*models.Permission, error) {
	var permission models.Permission
	err := config.PermissionCollection.FindOne(ctx, bson.M{"workertype": workerType}).Decode(&permission)
	if err == mongo.ErrNoDocuments {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, err
	}
	return &permission, nil
}

type ReportMongo struct{}

func NewReportMongo() *ReportMongo { return &ReportMongo{} }

func (m *ReportMongo) AllOrders(ctx context.Context) ([]models.Order, error) {
	cursor, err := config.OrderCollection.Find(ctx, bson.M{})
	if err != nil {
		return nil, err
	}
	var orders []models.Order
	if err := cursor.All(ctx, &orders); err != nil {
		return nil, err
	}
	return orders, nil
}

func (m *ReportMongo) AllOrderLines(ctx context.Context) ([]models.OrderLine, error) {
	cursor, err := config.OrderLineCollection.Find(ctx, bson.M{})
	if err != nil {
		return nil, err
	}
	var lines []models.OrderLine
	if err := cursor.All(ctx, &lines); err != nil {
		return nil, err
	}
	return lines, nil
}

func (m *ReportMongo) AllPurchases(ctx context.Context) ([]models.Purchase, error) {
	cursor, err := config.PurchaseCollection.Find(ctx, bson.M{})
	if err != nil {
		return nil, err
	}
	var purchases []models.Purchase
	if err := cursor.All(ctx, &purchases); err != nil {
		return nil, err
	}
	return purchases, nil
}

func (m *ReportMongo) Counts(ctx context.Context) (map[string]int64, error) {
	collections := map[string]*mongo.Collection{
		"clients":   config.ClientCollection,
		"employees": config.EmployeeCollection,
		"products":  config.ProductCollection,
		"orders":    config.OrderCollection,
		"purchases": config.PurchaseCollection,
		"providers": config.ProviderCollection,
	}
	counts := make(map[string]int64, len(collections))
	for name, coll := range collections {
		n, err := coll.CountDocuments(ctx, bson.M{})
		if err != nil {
			return nil, err
		}
		counts[name] = n
	}
	return counts, nil
}
