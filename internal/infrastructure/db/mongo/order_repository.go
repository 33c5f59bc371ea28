package mongo

import (
	"context"
	"errors"
	"fmt"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/trendlane/commerce-api/internal/core/domain"
	"github.com/trendlane/commerce-api/internal/core/ports"
)

const collectionOrders = "orders"

type OrderRepository struct {
	col *mongo.Collection
}

func NewOrderRepository(db *mongo.Database) *OrderRepository {
	return &OrderRepository{col: db.Collection(collectionOrders)}
}

// mongoOrder mirrors domain.Order with a native ObjectID so the driver
// generates identifiers the same way the rest of the platform expects.
type mongoOrder struct {
	ID              primitive.ObjectID      `bson:"_id,omitempty"`
	BillingDetails  domain.BillingDetails   `bson:"billingDetails"`
	OrderedProducts []domain.OrderedProduct `bson:"orderedProducts"`
	ShippingInfo    domain.ShippingInfo     `bson:"shippingInfo"`
	Summary         domain.OrderSummary     `bson:"summary"`
	Status          string                  `bson:"status"`
	OrderDate       time.Time               `bson:"orderDate"`
}

func (m *mongoOrder) toDomain() domain.Order {
	return domain.Order{
		ID:              m.ID.Hex(),
		BillingDetails:  m.BillingDetails,
		OrderedProducts: m.OrderedProducts,
		ShippingInfo:    m.ShippingInfo,
		Summary:         m.Summary,
		Status:          domain.OrderStatus(m.Status),
		OrderDate:       m.OrderDate.UTC(),
	}
}

// Insert persists a new order and returns the generated ObjectID as hex.
func (r *OrderRepository) Insert(ctx context.Context, order *domain.Order) (string, error) {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	doc := mongoOrder{
		BillingDetails:  order.BillingDetails,
		OrderedProducts: order.OrderedProducts,
		ShippingInfo:    order.ShippingInfo,
		Summary:         order.Summary,
		Status:          string(order.Status),
		OrderDate:       order.OrderDate,
	}

	res, err := r.col.InsertOne(ctx, doc)
	if err != nil {
		return "", fmt.Errorf("insert order: %w", err)
	}

	oid, ok := res.InsertedID.(primitive.ObjectID)
	if !ok {
		return "", fmt.Errorf("insert order: unexpected id type %T", res.InsertedID)
	}
	return oid.Hex(), nil
}

// List returns orders inside the date window, sorted by orderDate descending.
func (r *OrderRepository) List(ctx context.Context, filter ports.OrderFilter) ([]domain.Order, error) {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	query := bson.M{}
	dateRange := bson.M{}
	if !filter.From.IsZero() {
		dateRange["$gte"] = filter.From
	}
	if !filter.To.IsZero() {
		dateRange["$lt"] = filter.To
	}
	if len(dateRange) > 0 {
		query["orderDate"] = dateRange
	}

	opts := options.Find().SetSort(bson.D{{Key: "orderDate", Value: -1}})
	cur, err := r.col.Find(ctx, query, opts)
	if err != nil {
		return nil, fmt.Errorf("list orders: %w", err)
	}
	defer cur.Close(ctx)

	orders := []domain.Order{}
	for cur.Next(ctx) {
		var m mongoOrder
		if err := cur.Decode(&m); err != nil {
			return nil, fmt.Errorf("decode order: %w", err)
		}
		orders = append(orders, m.toDomain())
	}
	if err := cur.Err(); err != nil {
		return nil, fmt.Errorf("list orders: %w", err)
	}
	return orders, nil
}

// Update applies the non-nil fields of upd with a single $set and returns the
// updated document. orderDate and _id are never part of the $set.
func (r *OrderRepository) Update(ctx context.Context, id string, upd ports.OrderUpdate) (*domain.Order, error) {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	oid, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return nil, domain.ErrOrderNotFound
	}

	set := bson.M{}
	if upd.BillingDetails != nil {
		set["billingDetails"] = upd.BillingDetails
	}
	if upd.OrderedProducts != nil {
		set["orderedProducts"] = upd.OrderedProducts
	}
	if upd.ShippingInfo != nil {
		set["shippingInfo"] = upd.ShippingInfo
	}
	if upd.Summary != nil {
		set["summary"] = upd.Summary
	}
	if upd.Status != nil {
		set["status"] = string(*upd.Status)
	}
	if len(set) == 0 {
		// nothing to change; behave like a lookup
		var m mongoOrder
		if err := r.col.FindOne(ctx, bson.M{"_id": oid}).Decode(&m); err != nil {
			if errors.Is(err, mongo.ErrNoDocuments) {
				return nil, domain.ErrOrderNotFound
			}
			return nil, fmt.Errorf("find order: %w", err)
		}
		order := m.toDomain()
		return &order, nil
	}

	opts := options.FindOneAndUpdate().SetReturnDocument(options.After)
	var m mongoOrder
	err = r.col.FindOneAndUpdate(ctx, bson.M{"_id": oid}, bson.M{"$set": set}, opts).Decode(&m)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, domain.ErrOrderNotFound
		}
		return nil, fmt.Errorf("update order: %w", err)
	}

	order := m.toDomain()
	return &order, nil
}

// Delete removes the matching document.
func (r *OrderRepository) Delete(ctx context.Context, id string) error {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	oid, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return domain.ErrOrderNotFound
	}

	res, err := r.col.DeleteOne(ctx, bson.M{"_id": oid})
	if err != nil {
		return fmt.Errorf("delete order: %w", err)
	}
	if res.DeletedCount == 0 {
		return domain.ErrOrderNotFound
	}
	return nil
}

// EnsureIndexes creates the index backing the list endpoint's sort and range
// filter.
func (r *OrderRepository) EnsureIndexes(ctx context.Context) error {
	ctx, cancel := context.WithTimeout(ctx, 30*time.Second)
	defer cancel()

	_, err := r.col.Indexes().CreateOne(ctx, mongo.IndexModel{
		Keys: bson.D{{Key: "orderDate", Value: -1}},
	})
	return err
}
