package listingRepo

import (
	"context"
	"fmt"
	"time"

	"autoconecta/config"
	"autoconecta/database"
	"autoconecta/models"

	"github.com/google/uuid"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// MongoListingRepo implements ListingRepository using MongoDB.
type MongoListingRepo struct {
	coll *mongo.Collection
}

// NewMongoListingRepo creates a new ListingRepository on the "autos" collection.
func NewMongoListingRepo() ListingRepository {
	coll := database.MongoClient.Database(config.AppConfig.DatabaseName).Collection("autos")
	repo := &MongoListingRepo{coll: coll}

	if err := repo.ensureIndexes(); err != nil {
		fmt.Printf("failed to create indexes: %v\n", err)
	}
	return repo
}

// newContext creates a context with the given timeout.
func newContext(timeout time.Duration) (context.Context, context.CancelFunc) {
	return context.WithTimeout(context.Background(), timeout)
}

func (r *MongoListingRepo) ensureIndexes() error {
	ctx, cancel := newContext(10 * time.Second)
	defer cancel()

	indexModels := []mongo.IndexModel{
		{Keys: bson.D{{Key: "id", Value: 1}}, Options: options.Index().SetUnique(true)},
		{Keys: bson.D{{Key: "vendedorId", Value: 1}}},
		{Keys: bson.D{{Key: "estadoPublicacion", Value: 1}}},
	}

	_, err := r.coll.Indexes().CreateMany(ctx, indexModels)
	if err != nil {
		return fmt.Errorf("failed to create indexes: %w", err)
	}
	return nil
}

// Create inserts a new listing document and returns its id. The stored
// document comes from Listing.Document, which pins the publication
// status to "activo".
func (r *MongoListingRepo) Create(listing *models.Listing) (string, error) {
	ctx, cancel := newContext(5 * time.Second)
	defer cancel()

	if listing.ID == "" {
		listing.ID = uuid.New().String()
	}
	if listing.FechaPublicacion.IsZero() {
		listing.FechaPublicacion = time.Now()
	}

	_, err := r.coll.InsertOne(ctx, listing.Document())
	if err != nil {
		return "", fmt.Errorf("failed to create listing: %w", err)
	}
	return listing.ID, nil
}

// GetByID retrieves a listing by its unique id.
func (r *MongoListingRepo) GetByID(id string) (*models.Listing, error) {
	ctx, cancel := newContext(5 * time.Second)
	defer cancel()

	var listing models.Listing
	err := r.coll.FindOne(ctx, bson.M{"id": id}).Decode(&listing)
	if err == mongo.ErrNoDocuments {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to fetch listing with id %s: %w", id, err)
	}
	return &listing, nil
}

// GetBySeller retrieves all listings owned by a seller, newest first.
func (r *MongoListingRepo) GetBySeller(vendedorID string) ([]models.Listing, error) {
	ctx, cancel := newContext(5 * time.Second)
	defer cancel()

	opts := options.Find().SetSort(bson.D{{Key: "fechaPublicacion", Value: -1}})
	cursor, err := r.coll.Find(ctx, bson.M{"vendedorId": vendedorID}, opts)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch listings for seller %s: %w", vendedorID, err)
	}
	defer cursor.Close(ctx)

	var listings []models.Listing
	if err := cursor.All(ctx, &listings); err != nil {
		return nil, fmt.Errorf("failed to decode listings: %w", err)
	}
	return listings, nil
}

// GetAllActive retrieves every active listing, newest first.
func (r *MongoListingRepo) GetAllActive() ([]models.Listing, error) {
	ctx, cancel := newContext(5 * time.Second)
	defer cancel()

	opts := options.Find().SetSort(bson.D{{Key: "fechaPublicacion", Value: -1}})
	cursor, err := r.coll.Find(ctx, bson.M{"estadoPublicacion": models.EstadoActivo}, opts)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch active listings: %w", err)
	}
	defer cursor.Close(ctx)

	var listings []models.Listing
	if err := cursor.All(ctx, &listings); err != nil {
		return nil, fmt.Errorf("failed to decode listings: %w", err)
	}
	return listings, nil
}
