package data_access

import (
	"context"
	"time"

	"movie-discovery-backend/models"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// UserStore is the persistence surface the services and controllers use.
// Each HTTP request loads a user, applies one collection operation, and
// saves the touched collection back; concurrent requests against the same
// user resolve last-write-wins.
type UserStore interface {
	CreateUser(ctx context.Context, user *models.User) error
	FindByID(ctx context.Context, id primitive.ObjectID) (*models.User, error)
	FindByEmail(ctx context.Context, email string) (*models.User, error)
	FindByUsername(ctx context.Context, username string) (*models.User, error)
	SaveFavorites(ctx context.Context, id primitive.ObjectID, favorites []models.CollectionEntry) error
	SaveWatchlist(ctx context.Context, id primitive.ObjectID, watchlist []models.CollectionEntry) error
	SaveReviews(ctx context.Context, id primitive.ObjectID, reviews []models.Review) error
	SaveProfile(ctx context.Context, id primitive.ObjectID, username, email string) error
}

type UserRepository struct {
	db         *MongoDB
	collection *mongo.Collection
}

func NewUserRepository(db *MongoDB) *UserRepository {
	return &UserRepository{
		db:         db,
		collection: db.Collection("users"),
	}
}

// EnsureIndexes creates the unique indexes backing username/email
// uniqueness across users.
func (r *UserRepository) EnsureIndexes(ctx context.Context) error {
	_, err := r.collection.Indexes().CreateMany(ctx, []mongo.IndexModel{
		{
			Keys:    bson.D{{Key: "username", Value: 1}},
			Options: options.Index().SetUnique(true),
		},
		{
			Keys:    bson.D{{Key: "email", Value: 1}},
			Options: options.Index().SetUnique(true),
		},
	})
	return err
}

func (r *UserRepository) CreateUser(ctx context.Context, user *models.User) error {
	res, err := r.collection.InsertOne(ctx, user)
	if err != nil {
		return err
	}
	if oid, ok := res.InsertedID.(primitive.ObjectID); ok {
		user.ID = oid
	}
	return nil
}

func (r *UserRepository) FindByID(ctx context.Context, id primitive.ObjectID) (*models.User, error) {
	var user models.User
	err := r.collection.FindOne(ctx, bson.M{"_id": id}).Decode(&user)
	if err == mongo.ErrNoDocuments {
		return nil, nil
	}
	return &user, err
}

func (r *UserRepository) FindByEmail(ctx context.Context, email string) (*models.User, error) {
	var user models.User
	err := r.collection.FindOne(ctx, bson.M{"email": email}).Decode(&user)
	if err == mongo.ErrNoDocuments {
		return nil, nil
	}
	return &user, err
}

func (r *UserRepository) FindByUsername(ctx context.Context, username string) (*models.User, error) {
	var user models.User
	err := r.collection.FindOne(ctx, bson.M{"username": username}).Decode(&user)
	if err == mongo.ErrNoDocuments {
		return nil, nil
	}
	return &user, err
}

func (r *UserRepository) SaveFavorites(ctx context.Context, id primitive.ObjectID, favorites []models.CollectionEntry) error {
	return r.setFields(ctx, id, bson.M{"favorites": favorites})
}

func (r *UserRepository) SaveWatchlist(ctx context.Context, id primitive.ObjectID, watchlist []models.CollectionEntry) error {
	return r.setFields(ctx, id, bson.M{"watchlist": watchlist})
}

func (r *UserRepository) SaveReviews(ctx context.Context, id primitive.ObjectID, reviews []models.Review) error {
	return r.setFields(ctx, id, bson.M{"reviews": reviews})
}

func (r *UserRepository) SaveProfile(ctx context.Context, id primitive.ObjectID, username, email string) error {
	return r.setFields(ctx, id, bson.M{"username": username, "email": email})
}

func (r *UserRepository) setFields(ctx context.Context, id primitive.ObjectID, fields bson.M) error {
	fields["updated_at"] = time.Now()
	_, err := r.collection.UpdateByID(ctx, id, bson.M{"$set": fields})
	return err
}
