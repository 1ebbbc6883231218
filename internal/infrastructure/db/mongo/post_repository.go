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

	"github.com/socialsphere/social-api/internal/core/domain"
)

const postsCollection = "posts"

type PostRepository struct {
	coll *mongo.Collection
}

func NewPostRepository(db *mongo.Database) *PostRepository {
	return &PostRepository{coll: db.Collection(postsCollection)}
}

type mongoPost struct {
	ID              primitive.ObjectID `bson:"_id,omitempty"`
	UserID          string             `bson:"user_id"`
	FirstName       string             `bson:"first_name"`
	LastName        string             `bson:"last_name"`
	Description     string             `bson:"description"`
	PicturePath     string             `bson:"picture_path,omitempty"`
	UserPicturePath string             `bson:"user_picture_path,omitempty"`
	Likes           map[string]bool    `bson:"likes"`
	CreatedAt       int64              `bson:"created_at"`
}

func (r *PostRepository) Create(ctx context.Context, post *domain.Post) (*domain.Post, error) {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	doc := mongoPost{
		UserID:          post.UserID,
		FirstName:       post.FirstName,
		LastName:        post.LastName,
		Description:     post.Description,
		PicturePath:     post.PicturePath,
		UserPicturePath: post.UserPicturePath,
		Likes:           post.Likes,
		CreatedAt:       post.CreatedAt.Unix(),
	}
	if doc.Likes == nil {
		doc.Likes = map[string]bool{}
	}

	res, err := r.coll.InsertOne(ctx, doc)
	if err != nil {
		return nil, fmt.Errorf("insert post: %w", err)
	}

	created := *post
	if oid, ok := res.InsertedID.(primitive.ObjectID); ok {
		created.ID = oid.Hex()
	}
	return &created, nil
}

func (r *PostRepository) FindAll(ctx context.Context) ([]*domain.Post, error) {
	return r.find(ctx, bson.M{})
}

func (r *PostRepository) FindByUser(ctx context.Context, userID string) ([]*domain.Post, error) {
	return r.find(ctx, bson.M{"user_id": userID})
}

func (r *PostRepository) find(ctx context.Context, filter bson.M) ([]*domain.Post, error) {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	opts := options.Find().SetSort(bson.D{{Key: "created_at", Value: -1}})
	cur, err := r.coll.Find(ctx, filter, opts)
	if err != nil {
		return nil, fmt.Errorf("find posts: %w", err)
	}
	defer cur.Close(ctx)

	posts := []*domain.Post{}
	for cur.Next(ctx) {
		var mp mongoPost
		if err := cur.Decode(&mp); err != nil {
			return nil, fmt.Errorf("decode post: %w", err)
		}
		posts = append(posts, mp.toDomain())
	}
	if err := cur.Err(); err != nil {
		return nil, fmt.Errorf("iterate posts: %w", err)
	}
	return posts, nil
}

func (r *PostRepository) FindByID(ctx context.Context, id string) (*domain.Post, error) {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	oid, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return nil, domain.ErrPostNotFound
	}

	var mp mongoPost
	if err := r.coll.FindOne(ctx, bson.M{"_id": oid}).Decode(&mp); err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, domain.ErrPostNotFound
		}
		return nil, fmt.Errorf("find post: %w", err)
	}
	return mp.toDomain(), nil
}

// UpdateLikes replaces the like set atomically and returns the updated post.
func (r *PostRepository) UpdateLikes(ctx context.Context, id string, likes map[string]bool) (*domain.Post, error) {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	oid, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return nil, domain.ErrPostNotFound
	}
	if likes == nil {
		likes = map[string]bool{}
	}

	opts := options.FindOneAndUpdate().SetReturnDocument(options.After)
	var mp mongoPost
	err = r.coll.FindOneAndUpdate(ctx,
		bson.M{"_id": oid},
		bson.M{"$set": bson.M{"likes": likes}},
		opts,
	).Decode(&mp)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, domain.ErrPostNotFound
		}
		return nil, fmt.Errorf("update likes: %w", err)
	}
	return mp.toDomain(), nil
}

// EnsureIndexes creates the indexes backing the per-author feed and the
// newest-first sort.
func (r *PostRepository) EnsureIndexes(ctx context.Context) error {
	ctx, cancel := context.WithTimeout(ctx, 30*time.Second)
	defer cancel()

	indexes := []mongo.IndexModel{
		{Keys: bson.D{{Key: "user_id", Value: 1}}},
		{Keys: bson.D{{Key: "created_at", Value: -1}}},
	}

	_, err := r.coll.Indexes().CreateMany(ctx, indexes)
	return err
}

func (mp *mongoPost) toDomain() *domain.Post {
	likes := mp.Likes
	if likes == nil {
		likes = map[string]bool{}
	}
	return &domain.Post{
		ID:              mp.ID.Hex(),
		UserID:          mp.UserID,
		FirstName:       mp.FirstName,
		LastName:        mp.LastName,
		Description:     mp.Description,
		PicturePath:     mp.PicturePath,
		UserPicturePath: mp.UserPicturePath,
		Likes:           likes,
		CreatedAt:       unixToTime(mp.CreatedAt),
	}
}
