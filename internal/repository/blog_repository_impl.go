package repository

import (
	"context"
	_ "embed"
	"encoding/json"
	"fmt"
	"maps"

	"github.com/alimikegami/toy-town/internal/domain"
	"github.com/alimikegami/toy-town/internal/infrastructure/database/mongodb"
	"github.com/rs/zerolog/log"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

type MongoDBBlogRepositoryImpl struct {
	db *mongo.Database
}

func CreateNewMongoDBBlogRepository(db *mongo.Database) BlogRepository {
	return &MongoDBBlogRepositoryImpl{db: db}
}

func (r *MongoDBBlogRepositoryImpl) GetBlogs(ctx context.Context) (data []domain.Blog, err error) {
	// nested documents decode as maps so they render as JSON objects
	collection := r.db.Collection(mongodb.BlogCollection, options.Collection().SetBSONOptions(&options.BSONOptions{DefaultDocumentM: true}))

	cursor, err := collection.Find(ctx, bson.D{})
	if err != nil {
		log.Ctx(ctx).Error().Err(err).Str("component", "GetBlogs").Msg("")
		return nil, fmt.Errorf("failed to retrieve blogs: %w", err)
	}
	defer cursor.Close(ctx)

	data = make([]domain.Blog, 0)
	if err = cursor.All(ctx, &data); err != nil {
		log.Ctx(ctx).Error().Err(err).Str("component", "GetBlogs").Msg("")
		return nil, fmt.Errorf("failed to decode blogs: %w", err)
	}

	return data, nil
}

//go:embed data/blogs.json
var staticBlogs []byte

// StaticBlogRepositoryImpl serves the blog feed bundled into the binary.
type StaticBlogRepositoryImpl struct {
	blogs []domain.Blog
}

func CreateNewStaticBlogRepository() (BlogRepository, error) {
	blogs := make([]domain.Blog, 0)
	if err := json.Unmarshal(staticBlogs, &blogs); err != nil {
		return nil, fmt.Errorf("failed to parse bundled blogs: %w", err)
	}

	return &StaticBlogRepositoryImpl{blogs: blogs}, nil
}

func (r *StaticBlogRepositoryImpl) GetBlogs(_ context.Context) (data []domain.Blog, err error) {
	data = make([]domain.Blog, 0, len(r.blogs))
	for _, blog := range r.blogs {
		data = append(data, maps.Clone(blog))
	}
	return data, nil
}
