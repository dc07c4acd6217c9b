package repository

import (
	"context"
	"errors"
	"fmt"
	"regexp"

	"github.com/alimikegami/toy-town/internal/domain"
	"github.com/alimikegami/toy-town/internal/dto"
	"github.com/alimikegami/toy-town/internal/infrastructure/database/mongodb"
	pkgdto "github.com/alimikegami/toy-town/pkg/dto"
	"github.com/alimikegami/toy-town/pkg/errs"
	"github.com/rs/zerolog/log"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

type MongoDBToyRepositoryImpl struct {
	db *mongo.Database
}

func CreateNewMongoDBRepository(db *mongo.Database) ToyRepository {
	return &MongoDBToyRepositoryImpl{db: db}
}

func (r *MongoDBToyRepositoryImpl) collection() *mongo.Collection {
	return r.db.Collection(mongodb.ToyCollection)
}

func (r *MongoDBToyRepositoryImpl) AddToy(ctx context.Context, data domain.Toy) (id primitive.ObjectID, err error) {
	data.ID = primitive.NilObjectID

	result, err := r.collection().InsertOne(ctx, data)
	if err != nil {
		log.Ctx(ctx).Error().Err(err).Str("component", "AddToy").Msg("")
		return id, fmt.Errorf("failed to insert toy: %w", err)
	}

	id, ok := result.InsertedID.(primitive.ObjectID)
	if !ok {
		return id, fmt.Errorf("unexpected inserted id type %T", result.InsertedID)
	}

	return id, nil
}

func (r *MongoDBToyRepositoryImpl) GetToys(ctx context.Context, filter pkgdto.Filter) (data []domain.Toy, err error) {
	findOptions := options.Find()
	if filter.Limit > 0 {
		findOptions.SetLimit(int64(filter.Limit))
		findOptions.SetSkip(filter.Skip())
	}

	return r.find(ctx, "GetToys", bson.D{}, findOptions)
}

// SearchToys matches the fragment literally, case-insensitively, anywhere in
// the name or the category.
func (r *MongoDBToyRepositoryImpl) SearchToys(ctx context.Context, fragment string) (data []domain.Toy, err error) {
	pattern := primitive.Regex{Pattern: regexp.QuoteMeta(fragment), Options: "i"}
	filter := bson.D{{Key: "$or", Value: bson.A{
		bson.D{{Key: "name", Value: pattern}},
		bson.D{{Key: "category", Value: pattern}},
	}}}

	return r.find(ctx, "SearchToys", filter, options.Find())
}

func (r *MongoDBToyRepositoryImpl) GetToyByID(ctx context.Context, id string) (toy *domain.Toy, err error) {
	toyID, err := parseObjectID(ctx, "GetToyByID", id)
	if err != nil {
		return nil, err
	}

	var result domain.Toy
	err = r.collection().FindOne(ctx, bson.D{{Key: "_id", Value: toyID}}).Decode(&result)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, nil
		}

		log.Ctx(ctx).Error().Err(err).Str("component", "GetToyByID").Msg("")
		return nil, fmt.Errorf("failed to retrieve toy: %w", err)
	}

	return &result, nil
}

func (r *MongoDBToyRepositoryImpl) GetToysBySeller(ctx context.Context, sellerUID string, sortDirection int) (data []domain.Toy, err error) {
	findOptions := options.Find()
	if sortDirection == SortAscending || sortDirection == SortDescending {
		findOptions.SetSort(bson.D{{Key: "price", Value: sortDirection}})
	}

	return r.find(ctx, "GetToysBySeller", bson.D{{Key: "sellerUid", Value: sellerUID}}, findOptions)
}

func (r *MongoDBToyRepositoryImpl) GetToysByCategory(ctx context.Context, category string, filter pkgdto.Filter) (data []domain.Toy, err error) {
	findOptions := options.Find()
	if filter.Limit > 0 {
		findOptions.SetLimit(int64(filter.Limit))
	}

	return r.find(ctx, "GetToysByCategory", bson.D{{Key: "category", Value: category}}, findOptions)
}

// PutToy overwrites the six editable fields of the toy, inserting a toy with
// the given identifier when none exists. sellerUid is left untouched.
func (r *MongoDBToyRepositoryImpl) PutToy(ctx context.Context, id string, data domain.Toy) (result dto.PutToyResponse, err error) {
	toyID, err := parseObjectID(ctx, "PutToy", id)
	if err != nil {
		return result, err
	}

	filter := bson.D{{Key: "_id", Value: toyID}}
	update := bson.D{{Key: "$set", Value: bson.D{
		{Key: "name", Value: data.Name},
		{Key: "image1", Value: data.Image},
		{Key: "category", Value: data.Category},
		{Key: "quantity", Value: data.Quantity},
		{Key: "price", Value: data.Price},
		{Key: "description", Value: data.Description},
	}}}

	updateResult, err := r.collection().UpdateOne(ctx, filter, update, options.Update().SetUpsert(true))
	if err != nil {
		log.Ctx(ctx).Error().Err(err).Str("component", "PutToy").Msg("Failed to put toy")
		return result, fmt.Errorf("failed to put toy: %w", err)
	}

	result = dto.PutToyResponse{
		Acknowledged:  true,
		MatchedCount:  updateResult.MatchedCount,
		ModifiedCount: updateResult.ModifiedCount,
		UpsertedCount: updateResult.UpsertedCount,
	}

	if updateResult.UpsertedID != nil {
		if upsertedID, ok := updateResult.UpsertedID.(primitive.ObjectID); ok {
			result.UpsertedID = &upsertedID
		} else {
			result.UpsertedID = &toyID
		}
	}

	return result, nil
}

// DeleteToy removes the toy; deleting an absent identifier is not an error.
func (r *MongoDBToyRepositoryImpl) DeleteToy(ctx context.Context, id string) (result dto.DeleteToyResponse, err error) {
	toyID, err := parseObjectID(ctx, "DeleteToy", id)
	if err != nil {
		return result, err
	}

	deleteResult, err := r.collection().DeleteOne(ctx, bson.D{{Key: "_id", Value: toyID}})
	if err != nil {
		log.Ctx(ctx).Error().Err(err).Str("component", "DeleteToy").Msg("")
		return result, fmt.Errorf("failed to delete toy: %w", err)
	}

	return dto.DeleteToyResponse{Acknowledged: true, DeletedCount: deleteResult.DeletedCount}, nil
}

func (r *MongoDBToyRepositoryImpl) find(ctx context.Context, component string, filter bson.D, findOptions *options.FindOptions) (data []domain.Toy, err error) {
	cursor, err := r.collection().Find(ctx, filter, findOptions)
	if err != nil {
		log.Ctx(ctx).Error().Err(err).Str("component", component).Msg("")
		return nil, fmt.Errorf("failed to retrieve toys: %w", err)
	}
	defer cursor.Close(ctx)

	data = make([]domain.Toy, 0)
	if err = cursor.All(ctx, &data); err != nil {
		log.Ctx(ctx).Error().Err(err).Str("component", component).Msg("")
		return nil, fmt.Errorf("failed to decode toys: %w", err)
	}

	return data, nil
}

func parseObjectID(ctx context.Context, component string, id string) (primitive.ObjectID, error) {
	objectID, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		log.Ctx(ctx).Warn().Err(err).Str("component", component).Str("id", id).Msg("invalid identifier")
		return objectID, fmt.Errorf("%w: %q", errs.ErrInvalidID, id)
	}

	return objectID, nil
}
