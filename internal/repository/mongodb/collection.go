package mongodb

import (
	"context"
	"errors"
	"fmt"

	"smt-backend/internal/entities"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// collection is the CRUD surface shared by every entity kind. Store failures
// are returned wrapped; a missing document yields the kind's not-found error.
type collection[T any] struct {
	coll     *mongo.Collection
	name     entities.Collection
	notFound error
}

func newCollection[T any](db *mongo.Database, name entities.Collection) collection[T] {
	return collection[T]{
		coll:     db.Collection(string(name)),
		name:     name,
		notFound: name.NotFoundErr(),
	}
}

func (c collection[T]) insert(ctx context.Context, doc *T) (entities.ID, error) {
	res, err := c.coll.InsertOne(ctx, doc)
	if err != nil {
		return primitive.NilObjectID, fmt.Errorf("insert %s: %w", c.name, err)
	}
	id, ok := res.InsertedID.(primitive.ObjectID)
	if !ok {
		return primitive.NilObjectID, fmt.Errorf("insert %s: unexpected id type %T", c.name, res.InsertedID)
	}
	return id, nil
}

func (c collection[T]) findOne(ctx context.Context, filter any) (*T, error) {
	var doc T
	if err := c.coll.FindOne(ctx, filter).Decode(&doc); err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, c.notFound
		}
		return nil, fmt.Errorf("find %s: %w", c.name, err)
	}
	return &doc, nil
}

func (c collection[T]) findByID(ctx context.Context, id entities.ID) (*T, error) {
	return c.findOne(ctx, bson.M{"_id": id})
}

// set applies a partial update in one round trip and returns the new document.
func (c collection[T]) set(ctx context.Context, id entities.ID, fields bson.M) (*T, error) {
	opts := options.FindOneAndUpdate().SetReturnDocument(options.After)

	var doc T
	err := c.coll.FindOneAndUpdate(ctx, bson.M{"_id": id}, bson.M{"$set": fields}, opts).Decode(&doc)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, c.notFound
		}
		return nil, fmt.Errorf("update %s: %w", c.name, err)
	}
	return &doc, nil
}

// replace swaps every field of the document with id for those of doc.
func (c collection[T]) replace(ctx context.Context, id entities.ID, doc *T) (*T, error) {
	opts := options.FindOneAndReplace().SetReturnDocument(options.After)

	var out T
	err := c.coll.FindOneAndReplace(ctx, bson.M{"_id": id}, doc, opts).Decode(&out)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, c.notFound
		}
		return nil, fmt.Errorf("replace %s: %w", c.name, err)
	}
	return &out, nil
}

func (c collection[T]) remove(ctx context.Context, id entities.ID) (*T, error) {
	var doc T
	if err := c.coll.FindOneAndDelete(ctx, bson.M{"_id": id}).Decode(&doc); err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, c.notFound
		}
		return nil, fmt.Errorf("delete %s: %w", c.name, err)
	}
	return &doc, nil
}

func (c collection[T]) exists(ctx context.Context, id entities.ID) (bool, error) {
	return documentExists(ctx, c.coll, id)
}

func documentExists(ctx context.Context, coll *mongo.Collection, id entities.ID) (bool, error) {
	opts := options.FindOne().SetProjection(bson.M{"_id": 1})
	err := coll.FindOne(ctx, bson.M{"_id": id}, opts).Err()
	switch {
	case err == nil:
		return true, nil
	case errors.Is(err, mongo.ErrNoDocuments):
		return false, nil
	default:
		return false, fmt.Errorf("lookup %s: %w", coll.Name(), err)
	}
}
