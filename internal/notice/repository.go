package notice

import (
	"context"
	"errors"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// ListFilter is the server-side portion of the list query. Status is an
// exact match; empty means no filter.
type ListFilter struct {
	Status string
}

// NoticeRepository is the persistence boundary for notices. Every write is
// a single atomic operation against one record.
type NoticeRepository interface {
	Insert(ctx context.Context, n *Notice) error
	FindByID(ctx context.Context, id primitive.ObjectID) (*Notice, error)
	Replace(ctx context.Context, n *Notice) error
	UpdateStatus(ctx context.Context, id primitive.ObjectID, status string, updatedAt time.Time) (*Notice, error)
	FindPage(ctx context.Context, filter ListFilter, skip, limit int64) ([]*Notice, error)
	FindAll(ctx context.Context, filter ListFilter) ([]*Notice, error)
	Count(ctx context.Context, filter ListFilter) (int64, error)
}

// MongoNoticeRepository implements NoticeRepository on the notices
// collection.
type MongoNoticeRepository struct {
	collection *mongo.Collection
}

// NewNoticeRepository creates the MongoDB-backed repository.
func NewNoticeRepository(db *mongo.Database) NoticeRepository {
	return &MongoNoticeRepository{collection: db.Collection("notices")}
}

// listSort orders by publish date, newest first, then by creation time.
var listSort = bson.D{
	{Key: "publish_date", Value: -1},
	{Key: "created_at", Value: -1},
}

func (f ListFilter) toBSON() bson.M {
	filter := bson.M{}
	if f.Status != "" {
		filter["status"] = f.Status
	}
	return filter
}

func (r *MongoNoticeRepository) Insert(ctx context.Context, n *Notice) error {
	_, err := r.collection.InsertOne(ctx, n)
	return err
}

func (r *MongoNoticeRepository) FindByID(ctx context.Context, id primitive.ObjectID) (*Notice, error) {
	var n Notice
	err := r.collection.FindOne(ctx, bson.M{"_id": id}).Decode(&n)
	if errors.Is(err, mongo.ErrNoDocuments) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, err
	}
	return &n, nil
}

func (r *MongoNoticeRepository) Replace(ctx context.Context, n *Notice) error {
	res, err := r.collection.ReplaceOne(ctx, bson.M{"_id": n.ID}, n)
	if err != nil {
		return err
	}
	if res.MatchedCount == 0 {
		return ErrNotFound
	}
	return nil
}

func (r *MongoNoticeRepository) UpdateStatus(ctx context.Context, id primitive.ObjectID, status string, updatedAt time.Time) (*Notice, error) {
	update := bson.M{"$set": bson.M{"status": status, "updated_at": updatedAt}}
	opts := options.FindOneAndUpdate().SetReturnDocument(options.After)

	var n Notice
	err := r.collection.FindOneAndUpdate(ctx, bson.M{"_id": id}, update, opts).Decode(&n)
	if errors.Is(err, mongo.ErrNoDocuments) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, err
	}
	return &n, nil
}

func (r *MongoNoticeRepository) FindPage(ctx context.Context, filter ListFilter, skip, limit int64) ([]*Notice, error) {
	opts := options.Find().SetSort(listSort).SetSkip(skip).SetLimit(limit)
	cursor, err := r.collection.Find(ctx, filter.toBSON(), opts)
	if err != nil {
		return nil, err
	}
	return decodeNotices(ctx, cursor)
}

func (r *MongoNoticeRepository) FindAll(ctx context.Context, filter ListFilter) ([]*Notice, error) {
	opts := options.Find().SetSort(listSort)
	cursor, err := r.collection.Find(ctx, filter.toBSON(), opts)
	if err != nil {
		return nil, err
	}
	return decodeNotices(ctx, cursor)
}

func (r *MongoNoticeRepository) Count(ctx context.Context, filter ListFilter) (int64, error) {
	return r.collection.CountDocuments(ctx, filter.toBSON())
}

func decodeNotices(ctx context.Context, cursor *mongo.Cursor) ([]*Notice, error) {
	notices := []*Notice{}
	if err := cursor.All(ctx, &notices); err != nil {
		return nil, err
	}
	return notices, nil
}
