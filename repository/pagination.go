package repository

import (
	"context"
	"errors"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

const DefaultPageSize = 10

// ErrBadCursor is returned for a cursor that is not a document id.
var ErrBadCursor = errors.New("bad page cursor")

// PageQuery carries the next/previous cursors: After is the last _id of the
// page being left, Before the first. Only one is honored; jumping to an
// arbitrary page is not supported.
type PageQuery struct {
	Limit  int
	After  string
	Before string
}

type PageInfo struct {
	First   string `json:"first,omitempty"`
	Last    string `json:"last,omitempty"`
	HasMore bool   `json:"has_more"`
	Count   int    `json:"count"`
}

func clampLimit(limit int) int {
	if limit <= 0 || limit > 100 {
		return DefaultPageSize
	}
	return limit
}

// cursorFilter folds the cursor into the caller's filter and picks the fetch
// direction: ascending for After, descending for Before.
func cursorFilter(filter bson.M, q PageQuery) (bson.M, int, error) {
	f := bson.M{}
	for k, v := range filter {
		f[k] = v
	}

	sortDir := 1
	switch {
	case q.Before != "":
		id, err := primitive.ObjectIDFromHex(q.Before)
		if err != nil {
			return nil, 0, ErrBadCursor
		}
		f["_id"] = bson.M{"$lt": id}
		sortDir = -1
	case q.After != "":
		id, err := primitive.ObjectIDFromHex(q.After)
		if err != nil {
			return nil, 0, ErrBadCursor
		}
		f["_id"] = bson.M{"$gt": id}
	}
	return f, sortDir, nil
}

// buildPage trims the overfetched document, restores ascending order for a
// backward fetch, and derives the cursors for the next hop.
func buildPage(docs []bson.M, limit int, descending bool) ([]bson.M, *PageInfo) {
	hasMore := len(docs) > limit
	if hasMore {
		docs = docs[:limit]
	}
	if descending {
		for i, j := 0, len(docs)-1; i < j; i, j = i+1, j-1 {
			docs[i], docs[j] = docs[j], docs[i]
		}
	}

	info := &PageInfo{HasMore: hasMore, Count: len(docs)}
	if len(docs) > 0 {
		if id, ok := docs[0]["_id"].(primitive.ObjectID); ok {
			info.First = id.Hex()
		}
		if id, ok := docs[len(docs)-1]["_id"].(primitive.ObjectID); ok {
			info.Last = id.Hex()
		}
	}
	return docs, info
}

func findOptions(limit, sortDir int, projection bson.M) *options.FindOptions {
	opts := options.Find().
		SetSort(bson.D{{Key: "_id", Value: sortDir}}).
		SetLimit(int64(limit + 1))
	if projection != nil {
		opts.SetProjection(projection)
	}
	return opts
}

// Paginate runs a cursor-paged Find over the collection, ordered by _id. It
// fetches one document past the limit to learn whether more pages exist in
// the direction of travel. A non-nil projection is applied as-is, so callers
// can keep fields like password hashes out of list responses.
func Paginate(ctx context.Context, coll *mongo.Collection, filter bson.M, q PageQuery, projection bson.M) ([]bson.M, *PageInfo, error) {
	limit := clampLimit(q.Limit)

	f, sortDir, err := cursorFilter(filter, q)
	if err != nil {
		return nil, nil, err
	}

	cursor, err := coll.Find(ctx, f, findOptions(limit, sortDir, projection))
	if err != nil {
		return nil, nil, err
	}
	var docs []bson.M
	if err := cursor.All(ctx, &docs); err != nil {
		return nil, nil, err
	}

	docs, info := buildPage(docs, limit, sortDir == -1)
	return docs, info, nil
}
