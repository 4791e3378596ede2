package repository

import (
	"errors"
	"testing"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

func TestCursorFilterDirections(t *testing.T) {
	id := primitive.NewObjectID()

	f, dir, err := cursorFilter(bson.M{"status": "done"}, PageQuery{After: id.Hex()})
	if err != nil {
		t.Fatalf("after cursor: %v", err)
	}
	if dir != 1 {
		t.Fatalf("after must fetch ascending, got %d", dir)
	}
	if cond, ok := f["_id"].(bson.M); !ok || cond["$gt"] != id {
		t.Fatalf("after filter wrong: %+v", f)
	}
	if f["status"] != "done" {
		t.Fatalf("caller filter lost: %+v", f)
	}

	f, dir, err = cursorFilter(bson.M{}, PageQuery{Before: id.Hex()})
	if err != nil {
		t.Fatalf("before cursor: %v", err)
	}
	if dir != -1 {
		t.Fatalf("before must fetch descending, got %d", dir)
	}
	if cond, ok := f["_id"].(bson.M); !ok || cond["$lt"] != id {
		t.Fatalf("before filter wrong: %+v", f)
	}

	if _, _, err := cursorFilter(bson.M{}, PageQuery{After: "zzz"}); !errors.Is(err, ErrBadCursor) {
		t.Fatalf("garbage cursor accepted: %v", err)
	}
}

// list endpoints that hold secrets (employee password hashes) rely on the
// projection reaching the Find, so neither the response nor the page cache
// ever sees the field
func TestFindOptionsCarryProjection(t *testing.T) {
	opts := findOptions(10, 1, bson.M{"password": 0})
	proj, ok := opts.Projection.(bson.M)
	if !ok || len(proj) != 1 {
		t.Fatalf("projection not applied: %+v", opts.Projection)
	}
	if v, ok := proj["password"]; !ok || v != 0 {
		t.Fatalf("password not excluded: %+v", proj)
	}
	if *opts.Limit != 11 {
		t.Fatalf("overfetch limit wrong: %d", *opts.Limit)
	}

	opts = findOptions(10, -1, nil)
	if opts.Projection != nil {
		t.Fatalf("nil projection must stay unset: %+v", opts.Projection)
	}
}

func pageDocs(n int) []bson.M {
	docs := make([]bson.M, n)
	for i := range docs {
		docs[i] = bson.M{"_id": primitive.NewObjectID()}
	}
	return docs
}

func TestBuildPageOverfetchFencepost(t *testing.T) {
	docs := pageDocs(4) // limit 3 plus the overfetched sentinel

	page, info := buildPage(docs, 3, false)
	if !info.HasMore {
		t.Fatalf("overfetch must report more pages")
	}
	if info.Count != 3 || len(page) != 3 {
		t.Fatalf("page not trimmed to limit: %d", len(page))
	}
	if info.First != page[0]["_id"].(primitive.ObjectID).Hex() ||
		info.Last != page[2]["_id"].(primitive.ObjectID).Hex() {
		t.Fatalf("cursors do not frame the page: %+v", info)
	}

	page, info = buildPage(pageDocs(3), 3, false)
	if info.HasMore {
		t.Fatalf("exact fill must not report more pages")
	}
	if len(page) != 3 {
		t.Fatalf("exact fill trimmed: %d", len(page))
	}

	page, info = buildPage(nil, 3, false)
	if info.HasMore || info.Count != 0 || info.First != "" || info.Last != "" {
		t.Fatalf("empty page info wrong: %+v", info)
	}
	if len(page) != 0 {
		t.Fatalf("empty page has docs")
	}
}

// a backward fetch arrives newest-first and must be flipped back before the
// trimmed sentinel can confuse the cursors
func TestBuildPageReversesBackwardFetch(t *testing.T) {
	docs := pageDocs(4) // descending order as mongo returns it for Before
	ids := make([]primitive.ObjectID, len(docs))
	for i, d := range docs {
		ids[i] = d["_id"].(primitive.ObjectID)
	}

	page, info := buildPage(docs, 3, true)
	if !info.HasMore {
		t.Fatalf("overfetch must report more pages")
	}
	if len(page) != 3 {
		t.Fatalf("page not trimmed: %d", len(page))
	}
	// ids[2], ids[1], ids[0] is the ascending order of the kept three
	for i := 0; i < 3; i++ {
		if page[i]["_id"] != ids[2-i] {
			t.Fatalf("page not restored to ascending order at %d", i)
		}
	}
	if info.First != ids[2].Hex() || info.Last != ids[0].Hex() {
		t.Fatalf("cursors wrong after reversal: %+v", info)
	}
}
