package db

import (
	"context" // Context for store operations
	"reflect" // Change detection on updates
	"regexp"  // $regex evaluation
	"sync"    // Guarding the document map

	"go.mongodb.org/mongo-driver/bson"           // BSON documents
	"go.mongodb.org/mongo-driver/bson/primitive" // ObjectID generation
)

// Memory is an in-process Store used by tests and local development.
// It evaluates the filter and update operators the handlers emit:
// field equality, $regex with the "i" option, $gte/$lte, $set, $inc and upsert
type Memory struct {
	mu   sync.RWMutex
	cols map[string]*memCollection // Documents per collection name
}

// NewMemory creates an empty in-memory store
func NewMemory() *Memory {
	return &Memory{cols: make(map[string]*memCollection)}
}

func (m *Memory) collection(name string) *memCollection {
	m.mu.Lock()
	defer m.mu.Unlock()
	col, ok := m.cols[name]
	if !ok {
		col = &memCollection{}
		m.cols[name] = col
	}
	return col
}

func (m *Memory) Users() Collection         { return m.collection(ColUsers) }
func (m *Memory) Meals() Collection         { return m.collection(ColMeals) }
func (m *Memory) UpcomingMeals() Collection { return m.collection(ColUpcomingMeals) }
func (m *Memory) Reviews() Collection       { return m.collection(ColReviews) }
func (m *Memory) Packages() Collection      { return m.collection(ColPackages) }
func (m *Memory) Requests() Collection      { return m.collection(ColRequests) }

// memCollection holds documents in insertion order
type memCollection struct {
	mu   sync.RWMutex
	docs []bson.M
}

// Find returns all documents matching the filter
func (c *memCollection) Find(_ context.Context, filter bson.M) ([]bson.M, error) {
	c.mu.RLock()
	defer c.mu.RUnlock()
	results := []bson.M{}
	for _, doc := range c.docs {
		if matchDoc(doc, filter) {
			results = append(results, copyDoc(doc))
		}
	}
	return results, nil
}

// FindOne decodes the first matching document into dest
func (c *memCollection) FindOne(_ context.Context, filter bson.M, dest any) error {
	c.mu.RLock()
	defer c.mu.RUnlock()
	for _, doc := range c.docs {
		if matchDoc(doc, filter) {
			return decodeDoc(doc, dest)
		}
	}
	return ErrNoDocument
}

// InsertOne inserts a single document, assigning an id if absent
func (c *memCollection) InsertOne(_ context.Context, doc any) (*InsertOneResult, error) {
	m, err := toDoc(doc)
	if err != nil {
		return nil, err
	}
	id, ok := m["_id"]
	if !ok || id == primitive.NilObjectID {
		id = primitive.NewObjectID()
		m["_id"] = id
	}
	c.mu.Lock()
	c.docs = append(c.docs, m)
	c.mu.Unlock()
	return &InsertOneResult{InsertedID: id}, nil
}

// UpdateOne applies the update to the first matching document
func (c *memCollection) UpdateOne(_ context.Context, filter, update bson.M, upsert bool) (*UpdateResult, error) {
	c.mu.Lock()
	defer c.mu.Unlock()
	for _, doc := range c.docs {
		if !matchDoc(doc, filter) {
			continue
		}
		before := copyDoc(doc)
		applyUpdate(doc, update)
		res := &UpdateResult{MatchedCount: 1}
		if !reflect.DeepEqual(before, doc) {
			res.ModifiedCount = 1 // Only count real changes, as the store does
		}
		return res, nil
	}
	if !upsert {
		return &UpdateResult{}, nil
	}
	// Upsert: seed the new document from the filter's equality fields
	m := bson.M{}
	for k, v := range filter {
		if _, isOp := v.(bson.M); !isOp {
			m[k] = v
		}
	}
	applyUpdate(m, update)
	id, ok := m["_id"]
	if !ok {
		id = primitive.NewObjectID()
		m["_id"] = id
	}
	c.docs = append(c.docs, m)
	return &UpdateResult{UpsertedCount: 1, UpsertedID: id}, nil
}

// DeleteOne removes the first matching document
func (c *memCollection) DeleteOne(_ context.Context, filter bson.M) (*DeleteResult, error) {
	c.mu.Lock()
	defer c.mu.Unlock()
	for i, doc := range c.docs {
		if matchDoc(doc, filter) {
			c.docs = append(c.docs[:i], c.docs[i+1:]...)
			return &DeleteResult{DeletedCount: 1}, nil
		}
	}
	return &DeleteResult{}, nil
}

// toDoc converts any insertable value into a bson.M via a bson round trip,
// so struct tags behave exactly as they do against the real store
func toDoc(v any) (bson.M, error) {
	raw, err := bson.Marshal(v)
	if err != nil {
		return nil, err
	}
	m := bson.M{}
	if err := bson.Unmarshal(raw, &m); err != nil {
		return nil, err
	}
	return m, nil
}

// decodeDoc decodes a stored document into dest through bson
func decodeDoc(doc bson.M, dest any) error {
	raw, err := bson.Marshal(doc)
	if err != nil {
		return err
	}
	return bson.Unmarshal(raw, dest)
}

func copyDoc(doc bson.M) bson.M {
	out := bson.M{}
	for k, v := range doc {
		out[k] = v
	}
	return out
}

// matchDoc reports whether a document satisfies every filter clause
func matchDoc(doc, filter bson.M) bool {
	for field, cond := range filter {
		val, present := doc[field]
		if ops, isOp := cond.(bson.M); isOp {
			if !matchOps(val, ops, present) {
				return false
			}
			continue
		}
		if !present || !equalValue(val, cond) {
			return false
		}
	}
	return true
}

// matchOps evaluates operator clauses ($regex, $gte, $lte) against a value
func matchOps(val any, ops bson.M, present bool) bool {
	for op, arg := range ops {
		switch op {
		case "$regex":
			pattern, _ := arg.(string)
			if opts, _ := ops["$options"].(string); opts == "i" {
				pattern = "(?i)" + pattern
			}
			re, err := regexp.Compile(pattern)
			if err != nil {
				return false
			}
			s, ok := val.(string)
			if !present || !ok || !re.MatchString(s) {
				return false
			}
		case "$options":
			// Consumed with $regex
		case "$gte":
			a, aok := toFloat(val)
			b, bok := toFloat(arg)
			if !present || !aok || !bok || a < b {
				return false
			}
		case "$lte":
			a, aok := toFloat(val)
			b, bok := toFloat(arg)
			if !present || !aok || !bok || a > b {
				return false
			}
		default:
			return false // Unsupported operator never matches
		}
	}
	return true
}

// applyUpdate applies $set and $inc clauses in place
func applyUpdate(doc, update bson.M) {
	if set, ok := update["$set"].(bson.M); ok {
		for k, v := range set {
			doc[k] = v
		}
	}
	if inc, ok := update["$inc"].(bson.M); ok {
		for k, v := range inc {
			cur, _ := toFloat(doc[k])
			delta, _ := toFloat(v)
			doc[k] = int64(cur + delta)
		}
	}
}

// equalValue compares a stored value against a filter value, coercing
// across the numeric types a bson round trip produces
func equalValue(a, b any) bool {
	if fa, ok := toFloat(a); ok {
		if fb, ok := toFloat(b); ok {
			return fa == fb
		}
		return false
	}
	return a == b
}

func toFloat(v any) (float64, bool) {
	switch n := v.(type) {
	case int:
		return float64(n), true
	case int32:
		return float64(n), true
	case int64:
		return float64(n), true
	case float32:
		return float64(n), true
	case float64:
		return n, true
	default:
		return 0, false
	}
}
