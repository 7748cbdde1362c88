// Package repotest provides an in-memory stand-in for the document-store
// collection boundary, good enough for the filters and update operators
// the repositories actually use.
package repotest

import (
	"context"
	"fmt"
	"reflect"
	"regexp"
	"sort"
	"sync"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// Collection stores documents as bson maps and rejects inserts that
// collide on a declared unique key set, the way a unique index would.
type Collection struct {
	mu     sync.Mutex
	docs   []bson.M
	unique [][]string
}

// NewCollection builds an empty collection. Each uniqueKeys entry names
// one compound unique index.
func NewCollection(uniqueKeys ...[]string) *Collection {
	return &Collection{unique: uniqueKeys}
}

// Len reports how many documents are stored.
func (c *Collection) Len() int {
	c.mu.Lock()
	defer c.mu.Unlock()
	return len(c.docs)
}

func toDoc(v any) (bson.M, error) {
	raw, err := bson.Marshal(v)
	if err != nil {
		return nil, err
	}
	var doc bson.M
	if err := bson.Unmarshal(raw, &doc); err != nil {
		return nil, err
	}
	return doc, nil
}

func duplicateKeyError() error {
	return mongo.WriteException{
		WriteErrors: mongo.WriteErrors{{Code: 11000, Message: "E11000 duplicate key error"}},
	}
}

func (c *Collection) InsertOne(_ context.Context, doc any) (primitive.ObjectID, error) {
	c.mu.Lock()
	defer c.mu.Unlock()

	m, err := toDoc(doc)
	if err != nil {
		return primitive.NilObjectID, err
	}
	id, ok := m["_id"].(primitive.ObjectID)
	if !ok || id.IsZero() {
		id = primitive.NewObjectID()
		m["_id"] = id
	}

	for _, keys := range c.unique {
		for _, existing := range c.docs {
			collides := true
			for _, k := range keys {
				if !valueEq(existing[k], m[k]) {
					collides = false
					break
				}
			}
			if collides {
				return primitive.NilObjectID, duplicateKeyError()
			}
		}
	}

	c.docs = append(c.docs, m)
	return id, nil
}

func (c *Collection) FindOne(_ context.Context, filter, out any) error {
	c.mu.Lock()
	defer c.mu.Unlock()

	for _, doc := range c.docs {
		if matches(doc, filter) {
			return decodeDoc(doc, out)
		}
	}
	return mongo.ErrNoDocuments
}

func (c *Collection) Find(_ context.Context, filter, out any, opts ...*options.FindOptions) error {
	c.mu.Lock()
	defer c.mu.Unlock()

	matched := []bson.M{}
	for _, doc := range c.docs {
		if matches(doc, filter) {
			matched = append(matched, doc)
		}
	}

	for _, opt := range opts {
		if opt == nil {
			continue
		}
		if opt.Sort != nil {
			applySort(matched, opt.Sort)
		}
		if opt.Limit != nil && int64(len(matched)) > *opt.Limit {
			matched = matched[:*opt.Limit]
		}
	}

	return decodeAll(matched, out)
}

func (c *Collection) FindOneAndUpdate(_ context.Context, filter, update, out any) error {
	c.mu.Lock()
	defer c.mu.Unlock()

	for _, doc := range c.docs {
		if matches(doc, filter) {
			applyUpdate(doc, update)
			return decodeDoc(doc, out)
		}
	}
	return mongo.ErrNoDocuments
}

func (c *Collection) UpdateOne(_ context.Context, filter, update any) (int64, int64, error) {
	c.mu.Lock()
	defer c.mu.Unlock()

	for _, doc := range c.docs {
		if matches(doc, filter) {
			applyUpdate(doc, update)
			return 1, 1, nil
		}
	}
	return 0, 0, nil
}

func (c *Collection) DeleteOne(_ context.Context, filter any) (int64, error) {
	c.mu.Lock()
	defer c.mu.Unlock()

	for i, doc := range c.docs {
		if matches(doc, filter) {
			c.docs = append(c.docs[:i], c.docs[i+1:]...)
			return 1, nil
		}
	}
	return 0, nil
}

func (c *Collection) CountDocuments(_ context.Context, filter any) (int64, error) {
	c.mu.Lock()
	defer c.mu.Unlock()

	var n int64
	for _, doc := range c.docs {
		if matches(doc, filter) {
			n++
		}
	}
	return n, nil
}

func matches(doc bson.M, filter any) bool {
	f, ok := filter.(bson.M)
	if !ok {
		return false
	}
	for key, want := range f {
		if key == "$or" {
			if !matchesOr(doc, want) {
				return false
			}
			continue
		}
		if !matchValue(doc[key], want) {
			return false
		}
	}
	return true
}

func matchesOr(doc bson.M, clauses any) bool {
	list, ok := clauses.([]bson.M)
	if !ok {
		return false
	}
	for _, clause := range list {
		if matches(doc, clause) {
			return true
		}
	}
	return false
}

func matchValue(have, want any) bool {
	if re, ok := want.(primitive.Regex); ok {
		s, ok := have.(string)
		if !ok {
			return false
		}
		pattern := re.Pattern
		if re.Options == "i" {
			pattern = "(?i)" + pattern
		}
		compiled, err := regexp.Compile(pattern)
		if err != nil {
			return false
		}
		return compiled.MatchString(s)
	}
	return valueEq(have, want)
}

func valueEq(a, b any) bool {
	return reflect.DeepEqual(a, b)
}

func applyUpdate(doc bson.M, update any) {
	u, ok := update.(bson.M)
	if !ok {
		return
	}
	if set, ok := u["$set"].(bson.M); ok {
		for k, v := range set {
			doc[k] = v
		}
	}
	if push, ok := u["$push"].(bson.M); ok {
		for k, v := range push {
			doc[k] = append(toSlice(doc[k]), v)
		}
	}
	if pull, ok := u["$pull"].(bson.M); ok {
		for k, v := range pull {
			kept := []any{}
			for _, el := range toSlice(doc[k]) {
				if !valueEq(el, v) {
					kept = append(kept, el)
				}
			}
			doc[k] = kept
		}
	}
}

func toSlice(v any) []any {
	if v == nil {
		return nil
	}
	rv := reflect.ValueOf(v)
	if rv.Kind() != reflect.Slice {
		return nil
	}
	out := make([]any, rv.Len())
	for i := range out {
		out[i] = rv.Index(i).Interface()
	}
	return out
}

func applySort(docs []bson.M, sortSpec any) {
	spec, ok := sortSpec.(bson.D)
	if !ok || len(spec) == 0 {
		return
	}
	key := spec[0].Key
	desc := false
	if dir, ok := spec[0].Value.(int); ok && dir < 0 {
		desc = true
	}
	sort.SliceStable(docs, func(i, j int) bool {
		a := fmt.Sprintf("%v", docs[i][key])
		b := fmt.Sprintf("%v", docs[j][key])
		if desc {
			return a > b
		}
		return a < b
	})
}

func decodeDoc(doc bson.M, out any) error {
	raw, err := bson.Marshal(doc)
	if err != nil {
		return err
	}
	return bson.Unmarshal(raw, out)
}

func decodeAll(docs []bson.M, out any) error {
	rv := reflect.ValueOf(out)
	if rv.Kind() != reflect.Ptr || rv.Elem().Kind() != reflect.Slice {
		return fmt.Errorf("decode target must be a pointer to a slice, got %T", out)
	}
	slice := reflect.MakeSlice(rv.Elem().Type(), 0, len(docs))
	for _, doc := range docs {
		elem := reflect.New(rv.Elem().Type().Elem())
		if err := decodeDoc(doc, elem.Interface()); err != nil {
			return err
		}
		slice = reflect.Append(slice, elem.Elem())
	}
	rv.Elem().Set(slice)
	return nil
}
