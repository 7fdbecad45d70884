// Package memory is a DocumentInterface kept in process memory.
//
// Contents are lost when the process exits.
package memory

import (
	"cmp"
	"context"
	"fmt"
	"slices"
	"strings"
	"sync"
	"time"

	kdb "github.com/polyaxon/plx/pkg/db"
)

type store struct {
	mux  sync.RWMutex
	docs map[string]kdb.Document

	now func() time.Time
}

type Option func(*store) *store

// WithClock replaces the clock used for timestamps.
func WithClock(now func() time.Time) Option {
	return func(s *store) *store {
		s.now = now
		return s
	}
}

func New(options ...Option) kdb.DocumentInterface {
	s := &store{
		docs: map[string]kdb.Document{},
		now:  time.Now,
	}
	for _, opt := range options {
		s = opt(s)
	}
	return s
}

func clone(d kdb.Document) kdb.Document {
	d.Body = slices.Clone(d.Body)
	return d
}

// nameTaken reports another document has the name of d. Caller holds the lock.
func (s *store) nameTaken(d kdb.Document) bool {
	if d.Name == "" {
		return false
	}
	for _, o := range s.docs {
		if o.UUID != d.UUID && o.Kind == d.Kind && o.Owner == d.Owner && o.Parent == d.Parent && o.Name == d.Name {
			return true
		}
	}
	return false
}

func (s *store) Create(ctx context.Context, doc kdb.Document) (kdb.Document, error) {
	s.mux.Lock()
	defer s.mux.Unlock()

	if doc.UUID == "" {
		doc.UUID = kdb.NewUUID()
	}
	if _, ok := s.docs[doc.UUID]; ok {
		return kdb.Document{}, fmt.Errorf("%w: uuid %s", kdb.ErrConflict, doc.UUID)
	}
	if s.nameTaken(doc) {
		return kdb.Document{}, fmt.Errorf("%w: %s %s is already taken", kdb.ErrConflict, doc.Kind, doc.Name)
	}

	now := s.now()
	doc.CreatedAt = now
	doc.UpdatedAt = now
	doc = clone(doc)
	s.docs[doc.UUID] = doc
	return clone(doc), nil
}

func (s *store) Get(ctx context.Context, kind kdb.Kind, owner string, uuid string) (kdb.Document, error) {
	s.mux.RLock()
	defer s.mux.RUnlock()

	d, ok := s.docs[uuid]
	if !ok || d.Kind != kind || d.Owner != owner {
		return kdb.Document{}, fmt.Errorf("%w: %s %s", kdb.ErrMissing, kind, uuid)
	}
	return clone(d), nil
}

func (s *store) GetByName(ctx context.Context, kind kdb.Kind, owner string, parent string, name string) (kdb.Document, error) {
	s.mux.RLock()
	defer s.mux.RUnlock()

	for _, d := range s.docs {
		if d.Kind == kind && d.Owner == owner && d.Parent == parent && d.Name == name {
			return clone(d), nil
		}
	}
	return kdb.Document{}, fmt.Errorf("%w: %s %s", kdb.ErrMissing, kind, name)
}

func matches(q kdb.Query, d kdb.Document) bool {
	if d.Kind != q.Kind || d.Owner != q.Owner {
		return false
	}
	if q.Parent != "" && d.Parent != q.Parent {
		return false
	}
	if q.NameContains != "" && !strings.Contains(d.Name, q.NameContains) {
		return false
	}
	if len(q.Fields) == 0 {
		return true
	}
	fields := kdb.BodyFields(d.Body)
	for k, v := range q.Fields {
		if actual, ok := fields[k]; !ok || actual != v {
			return false
		}
	}
	return true
}

func (s *store) List(ctx context.Context, q kdb.Query) ([]kdb.Document, int, error) {
	field, desc, err := q.SortKey()
	if err != nil {
		return nil, 0, err
	}
	if q.Offset < 0 || q.Limit < 0 {
		return nil, 0, fmt.Errorf("%w: negative offset or limit", kdb.ErrInvalidQuery)
	}

	s.mux.RLock()
	found := []kdb.Document{}
	for _, d := range s.docs {
		if matches(q, d) {
			found = append(found, clone(d))
		}
	}
	s.mux.RUnlock()

	compare := func(a, b kdb.Document) int {
		var c int
		switch field {
		case "name":
			c = cmp.Compare(a.Name, b.Name)
		case "updated_at":
			c = a.UpdatedAt.Compare(b.UpdatedAt)
		default:
			c = a.CreatedAt.Compare(b.CreatedAt)
		}
		if desc {
			c = -c
		}
		if c == 0 {
			c = cmp.Compare(a.UUID, b.UUID)
		}
		return c
	}
	slices.SortFunc(found, compare)

	total := len(found)
	if total <= q.Offset {
		return []kdb.Document{}, total, nil
	}
	found = found[q.Offset:]
	if 0 < q.Limit && q.Limit < len(found) {
		found = found[:q.Limit]
	}
	return found, total, nil
}

func (s *store) Update(ctx context.Context, doc kdb.Document) (kdb.Document, error) {
	s.mux.Lock()
	defer s.mux.Unlock()

	current, ok := s.docs[doc.UUID]
	if !ok || current.Kind != doc.Kind || current.Owner != doc.Owner {
		return kdb.Document{}, fmt.Errorf("%w: %s %s", kdb.ErrMissing, doc.Kind, doc.UUID)
	}
	current.Name = doc.Name
	current.Body = slices.Clone(doc.Body)
	if s.nameTaken(current) {
		return kdb.Document{}, fmt.Errorf("%w: %s %s is already taken", kdb.ErrConflict, doc.Kind, doc.Name)
	}
	current.UpdatedAt = s.now()
	s.docs[current.UUID] = current
	return clone(current), nil
}

func (s *store) Delete(ctx context.Context, kind kdb.Kind, owner string, uuid string) error {
	s.mux.Lock()
	defer s.mux.Unlock()

	d, ok := s.docs[uuid]
	if !ok || d.Kind != kind || d.Owner != owner {
		return fmt.Errorf("%w: %s %s", kdb.ErrMissing, kind, uuid)
	}
	delete(s.docs, uuid)
	for k, child := range s.docs {
		if child.Owner == owner && child.Parent == uuid {
			delete(s.docs, k)
		}
	}
	return nil
}

func (s *store) Close() error {
	return nil
}
