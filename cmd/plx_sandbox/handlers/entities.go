package handlers

import (
	"context"
	"encoding/json"
	"time"

	"github.com/polyaxon/plx/pkg/api/types/misc/rfctime"
	kdb "github.com/polyaxon/plx/pkg/db"
)

// entities reads and writes documents of one kind as T.
type entities[T any] struct {
	docs kdb.DocumentInterface
	kind kdb.Kind

	// name of the document for entity. It may be empty for nameless kinds.
	name func(T) string

	// stamp overlays uuid and timestamps of the document onto the entity.
	stamp func(T, kdb.Document) T
}

type entity[T any] struct {
	Value T
	Doc   kdb.Document
}

func (es entities[T]) decode(doc kdb.Document) (entity[T], error) {
	var v T
	if err := json.Unmarshal(doc.Body, &v); err != nil {
		return entity[T]{}, err
	}
	return entity[T]{Value: es.stamp(v, doc), Doc: doc}, nil
}

func (es entities[T]) Create(ctx context.Context, owner string, parent string, v T) (entity[T], error) {
	body, err := json.Marshal(v)
	if err != nil {
		return entity[T]{}, err
	}
	doc, err := es.docs.Create(ctx, kdb.Document{
		Kind: es.kind, Owner: owner, Parent: parent, Name: es.name(v), Body: body,
	})
	if err != nil {
		return entity[T]{}, err
	}
	return es.decode(doc)
}

func (es entities[T]) Get(ctx context.Context, owner string, uuid string) (entity[T], error) {
	doc, err := es.docs.Get(ctx, es.kind, owner, uuid)
	if err != nil {
		return entity[T]{}, err
	}
	return es.decode(doc)
}

func (es entities[T]) GetByName(ctx context.Context, owner string, parent string, name string) (entity[T], error) {
	doc, err := es.docs.GetByName(ctx, es.kind, owner, parent, name)
	if err != nil {
		return entity[T]{}, err
	}
	return es.decode(doc)
}

func (es entities[T]) List(ctx context.Context, q kdb.Query) ([]T, int, error) {
	q.Kind = es.kind
	docs, total, err := es.docs.List(ctx, q)
	if err != nil {
		return nil, 0, err
	}
	ret := make([]T, 0, len(docs))
	for _, d := range docs {
		e, err := es.decode(d)
		if err != nil {
			return nil, 0, err
		}
		ret = append(ret, e.Value)
	}
	return ret, total, nil
}

// Update replaces the entity held in the document.
func (es entities[T]) Update(ctx context.Context, doc kdb.Document, v T) (entity[T], error) {
	body, err := json.Marshal(v)
	if err != nil {
		return entity[T]{}, err
	}
	doc.Name = es.name(v)
	doc.Body = body
	updated, err := es.docs.Update(ctx, doc)
	if err != nil {
		return entity[T]{}, err
	}
	return es.decode(updated)
}

func (es entities[T]) Delete(ctx context.Context, owner string, uuid string) error {
	return es.docs.Delete(ctx, es.kind, owner, uuid)
}

func timestamp(t time.Time) *rfctime.RFC3339 {
	if t.IsZero() {
		return nil
	}
	return rfctime.Ref(rfctime.RFC3339(t))
}
