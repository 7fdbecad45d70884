package db

import (
	"context"
	"encoding/json"
	"errors"
	"strings"
	"time"

	"github.com/google/uuid"
)

var (
	// requested document is not found.
	ErrMissing = errors.New("missing")

	// document conflicts with another one having the same name.
	ErrConflict = errors.New("conflict")

	// query is not understood.
	ErrInvalidQuery = errors.New("invalid query")
)

// Kind is a type of entity a Document holds.
type Kind string

const (
	Team       Kind = "team"
	Project    Kind = "project"
	Connection Kind = "connection"
	Agent      Kind = "agent"
	Queue      Kind = "queue"
	Model      Kind = "model"
	Component  Kind = "component"
	Run        Kind = "run"

	// log lines of a run. Parent is the run uuid, Name is the log file name.
	Log Kind = "log"
)

// Document is an entity stored as JSON.
//
// Non-empty Name is unique in (Kind, Owner, Parent).
type Document struct {
	Kind  Kind
	Owner string

	// uuid of the agent for queues, name of the project for runs,
	// uuid of the run for logs. Empty for others.
	Parent string

	UUID string
	Name string
	Body json.RawMessage

	CreatedAt time.Time
	UpdatedAt time.Time
}

// Query selects documents to be listed.
type Query struct {
	Kind  Kind
	Owner string

	// empty matches any parent.
	Parent string

	// substring of Name.
	NameContains string

	// exact match with top-level string fields of Body.
	Fields map[string]string

	// one of "created_at", "updated_at" or "name", optionally prefixed with "-" for descending.
	//
	// Empty means "created_at".
	Sort string

	Offset int

	// 0 means unlimited.
	Limit int
}

var sortKeys = map[string]struct{}{
	"created_at": {},
	"updated_at": {},
	"name":       {},
}

// SortKey validates Sort and splits it into a field and direction.
func (q Query) SortKey() (field string, descending bool, err error) {
	field, descending = strings.CutPrefix(q.Sort, "-")
	if field == "" {
		field = "created_at"
	}
	if _, ok := sortKeys[field]; !ok {
		return "", false, errors.Join(ErrInvalidQuery, errors.New("cannot sort by "+field))
	}
	return field, descending, nil
}

// DocumentInterface stores documents.
type DocumentInterface interface {
	// Create stores doc.
	//
	// UUID is generated when empty. CreatedAt and UpdatedAt are set by the store.
	//
	// # Returns
	//
	// - Document: stored document
	//
	// - error: ErrConflict when a document with the same name exists.
	Create(ctx context.Context, doc Document) (Document, error)

	// Get a document by uuid.
	//
	// error is ErrMissing when not found.
	Get(ctx context.Context, kind Kind, owner string, uuid string) (Document, error)

	// GetByName gets a document by name in the parent.
	//
	// error is ErrMissing when not found.
	GetByName(ctx context.Context, kind Kind, owner string, parent string, name string) (Document, error)

	// List documents matching q.
	//
	// # Returns
	//
	// - []Document: a page of documents
	//
	// - int: number of all documents matching q, ignoring Offset and Limit.
	//
	// - error
	List(ctx context.Context, q Query) ([]Document, int, error)

	// Update replaces Name and Body of the document with doc.UUID.
	//
	// error is ErrMissing when not found, ErrConflict when the new name is taken.
	Update(ctx context.Context, doc Document) (Document, error)

	// Delete a document by uuid.
	//
	// Documents whose Parent is the uuid are deleted together.
	// error is ErrMissing when not found.
	Delete(ctx context.Context, kind Kind, owner string, uuid string) error

	Close() error
}

// NewUUID returns a random uuid in hex, without dashes.
func NewUUID() string {
	u := uuid.New()
	return strings.ReplaceAll(u.String(), "-", "")
}

// BodyFields extracts top-level string fields of body.
//
// Non-string fields are ignored.
func BodyFields(body json.RawMessage) map[string]string {
	raw := map[string]json.RawMessage{}
	if err := json.Unmarshal(body, &raw); err != nil {
		return map[string]string{}
	}
	ret := map[string]string{}
	for k, v := range raw {
		var s string
		if err := json.Unmarshal(v, &s); err == nil {
			ret[k] = s
		}
	}
	return ret
}
