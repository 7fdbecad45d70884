package document

import (
	"context"
	"errors"
	"fmt"
	"strconv"
	"strings"

	"github.com/jackc/pgconn"
	"github.com/jackc/pgerrcode"
	"github.com/jackc/pgtype"
	"github.com/jackc/pgx/v4"
	kdb "github.com/polyaxon/plx/pkg/db"
	"github.com/polyaxon/plx/pkg/db/postgres/pool"
)

type pgDocuments struct {
	pool pool.Pool
}

func New(p pool.Pool) kdb.DocumentInterface {
	return &pgDocuments{pool: p}
}

const columns = `"kind", "owner", "parent", "uuid", "name", "body", "created_at", "updated_at"`

func scan(row pgx.Row) (kdb.Document, error) {
	var d kdb.Document
	var kind string
	var body pgtype.JSONB
	if err := row.Scan(
		&kind, &d.Owner, &d.Parent, &d.UUID, &d.Name, &body, &d.CreatedAt, &d.UpdatedAt,
	); err != nil {
		return kdb.Document{}, err
	}
	d.Kind = kdb.Kind(kind)
	d.Body = body.Bytes
	return d, nil
}

func jsonb(b []byte) pgtype.JSONB {
	if len(b) == 0 {
		return pgtype.JSONB{Bytes: []byte("null"), Status: pgtype.Present}
	}
	return pgtype.JSONB{Bytes: b, Status: pgtype.Present}
}

// asConflict translates unique violations into ErrConflict.
func asConflict(err error, doc kdb.Document) error {
	if pgerr := new(pgconn.PgError); errors.As(err, &pgerr) && pgerr.Code == pgerrcode.UniqueViolation {
		return fmt.Errorf("%w: %s %s is already taken", kdb.ErrConflict, doc.Kind, doc.Name)
	}
	return err
}

func missing(err error, kind kdb.Kind, id string) error {
	if errors.Is(err, pgx.ErrNoRows) {
		return fmt.Errorf("%w: %s %s", kdb.ErrMissing, kind, id)
	}
	return err
}

func (p *pgDocuments) Create(ctx context.Context, doc kdb.Document) (kdb.Document, error) {
	if doc.UUID == "" {
		doc.UUID = kdb.NewUUID()
	}
	created, err := scan(p.pool.QueryRow(
		ctx,
		`INSERT INTO "document" ("kind", "owner", "parent", "uuid", "name", "body")
		VALUES ($1, $2, $3, $4, $5, $6)
		RETURNING `+columns,
		string(doc.Kind), doc.Owner, doc.Parent, doc.UUID, doc.Name, jsonb(doc.Body),
	))
	if err != nil {
		return kdb.Document{}, asConflict(err, doc)
	}
	return created, nil
}

func (p *pgDocuments) Get(ctx context.Context, kind kdb.Kind, owner string, uuid string) (kdb.Document, error) {
	d, err := scan(p.pool.QueryRow(
		ctx,
		`SELECT `+columns+` FROM "document" WHERE "kind" = $1 AND "owner" = $2 AND "uuid" = $3`,
		string(kind), owner, uuid,
	))
	if err != nil {
		return kdb.Document{}, missing(err, kind, uuid)
	}
	return d, nil
}

func (p *pgDocuments) GetByName(ctx context.Context, kind kdb.Kind, owner string, parent string, name string) (kdb.Document, error) {
	d, err := scan(p.pool.QueryRow(
		ctx,
		`SELECT `+columns+` FROM "document"
		WHERE "kind" = $1 AND "owner" = $2 AND "parent" = $3 AND "name" = $4`,
		string(kind), owner, parent, name,
	))
	if err != nil {
		return kdb.Document{}, missing(err, kind, name)
	}
	return d, nil
}

// where builds WHERE clause of q and its arguments.
func where(q kdb.Query) (string, []any) {
	conds := []string{`"kind" = $1`, `"owner" = $2`}
	args := []any{string(q.Kind), q.Owner}
	next := func(v any) string {
		args = append(args, v)
		return "$" + strconv.Itoa(len(args))
	}

	if q.Parent != "" {
		conds = append(conds, `"parent" = `+next(q.Parent))
	}
	if q.NameContains != "" {
		conds = append(conds, `strpos("name", `+next(q.NameContains)+`::text) > 0`)
	}
	for k, v := range q.Fields {
		key := next(k)
		conds = append(conds, `jsonb_typeof("body" -> `+key+`::text) = 'string'`)
		conds = append(conds, `"body" ->> `+key+`::text = `+next(v)+`::text`)
	}
	return strings.Join(conds, " AND "), args
}

func (p *pgDocuments) List(ctx context.Context, q kdb.Query) ([]kdb.Document, int, error) {
	field, desc, err := q.SortKey()
	if err != nil {
		return nil, 0, err
	}
	if q.Offset < 0 || q.Limit < 0 {
		return nil, 0, fmt.Errorf("%w: negative offset or limit", kdb.ErrInvalidQuery)
	}

	cond, args := where(q)

	var total int
	if err := p.pool.QueryRow(
		ctx, `SELECT count(*) FROM "document" WHERE `+cond, args...,
	).Scan(&total); err != nil {
		return nil, 0, err
	}

	// field is one of known column names, checked by SortKey.
	order := `"` + field + `"`
	if desc {
		order += " DESC"
	}
	query := `SELECT ` + columns + ` FROM "document" WHERE ` + cond +
		` ORDER BY ` + order + `, "uuid"` +
		` OFFSET ` + strconv.Itoa(q.Offset)
	if 0 < q.Limit {
		query += ` LIMIT ` + strconv.Itoa(q.Limit)
	}

	rows, err := p.pool.Query(ctx, query, args...)
	if err != nil {
		return nil, 0, err
	}
	defer rows.Close()

	ret := []kdb.Document{}
	for rows.Next() {
		d, err := scan(rows)
		if err != nil {
			return nil, 0, err
		}
		ret = append(ret, d)
	}
	if err := rows.Err(); err != nil {
		return nil, 0, err
	}
	return ret, total, nil
}

func (p *pgDocuments) Update(ctx context.Context, doc kdb.Document) (kdb.Document, error) {
	updated, err := scan(p.pool.QueryRow(
		ctx,
		`UPDATE "document" SET "name" = $4, "body" = $5, "updated_at" = now()
		WHERE "kind" = $1 AND "owner" = $2 AND "uuid" = $3
		RETURNING `+columns,
		string(doc.Kind), doc.Owner, doc.UUID, doc.Name, jsonb(doc.Body),
	))
	if err != nil {
		return kdb.Document{}, missing(asConflict(err, doc), doc.Kind, doc.UUID)
	}
	return updated, nil
}

func (p *pgDocuments) Delete(ctx context.Context, kind kdb.Kind, owner string, uuid string) error {
	tx, err := p.pool.Begin(ctx)
	if err != nil {
		return err
	}
	defer tx.Rollback(ctx)

	tag, err := tx.Exec(
		ctx,
		`DELETE FROM "document" WHERE "kind" = $1 AND "owner" = $2 AND "uuid" = $3`,
		string(kind), owner, uuid,
	)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return fmt.Errorf("%w: %s %s", kdb.ErrMissing, kind, uuid)
	}
	if _, err := tx.Exec(
		ctx,
		`DELETE FROM "document" WHERE "owner" = $1 AND "parent" = $2`,
		owner, uuid,
	); err != nil {
		return err
	}
	return tx.Commit(ctx)
}

func (p *pgDocuments) Close() error {
	p.pool.Close()
	return nil
}
