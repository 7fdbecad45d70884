package document_test

import (
	"context"
	"errors"
	"testing"

	kdb "github.com/polyaxon/plx/pkg/db"
	"github.com/polyaxon/plx/pkg/db/postgres/document"
	"github.com/polyaxon/plx/pkg/db/postgres/pool/testenv"
	"github.com/polyaxon/plx/pkg/db/postgres/schema"
	"github.com/polyaxon/plx/pkg/utils/try"
)

func setup(ctx context.Context, t *testing.T) kdb.DocumentInterface {
	t.Helper()
	p := testenv.GetPool(ctx, t)
	if err := schema.New(p, schema.Repository()).Upgrade(ctx); err != nil {
		t.Fatal(err)
	}
	return document.New(p)
}

func TestDocuments(t *testing.T) {
	t.Run("create, get and conflict", func(t *testing.T) {
		ctx := context.Background()
		testee := setup(ctx, t)

		created := try.To(testee.Create(ctx, kdb.Document{
			Kind: kdb.Project, Owner: "acme", Name: "mnist", Body: []byte(`{"name": "mnist"}`),
		})).OrFatal(t)
		if len(created.UUID) != 32 || created.CreatedAt.IsZero() {
			t.Errorf("unexpected: %+v", created)
		}

		got := try.To(testee.Get(ctx, kdb.Project, "acme", created.UUID)).OrFatal(t)
		if got.Name != "mnist" || string(got.Body) != `{"name": "mnist"}` {
			t.Errorf("unmatch: (actual, expected) = (%+v, %+v)", got, created)
		}

		byName := try.To(testee.GetByName(ctx, kdb.Project, "acme", "", "mnist")).OrFatal(t)
		if byName.UUID != created.UUID {
			t.Errorf("unmatch: (actual, expected) = (%s, %s)", byName.UUID, created.UUID)
		}

		_, err := testee.Create(ctx, kdb.Document{Kind: kdb.Project, Owner: "acme", Name: "mnist", Body: []byte(`{}`)})
		if !errors.Is(err, kdb.ErrConflict) {
			t.Errorf("expected ErrConflict, but %v", err)
		}

		if _, err := testee.Get(ctx, kdb.Team, "acme", created.UUID); !errors.Is(err, kdb.ErrMissing) {
			t.Errorf("expected ErrMissing, but %v", err)
		}
	})

	t.Run("list", func(t *testing.T) {
		ctx := context.Background()
		testee := setup(ctx, t)

		for _, b := range []struct{ name, status string }{
			{"b", "running"}, {"a", "failed"}, {"c", "running"},
		} {
			try.To(testee.Create(ctx, kdb.Document{
				Kind: kdb.Run, Owner: "acme", Parent: "mnist", Name: b.name,
				Body: []byte(`{"status": "` + b.status + `", "n": 1}`),
			})).OrFatal(t)
		}

		docs, total := func() ([]kdb.Document, int) {
			docs, total, err := testee.List(ctx, kdb.Query{
				Kind: kdb.Run, Owner: "acme", Parent: "mnist",
				Fields: map[string]string{"status": "running"},
				Sort:   "-name",
			})
			if err != nil {
				t.Fatal(err)
			}
			return docs, total
		}()
		if total != 2 || len(docs) != 2 || docs[0].Name != "c" || docs[1].Name != "b" {
			t.Errorf("unexpected: total = %d, docs = %+v", total, docs)
		}

		_, total, err := testee.List(ctx, kdb.Query{
			Kind: kdb.Run, Owner: "acme", Fields: map[string]string{"n": "1"},
		})
		if err != nil {
			t.Fatal(err)
		}
		if total != 0 {
			t.Errorf("non-string fields should not match: %d", total)
		}

		docs, total, err = testee.List(ctx, kdb.Query{Kind: kdb.Run, Owner: "acme", Sort: "name", Offset: 1, Limit: 1})
		if err != nil {
			t.Fatal(err)
		}
		if total != 3 || len(docs) != 1 || docs[0].Name != "b" {
			t.Errorf("unexpected: total = %d, docs = %+v", total, docs)
		}
	})

	t.Run("update and delete", func(t *testing.T) {
		ctx := context.Background()
		testee := setup(ctx, t)

		run := try.To(testee.Create(ctx, kdb.Document{Kind: kdb.Run, Owner: "acme", Parent: "mnist", Body: []byte(`{}`)})).OrFatal(t)
		log := try.To(testee.Create(ctx, kdb.Document{Kind: kdb.Log, Owner: "acme", Parent: run.UUID, Name: "main", Body: []byte(`[]`)})).OrFatal(t)

		log.Body = []byte(`[{"value": "hello"}]`)
		updated := try.To(testee.Update(ctx, log)).OrFatal(t)
		if string(updated.Body) != `[{"value": "hello"}]` {
			t.Errorf("unexpected body: %s", updated.Body)
		}

		if err := testee.Delete(ctx, kdb.Run, "acme", run.UUID); err != nil {
			t.Fatal(err)
		}
		if _, err := testee.Get(ctx, kdb.Log, "acme", log.UUID); !errors.Is(err, kdb.ErrMissing) {
			t.Errorf("children should be deleted, but %v", err)
		}
		if err := testee.Delete(ctx, kdb.Run, "acme", run.UUID); !errors.Is(err, kdb.ErrMissing) {
			t.Errorf("expected ErrMissing, but %v", err)
		}
		if _, err := testee.Update(ctx, log); !errors.Is(err, kdb.ErrMissing) {
			t.Errorf("expected ErrMissing, but %v", err)
		}
	})
}
