package postgres

import (
	"context"

	kdb "github.com/polyaxon/plx/pkg/db"
	"github.com/polyaxon/plx/pkg/db/postgres/document"
	"github.com/polyaxon/plx/pkg/db/postgres/pool"
	"github.com/polyaxon/plx/pkg/db/postgres/schema"
)

type Config struct {
	// upgrade the schema to the latest on connection.
	Upgrade bool
}

type Option func(*Config) *Config

func WithoutUpgrade() Option {
	return func(c *Config) *Config {
		c.Upgrade = false
		return c
	}
}

// New connects to the database at url and returns the document store on it.
//
// Unless WithoutUpgrade is given, the schema is upgraded before returning.
func New(ctx context.Context, url string, options ...Option) (kdb.DocumentInterface, error) {
	c := Config{Upgrade: true}
	for _, opt := range options {
		c = *opt(&c)
	}

	p, err := pool.Connect(ctx, url)
	if err != nil {
		return nil, err
	}
	if c.Upgrade {
		if err := schema.New(p, schema.Repository()).Upgrade(ctx); err != nil {
			p.Close()
			return nil, err
		}
	}
	return document.New(p), nil
}
