// Package database adapts pgx connection handles to teardown resources.
package database

import (
	"context"
	"os"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"gitlab.com/pala-software/teardown/pkg/teardown"
)

// Pool wraps a pgx connection pool as a releasable resource.
type Pool struct {
	*pgxpool.Pool
	released bool
}

func NewPool(pool *pgxpool.Pool) *Pool {
	return &Pool{Pool: pool}
}

func (pool *Pool) Release() error {
	pool.released = true
	pool.Pool.Close()
	return nil
}

func (pool *Pool) Released() bool {
	return pool.released
}

// Conn wraps a single pgx connection as a releasable resource. Released
// delegates to the connection's own IsClosed, so a connection closed
// directly by its owner is skipped by the release walk.
type Conn struct {
	*pgx.Conn
}

func NewConn(conn *pgx.Conn) *Conn {
	return &Conn{Conn: conn}
}

func (conn *Conn) Release() error {
	return conn.Conn.Close(context.Background())
}

func (conn *Conn) Released() bool {
	return conn.Conn.IsClosed()
}

type Database struct {
	ConnStr string
}

// Construct Database feature and read configuration from environment
// variables.
func DatabaseFromEnv() *Database {
	feature := &Database{}
	feature.ConnStr = os.Getenv("TEARDOWN_DB")
	return feature
}

func (feature *Database) Provider() any {
	return func() (self *Database, pool *Pool, err error) {
		self = feature

		raw, err := pgxpool.New(context.Background(), feature.ConnStr)
		if err != nil {
			return
		}

		pool = NewPool(raw)
		return
	}
}

func (feature *Database) Invoker() any {
	return func(registry *teardown.Registry, pool *Pool) error {
		return registry.Register(pool)
	}
}
