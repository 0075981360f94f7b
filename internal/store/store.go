// Package store provides the document store the rest of the system is built
// on: websafe keys with ancestor chains, schemaless entities, filtered and
// ordered queries, and atomic cross-group transactions. Two engines
// implement it, an in-memory one and a postgres-backed one.
package store

import (
	"context"
	"errors"
)

var (
	ErrNoSuchEntity = errors.New("store: no such entity")
	// ErrConcurrentTx is returned when a transaction loses a commit race and
	// the caller has to decide whether to retry.
	ErrConcurrentTx = errors.New("store: transaction aborted by concurrent write")
)

type Operator string

const (
	OpEqual     Operator = "="
	OpGreater   Operator = ">"
	OpGreaterEq Operator = ">="
	OpLess      Operator = "<"
	OpLessEq    Operator = "<="
)

// Inequality reports whether the operator is anything but plain equality.
func (o Operator) Inequality() bool { return o != OpEqual }

// Contains is a filter value marking a membership test against a []string
// property instead of a scalar comparison. Only valid with OpEqual.
type Contains string

type Filter struct {
	Field string
	Op    Operator
	Value any
}

type Order struct {
	Field      string
	Descending bool
	// Numeric tells engines that cannot sniff property types (postgres)
	// to compare the field numerically.
	Numeric bool
}

// Query is a compiled, validated plan: predicates are ANDed and results
// come back in Orders order.
type Query struct {
	Kind     string
	Ancestor *Key
	Filters  []Filter
	Orders   []Order
	Limit    int
}

type Reader interface {
	// Get returns ErrNoSuchEntity when the key does not resolve.
	Get(ctx context.Context, key *Key) (*Entity, error)
	// GetMulti returns a slice aligned with keys; missing entries are nil,
	// not errors.
	GetMulti(ctx context.Context, keys []*Key) ([]*Entity, error)
}

type Writer interface {
	Put(ctx context.Context, e *Entity) error
}

// Tx is the handle passed to a transaction body. Writes are buffered until
// the body returns without error, then committed atomically; reads observe
// the buffer.
type Tx interface {
	Reader
	Writer
}

type Store interface {
	Reader
	Writer
	// AllocateID reserves a fresh numeric id for a key of the given kind.
	AllocateID(ctx context.Context, kind string, parent *Key) (int64, error)
	Run(ctx context.Context, q Query) ([]*Entity, error)
	// RunInTransaction executes fn atomically across entity groups. Any
	// error from fn aborts with no partial writes. Unresolvable commit
	// contention surfaces as ErrConcurrentTx.
	RunInTransaction(ctx context.Context, fn func(tx Tx) error) error
	Close() error
}
