package store

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/lib/pq"
	"github.com/wb-go/wbf/dbpg"
	"github.com/wb-go/wbf/retry"
)

// Postgres stores entities as jsonb documents in a single table. Reads
// inside a transaction lock their rows, and the transaction itself runs
// serializable: row locks cannot cover an entity that has no row yet, so
// conflicting first writes to the same key must surface as ErrConcurrentTx
// rather than silently overwriting each other.
type Postgres struct {
	db       *dbpg.DB
	strategy retry.Strategy
}

func NewPostgres(db *dbpg.DB) *Postgres {
	return &Postgres{
		db: db,
		strategy: retry.Strategy{
			Attempts: 3,
			Delay:    500 * time.Millisecond,
			Backoff:  2,
		},
	}
}

func (p *Postgres) Get(ctx context.Context, key *Key) (*Entity, error) {
	query := `SELECT props FROM entities WHERE key = $1`
	row, err := p.db.QueryRowWithRetry(ctx, p.strategy, query, key.Encode())
	if err != nil {
		return nil, fmt.Errorf("get entity: %w", err)
	}
	return scanEntity(key, row.Scan)
}

func (p *Postgres) GetMulti(ctx context.Context, keys []*Key) ([]*Entity, error) {
	encoded := make([]string, len(keys))
	byKey := make(map[string]int, len(keys))
	for i, key := range keys {
		encoded[i] = key.Encode()
		byKey[encoded[i]] = i
	}

	query := `SELECT key, props FROM entities WHERE key = ANY($1)`
	rows, err := p.db.QueryWithRetry(ctx, p.strategy, query, pq.Array(encoded))
	if err != nil {
		return nil, fmt.Errorf("get multi: %w", err)
	}
	defer rows.Close()

	out := make([]*Entity, len(keys))
	for rows.Next() {
		var k string
		var raw []byte
		if err := rows.Scan(&k, &raw); err != nil {
			return nil, fmt.Errorf("scan entity: %w", err)
		}
		i, ok := byKey[k]
		if !ok {
			continue
		}
		e, err := decodeEntity(keys[i], raw)
		if err != nil {
			return nil, err
		}
		out[i] = e
	}
	return out, rows.Err()
}

func (p *Postgres) Put(ctx context.Context, e *Entity) error {
	query, args, err := upsertEntity(e)
	if err != nil {
		return err
	}
	if _, err := p.db.ExecWithRetry(ctx, p.strategy, query, args...); err != nil {
		return fmt.Errorf("put entity: %w", err)
	}
	return nil
}

func (p *Postgres) AllocateID(ctx context.Context, kind string, parent *Key) (int64, error) {
	row, err := p.db.QueryRowWithRetry(ctx, p.strategy, `SELECT nextval('entity_ids')`)
	if err != nil {
		return 0, fmt.Errorf("allocate id: %w", err)
	}
	var id int64
	if err := row.Scan(&id); err != nil {
		return 0, fmt.Errorf("allocate id: %w", err)
	}
	return id, nil
}

func (p *Postgres) Run(ctx context.Context, q Query) ([]*Entity, error) {
	query, args := compileQuery(q)
	rows, err := p.db.QueryWithRetry(ctx, p.strategy, query, args...)
	if err != nil {
		return nil, fmt.Errorf("run query: %w", err)
	}
	defer rows.Close()

	var out []*Entity
	for rows.Next() {
		var k string
		var raw []byte
		if err := rows.Scan(&k, &raw); err != nil {
			return nil, fmt.Errorf("scan entity: %w", err)
		}
		key, err := DecodeKey(k)
		if err != nil {
			return nil, err
		}
		e, err := decodeEntity(key, raw)
		if err != nil {
			return nil, err
		}
		out = append(out, e)
	}
	return out, rows.Err()
}

func (p *Postgres) RunInTransaction(ctx context.Context, fn func(tx Tx) error) error {
	sqlTx, err := p.db.BeginTx(ctx, &sql.TxOptions{Isolation: sql.LevelSerializable})
	if err != nil {
		return fmt.Errorf("begin tx: %w", err)
	}
	defer sqlTx.Rollback()

	tx := &postgresTx{tx: sqlTx, writes: map[string]*Entity{}}
	if err := fn(tx); err != nil {
		return err
	}
	if err := tx.flush(ctx); err != nil {
		return mapTxError(err)
	}
	if err := sqlTx.Commit(); err != nil {
		return mapTxError(err)
	}
	return nil
}

func (p *Postgres) Close() error {
	return p.db.Master.Close()
}

type postgresTx struct {
	tx     *sql.Tx
	writes map[string]*Entity
	order  []string
}

func (t *postgresTx) Get(ctx context.Context, key *Key) (*Entity, error) {
	if e, ok := t.writes[key.Encode()]; ok {
		return e.clone(), nil
	}
	row := t.tx.QueryRowContext(ctx,
		`SELECT props FROM entities WHERE key = $1 FOR UPDATE`, key.Encode())
	return scanEntity(key, row.Scan)
}

func (t *postgresTx) GetMulti(ctx context.Context, keys []*Key) ([]*Entity, error) {
	out := make([]*Entity, len(keys))
	for i, key := range keys {
		e, err := t.Get(ctx, key)
		if err != nil {
			if errors.Is(err, ErrNoSuchEntity) {
				continue
			}
			return nil, err
		}
		out[i] = e
	}
	return out, nil
}

func (t *postgresTx) Put(ctx context.Context, e *Entity) error {
	k := e.Key.Encode()
	if _, ok := t.writes[k]; !ok {
		t.order = append(t.order, k)
	}
	t.writes[k] = e.clone()
	return nil
}

func (t *postgresTx) flush(ctx context.Context) error {
	for _, k := range t.order {
		query, args, err := upsertEntity(t.writes[k])
		if err != nil {
			return err
		}
		if _, err := t.tx.ExecContext(ctx, query, args...); err != nil {
			return err
		}
	}
	return nil
}

func mapTxError(err error) error {
	var pgErr *pq.Error
	if errors.As(err, &pgErr) {
		// serialization_failure / deadlock_detected
		if pgErr.Code == "40001" || pgErr.Code == "40P01" {
			return ErrConcurrentTx
		}
	}
	return fmt.Errorf("commit tx: %w", err)
}

func scanEntity(key *Key, scan func(...any) error) (*Entity, error) {
	var raw []byte
	if err := scan(&raw); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, ErrNoSuchEntity
		}
		return nil, fmt.Errorf("scan entity: %w", err)
	}
	return decodeEntity(key, raw)
}

func decodeEntity(key *Key, raw []byte) (*Entity, error) {
	var props map[string]any
	if err := json.Unmarshal(raw, &props); err != nil {
		return nil, fmt.Errorf("decode entity props: %w", err)
	}
	return &Entity{Key: key, Props: props}, nil
}

func upsertEntity(e *Entity) (string, []any, error) {
	raw, err := json.Marshal(e.Props)
	if err != nil {
		return "", nil, fmt.Errorf("encode entity props: %w", err)
	}
	var parent string
	if e.Key.Parent != nil {
		parent = e.Key.Parent.Encode()
	}
	query := `INSERT INTO entities (key, kind, parent, props)
			  VALUES ($1, $2, $3, $4)
			  ON CONFLICT (key) DO UPDATE SET props = EXCLUDED.props`
	return query, []any{e.Key.Encode(), e.Key.Kind, parent, raw}, nil
}

// compileQuery renders a plan as SQL over the jsonb props column. Field
// names come from compiled plans, never raw user input.
func compileQuery(q Query) (string, []any) {
	var (
		sb   strings.Builder
		args []any
	)
	sb.WriteString(`SELECT key, props FROM entities WHERE kind = `)
	args = append(args, q.Kind)
	fmt.Fprintf(&sb, "$%d", len(args))

	if q.Ancestor != nil {
		args = append(args, q.Ancestor.Encode())
		fmt.Fprintf(&sb, " AND parent = $%d", len(args))
	}
	for _, f := range q.Filters {
		switch v := f.Value.(type) {
		case Contains:
			args = append(args, string(v))
			fmt.Fprintf(&sb, " AND props->'%s' ? $%d", f.Field, len(args))
		case string:
			args = append(args, v)
			fmt.Fprintf(&sb, " AND props->>'%s' %s $%d", f.Field, f.Op, len(args))
		default:
			n, _ := toInt64(v)
			args = append(args, n)
			fmt.Fprintf(&sb, " AND (props->>'%s')::bigint %s $%d", f.Field, f.Op, len(args))
		}
	}
	if len(q.Orders) > 0 {
		sb.WriteString(" ORDER BY ")
		for i, o := range q.Orders {
			if i > 0 {
				sb.WriteString(", ")
			}
			if o.Numeric {
				fmt.Fprintf(&sb, "(props->>'%s')::bigint", o.Field)
			} else {
				fmt.Fprintf(&sb, "props->>'%s'", o.Field)
			}
			if o.Descending {
				sb.WriteString(" DESC")
			}
		}
	}
	if q.Limit > 0 {
		fmt.Fprintf(&sb, " LIMIT %d", q.Limit)
	}
	return sb.String(), args
}
