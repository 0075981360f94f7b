package store

import (
	"context"
	"sort"
	"strings"
	"sync"
)

// Memory is the in-memory engine. Transactions take the store-wide lock, so
// they are serialized and commit contention cannot arise; that matches the
// contract that the store, not the caller, resolves contention.
type Memory struct {
	mu       sync.Mutex
	entities map[string]*Entity
	nextID   int64
}

func NewMemory() *Memory {
	return &Memory{entities: map[string]*Entity{}}
}

func (m *Memory) Get(ctx context.Context, key *Key) (*Entity, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.get(key)
}

func (m *Memory) get(key *Key) (*Entity, error) {
	e, ok := m.entities[key.Encode()]
	if !ok {
		return nil, ErrNoSuchEntity
	}
	return e.clone(), nil
}

func (m *Memory) GetMulti(ctx context.Context, keys []*Key) ([]*Entity, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	out := make([]*Entity, len(keys))
	for i, key := range keys {
		if e, ok := m.entities[key.Encode()]; ok {
			out[i] = e.clone()
		}
	}
	return out, nil
}

func (m *Memory) Put(ctx context.Context, e *Entity) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.entities[e.Key.Encode()] = e.clone()
	return nil
}

func (m *Memory) AllocateID(ctx context.Context, kind string, parent *Key) (int64, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.nextID++
	return m.nextID, nil
}

func (m *Memory) Run(ctx context.Context, q Query) ([]*Entity, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	var out []*Entity
	for _, e := range m.entities {
		if e.Key.Kind != q.Kind {
			continue
		}
		if q.Ancestor != nil && !hasAncestor(e.Key, q.Ancestor) {
			continue
		}
		if !matchesAll(e, q.Filters) {
			continue
		}
		out = append(out, e.clone())
	}
	sortEntities(out, q.Orders)
	if q.Limit > 0 && len(out) > q.Limit {
		out = out[:q.Limit]
	}
	return out, nil
}

func (m *Memory) RunInTransaction(ctx context.Context, fn func(tx Tx) error) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	tx := &memoryTx{store: m, writes: map[string]*Entity{}}
	if err := fn(tx); err != nil {
		return err
	}
	for k, e := range tx.writes {
		m.entities[k] = e
	}
	return nil
}

func (m *Memory) Close() error { return nil }

// memoryTx buffers writes; reads see the buffer first so a transaction
// observes its own pending state.
type memoryTx struct {
	store  *Memory
	writes map[string]*Entity
}

func (t *memoryTx) Get(ctx context.Context, key *Key) (*Entity, error) {
	if e, ok := t.writes[key.Encode()]; ok {
		return e.clone(), nil
	}
	return t.store.get(key)
}

func (t *memoryTx) GetMulti(ctx context.Context, keys []*Key) ([]*Entity, error) {
	out := make([]*Entity, len(keys))
	for i, key := range keys {
		if e, err := t.Get(ctx, key); err == nil {
			out[i] = e
		}
	}
	return out, nil
}

func (t *memoryTx) Put(ctx context.Context, e *Entity) error {
	t.writes[e.Key.Encode()] = e.clone()
	return nil
}

func hasAncestor(key, ancestor *Key) bool {
	for cur := key.Parent; cur != nil; cur = cur.Parent {
		if cur.Equal(ancestor) {
			return true
		}
	}
	return false
}

func matchesAll(e *Entity, filters []Filter) bool {
	for _, f := range filters {
		if !matches(e, f) {
			return false
		}
	}
	return true
}

func matches(e *Entity, f Filter) bool {
	if member, ok := f.Value.(Contains); ok {
		for _, s := range e.Strings(f.Field) {
			if s == string(member) {
				return true
			}
		}
		return false
	}

	cmp, ok := compare(e.Props[f.Field], f.Value)
	if !ok {
		return false
	}
	switch f.Op {
	case OpEqual:
		return cmp == 0
	case OpGreater:
		return cmp > 0
	case OpGreaterEq:
		return cmp >= 0
	case OpLess:
		return cmp < 0
	case OpLessEq:
		return cmp <= 0
	}
	return false
}

// compare orders two property values of the same family. The second value
// comes from a compiled filter, so it is already a string or an int64.
func compare(a, b any) (int, bool) {
	switch want := b.(type) {
	case string:
		got, ok := a.(string)
		if !ok {
			return 0, false
		}
		return strings.Compare(got, want), true
	case int64:
		got, ok := toInt64(a)
		if !ok {
			return 0, false
		}
		switch {
		case got < want:
			return -1, true
		case got > want:
			return 1, true
		}
		return 0, true
	}
	return 0, false
}

func toInt64(v any) (int64, bool) {
	switch n := v.(type) {
	case int:
		return int64(n), true
	case int64:
		return n, true
	case float64:
		return int64(n), true
	}
	return 0, false
}

func sortEntities(entities []*Entity, orders []Order) {
	if len(orders) == 0 {
		return
	}
	sort.SliceStable(entities, func(i, j int) bool {
		for _, o := range orders {
			cmp := compareProps(entities[i].Props[o.Field], entities[j].Props[o.Field])
			if cmp == 0 {
				continue
			}
			if o.Descending {
				return cmp > 0
			}
			return cmp < 0
		}
		return false
	})
}

func compareProps(a, b any) int {
	if ai, ok := toInt64(a); ok {
		if bi, ok := toInt64(b); ok {
			switch {
			case ai < bi:
				return -1
			case ai > bi:
				return 1
			}
			return 0
		}
	}
	as, _ := a.(string)
	bs, _ := b.(string)
	return strings.Compare(as, bs)
}
