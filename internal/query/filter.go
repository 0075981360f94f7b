// Package query compiles user-supplied filter clauses into validated store
// query plans. Field and operator allow-lists are immutable configuration
// handed to the compiler at construction.
package query

import (
	"fmt"
	"strconv"

	"github.com/confcentral/confcentral/internal/domain"
	"github.com/confcentral/confcentral/internal/store"
)

// Clause is one external filter triple, all parts textual.
type Clause struct {
	Field    string `json:"field"`
	Operator string `json:"operator"`
	Value    string `json:"value"`
}

// FieldKind drives value coercion and ordering for a filterable field.
type FieldKind int

const (
	// KindString compares the raw string value.
	KindString FieldKind = iota
	// KindInt coerces the value to an integer.
	KindInt
	// KindTimeOfDay coerces an HH:MM value to minutes since midnight.
	KindTimeOfDay
	// KindMember tests membership in a string-list property; only equality
	// is supported.
	KindMember
)

type FieldSpec struct {
	Name string
	Kind FieldKind
}

// Config maps external field tokens to internal fields for one entity kind.
type Config struct {
	Kind      string
	NameField string
	Fields    map[string]FieldSpec
}

var operators = map[string]store.Operator{
	"EQ":   store.OpEqual,
	"GT":   store.OpGreater,
	"GTEQ": store.OpGreaterEq,
	"LT":   store.OpLess,
	"LTEQ": store.OpLessEq,
}

type Compiler struct {
	cfg Config
}

func NewCompiler(cfg Config) *Compiler {
	return &Compiler{cfg: cfg}
}

// Compile validates and coerces the clauses into an ordered plan. At most
// one field may carry inequality operators, a storage-engine restriction
// preserved for query compatibility; results order by that field first
// (ascending), then by the entity's name field.
func (c *Compiler) Compile(clauses []Clause) (store.Query, error) {
	q := store.Query{Kind: c.cfg.Kind}

	var inequalityField string
	var inequalityNumeric bool
	for _, clause := range clauses {
		spec, ok := c.cfg.Fields[clause.Field]
		if !ok {
			return store.Query{}, fmt.Errorf("%w: field %q", domain.ErrInvalidFilter, clause.Field)
		}
		op, ok := operators[clause.Operator]
		if !ok {
			return store.Query{}, fmt.Errorf("%w: operator %q", domain.ErrInvalidFilter, clause.Operator)
		}

		value, err := coerce(spec, op, clause.Value)
		if err != nil {
			return store.Query{}, err
		}

		if op.Inequality() {
			if inequalityField != "" && inequalityField != spec.Name {
				return store.Query{}, fmt.Errorf("%w: %s and %s",
					domain.ErrMultipleInequalityFilters, inequalityField, spec.Name)
			}
			inequalityField = spec.Name
			inequalityNumeric = spec.Kind == KindInt || spec.Kind == KindTimeOfDay
		}

		q.Filters = append(q.Filters, store.Filter{Field: spec.Name, Op: op, Value: value})
	}

	if inequalityField != "" {
		q.Orders = append(q.Orders, store.Order{Field: inequalityField, Numeric: inequalityNumeric})
	}
	q.Orders = append(q.Orders, store.Order{Field: c.cfg.NameField})
	return q, nil
}

func coerce(spec FieldSpec, op store.Operator, value string) (any, error) {
	switch spec.Kind {
	case KindInt:
		n, err := strconv.ParseInt(value, 10, 64)
		if err != nil {
			return nil, fmt.Errorf("%w: %q is not a number", domain.ErrInvalidFilter, value)
		}
		return n, nil
	case KindTimeOfDay:
		t, err := domain.ParseTimeOfDay(value)
		if err != nil {
			return nil, fmt.Errorf("%w: %q is not a HH:MM time", domain.ErrInvalidFilter, value)
		}
		return int64(t), nil
	case KindMember:
		if op.Inequality() {
			return nil, fmt.Errorf("%w: field only supports EQ", domain.ErrInvalidFilter)
		}
		return store.Contains(value), nil
	default:
		return value, nil
	}
}

// ConferenceFilters is the conference query allow-list.
func ConferenceFilters() Config {
	return Config{
		Kind:      "Conference",
		NameField: "name",
		Fields: map[string]FieldSpec{
			"CITY":          {Name: "city", Kind: KindString},
			"TOPIC":         {Name: "topics", Kind: KindMember},
			"MONTH":         {Name: "month", Kind: KindInt},
			"MAX_ATTENDEES": {Name: "maxAttendees", Kind: KindInt},
		},
	}
}

// SessionFilters is the session query allow-list.
func SessionFilters() Config {
	return Config{
		Kind:      "Session",
		NameField: "name",
		Fields: map[string]FieldSpec{
			"TYPE": {Name: "typeOfSession", Kind: KindString},
			"TIME": {Name: "startTime", Kind: KindTimeOfDay},
		},
	}
}
