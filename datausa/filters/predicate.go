package filters

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/uptrace/bun"
)

type Kind int

const (
	KindTrue Kind = iota
	KindPrefix
	KindEqual
)

func (k Kind) String() string {
	switch k {
	case KindTrue:
		return "true"
	case KindPrefix:
		return "prefix"
	case KindEqual:
		return "equal"
	}
	return fmt.Sprintf("Kind(%d)", int(k))
}

// Predicate is a single condition over one column. The zero value matches
// every row.
type Predicate struct {
	Kind   Kind
	Column string
	Value  any
}

// True returns the predicate that matches every row.
func True() Predicate {
	return Predicate{Kind: KindTrue}
}

// HasPrefix matches string values of column starting with prefix.
func HasPrefix(column, prefix string) Predicate {
	return Predicate{Kind: KindPrefix, Column: column, Value: prefix}
}

// Equal matches values of column equal to value.
func Equal(column string, value int) Predicate {
	return Predicate{Kind: KindEqual, Column: column, Value: value}
}

func (p Predicate) IsTrue() bool {
	return p.Kind == KindTrue
}

// Apply adds the predicate to the WHERE clause of q.
func (p Predicate) Apply(q *bun.SelectQuery) *bun.SelectQuery {
	switch p.Kind {
	case KindPrefix:
		return q.Where("? LIKE ?", bun.Ident(p.Column), escapeLike(p.Value.(string))+"%")
	case KindEqual:
		return q.Where("? = ?", bun.Ident(p.Column), p.Value)
	}
	return q
}

// Match evaluates the predicate against a value of its column.
func (p Predicate) Match(v any) bool {
	switch p.Kind {
	case KindTrue:
		return true
	case KindPrefix:
		s, ok := asString(v)
		return ok && strings.HasPrefix(s, p.Value.(string))
	case KindEqual:
		n, ok := asInt(v)
		return ok && n == int64(p.Value.(int))
	}
	return false
}

// MatchRow evaluates the predicate against a row keyed by column name.
// A row without the column only matches the true predicate.
func (p Predicate) MatchRow(row map[string]any) bool {
	if p.IsTrue() {
		return true
	}
	v, ok := row[p.Column]
	if !ok {
		return false
	}
	return p.Match(v)
}

func (p Predicate) String() string {
	switch p.Kind {
	case KindPrefix:
		return fmt.Sprintf("%s LIKE '%s%%'", p.Column, p.Value)
	case KindEqual:
		return fmt.Sprintf("%s = %v", p.Column, p.Value)
	}
	return "TRUE"
}

// MatchAll reports whether row satisfies every predicate.
func MatchAll(preds []Predicate, row map[string]any) bool {
	for _, p := range preds {
		if !p.MatchRow(row) {
			return false
		}
	}
	return true
}

// ApplyAll adds every predicate to q.
func ApplyAll(q *bun.SelectQuery, preds []Predicate) *bun.SelectQuery {
	for _, p := range preds {
		q = p.Apply(q)
	}
	return q
}

var likeEscaper = strings.NewReplacer(`\`, `\\`, `%`, `\%`, `_`, `\_`)

func escapeLike(s string) string {
	return likeEscaper.Replace(s)
}

func asString(v any) (string, bool) {
	switch s := v.(type) {
	case string:
		return s, true
	case []byte:
		return string(s), true
	case fmt.Stringer:
		return s.String(), true
	}
	return "", false
}

func asInt(v any) (int64, bool) {
	switch n := v.(type) {
	case int:
		return int64(n), true
	case int8:
		return int64(n), true
	case int16:
		return int64(n), true
	case int32:
		return int64(n), true
	case int64:
		return n, true
	case uint8:
		return int64(n), true
	case uint16:
		return int64(n), true
	case uint32:
		return int64(n), true
	case float64:
		if n != float64(int64(n)) {
			return 0, false
		}
		return int64(n), true
	case string:
		i, err := strconv.ParseInt(n, 10, 64)
		return i, err == nil
	}
	return 0, false
}
