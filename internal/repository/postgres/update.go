package postgres

import (
	"fmt"
	"strings"
)

// setBuilder assembles the SET clause of a partial UPDATE with positional
// placeholders. Column names are always literals from this package.
type setBuilder struct {
	columns []string
	args    []any
}

func (b *setBuilder) add(column string, value any) {
	b.args = append(b.args, value)
	b.columns = append(b.columns, fmt.Sprintf("%s = $%d", column, len(b.args)))
}

func (b *setBuilder) empty() bool {
	return len(b.columns) == 0
}

// build returns "UPDATE table SET ..., updated_at = NOW() WHERE <where>" with
// the where arguments numbered after the SET arguments.
func (b *setBuilder) build(table, returning string, where []string, whereArgs ...any) (string, []any) {
	args := append([]any{}, b.args...)
	conds := make([]string, len(where))
	for i, column := range where {
		args = append(args, whereArgs[i])
		conds[i] = fmt.Sprintf("%s = $%d", column, len(args))
	}

	set := append(append([]string{}, b.columns...), "updated_at = NOW()")
	query := fmt.Sprintf("UPDATE %s SET %s WHERE %s RETURNING %s",
		table, strings.Join(set, ", "), strings.Join(conds, " AND "), returning)
	return query, args
}
