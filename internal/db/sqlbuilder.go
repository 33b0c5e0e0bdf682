package db

import (
	"fmt"
	"strings"

	"jobly/internal/domain"
)

// UpdateField is one caller-facing field to mutate, paired with its new
// value. Order matters: placeholder numbers follow slice positions.
type UpdateField struct {
	Name  string
	Value any
}

// SQLForPartialUpdate converts a sparse field list into a SET clause plus the
// matching ordered argument list:
//
//	[{firstName Aliya} {age 32}] => `"first_name"=$1, "age"=$2`, [Aliya 32]
//
// colNames translates caller-facing names into column names; unmapped names
// are used as-is. Placeholders are contiguous starting at $1 so the values
// slice binds positionally. An empty field list is a validation error, never
// an empty clause.
func SQLForPartialUpdate(fields []UpdateField, colNames map[string]string) (string, []any, error) {
	if len(fields) == 0 {
		return "", nil, domain.ValidationError{Msg: "no data"}
	}

	cols := make([]string, 0, len(fields))
	values := make([]any, 0, len(fields))
	for i, f := range fields {
		col := colNames[f.Name]
		if col == "" {
			col = f.Name
		}
		cols = append(cols, fmt.Sprintf(`"%s"=$%d`, col, i+1))
		values = append(values, f.Value)
	}

	return strings.Join(cols, ", "), values, nil
}
