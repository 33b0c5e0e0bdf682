package db

import (
	"fmt"
	"strings"
	"testing"

	"jobly/internal/domain"
)

func TestSQLForPartialUpdateMapsColumns(t *testing.T) {
	fields := []UpdateField{
		{Name: "firstName", Value: "Aliya"},
		{Name: "age", Value: 32},
	}

	set, values, err := SQLForPartialUpdate(fields, map[string]string{"firstName": "first_name"})
	if err != nil {
		t.Fatalf("expected no error, got %v", err)
	}
	if set != `"first_name"=$1, "age"=$2` {
		t.Fatalf("unexpected SET clause: %s", set)
	}
	if len(values) != 2 || values[0] != "Aliya" || values[1] != 32 {
		t.Fatalf("unexpected values: %v", values)
	}
}

func TestSQLForPartialUpdateEmptyInput(t *testing.T) {
	_, _, err := SQLForPartialUpdate(nil, nil)
	if err == nil {
		t.Fatalf("expected error on empty input")
	}
	if !domain.IsValidation(err) {
		t.Fatalf("expected validation error, got %v", err)
	}
}

func TestSQLForPartialUpdatePlaceholdersContiguous(t *testing.T) {
	fields := []UpdateField{
		{Name: "a", Value: 1},
		{Name: "b", Value: 2},
		{Name: "c", Value: 3},
		{Name: "d", Value: 4},
	}

	set, values, err := SQLForPartialUpdate(fields, nil)
	if err != nil {
		t.Fatalf("expected no error, got %v", err)
	}
	if len(values) != len(fields) {
		t.Fatalf("value count %d != field count %d", len(values), len(fields))
	}

	parts := strings.Split(set, ", ")
	if len(parts) != len(fields) {
		t.Fatalf("fragment count %d != field count %d", len(parts), len(fields))
	}
	for i, part := range parts {
		want := fmt.Sprintf("$%d", i+1)
		if !strings.HasSuffix(part, want) {
			t.Fatalf("fragment %d should bind %s, got %s", i, want, part)
		}
	}
}

func TestSQLForPartialUpdateUnmappedNameUsedAsIs(t *testing.T) {
	set, _, err := SQLForPartialUpdate([]UpdateField{{Name: "email", Value: "x@y.com"}}, map[string]string{"firstName": "first_name"})
	if err != nil {
		t.Fatalf("expected no error, got %v", err)
	}
	if set != `"email"=$1` {
		t.Fatalf("unexpected SET clause: %s", set)
	}
}
