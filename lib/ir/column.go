package ir

import (
	"fmt"
	"strings"

	"github.com/dbsteward/tablespec/lib/util"
)

type Column struct {
	Name            string
	Type            string
	Nullable        bool
	Default         string
	Description     string
	Unique          bool
	Check           string
	ForeignSchema   string
	ForeignTable    string
	ForeignColumn   string
	ForeignKeyName  string
	ForeignOnUpdate ForeignKeyAction
	ForeignOnDelete ForeignKeyAction
}

func (col *Column) HasForeignKey() bool {
	return col.ForeignTable != ""
}

// GetReferencedKey returns the names of the key a column level foreign key
// points at. When no foreign column is given, it is assumed to share the
// name of this column.
func (col *Column) GetReferencedKey() KeyNames {
	return KeyNames{
		Schema:  col.ForeignSchema,
		Table:   col.ForeignTable,
		Columns: []string{util.CoalesceStr(col.ForeignColumn, col.Name)},
		KeyName: col.ForeignKeyName,
	}
}

func (col *Column) Merge(overlay *Column) {
	col.Type = util.CoalesceStr(overlay.Type, col.Type)
	col.Nullable = overlay.Nullable
	col.Default = overlay.Default
	col.Description = util.CoalesceStr(overlay.Description, col.Description)
	col.Unique = overlay.Unique
	col.Check = overlay.Check
	col.ForeignSchema = overlay.ForeignSchema
	col.ForeignTable = overlay.ForeignTable
	col.ForeignColumn = overlay.ForeignColumn
	col.ForeignKeyName = overlay.ForeignKeyName
	col.ForeignOnUpdate = overlay.ForeignOnUpdate
	col.ForeignOnDelete = overlay.ForeignOnDelete
}

func (col *Column) Validate(_ *Definition, s *Schema, t *Table) []error {
	var errs []error
	if col.Name == "" {
		errs = append(errs, fmt.Errorf("column in %s.%s has empty name", s.Name, t.Name))
	}
	if col.Type == "" && !col.HasForeignKey() {
		errs = append(errs, fmt.Errorf("column %s.%s.%s has no type", s.Name, t.Name, col.Name))
	}
	return errs
}

func (col *Column) IdentityMatches(other *Column) bool {
	if col == nil || other == nil {
		return false
	}
	return strings.EqualFold(col.Name, other.Name)
}
