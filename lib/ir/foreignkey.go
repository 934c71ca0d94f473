package ir

import (
	"fmt"
	"strings"
)

type ForeignKeyAction string

const (
	ForeignKeyActionNoAction   ForeignKeyAction = "NO_ACTION"
	ForeignKeyActionRestrict   ForeignKeyAction = "RESTRICT"
	ForeignKeyActionCascade    ForeignKeyAction = "CASCADE"
	ForeignKeyActionSetNull    ForeignKeyAction = "SET_NULL"
	ForeignKeyActionSetDefault ForeignKeyAction = "SET_DEFAULT"
)

// NewForeignKeyAction parses an action as written in dbxml. An empty string
// means the attribute was not given, which is reported as "" rather than
// NO_ACTION so documentation can omit it.
func NewForeignKeyAction(s string) (ForeignKeyAction, error) {
	if s == "" {
		return "", nil
	}
	fka := ForeignKeyAction(strings.ReplaceAll(strings.TrimSpace(s), " ", "_"))
	for _, known := range []ForeignKeyAction{
		ForeignKeyActionNoAction,
		ForeignKeyActionRestrict,
		ForeignKeyActionCascade,
		ForeignKeyActionSetNull,
		ForeignKeyActionSetDefault,
	} {
		if fka.Equals(known) {
			return known, nil
		}
	}
	return "", fmt.Errorf("invalid Foreign Key Action: '%s'", s)
}

func (fka ForeignKeyAction) Equals(other ForeignKeyAction) bool {
	return strings.EqualFold(string(fka), string(other))
}

// Sql returns the action as it is spelled in DDL, e.g. "SET NULL"
func (fka ForeignKeyAction) Sql() string {
	return strings.ReplaceAll(string(fka), "_", " ")
}

type ForeignKey struct {
	Columns        []string
	ForeignSchema  string
	ForeignTable   string
	ForeignColumns []string
	ConstraintName string
	OnUpdate       ForeignKeyAction
	OnDelete       ForeignKeyAction
}

func (self *ForeignKey) GetReferencedKey() KeyNames {
	cols := self.ForeignColumns
	if len(cols) == 0 {
		cols = self.Columns
	}
	return KeyNames{
		Schema:  self.ForeignSchema,
		Table:   self.ForeignTable,
		Columns: cols,
		KeyName: self.ConstraintName,
	}
}

func (self *ForeignKey) IdentityMatches(other *ForeignKey) bool {
	if self == nil || other == nil {
		return false
	}
	return strings.EqualFold(self.ConstraintName, other.ConstraintName)
}

func (self *ForeignKey) Validate(doc *Definition, schema *Schema, table *Table) []error {
	out := []error{}
	if self.ConstraintName == "" {
		out = append(out, fmt.Errorf("foreign key in table %s.%s must have a constraint name", schema.Name, table.Name))
	}
	local := KeyNames{Schema: schema.Name, Table: table.Name, Columns: self.Columns, KeyName: self.ConstraintName}
	if len(self.Columns) == 0 {
		out = append(out, fmt.Errorf("foreign key %s has no columns", local))
	}
	if self.ForeignTable == "" {
		out = append(out, fmt.Errorf("foreign key %s has no foreign table", local))
	}
	return out
}
