package ir

import (
	"fmt"
	"strings"
)

type ConstraintType string

const (
	ConstraintTypePrimaryKey ConstraintType = "PRIMARY KEY"
	ConstraintTypeCheck      ConstraintType = "CHECK"
	ConstraintTypeUnique     ConstraintType = "UNIQUE"
	ConstraintTypeForeign    ConstraintType = "FOREIGN KEY"
)

func NewConstraintType(s string) (ConstraintType, error) {
	ct := ConstraintType(strings.TrimSpace(s))
	for _, known := range []ConstraintType{
		ConstraintTypePrimaryKey,
		ConstraintTypeCheck,
		ConstraintTypeUnique,
		ConstraintTypeForeign,
	} {
		if ct.Equals(known) {
			return known, nil
		}
	}
	return "", fmt.Errorf("invalid constraint type '%s'", s)
}

func (self ConstraintType) Equals(other ConstraintType) bool {
	return strings.EqualFold(string(self), string(other))
}

type Constraint struct {
	Name          string
	Type          ConstraintType
	Definition    string
	ForeignSchema string
	ForeignTable  string
}

func (self *Constraint) Merge(overlay *Constraint) {
	if overlay == nil {
		return
	}
	self.Type = overlay.Type
	self.Definition = overlay.Definition
	self.ForeignSchema = overlay.ForeignSchema
	self.ForeignTable = overlay.ForeignTable
}

func (self *Constraint) Validate(_ *Definition, s *Schema, t *Table) []error {
	if self.Definition == "" {
		return []error{fmt.Errorf("constraint %s on %s.%s has no definition", self.Name, s.Name, t.Name)}
	}
	return nil
}
