package ir

import (
	"fmt"
	"strings"

	"github.com/dbsteward/tablespec/lib/util"
)

type Table struct {
	Name           string
	Description    string
	PrimaryKey     []string
	PrimaryKeyName string
	Columns        []*Column
	ForeignKeys    []*ForeignKey
	Indexes        []*Index
	Constraints    []*Constraint
}

func (self *Table) IdentityMatches(other *Table) bool {
	if self == nil || other == nil {
		return false
	}
	return strings.EqualFold(self.Name, other.Name)
}

func (self *Table) TryGetColumnNamed(name string) *Column {
	if self == nil {
		return nil
	}
	for _, col := range self.Columns {
		if strings.EqualFold(col.Name, name) {
			return col
		}
	}
	return nil
}

func (self *Table) AddColumn(col *Column) {
	self.Columns = append(self.Columns, col)
}

func (self *Table) IsPrimaryKeyColumn(name string) bool {
	return util.IStrsContains(self.PrimaryKey, name)
}

func (self *Table) TryGetIndexNamed(name string) *Index {
	if self == nil {
		return nil
	}
	for _, idx := range self.Indexes {
		if strings.EqualFold(idx.Name, name) {
			return idx
		}
	}
	return nil
}

func (self *Table) TryGetConstraintNamed(name string) *Constraint {
	if self == nil {
		return nil
	}
	for _, c := range self.Constraints {
		if strings.EqualFold(c.Name, name) {
			return c
		}
	}
	return nil
}

func (self *Table) TryGetForeignKeyMatching(target *ForeignKey) *ForeignKey {
	if self == nil {
		return nil
	}
	for _, fk := range self.ForeignKeys {
		if fk.IdentityMatches(target) {
			return fk
		}
	}
	return nil
}

// HasForeignKeyOn returns true if any column or table level foreign key
// includes the named column
func (self *Table) HasForeignKeyOn(column string) bool {
	if col := self.TryGetColumnNamed(column); col != nil && col.HasForeignKey() {
		return true
	}
	for _, fk := range self.ForeignKeys {
		if util.IStrsContains(fk.Columns, column) {
			return true
		}
	}
	return false
}

func (self *Table) Merge(overlay *Table) {
	if overlay == nil {
		return
	}
	self.Description = util.CoalesceStr(overlay.Description, self.Description)
	if len(overlay.PrimaryKey) > 0 {
		self.PrimaryKey = overlay.PrimaryKey
		self.PrimaryKeyName = overlay.PrimaryKeyName
	}

	for _, overlayCol := range overlay.Columns {
		if baseCol := self.TryGetColumnNamed(overlayCol.Name); baseCol != nil {
			baseCol.Merge(overlayCol)
		} else {
			self.AddColumn(overlayCol)
		}
	}
	for _, overlayFk := range overlay.ForeignKeys {
		if baseFk := self.TryGetForeignKeyMatching(overlayFk); baseFk != nil {
			*baseFk = *overlayFk
		} else {
			self.ForeignKeys = append(self.ForeignKeys, overlayFk)
		}
	}
	for _, overlayIdx := range overlay.Indexes {
		if baseIdx := self.TryGetIndexNamed(overlayIdx.Name); baseIdx != nil {
			baseIdx.Merge(overlayIdx)
		} else {
			self.Indexes = append(self.Indexes, overlayIdx)
		}
	}
	for _, overlayCons := range overlay.Constraints {
		if baseCons := self.TryGetConstraintNamed(overlayCons.Name); baseCons != nil {
			baseCons.Merge(overlayCons)
		} else {
			self.Constraints = append(self.Constraints, overlayCons)
		}
	}
}

func (self *Table) Validate(doc *Definition, schema *Schema) []error {
	out := []error{}
	if self.Name == "" {
		out = append(out, fmt.Errorf("table in schema %s has empty name", schema.Name))
	}
	if len(self.Columns) == 0 {
		out = append(out, fmt.Errorf("table %s.%s has no columns", schema.Name, self.Name))
	}
	for i, col := range self.Columns {
		out = append(out, col.Validate(doc, schema, self)...)
		for _, other := range self.Columns[i+1:] {
			if col.IdentityMatches(other) {
				out = append(out, fmt.Errorf("table %s.%s has two columns named %q", schema.Name, self.Name, col.Name))
			}
		}
	}
	for _, pk := range self.PrimaryKey {
		if self.TryGetColumnNamed(pk) == nil {
			out = append(out, fmt.Errorf("primary key of %s.%s names unknown column %q", schema.Name, self.Name, pk))
		}
	}
	for _, fk := range self.ForeignKeys {
		out = append(out, fk.Validate(doc, schema, self)...)
	}
	for _, idx := range self.Indexes {
		out = append(out, idx.Validate(doc, schema, self)...)
	}
	for _, c := range self.Constraints {
		out = append(out, c.Validate(doc, schema, self)...)
	}
	return out
}
