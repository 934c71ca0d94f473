package ir

import (
	"fmt"
	"strings"
)

type Schema struct {
	Name        string
	Description string
	Tables      []*Table
	Views       []*View
}

func (self *Schema) IdentityMatches(other *Schema) bool {
	if self == nil || other == nil {
		return false
	}
	return strings.EqualFold(self.Name, other.Name)
}

func (self *Schema) TryGetTableNamed(name string) *Table {
	if self == nil {
		return nil
	}
	for _, table := range self.Tables {
		if strings.EqualFold(table.Name, name) {
			return table
		}
	}
	return nil
}

func (self *Schema) AddTable(table *Table) {
	self.Tables = append(self.Tables, table)
}

func (self *Schema) TryGetViewNamed(name string) *View {
	if self == nil {
		return nil
	}
	for _, view := range self.Views {
		if strings.EqualFold(view.Name, name) {
			return view
		}
	}
	return nil
}

func (self *Schema) AddView(view *View) {
	self.Views = append(self.Views, view)
}

func (self *Schema) Merge(overlay *Schema) {
	if overlay == nil {
		return
	}
	if overlay.Description != "" {
		self.Description = overlay.Description
	}
	for _, overlayTable := range overlay.Tables {
		if baseTable := self.TryGetTableNamed(overlayTable.Name); baseTable != nil {
			baseTable.Merge(overlayTable)
		} else {
			self.AddTable(overlayTable)
		}
	}
	for _, overlayView := range overlay.Views {
		if baseView := self.TryGetViewNamed(overlayView.Name); baseView != nil {
			baseView.Merge(overlayView)
		} else {
			self.AddView(overlayView)
		}
	}
}

func (self *Schema) Validate(doc *Definition) []error {
	out := []error{}
	if self.Name == "" {
		out = append(out, fmt.Errorf("schema has empty name"))
	}
	for i, table := range self.Tables {
		out = append(out, table.Validate(doc, self)...)
		for _, other := range self.Tables[i+1:] {
			if table.IdentityMatches(other) {
				out = append(out, fmt.Errorf("found two tables in schema %q with name %q", self.Name, table.Name))
			}
		}
	}
	for i, view := range self.Views {
		out = append(out, view.Validate(doc, self)...)
		for _, other := range self.Views[i+1:] {
			if view.IdentityMatches(other) {
				out = append(out, fmt.Errorf("found two views in schema %q with name %q", self.Name, view.Name))
			}
		}
	}
	return out
}
