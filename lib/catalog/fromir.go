package catalog

import (
	"fmt"
	"regexp"
	"strings"
	"unicode"

	"github.com/dbsteward/tablespec/lib/ir"
	"github.com/dbsteward/tablespec/lib/util"
)

var autoIncrementRegex = regexp.MustCompile(`(?i)\s*\bauto_increment\b`)

// FromDefinition builds a catalog from a composited dbxml definition:
// one section per table, then one per view, in definition order. Section
// names are schema qualified when the definition has more than one schema.
func FromDefinition(def *ir.Definition) *Catalog {
	b := &defBuilder{
		def:       def,
		labels:    DefaultLabels(),
		qualified: len(def.Schemas) > 1,
	}

	names := util.Map(def.Schemas, func(s *ir.Schema) string { return s.Name })
	cat := &Catalog{
		Title:  fmt.Sprintf("%s 스키마 테이블명세서", strings.Join(names, ", ")),
		Meta:   DefaultMeta(),
		Labels: b.labels,
	}
	for _, schema := range def.Schemas {
		if schema.Description != "" {
			cat.Intro = append(cat.Intro, util.CondJoin(": ", schema.Name, schema.Description))
		}
	}
	if rels := b.relationships(); len(rels) > 0 {
		cat.Overview = &Overview{
			Heading:    "개요(ERD 관점)",
			Paragraphs: []string{strings.Join(rels, ", ")},
		}
	}

	for _, schema := range def.Schemas {
		for _, table := range schema.Tables {
			cat.Sections = append(cat.Sections, b.tableSection(schema, table))
		}
	}
	for _, schema := range def.Schemas {
		for _, view := range schema.Views {
			cat.Sections = append(cat.Sections, b.viewSection(schema, view))
		}
	}
	return cat
}

type defBuilder struct {
	def       *ir.Definition
	labels    Labels
	qualified bool
}

func (b *defBuilder) name(schema *ir.Schema, name string) string {
	if b.qualified {
		return schema.Name + "." + name
	}
	return name
}

func (b *defBuilder) tableSection(schema *ir.Schema, table *ir.Table) *Section {
	section := &Section{
		Name:        b.name(schema, table.Name),
		Kind:        KindTable,
		Description: table.Description,
	}
	for _, col := range table.Columns {
		section.Columns = append(section.Columns, b.columnRow(schema, table, col))
	}
	section.Constraints = b.constraintRows(schema, table)
	if len(section.Constraints) == 0 {
		section.Constraints = []ConstraintRow{{"-", "-"}}
	}
	return section
}

func (b *defBuilder) columnRow(schema *ir.Schema, table *ir.Table, col *ir.Column) ColumnRow {
	colType := col.Type
	if colType == "" && col.HasForeignKey() {
		colType = b.foreignType(schema, col)
	}
	autoIncrement := autoIncrementRegex.MatchString(colType)
	colType = upperOutsideQuotes(strings.TrimSpace(autoIncrementRegex.ReplaceAllString(colType, "")))

	isPk := table.IsPrimaryKeyColumn(col.Name)
	nullText := ""
	if !isPk {
		nullText = util.ChooseStr(col.Nullable, b.labels.Nullable, "NOT NULL")
	}
	constraint := util.CondJoin(", ",
		util.MaybeStr(isPk, "PK"),
		util.MaybeStr(autoIncrement, "AUTO_INCREMENT"),
		util.MaybeStr(table.HasForeignKeyOn(col.Name), "FK"),
		util.MaybeStr(col.Unique, "UNIQUE"),
		nullText,
		util.MaybeStr(col.Default != "", "DEFAULT "+col.Default),
		util.MaybeStr(col.Check != "", "CHECK ("+col.Check+")"),
	)
	return ColumnRow{col.Name, colType, constraint, col.Description}
}

// upperOutsideQuotes uppercases type keywords while leaving quoted enum
// and set members as written
func upperOutsideQuotes(colType string) string {
	quoted := false
	return strings.Map(func(r rune) rune {
		if r == '\'' {
			quoted = !quoted
			return r
		}
		if quoted {
			return r
		}
		return unicode.ToUpper(r)
	}, colType)
}

// foreignType resolves the type of a column that only declares a foreign
// key, from the column it references. An unresolvable reference yields "".
// The referencing column never inherits auto_increment.
func (b *defBuilder) foreignType(schema *ir.Schema, col *ir.Column) string {
	fSchema := schema
	if col.ForeignSchema != "" {
		fSchema = b.def.TryGetSchemaNamed(col.ForeignSchema)
	}
	key := col.GetReferencedKey()
	fCol := fSchema.TryGetTableNamed(key.Table).TryGetColumnNamed(key.Columns[0])
	if fCol == nil {
		return ""
	}
	return autoIncrementRegex.ReplaceAllString(fCol.Type, "")
}

func (b *defBuilder) constraintRows(schema *ir.Schema, table *ir.Table) []ConstraintRow {
	var pk, fk, uk, idx, check []ConstraintRow

	if len(table.PrimaryKey) > 0 {
		pk = append(pk, ConstraintRow{"PK", fmt.Sprintf("PRIMARY KEY (%s)", strings.Join(table.PrimaryKey, ", "))})
	}

	// unique keys are reported once per column set, preferring the named
	// index or constraint over a column attribute
	uniqueSeen := map[string]bool{}
	addUnique := func(cols []string, text string) {
		key := strings.Join(cols, ",")
		if uniqueSeen[key] {
			return
		}
		uniqueSeen[key] = true
		uk = append(uk, ConstraintRow{"UK", text})
	}
	for _, index := range table.Indexes {
		if index.Unique {
			cols := index.DimensionValues()
			addUnique(cols, util.CondJoin(" ", "UNIQUE KEY", index.Name, "("+strings.Join(cols, ", ")+")"))
		}
	}
	for _, c := range table.Constraints {
		if c.Type == ir.ConstraintTypeUnique {
			addUnique(definitionColumns(c.Definition), util.CondJoin(" ", "UNIQUE KEY", c.Name, parenthesize(c.Definition)))
		}
	}

	local := ir.KeyNames{Table: table.Name}
	for _, col := range table.Columns {
		if col.HasForeignKey() {
			local.Columns = []string{col.Name}
			fk = append(fk, ConstraintRow{"FK", foreignKeyText(col.ForeignKeyName, local, col.GetReferencedKey(), col.ForeignOnUpdate, col.ForeignOnDelete)})
		}
		if col.Unique {
			addUnique([]string{col.Name}, fmt.Sprintf("UNIQUE KEY (%s)", col.Name))
		}
	}
	for _, key := range table.ForeignKeys {
		local.Columns = key.Columns
		fk = append(fk, ConstraintRow{"FK", foreignKeyText(key.ConstraintName, local, key.GetReferencedKey(), key.OnUpdate, key.OnDelete)})
	}

	for _, index := range table.Indexes {
		if !index.Unique {
			cols := strings.Join(index.DimensionValues(), ", ")
			idx = append(idx, ConstraintRow{"IDX", util.CondJoin(" ", "INDEX", index.Name, "("+cols+")")})
		}
	}

	for _, c := range table.Constraints {
		switch c.Type {
		case ir.ConstraintTypePrimaryKey:
			pk = append(pk, ConstraintRow{"PK", util.CondJoin(" ", "PRIMARY KEY", c.Name, parenthesize(c.Definition))})
		case ir.ConstraintTypeForeign:
			target := util.CondJoin(".", c.ForeignSchema, c.ForeignTable)
			fk = append(fk, ConstraintRow{"FK", util.CondJoin(": ", c.Name, util.CondJoin(" -> ", c.Definition, target))})
		case ir.ConstraintTypeCheck:
			check = append(check, ConstraintRow{"CHECK", util.CondJoin(": ", c.Name, "CHECK "+parenthesize(c.Definition))})
		}
	}

	out := []ConstraintRow{}
	for _, group := range [][]ConstraintRow{pk, fk, uk, idx, check} {
		out = append(out, group...)
	}
	return out
}

func foreignKeyText(name string, local, ref ir.KeyNames, onUpdate, onDelete ir.ForeignKeyAction) string {
	actions := util.CondJoin(", ",
		util.MaybeStr(onUpdate != "", "ON UPDATE "+onUpdate.Sql()),
		util.MaybeStr(onDelete != "", "ON DELETE "+onDelete.Sql()),
	)
	text := local.Qualified() + " -> " + ref.Qualified()
	if actions != "" {
		text += " (" + actions + ")"
	}
	return util.CondJoin(": ", name, text)
}

// definitionColumns splits a column list definition such as "(a, b)"
func definitionColumns(def string) []string {
	def = strings.TrimSuffix(strings.TrimPrefix(strings.TrimSpace(def), "("), ")")
	return util.Map(strings.Split(def, ","), strings.TrimSpace)
}

func parenthesize(def string) string {
	def = strings.TrimSpace(def)
	if strings.HasPrefix(def, "(") && strings.HasSuffix(def, ")") {
		return def
	}
	return "(" + def + ")"
}

func (b *defBuilder) viewSection(schema *ir.Schema, view *ir.View) *Section {
	section := &Section{
		Name:        b.name(schema, view.Name),
		Kind:        KindView,
		Description: view.Description,
		Columns:     []ColumnRow{{"*", "-", "", b.labels.ViewColumns}},
		Constraints: []ConstraintRow{{"Type", "CREATE OR REPLACE VIEW"}},
	}
	if query := view.TryGetViewQuery(b.def.GetSqlFormat()); query != nil {
		section.Constraints = append(section.Constraints, ConstraintRow{"Source", util.SquashSpace(query.Text)})
	}
	if len(view.DependsOnViews) > 0 {
		section.Constraints = append(section.Constraints, ConstraintRow{"Depends", strings.Join(view.DependsOnViews, ", ")})
	}
	return section
}

// relationships summarizes foreign keys as "parent 1:N child/child" lines,
// parents in order of first reference
func (b *defBuilder) relationships() []string {
	parents := []string{}
	children := map[string][]string{}
	add := func(parent, child string) {
		if _, ok := children[parent]; !ok {
			parents = append(parents, parent)
		}
		if !util.Contains(children[parent], child) {
			children[parent] = append(children[parent], child)
		}
	}
	for _, schema := range b.def.Schemas {
		for _, table := range schema.Tables {
			child := b.name(schema, table.Name)
			ref := func(fSchema, fTable string) string {
				if b.qualified {
					return util.CoalesceStr(fSchema, schema.Name) + "." + fTable
				}
				return fTable
			}
			for _, col := range table.Columns {
				if col.HasForeignKey() {
					add(ref(col.ForeignSchema, col.ForeignTable), child)
				}
			}
			for _, key := range table.ForeignKeys {
				add(ref(key.ForeignSchema, key.ForeignTable), child)
			}
		}
	}
	return util.Map(parents, func(parent string) string {
		return parent + " 1:N " + strings.Join(children[parent], "/")
	})
}
