package ir

import (
	"fmt"
)

type Definition struct {
	Database *Database
	Schemas  []*Schema
}

type Database struct {
	SqlFormat SqlFormat
}

func (db *Database) Merge(overlay *Database) {
	if overlay == nil {
		return
	}
	if overlay.SqlFormat != SqlFormatUnknown {
		db.SqlFormat = overlay.SqlFormat
	}
}

func (def *Definition) GetSqlFormat() SqlFormat {
	if def == nil || def.Database == nil {
		return SqlFormatUnknown
	}
	return def.Database.SqlFormat
}

func (def *Definition) TryGetSchemaNamed(name string) *Schema {
	if def == nil {
		return nil
	}
	for _, schema := range def.Schemas {
		if schema.IdentityMatches(&Schema{Name: name}) {
			return schema
		}
	}
	return nil
}

func (def *Definition) AddSchema(schema *Schema) {
	def.Schemas = append(def.Schemas, schema)
}

// Merge composites the overlay into this definition. Objects with a
// matching identity are merged, everything else is appended in order.
func (def *Definition) Merge(overlay *Definition) {
	if overlay == nil {
		return
	}
	if def.Database == nil {
		def.Database = &Database{}
	}
	def.Database.Merge(overlay.Database)

	for _, overlaySchema := range overlay.Schemas {
		if baseSchema := def.TryGetSchemaNamed(overlaySchema.Name); baseSchema != nil {
			baseSchema.Merge(overlaySchema)
		} else {
			def.AddSchema(overlaySchema)
		}
	}
}

// Validate detects issues with the definition that a user will need to
// address before the definition can be documented. It is not a referential
// integrity check; foreign keys pointing at unknown tables are accepted.
func (def *Definition) Validate() []error {
	out := []error{}
	for i, schema := range def.Schemas {
		out = append(out, schema.Validate(def)...)
		for _, other := range def.Schemas[i+1:] {
			if schema.IdentityMatches(other) {
				out = append(out, fmt.Errorf("found two schemas with name %q", schema.Name))
			}
		}
	}
	return out
}
