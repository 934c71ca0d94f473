package xml

import (
	"encoding/xml"
	"strings"

	"github.com/dbsteward/tablespec/lib/ir"
	"github.com/dbsteward/tablespec/lib/util"
	"github.com/pkg/errors"
)

type Document struct {
	XMLName      xml.Name       `xml:"dbsteward"`
	IncludeFiles []*IncludeFile `xml:"includeFile"`
	Database     *Database      `xml:"database"`
	Schemas      []*Schema      `xml:"schema"`
}

type IncludeFile struct {
	Name string `xml:"name,attr"`
}

type Database struct {
	SqlFormat string `xml:"sqlFormat"`
}

type Schema struct {
	Name        string   `xml:"name,attr"`
	Description string   `xml:"description,attr,omitempty"`
	Tables      []*Table `xml:"table"`
	Views       []*View  `xml:"view"`
}

func (self *Document) IncludeFileNames() []string {
	return util.Map(self.IncludeFiles, func(inc *IncludeFile) string { return inc.Name })
}

// ToIR converts this Document to an ir.Definition, if possible.
//
// No semantic validation is performed at this point, see
// `ir.Definition.Validate()`. Include files are not followed here,
// that happens during compositing.
func (self *Document) ToIR() (*ir.Definition, error) {
	database, err := self.Database.ToIR()
	if err != nil {
		return nil, errors.Wrap(err, "could not process database tag")
	}

	schemas, err := util.MapErr(self.Schemas, (*Schema).ToIR)
	if err != nil {
		return nil, errors.Wrap(err, "could not process schema tags")
	}

	return &ir.Definition{
		Database: database,
		Schemas:  schemas,
	}, nil
}

func (db *Database) ToIR() (*ir.Database, error) {
	if db == nil {
		return nil, nil
	}
	sqlFormat, err := ir.NewSqlFormat(strings.TrimSpace(db.SqlFormat))
	if err != nil {
		return nil, errors.Wrap(err, "invalid database")
	}
	return &ir.Database{SqlFormat: sqlFormat}, nil
}

func (self *Schema) ToIR() (*ir.Schema, error) {
	tables, err := util.MapErr(self.Tables, (*Table).ToIR)
	if err != nil {
		return nil, errors.Wrapf(err, "invalid schema %s", self.Name)
	}
	views, err := util.MapErr(self.Views, (*View).ToIR)
	if err != nil {
		return nil, errors.Wrapf(err, "invalid schema %s", self.Name)
	}
	return &ir.Schema{
		Name:        self.Name,
		Description: self.Description,
		Tables:      tables,
		Views:       views,
	}, nil
}
