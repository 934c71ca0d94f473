package xml

import (
	"encoding/xml"

	"github.com/dbsteward/tablespec/lib/ir"
	"github.com/pkg/errors"
)

type Column struct {
	Name            string `xml:"name,attr,omitempty"`
	Type            string `xml:"type,attr,omitempty"`
	Nullable        bool   `xml:"null,attr"`
	Default         string `xml:"default,attr,omitempty"`
	Description     string `xml:"description,attr,omitempty"`
	Unique          bool   `xml:"unique,attr,omitempty"`
	Check           string `xml:"check,attr,omitempty"`
	ForeignSchema   string `xml:"foreignSchema,attr,omitempty"`
	ForeignTable    string `xml:"foreignTable,attr,omitempty"`
	ForeignColumn   string `xml:"foreignColumn,attr,omitempty"`
	ForeignKeyName  string `xml:"foreignKeyName,attr,omitempty"`
	ForeignOnUpdate string `xml:"foreignOnUpdate,attr,omitempty"`
	ForeignOnDelete string `xml:"foreignOnDelete,attr,omitempty"`
}

// Implement some custom unmarshalling behavior
func (self *Column) UnmarshalXML(decoder *xml.Decoder, start xml.StartElement) error {
	type colAlias Column // prevents recursion while decoding, as type aliases have no methods
	// set defaults
	col := &colAlias{
		Nullable: true, // as in SQL NULL
	}
	err := decoder.DecodeElement(col, &start)
	if err != nil {
		return err
	}
	*self = Column(*col)
	return nil
}

func (self *Column) ToIR() (*ir.Column, error) {
	rv := ir.Column{
		Name:           self.Name,
		Type:           self.Type,
		Nullable:       self.Nullable,
		Default:        self.Default,
		Description:    self.Description,
		Unique:         self.Unique,
		Check:          self.Check,
		ForeignSchema:  self.ForeignSchema,
		ForeignTable:   self.ForeignTable,
		ForeignColumn:  self.ForeignColumn,
		ForeignKeyName: self.ForeignKeyName,
	}
	var err error
	rv.ForeignOnUpdate, err = ir.NewForeignKeyAction(self.ForeignOnUpdate)
	if err != nil {
		return nil, errors.Wrapf(err, "invalid column %s", self.Name)
	}
	rv.ForeignOnDelete, err = ir.NewForeignKeyAction(self.ForeignOnDelete)
	if err != nil {
		return nil, errors.Wrapf(err, "invalid column %s", self.Name)
	}
	return &rv, nil
}
