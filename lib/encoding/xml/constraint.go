package xml

import (
	"github.com/dbsteward/tablespec/lib/ir"
	"github.com/pkg/errors"
)

type Constraint struct {
	Name          string `xml:"name,attr,omitempty"`
	Type          string `xml:"type,attr,omitempty"`
	Definition    string `xml:"definition,attr,omitempty"`
	ForeignSchema string `xml:"foreignSchema,attr,omitempty"`
	ForeignTable  string `xml:"foreignTable,attr,omitempty"`
}

func (self *Constraint) ToIR() (*ir.Constraint, error) {
	ct, err := ir.NewConstraintType(self.Type)
	if err != nil {
		return nil, errors.Wrapf(err, "invalid constraint %s", self.Name)
	}
	return &ir.Constraint{
		Name:          self.Name,
		Type:          ct,
		Definition:    self.Definition,
		ForeignSchema: self.ForeignSchema,
		ForeignTable:  self.ForeignTable,
	}, nil
}
