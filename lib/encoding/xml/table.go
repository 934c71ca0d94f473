package xml

import (
	"github.com/dbsteward/tablespec/lib/ir"
	"github.com/dbsteward/tablespec/lib/util"
	"github.com/pkg/errors"
)

type Table struct {
	Name           string        `xml:"name,attr"`
	Description    string        `xml:"description,attr,omitempty"`
	PrimaryKey     DelimitedList `xml:"primaryKey,attr,omitempty"`
	PrimaryKeyName string        `xml:"primaryKeyName,attr,omitempty"`
	Columns        []*Column     `xml:"column"`
	ForeignKeys    []*ForeignKey `xml:"foreignKey"`
	Indexes        []*Index      `xml:"index"`
	Constraints    []*Constraint `xml:"constraint"`
}

func (self *Table) ToIR() (*ir.Table, error) {
	columns, err := util.MapErr(self.Columns, (*Column).ToIR)
	if err != nil {
		return nil, errors.Wrapf(err, "invalid table %s", self.Name)
	}
	fks, err := util.MapErr(self.ForeignKeys, (*ForeignKey).ToIR)
	if err != nil {
		return nil, errors.Wrapf(err, "invalid table %s", self.Name)
	}
	indexes, err := util.MapErr(self.Indexes, (*Index).ToIR)
	if err != nil {
		return nil, errors.Wrapf(err, "invalid table %s", self.Name)
	}
	constraints, err := util.MapErr(self.Constraints, (*Constraint).ToIR)
	if err != nil {
		return nil, errors.Wrapf(err, "invalid table %s", self.Name)
	}
	return &ir.Table{
		Name:           self.Name,
		Description:    self.Description,
		PrimaryKey:     self.PrimaryKey,
		PrimaryKeyName: self.PrimaryKeyName,
		Columns:        columns,
		ForeignKeys:    fks,
		Indexes:        indexes,
		Constraints:    constraints,
	}, nil
}
