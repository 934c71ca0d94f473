package xml

import (
	"github.com/dbsteward/tablespec/lib/ir"
	"github.com/pkg/errors"
)

type ForeignKey struct {
	Columns        DelimitedList `xml:"columns,attr"`
	ForeignSchema  string        `xml:"foreignSchema,attr,omitempty"`
	ForeignTable   string        `xml:"foreignTable,attr"`
	ForeignColumns DelimitedList `xml:"foreignColumns,attr,omitempty"`
	ConstraintName string        `xml:"constraintName,attr,omitempty"`
	IndexName      string        `xml:"indexName,attr,omitempty"`
	OnUpdate       string        `xml:"onUpdate,attr,omitempty"`
	OnDelete       string        `xml:"onDelete,attr,omitempty"`
}

func (fk *ForeignKey) ToIR() (*ir.ForeignKey, error) {
	rv := ir.ForeignKey{
		Columns:        fk.Columns,
		ForeignSchema:  fk.ForeignSchema,
		ForeignTable:   fk.ForeignTable,
		ForeignColumns: fk.ForeignColumns,
		ConstraintName: fk.ConstraintName,
	}
	var err error
	rv.OnUpdate, err = ir.NewForeignKeyAction(fk.OnUpdate)
	if err != nil {
		return nil, errors.Wrapf(err, "invalid foreign key %s", fk.ConstraintName)
	}
	rv.OnDelete, err = ir.NewForeignKeyAction(fk.OnDelete)
	if err != nil {
		return nil, errors.Wrapf(err, "invalid foreign key %s", fk.ConstraintName)
	}
	return &rv, nil
}
