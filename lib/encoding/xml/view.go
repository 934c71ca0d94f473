package xml

import (
	"strings"

	"github.com/dbsteward/tablespec/lib/ir"
	"github.com/pkg/errors"
)

type View struct {
	Name           string        `xml:"name,attr"`
	Description    string        `xml:"description,attr,omitempty"`
	DependsOnViews DelimitedList `xml:"dependsOnViews,attr,omitempty"`
	Queries        []*ViewQuery  `xml:"viewQuery"`
}

type ViewQuery struct {
	SqlFormat string `xml:"sqlFormat,attr,omitempty"`
	Text      string `xml:",chardata"`
}

func (vq *ViewQuery) ToIR() (*ir.ViewQuery, error) {
	sqlFormat, err := ir.NewSqlFormat(vq.SqlFormat)
	if err != nil {
		return nil, err
	}
	return &ir.ViewQuery{
		SqlFormat: sqlFormat,
		Text:      strings.TrimSpace(vq.Text),
	}, nil
}

func (v *View) ToIR() (*ir.View, error) {
	rv := ir.View{
		Name:           v.Name,
		Description:    v.Description,
		DependsOnViews: v.DependsOnViews,
	}
	for _, q := range v.Queries {
		nq, err := q.ToIR()
		if err != nil {
			return nil, errors.Wrapf(err, "invalid view '%s'", v.Name)
		}
		rv.Queries = append(rv.Queries, nq)
	}
	return &rv, nil
}
