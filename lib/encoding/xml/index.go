package xml

import (
	"fmt"
	"strings"

	"github.com/dbsteward/tablespec/lib/ir"
)

type Index struct {
	Name       string      `xml:"name,attr,omitempty"`
	Using      string      `xml:"using,attr,omitempty"`
	Unique     bool        `xml:"unique,attr,omitempty"`
	Dimensions []*IndexDim `xml:"indexDimension"`
}

type IndexDim struct {
	Name  string `xml:"name,attr"`
	Sql   bool   `xml:"sql,attr,omitempty"`
	Value string `xml:",chardata"`
}

func (idx *Index) ToIR() (*ir.Index, error) {
	rv := ir.Index{
		Name:   idx.Name,
		Unique: idx.Unique,
	}
	var err error
	rv.Using, err = newIndexType(idx.Using)
	if err != nil {
		return nil, fmt.Errorf("index '%s' invalid: %s", idx.Name, err)
	}
	// unnamed dimensions are numbered after the index
	for _, d := range idx.Dimensions {
		value := strings.TrimSpace(d.Value)
		if d.Name == "" {
			rv.AddDimension(value)
		} else {
			rv.AddDimensionNamed(d.Name, value)
		}
		rv.Dimensions[len(rv.Dimensions)-1].Sql = d.Sql
	}
	return &rv, nil
}

// an empty using attribute means the database default, which we leave blank
func newIndexType(s string) (ir.IndexType, error) {
	if s == "" {
		return "", nil
	}
	v := ir.IndexType(s)
	for _, known := range []ir.IndexType{ir.IndexTypeBtree, ir.IndexTypeHash, ir.IndexTypeGin, ir.IndexTypeGist} {
		if v.Equals(known) {
			return known, nil
		}
	}
	return "", fmt.Errorf("invalid index type '%s'", s)
}
