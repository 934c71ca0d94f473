package ir

import (
	"fmt"
	"strings"
)

type IndexType string

const (
	IndexTypeBtree IndexType = "btree"
	IndexTypeHash  IndexType = "hash"
	IndexTypeGin   IndexType = "gin"
	IndexTypeGist  IndexType = "gist"
)

func (it IndexType) Equals(other IndexType) bool {
	return strings.EqualFold(string(it), string(other))
}

type Index struct {
	Name       string
	Using      IndexType
	Unique     bool
	Dimensions []*IndexDim
}

type IndexDim struct {
	Name  string
	Sql   bool
	Value string
}

func (idx *Index) AddDimensionNamed(name, value string) {
	idx.Dimensions = append(idx.Dimensions, &IndexDim{
		Name:  name,
		Value: value,
	})
}

func (idx *Index) AddDimension(value string) {
	idx.AddDimensionNamed(
		fmt.Sprintf("%s_%d", idx.Name, len(idx.Dimensions)+1),
		value,
	)
}

func (idx *Index) DimensionValues() []string {
	out := make([]string, len(idx.Dimensions))
	for i, dim := range idx.Dimensions {
		out[i] = dim.Value
	}
	return out
}

func (idx *Index) Merge(overlay *Index) {
	if overlay == nil {
		return
	}
	idx.Using = overlay.Using
	idx.Unique = overlay.Unique
	idx.Dimensions = overlay.Dimensions
}

func (idx *Index) Validate(_ *Definition, s *Schema, t *Table) []error {
	out := []error{}
	if idx.Name == "" {
		out = append(out, fmt.Errorf("index in %s.%s has empty name", s.Name, t.Name))
	}
	if len(idx.Dimensions) == 0 {
		out = append(out, fmt.Errorf("index %s on %s.%s has no dimensions", idx.Name, s.Name, t.Name))
	}
	return out
}
