// Package catalog holds the table specification content: an ordered list
// of sections, one per table or view, plus the document level text that
// surrounds them.
//
// A Catalog is built once (from the built-in data, a YAML file or a dbxml
// definition) and is treated as read-only from then on.
package catalog

import (
	"fmt"

	"github.com/hashicorp/go-multierror"
)

// display tags for Section.Kind
const (
	KindTable = "테이블"
	KindView  = "뷰"
)

type Catalog struct {
	Title    string     `yaml:"title"`
	Intro    []string   `yaml:"intro"`
	Overview *Overview  `yaml:"overview,omitempty"`
	Sections []*Section `yaml:"sections"`
	Meta     Meta       `yaml:"meta"`
	Labels   Labels     `yaml:"labels"`
}

// Overview is the optional block between the intro and the first section
type Overview struct {
	Heading    string   `yaml:"heading"`
	Paragraphs []string `yaml:"paragraphs"`
}

// Meta is written to the package core and app properties
type Meta struct {
	Title       string `yaml:"title"`
	Creator     string `yaml:"creator"`
	Application string `yaml:"application"`
	Company     string `yaml:"company"`
}

// Labels is the fixed text the renderer places around section content
type Labels struct {
	Written          string    `yaml:"written"`
	Columns          string    `yaml:"columns"`
	Constraints      string    `yaml:"constraints"`
	ColumnHeaders    [4]string `yaml:"columnHeaders"`
	ConstraintHeader [2]string `yaml:"constraintHeaders"`
	Nullable         string    `yaml:"nullable"`
	ViewColumns      string    `yaml:"viewColumns"`
}

type Section struct {
	Name        string          `yaml:"name"`
	Kind        string          `yaml:"kind"`
	Description string          `yaml:"description"`
	Columns     []ColumnRow     `yaml:"columns"`
	Constraints []ConstraintRow `yaml:"constraints"`
}

type ColumnRow struct {
	Name        string
	Type        string
	Constraint  string
	Description string
}

// Cells returns the row in table column order
func (self ColumnRow) Cells() []string {
	return []string{self.Name, self.Type, self.Constraint, self.Description}
}

type ConstraintRow struct {
	Category    string
	Description string
}

func (self ConstraintRow) Cells() []string {
	return []string{self.Category, self.Description}
}

func DefaultLabels() Labels {
	return Labels{
		Written:          "작성일시: ",
		Columns:          "컬럼 정의",
		Constraints:      "제약/인덱스/관계",
		ColumnHeaders:    [4]string{"컬럼명", "자료형", "제약/기본값", "설명"},
		ConstraintHeader: [2]string{"구분", "내용"},
		Nullable:         "NULL 허용",
		ViewColumns:      "뷰 쿼리 참조",
	}
}

// withDefaults fills any blank label from DefaultLabels, so partially
// specified catalogs still render every heading
func (self Labels) withDefaults() Labels {
	def := DefaultLabels()
	fill := func(v *string, d string) {
		if *v == "" {
			*v = d
		}
	}
	fill(&self.Written, def.Written)
	fill(&self.Columns, def.Columns)
	fill(&self.Constraints, def.Constraints)
	fill(&self.Nullable, def.Nullable)
	fill(&self.ViewColumns, def.ViewColumns)
	for i := range self.ColumnHeaders {
		fill(&self.ColumnHeaders[i], def.ColumnHeaders[i])
	}
	for i := range self.ConstraintHeader {
		fill(&self.ConstraintHeader[i], def.ConstraintHeader[i])
	}
	return self
}

func (self *Section) Heading() string {
	return fmt.Sprintf("%s (%s)", self.Name, self.Kind)
}

// Validate reports every section that would render an empty table. All
// problems are collected instead of stopping at the first.
func (self *Catalog) Validate() error {
	var result *multierror.Error
	if len(self.Sections) == 0 {
		result = multierror.Append(result, fmt.Errorf("catalog has no sections"))
	}
	for i, section := range self.Sections {
		if section == nil {
			result = multierror.Append(result, fmt.Errorf("section %d is empty", i+1))
			continue
		}
		if section.Name == "" {
			result = multierror.Append(result, fmt.Errorf("section %d has empty name", i+1))
		}
		if len(section.Columns) == 0 {
			result = multierror.Append(result, fmt.Errorf("section %q has no columns", section.Name))
		}
		if len(section.Constraints) == 0 {
			result = multierror.Append(result, fmt.Errorf("section %q has no constraints", section.Name))
		}
	}
	return result.ErrorOrNil()
}
