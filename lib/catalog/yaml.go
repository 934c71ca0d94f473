package catalog

import (
	"io"
	"os"

	"github.com/pkg/errors"
	"gopkg.in/yaml.v3"
)

// ReadYAML decodes a catalog document. Blank labels and metadata are
// filled from the defaults.
func ReadYAML(r io.Reader) (*Catalog, error) {
	cat := &Catalog{}
	dec := yaml.NewDecoder(r)
	dec.KnownFields(true)
	if err := dec.Decode(cat); err != nil {
		return nil, errors.Wrap(err, "could not unmarshal catalog yaml")
	}
	for i, section := range cat.Sections {
		if section == nil {
			return nil, errors.Errorf("section %d is empty", i+1)
		}
	}
	cat.Labels = cat.Labels.withDefaults()
	cat.Meta = cat.Meta.withDefaults()
	return cat, nil
}

func LoadYAML(file string) (*Catalog, error) {
	f, err := os.Open(file)
	if err != nil {
		return nil, errors.Wrapf(err, "could not read catalog file %s", file)
	}
	defer f.Close()

	cat, err := ReadYAML(f)
	if err != nil {
		return nil, errors.Wrapf(err, "could not parse catalog file %s", file)
	}
	return cat, nil
}

func WriteYAML(w io.Writer, cat *Catalog) error {
	enc := yaml.NewEncoder(w)
	enc.SetIndent(2)
	if err := enc.Encode(cat); err != nil {
		return errors.Wrap(err, "could not marshal catalog yaml")
	}
	return errors.Wrap(enc.Close(), "could not flush catalog yaml")
}

func SaveYAML(file string, cat *Catalog) error {
	f, err := os.Create(file)
	if err != nil {
		return errors.Wrapf(err, "could not open file %s for writing", file)
	}
	defer f.Close()

	if err := WriteYAML(f, cat); err != nil {
		return errors.Wrapf(err, "could not write catalog to %s", file)
	}
	return nil
}

// Rows are written in the compact flow form, e.g.
//   - [user_id, BIGINT UNSIGNED, "PK, AUTO_INCREMENT", 사용자 고유 ID]
// and may be read back either that way or as a mapping.

type columnRowFields struct {
	Name        string `yaml:"name"`
	Type        string `yaml:"type"`
	Constraint  string `yaml:"constraint"`
	Description string `yaml:"description"`
}

func (self *ColumnRow) UnmarshalYAML(value *yaml.Node) error {
	if value.Kind == yaml.SequenceNode {
		var cells []string
		if err := value.Decode(&cells); err != nil {
			return err
		}
		if len(cells) > 4 {
			return errors.Errorf("line %d: column row has %d cells, expected at most 4", value.Line, len(cells))
		}
		cells = append(cells, make([]string, 4-len(cells))...)
		*self = ColumnRow{cells[0], cells[1], cells[2], cells[3]}
		return nil
	}
	var fields columnRowFields
	if err := value.Decode(&fields); err != nil {
		return err
	}
	*self = ColumnRow(fields)
	return nil
}

func (self ColumnRow) MarshalYAML() (interface{}, error) {
	return flowRow(self.Cells()), nil
}

type constraintRowFields struct {
	Category    string `yaml:"category"`
	Description string `yaml:"description"`
}

func (self *ConstraintRow) UnmarshalYAML(value *yaml.Node) error {
	if value.Kind == yaml.SequenceNode {
		var cells []string
		if err := value.Decode(&cells); err != nil {
			return err
		}
		if len(cells) != 2 {
			return errors.Errorf("line %d: constraint row has %d cells, expected 2", value.Line, len(cells))
		}
		*self = ConstraintRow{cells[0], cells[1]}
		return nil
	}
	var fields constraintRowFields
	if err := value.Decode(&fields); err != nil {
		return err
	}
	*self = ConstraintRow(fields)
	return nil
}

func (self ConstraintRow) MarshalYAML() (interface{}, error) {
	return flowRow(self.Cells()), nil
}

func flowRow(cells []string) *yaml.Node {
	node := &yaml.Node{Kind: yaml.SequenceNode, Style: yaml.FlowStyle}
	for _, cell := range cells {
		node.Content = append(node.Content, &yaml.Node{Kind: yaml.ScalarNode, Tag: "!!str", Value: cell})
	}
	return node
}

func (self Meta) withDefaults() Meta {
	def := DefaultMeta()
	if self.Title == "" {
		self.Title = def.Title
	}
	if self.Creator == "" {
		self.Creator = def.Creator
	}
	if self.Application == "" {
		self.Application = def.Application
	}
	if self.Company == "" {
		self.Company = def.Company
	}
	return self
}
