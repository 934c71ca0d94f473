package catalog

import (
	"strings"

	"github.com/dbsteward/tablespec/lib/util"
)

// Sanitize removes every rune outside of printable ASCII, the Hangul
// syllables block and the Hangul compatibility jamo block.
func Sanitize(text string) string {
	return strings.Map(func(r rune) rune {
		switch {
		case r >= 0x20 && r <= 0x7E:
			return r
		case r >= 0xAC00 && r <= 0xD7A3:
			return r
		case r >= 0x3130 && r <= 0x318F:
			return r
		}
		return -1
	}, text)
}

// Sanitized returns a deep copy of the catalog with Sanitize applied to
// every free text field. Text from external files goes through this
// before it is rendered; the receiver is left untouched.
func (self *Catalog) Sanitized() *Catalog {
	out := &Catalog{
		Title: Sanitize(self.Title),
		Intro: util.Map(self.Intro, Sanitize),
		Meta: Meta{
			Title:       Sanitize(self.Meta.Title),
			Creator:     Sanitize(self.Meta.Creator),
			Application: Sanitize(self.Meta.Application),
			Company:     Sanitize(self.Meta.Company),
		},
		Labels: self.Labels.sanitized(),
	}
	if self.Overview != nil {
		out.Overview = &Overview{
			Heading:    Sanitize(self.Overview.Heading),
			Paragraphs: util.Map(self.Overview.Paragraphs, Sanitize),
		}
	}
	out.Sections = util.Map(self.Sections, func(s *Section) *Section {
		if s == nil {
			return nil
		}
		return &Section{
			Name:        Sanitize(s.Name),
			Kind:        Sanitize(s.Kind),
			Description: Sanitize(s.Description),
			Columns: util.Map(s.Columns, func(c ColumnRow) ColumnRow {
				return ColumnRow{Sanitize(c.Name), Sanitize(c.Type), Sanitize(c.Constraint), Sanitize(c.Description)}
			}),
			Constraints: util.Map(s.Constraints, func(c ConstraintRow) ConstraintRow {
				return ConstraintRow{Sanitize(c.Category), Sanitize(c.Description)}
			}),
		}
	})
	return out
}

func (self Labels) sanitized() Labels {
	out := Labels{
		Written:     Sanitize(self.Written),
		Columns:     Sanitize(self.Columns),
		Constraints: Sanitize(self.Constraints),
		Nullable:    Sanitize(self.Nullable),
		ViewColumns: Sanitize(self.ViewColumns),
	}
	for i, header := range self.ColumnHeaders {
		out.ColumnHeaders[i] = Sanitize(header)
	}
	for i, header := range self.ConstraintHeader {
		out.ConstraintHeader[i] = Sanitize(header)
	}
	return out
}
