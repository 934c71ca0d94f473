package ir

import (
	"fmt"
	"strings"
)

type View struct {
	Name           string
	Description    string
	DependsOnViews []string
	Queries        []*ViewQuery
}

type ViewQuery struct {
	SqlFormat SqlFormat
	Text      string
}

func (self *View) IdentityMatches(other *View) bool {
	if self == nil || other == nil {
		return false
	}
	return strings.EqualFold(self.Name, other.Name)
}

// TryGetViewQuery returns the query for the given format, falling back to
// a query without a format, then to the first query defined
func (self *View) TryGetViewQuery(sqlFormat SqlFormat) *ViewQuery {
	var generic *ViewQuery
	for _, q := range self.Queries {
		if sqlFormat != SqlFormatUnknown && q.SqlFormat.Equals(sqlFormat) {
			return q
		}
		if q.SqlFormat == SqlFormatUnknown && generic == nil {
			generic = q
		}
	}
	if generic != nil {
		return generic
	}
	if len(self.Queries) > 0 {
		return self.Queries[0]
	}
	return nil
}

func (self *View) Merge(overlay *View) {
	if overlay == nil {
		return
	}
	if overlay.Description != "" {
		self.Description = overlay.Description
	}
	for _, overlayQuery := range overlay.Queries {
		merged := false
		for _, baseQuery := range self.Queries {
			if baseQuery.SqlFormat.Equals(overlayQuery.SqlFormat) {
				baseQuery.Text = overlayQuery.Text
				merged = true
			}
		}
		if !merged {
			self.Queries = append(self.Queries, overlayQuery)
		}
	}
}

func (self *View) Validate(_ *Definition, s *Schema) []error {
	out := []error{}
	if self.Name == "" {
		out = append(out, fmt.Errorf("view in schema %s has empty name", s.Name))
	}
	if len(self.Queries) == 0 {
		out = append(out, fmt.Errorf("view %s.%s has no viewQuery", s.Name, self.Name))
	}
	return out
}
