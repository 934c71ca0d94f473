package docx

import (
	"strings"

	"github.com/dbsteward/tablespec/lib/catalog"
	"github.com/dbsteward/tablespec/lib/util"
)

var (
	columnWidths     = []int{1800, 2600, 2200, 2400}
	constraintWidths = []int{1600, 6800}
)

// Section renders one table or view: its heading and description, then
// the column table and the constraint table, each under its own heading
func Section(section *catalog.Section, labels catalog.Labels) string {
	columns := util.Map(section.Columns, catalog.ColumnRow.Cells)
	constraints := util.Map(section.Constraints, catalog.ConstraintRow.Cells)

	out := []string{
		Heading(section.Heading(), 2),
		Paragraph(section.Description, RunProps{}),
		Heading(labels.Columns, 2),
		Table(labels.ColumnHeaders[:], columns, columnWidths),
		Heading(labels.Constraints, 2),
		Table(labels.ConstraintHeader[:], constraints, constraintWidths),
	}
	return strings.Join(out, "")
}
