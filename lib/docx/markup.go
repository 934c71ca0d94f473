// Package docx emits WordprocessingML markup for table specifications and
// packages it into a .docx container.
//
// Every fragment is a fixed template with escaped text spliced in, so the
// same input always yields the same bytes.
package docx

import (
	"strconv"
	"strings"

	"github.com/dbsteward/tablespec/lib/util"
)

var escaper = strings.NewReplacer(
	"&", "&amp;",
	"<", "&lt;",
	">", "&gt;",
	`"`, "&quot;",
	"'", "&#x27;",
)

// Escape replaces the five reserved markup characters with entities
func Escape(s string) string {
	return escaper.Replace(s)
}

// RunProps are the character properties of a run. Size is in half-points;
// zero means inherit.
type RunProps struct {
	Bold bool
	Size int
}

func (p RunProps) xml() string {
	props := util.MaybeStr(p.Bold, "<w:b/>")
	if p.Size > 0 {
		props += `<w:sz w:val="` + strconv.Itoa(p.Size) + `"/>`
	}
	if props == "" {
		return ""
	}
	return "<w:rPr>" + props + "</w:rPr>"
}

func run(text string, props RunProps) string {
	return "<w:r>" + props.xml() + `<w:t xml:space="preserve">` + Escape(text) + "</w:t></w:r>"
}

// Paragraph emits a single-run paragraph
func Paragraph(text string, props RunProps) string {
	return "<w:p>" + run(text, props) + "</w:p>"
}

// Heading emits a bold paragraph in the Heading1 style for level 1, and
// the Heading2 style for any other level
func Heading(text string, level int) string {
	style, size := "Heading2", 28
	if level == 1 {
		style, size = "Heading1", 36
	}
	return `<w:p><w:pPr><w:pStyle w:val="` + style + `"/></w:pPr>` +
		run(text, RunProps{Bold: true, Size: size}) +
		"</w:p>"
}

// Table emits a grid with one column per width (in twentieths of a point).
// The headers row is bold. Cells are paired with widths by position; any
// cell without a width, or width without a cell, is dropped.
func Table(headers []string, rows [][]string, widths []int) string {
	b := &strings.Builder{}
	b.WriteString(`<w:tbl><w:tblPr><w:tblW w:w="0" w:type="auto"/></w:tblPr><w:tblGrid>`)
	for _, w := range widths {
		b.WriteString(`<w:gridCol w:w="` + strconv.Itoa(w) + `"/>`)
	}
	b.WriteString("</w:tblGrid>")
	writeRow(b, headers, widths, true)
	for _, row := range rows {
		writeRow(b, row, widths, false)
	}
	b.WriteString("</w:tbl>")
	return b.String()
}

func writeRow(b *strings.Builder, cells []string, widths []int, header bool) {
	b.WriteString("<w:tr>")
	for i := 0; i < util.Min(len(cells), len(widths)); i++ {
		b.WriteString(`<w:tc><w:tcPr><w:tcW w:w="` + strconv.Itoa(widths[i]) + `" w:type="dxa"/></w:tcPr>`)
		b.WriteString("<w:p>" + run(cells[i], RunProps{Bold: header}) + "</w:p>")
		b.WriteString("</w:tc>")
	}
	b.WriteString("</w:tr>")
}
