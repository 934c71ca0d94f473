package docx

import (
	"strings"
	"time"

	"github.com/dbsteward/tablespec/lib/catalog"
)

const writtenLayout = "2006-01-02 15:04:05"

var documentOpen = []string{
	`<w:document xmlns:wpc="http://schemas.microsoft.com/office/word/2010/wordprocessingCanvas"`,
	` xmlns:mc="http://schemas.openxmlformats.org/markup-compatibility/2006"`,
	` xmlns:r="http://schemas.openxmlformats.org/officeDocument/2006/relationships"`,
	` xmlns:w="http://schemas.openxmlformats.org/wordprocessingml/2006/main"`,
	` xmlns:w14="http://schemas.microsoft.com/office/word/2010/wordml"`,
	` xmlns:w15="http://schemas.microsoft.com/office/word/2012/wordml"`,
	` xmlns:w16se="http://schemas.microsoft.com/office/word/2015/wordml/symex"`,
	` mc:Ignorable="w14 w15 w16se">`,
}

// letter size, 1000 twip margins
var sectionProperties = []string{
	`<w:sectPr>`,
	`<w:pgSz w:w="12240" w:h="15840"/>`,
	`<w:pgMar w:top="1000" w:right="1000" w:bottom="1000" w:left="1000" w:header="720" w:footer="720" w:gutter="0"/>`,
	`<w:cols w:space="720"/>`,
	`<w:docGrid w:linePitch="360"/>`,
	`</w:sectPr>`,
}

// DocumentXML assembles word/document.xml for the catalog. The written
// timestamp is rendered in the location of now.
func DocumentXML(cat *catalog.Catalog, now time.Time) string {
	lines := []string{xmlHeader}
	lines = append(lines, documentOpen...)
	lines = append(lines, "<w:body>")
	lines = append(lines, Heading(cat.Title, 1))
	lines = append(lines, Paragraph(cat.Labels.Written+now.Format(writtenLayout), RunProps{}))
	for _, intro := range cat.Intro {
		lines = append(lines, Paragraph(intro, RunProps{}))
	}
	if cat.Overview != nil {
		lines = append(lines, Heading(cat.Overview.Heading, 2))
		for _, p := range cat.Overview.Paragraphs {
			lines = append(lines, Paragraph(p, RunProps{}))
		}
	}
	for _, section := range cat.Sections {
		lines = append(lines, Section(section, cat.Labels))
	}
	lines = append(lines, sectionProperties...)
	lines = append(lines, "</w:body></w:document>")
	return strings.Join(lines, "\n")
}
