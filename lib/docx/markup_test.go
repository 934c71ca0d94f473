package docx

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/dbsteward/tablespec/lib/util/testutil"
)

func TestEscape(t *testing.T) {
	assert.Equal(t, `a &amp; b &lt; c &gt; &quot;d&quot; &#x27;e&#x27;`, Escape(`a & b < c > "d" 'e'`))
	assert.Equal(t, "&amp;lt;", Escape("&lt;"))
	assert.Equal(t, "한글 그대로", Escape("한글 그대로"))
}

func TestParagraph(t *testing.T) {
	assert.Equal(t,
		`<w:p><w:r><w:t xml:space="preserve">plain</w:t></w:r></w:p>`,
		Paragraph("plain", RunProps{}),
	)
	assert.Equal(t,
		`<w:p><w:r><w:rPr><w:b/><w:sz w:val="20"/></w:rPr><w:t xml:space="preserve">a&lt;b</w:t></w:r></w:p>`,
		Paragraph("a<b", RunProps{Bold: true, Size: 20}),
	)
	assert.Equal(t,
		`<w:p><w:r><w:rPr><w:sz w:val="24"/></w:rPr><w:t xml:space="preserve">x</w:t></w:r></w:p>`,
		Paragraph("x", RunProps{Size: 24}),
	)
}

func TestHeading(t *testing.T) {
	assert.Equal(t,
		`<w:p><w:pPr><w:pStyle w:val="Heading1"/></w:pPr><w:r><w:rPr><w:b/><w:sz w:val="36"/></w:rPr><w:t xml:space="preserve">Title</w:t></w:r></w:p>`,
		Heading("Title", 1),
	)
	assert.Equal(t,
		`<w:p><w:pPr><w:pStyle w:val="Heading2"/></w:pPr><w:r><w:rPr><w:b/><w:sz w:val="28"/></w:rPr><w:t xml:space="preserve">Sub</w:t></w:r></w:p>`,
		Heading("Sub", 2),
	)
	assert.Contains(t, Heading("Deep", 5), `w:val="Heading2"`)
}

func TestTable(t *testing.T) {
	out := Table([]string{"h1", "h2"}, [][]string{{"a", "b"}, {"c", "d"}}, []int{100, 200})

	testutil.AssertInOrder(t, out,
		`<w:tbl><w:tblPr><w:tblW w:w="0" w:type="auto"/></w:tblPr><w:tblGrid>`,
		`<w:gridCol w:w="100"/><w:gridCol w:w="200"/></w:tblGrid>`,
		`<w:tr><w:tc><w:tcPr><w:tcW w:w="100" w:type="dxa"/></w:tcPr><w:p><w:r><w:rPr><w:b/></w:rPr><w:t xml:space="preserve">h1</w:t>`,
		`<w:tcW w:w="200" w:type="dxa"/>`, `<w:rPr><w:b/></w:rPr><w:t xml:space="preserve">h2</w:t>`,
		`<w:tr><w:tc><w:tcPr><w:tcW w:w="100" w:type="dxa"/></w:tcPr><w:p><w:r><w:t xml:space="preserve">a</w:t>`,
		`<w:t xml:space="preserve">d</w:t></w:r></w:p></w:tc></w:tr></w:tbl>`,
	)
	counts := testutil.CountOccurrences(out, "<w:tr>", "<w:tc>", "<w:b/>")
	assert.Equal(t, 3, counts["<w:tr>"])
	assert.Equal(t, 6, counts["<w:tc>"])
	assert.Equal(t, 2, counts["<w:b/>"])
}

func TestTable_PairsCellsWithWidths(t *testing.T) {
	out := Table(
		[]string{"h1", "h2", "h3"},
		[][]string{{"long", "row", "dropped"}, {"short"}},
		[]int{100, 200},
	)
	counts := testutil.CountOccurrences(out, "<w:tr>", "<w:tc>", "<w:gridCol")
	assert.Equal(t, 3, counts["<w:tr>"])
	assert.Equal(t, 2+2+1, counts["<w:tc>"])
	assert.Equal(t, 2, counts["<w:gridCol"])
	assert.NotContains(t, out, "h3")
	assert.NotContains(t, out, "dropped")
	assert.Contains(t, out, ">short<")
}

func TestTable_NoRows(t *testing.T) {
	out := Table([]string{"only"}, nil, []int{500})
	assert.Equal(t, 1, testutil.CountOccurrences(out, "<w:tr>")["<w:tr>"])
}
