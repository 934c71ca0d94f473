package docx

import (
	"encoding/xml"
	"io"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dbsteward/tablespec/lib/catalog"
	"github.com/dbsteward/tablespec/lib/util/testutil"
)

var kst = time.FixedZone("KST", 9*60*60)

func assertWellFormed(t *testing.T, doc string) {
	t.Helper()
	dec := xml.NewDecoder(strings.NewReader(doc))
	for {
		_, err := dec.Token()
		if err == io.EOF {
			return
		}
		require.NoError(t, err)
	}
}

func TestDocumentXML(t *testing.T) {
	cat := catalog.Default()
	now := time.Date(2024, 3, 5, 9, 7, 1, 0, kst)
	doc := DocumentXML(cat, now)

	assert.True(t, strings.HasPrefix(doc, xmlHeader+"\n<w:document "))
	assert.True(t, strings.HasSuffix(doc, "</w:sectPr>\n</w:body></w:document>"))
	assertWellFormed(t, doc)

	testutil.AssertInOrder(t, doc,
		`mc:Ignorable="w14 w15 w16se">`,
		"<w:body>",
		`<w:pStyle w:val="Heading1"/>`, ">MariaDB 정규화 스키마 테이블명세서<",
		">작성일시: 2024-03-05 09:07:01<",
		">본 문서는",
		">개요(ERD 관점)<",
		">users 1:N accounts,",
		">transactions 1:N transaction_entries 및 transaction_reviews<",
		">users (테이블)<",
		">accounts (테이블)<",
		">transactions (테이블)<",
		">transaction_entries (테이블)<",
		">transaction_reviews (테이블)<",
		">account_status_history (테이블)<",
		">v_account_balance_snapshot (뷰)<",
		`<w:pgSz w:w="12240" w:h="15840"/>`,
		`<w:pgMar w:top="1000" w:right="1000" w:bottom="1000" w:left="1000" w:header="720" w:footer="720" w:gutter="0"/>`,
		`<w:cols w:space="720"/>`,
		`<w:docGrid w:linePitch="360"/>`,
	)

	counts := testutil.CountOccurrences(doc, "<w:tbl>", `w:val="Heading1"`)
	assert.Equal(t, 2*len(cat.Sections), counts["<w:tbl>"])
	assert.Equal(t, 1, counts[`w:val="Heading1"`])
	assert.Contains(t, doc, "ENUM(&#x27;admin&#x27;,&#x27;customer&#x27;)")
}

func TestDocumentXML_EachSectionHeadingOnce(t *testing.T) {
	cat := catalog.Default()
	doc := DocumentXML(cat, time.Unix(0, 0))
	for _, section := range cat.Sections {
		heading := Heading(section.Heading(), 2)
		assert.Equal(t, 1, strings.Count(doc, heading), section.Name)
		testutil.AssertInOrder(t, doc, heading+Paragraph(section.Description, RunProps{}))
	}
}

func TestDocumentXML_WithoutOverview(t *testing.T) {
	cat := &catalog.Catalog{
		Title:  "T",
		Labels: catalog.DefaultLabels(),
		Sections: []*catalog.Section{{
			Name:        "a",
			Kind:        catalog.KindTable,
			Columns:     []catalog.ColumnRow{{Name: "id", Type: "INT", Constraint: "PK", Description: ""}},
			Constraints: []catalog.ConstraintRow{{Category: "PK", Description: "PRIMARY KEY (id)"}},
		}},
	}
	doc := DocumentXML(cat, time.Unix(0, 0).UTC())
	assertWellFormed(t, doc)
	assert.Contains(t, doc, ">작성일시: 1970-01-01 00:00:00<")
	assert.Equal(t, 3, strings.Count(doc, `w:val="Heading2"`))
	assert.NotContains(t, doc, "개요")
}
