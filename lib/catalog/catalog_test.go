package catalog_test

import (
	"bytes"
	"path/filepath"
	"strings"
	"testing"

	"github.com/dbsteward/tablespec/lib/catalog"
	"github.com/google/go-cmp/cmp"
	"github.com/hashicorp/go-multierror"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDefault_IsValid(t *testing.T) {
	cat := catalog.Default()
	require.NoError(t, cat.Validate())
	require.Len(t, cat.Sections, 7)

	names := make([]string, len(cat.Sections))
	for i, s := range cat.Sections {
		names[i] = s.Name
	}
	assert.Equal(t, []string{
		"users",
		"accounts",
		"transactions",
		"transaction_entries",
		"transaction_reviews",
		"account_status_history",
		"v_account_balance_snapshot",
	}, names)
	assert.Equal(t, "users (테이블)", cat.Sections[0].Heading())
	assert.Equal(t, "v_account_balance_snapshot (뷰)", cat.Sections[6].Heading())
}

func TestDefault_ReturnsFreshCopies(t *testing.T) {
	a := catalog.Default()
	a.Sections[0].Name = "changed"
	assert.Equal(t, "users", catalog.Default().Sections[0].Name)
}

func TestValidate_CollectsAllProblems(t *testing.T) {
	cat := &catalog.Catalog{
		Sections: []*catalog.Section{
			{Name: "no_columns", Constraints: []catalog.ConstraintRow{{"PK", "x"}}},
			{Name: "", Columns: []catalog.ColumnRow{{"a", "b", "c", "d"}}},
		},
	}
	err := cat.Validate()
	require.Error(t, err)
	merr, ok := err.(*multierror.Error)
	require.True(t, ok)
	assert.Len(t, merr.Errors, 3)

	assert.Error(t, (&catalog.Catalog{}).Validate())
}

func TestSanitize(t *testing.T) {
	assert.Equal(t, "abc 한글 ㄱㅏ", catalog.Sanitize("abc 한글 ㄱㅏ"))
	assert.Equal(t, "ab", catalog.Sanitize("a\x00\tb\n"))
	assert.Equal(t, "ID", catalog.Sanitize("ID·日本"))
	assert.Equal(t, "x < y & 'z'", catalog.Sanitize("x < y & 'z'"))
}

func TestSanitized_LeavesOriginalAlone(t *testing.T) {
	cat := catalog.Default()
	clean := cat.Sanitized()
	assert.Equal(t, "고객·관리자 기본 계정 정보 마스터.", cat.Sections[0].Description)
	assert.Equal(t, "고객관리자 기본 계정 정보 마스터.", clean.Sections[0].Description)
	assert.Equal(t, len(cat.Sections), len(clean.Sections))
	assert.Equal(t, cat.Sections[1].Columns[0], clean.Sections[1].Columns[0])
}

func TestLoadYAML(t *testing.T) {
	cat, err := catalog.LoadYAML(filepath.Join("testdata", "ledger.yaml"))
	require.NoError(t, err)
	require.NoError(t, cat.Validate())

	assert.Equal(t, "Ledger & Audit", cat.Title)
	assert.Equal(t, "Audit Team", cat.Meta.Creator)
	assert.Equal(t, catalog.DefaultMeta().Application, cat.Meta.Application)
	assert.Equal(t, catalog.DefaultLabels(), cat.Labels)

	want := &catalog.Section{
		Name:        "ledger",
		Kind:        catalog.KindTable,
		Description: "Posted ledger lines.",
		Columns: []catalog.ColumnRow{
			{"ledger_id", "BIGINT", "PK, AUTO_INCREMENT", "원장 ID"},
			{"amount", "BIGINT", "NOT NULL, CHECK (amount > 0)", "금액"},
		},
		Constraints: []catalog.ConstraintRow{
			{"PK", "PRIMARY KEY (ledger_id)"},
			{"IDX", "INDEX idx_ledger_amount (amount)"},
		},
	}
	require.Len(t, cat.Sections, 1)
	if diff := cmp.Diff(want, cat.Sections[0]); diff != "" {
		t.Errorf("section mismatch (-want +got):\n%s", diff)
	}
}

func TestReadYAML_Errors(t *testing.T) {
	_, err := catalog.ReadYAML(strings.NewReader("sections:\n  - name: x\n    columns:\n      - [a, b, c, d, e]\n"))
	assert.Error(t, err)

	_, err = catalog.ReadYAML(strings.NewReader("sections:\n  - name: x\n    constraints:\n      - [PK]\n"))
	assert.Error(t, err)

	_, err = catalog.ReadYAML(strings.NewReader("unknown: field\n"))
	assert.Error(t, err)

	_, err = catalog.ReadYAML(strings.NewReader("title: t\nsections:\n  - \n"))
	assert.Error(t, err)
}

func TestValidate_NilSection(t *testing.T) {
	cat := &catalog.Catalog{Sections: []*catalog.Section{nil}}
	require.Error(t, cat.Validate())
	assert.Contains(t, cat.Validate().Error(), "section 1 is empty")
	assert.Nil(t, cat.Sanitized().Sections[0])
}

func TestSanitized_LabelsAndMeta(t *testing.T) {
	cat := catalog.Default()
	cat.Labels.Columns = "컬럼·정의"
	cat.Labels.ColumnHeaders[3] = "설명\t"
	cat.Labels.ConstraintHeader[0] = "구분★"
	cat.Meta.Creator = "Team·A"
	cat.Meta.Company = "Corp\n"

	clean := cat.Sanitized()
	assert.Equal(t, "컬럼정의", clean.Labels.Columns)
	assert.Equal(t, "설명", clean.Labels.ColumnHeaders[3])
	assert.Equal(t, "구분", clean.Labels.ConstraintHeader[0])
	assert.Equal(t, "TeamA", clean.Meta.Creator)
	assert.Equal(t, "Corp", clean.Meta.Company)
	assert.Equal(t, catalog.DefaultLabels().Written, clean.Labels.Written)
	assert.Equal(t, "컬럼·정의", cat.Labels.Columns)
}

func TestWriteYAML_ReadsBack(t *testing.T) {
	buf := &bytes.Buffer{}
	require.NoError(t, catalog.WriteYAML(buf, catalog.Default()))
	assert.Contains(t, buf.String(), "- [user_id, BIGINT UNSIGNED, ")

	back, err := catalog.ReadYAML(buf)
	require.NoError(t, err)
	if diff := cmp.Diff(catalog.Default(), back); diff != "" {
		t.Errorf("catalog changed on the way through yaml (-want +got):\n%s", diff)
	}
}
