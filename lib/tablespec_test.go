package lib_test

import (
	"bytes"
	"io/ioutil"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dbsteward/tablespec/lib"
	"github.com/dbsteward/tablespec/lib/catalog"
	"github.com/dbsteward/tablespec/lib/config"
	"github.com/dbsteward/tablespec/lib/docx"
)

var testClock = docx.FixedClock(time.Date(2024, 3, 5, 9, 7, 1, 0, time.UTC))

func newTestTableSpec() (*lib.TableSpec, *bytes.Buffer) {
	buf := &bytes.Buffer{}
	return lib.NewTableSpec(buf, testClock), buf
}

func tempDir(t *testing.T) string {
	dir, err := ioutil.TempDir("", "tablespec")
	require.NoError(t, err)
	t.Cleanup(func() { os.RemoveAll(dir) })
	return dir
}

func documentOf(t *testing.T, path string) string {
	pkg, err := docx.ReadPackage(path)
	require.NoError(t, err)
	part := pkg.TryGetPart(docx.PartDocument)
	require.NotNil(t, part)
	return string(part.Content)
}

func TestParseArgs(t *testing.T) {
	args, err := lib.ParseArgs([]string{"--xml", "a.xml", "b.xml", "--title", "Custom"})
	require.NoError(t, err)
	assert.Equal(t, []string{"a.xml", "b.xml"}, args.XmlFiles)
	assert.Equal(t, "Custom", args.Title)
	assert.Equal(t, lib.DefaultOutputFile, args.OutputFile)
	assert.False(t, args.KeepUnicode)

	_, err = lib.ParseArgs([]string{"--nope"})
	assert.Error(t, err)
}

func TestRun_BuildsDefaultCatalog(t *testing.T) {
	ts, logs := newTestTableSpec()
	out := filepath.Join(tempDir(t), "spec.docx")

	require.NoError(t, ts.Run(&config.Args{OutputFile: out}))

	want, err := docx.Build(catalog.Default(), testClock).Bytes()
	require.NoError(t, err)
	got, err := ioutil.ReadFile(out)
	require.NoError(t, err)
	assert.True(t, bytes.Equal(want, got))
	assert.Contains(t, logs.String(), "Using built-in catalog")
}

func TestRun_RejectsMixedSources(t *testing.T) {
	ts, _ := newTestTableSpec()
	out := filepath.Join(tempDir(t), "spec.docx")
	err := ts.Run(&config.Args{
		XmlFiles:    []string{filepath.Join("encoding", "xml", "testdata", "bank.xml")},
		CatalogFile: filepath.Join("catalog", "testdata", "ledger.yaml"),
		OutputFile:  out,
	})
	assert.Error(t, err)
	_, statErr := os.Stat(out)
	assert.True(t, os.IsNotExist(statErr))
}

func TestRun_BuildsFromXml(t *testing.T) {
	ts, _ := newTestTableSpec()
	out := filepath.Join(tempDir(t), "bank.docx")

	require.NoError(t, ts.Run(&config.Args{
		XmlFiles:   []string{filepath.Join("encoding", "xml", "testdata", "bank.xml")},
		OutputFile: out,
	}))

	doc := documentOf(t, out)
	assert.Contains(t, doc, ">bank 스키마 테이블명세서<")
	assert.Contains(t, doc, ">users (테이블)<")
	assert.Contains(t, doc, ">accounts (테이블)<")
	assert.Contains(t, doc, ">User accounts &amp; admins<")
}

func TestRun_TitleOverride(t *testing.T) {
	ts, _ := newTestTableSpec()
	out := filepath.Join(tempDir(t), "ledger.docx")

	require.NoError(t, ts.Run(&config.Args{
		CatalogFile: filepath.Join("catalog", "testdata", "ledger.yaml"),
		Title:       "Ledger <v2>",
		OutputFile:  out,
	}))

	doc := documentOf(t, out)
	assert.Contains(t, doc, ">Ledger &lt;v2&gt;<")
	assert.NotContains(t, doc, "Ledger &amp; Audit")
	assert.Contains(t, doc, ">Ledger tables for the &lt;audit&gt; service.<")
}

func TestRun_SanitizesExternalText(t *testing.T) {
	dir := tempDir(t)
	src := filepath.Join(dir, "catalog.yaml")
	require.NoError(t, ioutil.WriteFile(src, []byte(`title: 고객·계좌
meta:
  company: Bank·Co
labels:
  columns: 컬럼·목록
sections:
  - name: t
    kind: 테이블
    description: "Tab\there"
    columns:
      - [id, INT, PK, 식별자·ID]
    constraints:
      - [PK, PRIMARY KEY (id)]
`), 0644))

	ts, _ := newTestTableSpec()
	clean := filepath.Join(dir, "clean.docx")
	require.NoError(t, ts.Run(&config.Args{CatalogFile: src, OutputFile: clean}))
	doc := documentOf(t, clean)
	assert.Contains(t, doc, ">고객계좌<")
	assert.Contains(t, doc, ">식별자ID<")
	assert.Contains(t, doc, ">Tabhere<")
	assert.Contains(t, doc, ">컬럼목록<")
	pkg, err := docx.ReadPackage(clean)
	require.NoError(t, err)
	assert.Contains(t, string(pkg.TryGetPart(docx.PartApp).Content), "<Company>BankCo</Company>")

	ts, _ = newTestTableSpec()
	raw := filepath.Join(dir, "raw.docx")
	require.NoError(t, ts.Run(&config.Args{CatalogFile: src, OutputFile: raw, KeepUnicode: true}))
	doc = documentOf(t, raw)
	assert.Contains(t, doc, ">고객·계좌<")
	assert.Contains(t, doc, ">식별자·ID<")
	assert.Contains(t, doc, ">컬럼·목록<")
}

func TestRun_InvalidCatalogWritesNothing(t *testing.T) {
	dir := tempDir(t)
	src := filepath.Join(dir, "catalog.yaml")
	require.NoError(t, ioutil.WriteFile(src, []byte("sections:\n  - name: empty\n"), 0644))

	ts, _ := newTestTableSpec()
	out := filepath.Join(dir, "out.docx")
	assert.Error(t, ts.Run(&config.Args{CatalogFile: src, OutputFile: out}))
	_, err := os.Stat(out)
	assert.True(t, os.IsNotExist(err))
}

func TestRun_Export(t *testing.T) {
	ts, _ := newTestTableSpec()
	dir := tempDir(t)
	exported := filepath.Join(dir, "catalog.yaml")

	require.NoError(t, ts.Run(&config.Args{OutputFile: lib.DefaultOutputFile, ExportFile: exported}))

	back, err := catalog.LoadYAML(exported)
	require.NoError(t, err)
	if diff := cmp.Diff(catalog.Default(), back); diff != "" {
		t.Errorf("exported catalog differs (-want +got):\n%s", diff)
	}
	_, err = os.Stat(filepath.Join(dir, lib.DefaultOutputFile))
	assert.True(t, os.IsNotExist(err))
}

func TestRun_Inspect(t *testing.T) {
	out := filepath.Join(tempDir(t), "spec.docx")
	ts, _ := newTestTableSpec()
	require.NoError(t, ts.Run(&config.Args{OutputFile: out}))

	ts, logs := newTestTableSpec()
	require.NoError(t, ts.Run(&config.Args{OutputFile: lib.DefaultOutputFile, InspectFile: out}))
	for _, name := range []string{
		docx.PartContentTypes, docx.PartRootRels, docx.PartDocument, docx.PartDocumentRels,
		docx.PartStyles, docx.PartCore, docx.PartApp,
	} {
		assert.Contains(t, logs.String(), name)
	}

	ts, _ = newTestTableSpec()
	assert.Error(t, ts.Run(&config.Args{OutputFile: lib.DefaultOutputFile, InspectFile: out + ".missing"}))
}

func TestRun_Verbosity(t *testing.T) {
	ts, logs := newTestTableSpec()
	out := filepath.Join(tempDir(t), "spec.docx")
	require.NoError(t, ts.Run(&config.Args{OutputFile: out, Quiet: []bool{true}}))
	assert.NotContains(t, logs.String(), "Using built-in catalog")
}

func TestRun_ChecksOutputPath(t *testing.T) {
	dir := tempDir(t)

	ts, _ := newTestTableSpec()
	assert.Error(t, ts.Run(&config.Args{OutputFile: dir}))

	ts, _ = newTestTableSpec()
	assert.Error(t, ts.Run(&config.Args{OutputFile: filepath.Join(dir, "missing", "spec.docx")}))

	ts, _ = newTestTableSpec()
	assert.Error(t, ts.Run(&config.Args{}))
}
