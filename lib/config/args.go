package config

type Args struct {
	// Global Switches and Flags
	Verbose []bool `arg:"-v" help:"see more detail (verbose). -vvv is not advised for normal use."`
	Quiet   []bool `arg:"-q" help:"see less detail (quiet)."`
	Debug   bool   `arg:"--debug" help:"display extended information about errors. Automatically implies -vv."`

	// Catalog sources, the built-in catalog when neither is given
	XmlFiles    []string `arg:"--xml" help:"build sections from dbsteward xml files, composited in order"`
	CatalogFile string   `arg:"--catalog" help:"build from a yaml catalog file"`
	KeepUnicode bool     `arg:"--keepunicode" help:"do not strip characters outside printable ascii and hangul from loaded text"`
	Title       string   `arg:"--title" help:"override the document title"`

	// Output options
	OutputFile string `arg:"--output" help:"path of the generated document, replaced if it exists"`
	ExportFile string `arg:"--export" help:"write the resolved catalog as yaml instead of a document"`

	// Utilities
	InspectFile string `arg:"--inspect" help:"list the parts of an existing document package"`
}

func (Args) Description() string {
	return "tablespec renders table schema specifications into a Word document"
}
