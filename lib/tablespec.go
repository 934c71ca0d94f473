package lib

import (
	"io"
	"log/slog"
	"os"

	"github.com/alexflint/go-arg"
	"github.com/pkg/errors"
	"github.com/rs/zerolog"
	"golang.org/x/crypto/ssh/terminal"

	"github.com/dbsteward/tablespec/lib/catalog"
	"github.com/dbsteward/tablespec/lib/config"
	"github.com/dbsteward/tablespec/lib/docx"
	"github.com/dbsteward/tablespec/lib/encoding/xml"
	"github.com/dbsteward/tablespec/lib/util"
)

var Version = "1.0.0"

const DefaultOutputFile = "table-spec.docx"

type TableSpec struct {
	logger zerolog.Logger
	clock  docx.Clock
	config Config
}

// NewTableSpec logs to w, coloring only when w is a terminal, and stamps
// documents with the time read from clock
func NewTableSpec(w io.Writer, clock docx.Clock) *TableSpec {
	noColor := true
	if f, ok := w.(*os.File); ok {
		noColor = !terminal.IsTerminal(int(f.Fd()))
	}
	return &TableSpec{
		logger: zerolog.New(zerolog.ConsoleWriter{Out: w, NoColor: noColor}).With().Timestamp().Logger(),
		clock:  clock,
	}
}

func (self *TableSpec) Logger() *slog.Logger {
	return slog.New(newLogHandler(self))
}

// ArgParse reads os.Args and runs the selected operation, exiting
// through Fatal on any error
func (self *TableSpec) ArgParse() {
	args := &config.Args{OutputFile: DefaultOutputFile}
	arg.MustParse(args)
	if err := self.Run(args); err != nil {
		self.Fatal("%+v", err)
	}
}

// ParseArgs parses argv without touching the process
func ParseArgs(argv []string) (*config.Args, error) {
	args := &config.Args{OutputFile: DefaultOutputFile}
	parser, err := arg.NewParser(arg.Config{Program: "tablespec"}, args)
	if err != nil {
		return nil, errors.Wrap(err, "could not build argument parser")
	}
	if err := parser.Parse(argv); err != nil {
		return nil, errors.Wrap(err, "argument error")
	}
	return args, nil
}

func (self *TableSpec) Run(args *config.Args) error {
	self.setVerbosity(args)

	if len(args.XmlFiles) > 0 && len(args.CatalogFile) > 0 {
		return errors.New("Parameter error: xml and catalog options are not to be mixed")
	}
	if len(args.InspectFile) > 0 && (len(args.XmlFiles) > 0 || len(args.CatalogFile) > 0 || len(args.ExportFile) > 0) {
		return errors.New("Parameter error: inspect does not take a catalog source or export file")
	}
	self.config = newConfig(self.Logger(), args)

	target := self.config.OutputFile
	if self.config.Mode == ModeExport {
		target = self.config.ExportFile
	}
	if self.config.Mode != ModeInspect {
		if len(target) == 0 {
			return errors.New("output file not specified")
		}
		if util.IsDir(target) {
			return errors.Errorf("%s is a directory, must be a file path", target)
		}
		if !util.ParentDirExists(target) {
			return errors.Errorf("directory of %s does not exist", target)
		}
	}
	self.Info("tablespec version %s, mode %s", Version, self.config.Mode)

	switch self.config.Mode {
	case ModeInspect:
		return self.doInspect(self.config.InspectFile)
	case ModeExport:
		return self.doExport(self.config.ExportFile)
	case ModeBuild:
		return self.doBuild(self.config.OutputFile)
	}
	return errors.Errorf("unknown mode %d", self.config.Mode)
}

func (self *TableSpec) Fatal(s string, args ...interface{}) {
	self.logger.Fatal().Msgf(s, args...)
}

func (self *TableSpec) Warning(s string, args ...interface{}) {
	self.logger.Warn().Msgf(s, args...)
}

func (self *TableSpec) Notice(s string, args ...interface{}) {
	self.Info(s, args...)
}

func (self *TableSpec) Info(s string, args ...interface{}) {
	self.logger.Info().Msgf(s, args...)
}

func (self *TableSpec) setVerbosity(args *config.Args) {
	// lower level is higher verbosity
	// we're abusing the fact that zerolog.Level is defined as an int8
	level := zerolog.InfoLevel

	if args.Debug {
		level = zerolog.TraceLevel
	}

	for _, v := range args.Verbose {
		if v {
			level -= 1
		} else {
			level += 1
		}
	}
	for _, q := range args.Quiet {
		if q {
			level += 1
		} else {
			level -= 1
		}
	}

	// clamp it to valid values
	if level > zerolog.PanicLevel {
		level = zerolog.PanicLevel
	}
	if level < zerolog.TraceLevel {
		level = zerolog.TraceLevel
	}

	self.logger = self.logger.Level(level)
}

// loadCatalog resolves the configured source into a validated catalog
func (self *TableSpec) loadCatalog() (*catalog.Catalog, error) {
	var cat *catalog.Catalog
	switch {
	case len(self.config.XmlFiles) > 0:
		self.Info("Compositing %d xml file(s)", len(self.config.XmlFiles))
		def, err := xml.XmlComposite(self.config.Logger, self.config.XmlFiles)
		if err != nil {
			return nil, errors.Wrap(err, "could not composite xml")
		}
		cat = catalog.FromDefinition(def)
	case len(self.config.CatalogFile) > 0:
		self.Info("Loading catalog %s", self.config.CatalogFile)
		var err error
		cat, err = catalog.LoadYAML(self.config.CatalogFile)
		if err != nil {
			return nil, err
		}
	default:
		self.Info("Using built-in catalog")
		cat = catalog.Default()
	}

	if self.config.External() && self.config.Sanitize {
		cat = cat.Sanitized()
	}
	if len(self.config.Title) > 0 {
		cat.Title = self.config.Title
	}
	if err := cat.Validate(); err != nil {
		return nil, errors.Wrap(err, "catalog is invalid")
	}
	return cat, nil
}

func (self *TableSpec) doBuild(outputFile string) error {
	cat, err := self.loadCatalog()
	if err != nil {
		return err
	}
	self.Info("Rendering %d section(s)", len(cat.Sections))
	pkg := docx.Build(cat, self.clock)
	if err := pkg.Save(outputFile); err != nil {
		return err
	}
	self.Notice("Wrote %s", outputFile)
	return nil
}

func (self *TableSpec) doExport(exportFile string) error {
	cat, err := self.loadCatalog()
	if err != nil {
		return err
	}
	if err := catalog.SaveYAML(exportFile, cat); err != nil {
		return err
	}
	self.Notice("Exported %d section(s) to %s", len(cat.Sections), exportFile)
	return nil
}

func (self *TableSpec) doInspect(file string) error {
	pkg, err := docx.ReadPackage(file)
	if err != nil {
		return err
	}
	for _, part := range pkg.Parts {
		self.Notice("%s (%d bytes)", part.Name, len(part.Content))
	}
	return nil
}
