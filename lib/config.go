package lib

import (
	"log/slog"

	"github.com/dbsteward/tablespec/lib/config"
)

// Config is everything a single run needs once arguments are resolved
type Config struct {
	Logger      *slog.Logger
	Mode        Mode
	XmlFiles    []string
	CatalogFile string
	Title       string
	Sanitize    bool
	OutputFile  string
	ExportFile  string
	InspectFile string
}

func newConfig(l *slog.Logger, args *config.Args) Config {
	return Config{
		Logger:      l,
		Mode:        modeOf(args),
		XmlFiles:    args.XmlFiles,
		CatalogFile: args.CatalogFile,
		Title:       args.Title,
		Sanitize:    !args.KeepUnicode,
		OutputFile:  args.OutputFile,
		ExportFile:  args.ExportFile,
		InspectFile: args.InspectFile,
	}
}

func modeOf(args *config.Args) Mode {
	switch {
	case len(args.InspectFile) > 0:
		return ModeInspect
	case len(args.ExportFile) > 0:
		return ModeExport
	default:
		return ModeBuild
	}
}

// External reports whether the catalog comes from user files
func (self Config) External() bool {
	return len(self.XmlFiles) > 0 || len(self.CatalogFile) > 0
}
