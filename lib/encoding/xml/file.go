package xml

import (
	"fmt"
	"log/slog"
	"os"
	"path/filepath"

	"github.com/dbsteward/tablespec/lib/ir"
	"github.com/hashicorp/go-multierror"
	"github.com/pkg/errors"
)

func LoadDefinition(file string) (*ir.Definition, []string, error) {
	f, err := os.Open(file)
	if err != nil {
		return nil, nil, errors.Wrapf(err, "could not read dbxml file %s", file)
	}
	defer f.Close()

	doc, err := ReadDoc(f)
	if err != nil {
		return nil, nil, errors.Wrapf(err, "could not parse dbxml file %s", file)
	}
	def, err := doc.ToIR()
	if err != nil {
		return nil, nil, errors.Wrapf(err, "could not convert dbxml file %s", file)
	}
	return def, doc.IncludeFileNames(), nil
}

// XmlComposite loads each file in order, expanding includeFile
// references, and merges them all into a single definition. The result is
// validated; every validation problem is returned as one multierror.
func XmlComposite(l *slog.Logger, files []string) (*ir.Definition, error) {
	var composite *ir.Definition
	for _, file := range files {
		l.Info(fmt.Sprintf("Loading XML %s...", file))
		doc, err := loadExpanded(l, file, map[string]bool{})
		if err != nil {
			return nil, fmt.Errorf("failed to load and parse xml file %s: %w", file, err)
		}
		l.Info(fmt.Sprintf("Compositing XML %s", file))
		composite = CompositeDoc(composite, doc)
	}
	if composite == nil {
		return nil, errors.New("no xml files to composite")
	}

	errs := composite.Validate()
	if len(errs) > 0 {
		return composite, &multierror.Error{
			Errors: errs,
		}
	}
	return composite, nil
}

func CompositeDoc(base, overlay *ir.Definition) *ir.Definition {
	if base == nil {
		base = &ir.Definition{}
	}
	base.Merge(overlay)
	return base
}

func loadExpanded(l *slog.Logger, file string, seen map[string]bool) (*ir.Definition, error) {
	abs, err := filepath.Abs(file)
	if err != nil {
		return nil, errors.Wrapf(err, "could not establish absolute path to file %s", file)
	}
	if seen[abs] {
		return nil, errors.Errorf("include cycle detected at %s", file)
	}
	seen[abs] = true
	defer delete(seen, abs)

	doc, includes, err := LoadDefinition(file)
	if err != nil {
		return nil, err
	}
	for _, include := range includes {
		// if the include is relative, make it relative to the parent file
		if !filepath.IsAbs(include) {
			include = filepath.Join(filepath.Dir(abs), include)
		}
		l.Debug(fmt.Sprintf("Including XML %s from %s", include, file))
		includeDoc, err := loadExpanded(l, include, seen)
		if err != nil {
			return nil, errors.Wrapf(err, "while compositing included file %s from %s", include, file)
		}
		doc = CompositeDoc(doc, includeDoc)
	}
	return doc, nil
}
