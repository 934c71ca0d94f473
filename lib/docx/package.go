package docx

import (
	"archive/zip"
	"bytes"
	"io"
	"io/ioutil"
	"os"
	"path/filepath"

	"github.com/pkg/errors"

	"github.com/dbsteward/tablespec/lib/catalog"
)

// Part is one named entry of the package
type Part struct {
	Name    string
	Content []byte
}

// Package is an ordered set of parts held in memory until written
type Package struct {
	Parts []Part
}

// Build renders the catalog into the seven package parts. The clock is
// read once so the document and core properties agree.
func Build(cat *catalog.Catalog, clock Clock) *Package {
	now := clock.Now()
	return &Package{
		Parts: []Part{
			{PartContentTypes, []byte(contentTypesXML())},
			{PartRootRels, []byte(rootRelsXML())},
			{PartDocument, []byte(DocumentXML(cat, now))},
			{PartDocumentRels, []byte(documentRelsXML())},
			{PartStyles, []byte(stylesXML())},
			{PartCore, []byte(CoreXML(cat.Meta, now))},
			{PartApp, []byte(AppXML(cat.Meta))},
		},
	}
}

func (self *Package) PartNames() []string {
	out := make([]string, len(self.Parts))
	for i, part := range self.Parts {
		out[i] = part.Name
	}
	return out
}

func (self *Package) TryGetPart(name string) *Part {
	for i := range self.Parts {
		if self.Parts[i].Name == name {
			return &self.Parts[i]
		}
	}
	return nil
}

// WriteTo writes the parts as a deflate-compressed zip in order
func (self *Package) WriteTo(w io.Writer) (int64, error) {
	cw := &countingWriter{w: w}
	zw := zip.NewWriter(cw)
	for _, part := range self.Parts {
		fw, err := zw.Create(part.Name)
		if err != nil {
			return cw.n, errors.Wrapf(err, "could not create part %s", part.Name)
		}
		if _, err := fw.Write(part.Content); err != nil {
			return cw.n, errors.Wrapf(err, "could not write part %s", part.Name)
		}
	}
	if err := zw.Close(); err != nil {
		return cw.n, errors.Wrap(err, "could not finish archive")
	}
	return cw.n, nil
}

// Bytes encodes the whole archive
func (self *Package) Bytes() ([]byte, error) {
	buf := &bytes.Buffer{}
	if _, err := self.WriteTo(buf); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

// Save encodes the archive in memory, then replaces path with it. Nothing
// is written if encoding fails. An existing file keeps its permissions,
// a new one is created 0644.
func (self *Package) Save(path string) error {
	data, err := self.Bytes()
	if err != nil {
		return err
	}
	tmp, err := ioutil.TempFile(filepath.Dir(path), "."+filepath.Base(path)+".*")
	if err != nil {
		return errors.Wrapf(err, "could not create temporary file for %s", path)
	}
	defer os.Remove(tmp.Name())
	if _, err := tmp.Write(data); err != nil {
		tmp.Close()
		return errors.Wrapf(err, "could not write %s", path)
	}
	if err := tmp.Close(); err != nil {
		return errors.Wrapf(err, "could not write %s", path)
	}
	mode := os.FileMode(0644)
	if info, err := os.Stat(path); err == nil {
		mode = info.Mode().Perm()
	}
	if err := os.Chmod(tmp.Name(), mode); err != nil {
		return errors.Wrapf(err, "could not set mode on %s", path)
	}
	if err := os.Rename(tmp.Name(), path); err != nil {
		return errors.Wrapf(err, "could not replace %s", path)
	}
	return nil
}

// ReadPackage opens an existing archive and loads every part
func ReadPackage(path string) (*Package, error) {
	data, err := ioutil.ReadFile(path)
	if err != nil {
		return nil, errors.Wrapf(err, "could not read %s", path)
	}
	pkg, err := DecodePackage(data)
	return pkg, errors.Wrapf(err, "could not open package %s", path)
}

// DecodePackage loads every part of an archive held in memory
func DecodePackage(data []byte) (*Package, error) {
	zr, err := zip.NewReader(bytes.NewReader(data), int64(len(data)))
	if err != nil {
		return nil, errors.Wrap(err, "not a zip archive")
	}
	pkg := &Package{}
	for _, file := range zr.File {
		rc, err := file.Open()
		if err != nil {
			return nil, errors.Wrapf(err, "could not open part %s", file.Name)
		}
		content, err := ioutil.ReadAll(rc)
		rc.Close()
		if err != nil {
			return nil, errors.Wrapf(err, "could not read part %s", file.Name)
		}
		pkg.Parts = append(pkg.Parts, Part{file.Name, content})
	}
	return pkg, nil
}

type countingWriter struct {
	w io.Writer
	n int64
}

func (self *countingWriter) Write(p []byte) (int, error) {
	n, err := self.w.Write(p)
	self.n += int64(n)
	return n, err
}
