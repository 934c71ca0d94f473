// Package xml provides parsing for "dbxml" files, the dbsteward
// database definition format.
//
// Objects in this package are focused solely on xml document-model
// level operations. ToIR converts them into the `ir` package types,
// which is what the rest of tablespec works with.
package xml

import (
	"encoding/xml"
	"io"

	"github.com/dbsteward/tablespec/lib/ir"
	"github.com/pkg/errors"
)

// ReadDoc parses a `Document` from an `io.Reader` that returns dbxml
func ReadDoc(r io.Reader) (*Document, error) {
	doc := &Document{}
	err := xml.NewDecoder(r).Decode(doc)
	if err != nil {
		return nil, errors.Wrap(err, "could not unmarshal xml")
	}
	return doc, nil
}

func ReadDef(r io.Reader) (*ir.Definition, error) {
	doc, err := ReadDoc(r)
	if err != nil {
		return nil, err
	}
	return doc.ToIR()
}
