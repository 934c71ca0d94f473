package main

import (
	"os"

	"github.com/dbsteward/tablespec/lib"
	"github.com/dbsteward/tablespec/lib/docx"
)

func main() {
	ts := lib.NewTableSpec(os.Stderr, docx.SystemClock)
	ts.ArgParse()
	ts.Notice("Done")
}
