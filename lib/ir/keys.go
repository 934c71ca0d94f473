package ir

import (
	"fmt"
	"strings"

	"github.com/dbsteward/tablespec/lib/util"
)

type KeyNames struct {
	Schema  string
	Table   string
	Columns []string
	KeyName string
}

// Qualified returns the referenced columns, each prefixed with the schema
// (if any) and table, e.g. "accounts.account_id"
func (self KeyNames) Qualified() string {
	prefix := util.CondJoin(".", self.Schema, self.Table)
	cols := make([]string, len(self.Columns))
	for i, col := range self.Columns {
		cols[i] = util.CondJoin(".", prefix, col)
	}
	return strings.Join(cols, ", ")
}

func (self KeyNames) String() string {
	return fmt.Sprintf(
		"%s %s (%s)",
		util.CoalesceStr(self.KeyName, "unnamed key"),
		util.CondJoin(".", self.Schema, self.Table),
		util.CoalesceStr(strings.Join(self.Columns, ","), "*"),
	)
}
