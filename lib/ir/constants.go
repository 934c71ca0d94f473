package ir

import (
	"fmt"
	"strings"
)

type SqlFormat string

const (
	SqlFormatUnknown SqlFormat = ""
	SqlFormatPgsql8  SqlFormat = "pgsql8"
	SqlFormatMssql10 SqlFormat = "mssql10"
	SqlFormatMysql5  SqlFormat = "mysql5"
)

func NewSqlFormat(from string) (SqlFormat, error) {
	to := SqlFormat(from)
	if to.Equals(SqlFormatUnknown) || to.Equals(SqlFormatPgsql8) || to.Equals(SqlFormatMysql5) || to.Equals(SqlFormatMssql10) {
		return SqlFormat(strings.ToLower(from)), nil
	}
	return to, fmt.Errorf("unknown SqlFormat: '%s'", from)
}

func (sf SqlFormat) Equals(other SqlFormat) bool {
	return strings.EqualFold(string(sf), string(other))
}
