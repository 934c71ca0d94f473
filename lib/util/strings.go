package util

import "strings"

// joins the listed strings together with the given separator,
// but only if the string is not empty
// e.g. CondJoin(", ", "PK", "", "NOT NULL") results in "PK, NOT NULL"
// whereas strings.Join would result in "PK, , NOT NULL"
func CondJoin(sep string, strs ...string) string {
	out := ""
	for _, s := range strs {
		if s != "" {
			if out != "" {
				out += sep
			}
			out += s
		}
	}
	return out
}

func MaybeStr(cond bool, str string) string {
	return ChooseStr(cond, str, "")
}

func ChooseStr(cond bool, trueStr, falseStr string) string {
	if cond {
		return trueStr
	}
	return falseStr
}

// returns the first non-empty string, or the empty string
func CoalesceStr(strs ...string) string {
	for _, s := range strs {
		if len(s) > 0 {
			return s
		}
	}
	return ""
}

// collapses all runs of whitespace (including newlines) into single spaces
func SquashSpace(str string) string {
	return strings.Join(strings.Fields(str), " ")
}
