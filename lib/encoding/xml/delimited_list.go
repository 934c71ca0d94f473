package xml

import (
	"encoding/xml"
	"regexp"
	"strings"
)

var spaceCommaRegex = regexp.MustCompile(`[\,\s]+`)

type DelimitedList []string

func ParseDelimitedList(str string) DelimitedList {
	out := DelimitedList{}
	for _, item := range spaceCommaRegex.Split(strings.TrimSpace(str), -1) {
		if item != "" {
			out = append(out, item)
		}
	}
	return out
}

func (self *DelimitedList) UnmarshalXMLAttr(attr xml.Attr) error {
	*self = ParseDelimitedList(attr.Value)
	return nil
}
