package data

import "encoding/xml"

// APIResponse represents the XML message envelope returned by the vendor API.
//
// The three top level fields are pointers so that an element missing from the
// reply can be told apart from an element present but empty; the parser treats
// a missing element as a vendor contract violation.
type APIResponse struct {
	XMLName         xml.Name     `xml:"message"`
	Response        *string      `xml:"response"`
	ResponseMessage *string      `xml:"responseMessage"`
	Notice          *string      `xml:"notice"`
	Transaction     *Transaction `xml:"transaction"`
}

// Transaction is the optional sub-map of transaction fields. Field names are
// not fixed: the vendor adds fields over time, so every child element is
// collected as-is and resolved against the inbound field registry later.
type Transaction struct {
	Fields []APIField `xml:",any"`
}

// APIField is a single external-named field within a transaction element.
type APIField struct {
	XMLName xml.Name
	Value   string `xml:",chardata"`
}

// Name returns the external field name.
func (f APIField) Name() string {
	return f.XMLName.Local
}
