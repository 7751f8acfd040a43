package parser

import "strings"

// sectionStatus is the resolved status of a marked section, ordered
// lowest to highest precedence: Include < RCData < CData < Ignore.
type sectionStatus int

const (
	statusInclude sectionStatus = iota
	statusRCData
	statusCData
	statusIgnore
)

// resolveKeywords splits a whitespace-separated keyword string and
// resolves each to a status, returning the maximum (highest-precedence)
// status. ok is false if any keyword is unrecognized.
func resolveKeywords(keywords string) (status sectionStatus, multiple bool, ok bool) {
	fields := strings.Fields(keywords)
	if len(fields) == 0 {
		return statusInclude, false, true
	}
	status = statusInclude
	for _, f := range fields {
		s, recognized := keywordStatus(f)
		if !recognized {
			return 0, false, false
		}
		if s > status {
			status = s
		}
	}
	return status, len(fields) > 1, true
}

func keywordStatus(keyword string) (sectionStatus, bool) {
	switch strings.ToUpper(keyword) {
	case "INCLUDE", "TEMP":
		return statusInclude, true
	case "RCDATA":
		return statusRCData, true
	case "CDATA":
		return statusCData, true
	case "IGNORE":
		return statusIgnore, true
	default:
		return 0, false
	}
}
