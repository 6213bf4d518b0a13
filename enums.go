package jarkup

import "fmt"

// HeadingLevel is one of the six heading levels. The zero value is H1.
// On the wire a level is the integer 1..6.
type HeadingLevel uint8

const (
	H1 HeadingLevel = iota
	H2
	H3
	H4
	H5
	H6
)

// HeadingLevelFromInt converts a wire integer into a level. Anything outside
// 1..6 is an out_of_range error.
func HeadingLevelFromInt(n int) (HeadingLevel, error) {
	if n < 1 || n > 6 {
		return H1, fmt.Errorf("invalid heading level: %d", n)
	}
	return HeadingLevel(n - 1), nil
}

// Int returns the wire integer for the level.
func (l HeadingLevel) Int() int { return int(l) + 1 }

func (l HeadingLevel) String() string { return fmt.Sprintf("h%d", l.Int()) }

// ListStyle selects bullet or numbered rendering. The zero value is the
// default, ListUnordered.
type ListStyle uint8

const (
	ListUnordered ListStyle = iota
	ListOrdered
)

var listStyleNames = [...]string{"unordered", "ordered"}

func (s ListStyle) String() string {
	if int(s) < len(listStyleNames) {
		return listStyleNames[s]
	}
	return listStyleNames[ListUnordered]
}

// ParseListStyle maps a wire string to a ListStyle.
func ParseListStyle(s string) (ListStyle, bool) {
	for i, n := range listStyleNames {
		if n == s {
			return ListStyle(i), true
		}
	}
	return ListUnordered, false
}

// CalloutType is the flavour of a Callout. The zero value is the default,
// CalloutNote.
type CalloutType uint8

const (
	CalloutNote CalloutType = iota
	CalloutTip
	CalloutImportant
	CalloutWarning
	CalloutCaution
)

var calloutTypeNames = [...]string{"note", "tip", "important", "warning", "caution"}

func (t CalloutType) String() string {
	if int(t) < len(calloutTypeNames) {
		return calloutTypeNames[t]
	}
	return calloutTypeNames[CalloutNote]
}

// ParseCalloutType maps a wire string to a CalloutType.
func ParseCalloutType(s string) (CalloutType, bool) {
	for i, n := range calloutTypeNames {
		if n == s {
			return CalloutType(i), true
		}
	}
	return CalloutNote, false
}

func listStyleValues() []string   { return listStyleNames[:] }
func calloutTypeValues() []string { return calloutTypeNames[:] }
