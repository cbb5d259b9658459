package domain

import (
	"fmt"
	"strings"
)

// Kind identifies a quantity kind. Unit symbols are namespaced per kind; a
// symbol is only meaningful together with its kind.
type Kind string

const (
	Flow        Kind = "flow"
	Pressure    Kind = "pressure"
	Temperature Kind = "temperature"
	Length      Kind = "length"
)

// Kinds lists all quantity kinds in presentation order.
func Kinds() []Kind {
	return []Kind{Flow, Pressure, Temperature, Length}
}

// ParseKind maps a user-supplied string to a Kind.
func ParseKind(s string) (Kind, error) {
	k := Kind(strings.ToLower(strings.TrimSpace(s)))
	switch k {
	case Flow, Pressure, Temperature, Length:
		return k, nil
	}
	return "", fmt.Errorf("%w: kind %q", ErrUnknownUnit, s)
}
