package gen

import (
	"fmt"
	"regexp"
	"strings"

	"github.com/jsphweid/melodeon/melody"
)

var identifierRegexp = regexp.MustCompile(`^[A-Za-z_][A-Za-z0-9_]*$`)

// CppLiteral renders the melody as the Arduino-side C++ definition, ready to
// paste into a sketch that has the Melody template.
func CppLiteral(m *melody.Melody, name string) (string, error) {
	if !identifierRegexp.MatchString(name) {
		return "", fmt.Errorf("%v is not a valid variable name", name)
	}
	lines := make([]string, 0, m.Len())
	for _, n := range m.Notes() {
		lines = append(lines, fmt.Sprintf("  {%v, %v, %v}", n.Frequency(), n.Offset(), n.Duration()))
	}
	return fmt.Sprintf("const Melody<%v> %v = {{\n%v\n}};", m.Len(), name, strings.Join(lines, ",\n")), nil
}

// GoLiteral renders the melody as a Go melody.New call.
func GoLiteral(m *melody.Melody, name string) (string, error) {
	if !identifierRegexp.MatchString(name) {
		return "", fmt.Errorf("%v is not a valid variable name", name)
	}
	lines := make([]string, 0, m.Len())
	for _, n := range m.Notes() {
		lines = append(lines, fmt.Sprintf("\tnote.New(%v, %v, %v),", n.Frequency(), n.Offset(), n.Duration()))
	}
	return fmt.Sprintf("var %v = melody.New([]note.Note{\n%v\n})", name, strings.Join(lines, "\n")), nil
}
