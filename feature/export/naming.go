package export

import (
	"strings"
	"unicode"
)

// ToPascalCase normalizes a header into the fixed field-name convention:
// alphanumeric runs are joined, each run starting with an upper-case letter.
// Inner capitalization is preserved, so "max_health" and "MaxHealth" both
// normalize to "MaxHealth".
func ToPascalCase(name string) string {
	var parts []string
	var current strings.Builder
	for _, r := range name {
		if unicode.IsLetter(r) || unicode.IsDigit(r) {
			current.WriteRune(r)
		} else if current.Len() > 0 {
			parts = append(parts, current.String())
			current.Reset()
		}
	}
	if current.Len() > 0 {
		parts = append(parts, current.String())
	}
	if len(parts) == 0 {
		return name
	}

	var b strings.Builder
	for _, part := range parts {
		runes := []rune(part)
		runes[0] = unicode.ToUpper(runes[0])
		b.WriteString(string(runes))
	}
	return b.String()
}

// ToCamelCase is ToPascalCase with a lower-case first letter, used for
// locals in the generated manager.
func ToCamelCase(name string) string {
	pascal := ToPascalCase(name)
	if pascal == "" {
		return pascal
	}
	runes := []rune(pascal)
	runes[0] = unicode.ToLower(runes[0])
	return string(runes)
}
