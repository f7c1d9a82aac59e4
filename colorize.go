package jcolor

import "strings"

// Colorize renders v with one style per value kind. Composite values span
// multiple lines with two spaces of indentation per level; strings are
// printed unquoted and keys quoted.
func Colorize(v *Value, pal ColorPalette) string {
	return formatValue(v, pal)
}

// ColorizeJSON parses pretty-printed JSON and colorizes the result. The
// input must be strict JSON; no rewrite rules are applied.
func ColorizeJSON(src string, pal ColorPalette) (string, error) {
	v, err := parseStrict(src)
	if err != nil {
		return "", err
	}
	return Colorize(v, pal), nil
}

func formatValue(v *Value, pal ColorPalette) string {
	switch v.Kind() {
	case Object:
		return formatObject(v.members, pal)
	case Array:
		return formatArray(v.items, pal)
	case String:
		return paint(pal.String, v.text)
	case Number:
		return paint(pal.Number, v.text)
	case Bool:
		if v.b {
			return paint(pal.Bool, "true")
		}
		return paint(pal.Bool, "false")
	default:
		return paint(pal.Null, "null")
	}
}

func formatObject(members []Member, pal ColorPalette) string {
	var sb strings.Builder
	sb.WriteString("{\n")
	for i, m := range members {
		if i > 0 {
			sb.WriteString(",\n")
		}
		sb.WriteString(`  "`)
		sb.WriteString(paint(pal.Key, m.Key))
		sb.WriteString(`": `)
		sb.WriteString(indentNested(formatValue(m.Value, pal)))
	}
	sb.WriteString("\n}")
	return sb.String()
}

func formatArray(items []*Value, pal ColorPalette) string {
	var sb strings.Builder
	sb.WriteString("[\n")
	for i, item := range items {
		if i > 0 {
			sb.WriteString(",\n")
		}
		sb.WriteString("  ")
		sb.WriteString(indentNested(formatValue(item, pal)))
	}
	sb.WriteString("\n]")
	return sb.String()
}

func indentNested(s string) string {
	return strings.ReplaceAll(s, "\n", "\n  ")
}
