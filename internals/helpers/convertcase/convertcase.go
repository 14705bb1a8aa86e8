// Package convertcase mengubah casing payload di boundary DB ↔ API:
// kolom SQL snake_case, JSON keluar camelCase.
package convertcase

import (
	"regexp"
	"strings"
)

var (
	snakeRe = regexp.MustCompile(`_([a-z0-9])`)
	camelRe = regexp.MustCompile(`([A-Z])`)
)

// SnakeToCamel: "employee_id" → "employeeId". String tanpa underscore tidak berubah.
func SnakeToCamel(s string) string {
	return snakeRe.ReplaceAllStringFunc(s, func(m string) string {
		return strings.ToUpper(m[1:])
	})
}

// CamelToSnake: "employeeId" → "employee_id". String tanpa huruf besar tidak berubah.
func CamelToSnake(s string) string {
	return camelRe.ReplaceAllStringFunc(s, func(m string) string {
		return "_" + strings.ToLower(m)
	})
}

// ToCamelCase mengubah HANYA key map dari snake_case ke camelCase,
// rekursif ke nested map dan array. Value (termasuk string) tidak disentuh.
func ToCamelCase(v any) any {
	switch val := v.(type) {
	case map[string]any:
		out := make(map[string]any, len(val))
		for k, item := range val {
			out[SnakeToCamel(k)] = ToCamelCase(item)
		}
		return out
	case []any:
		out := make([]any, len(val))
		for i, item := range val {
			out[i] = ToCamelCase(item)
		}
		return out
	default:
		return v
	}
}

// ToSnakeCase mengubah key DAN value string dari camelCase ke snake_case
// (asimetris dengan ToCamelCase — memang begitu kontraknya), rekursif.
func ToSnakeCase(v any) any {
	switch val := v.(type) {
	case map[string]any:
		out := make(map[string]any, len(val))
		for k, item := range val {
			out[CamelToSnake(k)] = ToSnakeCase(item)
		}
		return out
	case []any:
		out := make([]any, len(val))
		for i, item := range val {
			out[i] = ToSnakeCase(item)
		}
		return out
	case string:
		return CamelToSnake(val)
	default:
		return v
	}
}
