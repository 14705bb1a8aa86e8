package convertcase

import (
	"reflect"
	"testing"
)

func TestSnakeToCamel(t *testing.T) {
	cases := []struct {
		in, want string
	}{
		{"employee_id", "employeeId"},
		{"is_late_entry", "isLateEntry"},
		{"already", "already"},
		{"alreadyCamel", "alreadyCamel"},
		{"a_b_c", "aBC"},
	}
	for _, tc := range cases {
		if got := SnakeToCamel(tc.in); got != tc.want {
			t.Errorf("SnakeToCamel(%q) = %q, want %q", tc.in, got, tc.want)
		}
	}
}

func TestCamelToSnake(t *testing.T) {
	cases := []struct {
		in, want string
	}{
		{"employeeId", "employee_id"},
		{"isLateEntry", "is_late_entry"},
		{"already_snake", "already_snake"},
		{"plain", "plain"},
	}
	for _, tc := range cases {
		if got := CamelToSnake(tc.in); got != tc.want {
			t.Errorf("CamelToSnake(%q) = %q, want %q", tc.in, got, tc.want)
		}
	}
}

func TestToCamelCaseConvertsKeysOnly(t *testing.T) {
	in := map[string]any{
		"employee_id": "emp_123", // value string TIDAK boleh disentuh
		"nested_map": map[string]any{
			"is_late_entry": true,
		},
		"record_list": []any{
			map[string]any{"entity_id": "subuh"},
		},
	}
	want := map[string]any{
		"employeeId": "emp_123",
		"nestedMap": map[string]any{
			"isLateEntry": true,
		},
		"recordList": []any{
			map[string]any{"entityId": "subuh"},
		},
	}
	if got := ToCamelCase(in); !reflect.DeepEqual(got, want) {
		t.Errorf("ToCamelCase = %#v, want %#v", got, want)
	}
}

func TestToSnakeCaseConvertsKeysAndStringValues(t *testing.T) {
	// Asimetri yang disengaja: value string IKUT dikonversi.
	in := map[string]any{
		"employeeId": "empAlpha",
		"count":      3,
	}
	want := map[string]any{
		"employee_id": "emp_alpha",
		"count":       3,
	}
	if got := ToSnakeCase(in); !reflect.DeepEqual(got, want) {
		t.Errorf("ToSnakeCase = %#v, want %#v", got, want)
	}
}

func TestRoundTripRestoresSnakeKeys(t *testing.T) {
	// Object yang berasal dari sumber snake_case: snake→camel→snake balik utuh.
	src := map[string]any{
		"employee_id":   "x",
		"entity_id":     "dzuhur",
		"is_late_entry": false,
		"nested": map[string]any{
			"attendance_status": "hadir",
		},
	}
	got := ToSnakeCase(ToCamelCase(src))
	if !reflect.DeepEqual(got, src) {
		t.Errorf("round-trip = %#v, want %#v", got, src)
	}
}

func TestIdempotence(t *testing.T) {
	camel := map[string]any{"employeeId": "val", "nested": []any{map[string]any{"entityId": 1}}}
	once := ToCamelCase(camel)
	twice := ToCamelCase(once)
	if !reflect.DeepEqual(once, twice) {
		t.Errorf("ToCamelCase tidak idempoten: %#v vs %#v", once, twice)
	}

	snake := map[string]any{"employee_id": "some_val"}
	sOnce := ToSnakeCase(snake)
	sTwice := ToSnakeCase(sOnce)
	if !reflect.DeepEqual(sOnce, sTwice) {
		t.Errorf("ToSnakeCase tidak idempoten: %#v vs %#v", sOnce, sTwice)
	}
}
