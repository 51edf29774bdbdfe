package literal

import (
	"reflect"
	"testing"
)

type deepBase struct {
	Level0 string
}

type middle struct {
	deepBase
	Level1 string
}

type leaf struct {
	middle
	Level2 string
}

// TestFieldPlan tests names and order of harvested fields
func TestFieldPlan(t *testing.T) {
	testCases := []struct {
		name  string
		typ   reflect.Type
		names []string
	}{
		{name: "Plain", typ: reflect.TypeFor[movie](), names: []string{"movieId", "title"}},
		{name: "Inherited", typ: reflect.TypeFor[derived](), names: []string{"name", "key", "note"}},
		{name: "Shadowed", typ: reflect.TypeFor[shadowing](), names: []string{"key", "note"}},
		{name: "DeepInheritance", typ: reflect.TypeFor[leaf](), names: []string{"level2", "level1", "level0"}},
		{name: "Ignored", typ: reflect.TypeFor[withIgnored](), names: []string{"visible", "other", "any"}},
		{name: "Empty", typ: reflect.TypeFor[namespace](), names: []string{}},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			plan := fieldsOf(tc.typ)
			names := make([]string, 0, len(plan))
			for _, field := range plan {
				names = append(names, field.name)
			}
			if !reflect.DeepEqual(names, tc.names) {
				t.Errorf("got fields %v, expected %v", names, tc.names)
			}
		})
	}
}

// TestFieldPlanCached tests that the plan is computed once per type
func TestFieldPlanCached(t *testing.T) {
	first := fieldsOf(reflect.TypeFor[show]())
	second := fieldsOf(reflect.TypeFor[show]())
	if len(first) == 0 || &first[0] != &second[0] {
		t.Error("expected the cached plan to be returned")
	}
}

// TestLowerFirst tests field name derivation
func TestLowerFirst(t *testing.T) {
	for in, want := range map[string]string{
		"MovieId": "movieId",
		"Title":   "title",
		"already": "already",
		"X":       "x",
		"Ärger":   "ärger",
		"":        "",
	} {
		if got := lowerFirst(in); got != want {
			t.Errorf("lowerFirst(%q) = %q, expected %q", in, got, want)
		}
	}
}
