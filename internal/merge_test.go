package internal

import (
	"testing"

	"github.com/google/go-cmp/cmp"
)

func TestMergeRecursive(t *testing.T) {
	tests := []struct {
		name string
		dst  *Map
		src  any
		want map[string]any
	}{
		{
			name: "DisjointKeys",
			dst:  mapOf("a", 1),
			src:  mapOf("b", 2),
			want: map[string]any{"a": 1, "b": 2},
		},
		{
			name: "NestedMaps",
			dst:  mapOf("p", mapOf("x", 1)),
			src:  mapOf("p", mapOf("y", 2)),
			want: map[string]any{"p": map[string]any{"x": 1, "y": 2}},
		},
		{
			name: "ScalarCollision",
			dst:  mapOf("a", 1),
			src:  mapOf("a", 2),
			want: map[string]any{"a": []any{1, 2}},
		},
		{
			name: "NestedScalarCollision",
			dst:  mapOf("p", mapOf("x", 1)),
			src:  mapOf("p", mapOf("x", 2)),
			want: map[string]any{"p": map[string]any{"x": []any{1, 2}}},
		},
		{
			name: "ListsConcatenate",
			dst:  mapOf("tags", []any{"a", "b"}),
			src:  mapOf("tags", []any{"b", "c"}),
			want: map[string]any{"tags": []any{"a", "b", "b", "c"}},
		},
		{
			name: "ScalarIntoList",
			dst:  mapOf("tags", []any{"a"}),
			src:  mapOf("tags", "b"),
			want: map[string]any{"tags": []any{"a", "b"}},
		},
		{
			name: "ListIntoScalar",
			dst:  mapOf("tags", "a"),
			src:  mapOf("tags", []any{"b", "c"}),
			want: map[string]any{"tags": []any{"a", "b", "c"}},
		},
		{
			name: "MapIntoScalar",
			dst:  mapOf("a", "s"),
			src:  mapOf("a", mapOf("k", 1)),
			want: map[string]any{"a": map[string]any{"0": "s", "k": 1}},
		},
		{
			name: "ScalarIntoMap",
			dst:  mapOf("a", mapOf("k", 1)),
			src:  mapOf("a", "s"),
			want: map[string]any{"a": map[string]any{"k": 1, "0": "s"}},
		},
		{
			name: "NilSurvives",
			dst:  mapOf("a", nil),
			src:  mapOf("a", 1),
			want: map[string]any{"a": []any{nil, 1}},
		},
		{
			name: "ListSourcePushes",
			dst:  mapOf("a", 1, "3", "x"),
			src:  []any{"p", "q"},
			want: map[string]any{"a": 1, "3": "x", "4": "p", "5": "q"},
		},
		{
			name: "IntegerKeysAppend",
			dst:  mapOf("0", "a"),
			src:  mapOf("0", "b"),
			want: map[string]any{"0": "a", "1": "b"},
		},
		{
			name: "IntegerKeysAfterLargest",
			dst:  mapOf("name", "n", "4", "a"),
			src:  mapOf("4", "b", "name", "m", "x", 1),
			want: map[string]any{"name": []any{"n", "m"}, "4": "a", "5": "b", "x": 1},
		},
		{
			name: "NestedIntegerKeys",
			dst:  mapOf("p", mapOf("0", "a")),
			src:  mapOf("p", mapOf("0", "b")),
			want: map[string]any{"p": map[string]any{"0": "a", "1": "b"}},
		},
		{
			name: "IntegerKeyedMapIntoList",
			dst:  mapOf("l", []any{"a"}),
			src:  mapOf("l", mapOf("0", "b", "1", "c")),
			want: map[string]any{"l": []any{"a", "b", "c"}},
		},
		{
			name: "EmptyMapIntoList",
			dst:  mapOf("l", []any{1}),
			src:  mapOf("l", NewMap(0)),
			want: map[string]any{"l": []any{1}},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := MergeRecursive(tt.dst, tt.src)
			if diff := cmp.Diff(tt.want, ExportMap(got)); diff != "" {
				t.Errorf("MergeRecursive mismatch (-want +got):\n%s", diff)
			}
		})
	}

	t.Run("KeyOrder", func(t *testing.T) {
		got := MergeRecursive(mapOf("b", 1, "a", 2), mapOf("c", 3, "b", 4))
		want := []string{"b", "a", "c"}
		if diff := cmp.Diff(want, got.Keys()); diff != "" {
			t.Errorf("key order mismatch (-want +got):\n%s", diff)
		}
	})
}

func TestMergeOverwrite(t *testing.T) {
	tests := []struct {
		name string
		dst  *Map
		src  any
		want map[string]any
	}{
		{
			name: "ScalarCollision",
			dst:  mapOf("a", 1),
			src:  mapOf("a", 2),
			want: map[string]any{"a": 2},
		},
		{
			name: "NestedMaps",
			dst:  mapOf("p", mapOf("x", 1, "y", 1)),
			src:  mapOf("p", mapOf("y", 2)),
			want: map[string]any{"p": map[string]any{"x": 1, "y": 2}},
		},
		{
			name: "ListsReplace",
			dst:  mapOf("tags", []any{"a"}),
			src:  mapOf("tags", []any{"b"}),
			want: map[string]any{"tags": []any{"b"}},
		},
		{
			name: "MapReplacesScalar",
			dst:  mapOf("a", 1),
			src:  mapOf("a", mapOf("k", true)),
			want: map[string]any{"a": map[string]any{"k": true}},
		},
		{
			name: "NilOverwrites",
			dst:  mapOf("a", 1),
			src:  mapOf("a", nil),
			want: map[string]any{"a": nil},
		},
		{
			name: "ListSourcePushes",
			dst:  mapOf("a", 1),
			src:  []any{"x"},
			want: map[string]any{"a": 1, "0": "x"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := MergeOverwrite(tt.dst, tt.src)
			if diff := cmp.Diff(tt.want, ExportMap(got)); diff != "" {
				t.Errorf("MergeOverwrite mismatch (-want +got):\n%s", diff)
			}
		})
	}
}
