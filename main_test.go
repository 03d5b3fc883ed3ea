package main

import (
	"reflect"
	"testing"
)

func TestParseValue(t *testing.T) {
	tests := []struct {
		in   string
		want interface{}
	}{
		{"5", float64(5)},
		{"true", true},
		{`"quoted"`, "quoted"},
		{"hello", "hello"},
		{`[1,2]`, []interface{}{float64(1), float64(2)}},
	}
	for _, tt := range tests {
		if got := parseValue(tt.in); !reflect.DeepEqual(got, tt.want) {
			t.Errorf("%q: got %#v; want %#v", tt.in, got, tt.want)
		}
	}
}

func TestParseParams(t *testing.T) {
	positional, named := parseParams([]string{"Testing!", "5"})
	if want := []interface{}{"Testing!", float64(5)}; !reflect.DeepEqual(positional, want) {
		t.Errorf("got: %#v; want %#v", positional, want)
	}
	if named != nil {
		t.Errorf("unexpected named params: %#v", named)
	}

	positional, named = parseParams([]string{"message=First!", "count=2"})
	if positional != nil {
		t.Errorf("unexpected positional params: %#v", positional)
	}
	want := map[string]interface{}{"message": "First!", "count": float64(2)}
	if !reflect.DeepEqual(named, want) {
		t.Errorf("got: %#v; want %#v", named, want)
	}
}
