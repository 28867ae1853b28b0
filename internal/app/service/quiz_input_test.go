package service

import (
	"encoding/json"
	"reflect"
	"testing"
)

func TestNormalizeScores(t *testing.T) {
	tests := []struct {
		name string
		raw  string
		want []float64
	}{
		{"plain array", `[80, 90, 70]`, []float64{80, 90, 70}},
		{"object with quiz key", `{"quiz": [10, 20]}`, []float64{10, 20}},
		{"object with scores key", `{"scores": [55]}`, []float64{55}},
		{"quiz key preferred over scores", `{"quiz": [1], "scores": [2]}`, []float64{1}},
		{"empty array stays empty", `[]`, []float64{}},
		{"null", `null`, nil},
		{"absent", ``, nil},
		{"object without known keys", `{"answers": [1, 2]}`, nil},
		{"garbage", `"not scores"`, nil},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := normalizeScores(json.RawMessage(tt.raw))
			if !reflect.DeepEqual(got, tt.want) {
				t.Errorf("normalizeScores(%s) = %v, want %v", tt.raw, got, tt.want)
			}
		})
	}
}

func TestParseFlexibleID(t *testing.T) {
	tests := []struct {
		name   string
		raw    string
		want   int64
		wantOK bool
	}{
		{"number", `7`, 7, true},
		{"digit string", `"7"`, 7, true},
		{"padded digit string", `" 7 "`, 7, true},
		{"zero is not an id", `0`, 0, false},
		{"negative", `-3`, 0, false},
		{"null", `null`, 0, false},
		{"absent", ``, 0, false},
		{"non-digit string", `"abc"`, 0, false},
		{"float", `1.5`, 0, false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, ok := parseFlexibleID(json.RawMessage(tt.raw))
			if got != tt.want || ok != tt.wantOK {
				t.Errorf("parseFlexibleID(%s) = (%d, %v), want (%d, %v)", tt.raw, got, ok, tt.want, tt.wantOK)
			}
		})
	}
}
