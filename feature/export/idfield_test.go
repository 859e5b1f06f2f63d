package export_test

import (
	"testing"

	"excel-exporter/feature/export"

	"github.com/stretchr/testify/assert"
)

func cols(names ...string) []export.Column {
	out := make([]export.Column, len(names))
	for i, n := range names {
		out[i] = export.Column{Header: n, Name: n, Type: export.TypeInt}
	}
	return out
}

func TestDetectIDColumn(t *testing.T) {
	tests := []struct {
		name    string
		columns []export.Column
		want    int
	}{
		{"ExactId", cols("Id", "Name"), 0},
		{"ExactIdNotFirst", cols("Name", "Id"), 1},
		{"ExactBeatsSubstring", cols("ActorId", "Id"), 1},
		{"SubstringFallback", cols("ActorId", "Name"), 0},
		{"SubstringCaseInsensitive", cols("Name", "WeaponID"), 1},
		{"NoCandidate", cols("Code", "Name"), -1},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, export.DetectIDColumn(tt.columns))
		})
	}
}

func TestDetectIDField(t *testing.T) {
	assert.Equal(t, "Id", export.DetectIDField([]string{"Name", "Id"}))
	assert.Equal(t, "ActorId", export.DetectIDField([]string{"ActorId", "Name"}))
	assert.Equal(t, "", export.DetectIDField([]string{"Code", "Name"}))
}
