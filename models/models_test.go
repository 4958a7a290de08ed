package models

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestSplitList(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  []string
	}{
		{
			name:  "trims and drops empty segments",
			input: "a, b ,,c",
			want:  []string{"a", "b", "c"},
		},
		{
			name:  "single value",
			input: "golang",
			want:  []string{"golang"},
		},
		{
			name:  "preserves order",
			input: "doors open, keynote, workshops, closing",
			want:  []string{"doors open", "keynote", "workshops", "closing"},
		},
		{
			name:  "empty input yields nil",
			input: "",
			want:  nil,
		},
		{
			name:  "only separators and spaces yields nil",
			input: " , ,, ",
			want:  nil,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, SplitList(tt.input))
		})
	}
}
