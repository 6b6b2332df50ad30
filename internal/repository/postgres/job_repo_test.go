package postgres

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestEscapeLike(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  string
	}{
		{"empty query stays empty", "", ""},
		{"plain text is untouched", "Engineer", "Engineer"},
		{"percent matches literally", "50%", `50\%`},
		{"underscore matches literally", "go_dev", `go\_dev`},
		{"backslash is escaped first", `C:\jobs`, `C:\\jobs`},
		{"mixed metacharacters", `%_\`, `\%\_\\`},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, escapeLike(tt.input))
		})
	}
}
