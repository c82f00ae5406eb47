package extract

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestCountLogicalLines(t *testing.T) {
	tests := []struct {
		name     string
		text     string
		expected int
	}{
		{
			name:     "empty input",
			text:     "",
			expected: 0,
		},
		{
			name:     "blank lines only",
			text:     "\n\n   \n\t\n",
			expected: 0,
		},
		{
			name:     "inline block comment still counts",
			text:     "// comment\nfn foo() { /* block */ let x = 1; }\n\n",
			expected: 1,
		},
		{
			name:     "multi line block comment interior excluded",
			text:     "fn a() {}\n/*\n interior\n interior\n*/\nfn b() {}\n",
			expected: 2,
		},
		{
			name:     "code after block comment close counts",
			text:     "/* open\n still open */ let x = 1;\n",
			expected: 1,
		},
		{
			name:     "line comment suffix stripped",
			text:     "let x = 1; // trailing\n// full line\n",
			expected: 1,
		},
		{
			name:     "block comment start and end on shared line",
			text:     "let a = 1; /* one */ let b = 2;\n/* only */\n",
			expected: 1,
		},
		{
			name:     "unterminated block comment swallows rest",
			text:     "let x = 1;\n/* open\nlet y = 2;\n",
			expected: 1,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, CountLogicalLines(tt.text))
		})
	}
}
