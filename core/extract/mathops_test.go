package extract

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestCountMathOperations(t *testing.T) {
	tests := []struct {
		name     string
		text     string
		expected int
	}{
		{
			name:     "no operations",
			text:     "let x = a + b;\n",
			expected: 0,
		},
		{
			name:     "guarded arithmetic weight one",
			text:     "let x = amount.checked_add(fee);\n",
			expected: 1,
		},
		{
			name:     "financial math weight two",
			text:     "let r = sqrt(value);\n",
			expected: 2,
		},
		{
			name:     "bitwise shift weight one",
			text:     "let x = value << 2;\n",
			expected: 1,
		},
		{
			name:     "fixed point type counted per use",
			text:     "let wide: u128 = narrow as u128;\n",
			expected: 2,
		},
		{
			name:     "protocol helper rounds up",
			text:     "let fee = calculate_fee(amount);\n",
			expected: 2,
		},
		{
			name:     "mixed families sum then round",
			text:     "let a = x.checked_mul(y);\nlet fee = calculate_fee(a);\n",
			expected: 3,
		},
		{
			name:     "guarded call containing financial token counts once",
			text:     "let p = base.checked_pow(exponent);\n",
			expected: 1,
		},
		{
			name:     "function declaration line excluded",
			text:     "fn calculate_fee(amount: u64) -> u64 {\n",
			expected: 0,
		},
		{
			name:     "declaration excluded but body counted",
			text:     "fn calculate_fee(amount: u64) -> u64 {\n    amount.checked_mul(FEE_BPS).unwrap()\n}\n",
			expected: 1,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, CountMathOperations("lib.rs", tt.text))
		})
	}
}
