package domain_test

import (
	"regexp"
	"testing"

	"github.com/DanielPopoola/gp-payment-gateway/internal/domain"
	"github.com/stretchr/testify/assert"
)

var postalCodeAlphabet = regexp.MustCompile(`^[A-Za-z0-9-]*$`)

func TestSanitizePostalCode(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  string
	}{
		{"empty", "", ""},
		{"strips spaces", "D02 AF30", "D02AF30"},
		{"keeps hyphen", "12345-6789", "12345-6789"},
		{"truncates to ten", "ABCDEFGHIJKLMNOP", "ABCDEFGHIJ"},
		{"strips punctuation", "<script>90210</script>", "script9021"},
		{"drops non-ascii letters", "Zürich-8001", "Zrich-8001"},
		{"only invalid characters", "!@# $%^", ""},
		{"truncates after stripping", "1 2 3 4 5 6 7 8 9 0 1 2", "1234567890"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := domain.SanitizePostalCode(tt.input)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestSanitizePostalCode_Properties(t *testing.T) {
	inputs := []string{
		"", " ", "D02 AF30", "SW1A 1AA", "75008", "K1A 0B1", "----------------",
		"ünïcödé", "tab\tand\nnewline", "1234567890123", "a-b-c-d-e-f-g", "\x00\xff",
	}

	for _, input := range inputs {
		once := domain.SanitizePostalCode(input)
		twice := domain.SanitizePostalCode(once)

		assert.Equal(t, once, twice, "sanitization must be idempotent for %q", input)
		assert.LessOrEqual(t, len(once), domain.MaxPostalCodeLength, "length bound for %q", input)
		assert.Regexp(t, postalCodeAlphabet, once, "alphabet for %q", input)
	}
}

func TestNewSanitizedAddress(t *testing.T) {
	addr := domain.NewSanitizedAddress("D02 AF30")
	assert.Equal(t, "D02AF30", addr.PostalCode)
}
