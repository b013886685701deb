package cli

import (
	"bufio"
	"bytes"
	"strings"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGetSimpleText(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  string
	}{
		{"line with newline", "hello\n", "hello"},
		{"surrounding spaces trimmed", "  hello  \n", "hello"},
		{"partial line at EOF", "hello", "hello"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var out bytes.Buffer
			got, err := GetSimpleText(bufio.NewReader(strings.NewReader(tt.input)), "Prompt", &out)
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
			assert.Contains(t, out.String(), "Prompt")
		})
	}
}

func TestGetSimpleText_EOFWithoutInput(t *testing.T) {
	var out bytes.Buffer
	_, err := GetSimpleText(bufio.NewReader(strings.NewReader("")), "Prompt", &out)
	assert.Error(t, err)
}

func TestGetPassword(t *testing.T) {
	orig := readPassword
	readPassword = func(fd int) ([]byte, error) { return []byte("s3cret"), nil }
	defer func() { readPassword = orig }()

	var out bytes.Buffer
	pw, err := GetPassword(&out)

	require.NoError(t, err)
	assert.Equal(t, []byte("s3cret"), pw)
	assert.Contains(t, out.String(), "Enter password")
}

func TestGetID(t *testing.T) {
	var out bytes.Buffer
	id, err := GetID(bufio.NewReader(strings.NewReader("42\n")), "Account id", &out)
	require.NoError(t, err)
	assert.Equal(t, int64(42), id)

	_, err = GetID(bufio.NewReader(strings.NewReader("forty-two\n")), "Account id", &out)
	assert.Error(t, err)
}

func TestGetAmount(t *testing.T) {
	var out bytes.Buffer

	amount, err := GetAmount(bufio.NewReader(strings.NewReader("12.30\n")), "Amount", &out)
	require.NoError(t, err)
	assert.True(t, amount.Equal(decimal.RequireFromString("12.30")))

	_, err = GetAmount(bufio.NewReader(strings.NewReader("-5\n")), "Amount", &out)
	assert.Error(t, err, "negative amounts are rejected")

	_, err = GetAmount(bufio.NewReader(strings.NewReader("abc\n")), "Amount", &out)
	assert.Error(t, err)
}
