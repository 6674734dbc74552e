package prompt

import (
	"bytes"
	"errors"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestConfirm(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  bool
	}{
		{name: "lowercase y", input: "y\n", want: true},
		{name: "uppercase Y", input: "Y\n", want: true},
		{name: "padded y", input: "  y \t\n", want: true},
		{name: "y without newline", input: "y", want: true},
		{name: "yes is not accepted", input: "yes\n", want: false},
		{name: "n", input: "n\n", want: false},
		{name: "empty line", input: "\n", want: false},
		{name: "end of input", input: "", want: false},
		{name: "other text", input: "sure\n", want: false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var out bytes.Buffer
			p := New(strings.NewReader(tt.input), &out)

			got, err := p.Confirm("Archive files?")
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
			assert.Equal(t, "Archive files? [y/N]: ", out.String())
		})
	}
}

func TestConfirm_SequentialAnswers(t *testing.T) {
	var out bytes.Buffer
	p := New(strings.NewReader("y\n/tmp/out.zip\nn\n"), &out)

	first, err := p.Confirm("first?")
	require.NoError(t, err)
	assert.True(t, first)

	path, err := p.ReadLine("path: ")
	require.NoError(t, err)
	assert.Equal(t, "/tmp/out.zip", path)

	second, err := p.Confirm("second?")
	require.NoError(t, err)
	assert.False(t, second)
}

func TestReadLine_EOF(t *testing.T) {
	p := New(strings.NewReader(""), &bytes.Buffer{})

	line, err := p.ReadLine("path: ")
	require.NoError(t, err)
	assert.Empty(t, line)
}

type failingReader struct{}

func (failingReader) Read([]byte) (int, error) { return 0, errors.New("broken pipe") }

func TestConfirm_ReadError(t *testing.T) {
	p := New(failingReader{}, &bytes.Buffer{})

	ok, err := p.Confirm("continue?")
	require.Error(t, err)
	assert.False(t, ok)
	assert.Contains(t, err.Error(), "broken pipe")
}
