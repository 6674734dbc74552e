package sizespec

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParse_Unit(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  int64
	}{
		{name: "plain bytes", input: "2048", want: 2048},
		{name: "zero", input: "0", want: 0},
		{name: "kilobytes", input: "10KB", want: 10 * 1024},
		{name: "megabytes", input: "10MB", want: 10 * 1024 * 1024},
		{name: "gigabytes", input: "5GB", want: 5 * 1024 * 1024 * 1024},
		{name: "lowercase suffix", input: "3mb", want: 3 * 1024 * 1024},
		{name: "mixed case suffix", input: "7Kb", want: 7 * 1024},
		{name: "surrounding whitespace", input: "  12KB \t", want: 12 * 1024},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := Parse(tt.input, VariantUnit)
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestParse_UnitInvalid(t *testing.T) {
	tests := []struct {
		name    string
		input   string
		wantErr error
	}{
		{name: "letters", input: "abc", wantErr: ErrInvalidFormat},
		{name: "empty", input: "", wantErr: ErrInvalidFormat},
		{name: "fraction", input: "1.5MB", wantErr: ErrInvalidFormat},
		{name: "bare B suffix", input: "100B", wantErr: ErrInvalidFormat},
		{name: "SI unit", input: "10K", wantErr: ErrInvalidFormat},
		{name: "terabytes unsupported", input: "1TB", wantErr: ErrInvalidFormat},
		{name: "suffix only", input: "MB", wantErr: ErrInvalidFormat},
		{name: "negative", input: "-5KB", wantErr: ErrNegative},
		{name: "overflow", input: "9223372036854775807GB", wantErr: ErrOverflow},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := Parse(tt.input, VariantUnit)
			require.Error(t, err)
			assert.ErrorIs(t, err, tt.wantErr)
		})
	}
}

func TestParse_Plain(t *testing.T) {
	got, err := Parse("2048", VariantPlain)
	require.NoError(t, err)
	assert.Equal(t, int64(2048), got)

	_, err = Parse("10MB", VariantPlain)
	assert.ErrorIs(t, err, ErrInvalidFormat)

	got, err = Parse(" 2048 ", VariantPlain)
	require.NoError(t, err, "surrounding whitespace is trimmed like the unit variant")
	assert.Equal(t, int64(2048), got)

	_, err = Parse("20 48", VariantPlain)
	assert.ErrorIs(t, err, ErrInvalidFormat)

	_, err = Parse("-1", VariantPlain)
	assert.ErrorIs(t, err, ErrNegative)
}

func TestParseVariant(t *testing.T) {
	v, err := ParseVariant("")
	require.NoError(t, err)
	assert.Equal(t, VariantUnit, v)

	v, err = ParseVariant("PLAIN")
	require.NoError(t, err)
	assert.Equal(t, VariantPlain, v)
	assert.Equal(t, "plain", v.String())

	_, err = ParseVariant("si")
	assert.Error(t, err)
}

func TestFormat(t *testing.T) {
	assert.Equal(t, "512 bytes", Format(512))
	assert.Equal(t, "1.50 KB", Format(1536))
	assert.Equal(t, "10.00 MB", Format(10*MB))
	assert.Equal(t, "2.00 GB", Format(2*GB))
}
