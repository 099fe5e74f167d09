package calendar

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	apperrors "github.com/zorak1103/datecalc/internal/errors"
)

func TestParse(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name  string
		input string
		want  Date
	}{
		{name: "in range", input: "1983-06-02", want: Date{1983, 6, 2}},
		{name: "lower boundary", input: "1901-01-01", want: MinDate},
		{name: "upper boundary", input: "2999-12-31", want: MaxDate},
		{name: "unpadded fields", input: "1983-6-2", want: Date{1983, 6, 2}},
		{name: "extra parts ignored", input: "1983-06-02-extra", want: Date{1983, 6, 2}},
		{name: "year before range", input: "0989-01-03", want: MinDate},
		{name: "last day before range", input: "1900-12-31", want: MinDate},
		{name: "year after range", input: "3000-01-01", want: MaxDate},
		{name: "month after range", input: "2999-13-01", want: MaxDate},
		{name: "day after range", input: "2999-12-32", want: MaxDate},
		{name: "month zero at lower year", input: "1901-00-15", want: MinDate},
		{name: "day zero at lower boundary", input: "1901-01-00", want: MinDate},
		{name: "calendar validity not checked", input: "2023-02-30", want: Date{2023, 2, 30}},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			got, err := Parse(tt.input)
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestParse_Errors(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name      string
		input     string
		wantField string
	}{
		{name: "empty", input: "", wantField: "year"},
		{name: "non numeric year", input: "abcd-01-01", wantField: "year"},
		{name: "missing month", input: "1983", wantField: "month"},
		{name: "missing day", input: "1983-06", wantField: "day"},
		{name: "non numeric day", input: "1983-06-xx", wantField: "day"},
		{name: "slash separated", input: "1983/06/02", wantField: "year"},
		{name: "signed field", input: "1983-+6-02", wantField: "month"},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			_, err := Parse(tt.input)
			require.Error(t, err)

			var parseErr *apperrors.ParseError
			require.True(t, errors.As(err, &parseErr), "expected ParseError, got %T", err)
			assert.Equal(t, tt.input, parseErr.Input)
			assert.Equal(t, tt.wantField, parseErr.Field)
		})
	}
}

func TestParse_ClampIsIdempotent(t *testing.T) {
	t.Parallel()

	for _, s := range []string{"0001-01-01", "1901-01-01", "1999-07-04", "2999-12-31", "9999-99-99"} {
		first, err := Parse(s)
		require.NoError(t, err)

		second, err := Parse(first.String())
		require.NoError(t, err)
		assert.Equal(t, first, second, "reparsing %s", s)
	}
}

func TestParseStrict(t *testing.T) {
	t.Parallel()

	got, err := ParseStrict("2024-02-29")
	require.NoError(t, err)
	assert.Equal(t, Date{2024, 2, 29}, got)

	got, err = ParseStrict("1850-03-01")
	require.NoError(t, err)
	assert.Equal(t, MinDate, got, "strict mode still clamps")

	invalid := []string{"1983-6-2", "2023-02-29", "2024-13-01", "2024-00-10", "2024-04-31", "2024-01-00", "83-06-02"}
	for _, s := range invalid {
		_, err := ParseStrict(s)
		var validationErr *apperrors.ValidationError
		assert.True(t, errors.As(err, &validationErr), "ParseStrict(%q) error = %v, want ValidationError", s, err)
	}
}

func TestParseUnclamped(t *testing.T) {
	t.Parallel()

	got, err := ParseUnclamped("0989-01-03")
	require.NoError(t, err)
	assert.Equal(t, Date{989, 1, 3}, got)
	assert.Equal(t, MinDate, Clamp(got))

	_, err = ParseUnclamped("0989-01")
	var parseErr *apperrors.ParseError
	assert.True(t, errors.As(err, &parseErr))
}

func TestValidateStrict(t *testing.T) {
	t.Parallel()

	assert.NoError(t, ValidateStrict("2000-02-29"))
	assert.NoError(t, ValidateStrict("0989-01-03"), "range is not part of strict validation")
	assert.Error(t, ValidateStrict("1900-02-29"))
	assert.Error(t, ValidateStrict(" 2000-01-01"))
}

func TestClamp(t *testing.T) {
	t.Parallel()

	assert.Equal(t, MinDate, Clamp(Date{1900, 12, 31}))
	assert.Equal(t, Date{1901, 1, 2}, Clamp(Date{1901, 1, 2}))
	assert.Equal(t, MaxDate, Clamp(Date{3000, 1, 1}))
	assert.Equal(t, Date{2999, 12, 30}, Clamp(Date{2999, 12, 30}))
}

func TestDate_Compare(t *testing.T) {
	t.Parallel()

	a := Date{2000, 5, 10}
	assert.Equal(t, 0, a.Compare(Date{2000, 5, 10}))
	assert.Equal(t, -1, a.Compare(Date{2001, 1, 1}))
	assert.Equal(t, 1, a.Compare(Date{2000, 4, 30}))
	assert.Equal(t, -1, a.Compare(Date{2000, 5, 11}))
	assert.True(t, a.Before(Date{2000, 5, 11}))
	assert.False(t, a.Before(a))
}

func TestDate_String(t *testing.T) {
	t.Parallel()

	assert.Equal(t, "1983-06-02", Date{1983, 6, 2}.String())
	assert.Equal(t, "1901-01-01", MinDate.String())
	assert.Equal(t, "2999-12-31", MaxDate.String())
}
