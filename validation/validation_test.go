package validation

import (
	"math"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Seabass5831/CS-546-Project-Song-Review/models"
)

func TestRequireAll(t *testing.T) {
	assert.NoError(t, RequireAll("a", []string{"x"}, 3.0))
	assert.ErrorIs(t, RequireAll("a", ""), models.ErrMissingParameter)
	assert.ErrorIs(t, RequireAll(nil), models.ErrMissingParameter)

	var ids []string
	assert.ErrorIs(t, RequireAll("a", ids), models.ErrMissingParameter)

	var p *string
	assert.ErrorIs(t, RequireAll(p), models.ErrMissingParameter)
}

func TestCheckString(t *testing.T) {
	got, err := CheckString("  hello  ", "title")
	require.NoError(t, err)
	assert.Equal(t, "hello", got)

	_, err = CheckString("   ", "title")
	assert.ErrorIs(t, err, models.ErrInvalidArgument)
}

func TestCheckID(t *testing.T) {
	got, err := CheckID(" 507f1f77bcf86cd799439011 ", "songId")
	require.NoError(t, err)
	assert.Equal(t, "507f1f77bcf86cd799439011", got)

	for _, bad := range []string{"", "   ", "xyz", "507f1f77bcf86cd79943901"} {
		_, err := CheckID(bad, "songId")
		assert.ErrorIs(t, err, models.ErrInvalidArgument, "id %q", bad)
	}
}

func TestCheckNumber(t *testing.T) {
	// Zero is accepted on purpose; the old falsy-zero rejection was a bug.
	got, err := CheckNumber(0, "stars")
	require.NoError(t, err)
	assert.Equal(t, 0.0, got)

	_, err = CheckNumber(math.NaN(), "stars")
	assert.ErrorIs(t, err, models.ErrInvalidArgument)
	_, err = CheckNumber(math.Inf(1), "stars")
	assert.ErrorIs(t, err, models.ErrInvalidArgument)
}

func TestIsValidDate(t *testing.T) {
	cases := map[string]bool{
		"2024-01-15": true,
		"2024-1-15":  false,
		"01-15-2024": false,
		"2024/01/15": false,
		// Pattern check only: calendar-impossible dates still pass.
		"2024-13-40": true,
	}
	for in, want := range cases {
		assert.Equal(t, want, IsValidDate(in), "date %q", in)
	}
}

func TestIsValidEmail(t *testing.T) {
	assert.True(t, IsValidEmail("u1@x.com"))
	assert.True(t, IsValidEmail("first.last+tag@sub.domain.org"))
	assert.False(t, IsValidEmail("not-an-email"))
	assert.False(t, IsValidEmail("a@b"))
	assert.False(t, IsValidEmail("@x.com"))
}

func TestCheckStringArray(t *testing.T) {
	got, err := CheckStringArray([]string{" pop ", "rock"}, "genre")
	require.NoError(t, err)
	assert.Equal(t, []string{"pop", "rock"}, got)

	_, err = CheckStringArray(nil, "genre")
	assert.ErrorIs(t, err, models.ErrInvalidArgument)
	_, err = CheckStringArray([]string{}, "genre")
	assert.ErrorIs(t, err, models.ErrInvalidArgument)
	_, err = CheckStringArray([]string{"pop", "  "}, "genre")
	assert.ErrorIs(t, err, models.ErrInvalidArgument)
}

func TestFormatDate(t *testing.T) {
	d := time.Date(2024, time.March, 7, 15, 4, 5, 0, time.UTC)
	assert.Equal(t, "2024-03-07", FormatDate(d))
	assert.True(t, IsValidDate(FormatDate(d)))
}
