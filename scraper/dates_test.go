package scraper

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"vemabot/types"
)

func TestParseDateNumeric(t *testing.T) {
	cases := []struct {
		name string
		raw  string
		want types.Date
	}{
		{"plain", "16. 5. 2025", types.NewDate(2025, time.May, 16)},
		{"no spaces", "16.5.2025", types.NewDate(2025, time.May, 16)},
		{"extra whitespace", "16 .  5 .   2025", types.NewDate(2025, time.May, 16)},
		{"surrounding text", "Publikováno 1. 12. 2024 redakcí", types.NewDate(2024, time.December, 1)},
		{"single digits", "3. 1. 2024", types.NewDate(2024, time.January, 3)},
	}

	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			got, err := ParseDate(c.raw)
			require.NoError(t, err)
			assert.True(t, c.want.Equal(got), "ParseDate(%q) = %s; want %s", c.raw, got, c.want)
		})
	}
}

func TestParseDateMonthWords(t *testing.T) {
	cases := []struct {
		name string
		raw  string
		want time.Month
	}{
		// Czech nominative
		{"cs leden", "1. leden 2025", time.January},
		{"cs unor", "1. únor 2025", time.February},
		{"cs brezen", "1. březen 2025", time.March},
		{"cs duben", "1. duben 2025", time.April},
		{"cs kveten", "1. květen 2025", time.May},
		{"cs cerven", "1. červen 2025", time.June},
		{"cs cervenec", "1. červenec 2025", time.July},
		{"cs srpen", "1. srpen 2025", time.August},
		{"cs zari", "1. září 2025", time.September},
		{"cs rijen", "1. říjen 2025", time.October},
		{"cs listopad", "1. listopad 2025", time.November},
		{"cs prosinec", "1. prosinec 2025", time.December},
		// Czech genitive
		{"cs ledna", "16. ledna 2025", time.January},
		{"cs unora", "16. února 2025", time.February},
		{"cs brezna", "16. března 2025", time.March},
		{"cs dubna", "16. dubna 2025", time.April},
		{"cs kvetna", "16. května 2025", time.May},
		{"cs cervna", "16. června 2025", time.June},
		{"cs cervence", "16. července 2025", time.July},
		{"cs srpna", "16. srpna 2025", time.August},
		{"cs rijna", "16. října 2025", time.October},
		{"cs listopadu", "16. listopadu 2025", time.November},
		{"cs prosince", "16. prosince 2025", time.December},
		// Slovak
		{"sk januar", "5. január 2025", time.January},
		{"sk februar", "5. február 2025", time.February},
		{"sk marec", "5. marec 2025", time.March},
		{"sk april", "5. apríl 2025", time.April},
		{"sk maj", "5. máj 2025", time.May},
		{"sk jun", "5. jún 2025", time.June},
		{"sk jul", "5. júl 2025", time.July},
		{"sk august", "5. august 2025", time.August},
		{"sk september", "5. september 2025", time.September},
		{"sk oktober", "5. október 2025", time.October},
		{"sk november", "5. november 2025", time.November},
		{"sk december", "5. december 2025", time.December},
		// Slovak genitive
		{"sk januara", "5. januára 2025", time.January},
		{"sk oktobra", "5. októbra 2025", time.October},
	}

	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			got, err := ParseDate(c.raw)
			require.NoError(t, err)
			assert.Equal(t, c.want, got.Month())
		})
	}
}

func TestParseDateFailures(t *testing.T) {
	cases := []struct {
		name string
		raw  string
		want error
	}{
		{"empty", "", ErrUnparseableDate},
		{"no date at all", "novinky z blogu", ErrUnparseableDate},
		{"unknown month word", "16. blurg 2025", ErrUnparseableDate},
		{"short month word", "16. ix 2025", ErrUnparseableDate},
		{"day out of range", "32. 1. 2025", ErrInvalidCalendarDate},
		{"month out of range", "16. 13. 2025", ErrInvalidCalendarDate},
		{"day 31 in 30-day month", "31. 4. 2025", ErrInvalidCalendarDate},
		{"feb 30", "30. 2. 2025", ErrInvalidCalendarDate},
	}

	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			_, err := ParseDate(c.raw)
			require.ErrorIs(t, err, c.want)
		})
	}
}

func TestParseDateNumericTakesPriority(t *testing.T) {
	// Both patterns present: the numeric one wins.
	got, err := ParseDate("16. 5. 2025 (16. června 2025)")
	require.NoError(t, err)
	assert.Equal(t, time.May, got.Month())
}

func TestParseDateLeapYear(t *testing.T) {
	got, err := ParseDate("29. 2. 2024")
	require.NoError(t, err)
	assert.Equal(t, 29, got.Day())

	_, err = ParseDate("29. 2. 2025")
	require.ErrorIs(t, err, ErrInvalidCalendarDate)
}
