package exports_test

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"github.com/avetra/hrdesk/modules/hrm/domain/exports"
)

func date(y int, m time.Month, d int) time.Time {
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

func TestFilename(t *testing.T) {
	cases := []struct {
		name  string
		scope exports.Scope
		want  string
	}{
		{"all", exports.All(), "pointages_tous.xlsx"},
		{"single day", exports.SingleDay(date(2024, time.March, 15)), "pointages_2024-03-15.xlsx"},
		{"date range", exports.DateRange(date(2024, time.March, 1), date(2024, time.March, 31)), "pointages_2024-03-01_au_2024-03-31.xlsx"},
		{"month", exports.ForMonth(date(2024, time.March, 1)), "pointages_2024-03.xlsx"},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.want, exports.Filename("pointages", tc.scope))
		})
	}
}

func TestContains(t *testing.T) {
	day := exports.SingleDay(date(2024, time.March, 15))
	assert.True(t, day.Contains(time.Date(2024, time.March, 15, 23, 30, 0, 0, time.UTC)))
	assert.False(t, day.Contains(date(2024, time.March, 16)))

	rng := exports.DateRange(date(2024, time.March, 1), date(2024, time.March, 31))
	assert.True(t, rng.Contains(date(2024, time.March, 1)))
	assert.True(t, rng.Contains(date(2024, time.March, 31)))
	assert.False(t, rng.Contains(date(2024, time.April, 1)))

	month := exports.ForMonth(date(2024, time.March, 1))
	assert.True(t, month.Contains(date(2024, time.March, 31)))
	assert.False(t, month.Contains(date(2024, time.February, 29)))

	assert.True(t, exports.All().Contains(date(1999, time.January, 1)))
}

func TestQuery(t *testing.T) {
	q := exports.DateRange(date(2024, time.March, 1), date(2024, time.March, 31)).Query()
	assert.Equal(t, "range", q.Get("scope"))
	assert.Equal(t, "2024-03-01", q.Get("from"))
	assert.Equal(t, "2024-03-31", q.Get("to"))

	assert.Equal(t, "all", exports.All().Query().Get("scope"))
}
