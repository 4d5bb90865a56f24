package types_test

import (
	"encoding/json"
	"testing"
	"time"

	"github.com/centsible/backend/internal/types"
	"github.com/stretchr/testify/assert"
)

func TestMonthUnmarshalJSON(t *testing.T) {
	var target struct {
		Month types.Month
	}

	tests := []string{
		`{ "month": "2024-05-12T17:59:23+02:00" }`,
		`{ "month": "2024-05-12" }`,
		`{ "month": "2024-05" }`,
	}

	for _, jsonString := range tests {
		err := json.Unmarshal([]byte(jsonString), &target)

		assert.Nil(t, err)
		assert.Equal(t, types.NewMonth(2024, 5), target.Month)
	}
}

func TestMonthString(t *testing.T) {
	assert.Equal(t, "2024-03", types.NewMonth(2024, 3).String())
	assert.Equal(t, "0033-11", types.NewMonth(33, 11).String())
}

func TestParseMonth(t *testing.T) {
	month, err := types.ParseMonth("2024-03")
	assert.Nil(t, err)
	assert.Equal(t, types.NewMonth(2024, 3), month)

	_, err = types.ParseMonth("not-a-month")
	assert.NotNil(t, err)
}

func TestMonthOf(t *testing.T) {
	// The local date may be in a different month than UTC
	in := time.Date(2024, 4, 1, 1, 30, 0, 0, time.FixedZone("CEST", 2*60*60))
	assert.Equal(t, types.NewMonth(2024, 3), types.MonthOf(in))
}

func TestMonthAddDate(t *testing.T) {
	assert.Equal(t, types.NewMonth(2024, 1), types.NewMonth(2023, 11).AddDate(0, 2))
	assert.Equal(t, types.NewMonth(2022, 4), types.NewMonth(2024, 3).AddDate(0, -23))
}

func TestMonthComparisons(t *testing.T) {
	march := types.NewMonth(2024, 3)
	april := types.NewMonth(2024, 4)

	assert.True(t, march.Before(april))
	assert.True(t, april.After(march))
	assert.True(t, march.Equal(types.NewMonth(2024, 3)))
	assert.False(t, march.IsZero())
	assert.True(t, types.Month{}.IsZero())
}

func TestMonthContains(t *testing.T) {
	march := types.NewMonth(2024, 3)

	assert.True(t, march.Contains(time.Date(2024, 3, 31, 23, 59, 59, 0, time.UTC)))
	assert.False(t, march.Contains(time.Date(2024, 4, 1, 0, 0, 0, 0, time.UTC)))

	// 2024-04-01 01:30 CEST is still 2024-03-31 in UTC
	assert.True(t, march.Contains(time.Date(2024, 4, 1, 1, 30, 0, 0, time.FixedZone("CEST", 2*60*60))))
}
