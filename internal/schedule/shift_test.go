package schedule

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Vancheszz/Registry/internal/models"
)

func mustTime(t *testing.T, value string) time.Time {
	t.Helper()
	parsed, err := time.ParseInLocation("2006-01-02T15:04", value, time.UTC)
	require.NoError(t, err)
	return parsed
}

func TestStatus(t *testing.T) {
	day := models.Shift{Date: "2024-01-10", StartTime: "08:00", EndTime: "20:00", ShiftType: ShiftTypeDay}

	tests := []struct {
		name  string
		shift models.Shift
		now   string
		want  string
	}{
		{"до начала", day, "2024-01-10T07:59", StatusUpcoming},
		{"ровно в начале", day, "2024-01-10T08:00", StatusOngoing},
		{"в середине", day, "2024-01-10T14:00", StatusOngoing},
		{"ровно в конце", day, "2024-01-10T20:00", StatusOngoing},
		{"после конца", day, "2024-01-10T20:01", StatusFinished},
		{
			"ночная смена через полночь",
			models.Shift{Date: "2024-01-10", StartTime: "22:00", EndTime: "06:00", ShiftType: ShiftTypeNight},
			"2024-01-11T02:00",
			StatusOngoing,
		},
		{
			"ночная смена до начала",
			models.Shift{Date: "2024-01-10", StartTime: "22:00", EndTime: "06:00", ShiftType: ShiftTypeNight},
			"2024-01-10T21:00",
			StatusUpcoming,
		},
		{
			"ночная смена после конца",
			models.Shift{Date: "2024-01-10", StartTime: "22:00", EndTime: "06:00", ShiftType: ShiftTypeNight},
			"2024-01-11T06:01",
			StatusFinished,
		},
		{
			"битая дата считается завершённой",
			models.Shift{Date: "не дата", StartTime: "08:00", EndTime: "20:00"},
			"2024-01-10T12:00",
			StatusFinished,
		},
		{
			"битое время считается завершённым",
			models.Shift{Date: "2024-01-10", StartTime: "утро", EndTime: "20:00"},
			"2024-01-10T12:00",
			StatusFinished,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := Status(tt.shift, mustTime(t, tt.now))
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestBoundsOvernightByHourOnly(t *testing.T) {
	// переход через полночь определяется только по часам:
	// 09:00–08:30 трактуется как суточный приём
	shift := models.Shift{Date: "2024-01-10", StartTime: "09:00", EndTime: "08:30"}
	start, end, ok := Bounds(shift, time.UTC)
	require.True(t, ok)
	assert.Equal(t, mustTime(t, "2024-01-10T09:00"), start)
	assert.Equal(t, mustTime(t, "2024-01-11T08:30"), end)

	// а 09:00–09:30 того же часа — обычный короткий приём
	shift.EndTime = "09:30"
	_, end, ok = Bounds(shift, time.UTC)
	require.True(t, ok)
	assert.Equal(t, mustTime(t, "2024-01-10T09:30"), end)
}

func TestFindActive(t *testing.T) {
	shifts := []models.Shift{
		{ID: 1, Date: "2024-01-10", StartTime: "08:00", EndTime: "20:00"},
		{ID: 2, Date: "2024-01-10", StartTime: "22:00", EndTime: "06:00"},
	}

	active := FindActive(shifts, mustTime(t, "2024-01-10T14:00"))
	require.NotNil(t, active)
	assert.Equal(t, 1, active.ID)

	// ночью — вторая, хотя календарная дата уже следующая
	active = FindActive(shifts, mustTime(t, "2024-01-11T03:00"))
	require.NotNil(t, active)
	assert.Equal(t, 2, active.ID)

	assert.Nil(t, FindActive(shifts, mustTime(t, "2024-01-10T21:00")))
	assert.Nil(t, FindActive(nil, mustTime(t, "2024-01-10T12:00")))
}

func TestSuggestNext(t *testing.T) {
	shifts := []models.Shift{
		{ID: 1, Date: "2024-03-05", ShiftType: ShiftTypeDay},
		{ID: 2, Date: "2024-03-05", ShiftType: ShiftTypeNight},
		{ID: 3, Date: "2024-03-06", ShiftType: ShiftTypeDay},
		{ID: 4, Date: "2024-03-06", ShiftType: ShiftTypeNight},
	}

	t.Run("после дневной — ночная того же дня", func(t *testing.T) {
		next := SuggestNext(shifts, shifts[0])
		require.NotNil(t, next)
		assert.Equal(t, 2, next.ID)
	})

	t.Run("после ночной — дневная следующего дня", func(t *testing.T) {
		next := SuggestNext(shifts, shifts[1])
		require.NotNil(t, next)
		assert.Equal(t, 3, next.ID)
	})

	t.Run("пары в графике нет", func(t *testing.T) {
		assert.Nil(t, SuggestNext(shifts, shifts[3]))
	})

	t.Run("несколько кандидатов — первый по списку", func(t *testing.T) {
		withDouble := append([]models.Shift{
			{ID: 10, Date: "2024-03-05", ShiftType: ShiftTypeNight},
		}, shifts...)
		next := SuggestNext(withDouble, models.Shift{Date: "2024-03-05", ShiftType: ShiftTypeDay})
		require.NotNil(t, next)
		assert.Equal(t, 10, next.ID)
	})

	t.Run("битая дата", func(t *testing.T) {
		assert.Nil(t, SuggestNext(shifts, models.Shift{Date: "05.03.2024", ShiftType: ShiftTypeDay}))
	})
}
