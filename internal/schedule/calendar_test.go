package schedule

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Vancheszz/Registry/internal/models"
)

func TestMonthGridShape(t *testing.T) {
	// сетка всегда 42 ячейки, какой бы ни был месяц
	months := []struct {
		year  int
		month time.Month
	}{
		{2024, time.February}, // високосный февраль
		{2024, time.March},
		{2024, time.September}, // 1 сентября — воскресенье, максимальный сдвиг
		{2025, time.December},
	}
	for _, m := range months {
		grid := MonthGrid(m.year, m.month, nil)
		assert.Len(t, grid, GridCells)
	}
}

func TestMonthGridMondayFirst(t *testing.T) {
	// март 2024: 1-е — пятница, перед ним четыре пустых ячейки
	grid := MonthGrid(2024, time.March, nil)
	require.Len(t, grid, GridCells)

	for i := 0; i < 4; i++ {
		assert.True(t, grid[i].Empty(), "ячейка %d должна быть пустой", i)
	}
	assert.Equal(t, 1, grid[4].Number)
	assert.Equal(t, "2024-03-01", grid[4].Date)
	assert.Equal(t, 31, grid[4+30].Number)

	// хвост добит пустыми ячейками
	assert.True(t, grid[GridCells-1].Empty())
}

func TestMonthGridAssignsShifts(t *testing.T) {
	shifts := []models.Shift{
		{ID: 1, Date: "2024-03-05", ShiftType: ShiftTypeNight},
		{ID: 2, Date: "2024-03-05", ShiftType: ShiftTypeDay},
		{ID: 3, Date: "2024-04-05", ShiftType: ShiftTypeDay}, // другой месяц
	}

	grid := MonthGrid(2024, time.March, shifts)

	var day5 Day
	for _, d := range grid {
		if d.Number == 5 {
			day5 = d
			break
		}
	}
	require.Len(t, day5.Shifts, 2)
	// дневная раньше ночной
	assert.Equal(t, 2, day5.Shifts[0].ID)
	assert.Equal(t, 1, day5.Shifts[1].ID)

	// приём другого месяца не попал ни в одну ячейку
	total := 0
	for _, d := range grid {
		total += len(d.Shifts)
	}
	assert.Equal(t, 2, total)
}
