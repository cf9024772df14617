package schedule

import (
	"fmt"
	"sort"
	"time"

	"github.com/Vancheszz/Registry/internal/models"
)

// Ячеек в сетке всегда 42: шесть недель по семь дней, неделя с понедельника.
const GridCells = 42

// Day — ячейка календарной сетки. Пустые ячейки (хвосты соседних
// месяцев) имеют Number == 0.
type Day struct {
	Number int
	Date   string
	Shifts []models.Shift
}

// Empty сообщает, что ячейка не принадлежит текущему месяцу.
func (d Day) Empty() bool { return d.Number == 0 }

// MonthGrid строит сетку месяца и раскладывает приёмы по дням.
// В каждом дне дневные (legacy day) смены идут раньше ночных,
// остальные типы сохраняют исходный порядок.
func MonthGrid(year int, month time.Month, shifts []models.Shift) []Day {
	firstDay := time.Date(year, month, 1, 0, 0, 0, 0, time.UTC)
	daysInMonth := firstDay.AddDate(0, 1, -1).Day()

	// Weekday: воскресенье = 0, поэтому сдвигаем так, чтобы понедельник = 0
	offset := (int(firstDay.Weekday()) + 6) % 7

	grid := make([]Day, 0, GridCells)
	for i := 0; i < offset; i++ {
		grid = append(grid, Day{})
	}
	for day := 1; day <= daysInMonth; day++ {
		date := fmt.Sprintf("%04d-%02d-%02d", year, month, day)
		grid = append(grid, Day{
			Number: day,
			Date:   date,
			Shifts: shiftsForDate(shifts, date),
		})
	}
	for len(grid) < GridCells {
		grid = append(grid, Day{})
	}
	return grid
}

func shiftsForDate(shifts []models.Shift, date string) []models.Shift {
	var day []models.Shift
	for _, s := range shifts {
		if s.Date == date {
			day = append(day, s)
		}
	}
	sort.SliceStable(day, func(i, j int) bool {
		return day[i].ShiftType == ShiftTypeDay && day[j].ShiftType == ShiftTypeNight
	})
	return day
}
