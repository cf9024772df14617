// Package schedule — чистая логика расписания: статус приёма,
// активная смена, подсказка следующей смены, календарная сетка и
// локальный поиск по пациентам. Никаких запросов и рендеринга —
// только (данные, момент времени) → производный результат.
package schedule

import (
	"strconv"
	"strings"
	"time"

	"github.com/Vancheszz/Registry/internal/models"
)

// Статусы приёма в том виде, в котором они показываются пользователю.
const (
	StatusUpcoming = "ожидается"
	StatusOngoing  = "идёт"
	StatusFinished = "завершён"
)

// Устаревшие типы смен день/ночь: ещё встречаются в данных и задают
// порядок в календаре и ротацию в журнале передач.
const (
	ShiftTypeDay   = "day"
	ShiftTypeNight = "night"
)

// parseClock разбирает "HH:MM" (секунды, если есть, отбрасываются).
func parseClock(s string) (hour, minute int, ok bool) {
	parts := strings.Split(s, ":")
	if len(parts) < 2 {
		return 0, 0, false
	}
	hour, err := strconv.Atoi(parts[0])
	if err != nil {
		return 0, 0, false
	}
	minute, err = strconv.Atoi(parts[1])
	if err != nil {
		return 0, 0, false
	}
	return hour, minute, true
}

// Bounds возвращает моменты начала и конца приёма. Переход через
// полночь определяется только по часам: если час окончания меньше
// часа начала, конец сдвигается на следующий день. Случай вроде
// 09:00–08:30 правило сознательно трактует как суточный приём —
// это известная особенность, унаследованная от исходной системы.
func Bounds(shift models.Shift, loc *time.Location) (start, end time.Time, ok bool) {
	date, err := time.ParseInLocation("2006-01-02", shift.Date, loc)
	if err != nil {
		return time.Time{}, time.Time{}, false
	}
	startHour, startMin, ok := parseClock(shift.StartTime)
	if !ok {
		return time.Time{}, time.Time{}, false
	}
	endHour, endMin, ok := parseClock(shift.EndTime)
	if !ok {
		return time.Time{}, time.Time{}, false
	}

	start = time.Date(date.Year(), date.Month(), date.Day(), startHour, startMin, 0, 0, loc)
	end = time.Date(date.Year(), date.Month(), date.Day(), endHour, endMin, 0, 0, loc)
	if endHour < startHour {
		end = end.AddDate(0, 0, 1)
	}
	return start, end, true
}

// Status классифицирует приём относительно момента now.
func Status(shift models.Shift, now time.Time) string {
	start, end, ok := Bounds(shift, now.Location())
	if !ok {
		return StatusFinished
	}
	switch {
	case now.Before(start):
		return StatusUpcoming
	case !now.After(end):
		return StatusOngoing
	default:
		return StatusFinished
	}
}

// FindActive возвращает первую смену из списка, идущую в момент now,
// либо nil, если такой нет.
func FindActive(shifts []models.Shift, now time.Time) *models.Shift {
	for i := range shifts {
		start, end, ok := Bounds(shifts[i], now.Location())
		if !ok {
			continue
		}
		if !now.Before(start) && !now.After(end) {
			return &shifts[i]
		}
	}
	return nil
}

// SuggestNext подбирает смену, которой логично передать дела:
// после дневной — ночная того же дня, после любой другой — дневная
// следующего дня. Берётся первый кандидат в порядке списка; если
// пары в графике нет, подсказки нет.
func SuggestNext(shifts []models.Shift, from models.Shift) *models.Shift {
	fromDate, err := time.Parse("2006-01-02", from.Date)
	if err != nil {
		return nil
	}

	targetDate := fromDate
	targetType := ShiftTypeDay
	if from.ShiftType == ShiftTypeDay {
		targetType = ShiftTypeNight
	} else {
		targetDate = fromDate.AddDate(0, 0, 1)
	}
	targetDateStr := targetDate.Format("2006-01-02")

	for i := range shifts {
		if shifts[i].Date == targetDateStr && shifts[i].ShiftType == targetType {
			return &shifts[i]
		}
	}
	return nil
}
