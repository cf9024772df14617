package export

import (
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Vancheszz/Registry/internal/models"
)

func TestHandoversCSVHeaderAndBOM(t *testing.T) {
	csv := HandoversCSV(nil)

	require.True(t, strings.HasPrefix(csv, "\uFEFF"), "файл должен начинаться с BOM")
	assert.Equal(t,
		`"ID","Дата","Время","Передающий","Время приёма (от)","Принимающий","Время приёма (до)","Описание передачи","Активы"`,
		strings.TrimPrefix(csv, "\uFEFF"),
	)
}

func TestHandoversCSVRows(t *testing.T) {
	logs := []models.ExportLog{
		{
			ID:            7,
			Date:          "2024-03-05",
			Time:          "20:05",
			FromShiftUser: "Иванова А.А.",
			FromShiftTime: "08:00",
			ToShiftUser:   "Петров Б.Б.",
			ToShiftTime:   "20:00",
			HandoverNotes: "Передан кейс «Срочный»",
			AssetsInfo:    "Срочный кейс (В работе)",
		},
		{}, // полностью пустая запись
	}

	csv := HandoversCSV(logs)
	lines := strings.Split(csv, "\n")
	require.Len(t, lines, 3)

	assert.Equal(t,
		`"7","2024-03-05","20:05","Иванова А.А.","08:00","Петров Б.Б.","20:00","Передан кейс «Срочный»","Срочный кейс (В работе)"`,
		lines[1],
	)
	// пустые поля заменяются заглушками
	assert.Equal(t,
		`"Не указано","Не указано","Не указано","Не указано","Не указано","Не указано","Не указано","Не указано","Нет активов"`,
		lines[2],
	)
}

func TestHandoversCSVQuoting(t *testing.T) {
	logs := []models.ExportLog{{
		ID:            1,
		HandoverNotes: `Сказал "всё спокойно", ушёл`,
	}}

	csv := HandoversCSV(logs)
	// кавычки удваиваются, запятая остаётся внутри поля
	assert.Contains(t, csv, `"Сказал ""всё спокойно"", ушёл"`)
}

func TestFileName(t *testing.T) {
	now := time.Date(2024, time.March, 5, 23, 59, 0, 0, time.UTC)
	assert.Equal(t, "handovers_export_2024-03-05.csv", FileName(now))
}
