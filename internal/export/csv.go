// Package export собирает CSV-файл журнала передач из JSON-выгрузки
// /api/handovers/export. Формат повторяет исходную выгрузку: UTF-8 с
// BOM (для Excel), запятые, кавычки экранируются удвоением.
package export

import (
	"strconv"
	"strings"
	"time"

	"github.com/Vancheszz/Registry/internal/models"
)

var headers = []string{
	"ID",
	"Дата",
	"Время",
	"Передающий",
	"Время приёма (от)",
	"Принимающий",
	"Время приёма (до)",
	"Описание передачи",
	"Активы",
}

const bom = "\uFEFF"

// HandoversCSV превращает логи передач в содержимое CSV-файла.
func HandoversCSV(logs []models.ExportLog) string {
	var b strings.Builder
	b.WriteString(bom)
	b.WriteString(joinRow(headers))

	for _, log := range logs {
		id := ""
		if log.ID != 0 {
			id = strconv.Itoa(log.ID)
		}
		row := []string{
			orDefault(id, "Не указано"),
			orDefault(log.Date, "Не указано"),
			orDefault(log.Time, "Не указано"),
			orDefault(log.FromShiftUser, "Не указано"),
			orDefault(log.FromShiftTime, "Не указано"),
			orDefault(log.ToShiftUser, "Не указано"),
			orDefault(log.ToShiftTime, "Не указано"),
			orDefault(log.HandoverNotes, "Не указано"),
			orDefault(log.AssetsInfo, "Нет активов"),
		}
		b.WriteString("\n")
		b.WriteString(joinRow(row))
	}
	return b.String()
}

// FileName — имя файла выгрузки на заданную дату.
func FileName(now time.Time) string {
	return "handovers_export_" + now.Format("2006-01-02") + ".csv"
}

func joinRow(fields []string) string {
	quoted := make([]string, len(fields))
	for i, f := range fields {
		quoted[i] = `"` + strings.ReplaceAll(f, `"`, `""`) + `"`
	}
	return strings.Join(quoted, ",")
}

func orDefault(s, def string) string {
	if s == "" {
		return def
	}
	return s
}

