package handlers

import "github.com/Vancheszz/Registry/internal/models"

// Русские подписи для значений, которые API хранит кодами.

var assetTypeLabels = map[string]string{
	models.AssetTypeCase:             "Медицинский кейс",
	models.AssetTypeChangeManagement: "Управление изменениями",
	models.AssetTypeOrangeCase:       "Срочный кейс",
	models.AssetTypeClientRequests:   "Обращения пациентов",
}

var assetStatusLabels = map[string]string{
	models.AssetStatusActive:    "В работе",
	models.AssetStatusCompleted: "Завершён",
	models.AssetStatusOnHold:    "Приостановлен",
}

// Типы приёмов и их шаблонные интервалы времени. Шаблон подставляется
// в форму создания, пользователь может поменять время вручную.
type appointmentType struct {
	Code      string
	Label     string
	StartTime string
	EndTime   string
}

var appointmentTypes = []appointmentType{
	{Code: "consultation", Label: "Консультация", StartTime: "09:00", EndTime: "09:30"},
	{Code: "diagnostics", Label: "Диагностика", StartTime: "10:00", EndTime: "11:00"},
	{Code: "follow_up", Label: "Повторный приём", StartTime: "12:00", EndTime: "12:30"},
	{Code: "procedure", Label: "Процедура", StartTime: "14:00", EndTime: "15:00"},
	// устаревшие смены день/ночь: в новых формах не предлагаются,
	// но в данных ещё встречаются
}

var shiftTypeLabels = map[string]string{
	"consultation": "Консультация",
	"diagnostics":  "Диагностика",
	"follow_up":    "Повторный приём",
	"procedure":    "Процедура",
	"day":          "Дневная смена",
	"night":        "Ночная смена",
}

func shiftTypeLabel(code string) string {
	if label, ok := shiftTypeLabels[code]; ok {
		return label
	}
	return code
}

func assetTypeLabel(code string) string {
	if label, ok := assetTypeLabels[code]; ok {
		return label
	}
	return code
}

func assetStatusLabel(code string) string {
	if label, ok := assetStatusLabels[code]; ok {
		return label
	}
	return code
}

// Месяцы в родительном падеже для заголовка календаря.
var monthNames = [...]string{
	"января", "февраля", "марта", "апреля", "мая", "июня",
	"июля", "августа", "сентября", "октября", "ноября", "декабря",
}

// Месяцы в именительном падеже для навигации.
var monthTitles = [...]string{
	"Январь", "Февраль", "Март", "Апрель", "Май", "Июнь",
	"Июль", "Август", "Сентябрь", "Октябрь", "Ноябрь", "Декабрь",
}
