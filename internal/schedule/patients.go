package schedule

import (
	"strings"

	"github.com/Vancheszz/Registry/internal/models"
)

// FilterPatients — локальный поиск по уже загруженным карточкам:
// регистронезависимое вхождение подстроки в ФИО, номер полиса или
// телефон. Пустой запрос возвращает список как есть.
func FilterPatients(patients []models.Patient, query string) []models.Patient {
	query = strings.TrimSpace(query)
	if query == "" {
		return patients
	}
	lower := strings.ToLower(query)

	var matched []models.Patient
	for _, p := range patients {
		if strings.Contains(strings.ToLower(p.FullName), lower) ||
			strings.Contains(strings.ToLower(p.PolicyNumber), lower) ||
			strings.Contains(strings.ToLower(p.Phone), lower) {
			matched = append(matched, p)
		}
	}
	return matched
}
