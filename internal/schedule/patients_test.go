package schedule

import (
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Vancheszz/Registry/internal/models"
)

func TestFilterPatients(t *testing.T) {
	patients := make([]models.Patient, 0, 10)
	for i := 1; i <= 10; i++ {
		patients = append(patients, models.Patient{
			ID:           i,
			FullName:     fmt.Sprintf("Пациент %d", i),
			PolicyNumber: fmt.Sprintf("POL-%04d", i),
			Phone:        fmt.Sprintf("+7 900 000-00-%02d", i),
		})
	}

	t.Run("пустой запрос возвращает всех", func(t *testing.T) {
		assert.Len(t, FilterPatients(patients, ""), 10)
		assert.Len(t, FilterPatients(patients, "   "), 10)
	})

	t.Run("поиск по телефону находит одного", func(t *testing.T) {
		found := FilterPatients(patients, "00-07")
		require.Len(t, found, 1)
		assert.Equal(t, 7, found[0].ID)
	})

	t.Run("регистр не важен", func(t *testing.T) {
		found := FilterPatients(patients, "pol-0003")
		require.Len(t, found, 1)
		assert.Equal(t, 3, found[0].ID)
	})

	t.Run("поиск по ФИО", func(t *testing.T) {
		found := FilterPatients(patients, "пациент 1")
		// «Пациент 1» и «Пациент 10»
		assert.Len(t, found, 2)
	})

	t.Run("ничего не найдено", func(t *testing.T) {
		assert.Empty(t, FilterPatients(patients, "нет такого"))
	})
}
