package handlers

import (
	"log"
	"strconv"
	"strings"
	"time"

	"github.com/gofiber/fiber/v2"

	"github.com/Vancheszz/Registry/internal/models"
	"github.com/Vancheszz/Registry/internal/schedule"
)

// GetPatientsPage — картотека пациентов. Поиск по q выполняется
// локально по уже загруженному списку: ФИО, полис, телефон.
func GetPatientsPage(c *fiber.Ctx) error {
	q := strings.TrimSpace(c.Query("q"))

	ctx, cancel := withAPITimeout()
	defer cancel()

	patients, err := registry.Patients(ctx, token(c), "")
	if err != nil {
		log.Printf("❌ patients list: %v", err)
		return apiError(c, "Не удалось загрузить картотеку", err)
	}

	filtered := schedule.FilterPatients(patients, q)

	// плитки сводки считаются по полному списку, не по отфильтрованному
	today := time.Now().Format("2006-01-02")
	visitsToday := 0
	withPolicy := 0
	for _, p := range patients {
		if p.LastVisit == today {
			visitsToday++
		}
		if p.PolicyNumber != "" {
			withPolicy++
		}
	}

	return c.Render("patients", fiber.Map{
		"Title":        "Пациенты",
		"User":         currentUser(c),
		"Patients":     filtered,
		"Query":        q,
		"Total":        len(patients),
		"Found":        len(filtered),
		"VisitsToday":  visitsToday,
		"WithPolicy":   withPolicy,
		"ExtraScripts": tplScript(`/static/js/patients.js`),
	})
}

type patientForm struct {
	FullName           string `form:"full_name" json:"full_name"`
	BirthDate          string `form:"birth_date" json:"birth_date"`
	Gender             string `form:"gender" json:"gender"`
	Phone              string `form:"phone" json:"phone"`
	Email              string `form:"email" json:"email"`
	Address            string `form:"address" json:"address"`
	PolicyNumber       string `form:"policy_number" json:"policy_number"`
	BloodType          string `form:"blood_type" json:"blood_type"`
	Allergies          string `form:"allergies" json:"allergies"`
	ChronicConditions  string `form:"chronic_conditions" json:"chronic_conditions"`
	Medications        string `form:"medications" json:"medications"`
	AttendingPhysician string `form:"attending_physician" json:"attending_physician"`
	Notes              string `form:"notes" json:"notes"`
}

func (f *patientForm) payload() models.CreatePatient {
	return models.CreatePatient{
		FullName:           strings.TrimSpace(f.FullName),
		BirthDate:          f.BirthDate,
		Gender:             f.Gender,
		Phone:              strings.TrimSpace(f.Phone),
		Email:              strings.TrimSpace(f.Email),
		Address:            strings.TrimSpace(f.Address),
		PolicyNumber:       strings.TrimSpace(f.PolicyNumber),
		BloodType:          f.BloodType,
		Allergies:          strings.TrimSpace(f.Allergies),
		ChronicConditions:  strings.TrimSpace(f.ChronicConditions),
		Medications:        strings.TrimSpace(f.Medications),
		AttendingPhysician: strings.TrimSpace(f.AttendingPhysician),
		Notes:              strings.TrimSpace(f.Notes),
	}
}

func CreatePatient(c *fiber.Ctx) error {
	var f patientForm
	if err := c.BodyParser(&f); err != nil {
		return jsonError(c, 400, "Неверные данные формы", err)
	}
	if strings.TrimSpace(f.FullName) == "" {
		return jsonError(c, 400, "ФИО пациента обязательно", nil)
	}

	ctx, cancel := withAPITimeout()
	defer cancel()

	created, err := registry.CreatePatient(ctx, token(c), f.payload())
	if err != nil {
		return apiError(c, "Не удалось сохранить пациента", err)
	}
	return jsonOK(c, fiber.Map{"message": "Пациент добавлен", "id": created.ID})
}

// GetPatientByID — JSON карточки для формы редактирования.
func GetPatientByID(c *fiber.Ctx) error {
	id, err := strconv.Atoi(c.Params("id"))
	if err != nil || id <= 0 {
		return jsonError(c, 400, "Некорректный id", err)
	}
	ctx, cancel := withAPITimeout()
	defer cancel()

	patient, err := registry.Patient(ctx, token(c), id)
	if err != nil {
		return apiError(c, "Пациент не найден", err)
	}
	return jsonOK(c, fiber.Map{"patient": patient})
}

func UpdatePatient(c *fiber.Ctx) error {
	id, err := strconv.Atoi(c.Params("id"))
	if err != nil || id <= 0 {
		return jsonError(c, 400, "Некорректный id", err)
	}
	var f patientForm
	if err := c.BodyParser(&f); err != nil {
		return jsonError(c, 400, "Неверные данные формы", err)
	}
	if strings.TrimSpace(f.FullName) == "" {
		return jsonError(c, 400, "ФИО пациента обязательно", nil)
	}

	ctx, cancel := withAPITimeout()
	defer cancel()

	updated, err := registry.UpdatePatient(ctx, token(c), id, f.payload())
	if err != nil {
		return apiError(c, "Не удалось обновить пациента", err)
	}
	return jsonOK(c, fiber.Map{"message": "Карточка обновлена", "id": updated.ID})
}

func DeletePatient(c *fiber.Ctx) error {
	id, err := strconv.Atoi(c.Params("id"))
	if err != nil || id <= 0 {
		return jsonError(c, 400, "Некорректный id", err)
	}
	ctx, cancel := withAPITimeout()
	defer cancel()

	if err := registry.DeletePatient(ctx, token(c), id); err != nil {
		return apiError(c, "Не удалось удалить пациента", err)
	}
	return jsonOK(c, fiber.Map{"message": "Пациент удалён"})
}
