package models

import "time"

// Типы, которыми обменивается фронтенд с API регистратуры.
// Поля и json-теги совпадают со схемами удалённого API один в один.

type User struct {
	ID         int       `json:"id"`
	Username   string    `json:"username"`
	Name       string    `json:"name"`
	Position   string    `json:"position"`
	Phone      string    `json:"phone,omitempty"`
	TelegramID string    `json:"telegram_id,omitempty"`
	Email      string    `json:"email,omitempty"`
	IsActive   bool      `json:"is_active"`
	IsAdmin    bool      `json:"is_admin"`
	CreatedAt  time.Time `json:"created_at"`
}

// Shift — приём в расписании. Дата и время приходят строками
// ("2006-01-02" и "15:04"), как их отдаёт API.
type Shift struct {
	ID          int       `json:"id"`
	Date        string    `json:"date"`
	StartTime   string    `json:"start_time"`
	EndTime     string    `json:"end_time"`
	ShiftType   string    `json:"shift_type"`
	UserID      int       `json:"user_id"`
	UserName    string    `json:"user_name"`
	Position    string    `json:"position"`
	PatientID   *int      `json:"patient_id"`
	PatientName string    `json:"patient_name,omitempty"`
	Status      string    `json:"status"`
	Notes       string    `json:"notes,omitempty"`
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`
}

// Допустимые типы медицинских кейсов.
const (
	AssetTypeCase             = "CASE"
	AssetTypeChangeManagement = "CHANGE_MANAGEMENT"
	AssetTypeOrangeCase       = "ORANGE_CASE"
	AssetTypeClientRequests   = "CLIENT_REQUESTS"
)

// Статусы кейса.
const (
	AssetStatusActive    = "Active"
	AssetStatusCompleted = "Completed"
	AssetStatusOnHold    = "On Hold"
)

type Asset struct {
	ID          int       `json:"id"`
	Title       string    `json:"title"`
	Description string    `json:"description"`
	AssetType   string    `json:"asset_type"`
	Status      string    `json:"status"`
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`
}

type Handover struct {
	ID            int       `json:"id"`
	FromShiftID   *int      `json:"from_shift_id"`
	ToShiftID     *int      `json:"to_shift_id"`
	HandoverNotes string    `json:"handover_notes"`
	Assets        []Asset   `json:"assets"`
	CreatedAt     time.Time `json:"created_at"`
}

type Patient struct {
	ID                 int       `json:"id"`
	FullName           string    `json:"full_name"`
	BirthDate          string    `json:"birth_date,omitempty"`
	Gender             string    `json:"gender,omitempty"`
	Phone              string    `json:"phone,omitempty"`
	Email              string    `json:"email,omitempty"`
	Address            string    `json:"address,omitempty"`
	PolicyNumber       string    `json:"policy_number,omitempty"`
	BloodType          string    `json:"blood_type,omitempty"`
	Allergies          string    `json:"allergies,omitempty"`
	ChronicConditions  string    `json:"chronic_conditions,omitempty"`
	Medications        string    `json:"medications,omitempty"`
	AttendingPhysician string    `json:"attending_physician,omitempty"`
	LastVisit          string    `json:"last_visit,omitempty"`
	Notes              string    `json:"notes,omitempty"`
	CreatedAt          time.Time `json:"created_at"`
	UpdatedAt          time.Time `json:"updated_at"`
}

// DashboardSummary считается на сервере, фронтенд его только отображает.
type DashboardSummary struct {
	TotalPatients        int       `json:"total_patients"`
	TotalStaff           int       `json:"total_staff"`
	ActiveCases          int       `json:"active_cases"`
	UpcomingAppointments int       `json:"upcoming_appointments"`
	NextAppointments     []Shift   `json:"next_appointments"`
	RecentPatients       []Patient `json:"recent_patients"`
}
