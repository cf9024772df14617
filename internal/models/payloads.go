package models

// Входящие payload'ы для запросов к API (формы → JSON).

type Credentials struct {
	Username string `json:"username"`
	Password string `json:"password"`
}

// Token — ответ /api/login.
type Token struct {
	AccessToken string `json:"access_token"`
	TokenType   string `json:"token_type"`
}

type CreateUser struct {
	Username   string `json:"username"`
	Password   string `json:"password"`
	Name       string `json:"name"`
	Position   string `json:"position"`
	Phone      string `json:"phone,omitempty"`
	TelegramID string `json:"telegram_id,omitempty"`
	Email      string `json:"email,omitempty"`
	IsAdmin    bool   `json:"is_admin,omitempty"`
}

type UpdateProfile struct {
	Name       string `json:"name"`
	Position   string `json:"position"`
	Phone      string `json:"phone,omitempty"`
	TelegramID string `json:"telegram_id,omitempty"`
	Email      string `json:"email,omitempty"`
}

type CreateShift struct {
	Date      string `json:"date"`
	StartTime string `json:"start_time"`
	EndTime   string `json:"end_time"`
	ShiftType string `json:"shift_type"`
	UserID    int    `json:"user_id"`
	PatientID *int   `json:"patient_id,omitempty"`
	Notes     string `json:"notes,omitempty"`
}

type CreateAsset struct {
	Title       string `json:"title"`
	Description string `json:"description"`
	AssetType   string `json:"asset_type"`
	Status      string `json:"status"`
}

// UpdateAsset — частичное обновление, пустые поля не отправляются.
type UpdateAsset struct {
	Title       string `json:"title,omitempty"`
	Description string `json:"description,omitempty"`
	AssetType   string `json:"asset_type,omitempty"`
	Status      string `json:"status,omitempty"`
}

type CreateHandover struct {
	FromShiftID   *int   `json:"from_shift_id,omitempty"`
	ToShiftID     *int   `json:"to_shift_id,omitempty"`
	HandoverNotes string `json:"handover_notes"`
	AssetIDs      []int  `json:"asset_ids"`
}

type CreatePatient struct {
	FullName           string `json:"full_name"`
	BirthDate          string `json:"birth_date,omitempty"`
	Gender             string `json:"gender,omitempty"`
	Phone              string `json:"phone,omitempty"`
	Email              string `json:"email,omitempty"`
	Address            string `json:"address,omitempty"`
	PolicyNumber       string `json:"policy_number,omitempty"`
	BloodType          string `json:"blood_type,omitempty"`
	Allergies          string `json:"allergies,omitempty"`
	ChronicConditions  string `json:"chronic_conditions,omitempty"`
	Medications        string `json:"medications,omitempty"`
	AttendingPhysician string `json:"attending_physician,omitempty"`
	LastVisit          string `json:"last_visit,omitempty"`
	Notes              string `json:"notes,omitempty"`
}

// ExportLog — одна строка упрощённого лога передач из /api/handovers/export.
type ExportLog struct {
	ID            int    `json:"id"`
	Date          string `json:"date"`
	Time          string `json:"time"`
	FromShiftUser string `json:"from_shift_user"`
	FromShiftTime string `json:"from_shift_time"`
	ToShiftUser   string `json:"to_shift_user"`
	ToShiftTime   string `json:"to_shift_time"`
	HandoverNotes string `json:"handover_notes"`
	AssetsInfo    string `json:"assets_info"`
}

type ExportResponse struct {
	Data    []ExportLog `json:"data"`
	Total   int         `json:"total"`
	Success bool        `json:"success"`
}

// ClearResponse — ответ DELETE /api/handovers/clear.
type ClearResponse struct {
	Message          string `json:"message"`
	DeletedHandovers int    `json:"deleted_handovers"`
	DeletedLogs      int    `json:"deleted_logs"`
}
