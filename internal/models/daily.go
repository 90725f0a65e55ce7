package models

import "time"

// DateFormat is the wire format for calendar days.
const DateFormat = "2006-01-02"

// ChecklistAlimentar is the daily diet checklist.
type ChecklistAlimentar struct {
	SemAcucar              bool `json:"sem_acucar"`
	SemAlcool              bool `json:"sem_alcool"`
	SemGluten              bool `json:"sem_gluten"`
	SemRefrigerante        bool `json:"sem_refrigerante"`
	AlimentosNaturais      bool `json:"alimentos_naturais"`
	EvitarIndustrializados bool `json:"evitar_industrializados"`
	FrutasVerduras         bool `json:"frutas_verduras"`
	MastigarAtencao        bool `json:"mastigar_atencao"`
}

// PraticasDiarias are the five daily practices of the method.
type PraticasDiarias struct {
	Agua2L    bool `json:"agua_2l"`
	Exercicio bool `json:"exercicio"`
	Meditacao bool `json:"meditacao"`
	Vacuo     bool `json:"vacuo"`
	Gratidao  bool `json:"gratidao"`
}

// AllDone reports whether every daily practice was checked.
func (p PraticasDiarias) AllDone() bool {
	return p.Agua2L && p.Exercicio && p.Meditacao && p.Vacuo && p.Gratidao
}

// DailyRecord is one day's record of the challenge, keyed by (user, date).
type DailyRecord struct {
	UserID             string             `json:"user_id"`
	Date               string             `json:"date"` // YYYY-MM-DD
	DayNumber          int                `json:"day_number"`
	ChecklistAlimentar ChecklistAlimentar `json:"checklist_alimentar"`
	PraticasDiarias    PraticasDiarias    `json:"praticas_diarias"`
	Sentimentos        string             `json:"sentimentos,omitempty"`
	Desafios           string             `json:"desafios,omitempty"`
	VitoriaDia         string             `json:"vitoria_dia,omitempty"`
	Gratidoes          []string           `json:"gratidoes"`
	CaloriesConsumed   int                `json:"calories_consumed"`
	CaloriesBurned     int                `json:"calories_burned"`
	WaterIntake        int                `json:"water_intake"` // ml
	CreatedAt          time.Time          `json:"created_at"`
	UpdatedAt          time.Time          `json:"updated_at"`
}

// IsComplete reports whether the day counts as done. A day is complete
// when all five daily practices were checked; the diet checklist does not
// gate completion.
func (r DailyRecord) IsComplete() bool {
	return r.PraticasDiarias.AllDone()
}

// DailyRecordUpsert is the payload for creating or updating a daily record.
// Optional sections are omitted when nil and keep their stored values.
type DailyRecordUpsert struct {
	Date               string              `json:"date"`
	DayNumber          int                 `json:"day_number"`
	ChecklistAlimentar *ChecklistAlimentar `json:"checklist_alimentar,omitempty"`
	PraticasDiarias    *PraticasDiarias    `json:"praticas_diarias,omitempty"`
	Sentimentos        string              `json:"sentimentos,omitempty"`
	Desafios           string              `json:"desafios,omitempty"`
	VitoriaDia         string              `json:"vitoria_dia,omitempty"`
	Gratidoes          []string            `json:"gratidoes,omitempty"`
}
