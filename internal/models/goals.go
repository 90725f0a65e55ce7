package models

import "time"

// UserGoals holds the goal-setting answers for the 21-day challenge.
// There is at most one per user; CreatedAt is the epoch from which day
// numbers are computed.
type UserGoals struct {
	UserID             string    `json:"user_id"`
	MetaPrincipal      string    `json:"meta_principal"`
	DesejoTransformar  string    `json:"desejo_transformar"`
	SentimentoDesejado string    `json:"sentimento_desejado"`
	PesoInicial        string    `json:"peso_inicial,omitempty"`
	MedidasIniciais    string    `json:"medidas_iniciais,omitempty"`
	Compromisso        string    `json:"compromisso"`
	CreatedAt          time.Time `json:"created_at"`
}

// UserGoalsCreate is the payload for creating or replacing user goals.
type UserGoalsCreate struct {
	MetaPrincipal      string `json:"meta_principal"`
	DesejoTransformar  string `json:"desejo_transformar"`
	SentimentoDesejado string `json:"sentimento_desejado"`
	PesoInicial        string `json:"peso_inicial,omitempty"`
	MedidasIniciais    string `json:"medidas_iniciais,omitempty"`
	Compromisso        string `json:"compromisso"`
}
