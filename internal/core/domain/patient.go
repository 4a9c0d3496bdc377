package domain

import (
	"github.com/suchimauz/clinic-booking-gateway/internal/core/json_types"
)

type Patient struct {
	ID         int64           `json:"id_paciente"`
	Name       string          `json:"nome"`
	BirthDate  json_types.Date `json:"data_nascimento"`
	Email      string          `json:"email"`
	Phone      string          `json:"telefone,omitempty"`
	NationalID string          `json:"cpf"`
}

type PatientInput struct {
	Name       string          `json:"nome"`
	BirthDate  json_types.Date `json:"data_nascimento"`
	Email      string          `json:"email"`
	Phone      string          `json:"telefone,omitempty"`
	NationalID string          `json:"cpf"`
}
