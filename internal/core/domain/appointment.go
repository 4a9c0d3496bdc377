package domain

import (
	"github.com/suchimauz/clinic-booking-gateway/internal/core/json_types"
)

type AppointmentStatus string

const (
	AppointmentStatusScheduled AppointmentStatus = "agendada"
	AppointmentStatusCancelled AppointmentStatus = "cancelada"
	AppointmentStatusDone      AppointmentStatus = "realizada"
)

type Appointment struct {
	ID        int64                `json:"id_consulta"`
	PatientID int64                `json:"id_paciente"`
	DoctorID  int64                `json:"id_medico"`
	Date      json_types.Date      `json:"data_consulta"`
	Time      json_types.TimeOfDay `json:"horario_consulta"`
	Status    AppointmentStatus    `json:"status"`
}

// BookingRequest is the write payload for POST /consultas/{id_medico}/agendar.
type BookingRequest struct {
	PatientID int64                `json:"id_paciente"`
	DoctorID  int64                `json:"id_medico"`
	Date      json_types.Date      `json:"data_consulta"`
	Time      json_types.TimeOfDay `json:"horario_consulta"`
}
