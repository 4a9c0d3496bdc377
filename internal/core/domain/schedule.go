package domain

import (
	"github.com/suchimauz/clinic-booking-gateway/internal/core/json_types"
)

// ScheduleWindow is a doctor availability window managed through /horarios.
type ScheduleWindow struct {
	ID            int64                `json:"id_horario"`
	DoctorID      int64                `json:"id_medico"`
	AvailableDate json_types.Date      `json:"data_disponivel"`
	StartTime     json_types.TimeOfDay `json:"horario_inicial"`
	EndTime       json_types.TimeOfDay `json:"horario_final"`
}

type ScheduleWindowInput struct {
	DoctorID      int64                `json:"id_medico"`
	AvailableDate json_types.Date      `json:"data_disponivel"`
	StartTime     json_types.TimeOfDay `json:"horario_inicial"`
	EndTime       json_types.TimeOfDay `json:"horario_final"`
}
