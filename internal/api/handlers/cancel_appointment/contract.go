package cancel_appointment

import (
	"context"

	"github.com/m04kA/BRB-ScheduleService/internal/service/appointments/models"
)

type AppointmentService interface {
	Cancel(ctx context.Context, appointmentID int64, req *models.CancelAppointmentRequest) error
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
