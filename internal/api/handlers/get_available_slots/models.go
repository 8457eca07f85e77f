package get_available_slots

import (
	"strconv"
	"strings"
	"time"

	"github.com/m04kA/BRB-ScheduleService/internal/domain"
	getAvailableSlots "github.com/m04kA/BRB-ScheduleService/internal/usecase/get_available_slots"
)

// AvailableSlotsResponse HTTP response model
type AvailableSlotsResponse struct {
	Date            string          `json:"date"`
	ProfessionalID  int64           `json:"professionalId"`
	IsOpen          bool            `json:"isOpen"`
	DurationMinutes int             `json:"durationMinutes"`
	Slots           []AvailableSlot `json:"slots"`
}

// AvailableSlot модель временного слота
type AvailableSlot struct {
	StartTime string `json:"startTime"`
	EndTime   string `json:"endTime"`
}

// FromUseCaseResponse конвертирует ответ use case в HTTP response
func FromUseCaseResponse(resp *getAvailableSlots.Response) *AvailableSlotsResponse {
	slots := make([]AvailableSlot, len(resp.Slots))
	for i, slot := range resp.Slots {
		slots[i] = AvailableSlot{
			StartTime: slot.StartTime.String(),
			EndTime:   slot.EndTime.String(),
		}
	}

	return &AvailableSlotsResponse{
		Date:            resp.Date.Format(domain.DateFormat),
		ProfessionalID:  resp.ProfessionalID,
		IsOpen:          resp.IsOpen,
		DurationMinutes: resp.DurationMinutes,
		Slots:           slots,
	}
}

// ToUseCaseRequest создает запрос use case из query параметров
func ToUseCaseRequest(professionalID int64, dateStr, serviceIDsStr string, excludeID *int64) (*getAvailableSlots.Request, error) {
	// Парсим дату
	date, err := time.Parse(domain.DateFormat, dateStr)
	if err != nil {
		return nil, err
	}

	// Парсим список услуг "1,2,3"
	serviceIDs, err := parseServiceIDs(serviceIDsStr)
	if err != nil {
		return nil, err
	}

	return &getAvailableSlots.Request{
		ProfessionalID:       professionalID,
		Date:                 date,
		ServiceIDs:           serviceIDs,
		ExcludeAppointmentID: excludeID,
	}, nil
}

func parseServiceIDs(raw string) ([]int64, error) {
	parts := strings.Split(raw, ",")
	ids := make([]int64, 0, len(parts))
	for _, part := range parts {
		id, err := strconv.ParseInt(strings.TrimSpace(part), 10, 64)
		if err != nil {
			return nil, err
		}
		ids = append(ids, id)
	}
	return ids, nil
}
