package domain

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/m04kA/BRB-ScheduleService/pkg/types"
)

func testAppointment(start string, durations ...int) *Appointment {
	services := make([]ServiceItem, 0, len(durations))
	for i, d := range durations {
		services = append(services, ServiceItem{
			ID:              int64(i + 1),
			Name:            "Стрижка",
			Price:           1000,
			DurationMinutes: d,
		})
	}
	return &Appointment{
		ClientName:     "Иван",
		ProfessionalID: 1,
		Date:           date(2026, time.March, 10),
		StartTime:      types.TimeString(start),
		Status:         StatusPending,
		Services:       services,
	}
}

func TestAppointment_Totals(t *testing.T) {
	appt := testAppointment("11:30", 30, 15)

	assert.Equal(t, 45, appt.TotalDurationMinutes())
	assert.Equal(t, 2000.0, appt.TotalPrice())
}

func TestAppointment_Interval(t *testing.T) {
	appt := testAppointment("11:30", 30)

	interval, err := appt.Interval()
	require.NoError(t, err)
	assert.Equal(t, types.TimeString("11:30"), interval.Start)
	assert.Equal(t, types.TimeString("12:00"), interval.End)
}

func TestAppointment_StatusTransitions(t *testing.T) {
	appt := testAppointment("10:00", 30)

	assert.True(t, appt.IsActive())
	assert.True(t, appt.CanBeCancelled())
	assert.True(t, appt.CanBeCompleted())
	assert.True(t, appt.CanBeUpdated())

	appt.Status = StatusCompleted
	assert.True(t, appt.IsActive(), "завершённая запись продолжает занимать слот")
	assert.False(t, appt.CanBeCancelled())
	assert.False(t, appt.CanBeCompleted())
	assert.False(t, appt.CanBeUpdated())

	appt.Status = StatusCanceled
	assert.False(t, appt.IsActive())
	assert.False(t, appt.CanBeCancelled())
}

func TestTimeInterval_Overlaps(t *testing.T) {
	base := TimeInterval{Start: "11:30", End: "12:00"}

	tests := []struct {
		name  string
		other TimeInterval
		want  bool
	}{
		{name: "partial overlap from left", other: TimeInterval{Start: "11:20", End: "11:40"}, want: true},
		{name: "partial overlap from right", other: TimeInterval{Start: "11:50", End: "12:20"}, want: true},
		{name: "contained", other: TimeInterval{Start: "11:40", End: "11:50"}, want: true},
		{name: "containing", other: TimeInterval{Start: "11:00", End: "13:00"}, want: true},
		{name: "touching before is free", other: TimeInterval{Start: "11:00", End: "11:30"}, want: false},
		{name: "touching after is free", other: TimeInterval{Start: "12:00", End: "12:30"}, want: false},
		{name: "disjoint", other: TimeInterval{Start: "14:00", End: "14:30"}, want: false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, base.Overlaps(tt.other))
			assert.Equal(t, tt.want, tt.other.Overlaps(base), "пересечение симметрично")
		})
	}
}
