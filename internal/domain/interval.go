package domain

import "github.com/m04kA/BRB-ScheduleService/pkg/types"

// TimeInterval полуинтервал [Start, End) внутри одного дня.
// Выводится из записи (начало + суммарная длительность услуг), не хранится
type TimeInterval struct {
	Start types.TimeString
	End   types.TimeString
}

// Overlaps returns true if the two half-open intervals actually intersect.
// Строгие неравенства: запись, заканчивающаяся ровно в начале другой,
// пересечением НЕ считается
//
// Примеры:
// - [11:30, 12:00) и [11:20, 11:40) → пересекаются (11:30-11:40)
// - [11:30, 12:00) и [11:00, 11:30) → не пересекаются (граничат)
// - [11:30, 12:00) и [12:00, 12:30) → не пересекаются (граничат)
func (i TimeInterval) Overlaps(other TimeInterval) bool {
	return i.Start.IsBefore(other.End) && i.End.IsAfter(other.Start)
}
