package types

import (
	"database/sql/driver"
	"errors"
	"fmt"
	"time"
)

// ErrInvalidTimeString возвращается при некорректном формате строки времени
var ErrInvalidTimeString = errors.New("invalid time string format")

// TimeString время в формате "HH:MM" (минуты дня без даты и таймзоны)
// Используется для хранения времени начала слота и рабочих часов
type TimeString string

// NewTimeString создает TimeString из time.Time (берёт только часы и минуты)
func NewTimeString(t time.Time) TimeString {
	return TimeString(t.Format("15:04"))
}

// NewTimeStringFromString создает TimeString из строки с валидацией формата
func NewTimeStringFromString(s string) (TimeString, error) {
	ts := TimeString(s)
	if err := ts.Validate(); err != nil {
		return "", err
	}
	return ts, nil
}

// Validate проверяет, что строка имеет формат "HH:MM"
// Формат строгий, с ведущими нулями: сравнения IsBefore/IsAfter
// лексикографические и корректны только для выровненных строк
func (t TimeString) Validate() error {
	s := string(t)
	if len(s) != 5 || s[2] != ':' {
		return fmt.Errorf("%w: %q", ErrInvalidTimeString, s)
	}
	if _, err := time.Parse("15:04", s); err != nil {
		return fmt.Errorf("%w: %q", ErrInvalidTimeString, s)
	}
	return nil
}

// IsZero возвращает true, если время не задано
func (t TimeString) IsZero() bool {
	return t == ""
}

// Minutes возвращает количество минут с начала дня
func (t TimeString) Minutes() (int, error) {
	parsed, err := time.Parse("15:04", string(t))
	if err != nil {
		return 0, fmt.Errorf("%w: %q", ErrInvalidTimeString, string(t))
	}
	return parsed.Hour()*60 + parsed.Minute(), nil
}

// AddMinutes возвращает время, сдвинутое на minutes минут вперед
// Выход за границу суток не нормализуется: "23:50" + 20 минут даст ошибку,
// потому что слот не может пересекать полночь
func (t TimeString) AddMinutes(minutes int) (TimeString, error) {
	total, err := t.Minutes()
	if err != nil {
		return "", err
	}

	total += minutes
	if total < 0 || total >= 24*60 {
		return "", fmt.Errorf("%w: %q + %d minutes is out of day range", ErrInvalidTimeString, string(t), minutes)
	}

	return TimeString(fmt.Sprintf("%02d:%02d", total/60, total%60)), nil
}

// IsBefore возвращает true, если t строго раньше other
func (t TimeString) IsBefore(other TimeString) bool {
	return string(t) < string(other)
}

// IsAfter возвращает true, если t строго позже other
func (t TimeString) IsAfter(other TimeString) bool {
	return string(t) > string(other)
}

// String возвращает строковое представление "HH:MM"
func (t TimeString) String() string {
	return string(t)
}

// Value реализует driver.Valuer для записи в БД
func (t TimeString) Value() (driver.Value, error) {
	if t.IsZero() {
		return nil, nil
	}
	if err := t.Validate(); err != nil {
		return nil, err
	}
	return string(t), nil
}

// Scan реализует sql.Scanner для чтения из БД
// Поддерживает строки, []byte и time.Time (колонки типа TIME)
func (t *TimeString) Scan(src interface{}) error {
	switch v := src.(type) {
	case nil:
		*t = ""
		return nil
	case string:
		return t.scanString(v)
	case []byte:
		return t.scanString(string(v))
	case time.Time:
		*t = NewTimeString(v)
		return nil
	default:
		return fmt.Errorf("%w: unsupported source type %T", ErrInvalidTimeString, src)
	}
}

func (t *TimeString) scanString(s string) error {
	// Postgres TIME приходит как "10:00:00" - отрезаем секунды
	if len(s) >= 5 {
		s = s[:5]
	}
	ts, err := NewTimeStringFromString(s)
	if err != nil {
		return err
	}
	*t = ts
	return nil
}
