package types

import (
	"database/sql/driver"
	"fmt"
	"time"
)

// TimeString время в формате "HH:MM" без даты и таймзоны.
// Используется для времени начала слотов и бронирований.
type TimeString string

const layout = "15:04"

// NewTimeString создает TimeString из time.Time (отбрасывает дату)
func NewTimeString(t time.Time) TimeString {
	return TimeString(t.Format(layout))
}

// NewTimeStringFromString парсит строку "HH:MM" с валидацией
func NewTimeStringFromString(s string) (TimeString, error) {
	if _, err := time.Parse(layout, s); err != nil {
		return "", fmt.Errorf("invalid time %q: expected HH:MM", s)
	}
	return TimeString(s), nil
}

func (t TimeString) String() string {
	return string(t)
}

// Hour возвращает час начала (0-23)
func (t TimeString) Hour() (int, error) {
	parsed, err := time.Parse(layout, string(t))
	if err != nil {
		return 0, fmt.Errorf("invalid time %q: %v", string(t), err)
	}
	return parsed.Hour(), nil
}

// AddMinutes возвращает время через delta минут (по модулю суток)
func (t TimeString) AddMinutes(delta int) (TimeString, error) {
	parsed, err := time.Parse(layout, string(t))
	if err != nil {
		return "", fmt.Errorf("invalid time %q: %v", string(t), err)
	}
	return TimeString(parsed.Add(time.Duration(delta) * time.Minute).Format(layout)), nil
}

// IsBefore сравнивает времена лексикографически, что для "HH:MM" корректно
func (t TimeString) IsBefore(other TimeString) bool {
	return string(t) < string(other)
}

// IsAfter сравнивает времена лексикографически
func (t TimeString) IsAfter(other TimeString) bool {
	return string(t) > string(other)
}

// Value реализует driver.Valuer для записи в БД
func (t TimeString) Value() (driver.Value, error) {
	if t == "" {
		return nil, nil
	}
	if _, err := time.Parse(layout, string(t)); err != nil {
		return nil, fmt.Errorf("invalid time %q: %v", string(t), err)
	}
	return string(t), nil
}

// Scan реализует sql.Scanner для чтения из БД
func (t *TimeString) Scan(src interface{}) error {
	switch v := src.(type) {
	case nil:
		*t = ""
		return nil
	case string:
		*t = TimeString(v)
	case []byte:
		*t = TimeString(v)
	case time.Time:
		*t = NewTimeString(v)
	default:
		return fmt.Errorf("cannot scan %T into TimeString", src)
	}
	// Postgres колонки TIME отдают "HH:MM:SS" - нормализуем до "HH:MM"
	if len(*t) > 5 {
		*t = (*t)[:5]
	}
	return nil
}
