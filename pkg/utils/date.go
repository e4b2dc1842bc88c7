package utils

import "time"

// DateOnlyUTC converte para UTC e descarta o horário
func DateOnlyUTC(t time.Time) time.Time {
	t = t.UTC()
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, time.UTC)
}
