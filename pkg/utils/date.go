package utils

import (
	"fmt"
	"time"
)

// ParseDate interpreta uma data de configuração no formato YYYY-MM-DD.
func ParseDate(dateStr string) (time.Time, error) {
	if dateStr == "" {
		return time.Time{}, fmt.Errorf("data vazia, esperado formato 2006-01-02")
	}

	date, err := time.Parse("2006-01-02", dateStr)
	if err != nil {
		return time.Time{}, fmt.Errorf("data inválida %q: %w", dateStr, err)
	}

	return date, nil
}

// DatesBetween retorna os dias do intervalo (start, end], em ordem
// decrescente a partir de end. Os limites são normalizados para meia-noite
// e podem ser passados em qualquer ordem. Limites iguais produzem uma
// lista vazia.
func DatesBetween(start, end time.Time) []time.Time {
	start = TruncateToDay(start)
	end = TruncateToDay(end)

	if start.After(end) {
		start, end = end, start
	}

	size := int(end.Sub(start) / (24 * time.Hour))

	dates := make([]time.Time, 0, size)
	for i := 0; i < size; i++ {
		dates = append(dates, end.AddDate(0, 0, -i))
	}

	return dates
}

// DaysBefore retorna os "increment" dias que terminam em end, inclusive.
func DaysBefore(end time.Time, increment int) []time.Time {
	start := TruncateToDay(end).AddDate(0, 0, -increment)
	return DatesBetween(start, end)
}

// Yesterday retorna a meia-noite do dia anterior a now.
func Yesterday(now time.Time) time.Time {
	return TruncateToDay(now).AddDate(0, 0, -1)
}

// TruncateToDay descarta o horário, mantendo apenas o dia em UTC.
func TruncateToDay(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, time.UTC)
}
