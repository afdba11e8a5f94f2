package utils

import (
	"time"
)

// ParseOptionalDate interpreta uma data opcional; string vazia retorna nil
func ParseOptionalDate(dateStr string) (*time.Time, error) {
	if dateStr == "" {
		return nil, nil
	}

	date, err := time.Parse(time.DateOnly, dateStr)
	if err != nil {
		return nil, err
	}

	return &date, nil
}