package utils

import (
	"time"
)

// AppLocation resolves the timezone all date boundaries are computed in.
func AppLocation() *time.Location {
	name := GetConfig("APP_TIMEZONE")
	if name == "" {
		name = "America/Sao_Paulo"
	}
	loc, err := time.LoadLocation(name)
	if err != nil {
		return time.UTC
	}
	return loc
}

func StartOfDay(t time.Time, loc *time.Location) time.Time {
	t = t.In(loc)
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, loc)
}
