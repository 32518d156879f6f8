package analytics

import (
	"time"

	"guia-compras/domain"
	"guia-compras/internal/utils"
)

// DateRange is a half-open interval: Start inclusive, End exclusive.
type DateRange struct {
	Start time.Time
	End   time.Time
}

func (r DateRange) Contains(t time.Time) bool {
	return !t.Before(r.Start) && t.Before(r.End)
}

// ResolveRange maps a preset name, or a custom from/to pair of
// "2006-01-02" dates, to a half-open interval in the given location.
// All boundary math happens here, once, server-side.
func ResolveRange(preset, from, to string, now time.Time, loc *time.Location) (DateRange, error) {
	today := utils.StartOfDay(now, loc)
	tomorrow := today.AddDate(0, 0, 1)

	switch preset {
	case "", "30days":
		return DateRange{Start: today.AddDate(0, 0, -29), End: tomorrow}, nil
	case "today":
		return DateRange{Start: today, End: tomorrow}, nil
	case "yesterday":
		return DateRange{Start: today.AddDate(0, 0, -1), End: today}, nil
	case "7days":
		return DateRange{Start: today.AddDate(0, 0, -6), End: tomorrow}, nil
	case "90days":
		return DateRange{Start: today.AddDate(0, 0, -89), End: tomorrow}, nil
	case "180days":
		return DateRange{Start: today.AddDate(0, 0, -179), End: tomorrow}, nil
	case "365days":
		return DateRange{Start: today.AddDate(0, 0, -364), End: tomorrow}, nil
	case "custom":
		if from == "" || to == "" {
			return DateRange{}, domain.ErrInvalidDateRange
		}
		start, err := time.ParseInLocation("2006-01-02", from, loc)
		if err != nil {
			return DateRange{}, domain.ErrInvalidDateRange
		}
		end, err := time.ParseInLocation("2006-01-02", to, loc)
		if err != nil {
			return DateRange{}, domain.ErrInvalidDateRange
		}
		end = end.AddDate(0, 0, 1)
		if !start.Before(end) {
			return DateRange{}, domain.ErrInvalidDateRange
		}
		return DateRange{Start: start, End: end}, nil
	default:
		return DateRange{}, domain.ErrUnknownPreset
	}
}
