package mapping

import (
	"errors"
	"fmt"
	"time"

	"github.com/aalvaropc/commonmeta/internal/domain"
)

// dateSources are tried in order; the first one carrying a year wins.
var dateSources = []string{"issued", "published", "published-print", "published-online"}

func mapPublicationDate(obj map[string]any) (*domain.Date, error) {
	for _, key := range dateSources {
		d, ok, err := dateAt(obj, key)
		if err != nil {
			return nil, err
		}
		if ok {
			return &d, nil
		}
	}
	return nil, nil
}

// dateAt reads {"date-parts": [[year, month?, day?]]}. An empty or all-null
// first part means no date.
func dateAt(obj map[string]any, key string) (domain.Date, bool, error) {
	container, ok, err := objectAt(obj, key, key)
	if err != nil || !ok {
		return domain.Date{}, false, err
	}

	field := key + ".date-parts"
	parts, ok, err := arrayAt(container, "date-parts", field)
	if err != nil || !ok || len(parts) == 0 {
		return domain.Date{}, false, err
	}

	first, ok := parts[0].([]any)
	if !ok {
		if parts[0] == nil {
			return domain.Date{}, false, nil
		}
		return domain.Date{}, false, domain.MalformedField(field, fmt.Sprintf("expected array, got %s", shape(parts[0])))
	}
	if len(first) > 3 {
		return domain.Date{}, false, domain.MalformedField(field, fmt.Sprintf("expected at most 3 parts, got %d", len(first)))
	}

	var ymd [3]int
	present := 0
	for i, v := range first {
		if v == nil {
			continue
		}
		n, err := integer(v)
		if err != nil {
			return domain.Date{}, false, domain.MalformedField(field, err.Error())
		}
		ymd[i] = n
		present++
	}
	if present == 0 {
		return domain.Date{}, false, nil
	}

	d := domain.Date{Year: ymd[0], Month: ymd[1], Day: ymd[2]}
	if err := checkDate(d, len(first), first); err != nil {
		return domain.Date{}, false, domain.MalformedField(field, err.Error())
	}
	return d, true, nil
}

func checkDate(d domain.Date, n int, parts []any) error {
	if parts[0] == nil {
		return errors.New("year missing")
	}
	if d.Year < 1 || d.Year > 9999 {
		return fmt.Errorf("year %d out of range", d.Year)
	}

	monthKnown := n > 1 && parts[1] != nil
	dayKnown := n > 2 && parts[2] != nil
	if dayKnown && !monthKnown {
		return errors.New("day given without month")
	}
	if monthKnown && (d.Month < 1 || d.Month > 12) {
		return fmt.Errorf("month %d out of range", d.Month)
	}
	if dayKnown {
		last := time.Date(d.Year, time.Month(d.Month)+1, 0, 0, 0, 0, 0, time.UTC).Day()
		if d.Day < 1 || d.Day > last {
			return fmt.Errorf("day %d out of range for %04d-%02d", d.Day, d.Year, d.Month)
		}
	}
	return nil
}
