package importer

import (
	"strconv"
	"strings"
	"time"

	"github.com/pkg/errors"
	"github.com/xuri/excelize/v2"
)

var dateLayouts = []string{"02/01/2006", "2006-01-02", "2006-01-02T15:04:05Z07:00"}

func parseInt(s string) (*int, error) {
	if s == "" {
		return nil, nil
	}
	f, err := strconv.ParseFloat(s, 64)
	if err != nil {
		return nil, errors.Errorf("%q is not a number", s)
	}
	v := int(f)
	return &v, nil
}

// parseMoney accepts raw numbers as well as "R$ 1.234,56" and "1,234.56".
func parseMoney(s string) (*float64, error) {
	s = strings.TrimSpace(strings.TrimPrefix(s, "R$"))
	if s == "" {
		return nil, nil
	}

	switch {
	case strings.Contains(s, ",") && strings.Contains(s, "."):
		if strings.LastIndex(s, ",") > strings.LastIndex(s, ".") {
			s = strings.ReplaceAll(s, ".", "")
			s = strings.ReplaceAll(s, ",", ".")
		} else {
			s = strings.ReplaceAll(s, ",", "")
		}
	case strings.Contains(s, ","):
		s = strings.ReplaceAll(s, ",", ".")
	}

	v, err := strconv.ParseFloat(s, 64)
	if err != nil {
		return nil, errors.Errorf("%q is not a value", s)
	}
	return &v, nil
}

// parseDate accepts excel serial dates and the dd/mm/yyyy and ISO layouts.
func parseDate(s string) (*time.Time, error) {
	if s == "" {
		return nil, nil
	}

	if serial, err := strconv.ParseFloat(s, 64); err == nil {
		t, err := excelize.ExcelDateToTime(serial, false)
		if err != nil {
			return nil, errors.Wrapf(err, "%q is not a date", s)
		}
		return &t, nil
	}

	for _, layout := range dateLayouts {
		if t, err := time.Parse(layout, s); err == nil {
			return &t, nil
		}
	}
	return nil, errors.Errorf("%q is not a date", s)
}
