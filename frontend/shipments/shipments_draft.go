package shipments

import (
	"errors"
	"math"
	"strconv"
	"strings"

	"shipbatch/models"
)

var (
	ErrMissingField = errors.New("missing field")
	ErrNotANumber   = errors.New("not a number")
	ErrNotPositive  = errors.New("not a positive number")
	ErrTooLarge     = errors.New("value too large")
)

// Dimensions at or beyond 1<<63 inches would overflow the int64 conversion.
const maxDimension = float64(math.MaxInt64)

// ValidationError reports which form field failed and why.
type ValidationError struct {
	Field string
	Err   error
}

func (e *ValidationError) Error() string {
	switch {
	case errors.Is(e.Err, ErrMissingField):
		return e.Field + " is required"
	case errors.Is(e.Err, ErrNotANumber):
		return e.Field + " must be a number"
	case errors.Is(e.Err, ErrNotPositive):
		return e.Field + " must be greater than 0"
	case errors.Is(e.Err, ErrTooLarge):
		return e.Field + " is too large"
	default:
		return e.Field + ": " + e.Err.Error()
	}
}

func (e *ValidationError) Unwrap() error {
	return e.Err
}

// ParseDraft turns the raw form values into a shipment. Dimensions are
// rounded up to whole inches here, at the point of acceptance; the weight is
// kept exactly as entered. The returned shipment carries no id.
func ParseDraft(d Draft) (models.Shipment, error) {
	length, err := parseDimension("length", d.Length)
	if err != nil {
		return models.Shipment{}, err
	}
	width, err := parseDimension("width", d.Width)
	if err != nil {
		return models.Shipment{}, err
	}
	height, err := parseDimension("height", d.Height)
	if err != nil {
		return models.Shipment{}, err
	}
	weight, err := parsePositive("weight", d.Weight)
	if err != nil {
		return models.Shipment{}, err
	}
	return models.Shipment{
		Length:    length,
		Width:     width,
		Height:    height,
		Weight:    weight,
		Reference: strings.TrimSpace(d.Reference),
	}, nil
}

func parseDimension(field, raw string) (int64, error) {
	v, err := parsePositive(field, raw)
	if err != nil {
		return 0, err
	}
	if v >= maxDimension {
		return 0, &ValidationError{Field: field, Err: ErrTooLarge}
	}
	return int64(math.Ceil(v)), nil
}

func parsePositive(field, raw string) (float64, error) {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return 0, &ValidationError{Field: field, Err: ErrMissingField}
	}
	v, err := strconv.ParseFloat(raw, 64)
	if err != nil || math.IsNaN(v) || math.IsInf(v, 0) {
		return 0, &ValidationError{Field: field, Err: ErrNotANumber}
	}
	if v <= 0 {
		return 0, &ValidationError{Field: field, Err: ErrNotPositive}
	}
	return v, nil
}

func formatInt(v int64) string {
	return strconv.FormatInt(v, 10)
}

func formatWeight(v float64) string {
	return strconv.FormatFloat(v, 'f', -1, 64)
}
