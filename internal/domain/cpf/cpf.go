// Package cpf normalizes the taxpayer id used as the citizen key.
package cpf

import (
	"errors"
	"regexp"
	"strings"
)

var (
	ErrInvalidFormat = errors.New("cpf must use the 000.000.000-00 format")

	formatted = regexp.MustCompile(`^\d{3}\.\d{3}\.\d{3}-\d{2}$`)
	digits    = regexp.MustCompile(`^\d{11}$`)
)

// Normalize accepts "000.000.000-00" or 11 bare digits and returns the
// formatted form. Check digits are not verified.
func Normalize(raw string) (string, error) {
	raw = strings.TrimSpace(raw)
	switch {
	case formatted.MatchString(raw):
		return raw, nil
	case digits.MatchString(raw):
		return raw[0:3] + "." + raw[3:6] + "." + raw[6:9] + "-" + raw[9:11], nil
	}
	return "", ErrInvalidFormat
}

// Mask hides the middle digits for logs: 123.***.***-00.
func Mask(cpf string) string {
	if !formatted.MatchString(cpf) {
		return "***"
	}
	return cpf[0:3] + ".***.***-" + cpf[12:14]
}
