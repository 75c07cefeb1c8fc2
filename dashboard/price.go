package dashboard

import (
	"fmt"
	"strconv"
	"strings"

	"golang.org/x/text/language"
	"golang.org/x/text/message"
)

var pricePrinter = message.NewPrinter(language.English)

// FormatPrice renders a whole-unit price with thousands separators for
// display, e.g. 1599000 -> "1,599,000".
func FormatPrice(v int64) string {
	return pricePrinter.Sprintf("%d", v)
}

// ParsePrice converts a displayed price back to a plain integer, stripping
// separators and an optional currency prefix. Fractional input is rejected:
// prices are whole units only.
func ParsePrice(s string) (int64, error) {
	s = strings.TrimSpace(s)
	s = strings.TrimPrefix(s, "$")
	s = strings.TrimSpace(s)
	s = strings.ReplaceAll(s, ",", "")
	if s == "" {
		return 0, fmt.Errorf("empty price")
	}
	n, err := strconv.ParseInt(s, 10, 64)
	if err != nil {
		return 0, fmt.Errorf("parse price %q: %w", s, err)
	}
	return n, nil
}
