package service

import (
	"regexp"
	"strings"

	"github.com/shopspring/decimal"
)

// Extraction is heuristic: a miss is reported through the bool, never as an
// error, and the pipeline treats the field as absent.

var (
	invoiceNumberPattern = regexp.MustCompile(`(?i)(?:invoice|inv)[\s#:.\-]*([A-Za-z0-9][A-Za-z0-9\-]{3,})`)
	genericRefPattern    = regexp.MustCompile(`\b([A-Za-z]{2,}-[0-9]{3,})\b`)
	amountPattern        = regexp.MustCompile(`[£$€]\s?([0-9]+(?:\.[0-9]{1,2})?)`)
)

// ExtractInvoiceNumber scans subject then body for an "invoice"/"inv" marker
// followed by an alphanumeric-with-dashes token of length >= 4, falling back
// to a generic XX-### reference. First match wins.
func ExtractInvoiceNumber(subject, body string) (string, bool) {
	text := subject + " " + body
	if m := invoiceNumberPattern.FindStringSubmatch(text); m != nil {
		return m[1], true
	}
	if m := genericRefPattern.FindStringSubmatch(text); m != nil {
		return m[1], true
	}
	return "", false
}

// ExtractAmount scans subject then body for a currency-prefixed decimal.
func ExtractAmount(subject, body string) (decimal.Decimal, bool) {
	m := amountPattern.FindStringSubmatch(subject + " " + body)
	if m == nil {
		return decimal.Decimal{}, false
	}
	amount, err := decimal.NewFromString(strings.TrimSpace(m[1]))
	if err != nil {
		return decimal.Decimal{}, false
	}
	return amount, true
}
