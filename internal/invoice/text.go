package invoice

import (
	"regexp"
	"strings"
)

const AmountNotFound = "Amount not found"

var (
	amountLine    = regexp.MustCompile(`Amount.*`)
	amountSats    = regexp.MustCompile(`Amount : [0-9]+ sat`)
	invoicePrefix = "Invoice:"
)

// Invoice is what the page shows: the amount line, the cleaned text and,
// if the payment request decodes, a short summary of it.
type Invoice struct {
	Amount  string
	Details string
	Summary *Summary
}

// Parse builds an Invoice from the text written by the wallet tool.
// Summary is nil when the payment request can not be decoded.
func Parse(text string) *Invoice {
	inv := &Invoice{
		Amount:  ExtractAmount(text),
		Details: Clean(text),
	}
	if s, err := Decode(text); err == nil {
		inv.Summary = s
	}
	return inv
}

// ExtractAmount returns the first line fragment starting with "Amount".
func ExtractAmount(text string) string {
	if m := amountLine.FindString(text); m != "" {
		return m
	}
	return AmountNotFound
}

// Clean drops the "Invoice:" label and the "Amount : N sat" line from text.
func Clean(text string) string {
	text = strings.ReplaceAll(text, invoicePrefix, "")
	return amountSats.ReplaceAllString(text, "")
}
