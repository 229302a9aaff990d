package invoice

import (
	"strings"
	"testing"
)

const sampleText = `Invoice: lnbc1...xyz
Amount : 5000 sat
`

func TestExtractAmount(t *testing.T) {
	tests := []struct {
		name string
		text string
		want string
	}{
		{name: "wallet output", text: sampleText, want: "Amount : 5000 sat"},
		{name: "first match wins", text: "Amount : 1 sat\nAmount : 2 sat\n", want: "Amount : 1 sat"},
		{name: "match runs to end of line", text: "Total Amount due: 21 sat (fees incl.)\nnext", want: "Amount due: 21 sat (fees incl.)"},
		{name: "case sensitive", text: "amount : 5000 sat\n", want: AmountNotFound},
		{name: "missing", text: "Invoice: lnbc1...xyz\n", want: AmountNotFound},
		{name: "empty", text: "", want: AmountNotFound},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := ExtractAmount(tt.text); got != tt.want {
				t.Fatalf("ExtractAmount() = %q, want %q", got, tt.want)
			}
		})
	}
}

func TestClean(t *testing.T) {
	got := Clean(sampleText)
	if !strings.Contains(got, "lnbc1...xyz") {
		t.Fatalf("expected payment request to survive, got %q", got)
	}
	if strings.Contains(got, "Invoice:") {
		t.Fatalf("expected Invoice: label to be removed, got %q", got)
	}
	if strings.Contains(got, "Amount : 5000 sat") {
		t.Fatalf("expected amount line to be removed, got %q", got)
	}
	if want := " lnbc1...xyz\n\n"; got != want {
		t.Fatalf("Clean() = %q, want %q", got, want)
	}
}

func TestCleanRemovesEveryOccurrence(t *testing.T) {
	got := Clean("Invoice: a Invoice: b Amount : 1 sat Amount : 22 sat")
	if want := " a  b  "; got != want {
		t.Fatalf("Clean() = %q, want %q", got, want)
	}
}

func TestCleanKeepsNonNumericAmount(t *testing.T) {
	got := Clean("Amount : many sat")
	if got != "Amount : many sat" {
		t.Fatalf("expected non numeric amount to be kept, got %q", got)
	}
}

func TestParseWithoutDecodableRequest(t *testing.T) {
	inv := Parse(sampleText)
	if inv.Amount != "Amount : 5000 sat" {
		t.Fatalf("unexpected amount %q", inv.Amount)
	}
	if inv.Summary != nil {
		t.Fatalf("expected no summary for an invalid payment request, got %#v", inv.Summary)
	}
}
