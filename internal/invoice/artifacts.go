package invoice

import (
	"os"
	"strings"

	"github.com/massmux/sli-invoice/internal/errors"
	log "github.com/sirupsen/logrus"
)

// Artifacts locates the two files a wallet tool writes when it creates an invoice.
type Artifacts struct {
	ImagePath string
	TextPath  string
}

// Present reports whether both the QR image and the invoice text exist as regular files.
func (a Artifacts) Present() bool {
	return isFile(a.ImagePath) && isFile(a.TextPath)
}

var newlines = strings.NewReplacer("\r\n", "\n", "\r", "\n")

// ReadText returns the invoice text with line endings normalized to "\n".
func (a Artifacts) ReadText() (string, error) {
	b, err := os.ReadFile(a.TextPath)
	if err != nil {
		return "", errors.New(errors.ReadInvoiceError, err)
	}
	return newlines.Replace(string(b)), nil
}

// Load reads the invoice described by a. It returns a NoInvoiceError when one of the
// artifacts is missing.
func Load(a Artifacts) (*Invoice, error) {
	if !a.Present() {
		return nil, errors.Create(errors.NoInvoiceError)
	}
	text, err := a.ReadText()
	if err != nil {
		return nil, err
	}
	inv := Parse(text)
	log.Tracef("[Invoice] loaded %s (%s)", a.TextPath, inv.Amount)
	return inv, nil
}

func isFile(path string) bool {
	fi, err := os.Stat(path)
	if err != nil {
		return false
	}
	return fi.Mode().IsRegular()
}
