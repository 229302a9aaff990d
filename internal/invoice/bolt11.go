package invoice

import (
	"fmt"
	"regexp"
	"strings"
	"time"

	decodepay "github.com/fiatjaf/ln-decodepay"
	"github.com/massmux/sli-invoice/internal/errors"
	log "github.com/sirupsen/logrus"
)

var paymentRequest = regexp.MustCompile(`Invoice:\s*(\S+)`)

// Summary holds the fields of a decoded payment request shown below the invoice.
type Summary struct {
	Description string
	PaymentHash string
	Expires     string
}

// PaymentRequest returns the payment request that follows the "Invoice:" label.
func PaymentRequest(text string) (string, error) {
	m := paymentRequest.FindStringSubmatch(text)
	if len(m) < 2 {
		return "", errors.Create(errors.NoPaymentRequestError)
	}
	pr := strings.ToLower(m[1])
	// get rid of the URI prefix
	return strings.TrimPrefix(pr, "lightning:"), nil
}

// Decode decodes the payment request contained in text.
func Decode(text string) (*Summary, error) {
	pr, err := PaymentRequest(text)
	if err != nil {
		return nil, err
	}
	bolt11, err := decodepay.Decodepay(pr)
	if err != nil {
		log.Debugf("[Invoice] could not decode payment request: %v", err)
		return nil, errors.New(errors.DecodeInvoiceError, err)
	}
	return summarize(bolt11), nil
}

func summarize(bolt11 decodepay.Bolt11) *Summary {
	s := &Summary{
		Description: bolt11.Description,
		PaymentHash: bolt11.PaymentHash,
	}
	if bolt11.CreatedAt > 0 && bolt11.Expiry > 0 {
		expires := time.Unix(int64(bolt11.CreatedAt+bolt11.Expiry), 0).UTC()
		s.Expires = fmt.Sprintf("%s UTC", expires.Format("2006-01-02 15:04:05"))
	}
	return s
}
