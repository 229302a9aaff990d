package str

import (
	"sync"

	"github.com/microcosm-cc/bluemonday"
)

var (
	strictPolicy     *bluemonday.Policy
	strictPolicyOnce sync.Once
)

func policy() *bluemonday.Policy {
	strictPolicyOnce.Do(func() {
		strictPolicy = bluemonday.StrictPolicy()
	})
	return strictPolicy
}

// StripMarkup removes every HTML element from s and returns the remaining text
// HTML-escaped, ready to be embedded in a page as is.
func StripMarkup(s string) string {
	return policy().Sanitize(s)
}
