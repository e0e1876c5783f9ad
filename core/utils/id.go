package utils

import (
	"slotpoll/core/constants"

	gonanoid "github.com/matoous/go-nanoid/v2"
)

// GenerateEventCode returns a short public event code drawn from an
// alphabet without the ambiguous characters I, O, 0 and 1.
func GenerateEventCode() string {
	code, err := gonanoid.Generate(constants.EventCodeAlphabet, constants.EventCodeLength)
	if err != nil {
		return ""
	}
	return code
}
