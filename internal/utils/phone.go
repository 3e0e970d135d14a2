package utils

import (
	"github.com/nyaruka/phonenumbers"
)

// FormatPhoneE164 renders a stored Portuguese phone number in E.164 notation
// for operator-facing messages. Input that libphonenumber cannot parse is
// returned unchanged.
func FormatPhoneE164(telefone string) string {
	clean := phoneSeparatorRegex.ReplaceAllString(telefone, "")

	num, err := phonenumbers.Parse(clean, "PT")
	if err != nil || !phonenumbers.IsValidNumber(num) {
		return telefone
	}

	return phonenumbers.Format(num, phonenumbers.E164)
}
