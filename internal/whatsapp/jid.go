package whatsapp

import "strings"

// PhoneNumber extracts the phone-number part from a participant id like
// "31612345678@s.whatsapp.net" or "31612345678:12@s.whatsapp.net".
func PhoneNumber(id string) string {
	user := id
	if at := strings.IndexByte(user, '@'); at >= 0 {
		user = user[:at]
	}
	if colon := strings.IndexByte(user, ':'); colon >= 0 {
		user = user[:colon]
	}
	return user
}
