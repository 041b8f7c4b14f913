package whatsapp

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestPhoneNumber(t *testing.T) {
	assert.Equal(t, "31612345678", PhoneNumber("31612345678@s.whatsapp.net"))
	assert.Equal(t, "31612345678", PhoneNumber("31612345678:12@s.whatsapp.net"))
	assert.Equal(t, "31612345678", PhoneNumber("31612345678"))
	assert.Equal(t, "", PhoneNumber("@s.whatsapp.net"))
}
