package qrimage

import (
	"encoding/base64"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestDataURI(t *testing.T) {
	uri, err := DataURI("2@abc123,def456,ghi789", 256)
	assert.NoError(t, err)
	assert.True(t, strings.HasPrefix(uri, "data:image/png;base64,"))

	raw, err := base64.StdEncoding.DecodeString(strings.TrimPrefix(uri, "data:image/png;base64,"))
	assert.NoError(t, err)
	// PNG magic bytes
	assert.Equal(t, []byte{0x89, 'P', 'N', 'G'}, raw[:4])
}

func TestDataURIDefaultSize(t *testing.T) {
	uri, err := DataURI("2@abc123", 0)
	assert.NoError(t, err)
	assert.NotEmpty(t, uri)
}
