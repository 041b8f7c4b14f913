package dto

// Session lifecycle event names pushed over the websocket. These mirror
// the automation client's own lifecycle.
const (
	EventQR            = "qr"
	EventAuthenticated = "authenticated"
	EventReady         = "ready"
	EventDisconnected  = "disconnected"
)

// SessionEvent is one frame on the push channel. Payload carries the QR
// image data URI for qr events and the reason string for disconnected
// events; it is empty otherwise.
type SessionEvent struct {
	Event   string `json:"event"`
	Payload string `json:"payload,omitempty"`
}

type StatusResponse struct {
	Ready bool `json:"ready"`
	HasQR bool `json:"hasQR"`
}

type InitializeResponse struct {
	Message string `json:"message"`
}

type QRResponse struct {
	QR string `json:"qr"`
}
