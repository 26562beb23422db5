package helpers

import (
	"strings"

	"github.com/mdp/qrterminal/v3"
)

// GenerateQRCode renders data as a half-block terminal QR code
func GenerateQRCode(data string) string {
	if data == "" {
		return ""
	}
	var buf strings.Builder
	qrterminal.GenerateHalfBlock(data, qrterminal.L, &buf)
	return buf.String()
}
