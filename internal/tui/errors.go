package tui

import (
	"errors"
	"strings"

	"github.com/MKhiriev/go-xray-viewer/internal/app"
	"github.com/MKhiriev/go-xray-viewer/internal/service"
)

// userMessage returns the text shown to the user for err.
func userMessage(err error) string {
	if err == nil {
		return ""
	}

	if errors.Is(err, service.ErrDownloadingSpreadsheet) {
		s := strings.ToLower(err.Error())
		if strings.Contains(s, "connection refused") ||
			strings.Contains(s, "dial tcp") ||
			strings.Contains(s, "no such host") ||
			strings.Contains(s, "network is unreachable") ||
			strings.Contains(s, "i/o timeout") ||
			strings.Contains(s, "context deadline exceeded") {
			return app.MsgNetworkUnavailable
		}
	}

	return service.UserMessage(err)
}
