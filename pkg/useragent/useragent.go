package useragent

import (
	"strings"

	"github.com/chatbridge/leadcapture/pkg/sanitizer"
)

// UserAgent holds what was learned from one header.
type UserAgent struct {
	raw        string
	deviceType string
	os         string
	bot        string
}

// Parse classifies a User-Agent header. It never fails.
func Parse(ua string) UserAgent {
	ua = strings.TrimSpace(ua)
	lowerUA := strings.ToLower(ua)

	parsed := UserAgent{
		raw:        ua,
		deviceType: ParseDeviceType(lowerUA),
		os:         ParseOS(lowerUA),
	}
	if parsed.deviceType == DeviceTypeBot {
		parsed.bot = botName(ua)
	}
	return parsed
}

// String returns the header as received, trimmed.
func (ua UserAgent) String() string { return ua.raw }

// Short returns at most MaxLogLength characters of the header, or Unknown
// when it is empty.
func (ua UserAgent) Short() string {
	return Short(ua.raw)
}

// DeviceType returns one of the DeviceType constants.
func (ua UserAgent) DeviceType() string { return ua.deviceType }

// OS returns one of the OS constants.
func (ua UserAgent) OS() string { return ua.os }

// IsBot reports whether the agent looks automated.
func (ua UserAgent) IsBot() bool { return ua.deviceType == DeviceTypeBot }

// BotName returns the crawler name for bots and "" otherwise.
func (ua UserAgent) BotName() string { return ua.bot }

// Short bounds a raw header for logging.
func Short(ua string) string {
	ua = strings.TrimSpace(ua)
	if ua == "" {
		return Unknown
	}
	return sanitizer.Truncate(ua, MaxLogLength)
}
