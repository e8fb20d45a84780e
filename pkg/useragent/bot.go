package useragent

import (
	"regexp"
	"strings"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"
)

// Well-known crawlers keep their vendor spelling.
var knownBots = []struct {
	keyword string
	name    string
}{
	{"googlebot", "Googlebot"},
	{"bingbot", "Bingbot"},
	{"facebookexternalhit", "Facebook"},
	{"whatsapp", "WhatsApp"},
	{"telegrambot", "TelegramBot"},
	{"twitterbot", "Twitterbot"},
	{"linkedinbot", "LinkedInBot"},
	{"slackbot", "Slackbot"},
}

var botNamePatterns = []*regexp.Regexp{
	regexp.MustCompile(`(?i)([a-z0-9\-_]+bot)\b`),
	regexp.MustCompile(`(?i)([a-z0-9\-_]+spider)\b`),
	regexp.MustCompile(`(?i)([a-z0-9\-_]+crawler)\b`),
	regexp.MustCompile(`(?i)^([a-z0-9\-_]+)/`),
}

// botName extracts a display name for an agent already classified as a bot.
func botName(ua string) string {
	lowerUA := strings.ToLower(ua)
	for _, bot := range knownBots {
		if strings.Contains(lowerUA, bot.keyword) {
			return bot.name
		}
	}

	for _, pattern := range botNamePatterns {
		if matches := pattern.FindStringSubmatch(ua); len(matches) > 1 {
			// cases.Caser is not safe for concurrent use.
			return cases.Title(language.English).String(strings.ToLower(matches[1]))
		}
	}

	return "Unknown Bot"
}
