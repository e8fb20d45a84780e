package useragent

import "strings"

// keywordSet is matched by substring against a lowercased header.
type keywordSet []string

func (k keywordSet) contains(s string) bool {
	for _, keyword := range k {
		if strings.Contains(s, keyword) {
			return true
		}
	}
	return false
}

var (
	botKeywords     = keywordSet{"bot", "spider", "crawler", "archiver", "lighthouse", "slurp", "facebookexternalhit", "whatsapp", "telegram", "monitor", "fetcher", "scraper", "curl/", "wget/", "python-requests", "go-http-client", "postman"}
	tvKeywords      = keywordSet{"smart-tv", "smarttv", "googletv", "appletv", "android tv", "webos", "tizen"}
	consoleKeywords = keywordSet{"playstation", "xbox", "nintendo"}
	tabletKeywords  = keywordSet{"tablet", "kindle", "silk"}
	mobileKeywords  = keywordSet{"mobile", "iphone", "windows phone", "iemobile", "blackberry"}
	desktopKeywords = keywordSet{"windows", "macintosh", "mac os x", "linux", "x11", "cros"}

	iOSKeywords      = keywordSet{"iphone", "ipad", "ipod"}
	macOSKeywords    = keywordSet{"macintosh", "mac os x"}
	chromeOSKeywords = keywordSet{"cros", "chromeos"}
	linuxKeywords    = keywordSet{"linux", "ubuntu", "debian", "fedora", "x11"}
)
