package useragent

import "strings"

// ParseDeviceType classifies a lowercased header. Apple identifiers are
// unambiguous and checked first; Android tablets are the Android agents
// without "mobile".
func ParseDeviceType(lowerUA string) string {
	switch {
	case lowerUA == "":
		return DeviceTypeUnknown
	case strings.Contains(lowerUA, "ipad"):
		return DeviceTypeTablet
	case strings.Contains(lowerUA, "iphone"):
		return DeviceTypeMobile
	case botKeywords.contains(lowerUA):
		return DeviceTypeBot
	case tvKeywords.contains(lowerUA):
		return DeviceTypeTV
	case strings.Contains(lowerUA, "android"):
		if strings.Contains(lowerUA, "mobile") {
			return DeviceTypeMobile
		}
		return DeviceTypeTablet
	case tabletKeywords.contains(lowerUA):
		return DeviceTypeTablet
	case mobileKeywords.contains(lowerUA):
		return DeviceTypeMobile
	case consoleKeywords.contains(lowerUA):
		return DeviceTypeConsole
	case desktopKeywords.contains(lowerUA):
		return DeviceTypeDesktop
	default:
		return DeviceTypeUnknown
	}
}

// ParseOS identifies the operating system of a lowercased header.
func ParseOS(lowerUA string) string {
	switch {
	case strings.Contains(lowerUA, "windows phone"):
		return OSWindowsPhone
	case strings.Contains(lowerUA, "windows"):
		return OSWindows
	case iOSKeywords.contains(lowerUA):
		return OSiOS
	case macOSKeywords.contains(lowerUA):
		return OSMacOS
	case strings.Contains(lowerUA, "android"):
		return OSAndroid
	case chromeOSKeywords.contains(lowerUA):
		return OSChromeOS
	case linuxKeywords.contains(lowerUA):
		return OSLinux
	default:
		return OSUnknown
	}
}
