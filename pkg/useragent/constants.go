package useragent

// Unknown is the value of every field that could not be determined,
// including the short form of an empty header.
const Unknown = "unknown"

// MaxLogLength is the number of characters of the raw header kept by Short.
const MaxLogLength = 50

// Device types represent the category of device that made the request
const (
	DeviceTypeBot     = "bot"
	DeviceTypeMobile  = "mobile"
	DeviceTypeTablet  = "tablet"
	DeviceTypeDesktop = "desktop"
	DeviceTypeTV      = "tv"
	DeviceTypeConsole = "console"
	DeviceTypeUnknown = Unknown
)

// Operating system identifiers
const (
	OSWindows      = "windows"
	OSWindowsPhone = "windows phone"
	OSMacOS        = "macos"
	OSiOS          = "ios"
	OSAndroid      = "android"
	OSLinux        = "linux"
	OSChromeOS     = "chromeos"
	OSUnknown      = Unknown
)
