package sanitizer

import "strings"

// MaskEmail keeps everything before the first @ and hides the domain:
// "jane.doe@example.com" becomes "jane.doe@***". A value without @ is
// treated as all local part.
func MaskEmail(email string) string {
	local, _, _ := strings.Cut(email, "@")
	return local + "@***"
}

// MaskPhone keeps the first four and the last two characters:
// "+50370000000" becomes "+503****00". Short values overlap rather than
// being padded, so a number under six characters is revealed in full.
func MaskPhone(phone string) string {
	runes := []rune(phone)
	head := runes[:min(4, len(runes))]
	tail := runes[max(0, len(runes)-2):]
	return string(head) + "****" + string(tail)
}
