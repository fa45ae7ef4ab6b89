package services

import "strings"

// Locale is a supported language code. The set is closed: adding a locale
// means adding a constant, a message file, and an entry in the dictionary
// dispatch table.
type Locale string

const (
	LocaleEN Locale = "en"
	LocaleFR Locale = "fr"
	LocaleJA Locale = "ja"
)

// Locales enumerates every supported locale. The first entry is the
// default used when a request path carries no recognized prefix.
var Locales = []Locale{LocaleEN, LocaleFR, LocaleJA}

// DefaultLocale is the fallback for unprefixed paths and unknown codes.
var DefaultLocale = Locales[0]

// IsLocale reports whether code is a member of the supported set.
func IsLocale(code string) bool {
	for _, l := range Locales {
		if string(l) == code {
			return true
		}
	}
	return false
}

// HasLocale reports whether pathname equals "/{locale}" or starts with
// "/{locale}/" for a supported locale.
func HasLocale(pathname string) bool {
	for _, l := range Locales {
		prefix := "/" + string(l)
		if pathname == prefix || strings.HasPrefix(pathname, prefix+"/") {
			return true
		}
	}
	return false
}

// ResolveLocale extracts the first path segment and returns it when it is
// a supported locale, otherwise DefaultLocale.
func ResolveLocale(pathname string) Locale {
	seg := strings.TrimPrefix(pathname, "/")
	if i := strings.IndexByte(seg, '/'); i >= 0 {
		seg = seg[:i]
	}
	if IsLocale(seg) {
		return Locale(seg)
	}
	return DefaultLocale
}

// RewritePath prefixes an unprefixed pathname with the resolved locale and
// reports whether a redirect is needed. Prefixed paths pass through
// untouched.
func RewritePath(pathname string) (string, bool) {
	if HasLocale(pathname) {
		return pathname, false
	}
	return "/" + string(ResolveLocale(pathname)) + pathname, true
}
