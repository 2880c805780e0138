// Package oui resolves 24-bit Organizationally Unique Identifiers to vendor
// names using the IEEE OUI registry document, with a local cache and a
// single best-effort network fallback.
package oui

import (
	"regexp"
	"strings"
)

// Registry lines have the form "XX-XX-XX   (hex)\t\tVendor Name". The
// parenthesized group is matched but ignored; the vendor name is the rest
// of the line after the committee-assigned spacing.
var lineRegexp = regexp.MustCompile(`^([0-9A-Fa-f]{2})-([0-9A-Fa-f]{2})-([0-9A-Fa-f]{2})\s+\([^)]*\)(.*)$`)

// Parse scans a raw IEEE OUI registry document and returns a mapping from
// lowercase 6-hex-digit OUI to vendor display name.
//
// Lines that do not match the registry entry format are skipped. Duplicate
// OUIs resolve to the last entry parsed. Parse never fails; unparseable or
// empty input yields an empty mapping.
func Parse(text []byte) map[string]string {
	entries := make(map[string]string)
	for line := range strings.Lines(string(text)) {
		m := lineRegexp.FindStringSubmatch(strings.TrimRight(line, "\r\n"))
		if m == nil {
			continue
		}
		key := strings.ToLower(m[1] + m[2] + m[3])
		entries[key] = strings.Trim(m[4], " \t")
	}
	return entries
}

// NormalizeKey lowercases an OUI and strips ":" and "-" separators, so
// "AA-BB-CC", "aa:bb:cc" and "aabbcc" address the same registry entry.
func NormalizeKey(s string) string {
	s = strings.ReplaceAll(s, ":", "")
	s = strings.ReplaceAll(s, "-", "")
	return strings.ToLower(s)
}

// IsValidKey reports whether s normalizes to a 6-hex-digit OUI.
func IsValidKey(s string) bool {
	n := NormalizeKey(s)
	if len(n) != 6 {
		return false
	}
	for _, c := range n {
		if (c < '0' || c > '9') && (c < 'a' || c > 'f') {
			return false
		}
	}
	return true
}
