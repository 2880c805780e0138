package wwn

import "strings"

// ColonPair splits a hex string into consecutive 2-character groups joined
// by colons. A trailing odd character forms its own group.
//
// Example:
//
//	wwn.ColonPair("08602c04") // "08:60:2c:04"
func ColonPair(s string) string {
	if len(s) <= 2 {
		return s
	}
	var b strings.Builder
	b.Grow(len(s) + len(s)/2)
	for i := 0; i < len(s); i += 2 {
		if i > 0 {
			b.WriteByte(':')
		}
		end := i + 2
		if end > len(s) {
			end = len(s)
		}
		b.WriteString(s[i:end])
	}
	return b.String()
}

// String returns the bracketed human-readable form of the WWN:
// "[naa][oui][vendor-sequence]" with each hex field colon-paired, followed
// by a "[extension]" bracket when a vendor-specific extension is present.
//
// Example:
//
//	w, _ := wwn.Parse("50:06:01:60:08:60:2c:04")
//	w.String() // "[5][06:01:60][08:60:2c:04]"
func (w *WWN) String() string {
	return "[" + string(w.naa) + "][" + ColonPair(w.oui) + "]" + w.VendorSpecificString()
}

// VendorSpecificString returns only the vendor-assigned brackets of the
// formatted WWN: the vendor sequence and, when present, the extension.
func (w *WWN) VendorSpecificString() string {
	s := "[" + ColonPair(w.vendorSequence) + "]"
	if ext, ok := w.VendorExtension(); ok {
		s += "[" + ColonPair(ext) + "]"
	}
	return s
}
