// Package wwn decodes World Wide Names (WWNs) into their structural fields.
//
// A WWN is a 64-bit or 128-bit identifier assigned to a storage or network
// endpoint (Fibre Channel, SAS). Its leading hex digit is the Network
// Address Authority (NAA), which determines where the 24-bit vendor OUI and
// the vendor-assigned bits sit inside the identifier.
package wwn

import (
	"errors"
	"fmt"
	"strings"
)

var (
	// ErrInvalidFormat is returned when the input is not a 16 or 32 digit
	// hex string, or when its length does not match the layout implied by
	// its NAA type.
	ErrInvalidFormat = errors.New("invalid WWN format")

	// ErrUnsupportedNAA is returned when the leading digit is not one of
	// the supported NAA types (1, 2, 5, 6).
	ErrUnsupportedNAA = errors.New("unsupported NAA type")
)

// NAA identifies the structural layout of a WWN.
type NAA string

// NAA types from the FC-FS / SPC naming conventions.
const (
	IEEE               NAA = "1" // 64-bit, OUI at digits [4:10]
	IEEEExtended       NAA = "2" // 64-bit, OUI at digits [4:10]
	Registered         NAA = "5" // 64-bit, OUI at digits [2:8]
	RegisteredExtended NAA = "6" // 128-bit, OUI at digits [2:8] plus vendor extension
)

// Description returns a human-readable name for the NAA type.
func (n NAA) Description() string {
	switch n {
	case IEEE:
		return "IEEE 803.2"
	case IEEEExtended:
		return "IEEE Extended"
	case Registered:
		return "IEEE Registered"
	case RegisteredExtended:
		return "IEEE Registered Extended"
	default:
		return "unknown"
	}
}

// WWN is a decoded World Wide Name. Instances are immutable and only
// produced by [Parse].
type WWN struct {
	normalized      string
	naa             NAA
	oui             string
	vendorSequence  string
	vendorExtension string
}

// Normalize strips colon separators and lowercases the input.
//
// It performs no validation; use [IsValid] or [Parse] for that.
func Normalize(s string) string {
	return strings.ToLower(strings.ReplaceAll(s, ":", ""))
}

// IsValid reports whether the input normalizes to a 16 or 32 digit hex
// string. It never returns an error; any mismatch yields false.
func IsValid(s string) bool {
	n := Normalize(s)
	if len(n) != 16 && len(n) != 32 {
		return false
	}
	return isHex(n)
}

func isHex(s string) bool {
	for _, c := range s {
		if (c < '0' || c > '9') && (c < 'a' || c > 'f') {
			return false
		}
	}
	return true
}

// Parse normalizes, validates, and decomposes a WWN string.
//
// The input may be colon-separated into byte pairs and is case-insensitive.
// Parse returns [ErrInvalidFormat] for malformed input (wrong length,
// non-hex characters, or a length that does not match the NAA layout) and
// [ErrUnsupportedNAA] when the leading digit is not 1, 2, 5 or 6.
//
// Example:
//
//	w, err := wwn.Parse("50:06:01:60:08:60:2c:04")
//	if err != nil {
//	    log.Fatal(err)
//	}
//	fmt.Println(w.OUI()) // "060160"
func Parse(s string) (*WWN, error) {
	n := Normalize(s)
	if (len(n) != 16 && len(n) != 32) || !isHex(n) {
		return nil, fmt.Errorf("%w: %q", ErrInvalidFormat, s)
	}

	w := &WWN{normalized: n, naa: NAA(n[:1])}
	switch w.naa {
	case IEEE, IEEEExtended:
		if len(n) != 16 {
			return nil, fmt.Errorf("%w: NAA %s requires a 64-bit WWN", ErrInvalidFormat, w.naa)
		}
		w.oui = n[4:10]
		w.vendorSequence = n[10:]
	case Registered:
		if len(n) != 16 {
			return nil, fmt.Errorf("%w: NAA %s requires a 64-bit WWN", ErrInvalidFormat, w.naa)
		}
		w.oui = n[2:8]
		w.vendorSequence = n[8:]
	case RegisteredExtended:
		if len(n) != 32 {
			return nil, fmt.Errorf("%w: NAA %s requires a 128-bit WWN", ErrInvalidFormat, w.naa)
		}
		w.oui = n[2:8]
		w.vendorSequence = n[8:16]
		w.vendorExtension = n[16:]
	default:
		return nil, fmt.Errorf("%w: %q", ErrUnsupportedNAA, string(n[0]))
	}

	return w, nil
}

// Normalized returns the normalized hex form of the WWN.
func (w *WWN) Normalized() string {
	return w.normalized
}

// NAA returns the Network Address Authority type.
func (w *WWN) NAA() NAA {
	return w.naa
}

// OUI returns the 24-bit vendor identifier as a lowercase 6-digit hex string.
func (w *WWN) OUI() string {
	return w.oui
}

// VendorSequence returns the vendor-assigned serial or extended identifier
// bits following the OUI.
func (w *WWN) VendorSequence() string {
	return w.vendorSequence
}

// VendorExtension returns the trailing vendor-specific extension and true
// for NAA 6 WWNs. For all other NAA types it returns ("", false); absence
// is an expected outcome, not an error.
func (w *WWN) VendorExtension() (string, bool) {
	if w.naa != RegisteredExtended {
		return "", false
	}
	return w.vendorExtension, true
}
