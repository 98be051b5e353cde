package board

import (
	"regexp"
	"strings"
)

// autoNetRe matches auto-generated net names like "net-001", "net-042".
var autoNetRe = regexp.MustCompile(`^net-\d+$`)

// netNamePriority returns a priority score for a net name.
// Higher is better: 0=auto-generated, 1=component pin, 2=signal/user name.
func netNamePriority(name string) int {
	if autoNetRe.MatchString(name) {
		return 0
	}
	if strings.Contains(name, ".") {
		return 1 // component pin name like "B13.1"
	}
	return 2 // signal name or user-assigned name
}

// BetterNetName returns the higher-priority name between a and b.
// Priority: signal/user names > component pin names > auto-generated
// "net-NNN". At equal priority the shorter name wins, so "GND" beats
// "GND#2"; names of equal length are ordered lexically, so the result does
// not depend on argument order.
func BetterNetName(a, b string) string {
	pa := netNamePriority(a)
	pb := netNamePriority(b)
	if pa > pb {
		return a
	}
	if pb > pa {
		return b
	}
	if len(a) != len(b) {
		if len(a) < len(b) {
			return a
		}
		return b
	}
	if a <= b {
		return a
	}
	return b
}

// NetRegistry assigns stable integer net codes to net names. Merging two
// names keeps the better display name for the surviving code.
type NetRegistry struct {
	codes map[string]int
	names map[int]string
	next  int
}

// NewNetRegistry creates an empty registry. Code 0 is reserved for the
// unconnected net.
func NewNetRegistry() *NetRegistry {
	return &NetRegistry{
		codes: make(map[string]int),
		names: map[int]string{0: ""},
		next:  1,
	}
}

// Code returns the net code for a name, allocating one if needed.
func (r *NetRegistry) Code(name string) int {
	if code, ok := r.codes[name]; ok {
		return code
	}
	code := r.next
	r.next++
	r.codes[name] = code
	r.names[code] = name
	return code
}

// Name returns the display name of a net code.
func (r *NetRegistry) Name(code int) string {
	return r.names[code]
}

// Rename changes the display name of a net code, keeping whichever of the
// old and new names ranks higher.
func (r *NetRegistry) Rename(code int, name string) {
	old := r.names[code]
	best := name
	if old != "" {
		best = BetterNetName(old, name)
	}
	delete(r.codes, old)
	r.codes[best] = code
	r.names[code] = best
}
