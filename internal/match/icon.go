package match

import "unicode/utf16"

// Icons is the fixed, ordered set of decorative team icons.
var Icons = []string{"⚽", "🏆", "🏘️", "⚔️", "⭐", "🔥", "🛡️", "⚡"}

// Hash computes the rolling string hash used for icon selection.
// Each UTF-16 code unit c updates h = c + ((h << 5) - h) with int32 wraparound.
func Hash(name string) int32 {
	var h int32
	for _, c := range utf16.Encode([]rune(name)) {
		h = int32(c) + ((h << 5) - h)
	}
	return h
}

// Icon returns the decorative icon for a team name.
// Identical names always yield the same icon.
func Icon(name string) string {
	return Icons[iconIndex(Hash(name))]
}

// iconIndex maps a hash to abs(h) mod len(Icons).
func iconIndex(h int32) int {
	// int64 so that abs(MinInt32) does not overflow
	v := int64(h)
	if v < 0 {
		v = -v
	}
	return int(v % int64(len(Icons)))
}
