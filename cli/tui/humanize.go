package tui

import "fmt"

const (
	kib = 1024
	mib = kib * 1024
	gib = mib * 1024
	tib = gib * 1024
	pib = tib * 1024
	eib = pib * 1024
)

// prettySize formats a byte count as a human-readable size using binary
// (1024-based) units.
func prettySize(size uint64) string {
	switch {
	case size >= eib:
		return fmt.Sprintf("%.1f%s", float64(size)/eib, "EiB")
	case size >= pib:
		return fmt.Sprintf("%.1f%s", float64(size)/pib, "PiB")
	case size >= tib:
		return fmt.Sprintf("%.1f%s", float64(size)/tib, "TiB")
	case size >= gib:
		return fmt.Sprintf("%.1f%s", float64(size)/gib, "GiB")
	case size >= mib:
		return fmt.Sprintf("%.1f%s", float64(size)/mib, "MiB")
	case size >= kib:
		return fmt.Sprintf("%.1f%s", float64(size)/kib, "KiB")
	default:
		return fmt.Sprintf("%dB", size)
	}
}
