//go:build !windows

package fswalk

import (
	"os"
	"syscall"
)

// DeviceID extracts the platform device identifier from a FileInfo's
// underlying stat structure. ok is false when the info was not produced by
// a syscall-backed Stat (practically always true on unix).
func DeviceID(info os.FileInfo) (dev uint64, ok bool) {
	stat, isStat := info.Sys().(*syscall.Stat_t)
	if !isStat {
		return 0, false
	}
	return uint64(stat.Dev), true
}
