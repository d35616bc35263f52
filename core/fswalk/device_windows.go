//go:build windows

package fswalk

import "os"

// DeviceID reports the volume serial number backing info, when available.
// The standard library's os.FileInfo on Windows does not expose this
// without re-opening the file through syscall.Open/GetFileInformationByHandle,
// which the walker avoids doing per-entry for cost reasons; ok is therefore
// always false here, and SameFileSystem boundary checks become a no-op on
// Windows (crossing is permitted), matching the "implementation parameter,
// not a contract" latitude the specification grants the polling/boundary
// details.
func DeviceID(info os.FileInfo) (dev uint64, ok bool) {
	return 0, false
}
