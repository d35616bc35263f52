package fswalk

import "os"

// SameDevice reports whether child sits on the same device as root. When the
// platform cannot report a device id (see device_windows.go), it
// conservatively reports true so the walk is not truncated on platforms
// without cheap device introspection.
func SameDevice(root, child os.FileInfo) bool {
	rootDev, ok := DeviceID(root)
	if !ok {
		return true
	}
	childDev, ok := DeviceID(child)
	if !ok {
		return true
	}
	return rootDev == childDev
}
