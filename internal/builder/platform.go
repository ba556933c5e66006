package builder

import (
	"runtime"
	"strings"
)

// PlatformTag returns the artifact name suffix for the current OS:
// Linux, Darwin, or Windows.
func PlatformTag() string {
	switch runtime.GOOS {
	case "linux":
		return "Linux"
	case "darwin":
		return "Darwin"
	case "windows":
		return "Windows"
	default:
		return strings.ToUpper(runtime.GOOS[:1]) + runtime.GOOS[1:]
	}
}
