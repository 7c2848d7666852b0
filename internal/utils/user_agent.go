package utils

import (
	"fmt"
	"runtime"
)

// UserAgent builds the User-Agent header value sent with every gateway call,
// e.g. "Go-SDK/1.0.0 (linux; amd64; go1.26.0)".
func UserAgent(sdkVersion string) string {
	if sdkVersion == "" {
		sdkVersion = "dev"
	}
	return fmt.Sprintf("Go-SDK/%s (%s; %s; %s)", sdkVersion, runtime.GOOS, runtime.GOARCH, runtime.Version())
}
