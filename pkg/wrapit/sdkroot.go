package wrapit

import (
	"fmt"
	"os"
	"os/exec"
	"strings"
)

// xcrunSDKPath queries the developer tools for the macOS SDK location.
// Replaced in tests.
var xcrunSDKPath = func() (string, error) {
	out, err := exec.Command("xcrun", "--sdk", "macosx", "--show-sdk-path").Output()
	if err != nil {
		return "", fmt.Errorf("xcrun --show-sdk-path: %w", err)
	}
	return strings.TrimSpace(string(out)), nil
}

// ensureSDKRoot validates a caller-provided SDK root, or discovers one
// via xcrun when current is empty. A missing directory is an error in
// both cases.
func ensureSDKRoot(current string) (string, error) {
	sdkroot := current
	if sdkroot == "" {
		discovered, err := xcrunSDKPath()
		if err != nil {
			return "", err
		}
		sdkroot = discovered
	}
	info, err := os.Stat(sdkroot)
	if err != nil || !info.IsDir() {
		return "", fmt.Errorf("SDK root %s does not exist", sdkroot)
	}
	return sdkroot, nil
}
