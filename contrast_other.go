//go:build !windows

package cleartype

func hostContrastLevel() (int, error) {
	return 0, errNoHostPreference
}
