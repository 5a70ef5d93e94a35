//go:build windows

package cleartype

import (
	"fmt"
	"unsafe"

	"golang.org/x/sys/windows"
)

const spiGetFontSmoothingContrast = 0x200C

var procSystemParametersInfoW = windows.NewLazySystemDLL("user32.dll").NewProc("SystemParametersInfoW")

// hostContrastLevel returns the SPI_GETFONTSMOOTHINGCONTRAST setting.
func hostContrastLevel() (int, error) {
	var level uint32
	r, _, err := procSystemParametersInfoW.Call(
		spiGetFontSmoothingContrast, 0, uintptr(unsafe.Pointer(&level)), 0)
	if r == 0 {
		return 0, fmt.Errorf("cleartype: SystemParametersInfoW: %w", err)
	}
	return int(level), nil
}
