// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: MIT

package compositor

import "errors"

// Common errors returned by compositors.
var (
	// ErrNilDestination is returned when a compositor is created without a
	// destination.
	ErrNilDestination = errors.New("compositor: nil destination")

	// ErrNilBitmap is returned when Composite is given no bitmap.
	ErrNilBitmap = errors.New("compositor: nil bitmap")

	// ErrInvalidOpacity is returned for opacity outside [0, 1].
	ErrInvalidOpacity = errors.New("compositor: opacity outside [0, 1]")

	// ErrUnsupportedOpacity is returned when the destination cannot apply
	// partial opacity.
	ErrUnsupportedOpacity = errors.New("compositor: destination only supports opacity 1")

	// ErrUnsupportedFormat is returned for bitmaps that are neither BGRA
	// nor RGBA.
	ErrUnsupportedFormat = errors.New("compositor: unsupported pixel format")

	// ErrNoTextureCreator is returned when the drawer has no texture
	// creator.
	ErrNoTextureCreator = errors.New("compositor: drawer has no texture creator")

	// ErrClosed is returned after Close.
	ErrClosed = errors.New("compositor: closed")
)
