// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: MIT

// Package compositor provides destinations for converted text bitmaps.
//
// Image draws onto any draw.Image on the CPU. Texture uploads each bitmap
// as a GPU texture through gpucontext and draws it with the host's
// TextureDrawer, so the package never depends on a concrete GPU backend.
//
// Both types satisfy the cleartype.Compositor interface.
package compositor
