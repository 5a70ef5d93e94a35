// Package pixbuf manages the byte buffers behind coverage masks and output
// bitmaps.
//
// Buffers are grouped by exact length so a glyph run drawn every frame
// reuses the same storage. A buffer taken from the pool is owned by exactly
// one caller until it is handed back with Put.
package pixbuf

import (
	"errors"
	"fmt"
	"sync"
)

// MaxBytes caps a single allocation. A coverage mask for a 4K-wide run of
// large glyphs is a few tens of MiB; anything past this is a runaway bounds
// computation.
const MaxBytes = 256 << 20

// ErrResourceExhaustion is returned when a buffer request exceeds MaxBytes.
var ErrResourceExhaustion = errors.New("pixbuf: buffer allocation exceeds limit")

// Size returns width*height*bpp, failing when the product overflows or
// exceeds MaxBytes.
func Size(width, height, bpp int) (int, error) {
	if width <= 0 || height <= 0 || bpp <= 0 {
		return 0, nil
	}
	if width > MaxBytes/bpp || height > MaxBytes/(width*bpp) {
		return 0, fmt.Errorf("%w: %dx%dx%d", ErrResourceExhaustion, width, height, bpp)
	}
	return width * height * bpp, nil
}

// Pool is a thread-safe pool of byte buffers bucketed by length.
type Pool struct {
	mu      sync.Mutex
	buckets map[int][][]byte
	maxSize int // max buffers per bucket, 0 = unlimited
}

// NewPool creates a pool keeping at most maxPerBucket buffers per length.
func NewPool(maxPerBucket int) *Pool {
	return &Pool{
		buckets: make(map[int][][]byte),
		maxSize: maxPerBucket,
	}
}

// Get returns a buffer of exactly n bytes, every byte set to fill.
func (p *Pool) Get(n int, fill byte) ([]byte, error) {
	if n > MaxBytes {
		return nil, fmt.Errorf("%w: %d bytes", ErrResourceExhaustion, n)
	}
	if n <= 0 {
		return nil, nil
	}

	p.mu.Lock()
	var buf []byte
	if bucket := p.buckets[n]; len(bucket) > 0 {
		buf = bucket[len(bucket)-1]
		p.buckets[n] = bucket[:len(bucket)-1]
	}
	p.mu.Unlock()

	if buf == nil {
		buf = make([]byte, n)
		if fill == 0 {
			return buf, nil
		}
	}
	for i := range buf {
		buf[i] = fill
	}
	return buf, nil
}

// Put hands buf back to the pool. The caller must not touch buf afterwards.
func (p *Pool) Put(buf []byte) {
	if len(buf) == 0 {
		return
	}
	n := len(buf)

	p.mu.Lock()
	defer p.mu.Unlock()

	bucket := p.buckets[n]
	if p.maxSize > 0 && len(bucket) >= p.maxSize {
		return
	}
	p.buckets[n] = append(bucket, buf[:n:n])
}

// Len returns the number of idle buffers of length n.
func (p *Pool) Len(n int) int {
	p.mu.Lock()
	defer p.mu.Unlock()
	return len(p.buckets[n])
}

var defaultPool = NewPool(8)

// Get takes a buffer from the default pool.
func Get(n int, fill byte) ([]byte, error) { return defaultPool.Get(n, fill) }

// Put returns a buffer to the default pool.
func Put(buf []byte) { defaultPool.Put(buf) }
