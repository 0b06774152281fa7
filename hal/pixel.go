package hal

// PixelOffset returns the byte offset of (x, y) in fb, or -1 when out of
// bounds or the format is unknown.
func PixelOffset(fb Framebuffer, x, y int) int {
	if fb == nil || x < 0 || y < 0 || x >= fb.Width() || y >= fb.Height() {
		return -1
	}
	bpp := fb.Format().BytesPerPixel()
	if bpp == 0 {
		return -1
	}
	off := y*fb.StrideBytes() + x*bpp
	if off < 0 || off+bpp > len(fb.Buffer()) {
		return -1
	}
	return off
}

// PixelRGB reads a pixel. Out-of-bounds reads return black.
func PixelRGB(fb Framebuffer, x, y int) (r, g, b uint8) {
	off := PixelOffset(fb, x, y)
	if off < 0 {
		return 0, 0, 0
	}
	buf := fb.Buffer()
	return buf[off], buf[off+1], buf[off+2]
}
