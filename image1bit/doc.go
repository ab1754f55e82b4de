// Package image1bit provides a 1-bit monochrome image format laid out the way
// the SSD1306 display controller stores its RAM.
//
// Pixels are packed vertically: each byte covers one column of an 8-pixel
// tall band, called a page. The least significant bit is the top pixel of the
// band. Bytes are ordered page by page, and within a page from left to right,
// which is exactly the order in which the controller expects them.
//
// Memory layout of a 4x16 image (two pages):
//
//	Pix[0..3]  page 0, columns 0..3, rows 0..7
//	Pix[4..7]  page 1, columns 0..3, rows 8..15
//
//	Pixel (2, 10) lives in Pix[1*4+2], bit 10%8 = 2.
//
// This package provides:
//
// - Bit: a color type that is either on or off
// - BitModel: a color model converting standard Go colors to Bit
// - VerticalLSB: an image.Image / draw.Image implementation with the above
// layout, plus the additive SetPixel and Clear operations used by a
// clear-then-redraw render loop
//
// Example usage:
//
//	img := image1bit.NewVerticalLSB(image.Rect(0, 0, 128, 32))
//	img.SetPixel(10, 20)
//	println(img.BitAt(10, 20)) // Output: true
//	img.Clear()
package image1bit
