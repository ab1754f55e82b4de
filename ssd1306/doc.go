// Package ssd1306 controls a SSD1306 OLED display via SPI.
//
// The SSD1306 is a monochrome OLED controller supporting up to 128×64 pixels.
// This driver targets the 128×32 panel found on the chipKIT Basic I/O shield
// and implements the display.Drawer interface from periph.io.
//
// # Display Characteristics
//
// - 1 bit per pixel
// - RAM organized in pages of 8 rows, one byte per column, LSB on top
// - Adjustable contrast (0-255)
// - Display inversion
//
// # Hardware Connection
//
//	Display Pin → System Pin
//	GND         → GND
//	VCC         → 3.3V
//	SCL/CLK     → SPI Clock (SCLK)
//	SDA/MOSI    → SPI Data (MOSI)
//	DC          → GPIO (any available pin)
//	RES         → Optional: GPIO for hardware reset
//	VDDCTL      → Optional: GPIO switching the logic supply (active low)
//	VBATCTL     → Optional: GPIO switching the panel supply (active low)
//
// # Basic Usage
//
//	host.Init()
//	bus, _ := spireg.Open("")
//	dev, _ := ssd1306.NewSPI(bus, gpioreg.ByName("GPIO25"), &ssd1306.Opts{
//		W:    128,
//		H:    32,
//		RST:  gpioreg.ByName("GPIO24"),
//		VDD:  gpioreg.ByName("GPIO23"),
//		VBAT: gpioreg.ByName("GPIO22"),
//	})
//	defer dev.Halt()
//
//	img := image1bit.NewVerticalLSB(dev.Bounds())
//	img.SetPixel(10, 10)
//	dev.Draw(dev.Bounds(), img, image.Point{})
//
// # Drawing Modes
//
// Write sends raw page-ordered pixel data, every page every time:
//
//	pixels := make([]byte, 128*32/8)
//	dev.Write(pixels)
//
// Draw accepts any image.Image and only sends the pages that changed since
// the previous frame. A full-size *image1bit.VerticalLSB is sent without
// conversion.
//
// # Datasheet
//
// https://cdn-shop.adafruit.com/datasheets/SSD1306.pdf
package ssd1306
