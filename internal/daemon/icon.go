package daemon

import (
	"bytes"
	"encoding/binary"
	"image"
	"image/color"
	"image/png"
)

const iconSize = 32

// calendarIcon draws a small calendar page and wraps it as a single-image ICO
func calendarIcon() []byte {
	img := image.NewRGBA(image.Rect(0, 0, iconSize, iconSize))
	header := color.RGBA{R: 0xC6, G: 0x28, B: 0x28, A: 0xFF}
	page := color.RGBA{R: 0xFF, G: 0xFF, B: 0xFF, A: 0xFF}
	grid := color.RGBA{R: 0x42, G: 0x42, B: 0x42, A: 0xFF}

	for y := 2; y < iconSize-2; y++ {
		for x := 2; x < iconSize-2; x++ {
			switch {
			case y < 10:
				img.Set(x, y, header)
			case (x-2)%7 == 0 || (y-10)%7 == 0:
				img.Set(x, y, grid)
			default:
				img.Set(x, y, page)
			}
		}
	}

	var pngData bytes.Buffer
	if err := png.Encode(&pngData, img); err != nil {
		return nil
	}
	return wrapICO(pngData.Bytes(), iconSize)
}

// wrapICO builds an ICO container holding one PNG-encoded image
func wrapICO(pngData []byte, size int) []byte {
	var buf bytes.Buffer

	// ICONDIR: reserved, type 1 (icon), one image
	binary.Write(&buf, binary.LittleEndian, [3]uint16{0, 1, 1})

	// ICONDIRENTRY; 0 means 256 for width and height
	dim := byte(size)
	if size >= 256 {
		dim = 0
	}
	buf.Write([]byte{dim, dim, 0, 0})
	binary.Write(&buf, binary.LittleEndian, uint16(1))  // color planes
	binary.Write(&buf, binary.LittleEndian, uint16(32)) // bits per pixel
	binary.Write(&buf, binary.LittleEndian, uint32(len(pngData)))
	binary.Write(&buf, binary.LittleEndian, uint32(6+16)) // data offset

	buf.Write(pngData)
	return buf.Bytes()
}
