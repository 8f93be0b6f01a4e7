package charts

import (
	"bytes"
	"fmt"
	"image"
	"image/draw"
	"image/png"
	"os"
)

// StackVertical copies two images onto a shared canvas, top one first. The
// canvas is as wide as the wider image; a narrower one leaves its right
// margin blank.
func StackVertical(top, bottom image.Image) image.Image {
	topWidth, topHeight := top.Bounds().Dx(), top.Bounds().Dy()
	bottomWidth, bottomHeight := bottom.Bounds().Dx(), bottom.Bounds().Dy()

	width := topWidth
	if bottomWidth > width {
		width = bottomWidth
	}

	canvas := image.NewRGBA(image.Rect(0, 0, width, topHeight+bottomHeight))

	draw.Draw(canvas, image.Rect(0, 0, topWidth, topHeight), top, top.Bounds().Min, draw.Src)
	draw.Draw(canvas, image.Rect(0, topHeight, bottomWidth, topHeight+bottomHeight), bottom, bottom.Bounds().Min, draw.Src)

	return canvas
}

// WriteStacked decodes two rendered PNGs, stacks them vertically and writes
// the combined image to path.
func WriteStacked(path string, top, bottom []byte) error {
	topImage, err := png.Decode(bytes.NewReader(top))
	if err != nil {
		return fmt.Errorf("WriteStacked: failed to decode top image: %v", err)
	}

	bottomImage, err := png.Decode(bytes.NewReader(bottom))
	if err != nil {
		return fmt.Errorf("WriteStacked: failed to decode bottom image: %v", err)
	}

	file, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("WriteStacked: failed to create %s: %v", path, err)
	}

	defer file.Close()

	if err := png.Encode(file, StackVertical(topImage, bottomImage)); err != nil {
		return fmt.Errorf("WriteStacked: failed to encode %s: %v", path, err)
	}

	return nil
}
