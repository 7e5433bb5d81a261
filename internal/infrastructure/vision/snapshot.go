package vision

import (
	"bytes"
	"errors"
	"fmt"
	"image"

	"github.com/disintegration/imaging"
)

// ErrGoCVDisabled бинарник собран без тега gocv
var ErrGoCVDisabled = errors.New("gocv build tag is not enabled")

// EncodeSnapshot вписывает картинку в квадрат maxSide и кодирует в JPEG.
// Картинки меньше maxSide не увеличиваются.
func EncodeSnapshot(img image.Image, maxSide int) ([]byte, error) {
	if img == nil {
		return nil, errors.New("nil image")
	}
	b := img.Bounds()
	if b.Dx() == 0 || b.Dy() == 0 {
		return nil, errors.New("empty image")
	}

	if maxSide > 0 && (b.Dx() > maxSide || b.Dy() > maxSide) {
		img = imaging.Fit(img, maxSide, maxSide, imaging.Lanczos)
	}

	var buf bytes.Buffer
	if err := imaging.Encode(&buf, img, imaging.JPEG, imaging.JPEGQuality(85)); err != nil {
		return nil, fmt.Errorf("encode snapshot: %w", err)
	}
	return buf.Bytes(), nil
}
