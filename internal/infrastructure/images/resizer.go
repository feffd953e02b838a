package images

import (
	"bytes"
	"fmt"
	"image"

	_ "image/gif"
	_ "image/jpeg"
	_ "image/png"

	"github.com/disintegration/imaging"
)

// Resizer scales encoded images down to a target width, keeping the
// aspect ratio and re-encoding in the source format. The same input and
// width always produce the same bytes, so derivative writes are safe to
// repeat.
type Resizer struct{}

func NewResizer() *Resizer { return &Resizer{} }

func (Resizer) Resize(data []byte, width int) ([]byte, error) {
	img, format, err := image.Decode(bytes.NewReader(data))
	if err != nil {
		return nil, fmt.Errorf("decode image: %w", err)
	}

	f, err := imaging.FormatFromExtension("." + format)
	if err != nil {
		return nil, fmt.Errorf("unsupported image format %q: %w", format, err)
	}

	var buf bytes.Buffer
	if err := imaging.Encode(&buf, imaging.Resize(img, width, 0, imaging.Lanczos), f); err != nil {
		return nil, fmt.Errorf("encode thumbnail: %w", err)
	}

	return buf.Bytes(), nil
}
