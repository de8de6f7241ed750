package pascal3d

import "fmt"

// ImageShape is the per-sample shape of an image array.
type ImageShape struct {
	Height   int
	Width    int
	Channels int
}

// DefaultImageShape is the crop size of the preprocessed dataset.
var DefaultImageShape = ImageShape{Height: 224, Width: 224, Channels: 3}

// Size returns the number of elements in one image.
func (s ImageShape) Size() int {
	return s.Height * s.Width * s.Channels
}

func (s ImageShape) String() string {
	return fmt.Sprintf("%dx%dx%d", s.Height, s.Width, s.Channels)
}

// Images holds N images of the same shape, stored row-major (N, H, W, C).
type Images struct {
	Shape ImageShape
	Pix   []float32
}

// NewImages wraps pix as images of the given shape. len(pix) must be a
// multiple of shape.Size().
func NewImages(shape ImageShape, pix []float32) (*Images, error) {
	size := shape.Size()
	if size <= 0 {
		return nil, fmt.Errorf("image shape %v: %w", shape, ErrShapeMismatch)
	}
	if len(pix)%size != 0 {
		return nil, fmt.Errorf("%d elements is not a multiple of image size %d: %w", len(pix), size, ErrShapeMismatch)
	}
	return &Images{Shape: shape, Pix: pix}, nil
}

// Len returns the number of images.
func (im *Images) Len() int {
	if im == nil || im.Shape.Size() == 0 {
		return 0
	}
	return len(im.Pix) / im.Shape.Size()
}

// At returns the pixels of image i. The slice aliases im.Pix.
func (im *Images) At(i int) []float32 {
	size := im.Shape.Size()
	return im.Pix[i*size : (i+1)*size : (i+1)*size]
}

// Take returns a copy of the images at idx, in idx order. A nil receiver
// yields an empty block.
func (im *Images) Take(idx []int) *Images {
	if im == nil {
		return &Images{}
	}
	size := im.Shape.Size()
	out := &Images{Shape: im.Shape, Pix: make([]float32, 0, len(idx)*size)}
	for _, i := range idx {
		out.Pix = append(out.Pix, im.At(i)...)
	}
	return out
}

// concatImages stacks parts along the sample axis. All parts must share a shape.
func concatImages(parts []*Images) (*Images, error) {
	if len(parts) == 0 {
		return &Images{Shape: DefaultImageShape}, nil
	}

	for i, p := range parts {
		if p == nil {
			return nil, fmt.Errorf("part %d has no images: %w", i, ErrShapeMismatch)
		}
	}

	shape := parts[0].Shape
	total := 0
	for _, p := range parts {
		if p.Shape != shape {
			return nil, fmt.Errorf("image shape %v differs from %v: %w", p.Shape, shape, ErrShapeMismatch)
		}
		total += len(p.Pix)
	}

	out := &Images{Shape: shape, Pix: make([]float32, 0, total)}
	for _, p := range parts {
		out.Pix = append(out.Pix, p.Pix...)
	}
	return out, nil
}
