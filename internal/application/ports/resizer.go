package ports

// Resizer derives a width-constrained copy of an encoded image,
// preserving aspect ratio and source format.
type Resizer interface {
	Resize(data []byte, width int) ([]byte, error)
}
