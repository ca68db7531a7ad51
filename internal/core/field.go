package core

// NormalizeEpsilon is the smallest denominator Normalize will divide by. A
// field whose values are all equal normalizes to zero instead of dividing by
// the (zero) value range.
const NormalizeEpsilon = 1e-9

// Field stores a dense 2D grid of float64 samples in row-major order.
type Field struct {
	W, H int
	data []float64
}

// NewField allocates a field with the given dimensions.
func NewField(w, h int) *Field {
	if w <= 0 {
		w = 1
	}
	if h <= 0 {
		h = 1
	}
	return &Field{W: w, H: h, data: make([]float64, w*h)}
}

// Values exposes the backing slice so callers can read/write samples directly.
func (f *Field) Values() []float64 { return f.data }

// Index returns the linear slice index for coordinates (x, y).
func (f *Field) Index(x, y int) int { return y*f.W + x }

// At returns the sample at (x, y).
func (f *Field) At(x, y int) float64 { return f.data[y*f.W+x] }

// Set stores a sample at (x, y).
func (f *Field) Set(x, y int, v float64) { f.data[y*f.W+x] = v }

// MinMax scans the whole grid and returns its extremes.
func (f *Field) MinMax() (min, max float64) {
	min = f.data[0]
	max = f.data[0]
	for _, v := range f.data[1:] {
		if v < min {
			min = v
		}
		if v > max {
			max = v
		}
	}
	return min, max
}

// Normalize rescales every sample into [0, 1] using the whole grid's min and
// max. The denominator is clamped to eps so a flat field maps to zero rather
// than dividing by zero.
func (f *Field) Normalize(eps float64) {
	if eps <= 0 {
		eps = NormalizeEpsilon
	}
	min, max := f.MinMax()
	den := max - min
	if den < eps {
		den = eps
	}
	for i, v := range f.data {
		f.data[i] = (v - min) / den
	}
}

// Clone returns a deep copy of the field.
func (f *Field) Clone() *Field {
	c := &Field{W: f.W, H: f.H, data: make([]float64, len(f.data))}
	copy(c.data, f.data)
	return c
}
