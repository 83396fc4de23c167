package scope

// History is a fixed-capacity ring of recent values. Pushing into a full
// history overwrites the oldest value.
type History struct {
	data     []float64
	size     int
	writePos int
}

// NewHistory creates a history holding up to capacity values.
func NewHistory(capacity int) *History {
	return &History{data: make([]float64, max(capacity, 1))}
}

// Push appends v, dropping the oldest value when full.
func (h *History) Push(v float64) {
	h.data[h.writePos] = v
	h.writePos = (h.writePos + 1) % len(h.data)
	h.size = min(h.size+1, len(h.data))
}

// Len returns the number of stored values.
func (h *History) Len() int {
	return h.size
}

// Capacity returns the maximum number of stored values.
func (h *History) Capacity() int {
	return len(h.data)
}

// At returns the i-th stored value, oldest first.
func (h *History) At(i int) float64 {
	readPos := h.writePos - h.size
	if readPos < 0 {
		readPos += len(h.data)
	}
	return h.data[(readPos+i)%len(h.data)]
}

// Resize changes the capacity, keeping the newest values that fit.
func (h *History) Resize(capacity int) {
	capacity = max(capacity, 1)
	if capacity == len(h.data) {
		return
	}

	keep := min(h.size, capacity)
	newData := make([]float64, capacity)
	for i := range keep {
		newData[i] = h.At(h.size - keep + i)
	}

	h.data = newData
	h.size = keep
	h.writePos = keep % capacity
}

// Clear removes all values.
func (h *History) Clear() {
	h.size = 0
	h.writePos = 0
}
