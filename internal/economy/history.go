package economy

// History is the append-only log of daily records.
type History struct {
	records []Record
}

func (h *History) add(r Record) {
	h.records = append(h.records, r)
}

// Len returns the number of recorded days.
func (h *History) Len() int { return len(h.records) }

// At returns the record at index i, which is day i+1.
func (h *History) At(i int) Record { return h.records[i] }

// Records returns a copy of every record in chronological order.
func (h *History) Records() []Record {
	out := make([]Record, len(h.records))
	copy(out, h.records)
	return out
}

// Window returns up to the last n records, oldest first. n <= 0 returns
// the whole history.
func (h *History) Window(n int) []Record {
	if n <= 0 || n > len(h.records) {
		n = len(h.records)
	}
	out := make([]Record, n)
	copy(out, h.records[len(h.records)-n:])
	return out
}
