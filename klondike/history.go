package klondike

// DefaultHistoryCapacity bounds the undo log unless overridden.
const DefaultHistoryCapacity = 100

// History is a bounded move log. When the capacity is reached the
// oldest record is evicted, so arbitrarily long games keep a window of
// recent moves available for undo.
type History struct {
	capacity int
	records  []*MoveRecord
	seq      int
}

// NewHistory creates a history bounded to capacity records. A
// non-positive capacity falls back to the default.
func NewHistory(capacity int) *History {
	if capacity <= 0 {
		capacity = DefaultHistoryCapacity
	}
	return &History{capacity: capacity}
}

// Record appends a move record, assigning it the next sequence number.
func (h *History) Record(kind MoveKind, cards []*Card, from, to StackRef) *MoveRecord {
	h.seq++
	rec := &MoveRecord{
		Seq:   h.seq,
		Kind:  kind,
		Cards: cards,
		From:  from,
		To:    to,
	}
	if len(h.records) == h.capacity {
		h.records = h.records[1:]
	}
	h.records = append(h.records, rec)
	return rec
}

// Pop removes and returns the most recent record, or nil if empty.
func (h *History) Pop() *MoveRecord {
	if len(h.records) == 0 {
		return nil
	}
	rec := h.records[len(h.records)-1]
	h.records = h.records[:len(h.records)-1]
	return rec
}

// Last returns the most recent record without removing it, or nil.
// Controllers use it to feed progress counters after a successful
// command.
func (h *History) Last() *MoveRecord {
	if len(h.records) == 0 {
		return nil
	}
	return h.records[len(h.records)-1]
}

// Records returns a copy of the retained records, oldest first.
func (h *History) Records() []*MoveRecord {
	out := make([]*MoveRecord, len(h.records))
	copy(out, h.records)
	return out
}

// Len returns the number of retained records
func (h *History) Len() int {
	return len(h.records)
}

// CanUndo returns true if at least one record is retained
func (h *History) CanUndo() bool {
	return len(h.records) > 0
}

// Clear drops all records and resets the sequence counter, used when a
// new game is dealt.
func (h *History) Clear() {
	h.records = nil
	h.seq = 0
}
