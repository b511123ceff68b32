package hazard

import (
	"fmt"
	"time"
)

// Selection filters a catalog down to a subset of events. Zero-valued
// criteria are ignored; populated ones intersect. Selecting on a field
// the catalog does not carry fails with ErrFieldMissing.
type Selection struct {
	// EventIDs keeps the listed events. Every listed id must exist.
	EventIDs []int64
	// EventNames keeps the listed events. Every listed name must exist.
	EventNames []string
	// Orig, when set, keeps only historical (true) or synthetic (false)
	// events.
	Orig *bool
	// DateFrom and DateTo bound the event date, both ends inclusive.
	// A zero time leaves that end open.
	DateFrom time.Time
	DateTo   time.Time
}

// Select returns a new catalog holding the events matching every
// populated criterion, in catalog order. The centroid grid is shared
// with the receiver; per-event fields and matrix rows are copied.
//
// Returns ErrNoEvents when nothing matches, ErrEventNotFound when a
// requested id or name is absent, and ErrFieldMissing when a criterion
// targets a field the catalog lacks.
//
// Complexity: O(events + nnz of the kept rows).
func (h *Hazard) Select(sel Selection) (*Hazard, error) {
	n := h.Size()
	if n == 0 {
		return nil, ErrNoEvents
	}
	keep := make([]bool, n)
	for i := range keep {
		keep[i] = true
	}

	if len(sel.EventIDs) > 0 {
		if err := checkLen("event ids", len(h.EventID), n); err != nil {
			return nil, err
		}
		want := make(map[int64]bool, len(sel.EventIDs))
		for _, id := range sel.EventIDs {
			want[id] = false
		}
		for _, id := range h.EventID {
			if _, ok := want[id]; ok {
				want[id] = true
			}
		}
		for _, id := range sel.EventIDs {
			if !want[id] {
				return nil, fmt.Errorf("%w: event id %d", ErrEventNotFound, id)
			}
		}
		for i, id := range h.EventID {
			if _, ok := want[id]; !ok {
				keep[i] = false
			}
		}
	}

	if len(sel.EventNames) > 0 {
		if err := checkLen("event names", len(h.EventName), n); err != nil {
			return nil, err
		}
		want := make(map[string]bool, len(sel.EventNames))
		for _, name := range sel.EventNames {
			want[name] = false
		}
		for _, name := range h.EventName {
			if _, ok := want[name]; ok {
				want[name] = true
			}
		}
		for _, name := range sel.EventNames {
			if !want[name] {
				return nil, fmt.Errorf("%w: event name %q", ErrEventNotFound, name)
			}
		}
		for i, name := range h.EventName {
			if _, ok := want[name]; !ok {
				keep[i] = false
			}
		}
	}

	if sel.Orig != nil {
		if err := checkLen("orig flags", len(h.Orig), n); err != nil {
			return nil, err
		}
		for i, orig := range h.Orig {
			if orig != *sel.Orig {
				keep[i] = false
			}
		}
	}

	if !sel.DateFrom.IsZero() || !sel.DateTo.IsZero() {
		if err := checkLen("event dates", len(h.Date), n); err != nil {
			return nil, err
		}
		for i, d := range h.Date {
			if !sel.DateFrom.IsZero() && d.Before(sel.DateFrom) {
				keep[i] = false
			}
			if !sel.DateTo.IsZero() && d.After(sel.DateTo) {
				keep[i] = false
			}
		}
	}

	idx := make([]int, 0, n)
	for i, ok := range keep {
		if ok {
			idx = append(idx, i)
		}
	}
	if len(idx) == 0 {
		return nil, ErrNoEvents
	}
	return h.subset(idx)
}

// subset copies the events at idx into a fresh catalog. The centroid
// grid is shared, everything else is copied field by field.
func (h *Hazard) subset(idx []int) (*Hazard, error) {
	out := &Hazard{
		Type:      h.Type,
		Units:     h.Units,
		Centroids: h.Centroids,
	}
	if len(h.EventID) > 0 {
		out.EventID = make([]int64, len(idx))
		for i, j := range idx {
			out.EventID[i] = h.EventID[j]
		}
	}
	if len(h.EventName) > 0 {
		out.EventName = make([]string, len(idx))
		for i, j := range idx {
			out.EventName[i] = h.EventName[j]
		}
	}
	if len(h.Date) > 0 {
		out.Date = make([]time.Time, len(idx))
		for i, j := range idx {
			out.Date[i] = h.Date[j]
		}
	}
	if len(h.Orig) > 0 {
		out.Orig = make([]bool, len(idx))
		for i, j := range idx {
			out.Orig[i] = h.Orig[j]
		}
	}
	if len(h.Frequency) > 0 {
		out.Frequency = make([]float64, len(idx))
		for i, j := range idx {
			out.Frequency[i] = h.Frequency[j]
		}
	}
	if h.Intensity != nil {
		inten, err := h.Intensity.SelectRows(idx)
		if err != nil {
			return nil, fmt.Errorf("hazard: selecting intensity rows: %w", err)
		}
		out.Intensity = inten
	}
	if h.Fraction != nil {
		fract, err := h.Fraction.SelectRows(idx)
		if err != nil {
			return nil, fmt.Errorf("hazard: selecting fraction rows: %w", err)
		}
		out.Fraction = fract
	}
	return out, nil
}

// checkLen verifies an event-indexed field covers all n events: got == 0
// means the field is absent, any other mismatch means a malformed
// catalog.
func checkLen(field string, got, n int) error {
	if got == 0 {
		return fmt.Errorf("%w: %s", ErrFieldMissing, field)
	}
	if got != n {
		return fmt.Errorf("%w: %s has %d entries for %d events", ErrFieldLength, field, got, n)
	}
	return nil
}
