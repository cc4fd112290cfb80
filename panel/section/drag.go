package section

import (
	"context"
	"fmt"

	"lms/apiclient"
)

// Drop moves the item at index from to index to and returns the new order
// together with the {id, position} pairs of every item whose index changed.
// Positions are the new indexes. Out of range indexes return nil.
func Drop(items []apiclient.Section, from, to int) ([]apiclient.Section, []apiclient.ReorderItem) {
	if from < 0 || from >= len(items) || to < 0 || to >= len(items) {
		return nil, nil
	}

	out := clone(items)
	moved := out[from]
	out = append(out[:from], out[from+1:]...)
	out = append(out[:to], append([]apiclient.Section{moved}, out[to:]...)...)

	lo, hi := min(from, to), max(from, to)
	list := make([]apiclient.ReorderItem, 0, hi-lo+1)
	for i := lo; i <= hi; i++ {
		out[i].Position = i
		list = append(list, apiclient.ReorderItem{ID: out[i].ID, Position: i})
	}
	return out, list
}

// Move drags the section at index from to index to and submits the result
// through Reorder.
func (p *Panel) Move(ctx context.Context, from, to int) error {
	p.mu.Lock()
	_, list := Drop(p.items, from, to)
	p.mu.Unlock()

	if list == nil {
		return fmt.Errorf("move section: index out of range")
	}
	return p.Reorder(ctx, list)
}
