package reducer

import (
	"sort"

	"github.com/katalvlaran/banana/bigraph"
	"github.com/katalvlaran/banana/oracle"
)

type pieceEventKind int

// Event kinds sort LEAF, then FINISH, then START at identical coordinates:
// a finishing interval must close its piece before a touching interval
// opens a new one at the same column.
const (
	pieceLeaf pieceEventKind = iota
	pieceFinish
	pieceStart
)

type pieceEvent struct {
	coord int
	kind  pieceEventKind
	idx   int
}

// CutByPieces splits sub into maximal runs of mutually-overlapping
// A-intervals (a left-to-right connectivity sweep). Intervals that only
// touch at a shared column land in different pieces; for two vertices in
// different pieces, placing the earlier piece's vertex first costs zero
// crossings, so the pieces can be solved independently. ok is false if the
// whole instance is already a single connected piece.
func CutByPieces(sub bigraph.SubInstance, o *oracle.Oracle) (pieces []bigraph.SubInstance, ok bool) {
	events := make([]pieceEvent, 0, 2*len(sub))
	for i, v := range sub {
		l, r, intervalOk := o.Interval(v.ID)
		if !intervalOk {
			l, r = 0, 0
		}
		if l == r {
			events = append(events, pieceEvent{coord: l, kind: pieceLeaf, idx: i})
		} else {
			events = append(events, pieceEvent{coord: l, kind: pieceStart, idx: i})
			events = append(events, pieceEvent{coord: r, kind: pieceFinish, idx: i})
		}
	}
	sort.Slice(events, func(i, j int) bool {
		if events[i].coord != events[j].coord {
			return events[i].coord < events[j].coord
		}

		return events[i].kind < events[j].kind
	})

	active := 0
	for _, e := range events {
		switch e.kind {
		case pieceLeaf:
			if active == 0 {
				pieces = append(pieces, bigraph.SubInstance{sub[e.idx]})
			} else {
				last := len(pieces) - 1
				pieces[last] = append(pieces[last], sub[e.idx])
			}
		case pieceFinish:
			last := len(pieces) - 1
			pieces[last] = append(pieces[last], sub[e.idx])
			active--
		case pieceStart:
			if active == 0 {
				pieces = append(pieces, bigraph.SubInstance{})
			}
			active++
		}
	}

	if len(pieces) <= 1 {
		return nil, false
	}

	return pieces, true
}
