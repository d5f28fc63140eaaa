package reducer

import (
	"github.com/katalvlaran/banana/bigraph"
	"github.com/katalvlaran/banana/oracle"
	"github.com/katalvlaran/banana/rational"
)

// LMR locks the position of every vertex whose "left-max, right-min" bound
// collapses: temporarily removing a vertex from the two presence trees
// (starts, finishes) and combining the resulting structural bound with any
// orientable-pair preference against still-live vertices yields a window
// [lMax, rMin]. If lMax <= rMin, the vertex can be pinned at that window
// without affecting the optimal crossing count, so it is pulled out of the
// instance entirely; Reinsert later splices it back into a solved order.
//
// ok is false if no vertex could be locked this pass.
func LMR(sub bigraph.SubInstance, o *oracle.Oracle) (reduced, removed bigraph.SubInstance, ok bool) {
	n := len(sub)
	if n == 0 {
		return sub, nil, false
	}

	compressed := o.CompressedIntervals(sub)
	maxRank := 0
	for _, iv := range compressed {
		if iv[0] > maxRank {
			maxRank = iv[0]
		}
		if iv[1] > maxRank {
			maxRank = iv[1]
		}
	}
	size := maxRank + 1

	starts := newPresenceTree(size)
	finishes := newPresenceTree(size)
	for _, iv := range compressed {
		starts.add(iv[0], 1)
		finishes.add(iv[1], 1)
	}

	idIndex := make(map[int]int, n)
	for i, v := range sub {
		idIndex[v.ID] = i
	}
	orientAdj := make([][]int, n)
	for _, p := range o.OrientablePairsSub(sub) {
		ui, uok := idIndex[p.U]
		vi, vok := idIndex[p.V]
		if uok && vok {
			orientAdj[ui] = append(orientAdj[ui], vi)
			orientAdj[vi] = append(orientAdj[vi], ui)
		}
	}

	alive := make([]bool, n)
	for i := range alive {
		alive[i] = true
	}

	for i := 0; i < n; i++ {
		u := sub[i]
		starts.add(compressed[i][0], -1)
		finishes.add(compressed[i][1], -1)

		lMax := finishes.rightmost(0, compressed[i][0])
		rMin := starts.leftmost(compressed[i][1], maxRank)
		if rMin == -1 {
			rMin = size
		}

		for _, vi := range orientAdj[i] {
			if !alive[vi] {
				continue
			}
			v := sub[vi]
			uv, errUV := o.Crossings(u, v)
			vu, errVU := o.Crossings(v, u)
			if errUV != nil || errVU != nil {
				continue
			}
			if uv < vu {
				if compressed[vi][0] < rMin {
					rMin = compressed[vi][0]
				}
			} else if vu < uv {
				if compressed[vi][1] > lMax {
					lMax = compressed[vi][1]
				}
			}
		}

		if lMax <= rMin {
			removed = append(removed, u)
			alive[i] = false
		} else {
			starts.add(compressed[i][0], 1)
			finishes.add(compressed[i][1], 1)
		}
	}

	if len(removed) == 0 {
		return sub, nil, false
	}

	reduced = make(bigraph.SubInstance, 0, n-len(removed))
	for i, a := range alive {
		if a {
			reduced = append(reduced, sub[i])
		}
	}

	return reduced, removed, true
}

// Reinsert splices removed back into solvedOrder, processing removed in
// reverse (the vertex locked last is reinserted first): for each removed
// vertex u, it is placed immediately after the rightmost already-placed
// vertex v with crossings(v, u) < crossings(u, v), or at the front if none
// qualifies. original supplies the weight of every id appearing in either
// slice (the sub-instance LMR was run against).
func Reinsert(solvedOrder []int, removed, original bigraph.SubInstance, o *oracle.Oracle) []int {
	weightOf := make(map[int]rational.Fraction, len(original))
	for _, v := range original {
		weightOf[v.ID] = v.W
	}

	order := append([]int(nil), solvedOrder...)
	for i := len(removed) - 1; i >= 0; i-- {
		u := removed[i]
		insertAfter := -1
		for j, id := range order {
			v := bigraph.WeightedVertex{ID: id, W: weightOf[id]}
			uv, errUV := o.Crossings(u, v)
			vu, errVU := o.Crossings(v, u)
			if errUV != nil || errVU != nil {
				// Non-orientable pair: the relative order is forced, not
				// free, so it still has to be honored rather than skipped —
				// defaulting to front-insertion here ignored a real,
				// possibly asymmetric, forced cost.
				var err error
				uv, vu, err = o.ForcedCrossings(u, v)
				if err != nil {
					continue
				}
			}
			if vu < uv {
				insertAfter = j
			}
		}
		order = insertIntAt(order, insertAfter+1, u.ID)
	}

	return order
}

func insertIntAt(s []int, pos, v int) []int {
	s = append(s, 0)
	copy(s[pos+1:], s[pos:])
	s[pos] = v

	return s
}
