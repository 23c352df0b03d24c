package match

import (
	"sort"
	"strings"
)

// Match associates each subtitle path with its best-matching video path.
// Subtitles with no acceptable candidate are absent from the result.
//
// The assignment is greedy and deterministic rather than globally optimal:
// subtitles are processed in sorted path order, each claims at most one
// video, and a claimed video leaves the pool. A wrong pairing is therefore
// always explainable by looking at one subtitle's two passes in isolation,
// which matters more here than squeezing out a few extra matches.
func Match(subtitlePaths, videoPaths []string, n *Normalizer) map[string]string {
	if n == nil {
		n = NewNormalizer(nil)
	}

	subs := append([]string(nil), subtitlePaths...)
	sort.Strings(subs)

	type candidate struct {
		path string
		key  Key
	}
	pool := make([]candidate, 0, len(videoPaths))
	for _, v := range videoPaths {
		pool = append(pool, candidate{path: v, key: n.Normalize(v)})
	}

	result := make(map[string]string, len(subs))
	for _, sub := range subs {
		key := n.Normalize(sub)

		best := -1
		// Exact pass on loose keys.
		for i, c := range pool {
			if c.key.Loose != key.Loose || key.Loose == "" {
				continue
			}
			if best < 0 || preferPath(c.path, pool[best].path) {
				best = i
			}
		}

		// Containment pass on tight keys.
		if best < 0 && key.Tight != "" {
			bestOverlap := 0
			for i, c := range pool {
				if c.key.Tight == "" {
					continue
				}
				overlap := containmentOverlap(key.Tight, c.key.Tight)
				if overlap == 0 {
					continue
				}
				if overlap > bestOverlap || (overlap == bestOverlap && preferPath(c.path, pool[best].path)) {
					best = i
					bestOverlap = overlap
				}
			}
		}

		if best >= 0 {
			result[sub] = pool[best].path
			pool = append(pool[:best], pool[best+1:]...)
		}
	}
	return result
}

// containmentOverlap reports the shared-character length when one tight
// key contains the other, or 0 when neither does.
func containmentOverlap(a, b string) int {
	if strings.Contains(a, b) {
		return len(b)
	}
	if strings.Contains(b, a) {
		return len(a)
	}
	return 0
}

// preferPath is the deterministic tie-break: shortest path string first,
// then lexicographic order.
func preferPath(a, b string) bool {
	if len(a) != len(b) {
		return len(a) < len(b)
	}
	return a < b
}
