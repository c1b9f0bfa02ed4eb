package charclass

import (
	"encoding/binary"
	"sort"
	"unicode/utf8"

	"golang.org/x/exp/slices"
)

const (
	surrogateMin = 0xD800
	surrogateMax = 0xDFFF
)

// span is an inclusive code point range, packed as lo<<32 | hi so that
// spans order by their low end.
type span uint64

func newSpan(lo, hi rune) span { return span(uint32(lo))<<32 | span(uint32(hi)) }

func (s span) split() (lo, hi rune) { return rune(uint32(s >> 32)), rune(uint32(s)) }

// normalize clips spans to the domain, drops the surrogate block, sorts them
// and merges overlapping or touching neighbours.
func normalize(in []span) []span {
	var out []span
	for _, s := range in {
		lo, hi := s.split()
		if lo < 0 {
			lo = 0
		}
		if hi > utf8.MaxRune {
			hi = utf8.MaxRune
		}
		if lo > hi {
			continue
		}
		if lo < surrogateMin && hi > surrogateMax {
			out = append(out, newSpan(lo, surrogateMin-1), newSpan(surrogateMax+1, hi))
			continue
		}
		if lo >= surrogateMin && lo <= surrogateMax {
			lo = surrogateMax + 1
		}
		if hi >= surrogateMin && hi <= surrogateMax {
			hi = surrogateMin - 1
		}
		if lo <= hi {
			out = append(out, newSpan(lo, hi))
		}
	}
	slices.Sort(out)
	merged := out[:0]
	for _, s := range out {
		lo, hi := s.split()
		if n := len(merged); n > 0 {
			plo, phi := merged[n-1].split()
			if lo <= phi+1 {
				if hi > phi {
					merged[n-1] = newSpan(plo, hi)
				}
				continue
			}
		}
		merged = append(merged, s)
	}
	return merged
}

// intersectSpans intersects two normalised span lists.
func intersectSpans(a, b []span) []span {
	var out []span
	for i, j := 0, 0; i < len(a) && j < len(b); {
		alo, ahi := a[i].split()
		blo, bhi := b[j].split()
		lo, hi := max(alo, blo), min(ahi, bhi)
		if lo <= hi {
			out = append(out, newSpan(lo, hi))
		}
		if ahi < bhi {
			i++
		} else {
			j++
		}
	}
	return out
}

// complementSpans returns every code point a Go string can hold that is not
// in the normalised span list a.
func complementSpans(a []span) []span {
	var out []span
	next := rune(0)
	for _, s := range a {
		lo, hi := s.split()
		if lo > next {
			out = append(out, newSpan(next, lo-1))
		}
		next = hi + 1
	}
	if next <= utf8.MaxRune {
		out = append(out, newSpan(next, utf8.MaxRune))
	}
	return normalize(out)
}

func unionSpans(a, b []span) []span {
	return normalize(append(slices.Clone(a), b...))
}

// encode packs spans into a comparable key, 8 bytes per span.
func encode(ss []span) string {
	buf := make([]byte, 8*len(ss))
	for i, s := range ss {
		binary.BigEndian.PutUint64(buf[8*i:], uint64(s))
	}
	return string(buf)
}

func decode(key string) []span {
	out := make([]span, len(key)/8)
	for i := range out {
		out[i] = span(binary.BigEndian.Uint64([]byte(key[8*i : 8*i+8])))
	}
	return out
}

// spanAt reads the i-th span of an encoded key without decoding the rest.
func spanAt(key string, i int) span {
	var s span
	for _, b := range []byte(key[8*i : 8*i+8]) {
		s = s<<8 | span(b)
	}
	return s
}

// findSpan reports whether r lies in one of the spans of key.
func findSpan(key string, r rune) bool {
	n := len(key) / 8
	i := sort.Search(n, func(i int) bool {
		_, hi := spanAt(key, i).split()
		return hi >= r
	})
	if i == n {
		return false
	}
	lo, _ := spanAt(key, i).split()
	return lo <= r
}
