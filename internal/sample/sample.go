// Package sample picks a small fixture out of a larger claims dataset while
// keeping every denial code represented.
package sample

import (
	"sort"

	"github.com/gyeh/claimgen/internal/model"
)

// bucket collects up to want claims sharing one denial code ("None" for paid).
type bucket struct {
	code   string
	claims []*model.Claim
	want   int
}

// Select returns at most maxRows claims in their original order. Each denial
// code, and paid claims, get up to perCode claims first; remaining room is
// filled in dataset order.
func Select(claims []*model.Claim, maxRows, perCode int) []*model.Claim {
	buckets := make([]*bucket, 0, len(model.Denials)+1)
	byCode := make(map[string]*bucket, len(model.Denials)+1)
	for _, d := range model.Denials {
		b := &bucket{code: d.Code, want: perCode}
		buckets = append(buckets, b)
		byCode[d.Code] = b
	}
	paid := &bucket{code: model.PaidInFull.Code, want: perCode}
	buckets = append(buckets, paid)
	byCode[paid.code] = paid

	picked := make(map[int]bool, maxRows)
	for pos, c := range claims {
		if b, ok := byCode[c.Denial.Code]; ok && len(b.claims) < b.want {
			b.claims = append(b.claims, c)
			picked[pos] = true
		}
	}

	var positions []int
	for pos := range claims {
		if picked[pos] {
			positions = append(positions, pos)
		}
	}
	if len(positions) > maxRows {
		positions = trimBalanced(claims, positions, buckets, maxRows)
	}
	for pos := range claims {
		if len(positions) >= maxRows {
			break
		}
		if !picked[pos] {
			positions = append(positions, pos)
			picked[pos] = true
		}
	}

	sort.Ints(positions)
	out := make([]*model.Claim, len(positions))
	for i, pos := range positions {
		out[i] = claims[pos]
	}
	return out
}

// trimBalanced keeps maxRows positions, taking claims round-robin across
// buckets so no code is crowded out.
func trimBalanced(claims []*model.Claim, positions []int, buckets []*bucket, maxRows int) []int {
	perCode := make(map[string][]int, len(buckets))
	for _, pos := range positions {
		code := claims[pos].Denial.Code
		perCode[code] = append(perCode[code], pos)
	}
	var kept []int
	for round := 0; len(kept) < maxRows; round++ {
		progressed := false
		for _, b := range buckets {
			if ps := perCode[b.code]; round < len(ps) && len(kept) < maxRows {
				kept = append(kept, ps[round])
				progressed = true
			}
		}
		if !progressed {
			break
		}
	}
	return kept
}

// Coverage counts claims per denial code.
func Coverage(claims []*model.Claim) map[string]int {
	counts := make(map[string]int)
	for _, c := range claims {
		counts[c.Denial.Code]++
	}
	return counts
}
