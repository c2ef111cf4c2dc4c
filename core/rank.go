package core

import (
	"math"
	"sort"
	"strings"

	"github.com/platefit/platefit/schema"
)

// courseRank is the tie-break rank of a dish: the best (lowest) index of
// its course tags in the fixed course sequence. Dishes with no recognized
// course tag rank after every known course.
func courseRank(dish *schema.Dish) int {
	rank := len(schema.CourseSequence)
	for _, t := range dish.CourseTypes {
		if r, ok := schema.CourseRank[t]; ok && r < rank {
			rank = r
		}
	}
	return rank
}

// SortByScore orders scored dishes descending by score, in place. The sort
// is stable so equal scores keep menu order until the bucket tie-break.
func SortByScore(dishes []schema.ScoredDish) {
	sort.SliceStable(dishes, func(i, j int) bool {
		return dishes[i].Score > dishes[j].Score
	})
}

// BucketSizes returns the Best and Good bucket sizes for n scored dishes:
// each the rounded bucket fraction of n, Best never below one.
func BucketSizes(n int) (best, good int) {
	band := int(math.Round(float64(n) * schema.BucketFraction))
	best = band
	if best < 1 {
		best = 1
	}
	good = band
	if good < 0 {
		good = 0
	}
	return best, good
}

// Bucketize reduces a score-sorted dish list to the final two-bucket
// recommendation. The top slice is re-sorted by course rank then lowercased
// name before being split, so the buckets read in menu-course order rather
// than score order. Only dish names survive into the result.
func Bucketize(sorted []schema.ScoredDish) schema.RecommendationResult {
	if len(sorted) == 0 {
		return schema.RecommendationResult{}
	}

	best, good := BucketSizes(len(sorted))
	if best+good > len(sorted) {
		if best > len(sorted) {
			best = len(sorted)
		}
		good = len(sorted) - best
	}

	slice := make([]schema.ScoredDish, best+good)
	copy(slice, sorted[:best+good])

	sort.SliceStable(slice, func(i, j int) bool {
		ri, rj := courseRank(slice[i].Dish), courseRank(slice[j].Dish)
		if ri != rj {
			return ri < rj
		}
		return strings.ToLower(slice[i].Dish.Name) < strings.ToLower(slice[j].Dish.Name)
	})

	names := func(part []schema.ScoredDish) []string {
		out := make([]string, 0, len(part))
		for _, d := range part {
			out = append(out, d.Dish.Name)
		}
		return out
	}

	return schema.RecommendationResult{
		{Category: schema.BestMatchLabel, Dishes: names(slice[:best])},
		{Category: schema.GoodMatchLabel, Dishes: names(slice[best:])},
	}
}
