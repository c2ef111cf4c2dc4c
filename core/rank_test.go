package core

import (
	"fmt"
	"testing"

	"github.com/platefit/platefit/schema"
	"github.com/stretchr/testify/assert"
)

func scoredDish(name string, score float64, courses ...string) schema.ScoredDish {
	return schema.ScoredDish{
		Dish:  &schema.Dish{ID: name, Name: name, CourseTypes: courses},
		Score: score,
	}
}

// TestSortByScore tests descending stable ordering.
func TestSortByScore(t *testing.T) {
	dishes := []schema.ScoredDish{
		scoredDish("low", 10),
		scoredDish("tied-a", 50),
		scoredDish("high", 90),
		scoredDish("tied-b", 50),
	}
	SortByScore(dishes)

	assert.Equal(t, "high", dishes[0].Dish.Name)
	// Equal scores keep their input order.
	assert.Equal(t, "tied-a", dishes[1].Dish.Name)
	assert.Equal(t, "tied-b", dishes[2].Dish.Name)
	assert.Equal(t, "low", dishes[3].Dish.Name)
}

// TestBucketSizes tests the percentile band sizing.
func TestBucketSizes(t *testing.T) {
	tests := []struct {
		n, best, good int
	}{
		{1, 1, 0},
		{3, 1, 0},
		{10, 1, 1},
		{30, 2, 2},
		{100, 5, 5},
	}

	for _, tc := range tests {
		t.Run(fmt.Sprintf("n=%d", tc.n), func(t *testing.T) {
			best, good := BucketSizes(tc.n)
			assert.Equal(t, tc.best, best)
			assert.Equal(t, tc.good, good)
		})
	}
}

// TestCourseRank tests the course tie-break ranking.
func TestCourseRank(t *testing.T) {
	assert.Equal(t, 0, courseRank(&schema.Dish{CourseTypes: []string{"Main Course"}}))
	assert.Equal(t, 7, courseRank(&schema.Dish{CourseTypes: []string{"Dessert"}}))
	// Best tag wins when several are present.
	assert.Equal(t, 2, courseRank(&schema.Dish{CourseTypes: []string{"Dessert", "Salad"}}))
	// Untagged dishes rank after every known course.
	assert.Equal(t, len(schema.CourseSequence), courseRank(&schema.Dish{}))
}

// TestBucketize tests the two-bucket split and its course-order re-sort.
func TestBucketize(t *testing.T) {
	t.Run("empty input", func(t *testing.T) {
		assert.Empty(t, Bucketize(nil))
	})

	t.Run("single dish", func(t *testing.T) {
		result := Bucketize([]schema.ScoredDish{scoredDish("only", 80)})
		assert.Len(t, result, 2)
		assert.Equal(t, schema.BestMatchLabel, result[0].Category)
		assert.Equal(t, []string{"only"}, result[0].Dishes)
		assert.Equal(t, schema.GoodMatchLabel, result[1].Category)
		assert.Empty(t, result[1].Dishes)
	})

	t.Run("top slice reads in course order", func(t *testing.T) {
		// 40 dishes puts two in each bucket; the top four re-sort by
		// course before the split.
		sorted := []schema.ScoredDish{
			scoredDish("Gulab Jamun", 96, "Dessert"),
			scoredDish("Spring Rolls", 95, "Starter"),
			scoredDish("Dal Makhani", 94, "Main Course"),
			scoredDish("Greek Salad", 93, "Salad"),
		}
		for i := 0; i < 36; i++ {
			sorted = append(sorted, scoredDish(fmt.Sprintf("filler-%02d", i), 50-float64(i)))
		}

		result := Bucketize(sorted)
		assert.Equal(t, []string{"Dal Makhani", "Greek Salad"}, result[0].Dishes)
		assert.Equal(t, []string{"Spring Rolls", "Gulab Jamun"}, result[1].Dishes)
	})

	t.Run("same course breaks ties by name", func(t *testing.T) {
		sorted := []schema.ScoredDish{
			scoredDish("Zucchini Pasta", 96, "Main Course"),
			scoredDish("aloo paratha", 95, "Main Course"),
			scoredDish("Biryani", 94, "Main Course"),
			scoredDish("Chow Mein", 93, "Main Course"),
		}
		for i := 0; i < 36; i++ {
			sorted = append(sorted, scoredDish(fmt.Sprintf("filler-%02d", i), 50-float64(i)))
		}

		result := Bucketize(sorted)
		assert.Equal(t, []string{"aloo paratha", "Biryani"}, result[0].Dishes)
		assert.Equal(t, []string{"Chow Mein", "Zucchini Pasta"}, result[1].Dishes)
	})
}
