package mapreduce

import "github.com/dtnitsch/modsite/models"

// Map emits a module count for a single page. Pages without a module emit nothing.
func Map(page *models.Page) map[string]int {
	counts := make(map[string]int, 1)
	if page != nil && page.Data.ModuleName != "" {
		counts[page.Data.ModuleName] = 1
	}
	return counts
}

// Reduce aggregates a slice of count maps into a single map.
func Reduce(intermediate []map[string]int) map[string]int {
	finalResults := make(map[string]int)

	for _, counts := range intermediate {
		for key, count := range counts {
			finalResults[key] += count
		}
	}

	return finalResults
}
