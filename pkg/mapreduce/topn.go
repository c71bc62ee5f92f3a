package mapreduce

import (
	"fmt"
	"sort"
)

type kv struct {
	Key   string
	Value int
}

func sorted(counts map[string]int) []kv {
	ss := make([]kv, 0, len(counts))
	for k, v := range counts {
		ss = append(ss, kv{k, v})
	}

	// Sort by count (descending), then name for stable output
	sort.Slice(ss, func(i, j int) bool {
		if ss[i].Value != ss[j].Value {
			return ss[i].Value > ss[j].Value
		}
		return ss[i].Key < ss[j].Key
	})
	return ss
}

// TopCounts returns the top N entries formatted as "name:count" (e.g., "Az:42").
// n <= 0 returns every entry.
func TopCounts(counts map[string]int, n int) []string {
	ss := sorted(counts)

	limit := n
	if limit <= 0 || len(ss) < limit {
		limit = len(ss)
	}

	out := make([]string, limit)
	for i := 0; i < limit; i++ {
		out[i] = fmt.Sprintf("%s:%d", ss[i].Key, ss[i].Value)
	}
	return out
}
