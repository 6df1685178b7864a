package report

import (
	"fmt"
	"io"
	"sort"

	"github.com/rvalois/gh-language-stats/model"
)

// Aggregator accumulates per-language byte counts across repositories.
// Not safe for concurrent use, the whole pipeline is sequential.
type Aggregator struct {
	totals    map[string]int
	order     []string
	repoCount int
}

type languageTotal struct {
	name  string
	bytes int
}

func NewAggregator() *Aggregator {
	return &Aggregator{
		totals: make(map[string]int),
	}
}

// Add merges one repository's language byte counts into the aggregate.
// An empty map is ignored and the repository does not count as analyzed.
// New languages within a single map are registered in lexicographic order so
// the first-seen order used as the sort tie-break is deterministic for a
// given input sequence.
func (a *Aggregator) Add(languages model.LanguageBytes) {
	if len(languages) == 0 {
		return
	}

	a.repoCount++

	names := make([]string, 0, len(languages))
	for name := range languages {
		names = append(names, name)
	}
	sort.Strings(names)

	for _, name := range names {
		if _, seen := a.totals[name]; !seen {
			a.order = append(a.order, name)
		}

		a.totals[name] += languages[name]
	}
}

// RepositoryCount returns how many repositories contributed language data
func (a *Aggregator) RepositoryCount() int {
	return a.repoCount
}

// WriteReport prints the sorted breakdown: a header with the contributing
// repository count, one line per language with percentage and formatted
// size, and a trailing separator
func (a *Aggregator) WriteReport(w io.Writer, username string) {
	if len(a.totals) == 0 {
		fmt.Fprintln(w, "No language data found for any of the public repositories.")
		return
	}

	totalBytes := 0
	for _, count := range a.totals {
		totalBytes += count
	}

	if totalBytes == 0 {
		fmt.Fprintln(w, "No code bytes found across all repositories.")
		return
	}

	entries := make([]languageTotal, 0, len(a.order))
	for _, name := range a.order {
		entries = append(entries, languageTotal{name: name, bytes: a.totals[name]})
	}

	// stable sort: equal byte counts keep their first-seen order
	sort.SliceStable(entries, func(i, j int) bool {
		return entries[i].bytes > entries[j].bytes
	})

	fmt.Fprintf(w, "\n--- Language Breakdown for all %d Public Repositories of '%s' ---\n", a.repoCount, username)

	for _, entry := range entries {
		percentage := float64(entry.bytes) / float64(totalBytes) * 100
		fmt.Fprintf(w, "%s: %.2f%% (%s)\n", entry.name, percentage, FormatSize(entry.bytes))
	}

	fmt.Fprintf(w, "\n-----------------------------------------------------------\n")
}

// FormatSize renders a byte count using binary unit thresholds
func FormatSize(bytes int) string {
	switch {
	case bytes < 1024:
		return fmt.Sprintf("%d B", bytes)
	case bytes < 1024*1024:
		return fmt.Sprintf("%.2f KB", float64(bytes)/1024)
	case bytes < 1024*1024*1024:
		return fmt.Sprintf("%.2f MB", float64(bytes)/(1024*1024))
	default:
		return fmt.Sprintf("%.2f GB", float64(bytes)/(1024*1024*1024))
	}
}
