package policy

import (
	"bufio"
	"fmt"
	"os"
	"strings"
)

// buildDictionary merges the file at path (one word per line, surrounding
// whitespace trimmed, blank lines skipped) with the explicit words, in that
// order, collapsing duplicates. An unreadable file is a hard failure, never
// silently downgraded to an empty dictionary.
func buildDictionary(path string, words []string) ([]string, error) {
	var entries []string
	if path != "" {
		loaded, err := loadDictionaryFile(path)
		if err != nil {
			return nil, err
		}
		entries = loaded
	}
	entries = append(entries, words...)

	if len(entries) == 0 {
		return nil, nil
	}

	seen := make(map[string]struct{}, len(entries))
	deduped := entries[:0]
	for _, word := range entries {
		if _, ok := seen[word]; ok {
			continue
		}
		seen[word] = struct{}{}
		deduped = append(deduped, word)
	}
	return deduped, nil
}

func loadDictionaryFile(path string) ([]string, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("failed to open dictionary: %w", err)
	}
	defer f.Close()

	var words []string
	scanner := bufio.NewScanner(f)
	for scanner.Scan() {
		word := strings.TrimSpace(scanner.Text())
		if word == "" {
			continue
		}
		words = append(words, word)
	}
	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("failed to read dictionary %s: %w", path, err)
	}
	return words, nil
}
