package reconcile

func toStrSet(sl []string) map[string]struct{} {
	result := make(map[string]struct{}, len(sl))

	for _, elem := range sl {
		result[elem] = struct{}{}
	}

	return result
}

// uniqueStrings returns sl without duplicates, the order of the first
// occurrences is kept.
func uniqueStrings(sl []string) []string {
	seen := make(map[string]struct{}, len(sl))
	result := make([]string, 0, len(sl))

	for _, elem := range sl {
		if _, exists := seen[elem]; exists {
			continue
		}

		seen[elem] = struct{}{}
		result = append(result, elem)
	}

	return result
}
