// Package wordlist loads and filters user-supplied word list files that
// back the "words" category generator in place of its built-in pool.
package wordlist

// FilterFunc returns true when a word should be kept.
type FilterFunc func(string) bool

// ASCIILower keeps only words made entirely of lowercase ASCII letters,
// screening out stray punctuation or non-Latin entries a user's word list
// file might contain.
func ASCIILower(word string) bool {
	if word == "" {
		return false
	}
	for i := 0; i < len(word); i++ {
		ch := word[i]
		if ch < 'a' || ch > 'z' {
			return false
		}
	}
	return true
}

// Filter returns the subset of words for which keep returns true.
func Filter(words []string, keep FilterFunc) []string {
	out := make([]string, 0, len(words))
	for _, w := range words {
		if keep(w) {
			out = append(out, w)
		}
	}
	return out
}
