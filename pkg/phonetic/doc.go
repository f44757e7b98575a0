// Package phonetic generates short random identifiers that are easy to read
// aloud and to type back in.
//
// An identifier is a run of consonant-vowel syllables drawn from an alphabet
// that leaves out letters people tend to confuse when they hear or copy them
// (c/k, q, x, y, w, l/i, e/i). The default six syllables give twelve
// lowercase letters and roughly 4.7e10 possible values, e.g. "bapodinuhaso".
//
// Identifiers are random, not unique: callers that persist them must absorb
// the rare collision at the storage layer.
//
// # Usage
//
//	import "github.com/dscvit/dscv/pkg/phonetic"
//
//	id := phonetic.New()
//
//	short := phonetic.Generate(&phonetic.Options{Syllables: 4})
//
//	ok := phonetic.Valid("bapodinuhaso")
//
// # Options
//
//   - Syllables  number of consonant-vowel pairs (default 6, max MaxSyllables).
//   - Validator  callback that can reject a candidate; the generator retries up
//     to 100 times and then returns the last candidate.
//
// Randomness comes from crypto/rand. A math/rand/v2 source is used only when
// the crypto source fails, so Generate never returns an error.
package phonetic
