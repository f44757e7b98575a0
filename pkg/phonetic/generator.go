package phonetic

import (
	"crypto/rand"
	mrand "math/rand/v2"
	"strings"
)

// New returns an identifier built with the default options.
func New() string {
	return Generate(nil)
}

// Generate returns a random identifier built according to opts.
// A nil opts uses the defaults. It never fails: when Validator rejects every
// candidate within the retry budget the last candidate is returned.
func Generate(opts *Options) string {
	opts = opts.merge(defaultOptions())

	var candidate string
	for range maxAttempts {
		candidate = build(opts.Syllables)
		if opts.Validator == nil || opts.Validator(candidate) {
			return candidate
		}
	}

	return candidate
}

// Valid reports whether id has the shape of a generated identifier:
// one to MaxSyllables consonant-vowel pairs from the package alphabet.
func Valid(id string) bool {
	if len(id) == 0 || len(id)%2 != 0 || len(id) > 2*MaxSyllables {
		return false
	}

	for i := 0; i < len(id); i += 2 {
		if strings.IndexByte(consonants, id[i]) < 0 {
			return false
		}
		if strings.IndexByte(vowels, id[i+1]) < 0 {
			return false
		}
	}

	return true
}

func build(syllables int) string {
	var b strings.Builder
	b.Grow(syllables * 2)

	for range syllables {
		b.WriteByte(consonants[randIndex(len(consonants))])
		b.WriteByte(vowels[randIndex(len(vowels))])
	}

	return b.String()
}

// randIndex returns a uniform index in [0, n) for n <= 256 by rejecting
// bytes from the biased tail.
func randIndex(n int) int {
	limit := 256 - 256%n
	var buf [1]byte
	for {
		if _, err := rand.Read(buf[:]); err != nil {
			return fallbackIndex(n)
		}
		if int(buf[0]) < limit {
			return int(buf[0]) % n
		}
	}
}

// fallbackIndex is only reached when crypto/rand fails.
func fallbackIndex(n int) int {
	return mrand.IntN(n)
}
