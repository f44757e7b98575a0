package phonetic

const (
	// DefaultSyllables is the syllable count used when Options leave it unset.
	DefaultSyllables = 6
	// MaxSyllables caps the identifier length at 32 letters.
	MaxSyllables = 16

	maxAttempts = 100
)

const (
	consonants = "bdfghjkmnprstvz"
	vowels     = "aiou"
)

// Options configures identifier generation.
type Options struct {
	// Syllables is the number of consonant-vowel pairs.
	// Default: DefaultSyllables. Values above MaxSyllables are clamped.
	Syllables int

	// Validator is called to check if a generated identifier is acceptable.
	// Return true to accept it, false to generate a new one.
	Validator func(string) bool
}

func defaultOptions() *Options {
	return &Options{Syllables: DefaultSyllables}
}

// merge combines user options with defaults.
func (o *Options) merge(defaults *Options) *Options {
	if o == nil {
		return defaults
	}

	result := *o
	if result.Syllables <= 0 {
		result.Syllables = defaults.Syllables
	}
	if result.Syllables > MaxSyllables {
		result.Syllables = MaxSyllables
	}

	return &result
}
