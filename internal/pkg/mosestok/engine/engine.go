package engine

// Processor turns one line of input into one line of output.
type Processor interface {
	Process(line string) string
	Info() Info
}

type Info struct {
	Mode     string
	Language string
	Options  map[string]bool
}

type Config struct {
	Mode     string
	Language string

	Escape               bool
	AggressiveDashSplits bool
	ProtectedPatterns    []string

	Penn                   bool
	NormQuoteCommas        bool
	NormNumbers            bool
	PreReplaceUnicodePunct bool
	PostRemoveControlChars bool
	NFC                    bool
}

// DefaultConfig mirrors the defaults of the tokenizer and normalizer
// constructors.
func DefaultConfig() Config {
	return Config{
		Language:               "en",
		Escape:                 true,
		AggressiveDashSplits:   true,
		Penn:                   true,
		NormQuoteCommas:        true,
		NormNumbers:            true,
		PreReplaceUnicodePunct: true,
	}
}
