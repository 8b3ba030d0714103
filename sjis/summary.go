package sjis

// Summary aggregates encoding metrics of a text.
type Summary struct {
	Bytes       int // encoded length
	Chars       int // number of characters
	Wide        int // number of double-byte characters
	Substituted int // number of characters outside of the repertoire
}

// Summarize returns aggregate metrics for s.
func (c Codec) Summarize(s string) Summary {
	var sum Summary
	for ch := range c.Chars(s) {
		sum = sum.Add(summarizeChar(ch))
	}
	return sum
}

func summarizeChar(ch Char) Summary {
	s := Summary{Bytes: ch.Width, Chars: 1}
	if ch.Wide() {
		s.Wide = 1
	}
	if ch.Substituted {
		s.Substituted = 1
	}
	return s
}

// Add combines two summaries.
func (s Summary) Add(other Summary) Summary {
	return Summary{
		Bytes:       s.Bytes + other.Bytes,
		Chars:       s.Chars + other.Chars,
		Wide:        s.Wide + other.Wide,
		Substituted: s.Substituted + other.Substituted,
	}
}

// Narrow returns the number of single-byte characters.
func (s Summary) Narrow() int {
	return s.Chars - s.Wide
}
