package tui

import "strings"

// SanitizeColors ensures every line of s can be rendered on its own: an ANSI
// color sequence still in effect at the end of a line is reset there, and
// re-activated at the start of the next line.
func SanitizeColors(s string) string {
	var (
		inSeq   bool
		out     strings.Builder
		lastSeq strings.Builder
	)
	out.Grow(len(s))
	for i := 0; i < len(s); i++ {
		c := s[i]
		switch {
		case c == '\x1B':
			inSeq = true
			lastSeq.Reset()
			lastSeq.WriteByte(c)
		case inSeq:
			lastSeq.WriteByte(c)
			if isTerminator(c) {
				inSeq = false
				seq := lastSeq.String()
				// Forget resets and anything that isn't a color sequence.
				if strings.HasSuffix(seq, "[0m") || seq == "\x1B[m" || c != 'm' {
					lastSeq.Reset()
				}
			}
		case c == '\n' && lastSeq.Len() > 0:
			out.WriteString("\x1B[0m\n")
			out.WriteString(lastSeq.String())
			continue
		}
		out.WriteByte(c)
	}
	return out.String()
}

func isTerminator(c byte) bool {
	return (c >= 0x40 && c <= 0x5a) || (c >= 0x61 && c <= 0x7a)
}
