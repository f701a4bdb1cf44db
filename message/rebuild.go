package message

import "strings"

// Rebuild joins the raw parts of m back into a line. Tags, prefix and
// arguments are reproduced in order with single spaces; the last argument
// is written as a trailing (":arg") only when it has to be.
func Rebuild(m *Message) string {
	var b strings.Builder
	b.Grow(len(m.raw))

	if m.HasTags() {
		b.WriteByte('@')
		tags := m.RawTags()
		for i := 0; ; i++ {
			t, ok := tags.Next()
			if !ok {
				break
			}
			if i > 0 {
				b.WriteByte(';')
			}
			b.WriteString(t.Key)
			if t.HasValue {
				b.WriteByte('=')
				b.WriteString(t.Value)
			}
		}
		b.WriteByte(' ')
	}

	if p, ok := m.RawPrefix(); ok {
		b.WriteByte(':')
		b.WriteString(p)
		b.WriteByte(' ')
	}

	b.WriteString(m.RawCommand())

	args := m.RawArgs()
	for a, ok := args.Next(); ok; a, ok = args.Next() {
		b.WriteByte(' ')
		if args.Remaining() == 0 && needsTrailing(a) {
			b.WriteByte(':')
		}
		b.WriteString(a)
	}
	return b.String()
}

func needsTrailing(arg string) bool {
	return arg == "" || arg[0] == ':' || strings.IndexByte(arg, ' ') >= 0
}
