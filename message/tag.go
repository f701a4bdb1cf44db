package message

import "strings"

// Tag is implemented by typed views of a message tag. MatchTag looks for its
// key among the raw tags and fills the receiver from the value. It reports
// false, leaving the receiver untouched, when the key is absent or the
// value cannot be parsed.
type Tag interface {
	MatchTag(tags *TagIter) bool
}

// Tag attempts to match t against the message's tags.
func (m *Message) Tag(t Tag) bool {
	return t.MatchTag(m.RawTags())
}

// MatchTag returns the message's tag as a T when one with T's shape exists.
func MatchTag[T any, PT interface {
	*T
	Tag
}](m *Message) (T, bool) {
	var v T
	if !PT(&v).MatchTag(m.RawTags()) {
		var zero T
		return zero, false
	}
	return v, true
}

// find advances tags to the first entry named key.
func find(tags *TagIter, key string) (RawTag, bool) {
	for t, ok := tags.Next(); ok; t, ok = tags.Next() {
		if t.Key == key {
			return t, true
		}
	}
	return RawTag{}, false
}

var tagEscapes = [256]byte{
	':':  ';',
	's':  ' ',
	'\\': '\\',
	'r':  '\r',
	'n':  '\n',
}

// UnescapeTagValue decodes an IRCv3 tag value. A value without backslashes
// is returned as is, without allocating.
func UnescapeTagValue(v string) string {
	i := strings.IndexByte(v, '\\')
	if i < 0 {
		return v
	}

	var b strings.Builder
	b.Grow(len(v))
	b.WriteString(v[:i])
	for ; i < len(v); i++ {
		c := v[i]
		if c != '\\' {
			b.WriteByte(c)
			continue
		}
		i++
		if i == len(v) {
			// a lone trailing backslash is dropped
			break
		}
		if r := tagEscapes[v[i]]; r != 0 {
			b.WriteByte(r)
		} else {
			b.WriteByte(v[i])
		}
	}
	return b.String()
}
