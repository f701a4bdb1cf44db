package message

import "strings"

// Parse splits a single IRC line into tags, prefix, command and arguments.
// The line must already have its CRLF terminator removed. Every part of the
// returned Message is a range into raw; nothing is copied.
func Parse(raw string) (*Message, error) {
	m := &Message{raw: raw}
	n := len(raw)
	i := 0

	// IRCv3 tags: "@key=value;key ..."
	if n > 0 && raw[0] == '@' {
		end := sectionEnd(raw, 1)
		tags, err := parseTags(raw, 1, end)
		if err != nil {
			return nil, err
		}
		m.tags = tags
		m.hasTags = true
		i = skipSpaces(raw, end)
	}

	// Prefix: ":name!user@host"
	if i < n && raw[i] == ':' {
		end := sectionEnd(raw, i+1)
		p, err := parsePrefix(raw, i+1, end)
		if err != nil {
			return nil, err
		}
		m.prefix = p
		m.hasPrefix = true
		i = skipSpaces(raw, end)
	}

	j := sectionEnd(raw, i)
	if j == i {
		return nil, parseErr(ErrMissingCommand, raw, i)
	}
	m.command = Span{i, j}

	for i = skipSpaces(raw, j); i < n; i = skipSpaces(raw, j) {
		if raw[i] == ':' {
			// trailing argument runs to the end of the line, spaces included
			m.args = append(m.args, Span{i + 1, n})
			break
		}
		j = sectionEnd(raw, i)
		m.args = append(m.args, Span{i, j})
	}

	return m, nil
}

func parseTags(raw string, start, end int) ([]tagSpan, error) {
	section := raw[start:end]
	if section == "" {
		return []tagSpan{}, nil
	}

	tags := make([]tagSpan, 0, strings.Count(section, ";")+1)
	for pos := start; pos <= end; {
		stop := end
		if semi := strings.IndexByte(raw[pos:end], ';'); semi >= 0 {
			stop = pos + semi
		}

		t := tagSpan{key: Span{pos, stop}}
		if eq := strings.IndexByte(raw[pos:stop], '='); eq >= 0 {
			t.key.End = pos + eq
			t.value = Span{pos + eq + 1, stop}
			t.hasValue = true
		}
		if t.key.Empty() {
			return nil, parseErr(ErrMalformedTags, raw, pos)
		}

		tags = append(tags, t)
		pos = stop + 1
	}
	return tags, nil
}

// parsePrefix splits name!user@host. The host is everything after the first
// '@'; the user is whatever sits between a '!' and that '@'.
func parsePrefix(raw string, start, end int) (prefixSpan, error) {
	p := prefixSpan{
		raw:  Span{start, end},
		name: Span{start, end},
	}

	if at := strings.IndexByte(raw[start:end], '@'); at >= 0 {
		p.host = Span{start + at + 1, end}
		p.hasHost = true
		p.name.End = start + at
	}
	if bang := strings.IndexByte(raw[start:p.name.End], '!'); bang >= 0 {
		p.user = Span{start + bang + 1, p.name.End}
		p.hasUser = true
		p.name.End = start + bang
	}

	if p.name.Empty() {
		return prefixSpan{}, parseErr(ErrMalformedPrefix, raw, start-1)
	}
	return p, nil
}

// sectionEnd returns the index of the first space at or after i, or len(s).
func sectionEnd(s string, i int) int {
	if sp := strings.IndexByte(s[i:], ' '); sp >= 0 {
		return i + sp
	}
	return len(s)
}

func skipSpaces(s string, i int) int {
	for i < len(s) && s[i] == ' ' {
		i++
	}
	return i
}
