// Package message parses IRC protocol lines (RFC1459 with IRCv3 message
// tags) into a Message that keeps the original line and byte ranges into
// it. Accessors slice the line on demand, so reading a Message never
// allocates new strings.
//
// Typed views of a Message are obtained through the Command and Tag
// capabilities:
//
//	m, err := message.Parse(":nick!user@host PRIVMSG #chan :hello world")
//	if err != nil {
//		return err
//	}
//	if pm, ok := message.MatchCommand[message.Privmsg](m); ok {
//		fmt.Println(pm.Target, pm.Text)
//	}
package message

// Message is an immutable, parsed IRC line. It is safe for concurrent use.
type Message struct {
	raw string

	tags    []tagSpan
	hasTags bool

	prefix    prefixSpan
	hasPrefix bool

	command Span
	args    []Span
}

// Prefix is the source of a message split into its name!user@host parts.
// Name is a nickname or a server name.
type Prefix struct {
	Name string
	User string
	Host string

	HasUser bool
	HasHost bool
}

// RawMessage returns the line the message was parsed from.
func (m *Message) RawMessage() string { return m.raw }

func (m *Message) String() string { return m.raw }

// RawCommand returns the command token, e.g. "PRIVMSG" or "001".
func (m *Message) RawCommand() string { return m.command.of(m.raw) }

// RawPrefix returns the prefix without its leading ':'.
func (m *Message) RawPrefix() (string, bool) {
	if !m.hasPrefix {
		return "", false
	}
	return m.prefix.raw.of(m.raw), true
}

// Prefix returns the decomposed prefix, if the line had one.
func (m *Message) Prefix() (Prefix, bool) {
	if !m.hasPrefix {
		return Prefix{}, false
	}
	p := Prefix{
		Name:    m.prefix.name.of(m.raw),
		HasUser: m.prefix.hasUser,
		HasHost: m.prefix.hasHost,
	}
	if p.HasUser {
		p.User = m.prefix.user.of(m.raw)
	}
	if p.HasHost {
		p.Host = m.prefix.host.of(m.raw)
	}
	return p, true
}

// RawTags returns an iterator over the tag section. A line without tags
// yields an empty iterator.
func (m *Message) RawTags() *TagIter {
	return &TagIter{raw: m.raw, tags: m.tags}
}

// RawArgs returns an iterator over the arguments. A line without arguments
// yields an empty iterator.
func (m *Message) RawArgs() *ArgumentIter {
	return &ArgumentIter{raw: m.raw, args: m.args}
}

// HasTags reports whether the line carried an '@' tag section, even an
// empty one.
func (m *Message) HasTags() bool { return m.hasTags }

// HasArgs reports whether at least one argument, possibly an empty
// trailing one, was present.
func (m *Message) HasArgs() bool { return m.args != nil }

// IsNumeric reports whether the command is a three digit numeric reply.
func (m *Message) IsNumeric() bool {
	return isNumeric(m.RawCommand())
}

// Arg returns the i-th argument.
func (m *Message) Arg(i int) (string, bool) {
	if i < 0 || i >= len(m.args) {
		return "", false
	}
	return m.args[i].of(m.raw), true
}

// Args returns all arguments. The strings share memory with the raw line.
func (m *Message) Args() []string {
	if m.args == nil {
		return nil
	}
	out := make([]string, len(m.args))
	for i, a := range m.args {
		out[i] = a.of(m.raw)
	}
	return out
}

// TagValue returns the raw (still escaped) value of the first tag named key.
// A tag present without '=' reports ("", true).
func (m *Message) TagValue(key string) (string, bool) {
	for _, t := range m.tags {
		if t.key.of(m.raw) == key {
			return t.value.of(m.raw), true
		}
	}
	return "", false
}

func isNumeric(s string) bool {
	return len(s) == 3 &&
		s[0] >= '0' && s[0] <= '9' &&
		s[1] >= '0' && s[1] <= '9' &&
		s[2] >= '0' && s[2] <= '9'
}
