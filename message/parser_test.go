package message

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/require"
)

func collectArgs(m *Message) []string {
	var out []string
	for a := range m.RawArgs().All() {
		out = append(out, a)
	}
	return out
}

func collectTags(m *Message) []RawTag {
	var out []RawTag
	it := m.RawTags()
	for t, ok := it.Next(); ok; t, ok = it.Next() {
		out = append(out, t)
	}
	return out
}

func TestParse_PrefixCommandTrailing(t *testing.T) {
	m, err := Parse(":nick!user@host PRIVMSG #chan :hello world")
	require.NoError(t, err)

	p, ok := m.Prefix()
	require.True(t, ok)
	require.Equal(t, Prefix{Name: "nick", User: "user", Host: "host", HasUser: true, HasHost: true}, p)

	raw, ok := m.RawPrefix()
	require.True(t, ok)
	require.Equal(t, "nick!user@host", raw)

	require.Equal(t, "PRIVMSG", m.RawCommand())
	require.Equal(t, []string{"#chan", "hello world"}, collectArgs(m))
	require.False(t, m.HasTags())
	require.Empty(t, collectTags(m))
}

func TestParse_PingWithoutPrefix(t *testing.T) {
	m, err := Parse("PING :tmi.twitch.tv")
	require.NoError(t, err)

	_, ok := m.RawPrefix()
	require.False(t, ok)
	_, ok = m.Prefix()
	require.False(t, ok)

	require.False(t, m.HasTags())
	require.Equal(t, "PING", m.RawCommand())
	require.Equal(t, []string{"tmi.twitch.tv"}, collectArgs(m))
}

func TestParse_EmptyTagValueIsNotAbsent(t *testing.T) {
	m, err := Parse("@badge-info=;color=#FF0000;mod :tmi PRIVMSG #chan :hi")
	require.NoError(t, err)

	require.True(t, m.HasTags())
	require.Equal(t, []RawTag{
		{Key: "badge-info", Value: "", HasValue: true},
		{Key: "color", Value: "#FF0000", HasValue: true},
		{Key: "mod", HasValue: false},
	}, collectTags(m))

	raw, _ := m.RawPrefix()
	require.Equal(t, "tmi", raw)
	require.Equal(t, []string{"#chan", "hi"}, collectArgs(m))
}

func TestParse_Errors(t *testing.T) {
	type tc struct {
		name    string
		line    string
		kind    error
		wantOff int
	}

	tests := []tc{
		{name: "empty_line", line: "", kind: ErrMissingCommand, wantOff: 0},
		{name: "tags_only", line: "@time=123", kind: ErrMissingCommand, wantOff: 9},
		{name: "tags_and_spaces_only", line: "@time=123   ", kind: ErrMissingCommand, wantOff: 12},
		{name: "prefix_only", line: ":irc.example.net", kind: ErrMissingCommand, wantOff: 16},
		{name: "tags_and_prefix_only", line: "@a=b :irc.example.net ", kind: ErrMissingCommand, wantOff: 22},
		{name: "empty_tag_key", line: "@=v PING", kind: ErrMalformedTags, wantOff: 1},
		{name: "double_semicolon", line: "@a;;b PING", kind: ErrMalformedTags, wantOff: 3},
		{name: "trailing_semicolon", line: "@a=1; PING", kind: ErrMalformedTags, wantOff: 5},
		{name: "empty_prefix", line: ": PING", kind: ErrMalformedPrefix, wantOff: 0},
		{name: "prefix_without_name", line: ":!user@host PING", kind: ErrMalformedPrefix, wantOff: 0},
		{name: "prefix_host_only", line: "@k=v :@host PING", kind: ErrMalformedPrefix, wantOff: 5},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			m, err := Parse(tt.line)
			require.Error(t, err)
			require.Nil(t, m, "no partial message on failure")
			require.ErrorIs(t, err, tt.kind)

			var pe *ParseError
			require.True(t, errors.As(err, &pe))
			require.Equal(t, tt.wantOff, pe.Offset)
			require.Equal(t, tt.line, pe.Line)
		})
	}
}

func TestParse_Prefix(t *testing.T) {
	type tc struct {
		name string
		line string
		want Prefix
	}

	tests := []tc{
		{
			name: "server_name",
			line: ":irc.example.net NOTICE * :hi",
			want: Prefix{Name: "irc.example.net"},
		},
		{
			name: "nick_and_host",
			line: ":nick@host.example JOIN #a",
			want: Prefix{Name: "nick", Host: "host.example", HasHost: true},
		},
		{
			name: "nick_and_user",
			line: ":nick!ident JOIN #a",
			want: Prefix{Name: "nick", User: "ident", HasUser: true},
		},
		{
			name: "bang_after_at_belongs_to_host",
			line: ":nick@host!odd JOIN #a",
			want: Prefix{Name: "nick", Host: "host!odd", HasHost: true},
		},
		{
			name: "empty_user_and_host",
			line: ":nick!@ JOIN #a",
			want: Prefix{Name: "nick", HasUser: true, HasHost: true},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			m, err := Parse(tt.line)
			require.NoError(t, err)

			p, ok := m.Prefix()
			require.True(t, ok)
			require.Equal(t, tt.want, p)
		})
	}
}

func TestParse_Arguments(t *testing.T) {
	type tc struct {
		name     string
		line     string
		wantCmd  string
		wantArgs []string
	}

	tests := []tc{
		{name: "no_arguments", line: "QUIT", wantCmd: "QUIT"},
		{name: "trailing_spaces_only", line: "QUIT   ", wantCmd: "QUIT"},
		{name: "bare_trailing_colon", line: "PRIVMSG #chan :", wantCmd: "PRIVMSG", wantArgs: []string{"#chan", ""}},
		{name: "only_bare_trailing", line: "AWAY :", wantCmd: "AWAY", wantArgs: []string{""}},
		{name: "runs_of_spaces", line: "MODE  #chan   +o    nick  ", wantCmd: "MODE", wantArgs: []string{"#chan", "+o", "nick"}},
		{name: "trailing_keeps_spaces", line: "PRIVMSG #c :  two  spaces ", wantCmd: "PRIVMSG", wantArgs: []string{"#c", "  two  spaces "}},
		{name: "trailing_starting_with_colon", line: "PRIVMSG #c ::)", wantCmd: "PRIVMSG", wantArgs: []string{"#c", ":)"}},
		{name: "colon_inside_middle", line: "CMD a:b c", wantCmd: "CMD", wantArgs: []string{"a:b", "c"}},
		{name: "numeric", line: ":srv 001 nick :Welcome to the network", wantCmd: "001", wantArgs: []string{"nick", "Welcome to the network"}},
		{name: "extra_spaces_between_sections", line: "@k=v   :p   CMD   x", wantCmd: "CMD", wantArgs: []string{"x"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			m, err := Parse(tt.line)
			require.NoError(t, err)
			require.Equal(t, tt.wantCmd, m.RawCommand())
			require.Equal(t, tt.wantArgs, collectArgs(m))
			require.Equal(t, tt.wantArgs != nil, m.HasArgs())
			require.Equal(t, tt.wantArgs, m.Args())
		})
	}
}

func TestParse_EmptyTagSection(t *testing.T) {
	m, err := Parse("@ PING x")
	require.NoError(t, err)
	require.True(t, m.HasTags(), "an empty section is still a section")
	require.Equal(t, 0, m.RawTags().Remaining())
	require.Equal(t, "PING", m.RawCommand())
}

func TestParse_SpansAreOrderedAndInBounds(t *testing.T) {
	line := "@a=1;b :n!u@h CMD x y :z z"
	m, err := Parse(line)
	require.NoError(t, err)

	last := 0
	check := func(s Span) {
		require.GreaterOrEqual(t, s.Start, last)
		require.LessOrEqual(t, s.Start, s.End)
		require.LessOrEqual(t, s.End, len(line))
		last = s.End
	}
	for _, tg := range m.tags {
		check(tg.key)
		if tg.hasValue {
			check(tg.value)
		}
	}
	check(m.prefix.raw)
	check(m.command)
	for _, a := range m.args {
		check(a)
	}
}

func TestRawMessageIsUnchanged(t *testing.T) {
	lines := []string{
		"PING :tmi.twitch.tv",
		"@badge-info=;color=#FF0000 :tmi PRIVMSG #chan :hi",
		":nick!user@host PRIVMSG #chan :hello world",
		"MODE  #chan   +o    nick  ",
		"@ PING x",
	}
	for _, line := range lines {
		m, err := Parse(line)
		require.NoError(t, err)
		require.Equal(t, line, m.RawMessage())
		require.Equal(t, line, m.String())
	}
}
