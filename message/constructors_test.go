package message

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestConstructors_Lines(t *testing.T) {
	type tc struct {
		name string
		make func() (*Message, error)
		want string
	}

	tests := []tc{
		{name: "ping", make: func() (*Message, error) { return NewPing("tmi.twitch.tv") }, want: "PING :tmi.twitch.tv"},
		{name: "pong", make: func() (*Message, error) { return NewPong("tmi.twitch.tv") }, want: "PONG tmi.twitch.tv"},
		{name: "pass", make: func() (*Message, error) { return NewPass("oauth:abc") }, want: "PASS oauth:abc"},
		{name: "nick", make: func() (*Message, error) { return NewNick("justinfan1") }, want: "NICK justinfan1"},
		{name: "user", make: func() (*Message, error) { return NewUser("guest", "Real Name") }, want: "USER guest 0 * :Real Name"},
		{name: "cap_req", make: func() (*Message, error) { return NewCapReq("twitch.tv/tags") }, want: "CAP REQ :twitch.tv/tags"},
		{name: "join", make: func() (*Message, error) { return NewJoin("#chan") }, want: "JOIN #chan"},
		{name: "privmsg", make: func() (*Message, error) { return NewPrivmsg("#chan", "hello world") }, want: "PRIVMSG #chan :hello world"},
		{name: "welcome", make: func() (*Message, error) { return NewWelcome("nick", "Welcome!") }, want: "001 nick :Welcome!"},
		{name: "yourhost", make: func() (*Message, error) { return NewYourHost("nick", "Your host") }, want: "002 nick :Your host"},
		{name: "created", make: func() (*Message, error) { return NewCreated("nick", "Created") }, want: "003 nick :Created"},
		{name: "serverinfo", make: func() (*Message, error) { return NewServerInfo("nick", "srv 1.0") }, want: "004 nick :srv 1.0"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			m, err := tt.make()
			require.NoError(t, err)
			require.Equal(t, tt.want, m.RawMessage())
		})
	}
}

func TestConstructors_MatchTheirShapes(t *testing.T) {
	m, err := NewPrivmsg("#chan", "hello world")
	require.NoError(t, err)
	pm, ok := MatchCommand[Privmsg](m)
	require.True(t, ok)
	require.Equal(t, Privmsg{Target: "#chan", Text: "hello world"}, pm)

	m, err = NewUser("guest", "Real Name")
	require.NoError(t, err)
	u, ok := MatchCommand[User](m)
	require.True(t, ok)
	require.Equal(t, "Real Name", u.RealName)

	m, err = NewPing("irc.example.net")
	require.NoError(t, err)
	p, ok := MatchCommand[Ping](m)
	require.True(t, ok)
	require.Equal(t, "irc.example.net", p.Token)

	m, err = NewWelcome("nick", "Welcome to IRC")
	require.NoError(t, err)
	w, ok := MatchCommand[Welcome](m)
	require.True(t, ok)
	require.Equal(t, Welcome{Target: "nick", Text: "Welcome to IRC"}, w)

	m, err = NewServerInfo("nick", "srv 1.0")
	require.NoError(t, err)
	si, ok := MatchCommand[ServerInfo](m)
	require.True(t, ok)
	require.Equal(t, []string{"srv 1.0"}, si.Params)
}

func TestConstructors_EmptyInputStillParses(t *testing.T) {
	// "PONG " has a command but no argument
	m, err := NewPong("")
	require.NoError(t, err)
	require.False(t, m.HasArgs())

	// "PRIVMSG  :" skips the double space and keeps an empty trailing
	m, err = NewPrivmsg("", "")
	require.NoError(t, err)
	require.Equal(t, []string{""}, m.Args())
}
