package message

import "strings"

// Ping is "PING <token>" or the server form "PING <source> <target>".
type Ping struct {
	Token  string
	Target string
}

func (p *Ping) MatchCommand(name string, args *ArgumentIter) bool {
	if !is(name, "PING") {
		return false
	}
	a, ok := take(args, 1, 2)
	if !ok {
		return false
	}
	*p = Ping{Token: a[0]}
	if len(a) == 2 {
		p.Target = a[1]
	}
	return true
}

// Pong is "PONG <server> [<token>]".
type Pong struct {
	Server string
	Token  string
}

func (p *Pong) MatchCommand(name string, args *ArgumentIter) bool {
	if !is(name, "PONG") {
		return false
	}
	a, ok := take(args, 1, 2)
	if !ok {
		return false
	}
	*p = Pong{Server: a[0]}
	if len(a) == 2 {
		p.Token = a[1]
	}
	return true
}

// Pass is "PASS <password>". Extra server-link parameters are ignored.
type Pass struct {
	Password string
}

func (p *Pass) MatchCommand(name string, args *ArgumentIter) bool {
	if !is(name, "PASS") {
		return false
	}
	pw, ok := args.Next()
	if !ok {
		return false
	}
	p.Password = pw
	return true
}

// Nick is "NICK <nickname> [<hopcount/ts>]".
type Nick struct {
	Nickname string
}

func (n *Nick) MatchCommand(name string, args *ArgumentIter) bool {
	if !is(name, "NICK") {
		return false
	}
	a, ok := take(args, 1, 2)
	if !ok || a[0] == "" {
		return false
	}
	n.Nickname = a[0]
	return true
}

// User is "USER <username> <mode> <unused> :<realname>".
type User struct {
	Username string
	Mode     string
	Unused   string
	RealName string
}

func (u *User) MatchCommand(name string, args *ArgumentIter) bool {
	if !is(name, "USER") {
		return false
	}
	a, ok := take(args, 4, 4)
	if !ok {
		return false
	}
	*u = User{Username: a[0], Mode: a[1], Unused: a[2], RealName: a[3]}
	return true
}

// CapReq is a client capability request, "CAP REQ :<caps>".
type CapReq struct {
	Capabilities string
}

func (c *CapReq) MatchCommand(name string, args *ArgumentIter) bool {
	if !is(name, "CAP") {
		return false
	}
	a, ok := take(args, 2, 2)
	if !ok || !is(a[0], "REQ") {
		return false
	}
	c.Capabilities = a[1]
	return true
}

// Caps splits the requested capabilities on spaces.
func (c CapReq) Caps() []string { return strings.Fields(c.Capabilities) }

// Join is "JOIN <channels> [<keys>]". With extended-join a server adds the
// account name and real name of the joining user.
type Join struct {
	Channels string
	Keys     string
	Account  string
	RealName string
}

func (j *Join) MatchCommand(name string, args *ArgumentIter) bool {
	if !is(name, "JOIN") {
		return false
	}
	a, ok := take(args, 1, 3)
	if !ok || a[0] == "" {
		return false
	}
	*j = Join{Channels: a[0]}
	switch len(a) {
	case 2:
		j.Keys = a[1]
	case 3:
		j.Account, j.RealName = a[1], a[2]
	}
	return true
}

// ChannelList splits the comma separated channel list.
func (j Join) ChannelList() []string { return strings.Split(j.Channels, ",") }

// Part is "PART <channels> [:<reason>]".
type Part struct {
	Channels string
	Reason   string
}

func (p *Part) MatchCommand(name string, args *ArgumentIter) bool {
	if !is(name, "PART") {
		return false
	}
	a, ok := take(args, 1, 2)
	if !ok {
		return false
	}
	*p = Part{Channels: a[0]}
	if len(a) == 2 {
		p.Reason = a[1]
	}
	return true
}

// Quit is "QUIT [:<reason>]".
type Quit struct {
	Reason string
}

func (q *Quit) MatchCommand(name string, args *ArgumentIter) bool {
	if !is(name, "QUIT") {
		return false
	}
	a, ok := take(args, 0, 1)
	if !ok {
		return false
	}
	q.Reason = ""
	if len(a) == 1 {
		q.Reason = a[0]
	}
	return true
}

// Privmsg is "PRIVMSG <target> :<text>".
type Privmsg struct {
	Target string
	Text   string
}

func (p *Privmsg) MatchCommand(name string, args *ArgumentIter) bool {
	return matchText(name, "PRIVMSG", args, &p.Target, &p.Text)
}

// IsChannel reports whether the message was sent to a channel.
func (p Privmsg) IsChannel() bool { return isChannel(p.Target) }

// CTCP returns the CTCP request carried in the text, if any.
func (p Privmsg) CTCP() (CTCP, bool) { return ParseCTCP(p.Text) }

// Notice is "NOTICE <target> :<text>".
type Notice struct {
	Target string
	Text   string
}

func (n *Notice) MatchCommand(name string, args *ArgumentIter) bool {
	return matchText(name, "NOTICE", args, &n.Target, &n.Text)
}

// CTCP returns the CTCP reply carried in the text, if any.
func (n Notice) CTCP() (CTCP, bool) { return ParseCTCP(n.Text) }

// Numeric replies sent during registration.
const (
	RplWelcome  = "001"
	RplYourHost = "002"
	RplCreated  = "003"
	RplMyInfo   = "004"
)

// Welcome is RPL_WELCOME: "001 <target> :<text>".
type Welcome struct {
	Target string
	Text   string
}

func (w *Welcome) MatchCommand(name string, args *ArgumentIter) bool {
	return matchText(name, RplWelcome, args, &w.Target, &w.Text)
}

// YourHost is RPL_YOURHOST: "002 <target> :<text>".
type YourHost struct {
	Target string
	Text   string
}

func (y *YourHost) MatchCommand(name string, args *ArgumentIter) bool {
	return matchText(name, RplYourHost, args, &y.Target, &y.Text)
}

// Created is RPL_CREATED: "003 <target> :<text>".
type Created struct {
	Target string
	Text   string
}

func (c *Created) MatchCommand(name string, args *ArgumentIter) bool {
	return matchText(name, RplCreated, args, &c.Target, &c.Text)
}

// ServerInfo is RPL_MYINFO. Servers usually send
// "004 <target> <servername> <version> <umodes> <cmodes>"; Params holds
// everything after the target.
type ServerInfo struct {
	Target string
	Params []string
}

func (s *ServerInfo) MatchCommand(name string, args *ArgumentIter) bool {
	if name != RplMyInfo {
		return false
	}
	a, ok := take(args, 2, -1)
	if !ok {
		return false
	}
	*s = ServerInfo{Target: a[0], Params: a[1:]}
	return true
}

func matchText(name, want string, args *ArgumentIter, target, text *string) bool {
	if !is(name, want) {
		return false
	}
	a, ok := take(args, 2, 2)
	if !ok {
		return false
	}
	*target, *text = a[0], a[1]
	return true
}

func isChannel(target string) bool {
	if target == "" {
		return false
	}
	switch target[0] {
	case '#', '&', '!', '+':
		return true
	}
	return false
}

const ctcpDelim = '\x01'

// CTCP is a client-to-client request wrapped in \x01 bytes inside a
// PRIVMSG or NOTICE text, e.g. "\x01VERSION\x01" or "\x01ACTION waves\x01".
type CTCP struct {
	Command string
	Arg     string
}

// ParseCTCP extracts a CTCP request from text. The closing \x01 is optional
// as some clients omit it.
func ParseCTCP(text string) (CTCP, bool) {
	if len(text) < 2 || text[0] != ctcpDelim {
		return CTCP{}, false
	}
	body := strings.TrimSuffix(text[1:], string(ctcpDelim))
	cmd, arg, _ := strings.Cut(body, " ")
	if cmd == "" {
		return CTCP{}, false
	}
	return CTCP{Command: strings.ToUpper(cmd), Arg: arg}, true
}
