package message

import "fmt"

// Constructors for lines a client commonly sends or a server replies with
// during registration. Each one formats the line and runs it through Parse,
// so the result is exactly what a peer would receive.

func NewPing(host string) (*Message, error) { return Parse(fmt.Sprintf("PING :%s", host)) }

func NewPong(host string) (*Message, error) { return Parse(fmt.Sprintf("PONG %s", host)) }

func NewPass(password string) (*Message, error) { return Parse(fmt.Sprintf("PASS %s", password)) }

func NewNick(nick string) (*Message, error) { return Parse(fmt.Sprintf("NICK %s", nick)) }

// NewUser builds the registration USER line with mode 0.
func NewUser(username, realName string) (*Message, error) {
	return Parse(fmt.Sprintf("USER %s 0 * :%s", username, realName))
}

func NewCapReq(capability string) (*Message, error) {
	return Parse(fmt.Sprintf("CAP REQ :%s", capability))
}

func NewJoin(channel string) (*Message, error) { return Parse(fmt.Sprintf("JOIN %s", channel)) }

func NewPrivmsg(targets, text string) (*Message, error) {
	return Parse(fmt.Sprintf("PRIVMSG %s :%s", targets, text))
}

func NewWelcome(target, text string) (*Message, error) {
	return numericReply(RplWelcome, target, text)
}

func NewYourHost(target, text string) (*Message, error) {
	return numericReply(RplYourHost, target, text)
}

func NewCreated(target, text string) (*Message, error) {
	return numericReply(RplCreated, target, text)
}

func NewServerInfo(target, text string) (*Message, error) {
	return numericReply(RplMyInfo, target, text)
}

func numericReply(code, target, text string) (*Message, error) {
	return Parse(fmt.Sprintf("%s %s :%s", code, target, text))
}
