// Package eventbridge lets parsed messages drive code written against
// github.com/thoj/go-ircevent, whose callbacks receive an *irc.Event.
package eventbridge

import (
	"errors"
	"strings"

	irc "github.com/thoj/go-ircevent"

	"ircmsg/message"
)

var ErrNoRawLine = errors.New("event has no raw line")

// ToEvent converts m into the event go-ircevent passes to callbacks. Code is
// upper-cased like go-ircevent does. Nick is set from the prefix name even
// when the prefix is a bare server name. Tag values are unescaped.
func ToEvent(m *message.Message) *irc.Event {
	e := &irc.Event{
		Code:      strings.ToUpper(m.RawCommand()),
		Raw:       m.RawMessage(),
		Arguments: m.Args(),
	}
	if e.Arguments == nil {
		e.Arguments = []string{}
	}

	if src, ok := m.RawPrefix(); ok {
		p, _ := m.Prefix()
		e.Source = src
		e.Nick = p.Name
		e.User = p.User
		e.Host = p.Host
	}

	if m.HasTags() {
		e.Tags = make(map[string]string)
		tags := m.RawTags()
		for t, ok := tags.Next(); ok; t, ok = tags.Next() {
			if _, dup := e.Tags[t.Key]; dup {
				continue
			}
			e.Tags[t.Key] = message.UnescapeTagValue(t.Value)
		}
	}
	return e
}

// FromEvent parses the raw line an event was built from.
func FromEvent(e *irc.Event) (*message.Message, error) {
	if e == nil || e.Raw == "" {
		return nil, ErrNoRawLine
	}
	return message.Parse(strings.TrimRight(e.Raw, "\r\n"))
}
