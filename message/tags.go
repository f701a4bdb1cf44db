package message

import (
	"strconv"
	"time"
)

// ServerTime is the IRCv3 server-time tag, "time=2011-10-19T16:40:51.620Z".
type ServerTime struct {
	Time time.Time
}

func (s *ServerTime) MatchTag(tags *TagIter) bool {
	t, ok := find(tags, "time")
	if !ok || !t.HasValue {
		return false
	}
	ts, err := time.Parse(time.RFC3339Nano, t.Value)
	if err != nil {
		return false
	}
	s.Time = ts
	return true
}

// TmiSentTS is Twitch's "tmi-sent-ts" tag, milliseconds since the epoch.
type TmiSentTS struct {
	Time time.Time
}

func (s *TmiSentTS) MatchTag(tags *TagIter) bool {
	t, ok := find(tags, "tmi-sent-ts")
	if !ok {
		return false
	}
	ms, err := strconv.ParseInt(t.Value, 10, 64)
	if err != nil {
		return false
	}
	s.Time = time.UnixMilli(ms).UTC()
	return true
}

// MsgID is the IRCv3 "msgid" tag.
type MsgID struct {
	ID string
}

func (m *MsgID) MatchTag(tags *TagIter) bool {
	t, ok := find(tags, "msgid")
	if !ok || t.Value == "" {
		return false
	}
	m.ID = t.Value
	return true
}

// Account is the IRCv3 account-tag, naming the sender's services account.
type Account struct {
	Name string
}

func (a *Account) MatchTag(tags *TagIter) bool {
	t, ok := find(tags, "account")
	if !ok || t.Value == "" {
		return false
	}
	a.Name = UnescapeTagValue(t.Value)
	return true
}

// Color is a "#RRGGBB" colour tag as sent by Twitch. An empty value means
// the user never picked one and does not match.
type Color struct {
	Hex     string
	R, G, B uint8
}

func (c *Color) MatchTag(tags *TagIter) bool {
	t, ok := find(tags, "color")
	if !ok || len(t.Value) != 7 || t.Value[0] != '#' {
		return false
	}
	rgb, err := strconv.ParseUint(t.Value[1:], 16, 32)
	if err != nil {
		return false
	}
	*c = Color{
		Hex: t.Value,
		R:   uint8(rgb >> 16),
		G:   uint8(rgb >> 8),
		B:   uint8(rgb),
	}
	return true
}

// DisplayName is the "display-name" tag with escapes decoded.
type DisplayName struct {
	Name string
}

func (d *DisplayName) MatchTag(tags *TagIter) bool {
	t, ok := find(tags, "display-name")
	if !ok || t.Value == "" {
		return false
	}
	d.Name = UnescapeTagValue(t.Value)
	return true
}
