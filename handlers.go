package main

import (
	"github.com/rs/zerolog"

	"ircmsg/eventbridge"
	"ircmsg/message"
)

func registerCoreHandlers(b *Bus, log zerolog.Logger, tally *Tally) {
	b.On("PING", func(m *message.Message) {
		p, ok := message.MatchCommand[message.Ping](m)
		if !ok {
			log.Warn().Str("raw", m.RawMessage()).Msg("[ping] unexpected shape")
			return
		}
		// the reply a client would send back
		reply, err := message.NewPong(p.Token)
		if err != nil {
			log.Error().Err(err).Str("token", p.Token).Msg("[ping] cannot build PONG")
			return
		}
		log.Debug().Str("token", p.Token).Str("target", p.Target).
			Str("reply", reply.RawMessage()).Msg("[ping]")
	})

	b.On("PRIVMSG", func(m *message.Message) {
		pm, ok := message.MatchCommand[message.Privmsg](m)
		if !ok {
			return
		}
		ev := sender(log.Info(), m).Str("target", pm.Target).Bool("channel", pm.IsChannel())
		if c, ok := pm.CTCP(); ok {
			ev.Str("ctcp", c.Command).Str("ctcp_arg", c.Arg).Msg("[ctcp]")
			return
		}
		ev.Str("text", pm.Text).Msg("[privmsg]")
	})

	b.On("NOTICE", func(m *message.Message) {
		n, ok := message.MatchCommand[message.Notice](m)
		if !ok {
			return
		}
		sender(log.Info(), m).Str("target", n.Target).Str("text", n.Text).Msg("[notice]")
	})

	b.On(message.RplWelcome, func(m *message.Message) {
		if w, ok := message.MatchCommand[message.Welcome](m); ok {
			log.Info().Str("nick", w.Target).Str("text", w.Text).Msg("[welcome]")
		}
	})
	b.On(message.RplYourHost, func(m *message.Message) {
		if y, ok := message.MatchCommand[message.YourHost](m); ok {
			log.Info().Str("text", y.Text).Msg("[yourhost]")
		}
	})
	b.On(message.RplCreated, func(m *message.Message) {
		if c, ok := message.MatchCommand[message.Created](m); ok {
			log.Info().Str("text", c.Text).Msg("[created]")
		}
	})
	b.On(message.RplMyInfo, func(m *message.Message) {
		if s, ok := message.MatchCommand[message.ServerInfo](m); ok {
			log.Info().Strs("params", s.Params).Msg("[myinfo]")
		}
	})

	b.On("CAP", func(m *message.Message) {
		if c, ok := message.MatchCommand[message.CapReq](m); ok {
			log.Info().Strs("caps", c.Caps()).Msg("[cap] request")
		}
	})

	b.On("JOIN", func(m *message.Message) {
		if j, ok := message.MatchCommand[message.Join](m); ok {
			sender(log.Debug(), m).Strs("channels", j.ChannelList()).Msg("[join]")
		}
	})
	b.On("PART", func(m *message.Message) {
		if p, ok := message.MatchCommand[message.Part](m); ok {
			sender(log.Debug(), m).Str("channels", p.Channels).Str("reason", p.Reason).Msg("[part]")
		}
	})
	b.On("QUIT", func(m *message.Message) {
		if q, ok := message.MatchCommand[message.Quit](m); ok {
			sender(log.Debug(), m).Str("reason", q.Reason).Msg("[quit]")
		}
	})
	b.On("NICK", func(m *message.Message) {
		if n, ok := message.MatchCommand[message.Nick](m); ok {
			sender(log.Debug(), m).Str("new", n.Nickname).Msg("[nick]")
		}
	})

	b.On("ERROR", func(m *message.Message) {
		log.Error().Strs("args", m.Args()).Msg("[error] from server")
	})

	b.On("*", func(m *message.Message) {
		tally.Add(m.RawCommand())

		e := log.Trace()
		if !e.Enabled() {
			return
		}
		ev := eventbridge.ToEvent(m)
		e.Str("code", ev.Code).Str("nick", ev.Nick).Str("user", ev.User).Str("host", ev.Host).
			Strs("args", ev.Arguments).Interface("tags", ev.Tags).
			Str("normalized", message.Rebuild(m)).Msg("[event]")
	})
}

// sender adds the message source and, when tagged, its timestamp and
// display name.
func sender(e *zerolog.Event, m *message.Message) *zerolog.Event {
	if p, ok := m.Prefix(); ok {
		e = e.Str("from", p.Name)
	}
	if d, ok := message.MatchTag[message.DisplayName](m); ok {
		e = e.Str("display_name", d.Name)
	}
	if a, ok := message.MatchTag[message.Account](m); ok {
		e = e.Str("account", a.Name)
	}
	if st, ok := message.MatchTag[message.ServerTime](m); ok {
		e = e.Time("sent", st.Time)
	} else if ts, ok := message.MatchTag[message.TmiSentTS](m); ok {
		e = e.Time("sent", ts.Time)
	}
	if id, ok := message.MatchTag[message.MsgID](m); ok {
		e = e.Str("msgid", id.ID)
	}
	if c, ok := message.MatchTag[message.Color](m); ok {
		e = e.Str("color", c.Hex)
	}
	return e
}
