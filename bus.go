package main

import (
	"strings"

	"github.com/rs/zerolog"

	"ircmsg/message"
)

type Handler func(*message.Message)

// Bus dispatches parsed messages to handlers registered for their command.
// Handlers for "*" see every message after the verb-specific ones. All
// handlers must be registered before the first Emit.
type Bus struct {
	handlers map[string][]Handler
	log      zerolog.Logger
}

func NewBus(log zerolog.Logger) *Bus {
	return &Bus{handlers: make(map[string][]Handler), log: log}
}

func (b *Bus) On(verb string, h Handler) {
	verb = strings.ToUpper(verb)
	b.handlers[verb] = append(b.handlers[verb], h)
}

func (b *Bus) Emit(msg *message.Message) {
	verb := strings.ToUpper(msg.RawCommand())
	hs, ok := b.handlers[verb]
	if !ok {
		b.log.Trace().Str("verb", verb).Msg("no handler")
	}
	for _, h := range hs {
		h(msg)
	}
	for _, h := range b.handlers["*"] {
		h(msg)
	}
}
