package message

import "strings"

// Command is implemented by typed views of a command. MatchCommand inspects
// the raw command name and arguments and fills the receiver when they have
// the expected shape. It reports false, leaving the receiver untouched, on
// any mismatch: wrong name, wrong arity or an argument it cannot parse.
type Command interface {
	MatchCommand(name string, args *ArgumentIter) bool
}

// Command attempts to match c against the message's command.
func (m *Message) Command(c Command) bool {
	return c.MatchCommand(m.RawCommand(), m.RawArgs())
}

// MatchCommand returns the message's command as a T when it has T's shape.
//
//	if j, ok := message.MatchCommand[message.Join](m); ok { ... }
func MatchCommand[T any, PT interface {
	*T
	Command
}](m *Message) (T, bool) {
	var v T
	if !PT(&v).MatchCommand(m.RawCommand(), m.RawArgs()) {
		var zero T
		return zero, false
	}
	return v, true
}

// take reads all remaining arguments when their count is within [min, max].
// A negative max means no upper bound.
func take(args *ArgumentIter, min, max int) ([]string, bool) {
	n := args.Remaining()
	if n < min || (max >= 0 && n > max) {
		return nil, false
	}
	out := make([]string, 0, n)
	for s, ok := args.Next(); ok; s, ok = args.Next() {
		out = append(out, s)
	}
	return out, true
}

func is(name, want string) bool { return strings.EqualFold(name, want) }
