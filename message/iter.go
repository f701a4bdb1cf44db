package message

import "iter"

// ArgumentIter walks the arguments of a Message in source order. It is
// forward only; ask the Message for a new one to start over.
type ArgumentIter struct {
	raw  string
	args []Span
	pos  int
}

// Next returns the next argument, or false once all have been read.
func (it *ArgumentIter) Next() (string, bool) {
	if it.pos >= len(it.args) {
		return "", false
	}
	s := it.args[it.pos].of(it.raw)
	it.pos++
	return s, true
}

// Remaining returns how many arguments Next has yet to return.
func (it *ArgumentIter) Remaining() int { return len(it.args) - it.pos }

// All consumes the iterator as a range-over-func sequence.
func (it *ArgumentIter) All() iter.Seq[string] {
	return func(yield func(string) bool) {
		for s, ok := it.Next(); ok; s, ok = it.Next() {
			if !yield(s) {
				return
			}
		}
	}
}

// RawTag is one entry of the tag section. HasValue distinguishes "key"
// (false) from "key=" (true, empty Value). Value is still escaped.
type RawTag struct {
	Key      string
	Value    string
	HasValue bool
}

// TagIter walks the tags of a Message in source order.
type TagIter struct {
	raw  string
	tags []tagSpan
	pos  int
}

// Next returns the next tag, or false once all have been read.
func (it *TagIter) Next() (RawTag, bool) {
	if it.pos >= len(it.tags) {
		return RawTag{}, false
	}
	t := it.tags[it.pos]
	it.pos++

	rt := RawTag{Key: t.key.of(it.raw), HasValue: t.hasValue}
	if t.hasValue {
		rt.Value = t.value.of(it.raw)
	}
	return rt, true
}

func (it *TagIter) Remaining() int { return len(it.tags) - it.pos }

// All consumes the iterator, yielding key and value pairs.
func (it *TagIter) All() iter.Seq2[string, string] {
	return func(yield func(string, string) bool) {
		for t, ok := it.Next(); ok; t, ok = it.Next() {
			if !yield(t.Key, t.Value) {
				return
			}
		}
	}
}
