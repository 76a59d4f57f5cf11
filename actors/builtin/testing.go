package builtin

import (
	"fmt"
	"strings"
)

// Accumulates a sequence of messages (e.g. validation failures).
type MessageAccumulator struct {
	// Accumulated messages.
	// This is a pointer to support accumulators derived from WithPrefix() accumulating to
	// the same underlying collection.
	msgs *[]string
	// Optional prefix to all new messages added.
	prefix string
}

// Returns a new accumulator backed by the same collection, that will prefix each new message with
// a formatted string.
func (ma *MessageAccumulator) WithPrefix(format string, args ...interface{}) *MessageAccumulator {
	ma.initialize()
	return &MessageAccumulator{
		msgs:   ma.msgs,
		prefix: ma.prefix + fmt.Sprintf(format, args...),
	}
}

func (ma *MessageAccumulator) IsEmpty() bool {
	return ma.msgs == nil || len(*ma.msgs) == 0
}

func (ma *MessageAccumulator) Messages() []string {
	if ma.msgs == nil {
		return nil
	}
	return (*ma.msgs)[:]
}

// Adds a message to the accumulator.
func (ma *MessageAccumulator) Add(msg string) {
	ma.initialize()
	*ma.msgs = append(*ma.msgs, ma.prefix+msg)
}

// Adds messages to the accumulator.
// The messages are prefixed by this accumulator's prefix.
func (ma *MessageAccumulator) AddAll(msgs []string) {
	for _, msg := range msgs {
		ma.Add(msg)
	}
}

// Adds a formatted message to the accumulator.
func (ma *MessageAccumulator) Addf(format string, args ...interface{}) {
	ma.Add(fmt.Sprintf(format, args...))
}

// Adds a message to the accumulator if predicate is false.
func (ma *MessageAccumulator) Require(predicate bool, msgFormat string, args ...interface{}) {
	if !predicate {
		ma.Addf(msgFormat, args...)
	}
}

// Adds a message if err is non-nil.
func (ma *MessageAccumulator) RequireNoError(err error, msgFormat string, args ...interface{}) {
	if err != nil {
		msgFormat = msgFormat + ": %v"
		args = append(args, err)
		ma.Addf(msgFormat, args...)
	}
}

func (ma *MessageAccumulator) String() string {
	return strings.Join(ma.Messages(), "\n")
}

func (ma *MessageAccumulator) initialize() {
	if ma.msgs == nil {
		ma.msgs = &[]string{}
	}
}
