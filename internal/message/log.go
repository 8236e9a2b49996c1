package message

// DefaultCapacity is the number of messages a Log keeps when no capacity
// is configured.
const DefaultCapacity = 256

// Log is a bounded ring of messages. Once full, the oldest message is
// dropped for every new one.
type Log struct {
	buf   []Message
	start int
	count int
}

// NewLog creates a log holding at most capacity messages.
// Non-positive capacities fall back to DefaultCapacity.
func NewLog(capacity int) *Log {
	if capacity <= 0 {
		capacity = DefaultCapacity
	}
	return &Log{buf: make([]Message, capacity)}
}

// Push appends messages in order.
func (l *Log) Push(msgs ...Message) {
	for _, m := range msgs {
		idx := (l.start + l.count) % len(l.buf)
		l.buf[idx] = m
		if l.count < len(l.buf) {
			l.count++
		} else {
			l.start = (l.start + 1) % len(l.buf)
		}
	}
}

// Len returns the number of stored messages.
func (l *Log) Len() int {
	return l.count
}

// Cap returns the maximum number of stored messages.
func (l *Log) Cap() int {
	return len(l.buf)
}

// Recent returns up to n messages, newest first.
func (l *Log) Recent(n int) []Message {
	if n > l.count {
		n = l.count
	}
	if n <= 0 {
		return nil
	}
	out := make([]Message, n)
	for i := 0; i < n; i++ {
		idx := (l.start + l.count - 1 - i) % len(l.buf)
		out[i] = l.buf[idx]
	}
	return out
}

// All returns every stored message, oldest first.
func (l *Log) All() []Message {
	out := make([]Message, l.count)
	for i := 0; i < l.count; i++ {
		out[i] = l.buf[(l.start+i)%len(l.buf)]
	}
	return out
}
