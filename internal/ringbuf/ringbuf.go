// Package ringbuf provides the per-context in-memory staging buffer for
// rendered log records. The buffer is capacity-bounded in bytes; appending
// past capacity evicts the oldest records. Records at or above the flush
// severity mark the buffer as due for flushing.
package ringbuf

import "sync"

const (
	// DefaultCapacity applies when a context does not configure BufferSize.
	DefaultCapacity = 64 * 1024

	// DefaultFlushLevel applies when a context does not configure
	// FlushLevel. Severity 3 is "err": anything err or more severe flushes.
	DefaultFlushLevel = 3
)

// Record is one staged log record.
type Record struct {
	Level int
	Line  string
}

// Buffer is a byte-bounded ring of records. Safe for concurrent use.
type Buffer struct {
	mu         sync.Mutex
	capacity   int64
	flushLevel int
	used       int64
	records    []Record
}

// New creates a buffer with the given capacity in bytes and flush severity
// threshold. A non-positive capacity selects DefaultCapacity. The flush level
// is taken as given: 0 is "emerg only", a negative level ("none") disables
// threshold flushing entirely.
func New(capacityBytes int64, flushLevel int) *Buffer {
	if capacityBytes <= 0 {
		capacityBytes = DefaultCapacity
	}
	return &Buffer{capacity: capacityBytes, flushLevel: flushLevel}
}

// Capacity returns the byte capacity the buffer was created with.
func (b *Buffer) Capacity() int64 {
	return b.capacity
}

// FlushLevel returns the severity threshold the buffer was created with.
func (b *Buffer) FlushLevel() int {
	return b.flushLevel
}

// Append stages one record, evicting oldest records as needed to stay
// within capacity. It reports whether the record's severity reached the
// flush threshold (numerically lower severity is more urgent).
func (b *Buffer) Append(level int, line string) bool {
	b.mu.Lock()
	defer b.mu.Unlock()

	size := int64(len(line))
	if size > b.capacity {
		// A single oversized record replaces the whole buffer content.
		line = line[:b.capacity]
		size = b.capacity
	}

	for b.used+size > b.capacity && len(b.records) > 0 {
		b.used -= int64(len(b.records[0].Line))
		b.records = b.records[1:]
	}

	b.records = append(b.records, Record{Level: level, Line: line})
	b.used += size

	return b.flushLevel >= 0 && level <= b.flushLevel
}

// Len returns the number of staged records.
func (b *Buffer) Len() int {
	b.mu.Lock()
	defer b.mu.Unlock()
	return len(b.records)
}

// Drain returns all staged records in arrival order and empties the buffer.
func (b *Buffer) Drain() []Record {
	b.mu.Lock()
	defer b.mu.Unlock()

	out := b.records
	b.records = nil
	b.used = 0
	return out
}
