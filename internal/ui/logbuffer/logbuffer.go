// Package logbuffer keeps a bounded scrollback of log lines.
package logbuffer

import (
	"dcv/internal/docker"
)

// Buffer is a fixed-capacity ring of log entries with a scroll offset.
// Appending past capacity evicts the oldest entry; the offset counts lines
// scrolled down from the top and is always clamped to
// [0, max(0, len-viewport)]. When the offset sits at the bottom it follows
// new entries.
type Buffer struct {
	entries  []docker.LogEntry
	capacity int
	viewport int
	offset   int
	nextSeq  uint64
}

func New(capacity int) *Buffer {
	if capacity < 1 {
		capacity = 1
	}
	return &Buffer{capacity: capacity, viewport: 1}
}

func (b *Buffer) Len() int {
	return len(b.entries)
}

func (b *Buffer) Offset() int {
	return b.offset
}

// Append assigns the next sequence number to the entry and stores it,
// evicting the oldest line when the ring is full.
func (b *Buffer) Append(entry docker.LogEntry) {
	b.nextSeq++
	entry.Seq = b.nextSeq

	follow := b.offset == b.maxOffset()

	if len(b.entries) == b.capacity {
		copy(b.entries, b.entries[1:])
		b.entries[len(b.entries)-1] = entry
	} else {
		b.entries = append(b.entries, entry)
	}

	if follow {
		b.offset = b.maxOffset()
	} else {
		b.clamp()
	}
}

// SetViewport records the number of visible lines.
func (b *Buffer) SetViewport(height int) {
	if height < 1 {
		height = 1
	}
	atBottom := b.offset == b.maxOffset()
	b.viewport = height
	if atBottom {
		b.offset = b.maxOffset()
	} else {
		b.clamp()
	}
}

func (b *Buffer) Scroll(delta int) {
	b.offset += delta
	b.clamp()
}

func (b *Buffer) JumpTop() {
	b.offset = 0
}

func (b *Buffer) JumpBottom() {
	b.offset = b.maxOffset()
}

// Window returns the entries visible at the current offset.
func (b *Buffer) Window() []docker.LogEntry {
	if len(b.entries) == 0 {
		return nil
	}
	end := b.offset + b.viewport
	if end > len(b.entries) {
		end = len(b.entries)
	}
	return b.entries[b.offset:end]
}

// Entries returns the whole scrollback, oldest first.
func (b *Buffer) Entries() []docker.LogEntry {
	return b.entries
}

// Reset discards all contents and rewinds the scroll position. Sequence
// numbers keep counting so lines from a previous stream are never confused
// with new ones.
func (b *Buffer) Reset() {
	b.entries = nil
	b.offset = 0
}

func (b *Buffer) maxOffset() int {
	m := len(b.entries) - b.viewport
	if m < 0 {
		return 0
	}
	return m
}

func (b *Buffer) clamp() {
	if b.offset < 0 {
		b.offset = 0
	}
	if m := b.maxOffset(); b.offset > m {
		b.offset = m
	}
}
