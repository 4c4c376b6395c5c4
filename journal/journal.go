// Package journal records render cycles for later inspection: what was
// requested, how long it took, and how much of it produced warnings. Market
// data itself is never written anywhere.
package journal

import "time"

// RenderRecord is one journaled render cycle.
type RenderRecord struct {
	RenderID        string
	Time            time.Time
	Category        string
	Symbols         string // comma-joined request tickers
	Interval        string
	Start           time.Time
	End             time.Time
	SymbolsWithData int
	Warnings        int
	ElapsedMS       int64
}

// Journal persists render records.
type Journal interface {
	RecordRender(RenderRecord) error
	Close() error
}

// Noop discards every record.
type Noop struct{}

func NewNoop() *Noop                        { return &Noop{} }
func (*Noop) RecordRender(RenderRecord) error { return nil }
func (*Noop) Close() error                    { return nil }
