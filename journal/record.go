package journal

import (
	"strings"

	"github.com/rustyeddy/marketdash/view"
)

// FromView builds the journal record for a completed render cycle.
func FromView(vm *view.ViewModel) RenderRecord {
	return RenderRecord{
		RenderID:        vm.ID,
		Time:            vm.GeneratedAt,
		Category:        string(vm.Request.Category),
		Symbols:         strings.Join(vm.Request.Tickers, ","),
		Interval:        string(vm.Request.Interval),
		Start:           vm.Request.Start,
		End:             vm.Request.End,
		SymbolsWithData: len(vm.Symbols),
		Warnings:        len(vm.Warnings),
		ElapsedMS:       vm.Elapsed.Milliseconds(),
	}
}
