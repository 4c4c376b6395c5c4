package indicators

import "github.com/rustyeddy/marketdash/market"

// Options selects which derived columns Compute attaches. A zero window
// disables that indicator.
type Options struct {
	SMAWindow       int
	RSIPeriod       int
	BollingerWindow int
}

// Set holds the derived indicator columns for one canonical series. Each
// column is parallel to the series' bars; nil means the indicator was not
// requested or the series has no close column.
type Set struct {
	SMAWindow int
	SMA       []float64

	RSIPeriod int
	RSI       []float64

	BollingerWindow int
	BollMid         []float64
	BollUpper       []float64
	BollLower       []float64
}

// Compute derives the requested indicator columns from the series' closes.
// A series without a close column yields an empty Set: that disables
// indicator display for the symbol without failing the render cycle.
func Compute(s market.Series, opts Options) (Set, error) {
	var set Set
	if !s.HasClose() {
		return set, nil
	}
	closes := s.Closes()

	if opts.SMAWindow > 0 {
		ma, err := SMA(closes, opts.SMAWindow)
		if err != nil {
			return Set{}, err
		}
		set.SMAWindow = opts.SMAWindow
		set.SMA = ma
	}
	if opts.RSIPeriod > 0 {
		rsi, err := RSI(closes, opts.RSIPeriod)
		if err != nil {
			return Set{}, err
		}
		set.RSIPeriod = opts.RSIPeriod
		set.RSI = rsi
	}
	if opts.BollingerWindow > 0 {
		mid, upper, lower, err := Bollinger(closes, opts.BollingerWindow)
		if err != nil {
			return Set{}, err
		}
		set.BollingerWindow = opts.BollingerWindow
		set.BollMid = mid
		set.BollUpper = upper
		set.BollLower = lower
	}
	return set, nil
}
