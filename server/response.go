package server

import (
	"math"
	"time"

	"github.com/rustyeddy/marketdash/analysis"
	"github.com/rustyeddy/marketdash/view"
)

// The JSON DTOs use *float64 for numeric cells: undefined values (indicator
// warmup, alignment gaps) serialize as null rather than breaking the encoder
// with NaN.

type dashboardResponse struct {
	RenderID    string           `json:"render_id"`
	GeneratedAt time.Time        `json:"generated_at"`
	ElapsedMS   int64            `json:"elapsed_ms"`
	Overview    interface{}      `json:"overview"`
	Symbols     []symbolResponse `json:"symbols"`
	Chart       []chartPoint     `json:"chart,omitempty"`
	Matrix      *matrixResponse  `json:"matrix,omitempty"`
	Warnings    []string         `json:"warnings,omitempty"`
}

type symbolResponse struct {
	Symbol string      `json:"symbol"`
	Dates  []string    `json:"dates"`
	Open   []*float64  `json:"open"`
	High   []*float64  `json:"high"`
	Low    []*float64  `json:"low"`
	Close  []*float64  `json:"close"`
	Volume []*float64  `json:"volume"`
	Extra  indicatorNS `json:"indicators"`
}

type indicatorNS struct {
	SMA       []*float64 `json:"moving_average,omitempty"`
	RSI       []*float64 `json:"rsi,omitempty"`
	BollMid   []*float64 `json:"bollinger_mid,omitempty"`
	BollUpper []*float64 `json:"bollinger_upper,omitempty"`
	BollLower []*float64 `json:"bollinger_lower,omitempty"`
}

type chartPoint struct {
	Date   string  `json:"x"`
	Series string  `json:"series"`
	Value  float64 `json:"y"`
}

type matrixResponse struct {
	Symbols []string     `json:"symbols"`
	Values  [][]*float64 `json:"values"`
}

func toDashboardResponse(vm *view.ViewModel) dashboardResponse {
	resp := dashboardResponse{
		RenderID:    vm.ID,
		GeneratedAt: vm.GeneratedAt,
		ElapsedMS:   vm.Elapsed.Milliseconds(),
		Overview:    vm.Overview,
		Warnings:    vm.Warnings,
	}

	for _, sv := range vm.Symbols {
		sr := symbolResponse{Symbol: sv.Series.Symbol}
		for _, b := range sv.Series.Bars {
			sr.Dates = append(sr.Dates, b.Date.Format("2006-01-02"))
			sr.Open = append(sr.Open, fptr(b.Open))
			sr.High = append(sr.High, fptr(b.High))
			sr.Low = append(sr.Low, fptr(b.Low))
			sr.Close = append(sr.Close, fptr(b.Close))
			sr.Volume = append(sr.Volume, fptr(b.Volume))
		}
		sr.Extra = indicatorNS{
			SMA:       fptrs(sv.Indicators.SMA),
			RSI:       fptrs(sv.Indicators.RSI),
			BollMid:   fptrs(sv.Indicators.BollMid),
			BollUpper: fptrs(sv.Indicators.BollUpper),
			BollLower: fptrs(sv.Indicators.BollLower),
		}
		resp.Symbols = append(resp.Symbols, sr)
	}

	for _, p := range vm.Chart {
		resp.Chart = append(resp.Chart, chartPoint{
			Date:   p.Date.Format("2006-01-02"),
			Series: p.Series,
			Value:  p.Value,
		})
	}

	if vm.Matrix != nil {
		resp.Matrix = toMatrixResponse(vm.Matrix)
	}
	return resp
}

func toMatrixResponse(m *analysis.CorrelationMatrix) *matrixResponse {
	out := &matrixResponse{Symbols: m.Symbols}
	for _, row := range m.Values {
		out.Values = append(out.Values, fptrs(row))
	}
	return out
}

func fptr(v float64) *float64 {
	if math.IsNaN(v) {
		return nil
	}
	return &v
}

func fptrs(vs []float64) []*float64 {
	if vs == nil {
		return nil
	}
	out := make([]*float64, len(vs))
	for i, v := range vs {
		out[i] = fptr(v)
	}
	return out
}
