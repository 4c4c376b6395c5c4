package quotes

import "github.com/shopspring/decimal"

// Placeholder returns the static overview rows for a category, used when the
// quote provider is unreachable.
func Placeholder(c Category) []Row {
	rows := placeholders[c]
	out := make([]Row, len(rows))
	copy(out, rows)
	return out
}

func row(symbol, name string, price, changePct float64) Row {
	return Row{
		Symbol:    symbol,
		Name:      name,
		Price:     decimal.NewFromFloat(price),
		ChangePct: decimal.NewFromFloat(changePct),
	}
}

var placeholders = map[Category][]Row{
	Stocks: {
		row("AAPL", "Apple", 230, 1.5),
		row("MSFT", "Microsoft", 250, 1.5),
		row("AMZN", "Amazon", 3300, -0.5),
		row("GOOGL", "Alphabet", 2800, 2),
		row("NVDA", "NVIDIA", 700, 3),
	},
	Markets: {
		row("^GSPC", "S&P 500", 4500, 0.5),
		row("^IXIC", "Nasdaq", 15000, 1.2),
		row("^FTSE", "FTSE 100", 7500, -0.3),
		row("^GDAXI", "DAX", 16000, 0.4),
		row("^N225", "Nikkei", 29000, 0.8),
		row("^HSI", "Hang Seng", 20000, -0.1),
	},
	Crypto: {
		row("BTC-USD", "Bitcoin", 50000, 1.2),
		row("ETH-USD", "Ethereum", 3500, -0.3),
		row("USDT-USD", "Tether", 1, 0.0),
		row("BNB-USD", "BNB", 400, 2.1),
		row("XRP-USD", "XRP", 0.5, 3.5),
	},
	Forex: {
		row("EURUSD=X", "USD/EUR", 0.85, 0.1),
		row("JPY=X", "USD/JPY", 110, 0.05),
		row("GBPUSD=X", "USD/GBP", 0.72, -0.2),
		row("AUDUSD=X", "USD/AUD", 1.35, 0.5),
	},
	Commodities: {
		row("GC=F", "Gold", 1800, 0.5),
		row("SI=F", "Silver", 23, -0.2),
		row("CL=F", "Crude Oil", 80, 1.1),
		row("NG=F", "Natural Gas", 3.5, -0.4),
		row("PL=F", "Platinum", 900, 2.3),
	},
}
