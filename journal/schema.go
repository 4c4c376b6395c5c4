package journal

const Schema = `
CREATE TABLE IF NOT EXISTS renders (
	render_id TEXT PRIMARY KEY,
	time DATETIME NOT NULL,
	category TEXT NOT NULL,
	symbols TEXT NOT NULL,
	interval TEXT NOT NULL,
	start_date DATETIME NOT NULL,
	end_date DATETIME NOT NULL,
	symbols_with_data INTEGER NOT NULL,
	warnings INTEGER NOT NULL,
	elapsed_ms INTEGER NOT NULL
);

CREATE INDEX IF NOT EXISTS idx_renders_time ON renders(time);
`
