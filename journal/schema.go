package journal

// Schema creates the signals table. Reasons and patterns are JSON arrays.
const Schema = `
CREATE TABLE IF NOT EXISTS signals (
	signal_id TEXT PRIMARY KEY,
	symbol TEXT NOT NULL,
	as_of DATETIME NOT NULL,
	direction TEXT NOT NULL,
	strength TEXT NOT NULL,
	score REAL NOT NULL,
	reasons TEXT NOT NULL,
	patterns TEXT NOT NULL,
	created_at DATETIME NOT NULL
);

CREATE INDEX IF NOT EXISTS idx_signals_symbol ON signals(symbol, as_of);
`
