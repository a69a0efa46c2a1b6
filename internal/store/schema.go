package store

const schemaSQL = `
CREATE TABLE IF NOT EXISTS transactions (
    tx_id        TEXT NOT NULL,
    file_path    TEXT NOT NULL,
    bank         TEXT NOT NULL,
    booking_date TEXT,
    description  TEXT,
    amount       TEXT NOT NULL,
    balance      TEXT,
    currency     TEXT,
    status       TEXT NOT NULL,
    category     TEXT,
    PRIMARY KEY (tx_id, file_path)
);

CREATE TABLE IF NOT EXISTS file_tracker (
    file_path    TEXT PRIMARY KEY,
    bank         TEXT NOT NULL,
    mtime_ns     INTEGER NOT NULL,
    size_bytes   INTEGER NOT NULL,
    parsed_at    TEXT NOT NULL
);

CREATE INDEX IF NOT EXISTS idx_tx_date ON transactions(booking_date);
CREATE INDEX IF NOT EXISTS idx_tx_category ON transactions(category);
`
