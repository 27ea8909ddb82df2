package library

const schemaSQL = `
CREATE TABLE IF NOT EXISTS watched (
    entry_id   TEXT PRIMARY KEY,
    review     TEXT NOT NULL,
    emotion    TEXT NOT NULL,
    sentiment  TEXT NOT NULL,
    created_at TEXT NOT NULL
);

CREATE TABLE IF NOT EXISTS watch_later (
    entry_id   TEXT PRIMARY KEY,
    created_at TEXT NOT NULL
);
`
