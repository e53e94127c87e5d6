package store

const schemaSQL = `
CREATE TABLE IF NOT EXISTS runs (
    id                   TEXT PRIMARY KEY,
    name                 TEXT NOT NULL,
    created_at           TEXT NOT NULL,
    input_json           TEXT NOT NULL,
    days_remaining       INTEGER NOT NULL,
    daily_budget         TEXT NOT NULL,
    retirement_assets    TEXT NOT NULL,
    final_assets         TEXT NOT NULL,
    final_balance        TEXT NOT NULL,
    points_json          TEXT NOT NULL
);

CREATE INDEX IF NOT EXISTS idx_runs_created ON runs(created_at);
`
