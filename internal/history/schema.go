package history

// Schema DDL for the verification-run record.
const (
	createRuns = `CREATE TABLE IF NOT EXISTS runs (
    run_id TEXT PRIMARY KEY,
    started_at TEXT NOT NULL,
    passed INTEGER NOT NULL,
    total INTEGER NOT NULL
);`

	createResults = `CREATE TABLE IF NOT EXISTS results (
    run_id TEXT NOT NULL,
    entry_name TEXT NOT NULL,
    tags TEXT NOT NULL,
    target TEXT NOT NULL,
    want_fail INTEGER NOT NULL,
    outcome TEXT NOT NULL,
    detail TEXT,
    PRIMARY KEY (run_id, entry_name),
    FOREIGN KEY (run_id) REFERENCES runs(run_id)
);`
)
