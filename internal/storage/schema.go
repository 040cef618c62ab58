package storage

// CatalogSchema is the SQL schema for a content catalog database. Every
// ordered collection carries a position column so reads reproduce the
// authored order.
const CatalogSchema = `
CREATE TABLE IF NOT EXISTS people (
    id             TEXT PRIMARY KEY,
    position       INTEGER NOT NULL UNIQUE,
    name           TEXT NOT NULL,
    localized_name TEXT NOT NULL DEFAULT '',
    title          TEXT NOT NULL DEFAULT '',
    description    TEXT NOT NULL DEFAULT '',
    birth_date     TEXT NOT NULL,
    death_date     TEXT NULL,
    avatar         TEXT NOT NULL DEFAULT '',
    cover_image    TEXT NOT NULL DEFAULT '',
    quote          TEXT NOT NULL DEFAULT ''
);

CREATE TABLE IF NOT EXISTS person_tags (
    person_id TEXT NOT NULL REFERENCES people(id) ON DELETE CASCADE,
    position  INTEGER NOT NULL,
    tag       TEXT NOT NULL,
    PRIMARY KEY (person_id, position)
);

CREATE TABLE IF NOT EXISTS person_achievements (
    person_id TEXT NOT NULL REFERENCES people(id) ON DELETE CASCADE,
    position  INTEGER NOT NULL,
    content   TEXT NOT NULL,
    PRIMARY KEY (person_id, position)
);

CREATE TABLE IF NOT EXISTS milestones (
    person_id   TEXT NOT NULL REFERENCES people(id) ON DELETE CASCADE,
    id          TEXT NOT NULL,
    position    INTEGER NOT NULL,
    year        INTEGER NOT NULL,
    age         INTEGER NOT NULL,
    title       TEXT NOT NULL,
    description TEXT NOT NULL DEFAULT '',
    category    TEXT NOT NULL
                CHECK(category IN ('birth', 'education', 'career', 'innovation', 'leadership',
                                   'setback', 'breakthrough', 'legacy', 'personal')),
    importance  TEXT NOT NULL
                CHECK(importance IN ('low', 'medium', 'high', 'critical')),
    image       TEXT NOT NULL DEFAULT '',
    PRIMARY KEY (person_id, id)
);

CREATE TABLE IF NOT EXISTS milestone_notes (
    person_id    TEXT NOT NULL,
    milestone_id TEXT NOT NULL,
    kind         TEXT NOT NULL CHECK(kind IN ('achievement', 'challenge', 'insight')),
    position     INTEGER NOT NULL,
    content      TEXT NOT NULL,
    PRIMARY KEY (person_id, milestone_id, kind, position),
    FOREIGN KEY (person_id, milestone_id) REFERENCES milestones(person_id, id) ON DELETE CASCADE
);

CREATE INDEX IF NOT EXISTS idx_milestones_order ON milestones(person_id, position);
`

// Note kinds stored in milestone_notes.
const (
	noteAchievement = "achievement"
	noteChallenge   = "challenge"
	noteInsight     = "insight"
)
