package storage

import (
	"database/sql"
	"errors"
	"fmt"
	"os"
	"path/filepath"

	_ "github.com/ncruces/go-sqlite3/driver"
	_ "github.com/ncruces/go-sqlite3/embed"

	"github.com/leoxiewl/want-to-be/internal/models"
)

// ErrCatalogExists is returned by WriteCatalog when the target file exists.
var ErrCatalogExists = errors.New("catalog file already exists")

// WriteCatalog creates a new content catalog at path holding people in order.
// The catalog is built in a temporary file next to path and moved into place
// only once complete, so a failed write leaves nothing behind.
func WriteCatalog(path string, people []models.Person) error {
	if _, err := os.Stat(path); err == nil {
		return fmt.Errorf("write catalog %s: %w", path, ErrCatalogExists)
	}

	tmp, err := os.CreateTemp(filepath.Dir(path), ".catalog-*.db")
	if err != nil {
		return fmt.Errorf("create catalog temp file: %w", err)
	}
	tmpPath := tmp.Name()
	if err := tmp.Close(); err != nil {
		removeCatalogFiles(tmpPath)
		return fmt.Errorf("create catalog temp file: %w", err)
	}

	if err := buildCatalog(tmpPath, people); err != nil {
		removeCatalogFiles(tmpPath)
		return err
	}
	if err := os.Rename(tmpPath, path); err != nil {
		removeCatalogFiles(tmpPath)
		return fmt.Errorf("install catalog %s: %w", path, err)
	}
	return nil
}

func buildCatalog(path string, people []models.Person) error {
	db, err := sql.Open("sqlite3", "file:"+path+"?_pragma=busy_timeout(5000)&_pragma=foreign_keys(ON)")
	if err != nil {
		return fmt.Errorf("open catalog db: %w", err)
	}
	defer db.Close()

	if _, err := db.Exec(CatalogSchema); err != nil {
		return fmt.Errorf("migrate catalog db: %w", err)
	}

	tx, err := db.Begin()
	if err != nil {
		return fmt.Errorf("begin tx: %w", err)
	}
	defer tx.Rollback()

	for i, p := range people {
		if err := insertPerson(tx, i, p); err != nil {
			return err
		}
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("commit: %w", err)
	}
	if err := db.Close(); err != nil {
		return fmt.Errorf("close catalog db: %w", err)
	}
	return nil
}

// removeCatalogFiles deletes a partial catalog and its rollback journal.
func removeCatalogFiles(path string) {
	_ = os.Remove(path)
	_ = os.Remove(path + "-journal")
}

func insertPerson(tx *sql.Tx, position int, p models.Person) error {
	var death any
	if p.DeathDate != nil {
		death = p.DeathDate.String()
	}
	_, err := tx.Exec(
		`INSERT INTO people (id, position, name, localized_name, title, description, birth_date, death_date, avatar, cover_image, quote)
		 VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)`,
		p.ID, position, p.Name, p.LocalizedName, p.Title, p.Description,
		p.BirthDate.String(), death, p.Avatar, p.CoverImage, p.Quote,
	)
	if err != nil {
		return fmt.Errorf("insert person %q: %w", p.ID, err)
	}

	for i, tag := range p.Tags {
		if _, err := tx.Exec(`INSERT INTO person_tags (person_id, position, tag) VALUES (?, ?, ?)`, p.ID, i, tag); err != nil {
			return fmt.Errorf("insert tag for %q: %w", p.ID, err)
		}
	}
	for i, a := range p.Achievements {
		if _, err := tx.Exec(`INSERT INTO person_achievements (person_id, position, content) VALUES (?, ?, ?)`, p.ID, i, a); err != nil {
			return fmt.Errorf("insert achievement for %q: %w", p.ID, err)
		}
	}

	for i, m := range p.Milestones {
		_, err := tx.Exec(
			`INSERT INTO milestones (person_id, id, position, year, age, title, description, category, importance, image)
			 VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?)`,
			p.ID, m.ID, i, m.Year, m.Age, m.Title, m.Description, string(m.Category), string(m.Importance), m.Image,
		)
		if err != nil {
			return fmt.Errorf("insert milestone %q of %q: %w", m.ID, p.ID, err)
		}
		notes := []struct {
			kind  string
			texts []string
		}{
			{noteAchievement, m.Achievements},
			{noteChallenge, m.Challenges},
			{noteInsight, m.Insights},
		}
		for _, n := range notes {
			for j, text := range n.texts {
				_, err := tx.Exec(
					`INSERT INTO milestone_notes (person_id, milestone_id, kind, position, content) VALUES (?, ?, ?, ?, ?)`,
					p.ID, m.ID, n.kind, j, text,
				)
				if err != nil {
					return fmt.Errorf("insert %s note for %q: %w", n.kind, m.ID, err)
				}
			}
		}
	}
	return nil
}

// ReadCatalog loads every person from the catalog at path in authored order.
func ReadCatalog(path string) ([]models.Person, error) {
	if _, err := os.Stat(path); err != nil {
		return nil, fmt.Errorf("stat catalog: %w", err)
	}
	db, err := sql.Open("sqlite3", "file:"+path+"?mode=ro&_pragma=busy_timeout(5000)")
	if err != nil {
		return nil, fmt.Errorf("open catalog db: %w", err)
	}
	defer db.Close()

	if err := db.Ping(); err != nil {
		return nil, fmt.Errorf("ping catalog db: %w", err)
	}

	rows, err := db.Query(
		`SELECT id, name, localized_name, title, description, birth_date, death_date, avatar, cover_image, quote
		 FROM people ORDER BY position`,
	)
	if err != nil {
		return nil, fmt.Errorf("query people: %w", err)
	}
	defer rows.Close()

	var people []models.Person
	for rows.Next() {
		var (
			p     models.Person
			birth string
			death sql.NullString
		)
		if err := rows.Scan(&p.ID, &p.Name, &p.LocalizedName, &p.Title, &p.Description, &birth, &death, &p.Avatar, &p.CoverImage, &p.Quote); err != nil {
			return nil, fmt.Errorf("scan person: %w", err)
		}
		if p.BirthDate, err = models.ParseDate(birth); err != nil {
			return nil, fmt.Errorf("person %q: %w", p.ID, err)
		}
		if death.Valid {
			d, err := models.ParseDate(death.String)
			if err != nil {
				return nil, fmt.Errorf("person %q: %w", p.ID, err)
			}
			p.DeathDate = &d
		}
		people = append(people, p)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}

	for i := range people {
		if err := loadPersonDetails(db, &people[i]); err != nil {
			return nil, err
		}
	}
	return people, nil
}

// loadPersonDetails fills tags, achievements and milestones for p.
func loadPersonDetails(db *sql.DB, p *models.Person) error {
	var err error
	if p.Tags, err = queryStrings(db, `SELECT tag FROM person_tags WHERE person_id = ? ORDER BY position`, p.ID); err != nil {
		return fmt.Errorf("query tags of %q: %w", p.ID, err)
	}
	if p.Achievements, err = queryStrings(db, `SELECT content FROM person_achievements WHERE person_id = ? ORDER BY position`, p.ID); err != nil {
		return fmt.Errorf("query achievements of %q: %w", p.ID, err)
	}

	rows, err := db.Query(
		`SELECT id, year, age, title, description, category, importance, image
		 FROM milestones WHERE person_id = ? ORDER BY position`,
		p.ID,
	)
	if err != nil {
		return fmt.Errorf("query milestones of %q: %w", p.ID, err)
	}
	defer rows.Close()

	for rows.Next() {
		var (
			m                    models.Milestone
			category, importance string
		)
		if err := rows.Scan(&m.ID, &m.Year, &m.Age, &m.Title, &m.Description, &category, &importance, &m.Image); err != nil {
			return fmt.Errorf("scan milestone: %w", err)
		}
		m.Category = models.Category(category)
		m.Importance = models.Importance(importance)
		p.Milestones = append(p.Milestones, m)
	}
	if err := rows.Err(); err != nil {
		return err
	}

	for i := range p.Milestones {
		m := &p.Milestones[i]
		const q = `SELECT content FROM milestone_notes WHERE person_id = ? AND milestone_id = ? AND kind = ? ORDER BY position`
		if m.Achievements, err = queryStrings(db, q, p.ID, m.ID, noteAchievement); err != nil {
			return fmt.Errorf("query notes of %q: %w", m.ID, err)
		}
		if m.Challenges, err = queryStrings(db, q, p.ID, m.ID, noteChallenge); err != nil {
			return fmt.Errorf("query notes of %q: %w", m.ID, err)
		}
		if m.Insights, err = queryStrings(db, q, p.ID, m.ID, noteInsight); err != nil {
			return fmt.Errorf("query notes of %q: %w", m.ID, err)
		}
	}
	return nil
}

// queryStrings returns the single text column of every row, or nil when
// there are none.
func queryStrings(db *sql.DB, query string, args ...any) ([]string, error) {
	rows, err := db.Query(query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var out []string
	for rows.Next() {
		var s string
		if err := rows.Scan(&s); err != nil {
			return nil, err
		}
		out = append(out, s)
	}
	return out, rows.Err()
}
