package storage

import (
	"bytes"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/google/uuid"
	"gopkg.in/yaml.v3"

	"github.com/leoxiewl/want-to-be/internal/dataset"
	"github.com/leoxiewl/want-to-be/internal/models"
)

// ErrUnsupportedSource is returned for content paths with an unknown extension.
var ErrUnsupportedSource = errors.New("unsupported content source")

// milestoneNamespace scopes generated milestone ids.
var milestoneNamespace = uuid.NewSHA1(uuid.NameSpaceURL, []byte("https://github.com/leoxiewl/want-to-be/milestones"))

// Document is the YAML content file layout.
type Document struct {
	People []models.Person `yaml:"people"`
}

// Load reads the dataset named by path and validates it against refYear. An
// empty path selects the built-in seed content.
func Load(path string, refYear int) ([]models.Person, error) {
	var (
		people []models.Person
		err    error
	)
	switch ext := extension(path); {
	case path == "":
		people = dataset.Seed()
	case ext == ".yaml" || ext == ".yml":
		people, err = LoadYAML(path)
	case ext == ".db" || ext == ".sqlite" || ext == ".sqlite3":
		people, err = ReadCatalog(path)
	default:
		return nil, fmt.Errorf("load %s: %w", path, ErrUnsupportedSource)
	}
	if err != nil {
		return nil, err
	}

	AssignMilestoneIDs(people)
	if err := dataset.Validate(people, refYear); err != nil {
		return nil, fmt.Errorf("load %s: %w", sourceName(path), err)
	}
	return people, nil
}

// Export writes people to path as a YAML document (.yaml, .yml) or a SQLite
// catalog (.db, .sqlite, .sqlite3).
func Export(path string, people []models.Person) error {
	switch extension(path) {
	case ".yaml", ".yml":
		return WriteYAML(path, people)
	case ".db", ".sqlite", ".sqlite3":
		return WriteCatalog(path, people)
	default:
		return fmt.Errorf("export %s: %w", path, ErrUnsupportedSource)
	}
}

func extension(path string) string {
	return strings.ToLower(filepath.Ext(path))
}

func sourceName(path string) string {
	if path == "" {
		return "built-in dataset"
	}
	return path
}

// LoadYAML decodes a YAML content document. Unknown fields are rejected.
func LoadYAML(path string) ([]models.Person, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read content file: %w", err)
	}
	dec := yaml.NewDecoder(bytes.NewReader(data))
	dec.KnownFields(true)

	var doc Document
	if err := dec.Decode(&doc); err != nil {
		return nil, fmt.Errorf("decode content file %s: %w", path, err)
	}
	return doc.People, nil
}

// WriteYAML encodes people as a YAML content document.
func WriteYAML(path string, people []models.Person) error {
	var buf bytes.Buffer
	enc := yaml.NewEncoder(&buf)
	enc.SetIndent(2)
	if err := enc.Encode(Document{People: people}); err != nil {
		return fmt.Errorf("encode content: %w", err)
	}
	if err := enc.Close(); err != nil {
		return fmt.Errorf("encode content: %w", err)
	}
	if err := os.WriteFile(path, buf.Bytes(), 0o644); err != nil {
		return fmt.Errorf("write content file: %w", err)
	}
	return nil
}

// AssignMilestoneIDs gives every milestone without an id a stable one derived
// from the owning person id, the year and the title.
func AssignMilestoneIDs(people []models.Person) {
	for i := range people {
		p := &people[i]
		for j := range p.Milestones {
			m := &p.Milestones[j]
			if m.ID != "" {
				continue
			}
			name := p.ID + "/" + strconv.Itoa(m.Year) + "/" + m.Title
			m.ID = uuid.NewSHA1(milestoneNamespace, []byte(name)).String()
		}
	}
}
