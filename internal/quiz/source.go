package quiz

import (
	"embed"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"
)

//go:embed decks/*.json
var builtinDecks embed.FS

// Source supplies the quiz decks available to a learner.
type Source interface {
	// Decks returns all loadable decks, sorted by title.
	Decks() ([]*Quiz, error)
}

// Parse validates raw deck JSON against the schema and decodes it.
func Parse(raw []byte) (*Quiz, error) {
	if err := validateDeck(raw); err != nil {
		return nil, err
	}
	var q Quiz
	if err := json.Unmarshal(raw, &q); err != nil {
		return nil, fmt.Errorf("decode deck: %w", err)
	}
	if err := q.Validate(); err != nil {
		return nil, err
	}
	return &q, nil
}

// LoadFile reads and parses one deck file.
func LoadFile(path string) (*Quiz, error) {
	raw, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read deck file: %w", err)
	}
	q, err := Parse(raw)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", filepath.Base(path), err)
	}
	return q, nil
}

// DirSource loads decks from *.json files in a directory, falling back to
// the embedded builtin decks when the directory is empty or missing.
type DirSource struct {
	Dir string
}

// NewDirSource creates a DirSource for dir. An empty dir means builtin only.
func NewDirSource(dir string) *DirSource {
	return &DirSource{Dir: dir}
}

func (s *DirSource) Decks() ([]*Quiz, error) {
	decks, err := s.dirDecks()
	if err != nil {
		return nil, err
	}

	builtin, err := BuiltinDecks()
	if err != nil {
		return nil, err
	}

	// Directory decks shadow builtins with the same id.
	byID := make(map[string]bool, len(decks))
	for _, d := range decks {
		byID[d.ID] = true
	}
	for _, d := range builtin {
		if !byID[d.ID] {
			decks = append(decks, d)
		}
	}

	sort.Slice(decks, func(i, j int) bool { return decks[i].Title < decks[j].Title })
	return decks, nil
}

func (s *DirSource) dirDecks() ([]*Quiz, error) {
	if s.Dir == "" {
		return nil, nil
	}
	entries, err := os.ReadDir(s.Dir)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, nil
		}
		return nil, fmt.Errorf("read decks dir: %w", err)
	}

	var decks []*Quiz
	for _, entry := range entries {
		if entry.IsDir() || !strings.HasSuffix(entry.Name(), ".json") {
			continue
		}
		q, err := LoadFile(filepath.Join(s.Dir, entry.Name()))
		if err != nil {
			// A bad deck file shouldn't hide the rest of the library.
			continue
		}
		decks = append(decks, q)
	}
	return decks, nil
}

// BuiltinDecks parses the decks compiled into the binary.
func BuiltinDecks() ([]*Quiz, error) {
	entries, err := builtinDecks.ReadDir("decks")
	if err != nil {
		return nil, fmt.Errorf("read builtin decks: %w", err)
	}

	var decks []*Quiz
	for _, entry := range entries {
		raw, err := builtinDecks.ReadFile("decks/" + entry.Name())
		if err != nil {
			return nil, fmt.Errorf("read builtin deck %s: %w", entry.Name(), err)
		}
		q, err := Parse(raw)
		if err != nil {
			return nil, fmt.Errorf("builtin deck %s: %w", entry.Name(), err)
		}
		decks = append(decks, q)
	}
	return decks, nil
}

// DefaultDecksDir resolves the learner's deck library directory:
// $XDG_DATA_HOME/quizforge/decks or ~/.local/share/quizforge/decks.
func DefaultDecksDir() (string, error) {
	dataHome := os.Getenv("XDG_DATA_HOME")
	if dataHome == "" {
		home, err := os.UserHomeDir()
		if err != nil {
			return "", fmt.Errorf("resolve home dir: %w", err)
		}
		dataHome = filepath.Join(home, ".local", "share")
	}
	return filepath.Join(dataHome, "quizforge", "decks"), nil
}
