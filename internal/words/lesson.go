// Package words loads spelling lessons and deals words from them.
//
// Lessons are YAML files with an id, a title and a word list. A set of
// lessons is embedded in the binary; a directory on disk can add more or
// replace embedded lessons with the same id.
package words

import (
	"embed"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"gopkg.in/yaml.v3"
)

//go:embed lessons/*.yaml
var embeddedLessons embed.FS

// Lesson is a named list of words.
type Lesson struct {
	ID    string   `yaml:"id"`
	Title string   `yaml:"title"`
	Words []string `yaml:"words"`
}

// Library holds lessons by id.
type Library struct {
	lessons map[string]Lesson
}

// Load reads the embedded lessons, then any *.yaml lessons in dir.
// An empty dir loads only the embedded set.
func Load(dir string) (*Library, error) {
	lib := &Library{lessons: make(map[string]Lesson)}

	if err := lib.addFS(embeddedLessons, "lessons"); err != nil {
		return nil, err
	}
	if dir == "" {
		return lib, nil
	}
	if _, err := os.Stat(dir); err != nil {
		return nil, fmt.Errorf("words: cannot open lesson dir %s: %w", dir, err)
	}
	if err := lib.addFS(os.DirFS(dir), "."); err != nil {
		return nil, err
	}
	return lib, nil
}

func (l *Library) addFS(fsys fs.FS, root string) error {
	paths, err := fs.Glob(fsys, filepath.ToSlash(filepath.Join(root, "*.yaml")))
	if err != nil {
		return fmt.Errorf("words: cannot list lessons: %w", err)
	}
	for _, p := range paths {
		data, err := fs.ReadFile(fsys, p)
		if err != nil {
			return fmt.Errorf("words: cannot read %s: %w", p, err)
		}
		lesson, err := ParseLesson(data)
		if err != nil {
			return fmt.Errorf("words: %s: %w", p, err)
		}
		l.lessons[lesson.ID] = lesson
	}
	return nil
}

// ParseLesson decodes and normalizes one lesson file.
func ParseLesson(data []byte) (Lesson, error) {
	var lesson Lesson
	if err := yaml.Unmarshal(data, &lesson); err != nil {
		return Lesson{}, err
	}
	lesson.ID = strings.TrimSpace(lesson.ID)
	if lesson.ID == "" {
		return Lesson{}, errors.New("lesson has no id")
	}
	if lesson.Title == "" {
		lesson.Title = lesson.ID
	}

	words, err := Normalize(lesson.Words)
	if err != nil {
		return Lesson{}, fmt.Errorf("lesson %s: %w", lesson.ID, err)
	}
	if len(words) == 0 {
		return Lesson{}, fmt.Errorf("lesson %s has no words", lesson.ID)
	}
	lesson.Words = words
	return lesson, nil
}

// Normalize trims and lowercases entries, drops blanks and '#' comments,
// and rejects anything that is not plain a-z.
func Normalize(entries []string) ([]string, error) {
	out := make([]string, 0, len(entries))
	for _, e := range entries {
		w := strings.ToLower(strings.TrimSpace(e))
		if w == "" || strings.HasPrefix(w, "#") {
			continue
		}
		if !isWord(w) {
			return nil, fmt.Errorf("invalid word %q", e)
		}
		out = append(out, w)
	}
	return out, nil
}

func isWord(s string) bool {
	for _, r := range s {
		if r < 'a' || r > 'z' {
			return false
		}
	}
	return true
}

// Get returns the lesson with the given id.
func (l *Library) Get(id string) (Lesson, bool) {
	lesson, ok := l.lessons[id]
	return lesson, ok
}

// List returns all lessons sorted by id.
func (l *Library) List() []Lesson {
	out := make([]Lesson, 0, len(l.lessons))
	for _, lesson := range l.lessons {
		out = append(out, lesson)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].ID < out[j].ID })
	return out
}

// All returns every word of every lesson, without duplicates, sorted.
func (l *Library) All() []string {
	seen := make(map[string]struct{})
	var out []string
	for _, lesson := range l.lessons {
		for _, w := range lesson.Words {
			if _, ok := seen[w]; ok {
				continue
			}
			seen[w] = struct{}{}
			out = append(out, w)
		}
	}
	sort.Strings(out)
	return out
}
