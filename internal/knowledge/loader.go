package knowledge

import (
	"encoding/json"
	"fmt"
	"io"
	"os"
)

// Load reads the knowledge base document from disk.
// The caller is expected to fall back to NewBase(nil, nil) on error so a
// missing or malformed dataset degrades to backend-only behavior instead of
// crashing the process.
func Load(path string) (*Base, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("failed to open knowledge base: %w", err)
	}
	defer f.Close()

	base, err := Parse(f)
	if err != nil {
		return nil, fmt.Errorf("failed to parse knowledge base %s: %w", path, err)
	}
	return base, nil
}

// Parse decodes a document with two top-level objects, "skills" and
// "categories". encoding/json maps do not preserve key order, and category
// iteration order must follow the document, so both objects are walked
// token-by-token.
func Parse(r io.Reader) (*Base, error) {
	dec := json.NewDecoder(r)

	if err := expectDelim(dec, '{'); err != nil {
		return nil, err
	}

	var skills []SkillEntry
	var categories []Category

	for dec.More() {
		key, err := stringToken(dec)
		if err != nil {
			return nil, err
		}

		switch key {
		case "skills":
			if skills, err = parseSkills(dec); err != nil {
				return nil, err
			}
		case "categories":
			if categories, err = parseCategories(dec); err != nil {
				return nil, err
			}
		default:
			if err = skipValue(dec); err != nil {
				return nil, err
			}
		}
	}

	if err := expectDelim(dec, '}'); err != nil {
		return nil, err
	}

	return NewBase(skills, categories), nil
}

func parseSkills(dec *json.Decoder) ([]SkillEntry, error) {
	if err := expectDelim(dec, '{'); err != nil {
		return nil, err
	}

	var entries []SkillEntry
	for dec.More() {
		name, err := stringToken(dec)
		if err != nil {
			return nil, err
		}

		var rec SkillRecord
		if err := dec.Decode(&rec); err != nil {
			return nil, fmt.Errorf("skill %q: %w", name, err)
		}
		entries = append(entries, SkillEntry{Name: name, Record: rec})
	}

	return entries, expectDelim(dec, '}')
}

func parseCategories(dec *json.Decoder) ([]Category, error) {
	if err := expectDelim(dec, '{'); err != nil {
		return nil, err
	}

	var categories []Category
	for dec.More() {
		name, err := stringToken(dec)
		if err != nil {
			return nil, err
		}

		var skills []string
		if err := dec.Decode(&skills); err != nil {
			return nil, fmt.Errorf("category %q: %w", name, err)
		}
		categories = append(categories, Category{Name: name, Skills: skills})
	}

	return categories, expectDelim(dec, '}')
}

// skipValue consumes one complete JSON value from the decoder.
func skipValue(dec *json.Decoder) error {
	var discard json.RawMessage
	return dec.Decode(&discard)
}

func expectDelim(dec *json.Decoder, want json.Delim) error {
	tok, err := dec.Token()
	if err != nil {
		return err
	}
	if d, ok := tok.(json.Delim); !ok || d != want {
		return fmt.Errorf("expected %q, got %v", want, tok)
	}
	return nil
}

func stringToken(dec *json.Decoder) (string, error) {
	tok, err := dec.Token()
	if err != nil {
		return "", err
	}
	s, ok := tok.(string)
	if !ok {
		return "", fmt.Errorf("expected object key, got %v", tok)
	}
	return s, nil
}
