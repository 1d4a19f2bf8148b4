package knowledge

// SkillRecord is one entry in the knowledge base. Immutable after load.
type SkillRecord struct {
	Description string   `json:"description"`
	KeySkills   []string `json:"key_skills"`
	Tools       []string `json:"tools"`
	SalaryRange string   `json:"salary_range"`
	CareerPath  string   `json:"career_path"`
}

// Category maps a display name to an ordered list of skill names.
// The list is for display only and need not match knowledge-base keys.
type Category struct {
	Name   string
	Skills []string
}

// Base is the immutable skills/categories dataset shared by all sessions.
// It is read-only after load and safe for concurrent use.
type Base struct {
	skills     map[string]SkillRecord
	skillNames []string   // insertion order of the skills document
	categories []Category // insertion order of the categories document
}

// NewBase builds a Base from ordered skill entries and categories.
// Entries with empty names are dropped.
func NewBase(skills []SkillEntry, categories []Category) *Base {
	b := &Base{skills: make(map[string]SkillRecord, len(skills))}
	for _, e := range skills {
		if e.Name == "" {
			continue
		}
		if _, dup := b.skills[e.Name]; !dup {
			b.skillNames = append(b.skillNames, e.Name)
		}
		b.skills[e.Name] = e.Record
	}
	for _, c := range categories {
		if c.Name == "" {
			continue
		}
		b.categories = append(b.categories, c)
	}
	return b
}

// SkillEntry pairs a skill name with its record, preserving document order.
type SkillEntry struct {
	Name   string
	Record SkillRecord
}

// Skill returns the record for the given skill name.
func (b *Base) Skill(name string) (SkillRecord, bool) {
	rec, ok := b.skills[name]
	return rec, ok
}

// SkillNames returns skill names in document order.
func (b *Base) SkillNames() []string {
	return b.skillNames
}

// Categories returns categories in document order.
func (b *Base) Categories() []Category {
	return b.categories
}
