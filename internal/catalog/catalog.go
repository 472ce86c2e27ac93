package catalog

import (
	"strings"
	"unicode"

	"golang.org/x/text/collate"
	"golang.org/x/text/language"
)

// Entry is one catalog line: an image name, its description, and the
// category (subdirectory) it belongs to.
type Entry struct {
	Name        string
	Description string
	Category    string
}

// Builder accumulates entries across a batch run. It is not safe for
// concurrent use; the pipeline feeds it sequentially.
type Builder struct {
	order    []string
	sections map[string][]Entry
	collator *collate.Collator
}

// NewBuilder returns an empty catalog builder.
func NewBuilder() *Builder {
	return &Builder{
		sections: make(map[string][]Entry),
		collator: collate.New(language.English),
	}
}

// Add records an entry under its category. The first entry seen for a
// category fixes that category's position in the rendered document.
func (b *Builder) Add(entry Entry) {
	if _, ok := b.sections[entry.Category]; !ok {
		b.order = append(b.order, entry.Category)
	}
	b.sections[entry.Category] = append(b.sections[entry.Category], entry)
}

// Len reports the total number of entries recorded so far.
func (b *Builder) Len() int {
	total := 0
	for _, entries := range b.sections {
		total += len(entries)
	}
	return total
}

// Render produces the Markdown catalog. Each category becomes a heading with
// its entries sorted alphabetically by name.
func (b *Builder) Render() string {
	var out strings.Builder
	for _, category := range b.order {
		entries := append([]Entry(nil), b.sections[category]...)
		b.collator.Sort(byName(entries))

		out.WriteString("## ")
		out.WriteString(capitalize(category))
		out.WriteString("\n\n")
		for _, entry := range entries {
			out.WriteString("- **")
			out.WriteString(entry.Name)
			out.WriteString("**: ")
			out.WriteString(entry.Description)
			out.WriteString("\n")
		}
		out.WriteString("\n")
	}
	return out.String()
}

type byName []Entry

func (s byName) Len() int           { return len(s) }
func (s byName) Swap(i, j int)      { s[i], s[j] = s[j], s[i] }
func (s byName) Bytes(i int) []byte { return []byte(s[i].Name) }

func capitalize(s string) string {
	for i, r := range s {
		return string(unicode.ToUpper(r)) + s[i+len(string(r)):]
	}
	return s
}
