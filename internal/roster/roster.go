// Package roster defines the team data model and loads roster files.
package roster

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// Person is one selectable team member. Relationship fields (ReportIDs,
// ManagerID) are advisory cross-references: an id that does not resolve
// within the same roster is ignored by everything that consumes it.
type Person struct {
	ID         string   `yaml:"id"`
	FullName   string   `yaml:"full_name"`
	GivenName  string   `yaml:"given_name"`
	FamilyName string   `yaml:"family_name"`
	Email      string   `yaml:"email"`
	Avatar     string   `yaml:"avatar"`
	Role       string   `yaml:"role"`
	Title      string   `yaml:"title"`
	Department string   `yaml:"department"`
	IsManager  bool     `yaml:"is_manager"`
	ReportIDs  []string `yaml:"reports"`
	ManagerID  string   `yaml:"manager_id"`
}

// Company is an entry for the company combobox widget.
type Company struct {
	Name   string `yaml:"name"`
	Domain string `yaml:"domain"`
}

// File is the on-disk roster document.
type File struct {
	People    []Person  `yaml:"people"`
	Companies []Company `yaml:"companies"`
}

// Load reads a roster file from path.
func Load(path string) (*File, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	var f File
	if err := yaml.Unmarshal(data, &f); err != nil {
		return nil, fmt.Errorf("parsing roster %s: %w", path, err)
	}
	if err := f.validate(); err != nil {
		return nil, fmt.Errorf("roster %s: %w", path, err)
	}
	return &f, nil
}

// validate enforces the one hard invariant: id uniqueness. Dangling
// manager/report references are legal and left alone.
func (f *File) validate() error {
	seen := make(map[string]bool, len(f.People))
	for _, p := range f.People {
		if p.ID == "" {
			return fmt.Errorf("person %q has no id", p.FullName)
		}
		if seen[p.ID] {
			return fmt.Errorf("duplicate person id %q", p.ID)
		}
		seen[p.ID] = true
	}
	return nil
}

// ByID builds an id lookup for one roster snapshot.
func ByID(people []Person) map[string]Person {
	m := make(map[string]Person, len(people))
	for _, p := range people {
		m[p.ID] = p
	}
	return m
}

// Departments returns the distinct non-empty departments in first-seen order.
func Departments(people []Person) []string {
	return distinct(people, func(p Person) string { return p.Department })
}

// Roles returns the distinct non-empty roles in first-seen order.
func Roles(people []Person) []string {
	return distinct(people, func(p Person) string { return p.Role })
}

func distinct(people []Person, field func(Person) string) []string {
	seen := make(map[string]bool)
	var out []string
	for _, p := range people {
		v := field(p)
		if v == "" || seen[v] {
			continue
		}
		seen[v] = true
		out = append(out, v)
	}
	return out
}
