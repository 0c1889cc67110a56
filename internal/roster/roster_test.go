package roster

import (
	"os"
	"path/filepath"
	"testing"
)

func writeRoster(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "roster.yaml")
	if err := os.WriteFile(path, []byte(content), 0644); err != nil {
		t.Fatalf("Failed to write test roster: %v", err)
	}
	return path
}

func TestLoad(t *testing.T) {
	path := writeRoster(t, `
people:
  - id: "1"
    full_name: Sarah Chen
    given_name: Sarah
    family_name: Chen
    email: sarah@acme.io
    role: Designer
    title: Senior Designer
    department: Design
    is_manager: true
    reports: ["2"]
  - id: "2"
    full_name: David Kim
    email: david@acme.io
    role: Engineer
    department: Engineering
    manager_id: "1"
companies:
  - name: Acme
    domain: acme.io
`)

	f, err := Load(path)
	if err != nil {
		t.Fatalf("Load() error: %v", err)
	}

	if len(f.People) != 2 {
		t.Fatalf("Expected 2 people, got %d", len(f.People))
	}

	sarah := f.People[0]
	if sarah.ID != "1" || sarah.FullName != "Sarah Chen" || !sarah.IsManager {
		t.Errorf("Unexpected first person: %+v", sarah)
	}
	if len(sarah.ReportIDs) != 1 || sarah.ReportIDs[0] != "2" {
		t.Errorf("Expected reports ['2'], got %v", sarah.ReportIDs)
	}

	if f.People[1].ManagerID != "1" {
		t.Errorf("Expected manager_id '1', got %q", f.People[1].ManagerID)
	}

	if len(f.Companies) != 1 || f.Companies[0].Name != "Acme" {
		t.Errorf("Unexpected companies: %v", f.Companies)
	}
}

func TestLoadRejectsDuplicateIDs(t *testing.T) {
	path := writeRoster(t, `
people:
  - id: "1"
    full_name: Sarah Chen
  - id: "1"
    full_name: David Kim
`)

	if _, err := Load(path); err == nil {
		t.Error("Expected error for duplicate ids")
	}
}

func TestLoadRejectsMissingID(t *testing.T) {
	path := writeRoster(t, `
people:
  - full_name: Sarah Chen
`)

	if _, err := Load(path); err == nil {
		t.Error("Expected error for missing id")
	}
}

func TestLoadMissingFile(t *testing.T) {
	if _, err := Load(filepath.Join(t.TempDir(), "nope.yaml")); err == nil {
		t.Error("Expected error for missing file")
	}
}

func TestLoadToleratesDanglingReferences(t *testing.T) {
	path := writeRoster(t, `
people:
  - id: "1"
    full_name: Sarah Chen
    manager_id: "ghost"
    reports: ["missing"]
`)

	if _, err := Load(path); err != nil {
		t.Errorf("Dangling references must be tolerated, got %v", err)
	}
}

func TestDepartmentsAndRolesOrder(t *testing.T) {
	people := []Person{
		{ID: "1", Department: "Design", Role: "Designer"},
		{ID: "2", Department: "Engineering", Role: "Engineer"},
		{ID: "3", Department: "Design", Role: "Designer"},
		{ID: "4"},
		{ID: "5", Department: "Sales", Role: "AE"},
	}

	depts := Departments(people)
	want := []string{"Design", "Engineering", "Sales"}
	if len(depts) != len(want) {
		t.Fatalf("Expected %v, got %v", want, depts)
	}
	for i := range want {
		if depts[i] != want[i] {
			t.Errorf("Departments[%d] = %q, want %q", i, depts[i], want[i])
		}
	}

	roles := Roles(people)
	if len(roles) != 3 || roles[0] != "Designer" || roles[1] != "Engineer" || roles[2] != "AE" {
		t.Errorf("Unexpected roles: %v", roles)
	}
}

func TestByID(t *testing.T) {
	people := []Person{{ID: "1", FullName: "A"}, {ID: "2", FullName: "B"}}
	m := ByID(people)
	if m["1"].FullName != "A" || m["2"].FullName != "B" {
		t.Errorf("Unexpected map: %v", m)
	}
	if _, ok := m["3"]; ok {
		t.Error("Expected missing id to be absent")
	}
}
