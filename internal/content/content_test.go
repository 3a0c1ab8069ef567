package content

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func TestDefault(t *testing.T) {
	c, err := Default()
	if err != nil {
		t.Fatalf("Default: %v", err)
	}
	if c.Owner.Name != "Tarun Varier" {
		t.Errorf("Owner.Name = %q", c.Owner.Name)
	}
	if len(c.Nav) != 3 {
		t.Errorf("len(Nav) = %d, want 3", len(c.Nav))
	}
	if len(c.Projects) != 5 {
		t.Errorf("len(Projects) = %d, want 5", len(c.Projects))
	}
	if len(c.Skills) != 5 {
		t.Errorf("len(Skills) = %d, want 5", len(c.Skills))
	}
	if len(c.Contact.Socials) != 3 {
		t.Errorf("len(Socials) = %d, want 3", len(c.Contact.Socials))
	}
}

func TestOrderedProjectsFeaturedFirst(t *testing.T) {
	c := &Content{Projects: []Project{
		{ID: "a"}, {ID: "b", Featured: true}, {ID: "c"},
	}}
	got := c.OrderedProjects()
	want := []string{"b", "a", "c"}
	for i, p := range got {
		if p.ID != want[i] {
			t.Fatalf("order = %v, want %v", got, want)
		}
	}
}

func TestStatusLabel(t *testing.T) {
	if got := (Project{Status: StatusActive}).StatusLabel(); got != "In Development" {
		t.Errorf("active label = %q", got)
	}
	if got := (Project{Status: StatusCompleted}).StatusLabel(); got != "Completed" {
		t.Errorf("completed label = %q", got)
	}
}

func TestLinks(t *testing.T) {
	c := &Content{
		Owner:    Owner{Email: "a@b.c"},
		Contact:  Contact{Socials: []Social{{URL: "https://x"}}},
		Projects: []Project{{GitHub: "https://g"}, {}},
	}
	got := strings.Join(c.Links(), " ")
	if got != "mailto:a@b.c https://x https://g" {
		t.Errorf("Links = %q", got)
	}
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name    string
		content Content
		wantErr string
	}{
		{"missing owner", Content{}, "owner.name"},
		{"duplicate nav", Content{
			Owner: Owner{Name: "x"},
			Nav:   []NavItem{{ID: "a"}, {ID: "a"}},
		}, "duplicate id"},
		{"bad status", Content{
			Owner:    Owner{Name: "x"},
			Projects: []Project{{ID: "p", Title: "P", Status: "paused"}},
		}, "unknown status"},
		{"two featured", Content{
			Owner: Owner{Name: "x"},
			Projects: []Project{
				{ID: "p", Title: "P", Status: StatusActive, Featured: true},
				{ID: "q", Title: "Q", Status: StatusActive, Featured: true},
			},
		}, "featured"},
		{"missing social url", Content{
			Owner:   Owner{Name: "x"},
			Contact: Contact{Socials: []Social{{Name: "GitHub"}}},
		}, "url is required"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.content.Validate()
			if err == nil || !strings.Contains(err.Error(), tt.wantErr) {
				t.Fatalf("Validate() = %v, want error containing %q", err, tt.wantErr)
			}
		})
	}
}

func TestLoad(t *testing.T) {
	t.Run("empty path", func(t *testing.T) {
		if _, err := Load(""); err != nil {
			t.Fatalf("Load: %v", err)
		}
	})
	t.Run("file", func(t *testing.T) {
		path := filepath.Join(t.TempDir(), "content.yaml")
		data := "owner: {name: Someone}\nnav: [{id: work, label: Work}]\n"
		if err := os.WriteFile(path, []byte(data), 0o644); err != nil {
			t.Fatal(err)
		}
		c, err := Load(path)
		if err != nil {
			t.Fatalf("Load: %v", err)
		}
		if c.Owner.Name != "Someone" || c.Nav[0].ID != "work" {
			t.Errorf("got %+v", c)
		}
	})
	t.Run("missing file", func(t *testing.T) {
		if _, err := Load(filepath.Join(t.TempDir(), "nope.yaml")); err == nil {
			t.Fatal("expected error")
		}
	})
	t.Run("bad yaml", func(t *testing.T) {
		if _, err := Parse([]byte("owner: [")); err == nil {
			t.Fatal("expected error")
		}
	})
}
