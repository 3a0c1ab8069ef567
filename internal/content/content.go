// Package content holds the portfolio copy: owner details, navigation,
// about text, skills, projects and contact links. A default set is embedded
// and may be replaced by a YAML file at startup.
package content

import (
	_ "embed"
	"errors"
	"fmt"
	"os"
	"strings"

	"gopkg.in/yaml.v3"
)

//go:embed default.yaml
var defaultYAML []byte

// Project status values.
const (
	StatusActive    = "active"
	StatusCompleted = "completed"
)

// Content is the full set of copy rendered by the page.
type Content struct {
	Owner    Owner           `yaml:"owner"`
	Nav      []NavItem       `yaml:"nav"`
	About    About           `yaml:"about"`
	Skills   []SkillCategory `yaml:"skills"`
	Projects []Project       `yaml:"projects"`
	Contact  Contact         `yaml:"contact"`
}

// Owner describes the person the site belongs to.
type Owner struct {
	Name         string `yaml:"name"`
	Initials     string `yaml:"initials"`
	Greeting     string `yaml:"greeting"`
	Tagline      string `yaml:"tagline"`
	Description  string `yaml:"description"`
	Email        string `yaml:"email"`
	Availability string `yaml:"availability"`
}

// NavItem links a header entry to a section id.
type NavItem struct {
	ID    string `yaml:"id"`
	Label string `yaml:"label"`
}

type About struct {
	Title       string   `yaml:"title"`
	SkillsTitle string   `yaml:"skills_title"`
	Paragraphs  []string `yaml:"paragraphs"`
}

type SkillCategory struct {
	Label  string   `yaml:"label"`
	Skills []string `yaml:"skills"`
}

// Project is one entry on the projects grid.
type Project struct {
	ID          string   `yaml:"id"`
	Title       string   `yaml:"title"`
	Description string   `yaml:"description"`
	Problem     string   `yaml:"problem"`
	Tech        []string `yaml:"tech"`
	GitHub      string   `yaml:"github,omitempty"`
	Live        string   `yaml:"live,omitempty"`
	Status      string   `yaml:"status"`
	Featured    bool     `yaml:"featured,omitempty"`
}

// StatusLabel returns the badge text for the project's status.
func (p Project) StatusLabel() string {
	if p.Status == StatusActive {
		return "In Development"
	}
	return "Completed"
}

type Contact struct {
	Title   string   `yaml:"title"`
	Text    string   `yaml:"text"`
	Socials []Social `yaml:"socials"`
	Footer  string   `yaml:"footer"`
}

// Social is an external profile link.
type Social struct {
	Name  string `yaml:"name"`
	URL   string `yaml:"url"`
	Label string `yaml:"label"`
}

// Default returns the embedded content.
func Default() (*Content, error) {
	return Parse(defaultYAML)
}

// Load reads content from path. An empty path yields the embedded default.
func Load(path string) (*Content, error) {
	if path == "" {
		return Default()
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read content: %w", err)
	}
	return Parse(data)
}

// Parse decodes and validates YAML content.
func Parse(data []byte) (*Content, error) {
	var c Content
	if err := yaml.Unmarshal(data, &c); err != nil {
		return nil, fmt.Errorf("parse content: %w", err)
	}
	if err := c.Validate(); err != nil {
		return nil, err
	}
	return &c, nil
}

// Validate checks required fields and id uniqueness.
func (c *Content) Validate() error {
	var errs []error
	if strings.TrimSpace(c.Owner.Name) == "" {
		errs = append(errs, errors.New("owner.name is required"))
	}
	navIDs := map[string]bool{}
	for i, item := range c.Nav {
		switch {
		case item.ID == "":
			errs = append(errs, fmt.Errorf("nav[%d]: id is required", i))
		case navIDs[item.ID]:
			errs = append(errs, fmt.Errorf("nav[%d]: duplicate id %q", i, item.ID))
		}
		navIDs[item.ID] = true
	}
	projectIDs := map[string]bool{}
	featured := 0
	for i, p := range c.Projects {
		switch {
		case p.ID == "":
			errs = append(errs, fmt.Errorf("projects[%d]: id is required", i))
		case projectIDs[p.ID]:
			errs = append(errs, fmt.Errorf("projects[%d]: duplicate id %q", i, p.ID))
		}
		projectIDs[p.ID] = true
		if p.Title == "" {
			errs = append(errs, fmt.Errorf("projects[%d]: title is required", i))
		}
		if p.Status != StatusActive && p.Status != StatusCompleted {
			errs = append(errs, fmt.Errorf("projects[%d]: unknown status %q", i, p.Status))
		}
		if p.Featured {
			featured++
		}
	}
	if featured > 1 {
		errs = append(errs, fmt.Errorf("projects: %d featured, at most one allowed", featured))
	}
	for i, s := range c.Contact.Socials {
		if s.URL == "" {
			errs = append(errs, fmt.Errorf("contact.socials[%d]: url is required", i))
		}
	}
	if len(errs) > 0 {
		return fmt.Errorf("invalid content: %w", errors.Join(errs...))
	}
	return nil
}

// OrderedProjects returns the featured project first, then the rest in
// their original order.
func (c *Content) OrderedProjects() []Project {
	out := make([]Project, 0, len(c.Projects))
	for _, p := range c.Projects {
		if p.Featured {
			out = append(out, p)
		}
	}
	for _, p := range c.Projects {
		if !p.Featured {
			out = append(out, p)
		}
	}
	return out
}

// Links returns every external URL the page shows: the mail link, the
// social profiles, and project repositories and demos.
func (c *Content) Links() []string {
	var out []string
	if c.Owner.Email != "" {
		out = append(out, "mailto:"+c.Owner.Email)
	}
	for _, s := range c.Contact.Socials {
		out = append(out, s.URL)
	}
	for _, p := range c.Projects {
		if p.GitHub != "" {
			out = append(out, p.GitHub)
		}
		if p.Live != "" {
			out = append(out, p.Live)
		}
	}
	return out
}
