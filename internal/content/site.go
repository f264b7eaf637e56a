package content

import (
	"bytes"
	_ "embed"
	"errors"
	"fmt"
	"net/url"
	"os"
	"strings"

	"github.com/pelletier/go-toml/v2"
)

//go:embed site.toml
var defaultSite []byte

// ErrInvalidField marks content that decoded but fails validation.
var ErrInvalidField = errors.New("invalid field")

// SectionID names one page section.
type SectionID string

const (
	Home     SectionID = "home"
	About    SectionID = "about"
	Skills   SectionID = "skills"
	Projects SectionID = "projects"
	Contact  SectionID = "contact"
)

// DefaultSections is the page order.
var DefaultSections = []SectionID{Home, About, Skills, Projects, Contact}

// Project is one portfolio entry.
type Project struct {
	Title        string   `toml:"title"`
	Category     string   `toml:"category"`
	Image        string   `toml:"image"`
	Description  string   `toml:"description"`
	Link         string   `toml:"link"`
	RepoURL      string   `toml:"repo_url,omitempty"`
	Technologies []string `toml:"technologies,omitempty"`
	Featured     bool     `toml:"featured,omitempty"`
}

// NavItem is a navigation entry pointing at a section.
type NavItem struct {
	Name    string    `toml:"name"`
	Section SectionID `toml:"section"`
}

// Link is a named external link.
type Link struct {
	Name string `toml:"name"`
	URL  string `toml:"url"`
}

// ContactInfo is shown beside the contact form.
type ContactInfo struct {
	Email       string `toml:"email"`
	Phone       string `toml:"phone"`
	Location    string `toml:"location"`
	LocationURL string `toml:"location_url"`
}

// Site is everything the page displays.
type Site struct {
	Owner    string      `toml:"owner"`
	Initials string      `toml:"initials"`
	Role     string      `toml:"role"`
	Tagline  string      `toml:"tagline"`
	VideoURL string      `toml:"video_url"`
	Sections []SectionID `toml:"sections"`
	Nav      []NavItem   `toml:"nav"`
	Contact  ContactInfo `toml:"contact"`
	Socials  []Link      `toml:"socials"`
	Projects []Project   `toml:"projects"`
}

// Default decodes the embedded site content.
func Default() (*Site, error) {
	return Decode(defaultSite)
}

// Load reads and decodes a content file. An empty path loads the default.
func Load(path string) (*Site, error) {
	if path == "" {
		return Default()
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read content %s: %w", path, err)
	}
	site, err := Decode(data)
	if err != nil {
		return nil, fmt.Errorf("content %s: %w", path, err)
	}
	return site, nil
}

// Decode parses TOML content and validates it.
func Decode(data []byte) (*Site, error) {
	var site Site
	dec := toml.NewDecoder(bytes.NewReader(data))
	dec.DisallowUnknownFields()
	if err := dec.Decode(&site); err != nil {
		return nil, fmt.Errorf("decode content: %w", err)
	}
	if len(site.Sections) == 0 {
		site.Sections = append([]SectionID(nil), DefaultSections...)
	}
	if err := site.Validate(); err != nil {
		return nil, err
	}
	return &site, nil
}

// Validate checks required fields and that every link parses.
func (s *Site) Validate() error {
	if strings.TrimSpace(s.Owner) == "" {
		return fmt.Errorf("%w: owner is empty", ErrInvalidField)
	}
	known := make(map[SectionID]bool, len(s.Sections))
	for _, id := range s.Sections {
		if known[id] {
			return fmt.Errorf("%w: section %q listed twice", ErrInvalidField, id)
		}
		known[id] = true
	}
	for _, n := range s.Nav {
		if !known[n.Section] {
			return fmt.Errorf("%w: nav %q points at unknown section %q", ErrInvalidField, n.Name, n.Section)
		}
	}
	if s.VideoURL != "" {
		u, err := url.Parse(s.VideoURL)
		if err != nil || !u.IsAbs() {
			return fmt.Errorf("%w: video_url %q is not an absolute URL", ErrInvalidField, s.VideoURL)
		}
	}
	for i, p := range s.Projects {
		if strings.TrimSpace(p.Title) == "" {
			return fmt.Errorf("%w: project %d has no title", ErrInvalidField, i)
		}
		for _, ref := range []string{p.Link, p.RepoURL} {
			if _, err := url.Parse(ref); err != nil {
				return fmt.Errorf("%w: project %q link %q: %v", ErrInvalidField, p.Title, ref, err)
			}
		}
	}
	for _, l := range s.Socials {
		if _, err := url.Parse(l.URL); err != nil {
			return fmt.Errorf("%w: social %q: %v", ErrInvalidField, l.Name, err)
		}
	}
	return nil
}

// HasSection reports whether id is part of the page.
func (s *Site) HasSection(id SectionID) bool {
	for _, sec := range s.Sections {
		if sec == id {
			return true
		}
	}
	return false
}
