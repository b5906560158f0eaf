// Package content holds the copy shown on the site: hero slides, services,
// team, testimonials, client list and contact details.
package content

import (
	"bytes"
	_ "embed"
	"errors"
	"fmt"
	"os"
	"strings"

	"github.com/yuin/goldmark"
	"github.com/yuin/goldmark/extension"
	"gopkg.in/yaml.v3"

	"github.com/ppmconsultants/ppmsite/internal/rotator"
)

//go:embed site.yaml
var embedded []byte

// Site is the full set of site copy.
type Site struct {
	Company          Company         `yaml:"company"`
	Hero             []rotator.Slide `yaml:"hero"`
	FeaturedServices []Service       `yaml:"featured_services"`
	Services         []Service       `yaml:"services"`
	About            About           `yaml:"about"`
	Team             []TeamMember    `yaml:"team"`
	Testimonials     Testimonials    `yaml:"testimonials"`
	Clients          []Client        `yaml:"clients"`
	CaseStudies      []CaseStudy     `yaml:"case_studies"`
	Contact          ContactInfo     `yaml:"contact"`

	// StoryHTML is About.Story rendered from Markdown.
	StoryHTML string `yaml:"-"`
}

type Company struct {
	Name      string `yaml:"name"`
	LegalName string `yaml:"legal_name"`
	Tagline   string `yaml:"tagline"`
	Founded   int    `yaml:"founded"`
}

// Service is a consulting offering. Featured services link to their
// detailed section; detailed services carry an anchor ID and features.
type Service struct {
	ID          string   `yaml:"id"`
	Title       string   `yaml:"title"`
	Description string   `yaml:"description"`
	Image       string   `yaml:"image"`
	Link        string   `yaml:"link"`
	Features    []string `yaml:"features"`
	Reverse     bool     `yaml:"reverse"`
}

type About struct {
	Intro      string   `yaml:"intro"`
	Preview    []string `yaml:"preview"`
	Highlights []string `yaml:"highlights"`
	Story      string   `yaml:"story"`
	Vision     string   `yaml:"vision"`
	Mission    string   `yaml:"mission"`
	Stats      []Stat   `yaml:"stats"`
	Values     []Value  `yaml:"values"`
}

type Stat struct {
	Value string `yaml:"value"`
	Label string `yaml:"label"`
}

type Value struct {
	Title       string   `yaml:"title"`
	Image       string   `yaml:"image"`
	Description string   `yaml:"description"`
	Points      []string `yaml:"points"`
}

type TeamMember struct {
	Name  string `yaml:"name"`
	Role  string `yaml:"role"`
	Bio   string `yaml:"bio"`
	Image string `yaml:"image"`
}

type Testimonial struct {
	Quote   string `yaml:"quote"`
	Author  string `yaml:"author"`
	Role    string `yaml:"role"`
	Company string `yaml:"company"`
}

// Testimonials are grouped by the page that shows them.
type Testimonials struct {
	Home    []Testimonial `yaml:"home"`
	Clients []Testimonial `yaml:"clients"`
}

type Client struct {
	Name     string `yaml:"name"`
	Industry string `yaml:"industry"`
}

type CaseStudy struct {
	Client   string   `yaml:"client"`
	Industry string   `yaml:"industry"`
	Title    string   `yaml:"title"`
	Summary  string   `yaml:"summary"`
	Results  []string `yaml:"results"`
}

type ContactInfo struct {
	Phones       []string `yaml:"phones"`
	Emails       []string `yaml:"emails"`
	Address      []string `yaml:"address"`
	Hours        []string `yaml:"hours"`
	ResponseTime string   `yaml:"response_time"`
}

var markdown = goldmark.New(goldmark.WithExtensions(extension.Typographer))

// Parse decodes and checks site copy, rendering the About story.
func Parse(data []byte) (*Site, error) {
	var s Site
	dec := yaml.NewDecoder(bytes.NewReader(data))
	dec.KnownFields(true)
	if err := dec.Decode(&s); err != nil {
		return nil, fmt.Errorf("decoding site content: %w", err)
	}
	if err := s.Validate(); err != nil {
		return nil, err
	}

	var buf bytes.Buffer
	if err := markdown.Convert([]byte(s.About.Story), &buf); err != nil {
		return nil, fmt.Errorf("rendering about story: %w", err)
	}
	s.StoryHTML = buf.String()
	return &s, nil
}

// Load reads site copy from path, or the built-in copy when path is empty.
func Load(path string) (*Site, error) {
	if path == "" {
		return Default()
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading content file: %w", err)
	}
	s, err := Parse(data)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return s, nil
}

// Default returns the built-in site copy.
func Default() (*Site, error) {
	return Parse(embedded)
}

// Validate checks the fields pages depend on.
func (s *Site) Validate() error {
	var errs []error
	if strings.TrimSpace(s.Company.Name) == "" {
		errs = append(errs, errors.New("company.name is required"))
	}
	if len(s.Hero) == 0 {
		errs = append(errs, errors.New("at least one hero slide is required"))
	}
	for i, sl := range s.Hero {
		if sl.Media == "" {
			errs = append(errs, fmt.Errorf("hero[%d].media is required", i))
		}
	}
	ids := map[string]bool{}
	for i, svc := range s.Services {
		if svc.ID == "" {
			errs = append(errs, fmt.Errorf("services[%d].id is required", i))
			continue
		}
		if ids[svc.ID] {
			errs = append(errs, fmt.Errorf("services[%d].id %q is duplicated", i, svc.ID))
		}
		ids[svc.ID] = true
	}
	return errors.Join(errs...)
}

// HeroSlides returns a copy of the hero slides for a new rotator.
func (s *Site) HeroSlides() []rotator.Slide {
	return append([]rotator.Slide(nil), s.Hero...)
}
