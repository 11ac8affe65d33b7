package content

import (
	"github.com/depeter/shutterfolio/internal/carousel"
)

// AllCategories is the filter value that matches every project.
const AllCategories = "All"

// Project is one portfolio entry.
type Project struct {
	ID          string `yaml:"id" json:"_id"`
	Title       string `yaml:"title" json:"title"`
	Category    string `yaml:"category" json:"category"`
	Image       string `yaml:"image" json:"image"`
	Year        int    `yaml:"year" json:"year"`
	Location    string `yaml:"location" json:"location"`
	Description string `yaml:"description" json:"description"`
	Featured    bool   `yaml:"featured" json:"featured"`
}

// Service is an offering listed in the services section.
type Service struct {
	ID          string `yaml:"id" json:"_id"`
	Title       string `yaml:"title" json:"title"`
	Description string `yaml:"description" json:"description"`
	Price       string `yaml:"price" json:"price"`
}

// Stat is a headline number in the about section ("12+ years").
type Stat struct {
	Value string `yaml:"value" json:"value"`
	Label string `yaml:"label" json:"label"`
}

type About struct {
	Headline string `yaml:"headline" json:"headline"`
	Bio      string `yaml:"bio" json:"bio"`
	Portrait string `yaml:"portrait" json:"portrait"`
	Stats    []Stat `yaml:"stats" json:"stats"`
}

func (a About) IsZero() bool {
	return a.Headline == "" && a.Bio == "" && len(a.Stats) == 0
}

// Catalog is everything the page shows that can come from the CMS.
type Catalog struct {
	Projects []Project `yaml:"projects" json:"projects"`
	Services []Service `yaml:"services" json:"services"`
	About    About     `yaml:"about" json:"about"`
}

// Categories returns AllCategories followed by each project category in
// first-seen order.
func (c *Catalog) Categories() []string {
	cats := []string{AllCategories}
	seen := make(map[string]bool)
	for _, p := range c.Projects {
		if p.Category == "" || seen[p.Category] {
			continue
		}
		seen[p.Category] = true
		cats = append(cats, p.Category)
	}
	return cats
}

// Filter returns the projects in category. An empty category or
// AllCategories returns every project.
func (c *Catalog) Filter(category string) []Project {
	if category == "" || category == AllCategories {
		return append([]Project(nil), c.Projects...)
	}
	var out []Project
	for _, p := range c.Projects {
		if p.Category == category {
			out = append(out, p)
		}
	}
	return out
}

// Project looks a project up by ID.
func (c *Catalog) Project(id string) (Project, bool) {
	for _, p := range c.Projects {
		if p.ID == id {
			return p, true
		}
	}
	return Project{}, false
}

// MarqueeItems returns the featured projects as carousel items, or every
// project when none is featured.
func (c *Catalog) MarqueeItems() []carousel.Item {
	var items []carousel.Item
	for _, p := range c.Projects {
		if p.Featured {
			items = append(items, p.item())
		}
	}
	if len(items) > 0 {
		return items
	}
	for _, p := range c.Projects {
		items = append(items, p.item())
	}
	return items
}

func (p Project) item() carousel.Item {
	return carousel.Item{ID: p.ID, Title: p.Title, Category: p.Category, Image: p.Image}
}

// Clone returns a deep copy.
func (c *Catalog) Clone() *Catalog {
	out := &Catalog{
		Projects: append([]Project(nil), c.Projects...),
		Services: append([]Service(nil), c.Services...),
		About:    c.About,
	}
	out.About.Stats = append([]Stat(nil), c.About.Stats...)
	return out
}
