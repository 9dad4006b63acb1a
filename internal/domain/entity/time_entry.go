package entity

import "github.com/shopspring/decimal"

// TimeEntry is one logged unit of work for a specific date.
type TimeEntry struct {
	UserID      int             `json:"user_id"`
	ProjectName string          `json:"project_name"`
	Hours       decimal.Decimal `json:"hours"`
}

// UserTotals maps a user ID to the cumulative hours logged by that user.
type UserTotals map[int]decimal.Decimal

// ProjectTotal holds the hours summed for a single project.
type ProjectTotal struct {
	Name  string          `json:"name"`
	Hours decimal.Decimal `json:"hours"`
}

// ProjectTotals maps a project name to cumulative hours, iterating in the
// order each project was first seen.
type ProjectTotals struct {
	order []string
	hours map[string]decimal.Decimal
}

// NewProjectTotals creates an empty ProjectTotals.
func NewProjectTotals() *ProjectTotals {
	return &ProjectTotals{
		order: []string{},
		hours: map[string]decimal.Decimal{},
	}
}

// Add accumulates hours for the named project.
func (p *ProjectTotals) Add(name string, hours decimal.Decimal) {
	current, ok := p.hours[name]
	if !ok {
		p.order = append(p.order, name)
		p.hours[name] = hours
		return
	}
	p.hours[name] = current.Add(hours)
}

// Get returns the total for name and whether the project is present.
func (p *ProjectTotals) Get(name string) (decimal.Decimal, bool) {
	h, ok := p.hours[name]
	return h, ok
}

// Len returns the number of projects.
func (p *ProjectTotals) Len() int {
	if p == nil {
		return 0
	}
	return len(p.order)
}

// Items returns the totals in first-seen order.
func (p *ProjectTotals) Items() []ProjectTotal {
	if p == nil {
		return nil
	}
	items := make([]ProjectTotal, 0, len(p.order))
	for _, name := range p.order {
		items = append(items, ProjectTotal{Name: name, Hours: p.hours[name]})
	}
	return items
}
