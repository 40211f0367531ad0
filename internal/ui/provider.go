package ui

import (
	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/container"
	"fyne.io/fyne/v2/widget"

	"github.com/KQAR/expandable"
	"github.com/KQAR/expandable/internal/domain"
)

// Compile-time capability checks.
var (
	_ expandable.DataProvider       = (*catalogProvider)(nil)
	_ expandable.SectionCounter     = (*catalogProvider)(nil)
	_ expandable.SectionExpander    = (*catalogProvider)(nil)
	_ expandable.HeaderCellProvider = (*catalogProvider)(nil)
)

// catalogProvider adapts a domain.Catalog to the full expandable
// capability set. Header cells are pooled per section, so a rebind hands
// the list a recycled cell and exercises the reuse correction.
type catalogProvider struct {
	catalog *domain.Catalog
	headers map[int]*expandable.HeaderRow

	// fallback answers expandability for sections that leave it unset.
	fallback func() bool
}

func newCatalogProvider(catalog *domain.Catalog, fallback func() bool) *catalogProvider {
	return &catalogProvider{
		catalog:  catalog,
		headers:  make(map[int]*expandable.HeaderRow),
		fallback: fallback,
	}
}

// SectionCount implements expandable.SectionCounter.
func (p *catalogProvider) SectionCount() int {
	return len(p.catalog.Sections)
}

// RowCount implements expandable.DataProvider. Row 0 is the header.
func (p *catalogProvider) RowCount(section int) int {
	return len(p.catalog.Sections[section].Items) + 1
}

// CellForRow implements expandable.DataProvider.
func (p *catalogProvider) CellForRow(id expandable.RowID) fyne.CanvasObject {
	s := p.catalog.Sections[id.Section]
	if id.Row == 0 {
		// Reached for sections the gate rejects; a plain bold label, no
		// expand affordance.
		label := widget.NewLabel(s.Title)
		label.TextStyle = fyne.TextStyle{Bold: true}
		return label
	}

	item := s.Items[id.Row-1]
	name := widget.NewLabel(item.Name)
	if item.Detail == "" {
		return name
	}
	detail := widget.NewLabel(item.Detail)
	detail.Importance = widget.LowImportance
	return container.NewBorder(nil, nil, name, nil, detail)
}

// CanExpandSection implements expandable.SectionExpander.
func (p *catalogProvider) CanExpandSection(section int) bool {
	return p.catalog.Sections[section].CanExpand(p.fallback())
}

// ExpandableHeaderCell implements expandable.HeaderCellProvider with a
// per-section pool.
func (p *catalogProvider) ExpandableHeaderCell(section int) fyne.CanvasObject {
	if header, ok := p.headers[section]; ok {
		header.SetTitle(p.catalog.Sections[section].Title)
		return header
	}
	header := expandable.NewHeaderRow(p.catalog.Sections[section].Title)
	p.headers[section] = header
	return header
}
