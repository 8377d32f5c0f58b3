// Package navigation holds the header menu and breadcrumbs of a page.
package navigation

// Header sections.
const (
	SectionCatalog    = "catalog"
	SectionContact    = "contact"
	SectionNewsletter = "newsletter"
)

// BreadcrumbItem represents a single breadcrumb link.
type BreadcrumbItem struct {
	Title  string
	URL    string
	Active bool
}

// MenuItem is one header link.
type MenuItem struct {
	Title   string
	URL     string
	Section string
}

// Menu is the header navigation: Inicio, Contacto, Newsletter.
var Menu = []MenuItem{ //nolint:gochecknoglobals
	{Title: "Inicio", URL: "/", Section: SectionCatalog},
	{Title: "Contacto", URL: "/contacto", Section: SectionContact},
	{Title: "Newsletter", URL: "/newsletter", Section: SectionNewsletter},
}

// Context represents the navigation context for a page.
type Context struct {
	ActiveSection string
	ActivePage    string
	Breadcrumbs   []BreadcrumbItem
	PageTitle     string
	Menu          []MenuItem
}

// NewContext creates a new navigation context.
func NewContext(pageTitle, activeSection, activePage string) *Context {
	return &Context{
		PageTitle:     pageTitle,
		ActiveSection: activeSection,
		ActivePage:    activePage,
		Breadcrumbs:   make([]BreadcrumbItem, 0),
		Menu:          Menu,
	}
}

// AddBreadcrumb adds a breadcrumb item to the context.
func (c *Context) AddBreadcrumb(title, url string, active bool) *Context {
	c.Breadcrumbs = append(c.Breadcrumbs, BreadcrumbItem{
		Title:  title,
		URL:    url,
		Active: active,
	})

	return c
}

// IsActive checks if the given section and page match the current context.
func (c *Context) IsActive(section, page string) bool {
	return c.ActiveSection == section && c.ActivePage == page
}

// IsSectionActive checks if the given section is active.
func (c *Context) IsSectionActive(section string) bool {
	return c.ActiveSection == section
}
