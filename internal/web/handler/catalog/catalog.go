// Package catalog provides the wine listing page and its JSON endpoint.
package catalog

import (
	"strings"

	"github.com/gofiber/fiber/v2"
	"github.com/rs/zerolog/log"
	"gorm.io/gorm"

	"github.com/vinoteka/vinoteka/internal/config"
	"github.com/vinoteka/vinoteka/internal/db/controller/wine"
	"github.com/vinoteka/vinoteka/internal/listing"
	"github.com/vinoteka/vinoteka/internal/web/handler"
	"github.com/vinoteka/vinoteka/internal/web/navigation"
)

const (
	// Path is the path to the catalog page.
	Path = handler.RootPath

	// APIPath is the path to the JSON listing.
	APIPath = handler.APIPath + "wines"

	// TemplateName is the name of the catalog template.
	TemplateName = "catalog/index"

	// msgLoadFailed is shown when the store could not be read.
	msgLoadFailed = "No se pudieron cargar los vinos. Por favor, inténtalo de nuevo."
)

// Service is the catalog handler service.
type Service struct {
	handler.Service
	cfg   *config.Config
	store listing.Store
}

// Handler is the catalog handler.
var Handler = Service{}

// Init initializes the catalog handler.
func (s *Service) Init(app *fiber.App, cfg *config.Config, db *gorm.DB) error {
	if app == nil || cfg == nil || db == nil {
		log.Error().Msg(handler.ErrNilACDFatalLogMsg)

		return handler.ErrNilACD
	}

	s.cfg = cfg
	s.store = wine.NewStore(db)

	app.Get(Path, s.Get)
	app.Get(APIPath, s.API)

	return nil
}

// load builds the listing for the q and page query parameters. Pages out of
// range fall back to page 1.
func (s *Service) load(c *fiber.Ctx) (listing.State, error) {
	ctrl := listing.New(s.store)
	ctx := c.UserContext()

	if err := ctrl.SetSearchTerm(ctx, strings.TrimSpace(c.Query("q"))); err != nil {
		return ctrl.State(), err
	}

	if page := c.QueryInt("page", 1); page > 1 {
		if _, err := ctrl.SetPage(ctx, page); err != nil {
			return ctrl.State(), err
		}
	}

	return ctrl.State(), nil
}

// Get renders the catalog page.
func (s *Service) Get(c *fiber.Ctx) error {
	nav := navigation.NewContext("Vinoteka", navigation.SectionCatalog, "catalog").
		AddBreadcrumb("Inicio", Path, true)

	state, err := s.load(c)

	data := fiber.Map{
		"Navigation": nav,
		"Listing":    state,
		"Title":      s.cfg.Title,
	}

	if err != nil {
		data["Error"] = msgLoadFailed

		return c.Status(fiber.StatusInternalServerError).Render(TemplateName, data, handler.BaseLayout)
	}

	return c.Render(TemplateName, data, handler.BaseLayout)
}

// API returns the listing as JSON.
func (s *Service) API(c *fiber.Ctx) error {
	state, err := s.load(c)
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Error fetching wines"})
	}

	return c.JSON(state)
}
