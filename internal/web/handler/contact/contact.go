// Package contact provides the contact page and its submission endpoint.
package contact

import (
	"github.com/gofiber/fiber/v2"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
	"gorm.io/gorm"

	"github.com/vinoteka/vinoteka/internal/config"
	contactstore "github.com/vinoteka/vinoteka/internal/db/controller/contact"
	"github.com/vinoteka/vinoteka/internal/metrics"
	"github.com/vinoteka/vinoteka/internal/submission"
	"github.com/vinoteka/vinoteka/internal/web/handler"
	"github.com/vinoteka/vinoteka/internal/web/navigation"
)

const (
	// Path is the path to the contact page.
	Path = handler.RootPath + "contacto"

	// APIPath receives contact submissions.
	APIPath = handler.APIPath + "contact"

	// TemplateName is the name of the contact template.
	TemplateName = "contact/contact"

	form = "contact"
)

// Service is the contact handler service.
type Service struct {
	handler.Service
	cfg        *config.Config
	submission *submission.Service
}

// Handler is the contact handler.
var Handler = Service{}

// Init initializes the contact handler.
func (s *Service) Init(app *fiber.App, cfg *config.Config, db *gorm.DB) error {
	if app == nil || cfg == nil || db == nil {
		log.Error().Msg(handler.ErrNilACDFatalLogMsg)

		return handler.ErrNilACD
	}

	s.cfg = cfg
	s.submission = submission.New(contactstore.NewStore(db), nil)

	app.Get(Path, s.Get)
	app.Post(APIPath, s.Post)

	return nil
}

// Get renders the contact form.
func (s *Service) Get(c *fiber.Ctx) error {
	nav := navigation.NewContext("Contacto", navigation.SectionContact, "contact").
		AddBreadcrumb("Inicio", handler.RootPath, false).
		AddBreadcrumb("Contacto", Path, true)

	return c.Render(TemplateName, fiber.Map{
		"Navigation": nav,
		"Title":      s.cfg.Title,
		"Action":     APIPath,
	}, handler.BaseLayout)
}

// Post stores one contact message.
func (s *Service) Post(c *fiber.Ctx) error {
	logger := zerolog.Ctx(c.UserContext())

	var req submission.ContactRequest
	if err := c.BodyParser(&req); err != nil {
		logger.Warn().Err(err).Msg("failed to parse contact submission")
		metrics.CountSubmission(form, metrics.OutcomeInvalid)

		return c.Status(fiber.StatusBadRequest).JSON(handler.Invalid(submission.MsgContactRequired))
	}

	if _, err := s.submission.SubmitContact(c.UserContext(), req); err != nil {
		if submission.IsValidationError(err) {
			metrics.CountSubmission(form, metrics.OutcomeInvalid)

			return c.Status(fiber.StatusBadRequest).JSON(handler.Invalid(err.Error()))
		}

		logger.Error().Err(err).Msg("error saving contact message")
		metrics.CountSubmission(form, metrics.OutcomeError)

		return c.Status(fiber.StatusInternalServerError).JSON(handler.Failed(submission.MsgContactFailed))
	}

	logger.Info().Msg("contact message saved")
	metrics.CountSubmission(form, metrics.OutcomeSuccess)

	return c.JSON(handler.OK())
}
