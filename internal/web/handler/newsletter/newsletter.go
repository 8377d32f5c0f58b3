// Package newsletter provides the newsletter page and its signup endpoint.
package newsletter

import (
	"github.com/gofiber/fiber/v2"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
	"gorm.io/gorm"

	"github.com/vinoteka/vinoteka/internal/config"
	"github.com/vinoteka/vinoteka/internal/db/controller/subscriber"
	"github.com/vinoteka/vinoteka/internal/metrics"
	"github.com/vinoteka/vinoteka/internal/submission"
	"github.com/vinoteka/vinoteka/internal/web/handler"
	"github.com/vinoteka/vinoteka/internal/web/navigation"
)

const (
	// Path is the path to the newsletter page.
	Path = handler.RootPath + "newsletter"

	// APIPath receives newsletter signups.
	APIPath = handler.APIPath + "newsletter"

	// TemplateName is the name of the newsletter template.
	TemplateName = "newsletter/newsletter"

	form = "newsletter"
)

// Service is the newsletter handler service.
type Service struct {
	handler.Service
	cfg        *config.Config
	submission *submission.Service
}

// Handler is the newsletter handler.
var Handler = Service{}

// Init initializes the newsletter handler.
func (s *Service) Init(app *fiber.App, cfg *config.Config, db *gorm.DB) error {
	if app == nil || cfg == nil || db == nil {
		log.Error().Msg(handler.ErrNilACDFatalLogMsg)

		return handler.ErrNilACD
	}

	s.cfg = cfg
	s.submission = submission.New(nil, subscriber.NewStore(db))

	app.Get(Path, s.Get)
	app.Post(APIPath, s.Post)

	return nil
}

// Get renders the signup form.
func (s *Service) Get(c *fiber.Ctx) error {
	nav := navigation.NewContext("Newsletter", navigation.SectionNewsletter, "newsletter").
		AddBreadcrumb("Inicio", handler.RootPath, false).
		AddBreadcrumb("Newsletter", Path, true)

	return c.Render(TemplateName, fiber.Map{
		"Navigation": nav,
		"Title":      s.cfg.Title,
		"Action":     APIPath,
	}, handler.BaseLayout)
}

// Post stores one newsletter subscriber.
func (s *Service) Post(c *fiber.Ctx) error {
	logger := zerolog.Ctx(c.UserContext())

	var req submission.NewsletterRequest
	if err := c.BodyParser(&req); err != nil {
		logger.Warn().Err(err).Msg("failed to parse newsletter signup")
		metrics.CountSubmission(form, metrics.OutcomeInvalid)

		return c.Status(fiber.StatusBadRequest).JSON(handler.Invalid(submission.MsgNewsletterRequired))
	}

	if _, err := s.submission.Subscribe(c.UserContext(), req); err != nil {
		if submission.IsValidationError(err) {
			metrics.CountSubmission(form, metrics.OutcomeInvalid)

			return c.Status(fiber.StatusBadRequest).JSON(handler.Invalid(err.Error()))
		}

		logger.Error().Err(err).Msg("error saving subscription")
		metrics.CountSubmission(form, metrics.OutcomeError)

		return c.Status(fiber.StatusInternalServerError).JSON(handler.Failed(submission.MsgNewsletterFailed))
	}

	logger.Info().Msg("newsletter subscriber saved")
	metrics.CountSubmission(form, metrics.OutcomeSuccess)

	return c.JSON(handler.OK())
}
