package routers

import (
	"time"

	"agenda-service/internal/app/config"
	"agenda-service/internal/app/delivery/http/controllers"
	"agenda-service/internal/app/delivery/http/middlewares"

	"github.com/go-chi/chi/v5"
)

func attachAgendamentoRoutes(
	router chi.Router,
	internalConfig *config.InternalConfig,
	mw *middlewares.Middlewares,
	bookingController *controllers.BookingController,
	documentController *controllers.DocumentController,
) {
	router.With(mw.Authenticate).Get("/", bookingController.FindAll)
	router.With(mw.Authenticate).Post("/", bookingController.Create)
	router.With(mw.Authenticate).Post("/validar", bookingController.Validate)
	router.With(mw.Authenticate).Patch("/{agendamento_id}/status", bookingController.UpdateStatus)

	// Reprints hit the SADT service when nothing is archived, so they get an
	// extra per-IP limiter on top of the global one.
	reprintLimiter := middlewares.NewRateLimiter(
		internalConfig.Documents.ReprintMaxPerMin, time.Minute, 5*time.Minute)
	router.With(mw.Authenticate, reprintLimiter.Limit).
		Get("/{agendamento_id}/documento", documentController.Reprint)
}
