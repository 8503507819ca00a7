package controllers

import (
	"context"
	"fmt"
	"net/http"
	"strconv"
	"time"

	"agenda-service/internal/app/contracts"
	"agenda-service/internal/pkg/constvars"
	"agenda-service/internal/pkg/exceptions"
	"agenda-service/internal/pkg/utils"

	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"
)

type DocumentController struct {
	Log            *zap.Logger
	BookingUsecase contracts.BookingUsecase
}

func NewDocumentController(logger *zap.Logger, bookingUsecase contracts.BookingUsecase) *DocumentController {
	return &DocumentController{
		Log:            logger,
		BookingUsecase: bookingUsecase,
	}
}

// Reprint serves the printable artifact for an existing appointment: the
// archived official PDF when available, otherwise a rebuilt document.
func (ctrl *DocumentController) Reprint(w http.ResponseWriter, r *http.Request) {
	requestID, ok := r.Context().Value(constvars.CONTEXT_REQUEST_ID_KEY).(string)
	if !ok {
		ctrl.Log.Error("DocumentController.Reprint requestID not found in context")
		utils.BuildErrorResponse(ctrl.Log, w, exceptions.ErrMissingRequestID(nil))
		return
	}

	appointmentID, err := strconv.ParseInt(chi.URLParam(r, "agendamento_id"), 10, 64)
	if err != nil || appointmentID <= 0 {
		utils.BuildErrorResponse(ctrl.Log, w, exceptions.ErrURLParamIDValidation(err, "agendamento_id"))
		return
	}

	ctrl.Log.Info("DocumentController.Reprint called",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.Int64(constvars.LoggingAppointmentIDKey, appointmentID))

	ctx, cancel := context.WithTimeout(r.Context(), 15*time.Second)
	defer cancel()

	job, err := ctrl.BookingUsecase.ReprintDocument(ctx, appointmentID)
	if err != nil {
		ctrl.Log.Error("DocumentController.Reprint BookingUsecase.ReprintDocument error",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.Error(err))
		utils.BuildErrorResponse(ctrl.Log, w, err)
		return
	}

	w.Header().Set(constvars.HeaderContentType, job.ContentType)
	w.Header().Set(constvars.HeaderDisposition, fmt.Sprintf("inline; filename=%q", job.FileName))
	w.WriteHeader(constvars.StatusOK)
	if _, err := w.Write(job.Body); err != nil {
		ctrl.Log.Error("DocumentController.Reprint error writing response body",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.Error(err))
	}
}
