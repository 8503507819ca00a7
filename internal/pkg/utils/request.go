package utils

import (
	"net/http"
	"strconv"

	"agenda-service/internal/pkg/dto/requests"
)

func BuildAppointmentQuery(r *http.Request) *requests.AppointmentQuery {
	query := &requests.AppointmentQuery{
		Date:   r.URL.Query().Get("data"),
		Status: r.URL.Query().Get("status"),
	}

	if patientID, err := strconv.ParseInt(r.URL.Query().Get("pacienteId"), 10, 64); err == nil && patientID > 0 {
		query.PatientID = patientID
	}
	return query
}
