package documents

import (
	"agenda-service/internal/app/models"
	"agenda-service/internal/pkg/constvars"
)

// Procedure catalog used by local synthesis when the authoritative document
// service is unavailable. Keyed by the display name shown in the reception UI,
// with SIGTAP codes and the municipal reference prices.
//
// TODO: confirm with the billing department whether the placeholder price for
// unknown procedures is acceptable on printed previews.
type catalogEntry struct {
	Code  string
	Price float64
}

const (
	unknownProcedureCode  = "0000000000"
	unknownProcedurePrice = 10.00

	consultationProcedureCode = "0301010072"
)

var procedureCatalog = map[string]catalogEntry{
	"Hemograma Completo":              {Code: "0202020380", Price: 25.00},
	"Glicemia de Jejum":               {Code: "0202010473", Price: 15.00},
	"Colesterol Total":                {Code: "0202010295", Price: 18.50},
	"Triglicerídeos":                  {Code: "0202010678", Price: 18.50},
	"Exame de Urina (EAS)":            {Code: "0202050017", Price: 12.00},
	"Ureia e Creatinina":              {Code: "0202050106", Price: 16.00},
	"TSH":                             {Code: "0202060381", Price: 22.00},
	"Raio-X de Tórax":                 {Code: "0204030153", Price: 45.00},
	"Mamografia":                      {Code: "0204030188", Price: 90.00},
	"Ultrassonografia Abdominal":      {Code: "0205020046", Price: 80.00},
	"Eletrocardiograma":               {Code: "0211020036", Price: 30.00},
	"Teste Ergométrico":               {Code: "0211020060", Price: 65.00},
}

// LookupProcedure maps an exam display name to a billable line item. Unknown
// names degrade to a generic line with the placeholder price; the receptionist
// still gets a printable document.
func LookupProcedure(examName string) models.ProcedureItem {
	if entry, ok := procedureCatalog[examName]; ok {
		return models.ProcedureItem{
			Code:      entry.Code,
			Name:      examName,
			Quantity:  1,
			UnitValue: entry.Price,
		}
	}
	return models.ProcedureItem{
		Code:      unknownProcedureCode,
		Name:      examName,
		Quantity:  1,
		UnitValue: unknownProcedurePrice,
	}
}

// BuildProcedures assembles the procedure list for a document request, in the
// order the exams were selected.
func BuildProcedures(appointmentType, specialty string, selectedExams []string) []models.ProcedureItem {
	requirements, ok := RequirementsFor(appointmentType)
	if !ok {
		return nil
	}

	if requirements.RequiresExams {
		procedures := make([]models.ProcedureItem, 0, len(selectedExams))
		for _, exam := range selectedExams {
			procedures = append(procedures, LookupProcedure(exam))
		}
		return procedures
	}

	switch appointmentType {
	case constvars.AppointmentTypeVaccine:
		return []models.ProcedureItem{{
			Code:      "0301100152",
			Name:      "Aplicação de vacina",
			Quantity:  1,
			UnitValue: 0,
		}}
	case constvars.AppointmentTypeProcedure:
		name := "Procedimento ambulatorial"
		if specialty != "" {
			name = "Procedimento ambulatorial - " + specialty
		}
		return []models.ProcedureItem{{
			Code:      "0401010015",
			Name:      name,
			Quantity:  1,
			UnitValue: unknownProcedurePrice,
		}}
	default:
		name := "Consulta em atenção especializada"
		if specialty != "" {
			name = "Consulta em " + specialty
		}
		return []models.ProcedureItem{{
			Code:      consultationProcedureCode,
			Name:      name,
			Quantity:  1,
			UnitValue: 0,
		}}
	}
}
