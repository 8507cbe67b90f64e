package designation

import (
	designationDatamodel "github.com/frahmantamala/hrms-backend/internal/core/datamodel/designation"
	"github.com/frahmantamala/hrms-backend/internal/resource"
)

var Descriptor = resource.Descriptor{
	Name:   "Designation",
	Plural: "Designations",
	Path:   "/designations",
	Event:  "designation",
}

type DesignationResponse struct {
	ID    int64  `json:"id"`
	Title string `json:"title"`
}

func ToResponse(m *designationDatamodel.Designation) DesignationResponse {
	return DesignationResponse{
		ID:    m.ID,
		Title: m.Title,
	}
}
