package designation

import (
	designationDatamodel "github.com/frahmantamala/hrms-backend/internal/core/datamodel/designation"
	"github.com/frahmantamala/hrms-backend/internal/resource"
	"github.com/frahmantamala/hrms-backend/internal/transport"
)

type ServiceAPI = resource.ServiceAPI[designationDatamodel.Designation, CreateDesignationDTO, UpdateDesignationDTO]

type Handler = resource.Handler[designationDatamodel.Designation, CreateDesignationDTO, UpdateDesignationDTO, DesignationResponse]

func NewHandler(baseHandler *transport.BaseHandler, service ServiceAPI) *Handler {
	return resource.NewHandler[designationDatamodel.Designation, CreateDesignationDTO, UpdateDesignationDTO, DesignationResponse](baseHandler, service, ToResponse)
}
