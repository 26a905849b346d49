package hrm

import (
	"github.com/avetra/hrdesk/modules/hrm/infrastructure/remote"
	"github.com/avetra/hrdesk/modules/hrm/services"
	"github.com/avetra/hrdesk/pkg/eventbus"
)

// Module bundles the HRM collections' services over one API client.
type Module struct {
	Departments *services.DepartmentService
	Companies   *services.CompanyService
	DocTypes    *services.DocTypeService
	Charges     *services.ChargeService
	Attendance  *services.AttendanceService
}

func NewModule(client *remote.Client, publisher eventbus.EventBus) *Module {
	return &Module{
		Departments: services.NewDepartmentService(remote.NewDepartmentRepository(client), publisher),
		Companies:   services.NewCompanyService(remote.NewCompanyRepository(client), publisher),
		DocTypes:    services.NewDocTypeService(remote.NewDocTypeRepository(client), publisher),
		Charges:     services.NewChargeService(remote.NewChargeRepository(client), publisher),
		Attendance:  services.NewAttendanceService(remote.NewAttendanceRepository(client), publisher),
	}
}

func (m *Module) Name() string {
	return "hrm"
}
