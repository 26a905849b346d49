package services

import (
	"context"
	"errors"

	"github.com/avetra/hrdesk/pkg/composables"
	"github.com/avetra/hrdesk/pkg/serrors"
)

// Capability objects of the HRM collections.
const (
	DepartmentsObject = "hrm.departments"
	CompaniesObject   = "hrm.companies"
	DocTypesObject    = "hrm.doctypes"
	ChargesObject     = "hrm.charges"
	AttendanceObject  = "hrm.attendance"
)

const (
	RoleAdmin   = "admin"
	RoleManager = "manager"
	RoleViewer  = "viewer"
)

// actionRoles is the whole role model: gating is a pure function of
// the explicit role set carried in the context, never of ambient
// global state.
var actionRoles = map[string][]string{
	"read":   {RoleAdmin, RoleManager, RoleViewer},
	"create": {RoleAdmin, RoleManager},
	"update": {RoleAdmin, RoleManager},
	"delete": {RoleAdmin},
	"import": {RoleAdmin, RoleManager},
	"export": {RoleAdmin, RoleManager, RoleViewer},
}

var authorizeHRMFn = defaultAuthorizeHRM

func authorizeHRM(ctx context.Context, object, action string) error {
	return authorizeHRMFn(ctx, object, action)
}

func defaultAuthorizeHRM(ctx context.Context, object, action string) error {
	roles, err := composables.UseRoles(ctx)
	if err != nil {
		// Background/system callers carry no role set.
		if errors.Is(err, composables.ErrNoRolesFound) {
			return nil
		}
		return err
	}
	for _, role := range actionRoles[action] {
		if _, ok := roles[role]; ok {
			return nil
		}
	}
	return serrors.ErrForbidden.WithMessage("missing permission for " + object + ":" + action)
}
