package composables

import (
	"context"

	"github.com/avetra/hrdesk/pkg/serrors"
)

type contextKey int

const (
	actorKey contextKey = iota
	rolesKey
)

var (
	ErrNoActorFound = serrors.NewError("NO_ACTOR", "no actor in context", serrors.KindValidation)
	ErrNoRolesFound = serrors.NewError("NO_ROLES", "no roles in context", serrors.KindValidation)
)

// WithActor attaches the acting user's identifier to the context.
func WithActor(ctx context.Context, userID string) context.Context {
	return context.WithValue(ctx, actorKey, userID)
}

func UseActor(ctx context.Context) (string, error) {
	v, ok := ctx.Value(actorKey).(string)
	if !ok || v == "" {
		return "", ErrNoActorFound
	}
	return v, nil
}

// WithRoles attaches the acting user's role set to the context. Role
// gating downstream is a pure function of this explicit set; there is
// no ambient global user.
func WithRoles(ctx context.Context, roles ...string) context.Context {
	set := make(map[string]struct{}, len(roles))
	for _, r := range roles {
		set[r] = struct{}{}
	}
	return context.WithValue(ctx, rolesKey, set)
}

func UseRoles(ctx context.Context) (map[string]struct{}, error) {
	v, ok := ctx.Value(rolesKey).(map[string]struct{})
	if !ok {
		return nil, ErrNoRolesFound
	}
	return v, nil
}

// HasRole reports whether the context carries the given role. A
// context without any role set has no roles at all.
func HasRole(ctx context.Context, role string) bool {
	roles, err := UseRoles(ctx)
	if err != nil {
		return false
	}
	_, ok := roles[role]
	return ok
}
