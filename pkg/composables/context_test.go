package composables_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/avetra/hrdesk/pkg/composables"
)

func TestActorRoundTrip(t *testing.T) {
	ctx := composables.WithActor(context.Background(), "u-17")
	actor, err := composables.UseActor(ctx)
	require.NoError(t, err)
	assert.Equal(t, "u-17", actor)

	_, err = composables.UseActor(context.Background())
	assert.ErrorIs(t, err, composables.ErrNoActorFound)
}

func TestRoles(t *testing.T) {
	ctx := composables.WithRoles(context.Background(), "admin", "manager")
	assert.True(t, composables.HasRole(ctx, "admin"))
	assert.False(t, composables.HasRole(ctx, "viewer"))

	// An empty role set is still a role set.
	empty := composables.WithRoles(context.Background())
	roles, err := composables.UseRoles(empty)
	require.NoError(t, err)
	assert.Empty(t, roles)

	assert.False(t, composables.HasRole(context.Background(), "admin"))
	_, err = composables.UseRoles(context.Background())
	assert.ErrorIs(t, err, composables.ErrNoRolesFound)
}
