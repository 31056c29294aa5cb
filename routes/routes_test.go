package routes

import (
	"context"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/tohahpro/trendNest-server/middleware"
)

func testLookup(ctx context.Context, email string) (string, error) {
	return "", nil
}

func TestTableHasNoDuplicateRoutes(t *testing.T) {
	seen := map[string]bool{}
	for _, r := range Table() {
		key := r.Method + " " + r.Path
		assert.False(t, seen[key], "duplicate route %s", key)
		seen[key] = true
	}
}

// Every mutating route must carry at least the token gate. This is the
// check that catches a forgotten gate before it ships.
func TestMutatingRoutesAreGated(t *testing.T) {
	exempt := map[string]bool{
		// Issuing and clearing the token are the ways in and out.
		"POST /jwt":    true,
		"POST /logout": true,
	}

	for _, r := range Table() {
		if r.Method == http.MethodGet {
			continue
		}
		key := r.Method + " " + r.Path
		if exempt[key] {
			continue
		}
		assert.NotEqual(t, Public, r.Access, "%s must not be public", key)
	}
}

func TestGatesChainLengths(t *testing.T) {
	assert.Len(t, Gates(Public, testLookup), 0)
	assert.Len(t, Gates(TokenRequired, testLookup), 1)
	assert.Len(t, Gates(ModeratorOnly, testLookup), 2)
	assert.Len(t, Gates(AdminOnly, testLookup), 2)
}

func TestRoleRoutesRequireBothGates(t *testing.T) {
	for _, r := range Table() {
		if r.Access == AdminOnly || r.Access == ModeratorOnly {
			gates := Gates(r.Access, testLookup)
			assert.Len(t, gates, 2, "%s %s must verify token before role", r.Method, r.Path)
		}
	}
}

func TestAdminSurfaceIsDeclared(t *testing.T) {
	access := map[string]AccessLevel{}
	for _, r := range Table() {
		access[r.Method+" "+r.Path] = r.Access
	}

	assert.Equal(t, AdminOnly, access["GET /users"])
	assert.Equal(t, AdminOnly, access["PATCH /users/admin/:id"])
	assert.Equal(t, AdminOnly, access["DELETE /menu/:id"])
	assert.Equal(t, AdminOnly, access["GET /admin-stats"])
	assert.Equal(t, ModeratorOnly, access["PATCH /product-status/:id"])
	assert.Equal(t, ModeratorOnly, access["GET /reports"])
}

var _ middleware.RoleLookup = testLookup
