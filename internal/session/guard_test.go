package session

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestDecide(t *testing.T) {
	authed := Session{Token: "t", UserID: "u", Authenticated: true}
	anon := Session{}

	tests := []struct {
		name string
		sess Session
		req  Requirement
		want Decision
	}{
		{"auth view, logged in", authed, RequireAuth, Decision{Allow: true}},
		{"auth view, logged out", anon, RequireAuth, Decision{Redirect: RedirectLogin, Replace: true}},
		{"public-only view, logged in", authed, PublicOnly, Decision{Redirect: RedirectHome, Replace: true}},
		{"public-only view, logged out", anon, PublicOnly, Decision{Allow: true}},
		{"open view, logged in", authed, RequireNone, Decision{Allow: true}},
		{"open view, logged out", anon, RequireNone, Decision{Allow: true}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, Decide(tt.sess, tt.req))
		})
	}
}
