package session

// Requirement declares what a view expects from the session.
type Requirement int

const (
	// RequireNone admits anyone.
	RequireNone Requirement = iota
	// RequireAuth admits only an authenticated session.
	RequireAuth
	// PublicOnly admits only an unauthenticated session. No current view
	// declares it, but the rule is implemented for when one does.
	PublicOnly
)

// Decision is the guard's verdict for one render of a guarded view.
type Decision struct {
	Allow bool
	// Redirect names the target view when Allow is false.
	Redirect string
	// Replace indicates the redirect must not be reachable via back
	// navigation.
	Replace bool
}

// Targets for guard redirects.
const (
	RedirectLogin = "login"
	RedirectHome  = "home"
)

// Decide is a pure function of the current session and a view's declared
// requirement. It only decides; the caller performs the navigation, which
// keeps the rule independently testable.
func Decide(sess Session, req Requirement) Decision {
	switch req {
	case RequireAuth:
		if !sess.Authenticated {
			return Decision{Redirect: RedirectLogin, Replace: true}
		}
	case PublicOnly:
		if sess.Authenticated {
			return Decision{Redirect: RedirectHome, Replace: true}
		}
	}
	return Decision{Allow: true}
}
