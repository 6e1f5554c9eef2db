// Package session owns the client-side credential: acquisition on login,
// persistence across restarts, subject decoding, and the route guard that
// gates screens on the derived session state.
//
// The credential is an opaque bearer token. Its subject is decoded from the
// JWT payload without signature or expiry verification; trust is delegated
// to the server, which re-validates the token on every authorized call. A
// token that fails to decode is indistinguishable from no token at all.
//
// Two mutually exclusive storage scopes back the credential: a durable file
// under the user's config directory ("remember me") and a session-lifetime
// file under the OS temp directory. Writing one scope always clears the
// other, so a stale duplicate can never shadow a fresh login.
package session
