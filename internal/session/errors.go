package session

import "errors"

// ErrTokenDecode indicates a credential whose payload could not be decoded.
// During Login it fails the operation; during Restore it is absorbed and the
// session simply stays logged out.
var ErrTokenDecode = errors.New("token decode failed")
