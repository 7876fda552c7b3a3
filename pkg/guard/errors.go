package guard

import "errors"

// ErrNoValidatedContext is the panic value of MustValidated outside of a
// Guard middleware chain.
var ErrNoValidatedContext = errors.New("no validated context in request")
