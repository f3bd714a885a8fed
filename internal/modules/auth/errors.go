package auth

import "errors"

var ErrInvalidCredentials = errors.New("invalid credentials")

// Shown verbatim under the login form on a mismatch.
const invalidCredentialsMessage = "Invalid username or password. Please try again."
