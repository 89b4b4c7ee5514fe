package graph

import "github.com/graphql-go/graphql/gqlerrors"

// The three error shapes the API surfaces. Each implements
// gqlerrors.ExtendedError so the code (and, for input errors, the submitted
// arguments) reach the caller under the error's extensions.

type InputError struct {
	Message string
	Args    map[string]interface{}
}

func (e *InputError) Error() string { return e.Message }

func (e *InputError) Extensions() map[string]interface{} {
	ext := map[string]interface{}{"code": "BAD_USER_INPUT"}
	if e.Args != nil {
		ext["invalidArgs"] = e.Args
	}
	return ext
}

// NewInputError carries the rejected arguments back to the caller, minus
// anything secret.
func NewInputError(message string, args map[string]interface{}) *InputError {
	return &InputError{Message: message, Args: sanitizeArgs(args)}
}

type AuthenticationError struct{}

func (e *AuthenticationError) Error() string { return "not authenticated" }

func (e *AuthenticationError) Extensions() map[string]interface{} {
	return map[string]interface{}{"code": "UNAUTHENTICATED"}
}

// CredentialsError reports a failed login. The message is identical for
// unknown emails and wrong passwords so callers cannot enumerate accounts.
type CredentialsError struct{}

func (e *CredentialsError) Error() string { return "wrong credentials" }

func (e *CredentialsError) Extensions() map[string]interface{} {
	return map[string]interface{}{"code": "INVALID_CREDENTIALS"}
}

var (
	_ gqlerrors.ExtendedError = (*InputError)(nil)
	_ gqlerrors.ExtendedError = (*AuthenticationError)(nil)
	_ gqlerrors.ExtendedError = (*CredentialsError)(nil)
)

// sanitizeArgs copies the argument map without secret fields.
func sanitizeArgs(args map[string]interface{}) map[string]interface{} {
	if args == nil {
		return nil
	}
	out := make(map[string]interface{}, len(args))
	for k, v := range args {
		if k == "password" {
			continue
		}
		out[k] = v
	}
	return out
}
