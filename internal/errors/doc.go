// Package errors provides the coded error type used across xwsbot.
//
// Every layer returns *Error values so the dispatcher can decide which notice
// a Discord user sees and the HTTP API can pick a status code:
//
//	err := errors.NotFoundf("pilot %s not found", xws)
//	err := errors.Unavailable("conversion service unreachable").
//	    WithMeta("url", link)
//
// Wrapping keeps the code of the inner error:
//
//	if err := repo.Reset(ctx); err != nil {
//	    return errors.Wrap(err, "failed to reset reference data")
//	}
//
// Config structs validate themselves with a ValidationBuilder:
//
//	vb := errors.NewValidationBuilder()
//	errors.ValidateRequired("Token", cfg.Token, vb)
//	return vb.Build()
package errors
