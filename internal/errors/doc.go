// Package errors provides structured error handling for PokeBase.
//
// Errors carry a Code, a message, optional metadata, and an optional cause.
// The dex layers use a small, fixed taxonomy:
//
//   - NotFound: an identifier matched no pokemon form, or the matched form
//     had no stat rows. The composer converts this into an absent result;
//     it never reaches the HTTP boundary as a fault.
//   - Unavailable / Internal: the data store itself failed. Propagated
//     unmodified — no retry, no partial result.
//   - InvalidArgument: bad configuration or malformed request input.
//
// Creating errors:
//
//	err := errors.NotFoundf("pokemon %q not found", identifier)
//
// Wrapping errors with context (code is preserved through wrapping):
//
//	if err := store.GetForm(ctx, id); err != nil {
//	    return errors.Wrap(err, "failed to fetch form")
//	}
//
// Checking:
//
//	if errors.IsNotFound(err) { ... }
//
// Config validation uses the builder:
//
//	vb := errors.NewValidationBuilder()
//	if cfg.Repo == nil {
//	    vb.RequiredField("Repo")
//	}
//	if err := vb.Build(); err != nil {
//	    return err
//	}
//
// Code.HTTPStatus maps codes onto HTTP statuses at the handler boundary.
package errors
