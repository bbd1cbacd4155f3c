// Package errors provides structured errors for the descent module.
//
// Errors carry a Code, a message, an optional cause and optional metadata:
//
//	err := errors.NotFoundf("room %d not found", id).WithMeta("level_id", levelID)
//
// Wrapping keeps the code of an inner *Error, otherwise the result is Internal:
//
//	if err := repo.Put(ctx, tmpl); err != nil {
//	    return errors.Wrap(err, "failed to store template")
//	}
//
// Configs validate through a ValidationBuilder, which yields a single InvalidArgument
// error listing every failing field:
//
//	vb := errors.NewValidationBuilder()
//	errors.ValidateRequired("id", t.ID, vb)
//	if c.PathLength < 0 {
//	    vb.InvalidField("PathLength", "cannot be negative")
//	}
//	return vb.Build()
//
// Generation itself fails open (a shorter path, a sealed door) and only reports errors for
// misconfiguration and broken collaborators.
package errors
