// Package guard puts rule-based validation in front of HTTP handlers.
//
// A Guard binds the request input (query, body and chi path parameters by
// default, see binder.Request), validates it against a list of rule specs
// and hands the validated context to the next handler. Failures are answered
// with a JSON envelope:
//
//	{"error":{"code":"validation_error","message":"Validation failed","details":{"age":["age: 15 is less than 18"]}}}
//
// Binding failures map to 400, 413 or 415. Validation failures map to 422.
//
// # Usage
//
//	g := guard.New([]validator.RuleSpec{
//	    validator.Spec("email", validator.TypeEmail, validator.Params{"required": true}),
//	    validator.Spec("age", validator.TypeNumeric, validator.Params{"min": 18}),
//	}, guard.WithCatalog(catalog), guard.WithLogger(log))
//
//	r := chi.NewRouter()
//	r.Use(i18n.Middleware(catalog, nil))
//	r.With(g.Middleware).Post("/signup", func(w http.ResponseWriter, r *http.Request) {
//	    input := guard.MustValidated(r.Context())
//	    ...
//	})
//
// Messages are rendered in the request language when a catalog is set. The
// locale stored by i18n.Middleware wins over the Accept-Language header.
package guard
