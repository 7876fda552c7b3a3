// Package binder turns HTTP request data into a validator.Context.
//
// Each binder reads one source and returns the raw values, leaving trimming,
// cleaning and checking to the validator rules:
//
//   - JSON      – a JSON object body (application/json, 1MB limit)
//   - Form      – url-encoded or multipart form fields
//   - Query     – the URL query string
//   - Path      – named path parameters through any router's extractor
//   - ChiParams – every URL parameter of the matched chi route
//
// Merge combines several sources, later ones winning, and Request does the
// common query + body + chi params combination in one call.
//
// # Usage
//
//	r := chi.NewRouter()
//	r.Post("/users/{id}", func(w http.ResponseWriter, r *http.Request) {
//		input, err := binder.Request(r)
//		if err != nil {
//			http.Error(w, err.Error(), http.StatusBadRequest)
//			return
//		}
//		v := validator.New(input, specs)
//		if !v.Validate() {
//			http.Error(w, v.ImplodedErrors("\n"), http.StatusUnprocessableEntity)
//			return
//		}
//		save(v.ValidatedContext())
//	})
//
// # Error Handling
//
// Errors wrap the sentinels in errors.go (ErrUnsupportedMediaType,
// ErrFailedToParseJSON, ErrRequestBodyTooLarge and friends) and can be
// checked with errors.Is.
package binder
