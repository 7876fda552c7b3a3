// Package i18n provides per-language message catalogs for validator error
// templates.
//
// A Catalog loads `language → code → template` tables through an Adapter
// and picks the best table for a requested language with the
// golang.org/x/text/language matcher. The default language table is the
// base layer; a matched language only needs to list the codes it changes.
//
// # Sources
//
// Ready-made adapters cover an in-memory map (MapAdapter), a single file
// (FileAdapter), a directory (DirAdapter) and any fs.FS such as embed.FS
// (FSAdapter). Files are decoded by a Parser; YAML and JSON parsers are
// included. Nested objects below a language are flattened into dotted codes.
//
//	en:
//	  REQUIRED: "%key% is required"
//	  INVALID_NUMERIC: "%key%: %value% is not numeric"
//	de:
//	  REQUIRED: "%key% ist erforderlich"
//
// # Usage
//
//	adapter, err := i18n.NewDirAdapter(i18n.NewYAMLParser(), "./translations")
//	if err != nil {
//		log.Fatal(err)
//	}
//	catalog, err := i18n.NewCatalog(ctx, adapter, i18n.WithDefaultLanguage("en"))
//	if err != nil {
//		log.Fatal(err)
//	}
//
//	v := validator.New(input, specs,
//		validator.WithMessages(catalog.MessagesFor(r.Header.Get("Accept-Language"))),
//	)
//
// # HTTP Middleware
//
// Middleware stores the negotiated catalog language in the request context;
// handlers read the matching table with Catalog.MessagesFromContext.
//
//	http.Handle("/", i18n.Middleware(catalog, nil)(handler))
//
// # Error Handling
//
// Load failures are wrapped with ErrFailedToLoadTranslations and keep the
// adapter or parser sentinel, so errors.Is works for both layers.
package i18n
