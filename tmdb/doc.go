// Package tmdb provides a client for The Movie Database (TMDb) v3 API.
//
// The package turns raw service responses into typed entities while keeping
// every failure visible: each call yields exactly one Status, failed calls
// never expose a payload, and optional fields the service did not send stay
// distinguishable from zero values.
//
// # Architecture
//
// The package is organized into several components:
//
//   - Client: Builds URLs, performs calls through a Transport and classifies outcomes
//   - Status: The closed outcome taxonomy and the classifier that produces it
//   - Response, PagedResponse: Envelopes carrying either a payload or a failure
//   - FetchAll: Sequential aggregation of every page of a paged endpoint
//   - Entities: Movies, people, companies, collections and lists in tiers
//     (Thumbnail, Reduced, Full), each tier embedding the one below
//   - Configuration: The loaded image catalog used to build image URLs
//
// # Usage
//
// Create a new client with your API key:
//
//	logger := zerolog.New(os.Stderr)
//	client, err := tmdb.NewClient(
//		"your-api-key",
//		logger,
//		tmdb.WithLanguage("en-US"),
//		tmdb.WithTimeout(10*time.Second),
//	)
//	if err != nil {
//		log.Fatal(err)
//	}
//
//	ctx := context.Background()
//	movie, report, err := client.GetMovie(ctx, 603)
//	if err != nil && !errors.Is(err, tmdb.ErrPartialParse) {
//		log.Fatal(err)
//	}
//	if !report.OK() {
//		log.Println(report.Err())
//	}
//
// # Optional fields
//
// Optional fields are pointers. A nil pointer means the service did not send
// the field (or sent null); a pointer to zero means it sent zero:
//
//	if movie.Budget == nil {
//		fmt.Println("budget unknown")
//	}
//
// # Images
//
// Image URLs need the service configuration, which is loaded once per client:
//
//	if err := client.LoadConfiguration(ctx); err != nil {
//		log.Fatal(err)
//	}
//	url, err := client.ImageURL(*movie.Poster, "w500")
//	if errors.Is(err, tmdb.ErrImageSizeNotSupported) {
//		// the catalog does not offer w500 posters
//	}
//
// # Error Handling
//
// The package defines several error types:
//
//   - ErrMalformedURL, ErrTimeout, ErrUnauthorized, ErrNotFound,
//     ErrServerError, ErrUnknown: one sentinel per failure Status
//   - StatusError: Failed calls, matching the sentinel of their Status
//   - ParseError: Missing mandatory fields, matching ErrPartialParse
//   - ImageSizeError: Unsupported renditions, matching ErrImageSizeNotSupported
//
// Status errors include helper methods for classification:
//
//	var se *tmdb.StatusError
//	if errors.As(err, &se) && se.IsNotFound() {
//		// handle missing movie
//	}
//
// # Thread Safety
//
// The Client and its Configuration are safe for concurrent use. Entities are
// plain values owned by the caller.
package tmdb
