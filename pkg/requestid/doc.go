// Package requestid correlates a client call with the server log records
// it produces.
//
// Middleware assigns every incoming request an ID, reusing a well-formed
// X-Request-ID header or generating a UUID, stores it in the request context
// and echoes it in the response. Transport does the client half: it copies
// the context's ID, or a fresh one, onto outgoing requests.
//
// LoggerExtractor plugs into logger.WithContextExtractors-style decorators
// so every record logged with the request context carries "request_id".
//
//	srv := requestid.Middleware(router)
//	hc := &http.Client{Transport: requestid.NewTransport(nil)}
package requestid
