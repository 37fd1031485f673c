// Package api implements the HTTP boundary of the board: thin chi handlers
// that decode and validate requests, call the services, and map the error
// taxonomy to HTTP status codes. No business rules live here.
package api
