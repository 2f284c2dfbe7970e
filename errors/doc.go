// Package errors defines the closed set of domain errors surfaced by the
// shipping API client and the translator that maps transport failures onto
// them.
//
// Transport errors that carry an HTTP response (see HTTPError) are classified
// by status code into authorization, not-found, validation and backend errors.
// Everything else is returned unchanged.
package errors
