// Package shortener provides the HTTP client for the shortening backend.
//
// The backend contract is a single POST:
//
//	request:  {"url": "<long url>"}
//	success:  2xx {"value": "<token>"}
//	failure:  non-2xx {"error": "<message>"}
//
// A failure that carries a non-empty "error" field is returned as *APIError
// and its message is safe to show to users. Everything else is a
// *TransportError. That covers no response, a non-JSON body (the backend
// answers some failures with plain text), or a success without a token. The
// wrapped error is for logs only.
//
// The client sets no timeout unless WithTimeout is given.
package shortener
