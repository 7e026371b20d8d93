// Package client is the request half of the session gateway: it talks to
// the shop's REST API on behalf of the rest of the client.
//
// # Overview
//
//  1. Client is the transport contract used by the services package:
//     Request plus the Get/Post/Patch/Delete shorthands and multipart Upload.
//  2. HTTPClient implements it over net/http. Every call gets JSON headers,
//     the deployment's pass-through headers, the caller's headers and, when
//     the session holds a live token, "Authorization: Bearer <token>".
//  3. Responses are decoded as JSON whenever the server says so, success or
//     not, and non-2xx responses become *APIError values.
//
// # Error Handling
//
// Application errors are *APIError{Message, Status}. The message comes from
// the body's "message" field, then "error", then a localized fallback.
// A 401 from anything but the login endpoint clears the session and carries
// the localized "session expired" message. Callers branch with errors.Is on
// ErrUnauthorized, ErrSessionExpired, ErrNotFound and ErrUnavailable, or
// read the status with StatusCode. A missing base URL fails with
// ErrBaseURLNotSet before any network I/O. Transport errors are returned
// unchanged.
//
// No retries, no backoff: a failed call is reported to the caller at once.
package client
