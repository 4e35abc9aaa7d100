// Package api defines the profitshare.v1 wire messages shared by the Connect
// services, the REST API and their clients.
//
// Messages are plain structs encoded as JSON. Monetary amounts are
// decimal strings ("1900.50") so no precision is lost in transit. Request
// dates are strings in YYYY-MM-DD or RFC 3339 form; response dates are
// RFC 3339 timestamps.
package api
