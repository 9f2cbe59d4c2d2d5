// Package core carries the HTTP error taxonomy and response helpers
// shared by teamgate's route modules. Services below the route layer
// return sentinel errors; routes translate them to HTTPError values
// and render them here, so nothing under the route layer ever writes
// to the response.
package core
