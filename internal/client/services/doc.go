// Package services contains the application services of the storefront
// client: the auth flows that feed session.Store, and one thin service per
// REST resource on top of client.Client.
package services
