// Package models defines the request and response shapes the storefront
// client sends to and reads from the REST API.
package models
