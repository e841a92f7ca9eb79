// Package modelsdev fetches the models.dev community catalog of model
// capabilities, token limits and list prices. The catalog is one JSON
// document keyed by provider, cached like any other API response.
package modelsdev
