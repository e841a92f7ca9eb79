// Package cost estimates API spend from per-million-token prices and
// expected usage volumes.
package cost
