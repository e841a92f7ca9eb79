// Package compare renders models side by side, one metric per row,
// marking the best value where a metric has a meaningful direction.
package compare
