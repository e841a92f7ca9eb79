// Package merge joins benchmark records with catalog capability records
// into unified model rows.
//
// The two sources share no common key, so matching works on normalized
// identifiers: provider names anchor the search to the right catalog
// section and model slugs are compared exact first, then normalized,
// then with version suffixes stripped. Iteration over catalog maps is
// always in sorted key order so a given input produces the same match
// on every run.
package merge
