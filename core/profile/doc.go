// Package profile stores named API credentials in a local sqlite database.
//
// Credential resolution order for a command invocation: the --profile flag,
// then the default profile, then the AA_API_KEY environment variable. The
// first profile ever created becomes the default automatically.
package profile
