// Package aa fetches LLM benchmark and media-arena data from the
// Artificial Analysis API. All responses flow through the local cache;
// live requests happen only on a cache miss or an explicit refresh.
package aa
