// Package catalog provides an in-memory content catalog: articles with
// free-form categories and tags, filter/sort queries, and engagement
// counters (views, likes).
//
// The Service interface is the entry point. It orchestrates create, read,
// update and delete against a Repository, evaluates list queries over a
// point-in-time snapshot, and records engagement through an
// EngagementTracker.
//
// Engagement semantics
//
// Fetching a single item with GetContent records a view: repeated reads of
// the same item change its stored view count. List, search and
// ListByAuthor never touch counters. Likes only change through LikeContent.
//
// Identifiers
//
// Identifiers are decimal strings assigned from a monotonic counter owned by
// the repository. An identifier is never handed out twice during the life of
// a process, even after the item holding it has been deleted.
package catalog
