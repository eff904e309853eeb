// Shelfmatch - Content-Based Book Recommendations
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/shelfmatch

/*
Package recommend implements content-based book recommendations over TF-IDF
vectors of each catalog item's title and authors.

# Model

New fits a vectorizer once over every item's combined text:

  - tokens are runs of two or more Unicode letters, digits or underscores
  - a fixed English stop-word list is removed
  - the vocabulary is sorted; idf(t) = ln((1+N)/(1+df(t))) + 1
  - each vector is raw term count times idf, L2-normalized

The resulting feature matrix is immutable and shared by all queries.

# Query

Recommend normalizes the query, picks the first catalog item whose title
contains it (or equals it, with match=exact) as the anchor, scores every
item by cosine similarity with the anchor, and ranks.

The default legacy ranking sorts positions by ascending score (stable),
takes the n positions just below the top one and returns them in
descending order. The anchor usually holds the top position and is
excluded that way, but with ties at the maximum score it can be returned
and another record dropped instead. The exclude-anchor ranking sorts by
descending score, skips the anchor position explicitly and always returns
min(n, N-1) items.

# Outcomes

A query with no matching title returns a Result with StatusNoMatch and a
nil error. A panic or internal fault during scoring returns a
*FailureError matching ErrRecommendationFailed. Classify maps any error to
an Outcome for callers that branch on the kind of failure.
*/
package recommend
