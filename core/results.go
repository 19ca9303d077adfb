package core

// Store operation results, as returned to API callers.
// An update/delete on an absent id yields zero counts rather than an error;
// callers are expected to inspect the counts.
type (
	InsertResult struct {
		InsertedID string `json:"insertedId"`
	}

	UpdateResult struct {
		MatchedCount  int64 `json:"matchedCount"`
		ModifiedCount int64 `json:"modifiedCount"`
	}

	DeleteResult struct {
		DeletedCount int64 `json:"deletedCount"`
	}
)
