package dto

// UpdateResult acknowledges an upsert. Exactly one of MatchedCount and UpsertedCount is 1.
type UpdateResult struct {
	Acknowledged  bool   `json:"acknowledged"`
	MatchedCount  int64  `json:"matchedCount"`
	ModifiedCount int64  `json:"modifiedCount"`
	UpsertedCount int64  `json:"upsertedCount"`
	UpsertedID    string `json:"upsertedId,omitempty"`
}

// DeleteResult acknowledges a delete; DeletedCount is 0 when nothing matched.
type DeleteResult struct {
	Acknowledged bool  `json:"acknowledged"`
	DeletedCount int64 `json:"deletedCount"`
}

// MessageResponse is the body of every error and of plain confirmations.
type MessageResponse struct {
	Message string `json:"message"`
}
