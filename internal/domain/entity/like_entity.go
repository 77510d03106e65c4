package entity

// PropertyLike is the current like state for one (property, user) pair.
// At most one row exists per pair. Liked=false means the user explicitly
// unliked the property; that is not the same as never having interacted.
type PropertyLike struct {
	PropertyID int64 `json:"propertyId"`
	UserID     int64 `json:"userId"`
	Liked      bool  `json:"liked"`
}
