package domain

// Profile is the user-data record returned by the remote profile boundary.
// Absence of a profile is signalled with ErrUserNotFound, not an error type
// of its own: callers only distinguish transport failures if a transport
// layer adds that distinction.
type Profile struct {
	ID    string `json:"id"`
	Name  string `json:"name"`
	Email string `json:"email"`
}
