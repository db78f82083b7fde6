package domain

// ReviewStatus represents a card's position in its learning lifecycle.
// ACTIVE cards participate in scheduling; COMPLETED cards finished the
// interval sequence and stay out of the queue until re-activated.
type ReviewStatus string

const (
	ReviewStatusActive    ReviewStatus = "ACTIVE"
	ReviewStatusCompleted ReviewStatus = "COMPLETED"
)

func (s ReviewStatus) String() string { return string(s) }

func (s ReviewStatus) IsValid() bool {
	switch s {
	case ReviewStatusActive, ReviewStatusCompleted:
		return true
	}
	return false
}

// SessionStatus represents the state of a review or test session.
type SessionStatus string

const (
	SessionStatusActive    SessionStatus = "ACTIVE"
	SessionStatusCompleted SessionStatus = "COMPLETED"
	SessionStatusAbandoned SessionStatus = "ABANDONED"
)

func (s SessionStatus) String() string { return string(s) }

func (s SessionStatus) IsValid() bool {
	switch s {
	case SessionStatusActive, SessionStatusCompleted, SessionStatusAbandoned:
		return true
	}
	return false
}
