package progress

// Status represents a skill's state relative to the learner.
type Status string

const (
	StatusLocked     Status = "locked"      // A prerequisite is below the unlock threshold
	StatusUnlocked   Status = "unlocked"    // Prerequisites sufficient; no XP yet
	StatusInProgress Status = "in_progress" // Prerequisites sufficient; some XP earned
	StatusCompleted  Status = "completed"   // XP reached the skill's requirement
)

// Rank orders statuses along the forward-only lifecycle.
func (s Status) Rank() int {
	switch s {
	case StatusLocked:
		return 0
	case StatusUnlocked:
		return 1
	case StatusInProgress:
		return 2
	case StatusCompleted:
		return 3
	default:
		return -1
	}
}

// Learnable reports whether content should be recommended for the status.
func (s Status) Learnable() bool {
	return s == StatusUnlocked || s == StatusInProgress
}

// Icon returns the display icon for a status.
func (s Status) Icon() string {
	switch s {
	case StatusLocked:
		return "🔒"
	case StatusUnlocked:
		return "🔓"
	case StatusInProgress:
		return "📖"
	case StatusCompleted:
		return "✅"
	default:
		return "?"
	}
}

// Label returns the display label for a status.
func (s Status) Label() string {
	switch s {
	case StatusLocked:
		return "Locked"
	case StatusUnlocked:
		return "Unlocked"
	case StatusInProgress:
		return "In Progress"
	case StatusCompleted:
		return "Completed"
	default:
		return "Unknown"
	}
}
