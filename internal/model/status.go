package model

// Matter status constants.
const (
	MatterStatusOpen    = "open"
	MatterStatusClosed  = "closed"
	MatterStatusPending = "pending"
)

// ValidMatterStatus reports whether s is one of the matter status values.
func ValidMatterStatus(s string) bool {
	switch s {
	case MatterStatusOpen, MatterStatusClosed, MatterStatusPending:
		return true
	}
	return false
}
