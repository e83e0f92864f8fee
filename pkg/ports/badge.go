package ports

// SubScore is one named metric contributing to the verdict badge.
type SubScore struct {
	Name  string
	Value float64 // in [0,1]
}

// BadgeSpec describes the verdict badge to render.
type BadgeSpec struct {
	Title      string // artifact name shown on the badge
	Passed     bool
	Confidence float64 // in [0,1]
	SubScores  []SubScore
}

// BadgeRenderer renders a verdict badge as an encoded image.
type BadgeRenderer interface {
	// Render returns PNG image data for the given badge.
	Render(spec BadgeSpec) ([]byte, error)
}
