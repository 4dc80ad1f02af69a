package tool

// Settings are the adjustable parameters of a tool. They persist for the
// lifetime of the tool, so re-selecting a tool resumes its last values.
type Settings struct {
	SizeName         string
	MinSize, MaxSize int
	Size             int
	HasSize          bool

	StrengthName             string
	MinStrength, MaxStrength int
	Strength                 int
	HasStrength              bool
}

// Names used by the built-in tools.
const (
	Diameter       = "Diameter"
	SearchDiameter = "Search Diameter"
	Alpha          = "Alpha"
	Percent        = "Percent"
)

// DefaultSettings returns a 1..64 diameter starting at 1 and a 0..255 alpha
// starting at 255.
func DefaultSettings() Settings {
	return Settings{
		SizeName:     Diameter,
		MinSize:      1,
		MaxSize:      64,
		Size:         1,
		HasSize:      true,
		StrengthName: Alpha,
		MinStrength:  0,
		MaxStrength:  255,
		Strength:     255,
		HasStrength:  true,
	}
}

// SetSize clamps size to [MinSize, MaxSize].
func (s *Settings) SetSize(size int) {
	s.Size = min(max(size, s.MinSize), s.MaxSize)
}

// SetStrength clamps strength to [MinStrength, MaxStrength].
func (s *Settings) SetStrength(strength int) {
	s.Strength = min(max(strength, s.MinStrength), s.MaxStrength)
}

// HasAlpha reports whether the strength is an alpha value.
func (s *Settings) HasAlpha() bool {
	return s.HasStrength && s.StrengthName == Alpha
}

// Radius returns half the size.
func (s *Settings) Radius() float64 {
	return float64(s.Size) / 2
}

// Fraction returns Strength / MaxStrength.
func (s *Settings) Fraction() float64 {
	if s.MaxStrength == 0 {
		return 0
	}
	return float64(s.Strength) / float64(s.MaxStrength)
}

// percent sets the strength to a 1..100 percentage starting at current.
func (s *Settings) percent(current int) {
	s.StrengthName = Percent
	s.MinStrength = 1
	s.MaxStrength = 100
	s.Strength = current
}
