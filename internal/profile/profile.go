// Package profile projects onboarding answers into durable user-profile
// field updates.
package profile

// Delta is the set of profile mutations one answer produces. Nil fields
// are left untouched by the store.
type Delta struct {
	HeardAboutUs *string
	DisplayName  *string
	Role         *string
	Specialty    *string
	Subspecialty *string
	Interest     *string

	// Personalized is set on every submitted answer, marking that the
	// user has engaged with onboarding at all.
	Personalized bool
}

// IsZero reports whether applying the delta would change nothing.
func (d Delta) IsZero() bool {
	return d.HeardAboutUs == nil && d.DisplayName == nil && d.Role == nil &&
		d.Specialty == nil && d.Subspecialty == nil && d.Interest == nil &&
		!d.Personalized
}

// Snapshot is the read side: the profile state other components branch
// on. Kept separate from Delta so readers never see partial writes.
type Snapshot struct {
	HeardAboutUs string
	DisplayName  string
	Role         string
	Specialty    string
	Subspecialty string
	Interest     string
	Personalized bool
}

// Project maps a submitted answer to its profile delta. At most one
// field is written per progress value; progress 1 and unknown values
// set only the personalized flag.
func Project(progress int, response string) Delta {
	d := Delta{Personalized: true}
	switch progress {
	case 2:
		d.HeardAboutUs = &response
	case 3:
		d.DisplayName = &response
	case 4:
		d.Role = &response
	case 5:
		d.Specialty = &response
	case 6, 7:
		d.Subspecialty = &response
	case 8:
		d.Interest = &response
	}
	return d
}
