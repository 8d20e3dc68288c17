package domain

// UserProfile is the durable record of a caller keyed by contact number
type UserProfile struct {
	ContactNumber string
	Name          *string
	Email         *string
}

// Caller is the identified caller of one conversation session
type Caller struct {
	ContactNumber string  `json:"contact_number"`
	Name          *string `json:"name,omitempty"`
	IsNew         bool    `json:"is_new"`
}

// CallerFromProfile builds the session caller of a known profile
func CallerFromProfile(p *UserProfile) Caller {
	return Caller{ContactNumber: p.ContactNumber, Name: p.Name}
}

// DisplayName returns the caller name or an empty string
func (c Caller) DisplayName() string {
	if c.Name == nil {
		return ""
	}
	return *c.Name
}

// WithName returns a copy of the caller carrying the given name
func (c Caller) WithName(name string) Caller {
	c.Name = &name
	return c
}
