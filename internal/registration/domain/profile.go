package domain

// Profile is the role a registrant signs up as.
type Profile string

const (
	ProfileBroker        Profile = "broker"
	ProfileAgency        Profile = "agency"
	ProfileDeveloper     Profile = "developer"
	ProfileClient        Profile = "client"
	ProfileOwner         Profile = "owner"
	ProfileAdministrator Profile = "administrator"
)

var profileLabels = map[Profile]string{
	ProfileBroker:        "Corretor",
	ProfileAgency:        "Imobiliária",
	ProfileDeveloper:     "Incorporadora",
	ProfileClient:        "Cliente",
	ProfileOwner:         "Proprietário",
	ProfileAdministrator: "Administrador",
}

// Profiles lists the selectable profiles in the order the form shows them.
func Profiles() []Profile {
	return []Profile{
		ProfileBroker,
		ProfileAgency,
		ProfileDeveloper,
		ProfileClient,
		ProfileOwner,
		ProfileAdministrator,
	}
}

// Validate checks if the profile is one of Profiles.
func (p Profile) Validate() error {
	if _, ok := profileLabels[p]; !ok {
		return ErrInvalidProfile
	}
	return nil
}

// Label returns the display label, or the raw value for unknown profiles.
func (p Profile) Label() string {
	if label, ok := profileLabels[p]; ok {
		return label
	}
	return string(p)
}

// String returns the string representation of the profile.
func (p Profile) String() string {
	return string(p)
}
