// model/profile.go
package model

import (
	"fmt"
	"time"
)

// Core field names, as they appear on the wire. Everything else submitted on
// a profile write lives in the dynamic attribute bag.
const (
	CoreEmail          = "email"
	CoreName           = "name"
	CoreFirstName      = "first_name"
	CoreLastName       = "last_name"
	CorePhone          = "phone"
	CoreCity           = "city"
	CoreCountry        = "country"
	CoreAddress        = "address"
	CoreZipCode        = "zipCode"
	CoreProfilePicture = "profile_picture"
	CorePassword       = "password"
)

var coreFieldNames = map[string]struct{}{
	CoreEmail:          {},
	CoreName:           {},
	CoreFirstName:      {},
	CoreLastName:       {},
	CorePhone:          {},
	CoreCity:           {},
	CoreCountry:        {},
	CoreAddress:        {},
	CoreZipCode:        {},
	CoreProfilePicture: {},
	CorePassword:       {},
}

// IsCoreField reports whether name is a fixed profile field. A dynamic
// attribute is never allowed to shadow one of these.
func IsCoreField(name string) bool {
	_, ok := coreFieldNames[name]
	return ok
}

// Profile is a concrete creator or agency record: fixed core fields, the
// discriminator pair selecting its governing user type, and a slug-keyed bag
// of dynamic attribute values.
type Profile struct {
	ID               string         `json:"id"`
	Email            string         `json:"email"`
	Name             string         `json:"name"`
	FirstName        string         `json:"first_name"`
	LastName         string         `json:"last_name"`
	Phone            string         `json:"phone"`
	City             string         `json:"city"`
	Country          string         `json:"country"`
	Address          string         `json:"address"`
	ZipCode          string         `json:"zipCode"`
	ProfilePicture   string         `json:"profile_picture"`
	PasswordHash     string         `json:"-"`
	UserType         ParentType     `json:"userType"`
	CollaboratorType string         `json:"collaboratorType,omitempty"`
	AgencyType       string         `json:"agencyType,omitempty"`
	Attributes       map[string]any `json:"attributes"`
	CreatedAt        time.Time      `json:"created_at"`
	UpdatedAt        time.Time      `json:"updated_at"`
}

// SchemaSlug returns the user type config slug governing this profile,
// picked off the discriminator pair.
func (p *Profile) SchemaSlug() string {
	if p.UserType == ParentAgency {
		return p.AgencyType
	}
	return p.CollaboratorType
}

// Field is the merged two-tier read: core fields resolve first, unresolved
// names fall through to the dynamic bag. Renderers rely on this order.
func (p *Profile) Field(name string) (any, bool) {
	if IsCoreField(name) {
		return p.coreField(name)
	}
	value, ok := p.Attributes[name]
	return value, ok
}

func (p *Profile) coreField(name string) (any, bool) {
	switch name {
	case CoreEmail:
		return p.Email, true
	case CoreName:
		return p.Name, true
	case CoreFirstName:
		return p.FirstName, true
	case CoreLastName:
		return p.LastName, true
	case CorePhone:
		return p.Phone, true
	case CoreCity:
		return p.City, true
	case CoreCountry:
		return p.Country, true
	case CoreAddress:
		return p.Address, true
	case CoreZipCode:
		return p.ZipCode, true
	case CoreProfilePicture:
		return p.ProfilePicture, true
	}
	// The password hash is intentionally unreadable through the merged view.
	return nil, false
}

// SetCoreField applies one core field from an untyped write payload. The
// password is handled separately by the write path since it is hashed.
func (p *Profile) SetCoreField(name string, value any) error {
	text, ok := value.(string)
	if !ok {
		return fmt.Errorf("field %s must be a string", name)
	}
	switch name {
	case CoreEmail:
		p.Email = text
	case CoreName:
		p.Name = text
	case CoreFirstName:
		p.FirstName = text
	case CoreLastName:
		p.LastName = text
	case CorePhone:
		p.Phone = text
	case CoreCity:
		p.City = text
	case CoreCountry:
		p.Country = text
	case CoreAddress:
		p.Address = text
	case CoreZipCode:
		p.ZipCode = text
	case CoreProfilePicture:
		p.ProfilePicture = text
	default:
		return fmt.Errorf("unknown core field %s", name)
	}
	return nil
}

// CoreMap returns the core fields as a wire-shaped map, used when running
// the fixed core validation rules over a merged write.
func (p *Profile) CoreMap() map[string]any {
	return map[string]any{
		CoreEmail:          p.Email,
		CoreName:           p.Name,
		CoreFirstName:      p.FirstName,
		CoreLastName:       p.LastName,
		CorePhone:          p.Phone,
		CoreCity:           p.City,
		CoreCountry:        p.Country,
		CoreAddress:        p.Address,
		CoreZipCode:        p.ZipCode,
		CoreProfilePicture: p.ProfilePicture,
	}
}

// MergedView flattens the profile into the single map renderers consume.
// Core fields win on any key collision with the bag.
func (p *Profile) MergedView() map[string]any {
	view := make(map[string]any, len(p.Attributes)+12)
	for key, value := range p.Attributes {
		view[key] = value
	}
	for key, value := range p.CoreMap() {
		view[key] = value
	}
	view["id"] = p.ID
	view["userType"] = p.UserType
	if p.CollaboratorType != "" {
		view["collaboratorType"] = p.CollaboratorType
	}
	if p.AgencyType != "" {
		view["agencyType"] = p.AgencyType
	}
	return view
}
