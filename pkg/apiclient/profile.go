package apiclient

import (
	"encoding/json"
	"maps"
	"strconv"
)

// Profile is the authenticated user's profile as returned by the API.
// Members other than the six known fields are kept in Extra, so a profile
// decoded from a response re-encodes to the same object.
type Profile struct {
	ID       string
	Email    string
	Name     string
	Position string
	Phone    string
	State    string // state/agency the user acts on behalf of
	Extra    map[string]any
}

// ProfileFields lists the JSON names of the known profile fields.
var ProfileFields = []string{"id", "email", "name", "position", "phone", "state"}

func (p *Profile) fields() []*string {
	return []*string{&p.ID, &p.Email, &p.Name, &p.Position, &p.Phone, &p.State}
}

// IsZero reports whether no field is populated.
func (p Profile) IsZero() bool {
	for _, f := range p.fields() {
		if *f != "" {
			return false
		}
	}
	return len(p.Extra) == 0
}

// Clone returns a deep-enough copy: Extra is copied one level.
func (p Profile) Clone() Profile {
	if p.Extra != nil {
		p.Extra = maps.Clone(p.Extra)
	}
	return p
}

// MarshalJSON writes known fields followed by extra members.
func (p Profile) MarshalJSON() ([]byte, error) {
	out := make(map[string]any, len(ProfileFields)+len(p.Extra))
	maps.Copy(out, p.Extra)
	for i, f := range p.fields() {
		out[ProfileFields[i]] = *f
	}
	return json.Marshal(out)
}

// UnmarshalJSON accepts any JSON object. Known fields holding numbers
// (user ids are numeric in some API versions) are converted to strings.
func (p *Profile) UnmarshalJSON(data []byte) error {
	var raw map[string]any
	if err := json.Unmarshal(data, &raw); err != nil {
		return err
	}
	if raw == nil {
		return errNotAnObject
	}

	*p = Profile{}
	for i, f := range p.fields() {
		name := ProfileFields[i]
		v, ok := raw[name]
		if !ok {
			continue
		}
		*f = stringify(v)
		delete(raw, name)
	}
	if len(raw) > 0 {
		p.Extra = raw
	}
	return nil
}

func stringify(v any) string {
	switch t := v.(type) {
	case nil:
		return ""
	case string:
		return t
	case float64:
		return strconv.FormatFloat(t, 'f', -1, 64)
	case bool:
		return strconv.FormatBool(t)
	default:
		b, _ := json.Marshal(t)
		return string(b)
	}
}
