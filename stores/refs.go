package stores

import (
	"errors"
)

// KarigarRef is the result of resolving a weak karigar reference. Orders
// and assignments reference karigars by id with no enforced integrity, so
// the referent may be gone; Resolved is the explicit marker for that case.
type KarigarRef struct {
	ID       string `json:"id"`
	Name     string `json:"name,omitempty"`
	Skill    string `json:"skill,omitempty"`
	Resolved bool   `json:"resolved"`
}

// ResolveKarigar looks up a weak karigar reference. An empty id or an
// absent record yields an unresolved ref, never an error; storage failures
// other than absence are returned.
func ResolveKarigar(store KarigarStore, id string) (KarigarRef, error) {
	if id == "" {
		return KarigarRef{Resolved: false}, nil
	}
	k, err := store.GetByID(id)
	if err != nil {
		if errors.Is(err, ErrNotFound) {
			return KarigarRef{ID: id, Resolved: false}, nil
		}
		return KarigarRef{}, err
	}
	return KarigarRef{ID: k.ID, Name: k.Name, Skill: k.Skill, Resolved: true}, nil
}

// ResolveClient looks up a weak client reference with the same semantics
// as ResolveKarigar.
func ResolveClient(store ClientStore, id string) (ClientRef, error) {
	if id == "" {
		return ClientRef{Resolved: false}, nil
	}
	c, err := store.GetByID(id)
	if err != nil {
		if errors.Is(err, ErrNotFound) {
			return ClientRef{ID: id, Resolved: false}, nil
		}
		return ClientRef{}, err
	}
	return ClientRef{ID: c.ID, Name: c.Name, Phone: c.Phone, Resolved: true}, nil
}

// ClientRef is the resolved form of a weak client reference.
type ClientRef struct {
	ID       string `json:"id"`
	Name     string `json:"name,omitempty"`
	Phone    string `json:"phone,omitempty"`
	Resolved bool   `json:"resolved"`
}
