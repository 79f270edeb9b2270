package domain

// Roster maps a project manager's display name (Title-Case) to their
// work e-mail, one roster per region.
type Roster map[string]string

// Email looks up a PM's e-mail address.
func (r Roster) Email(pm string) (string, bool) {
	email, ok := r[pm]
	return email, ok
}

// Names returns the roster's PM names in no particular order.
func (r Roster) Names() []string {
	names := make([]string, 0, len(r))
	for name := range r {
		names = append(names, name)
	}
	return names
}

// Directory holds the per-region PM rosters and delivery channels.
type Directory struct {
	Rosters  map[Region]Roster `json:"rosters"`
	Channels map[Region]string `json:"channels"` // region -> chat channel id
}

// Roster returns the roster for a region, possibly empty.
func (d Directory) Roster(region Region) Roster {
	return d.Rosters[region]
}

// Channel returns the delivery channel for a region.
func (d Directory) Channel(region Region) (string, bool) {
	id, ok := d.Channels[region]
	return id, ok && id != ""
}
