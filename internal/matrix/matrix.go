package matrix

// Status is the reference implementation's completion state for an
// extension or sub-extension.
type Status string

const (
	StatusDone       Status = "done"
	StatusInProgress Status = "in progress"
	StatusNotStarted Status = "not started"
)

// Done reports whether the status is the distinguished "fully done" value.
func (s Status) Done() bool {
	return s == StatusDone
}

// Matrix is the root of the parsed feature tree. It is read-only input:
// nothing downstream mutates it, so it can be shared by reference.
type Matrix struct {
	APIs []API `yaml:"apis"`
}

// API is a named capability family with ordered versions and the vendors
// whose drivers implement it.
type API struct {
	Name     string    `yaml:"name"`
	Versions []Version `yaml:"versions"`
	Vendors  []Vendor  `yaml:"vendors"`
}

// Version is one numbered release of an API.
type Version struct {
	Name       string      `yaml:"name"`    // e.g. "OpenGL", "OpenGL ES", "Vulkan"
	Version    string      `yaml:"version"` // numeric version string, e.g. "4.6"
	Extensions []Extension `yaml:"extensions"`
}

// Extension is a discrete optional capability. Drivers lists the names of
// third-party drivers that fully support it; there is no partial support.
type Extension struct {
	Name          string         `yaml:"name"`
	Status        Status         `yaml:"status"`
	Drivers       []string       `yaml:"drivers"`
	SubExtensions []SubExtension `yaml:"subextensions"`
}

// SubExtension nests one level under an Extension and counts identically.
type SubExtension struct {
	Name    string   `yaml:"name"`
	Status  Status   `yaml:"status"`
	Drivers []string `yaml:"drivers"`
}

// Find returns the API with the given name, or nil if the matrix has none.
func (m *Matrix) Find(name string) *API {
	for i := range m.APIs {
		if m.APIs[i].Name == name {
			return &m.APIs[i]
		}
	}
	return nil
}

// AllDrivers returns the names of every driver listed under the API's
// vendors, deduplicated by name, in first-encounter order.
func (a *API) AllDrivers() []string {
	seen := make(map[string]bool)
	var drivers []string
	for _, vendor := range a.Vendors {
		for _, d := range vendor.Drivers {
			if seen[d] {
				continue
			}
			seen[d] = true
			drivers = append(drivers, d)
		}
	}
	return drivers
}

// Supports reports whether the named driver carries a supported-driver
// marker on the extension itself (sub-extensions are checked separately).
func (e *Extension) Supports(driver string) bool {
	for _, d := range e.Drivers {
		if d == driver {
			return true
		}
	}
	return false
}

// Supports reports whether the named driver carries a supported-driver
// marker on the sub-extension.
func (s *SubExtension) Supports(driver string) bool {
	for _, d := range s.Drivers {
		if d == driver {
			return true
		}
	}
	return false
}

// Vendor groups the drivers one hardware vendor ships for an API.
type Vendor struct {
	Name    string   `yaml:"name"`
	Drivers []string `yaml:"drivers"`
}
