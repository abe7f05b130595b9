package extensionsfile

// Entry declares one extension to deploy onto the distribution.
type Entry struct {
	// Kind is the extension identifier, e.g. "anti-hotlinking".
	Kind string `toml:"kind"`
	// Parameters are kind-specific settings; see ToProperties for the
	// recognized keys per kind.
	Parameters map[string]string `toml:"parameters"`
}

// Manifest is the root structure of extensions.toml.
type Manifest struct {
	// OriginDomainName is the default origin of the distribution.
	OriginDomainName string `toml:"origin_domain_name"`
	// Extensions lists the [[extension]] entries in file order; their order
	// has no effect on lifecycle-event binding.
	Extensions []Entry `toml:"extension"`
}
