package cmu

// A Config is a requested clock-tree configuration: per domain, an
// optional multiplexer selection and an optional prescaler ratio.
// Unspecified fields mean "keep the current setting", so a partial
// Config reconfigures one domain without disturbing the rest.
//
// Config is a value type built by chaining; each With call returns a
// modified copy.
type Config struct {
	sources [NumDomains]*Source
	prescs  [NumDomains]*uint32
}

// NewConfig creates an empty Config that keeps every domain unchanged.
func NewConfig() Config {
	return Config{}
}

// WithSource requests a multiplexer selection for a domain.
func (c Config) WithSource(d Domain, s Source) Config {
	src := s
	c.sources[d] = &src
	return c
}

// WithPrescaler requests a prescaler divide ratio for a domain.
func (c Config) WithPrescaler(d Domain, div uint32) Config {
	ratio := div
	c.prescs[d] = &ratio
	return c
}
