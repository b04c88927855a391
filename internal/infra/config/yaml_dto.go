package config

// Pointer fields tell "absent" apart from an explicit zero value.

type yamlFile struct {
	Commonmeta yamlConfig `yaml:"commonmeta"`
}

type yamlConfig struct {
	Upstream struct {
		BaseURL      *string `yaml:"base_url"`
		Mailto       *string `yaml:"mailto"`
		Timeout      *string `yaml:"timeout"`
		MaxBodyBytes *int64  `yaml:"max_body_bytes"`
	} `yaml:"upstream"`

	Retry struct {
		MaxAttempts     *int    `yaml:"max_attempts"`
		InitialInterval *string `yaml:"initial_interval"`
		MaxInterval     *string `yaml:"max_interval"`
		MaxElapsed      *string `yaml:"max_elapsed"`
	} `yaml:"retry"`

	Concurrency *int `yaml:"concurrency"`

	Log struct {
		Path  *string `yaml:"path"`
		Debug *bool   `yaml:"debug"`
	} `yaml:"log"`
}
