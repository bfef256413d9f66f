// Package config loads stamp's configuration.
//
// Values are layered with koanf: the embedded defaults.toml first, then the
// user file at $XDG_CONFIG_HOME/stamp/config.toml, an explicit --config file,
// STAMP_<SECTION>_<KEY> environment variables and finally programmatic
// overrides. The result is decoded with mapstructure, so list values given
// through the environment may be comma separated:
//
//	STAMP_WALKER_SKIP_DIRS=__pycache__,.git,.tox stamp init collection acme.demo
//
// Config also owns the template variables that every scaffold starts with
// (see GlobalTemplateVars).
package config
