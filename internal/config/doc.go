// Package config provides configuration for the rtresolve CLI: the flat
// Config struct populated from flags, the flag > environment > stdin input
// precedence, validation, and the optional YAML site-preset file.
package config
