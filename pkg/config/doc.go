// Package config loads typed configuration structs from environment
// variables, with optional .env file support for development.
//
// Each component declares its own config struct with `env` tags and loads it
// independently; there is no central configuration registry. Absent optional
// values (like the SMTP host) are represented as zero values and reported by
// the component that needs them, not at load time.
package config
