// Package config loads the agent's runtime settings from environment
// variables, with an optional .env file for local development, and
// validates them before anything connects to a backend.
package config
