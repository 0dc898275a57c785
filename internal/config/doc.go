// Package config loads, normalizes, and validates draftsmith configuration data.
//
// It supplies repository defaults, expands user paths (including tilde
// shortcuts), reads TOML files, and honours the DRAFTSMITH_CONFIG environment
// override. The Config type centralizes every knob the engine and CLI need,
// from canvas dimensions to subtitle styling.
//
// Always obtain settings through this package so downstream code receives
// sanitized paths, canonical log formats, and clear validation errors.
package config
