// Package datasets defines the tables orgmine shows: column sets for each
// analytics record type, the built-in sample users, and a registry that lets
// the CLI print any of them by name.
package datasets
