// Package main provides the entry point of Vinoteka, a wine catalog web
// site. It serves a searchable, paginated listing of the wines in a
// relational store (postgres, mysql or sqlite through gorm) and stores
// messages from the contact form and newsletter signups. The site is built
// with fiber and html templates; configuration comes from etc/main.toml and
// VINOTEKA_* environment variables.
package main
