// Package modules contains the self-contained features of the site.
//
// Each subdirectory is a module implementing `module.Module`. Modules are
// listed in `internal/app` and registered, then booted, by the server at
// startup.
package modules
