// Package constants defines application-wide constants and version information.
package constants

import "runtime"

// Version holds the application version information
const Version = "1.0-" + runtime.GOOS + "/" + runtime.GOARCH

// ProjectTimezone is the reference timezone reported by the health endpoint.
const ProjectTimezone = "Europe/Rome"

// TypicalYear is the reference year every simulation run is sampled over.
const TypicalYear = 2025
