// internal/domain/models/site.go
package models

// DefaultSiteName is shown in the page title and sidebar.
const DefaultSiteName = "BigKoko Admin"
