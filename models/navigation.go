// Package models file: models/navigation.go
package models

import "strings"

// ----------------------- navigation model -----------------------

// NavigationItem is one sidebar destination. Derived per render, never stored.
type NavigationItem struct {
	Href  string `json:"href"`
	Label string `json:"label"`
}

// rolePaths is the static per-role destination table. Ordering is the
// sidebar order and is significant.
var rolePaths = map[Role][]string{
	RoleSuperAdmin: {
		"/dashboard", "/leagues", "/schools", "/teams", "/venues", "/events",
		"/requests", "/assignments", "/users", "/announcements", "/settings",
	},
	RoleAdmin: {
		"/dashboard", "/schools", "/teams", "/venues", "/events",
		"/requests", "/assignments", "/users", "/announcements",
	},
	RoleAD: {
		"/dashboard", "/events", "/requests", "/assignments", "/teams", "/venues",
	},
	RoleCoach: {
		"/dashboard", "/events", "/teams", "/announcements",
	},
	RoleOfficial: {
		"/dashboard", "/events", "/my-requests", "/my-assignments", "/availability",
	},
	RoleUser: {
		"/dashboard", "/events", "/announcements",
	},
}

// pathLabels maps paths to display labels. Paths missing here get a
// humanized label derived from the path segment.
var pathLabels = map[string]string{
	"/dashboard":      "Dashboard",
	"/leagues":        "Leagues",
	"/schools":        "Schools",
	"/teams":          "Teams",
	"/venues":         "Venues",
	"/events":         "Events",
	"/requests":       "Requests",
	"/assignments":    "Assignments",
	"/users":          "Users",
	"/announcements":  "Announcements",
	"/settings":       "Settings",
	"/my-requests":    "My Requests",
	"/my-assignments": "My Assignments",
	"/availability":   "Availability",
}

// NavForRole returns the ordered navigation list for a role. Unknown roles
// fall back to the default role's list; that path should be unreachable
// once inputs go through NormalizeRole.
func NavForRole(role Role) []NavigationItem {
	paths, ok := rolePaths[role]
	if !ok {
		paths = rolePaths[DefaultRole]
	}
	items := make([]NavigationItem, 0, len(paths))
	for _, p := range paths {
		items = append(items, NavigationItem{Href: p, Label: labelForPath(p)})
	}
	return items
}

// AllNavPaths returns the de-duplicated union of every path referenced by
// any role, in first-seen order across the role table.
func AllNavPaths() []string {
	seen := make(map[string]bool)
	var paths []string
	for _, role := range AllRoles() {
		for _, p := range rolePaths[role] {
			if !seen[p] {
				seen[p] = true
				paths = append(paths, p)
			}
		}
	}
	return paths
}

// labelForPath looks up the display label, deriving a humanized one from the
// path segment when no explicit label exists.
func labelForPath(path string) string {
	if label, ok := pathLabels[path]; ok {
		return label
	}
	return strings.ReplaceAll(strings.TrimPrefix(path, "/"), "-", " ")
}
