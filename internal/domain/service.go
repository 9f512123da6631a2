package domain

import "context"

// ServiceIcon is the closed set of icons the site renders for a service.
// Unknown slugs fall back to IconDefault instead of failing at render time.
type ServiceIcon string

const (
	IconCode     ServiceIcon = "code"
	IconDatabase ServiceIcon = "database"
	IconPalette  ServiceIcon = "palette"
	IconRocket   ServiceIcon = "rocket"
	IconSettings ServiceIcon = "settings"
	IconUsers    ServiceIcon = "users"
	IconDefault  ServiceIcon = "sparkles"
)

var serviceIcons = map[string]ServiceIcon{
	"developpement-frontend":  IconCode,
	"developpement-backend":   IconDatabase,
	"ui-ux-design":            IconPalette,
	"developpement-fullstack": IconRocket,
	"conseil-technique":       IconSettings,
	"formation-mentoring":     IconUsers,
}

// IconForSlug maps a service slug to its icon.
func IconForSlug(slug string) ServiceIcon {
	if icon, ok := serviceIcons[slug]; ok {
		return icon
	}
	return IconDefault
}

// Service is a row from the services collection, icon resolved at decode time.
type Service struct {
	ID          string      `json:"id"`
	Title       string      `json:"title"`
	Slug        *string     `json:"slug"`
	Description string      `json:"description"`
	Icon        ServiceIcon `json:"icon"`
}

type ServiceRepository interface {
	Fetch(ctx context.Context) ([]Service, error)
}

type ServiceUsecase interface {
	List(ctx context.Context) ([]Service, error)
}
