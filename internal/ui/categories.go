package ui

// Category is one section of the configuration editor
type Category struct {
	ID          string
	Name        string
	Description string
}

var Categories = []Category{
	{ID: "source", Name: "Source", Description: "Host, organization, repository and branch of the examples"},
	{ID: "network", Name: "Network", Description: "Timeouts, retries and user agent"},
	{ID: "install", Name: "Install", Description: "Dependency installation"},
	{ID: "git", Name: "Git", Description: "Repository initialization and first commit"},
	{ID: "cache", Name: "Cache", Description: "Example catalog cache"},
	{ID: "logging", Name: "Logging", Description: "Log level and format"},
}

func GetCategoryByID(id string) *Category {
	for i := range Categories {
		if Categories[i].ID == id {
			return &Categories[i]
		}
	}
	return nil
}

func GetCategoryNames() []string {
	names := make([]string, len(Categories))
	for i, c := range Categories {
		names[i] = c.Name
	}
	return names
}
