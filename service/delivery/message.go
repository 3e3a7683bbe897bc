package delivery

import "strings"

const (
	defaultSalutation = "there"
	namePlaceholder   = "{{name}}"
)

// RenderMessage builds "Hi {name}, {template}", placeholders {{name}} inside the template get the same name
func RenderMessage(name string, template string) string {
	name = strings.TrimSpace(name)
	if name == "" {
		name = defaultSalutation
	}
	return "Hi " + name + ", " + strings.ReplaceAll(template, namePlaceholder, name)
}
