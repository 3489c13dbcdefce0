package toolschema

import (
	"strings"
	"unicode"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"
)

// NameStyle selects how exported tool names are cased.
type NameStyle string

// Supported name styles.
const (
	// NameVerbatim keeps the descriptor ID as-is, apart from sanitization.
	NameVerbatim NameStyle = "verbatim"
	// NamePascal produces PascalCase: "get_user" -> "GetUser".
	NamePascal NameStyle = "pascal"
	// NameCamel produces camelCase: "get_user" -> "getUser".
	NameCamel NameStyle = "camel"
	// NameSnake produces snake_case: "GetUser" -> "get_user".
	NameSnake NameStyle = "snake"
	// NameKebab produces kebab-case: "GetUser" -> "get-user".
	NameKebab NameStyle = "kebab"
)

// FormatName sanitizes name to the provider-safe character set
// [A-Za-z0-9_-] and applies the requested casing style.
func FormatName(name string, style NameStyle) string {
	name = sanitizeName(name)
	switch style {
	case NamePascal:
		return toPascalCase(name)
	case NameCamel:
		return toCamelCase(name)
	case NameSnake:
		return toSnakeCase(name)
	case NameKebab:
		return toKebabCase(name)
	default:
		return name
	}
}

// sanitizeName replaces characters outside [A-Za-z0-9_-] with underscores
// and collapses the resulting runs.
func sanitizeName(name string) string {
	var result strings.Builder
	result.Grow(len(name))
	for _, r := range name {
		switch {
		case r >= 'a' && r <= 'z', r >= 'A' && r <= 'Z', r >= '0' && r <= '9', r == '_', r == '-':
			result.WriteRune(r)
		default:
			result.WriteRune('_')
		}
	}
	name = result.String()
	for strings.Contains(name, "__") {
		name = strings.ReplaceAll(name, "__", "_")
	}
	return strings.Trim(name, "_")
}

// toPascalCase converts a string to PascalCase.
// Separators (underscore, hyphen, dot, slash) trigger capitalization of the next letter.
// Example: "user_profile" -> "UserProfile"
// Example: "api-client" -> "ApiClient"
func toPascalCase(s string) string {
	if s == "" {
		return ""
	}

	// Use golang.org/x/text/cases for proper Unicode title casing
	titleCaser := cases.Title(language.English, cases.NoLower)

	var result strings.Builder
	result.Grow(len(s))

	capitalizeNext := true

	for _, r := range s {
		if r == '_' || r == '-' || r == '.' || r == '/' || r == ' ' {
			capitalizeNext = true
			continue
		}
		if capitalizeNext {
			result.WriteString(titleCaser.String(string(r)))
			capitalizeNext = false
		} else {
			result.WriteRune(r)
		}
	}

	return result.String()
}

// toCamelCase converts a string to camelCase.
// Like PascalCase but with the first letter lowercase.
// Example: "user_profile" -> "userProfile"
func toCamelCase(s string) string {
	pascal := toPascalCase(s)
	if pascal == "" {
		return ""
	}
	runes := []rune(pascal)
	runes[0] = unicode.ToLower(runes[0])
	return string(runes)
}

// toSnakeCase converts a string to snake_case.
// Uppercase letters are prefixed with underscore and lowercased.
// Existing separators (hyphen, dot, slash) are converted to underscores.
// Example: "UserProfile" -> "user_profile"
func toSnakeCase(s string) string {
	if s == "" {
		return ""
	}

	var result strings.Builder
	for i, r := range s {
		if unicode.IsUpper(r) {
			if i > 0 && s[i-1] != '_' && s[i-1] != '-' {
				result.WriteRune('_')
			}
			result.WriteRune(unicode.ToLower(r))
		} else if r == '-' || r == '.' || r == '/' {
			result.WriteRune('_')
		} else {
			result.WriteRune(r)
		}
	}

	return result.String()
}

// toKebabCase converts a string to kebab-case.
// Like snake_case but with hyphens instead of underscores.
// Example: "UserProfile" -> "user-profile"
func toKebabCase(s string) string {
	return strings.ReplaceAll(toSnakeCase(s), "_", "-")
}
