package capability

import "strings"

// splitTemplate breaks a URI template around its single {placeholder}.
// Returns ok=false when the template has no placeholder or more than one.
func splitTemplate(template string) (prefix, suffix string, ok bool) {
	open := strings.Index(template, "{")
	if open < 0 {
		return "", "", false
	}
	end := strings.Index(template[open:], "}")
	if end < 0 {
		return "", "", false
	}
	prefix = template[:open]
	suffix = template[open+end+1:]
	if strings.ContainsAny(suffix, "{}") {
		return "", "", false
	}
	return prefix, suffix, true
}

// matchTemplate extracts the placeholder value from uri when it matches the
// template's fixed prefix and suffix. The value must be non-empty.
func matchTemplate(template, uri string) (string, bool) {
	prefix, suffix, ok := splitTemplate(template)
	if !ok {
		return "", false
	}
	if !strings.HasPrefix(uri, prefix) || !strings.HasSuffix(uri, suffix) {
		return "", false
	}
	value := uri[len(prefix) : len(uri)-len(suffix)]
	if value == "" || strings.Contains(value, "/") {
		return "", false
	}
	return value, true
}
