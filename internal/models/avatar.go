package models

import "net/url"

// AvatarURL derives a display image URL for the given name using the
// ui-avatars.com service. Derived, not user-supplied, so it is safe to store
// on the record and expose through the session view.
func AvatarURL(name string) string {
	return "https://ui-avatars.com/api/?name=" + url.QueryEscape(name) +
		"&background=3B82F6&color=fff&size=128"
}
