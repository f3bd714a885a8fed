package domain

import "strings"

// ImageDataURL normalizes a stored image value for rendering. The backend may
// return either a full data URL or a bare base64 string; the bare form gets
// the generic image prefix. Empty input stays empty so templates can show the
// no-image placeholder.
func ImageDataURL(image string) string {
	if image == "" {
		return ""
	}
	if strings.HasPrefix(image, "data:") {
		return image
	}
	return "data:image/*;base64," + image
}
