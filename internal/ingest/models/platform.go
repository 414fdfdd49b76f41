package models

import "strings"

// Platform is a target social network for post synthesis.
type Platform string

const (
	Twitter   Platform = "twitter"
	LinkedIn  Platform = "linkedin"
	Instagram Platform = "instagram"
)

func ParsePlatform(s string) (Platform, error) {
	switch Platform(strings.ToLower(strings.TrimSpace(s))) {
	case Twitter:
		return Twitter, nil
	case LinkedIn:
		return LinkedIn, nil
	case Instagram:
		return Instagram, nil
	default:
		return "", ErrUnsupportedPlatform
	}
}
