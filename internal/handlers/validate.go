package handlers

import (
	"fmt"
	"strings"
	"unicode/utf8"

	"storyhub/internal/models"
)

const (
	maxUsernameLen = 50
	maxPasswordLen = 100
)

// validateStory checks a story payload and returns the first problem as a
// user-facing message, or "" when the payload is acceptable.
func validateStory(category models.Category, slides []models.Slide) string {
	if !category.Valid() {
		return "Category must be one of Food, Health and Fitness, Travel, Movie, or Education."
	}
	if len(slides) < models.MinSlides || len(slides) > models.MaxSlides {
		return fmt.Sprintf("A story must have between %d and %d slides.", models.MinSlides, models.MaxSlides)
	}
	for i, slide := range slides {
		if strings.TrimSpace(slide.Heading) == "" {
			return fmt.Sprintf("Slide %d is missing a heading.", i+1)
		}
		if strings.TrimSpace(slide.Description) == "" {
			return fmt.Sprintf("Slide %d is missing a description.", i+1)
		}
		if strings.TrimSpace(slide.MediaURL) == "" {
			return fmt.Sprintf("Slide %d is missing a media URL.", i+1)
		}
	}
	return ""
}

// validateCredentials checks a register/login payload.
func validateCredentials(username, password string) string {
	if strings.TrimSpace(username) == "" || password == "" {
		return "Username and password are required."
	}
	if utf8.RuneCountInString(username) > maxUsernameLen {
		return fmt.Sprintf("Username must be at most %d characters.", maxUsernameLen)
	}
	if utf8.RuneCountInString(password) > maxPasswordLen {
		return fmt.Sprintf("Password must be at most %d characters.", maxPasswordLen)
	}
	return ""
}
