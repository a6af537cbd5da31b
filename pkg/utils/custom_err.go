package utils

import "errors"

var (
	ErrInvalidInput           = errors.New("invalid input")
	ErrItineraryGeneration    = errors.New("itinerary generation failed")
	ErrUnexpectedBehaviorOfAI = errors.New("unexpected AI response")
	ErrDestinationNotFound    = errors.New("destination could not be located")
)
