package services

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"
	"time"

	"go.uber.org/zap"

	"familytravel/internal/models/request_models"
	"familytravel/internal/models/response_models"
	"familytravel/pkg/utils"
)

type ItineraryServiceInterface interface {
	GenerateItinerary(ctx context.Context, req request_models.PlanRequest) (*response_models.Itinerary, error)
}

type ItineraryService struct {
	client     utils.ItineraryClientInterface
	llmTimeout time.Duration
	logger     *zap.Logger
}

func NewItineraryService(client utils.ItineraryClientInterface, llmTimeout time.Duration, logger *zap.Logger) ItineraryServiceInterface {
	return &ItineraryService{
		client:     client,
		llmTimeout: llmTimeout,
		logger:     logger,
	}
}

// aiPlan mirrors the JSON structure the prompt asks for.
type aiPlan struct {
	Days []aiDay `json:"days"`
}

type aiDay struct {
	Day        int          `json:"day"`
	Activities []aiActivity `json:"activities"`
}

type aiActivity struct {
	Name        string `json:"name"`
	Description string `json:"description"`
	Duration    string `json:"duration"`
	Location    string `json:"location"`
}

// GenerateItinerary asks the model for a structured day-by-day plan. Model
// output is untrusted: it is cleaned, parsed and schema-checked, and a
// malformed response earns exactly one retry with a stricter JSON-only
// instruction before the whole call fails.
func (s *ItineraryService) GenerateItinerary(ctx context.Context, req request_models.PlanRequest) (*response_models.Itinerary, error) {
	ages := req.ChallengeAges()
	prompt := buildItineraryPrompt(req.Destination, req.Days, ages)

	plan, err := s.generateAndParse(ctx, prompt)
	if err != nil {
		s.logger.Warn("itinerary response unusable, retrying with strict prompt", zap.Error(err))
		plan, err = s.generateAndParse(ctx, prompt+strictRetrySuffix)
		if err != nil {
			s.logger.Error("itinerary generation failed after retry", zap.Error(err))
			return nil, utils.ErrItineraryGeneration
		}
	}

	itinerary := s.flattenPlan(plan, req.Days)

	if len(ages) > 0 {
		s.addChallenges(ctx, itinerary, ages)
	}

	return itinerary, nil
}

func (s *ItineraryService) generateAndParse(ctx context.Context, prompt string) (*aiPlan, error) {
	callCtx, cancel := context.WithTimeout(ctx, s.llmTimeout)
	defer cancel()

	raw, err := s.client.GenerateItineraryJSON(callCtx, prompt)
	if err != nil {
		return nil, err
	}

	return parsePlan(raw)
}

// parsePlan validates that the response is the complete shape the enrichment
// stage expects; a plan with an untitled or unlocated activity is rejected so
// that no partially-typed activity travels further down the pipeline.
func parsePlan(raw string) (*aiPlan, error) {
	cleaned := utils.CleanJSONResponse(raw)

	var plan aiPlan
	if err := json.Unmarshal([]byte(cleaned), &plan); err != nil {
		return nil, fmt.Errorf("plan JSON invalid: %w", err)
	}

	if len(plan.Days) == 0 {
		return nil, fmt.Errorf("plan contains no days")
	}
	for _, day := range plan.Days {
		if len(day.Activities) == 0 {
			return nil, fmt.Errorf("day %d has no activities", day.Day)
		}
		for i, act := range day.Activities {
			if strings.TrimSpace(act.Name) == "" {
				return nil, fmt.Errorf("day %d activity %d has no name", day.Day, i+1)
			}
			if strings.TrimSpace(act.Location) == "" {
				return nil, fmt.Errorf("day %d activity %d has no location", day.Day, i+1)
			}
		}
	}

	return &plan, nil
}

// flattenPlan converts the parsed response into the ordered activity list.
// Day indices outside [1, requestedDays] come from generation defects and are
// clamped into range rather than dropped; a day-count mismatch is surfaced as
// a warning instead of silently padding or truncating.
func (s *ItineraryService) flattenPlan(plan *aiPlan, requestedDays int) *response_models.Itinerary {
	itinerary := &response_models.Itinerary{}
	distinctDays := make(map[int]bool)

	for _, day := range plan.Days {
		distinctDays[day.Day] = true

		clamped := day.Day
		if clamped < 1 {
			clamped = 1
		}
		if clamped > requestedDays {
			clamped = requestedDays
		}
		if clamped != day.Day {
			s.logger.Warn("clamped out-of-range day index",
				zap.Int("got", day.Day), zap.Int("requested_days", requestedDays))
		}

		for _, act := range day.Activities {
			itinerary.Activities = append(itinerary.Activities, response_models.Activity{
				Day:         clamped,
				Title:       strings.TrimSpace(act.Name),
				Description: strings.TrimSpace(act.Description),
				Duration:    strings.TrimSpace(act.Duration),
				Location:    strings.TrimSpace(act.Location),
			})
		}
	}

	if len(distinctDays) != requestedDays {
		itinerary.Warnings = append(itinerary.Warnings,
			fmt.Sprintf("itinerary covers %d day(s), %d requested", len(distinctDays), requestedDays))
	}

	return itinerary
}

// addChallenges makes one independent AI call per activity. A failed call
// leaves that activity without a challenge; it never fails the itinerary.
func (s *ItineraryService) addChallenges(ctx context.Context, itinerary *response_models.Itinerary, ages []int) {
	agesPhrase := agesToPhrase(ages)

	for i := range itinerary.Activities {
		act := &itinerary.Activities[i]

		callCtx, cancel := context.WithTimeout(ctx, s.llmTimeout)
		challenge, err := s.client.GenerateShortText(callCtx, buildChallengePrompt(act.Title, act.Location, agesPhrase))
		cancel()

		if err != nil {
			s.logger.Warn("challenge generation failed",
				zap.String("activity", act.Title), zap.Error(err))
			continue
		}
		act.Challenge = strings.TrimSpace(challenge)
	}
}

const strictRetrySuffix = "\n\nYour previous response could not be parsed. " +
	"Return structured output ONLY: a single valid JSON object matching the schema above, " +
	"with no markdown fences, no comments and no text before or after the JSON."

func buildItineraryPrompt(destination string, days int, ages []int) string {
	var b strings.Builder

	fmt.Fprintf(&b, "Create a detailed %d-day travel itinerary for %s.", days, destination)
	if len(ages) > 0 {
		fmt.Fprintf(&b, " The family is traveling with %d child(ren) aged %s years old. "+
			"Suggest kid-friendly activities appropriate for these ages.", len(ages), agesToPhrase(ages))
	}

	b.WriteString(`

For each day provide 3-5 specific activities or places to visit, with a brief description of each and the approximate time to spend there.

IMPORTANT: keep the "location" field SIMPLE and SHORT so it can be geocoded:
- Format: "Landmark Name, City, Country" (3 parts only)
- Use short, commonly-known names in the local language
- No street addresses, building numbers, postal codes or formal long titles
- Good: "Sagrada Familia, Barcelona, Spain" / "Torre de Belem, Lisbon, Portugal"
- Bad: "Basilica de la Sagrada Familia, Carrer de Mallorca 401, Barcelona, Spain"

Format the response as a JSON object with this exact structure:
{
  "days": [
    {
      "day": 1,
      "activities": [
        {
          "name": "Activity or place name",
          "description": "Brief description",
          "duration": "Suggested duration",
          "location": "Landmark, City, Country"
        }
      ]
    }
  ]
}

Make sure all locations are real, specific places in `)
	b.WriteString(destination)
	b.WriteString(", and always include the city and country in each location field.\nRespond ONLY with the JSON object, no additional text.")

	return b.String()
}

func buildChallengePrompt(title, location, agesPhrase string) string {
	return fmt.Sprintf("Suggest one fun, age-appropriate challenge or scavenger-hunt task "+
		"for kids aged %s visiting %s (%s). For example 'Find 3 different types of columns' "+
		"or 'Count how many statues you can see'. Answer with one or two short sentences, no preamble.",
		agesPhrase, title, location)
}

func agesToPhrase(ages []int) string {
	parts := make([]string, 0, len(ages))
	for _, age := range ages {
		parts = append(parts, fmt.Sprintf("%d", age))
	}
	return strings.Join(parts, ", ")
}
