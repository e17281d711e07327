package services

import (
	"context"
	"encoding/json"
	"fmt"
	"regexp"

	"github.com/kaxixi6666/foodflow/backend/internal/models"
	"github.com/kaxixi6666/foodflow/backend/internal/repositories"
	"github.com/sirupsen/logrus"
)

// Recognition scenarios steer the image prompt
const (
	ScenarioReceipt = "receipt"
	ScenarioFridge  = "fridge"
)

const ingredientSchema = `Reply with ONLY a JSON array, no markdown, no explanations. ` +
	`Each element: {"name": string, "category": string, "quantity": string, "unit": string}. ` +
	`Use an empty string for anything you cannot determine. Reply with [] if no food items are present.`

// VisionClient is the model dependency of RecognitionService
type VisionClient interface {
	Complete(ctx context.Context, prompt string) (string, error)
	DescribeImage(ctx context.Context, prompt string, image []byte, format string) (string, error)
}

// jsonArray pulls the first JSON array out of a model reply that may be
// wrapped in markdown fences or prose.
var jsonArray = regexp.MustCompile(`(?s)\[.*\]`)

// RecognitionService extracts structured ingredients from free text, image
// descriptions, and raw images via a vision model, and keeps a per-user
// history of results in MongoDB.
type RecognitionService struct {
	vision  VisionClient
	history repositories.RecognitionRepository
}

// NewRecognitionService creates a new RecognitionService
func NewRecognitionService(vision VisionClient, history repositories.RecognitionRepository) *RecognitionService {
	return &RecognitionService{vision: vision, history: history}
}

// RecognizeText extracts ingredients from free-form text
func (s *RecognitionService) RecognizeText(ctx context.Context, userID uint, text string) ([]models.RecognizedIngredient, error) {
	prompt := fmt.Sprintf("Extract all food ingredients from the following text. %s\n\nText: %s", ingredientSchema, text)
	reply, err := s.vision.Complete(ctx, prompt)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrRecognitionUpstream, err)
	}
	ingredients, err := parseIngredients(reply)
	if err != nil {
		return nil, err
	}
	s.record(ctx, &models.RecognitionRecord{
		UserID:      userID,
		Source:      models.RecognitionSourceText,
		Input:       text,
		Ingredients: ingredients,
	})
	return ingredients, nil
}

// RecognizeDescription extracts ingredients from a textual description of
// an image, for clients that run their own captioning.
func (s *RecognitionService) RecognizeDescription(ctx context.Context, userID uint, description string) ([]models.RecognizedIngredient, error) {
	prompt := fmt.Sprintf("The following describes a photo of food items. List the ingredients it mentions. %s\n\nDescription: %s", ingredientSchema, description)
	reply, err := s.vision.Complete(ctx, prompt)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrRecognitionUpstream, err)
	}
	ingredients, err := parseIngredients(reply)
	if err != nil {
		return nil, err
	}
	s.record(ctx, &models.RecognitionRecord{
		UserID:      userID,
		Source:      models.RecognitionSourceDescription,
		Input:       description,
		Ingredients: ingredients,
	})
	return ingredients, nil
}

// RecognizeImage extracts ingredients from a photo. scenario selects the
// prompt: receipt for shopping receipts, fridge (the default) for photos of
// food.
func (s *RecognitionService) RecognizeImage(ctx context.Context, userID uint, image []byte, format, scenario string) ([]models.RecognizedIngredient, error) {
	var prompt string
	switch scenario {
	case ScenarioReceipt:
		prompt = fmt.Sprintf("This is a shopping receipt. List every food item on it with its quantity. %s", ingredientSchema)
	default:
		scenario = ScenarioFridge
		prompt = fmt.Sprintf("Identify every food ingredient visible in this photo. %s", ingredientSchema)
	}

	reply, err := s.vision.DescribeImage(ctx, prompt, image, format)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrRecognitionUpstream, err)
	}
	ingredients, err := parseIngredients(reply)
	if err != nil {
		return nil, err
	}
	s.record(ctx, &models.RecognitionRecord{
		UserID:      userID,
		Source:      models.RecognitionSourceImage,
		Scenario:    scenario,
		Input:       fmt.Sprintf("image/%s (%d bytes)", format, len(image)),
		Ingredients: ingredients,
	})
	return ingredients, nil
}

// History returns the user's most recent recognition results
func (s *RecognitionService) History(ctx context.Context, userID uint, limit int64) ([]models.RecognitionRecord, error) {
	if limit <= 0 || limit > 100 {
		limit = 20
	}
	return s.history.GetByUserID(ctx, userID, limit)
}

// record stores a history entry best-effort; a Mongo failure never fails
// the recognition call that produced the result.
func (s *RecognitionService) record(ctx context.Context, rec *models.RecognitionRecord) {
	if err := s.history.Insert(ctx, rec); err != nil {
		logrus.WithError(err).WithField("userId", rec.UserID).Warn("recognition history not saved")
	}
}

func parseIngredients(reply string) ([]models.RecognizedIngredient, error) {
	raw := jsonArray.FindString(reply)
	if raw == "" {
		return nil, fmt.Errorf("no JSON array in model reply")
	}
	var ingredients []models.RecognizedIngredient
	if err := json.Unmarshal([]byte(raw), &ingredients); err != nil {
		return nil, fmt.Errorf("parse model reply: %w", err)
	}
	if ingredients == nil {
		ingredients = []models.RecognizedIngredient{}
	}
	return ingredients, nil
}
