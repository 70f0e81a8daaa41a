package types

import (
	"encoding/json"
	"fmt"
	"strconv"
	"strings"
)

// Minutes can handle both string and number values for a duration in minutes
type Minutes float64

func (m *Minutes) UnmarshalJSON(data []byte) error {
	// Try to unmarshal as number first
	var num float64
	if err := json.Unmarshal(data, &num); err == nil {
		*m = Minutes(num)
		return nil
	}

	// Try to unmarshal as numeric string
	var str string
	if err := json.Unmarshal(data, &str); err == nil {
		str = strings.TrimSpace(str)
		if str == "" {
			*m = 0
			return nil
		}
		num, err := strconv.ParseFloat(str, 64)
		if err != nil {
			return fmt.Errorf("invalid minutes value %q", str)
		}
		*m = Minutes(num)
		return nil
	}

	return fmt.Errorf("invalid minutes format")
}

// String renders whole minutes without a trailing fraction
func (m Minutes) String() string {
	return strconv.FormatFloat(float64(m), 'f', -1, 64)
}

// RoutineRequest represents the request body for generating a micro-routine
type RoutineRequest struct {
	Objective string  `json:"objective" binding:"required"`
	Time      Minutes `json:"time" binding:"required"`
	Energy    string  `json:"energy" binding:"required"`
	Location  string  `json:"location" binding:"required"`
}

// GenericTipRequest represents the request body for a quiz follow-up tip
type GenericTipRequest struct {
	Context string `json:"context" binding:"required"`
	Result  string `json:"result" binding:"required"`
}

// RoutineSuggestion is the shape the model is asked to answer with
type RoutineSuggestion struct {
	Name        string `json:"name"`
	Description string `json:"description"`
}

// Tip is the shape the model is asked to answer with for quiz results
type Tip struct {
	Tip string `json:"tip"`
}
