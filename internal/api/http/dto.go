package httpapi

import (
	"time"

	"github.com/i474232898/tempcheck/internal/session"
	"github.com/i474232898/tempcheck/internal/temperature"
)

// convertQuery holds query parameters for the stateless conversion endpoint.
// Both fields are free-form text as typed by the user.
type convertQuery struct {
	Value string `validate:"required,max=64"`
	Unit  string `validate:"required,max=16"`
}

func (q convertQuery) toInput() (temperature.Input, error) {
	v, err := temperature.ParseValue(q.Value)
	if err != nil {
		return temperature.Input{}, err
	}
	u, err := temperature.ParseUnit(q.Unit)
	if err != nil {
		return temperature.Input{}, err
	}
	return temperature.Input{Value: v, Unit: u}, nil
}

// changeRequest is the body of screen create and update calls.
// An update must set at least one field.
type changeRequest struct {
	Value *string `json:"value" validate:"required_without=Unit"`
	Unit  *string `json:"unit" validate:"required_without=Value"`
}

func (r changeRequest) toChange() (session.Change, error) {
	var ch session.Change
	if r.Value != nil {
		v, err := temperature.ParseValue(*r.Value)
		if err != nil {
			return ch, err
		}
		ch.Value = &v
	}
	if r.Unit != nil {
		u, err := temperature.ParseUnit(*r.Unit)
		if err != nil {
			return ch, err
		}
		ch.Unit = &u
	}
	return ch, nil
}

type unitResponse struct {
	Unit   temperature.Unit `json:"unit"`
	Name   string           `json:"name"`
	Symbol string           `json:"symbol"`
}

type inputResponse struct {
	Value   float64          `json:"value"`
	Unit    temperature.Unit `json:"unit"`
	Display string           `json:"display"`
}

type readingResponse struct {
	Unit    temperature.Unit `json:"unit"`
	Label   string           `json:"label"`
	Value   float64          `json:"value"`
	Display string           `json:"display"`
}

type conversionResponse struct {
	Input    inputResponse      `json:"input"`
	Result   temperature.Result `json:"result"`
	Readings []readingResponse  `json:"readings"`
}

type screenResponse struct {
	ID        string    `json:"id"`
	UpdatedAt time.Time `json:"updatedAt"`
	conversionResponse
}

func newConversionResponse(in temperature.Input, result temperature.Result) conversionResponse {
	readings := result.Readings()
	out := conversionResponse{
		Input: inputResponse{
			Value:   in.Value,
			Unit:    in.Unit,
			Display: in.String(),
		},
		Result:   result,
		Readings: make([]readingResponse, 0, len(readings)),
	}
	for _, r := range readings {
		out.Readings = append(out.Readings, readingResponse{
			Unit:    r.Unit,
			Label:   r.Label(),
			Value:   r.Value,
			Display: r.String(),
		})
	}
	return out
}

func newScreenResponse(view session.View) screenResponse {
	return screenResponse{
		ID:                 view.ID,
		UpdatedAt:          view.UpdatedAt,
		conversionResponse: newConversionResponse(view.State.Input(), view.Result),
	}
}
