package handler

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/julienschmidt/httprouter"
	"github.com/melsayed/sales-analyst-api/internal/domain"
	"github.com/melsayed/sales-analyst-api/internal/usecases/answering"
	"github.com/melsayed/sales-analyst-api/pkg/apiErrors"
	"github.com/melsayed/sales-analyst-api/pkg/log"
)

// Ask answers one natural-language sales question.
func Ask(service answering.AnsweringService) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		logger := log.ForContext(r.Context())

		var req domain.AskRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			apiErrors.WriteError(w, apiErrors.ErrInvalidRequest, "request body must be JSON with a question field", nil)
			return
		}

		answer, err := service.Ask(r.Context(), req)
		if err != nil {
			logger.WithFields(log.Fields{
				"question": req.Question,
				"error":    err.Error(),
			}).Warn("ask: question failed")

			writeAskError(w, err)
			return
		}

		logger.WithFields(log.Fields{
			"answer_id":   answer.ID,
			"intent":      answer.Intent,
			"duration_ms": answer.DurationMs,
		}).Info("ask: question answered")

		respondJSON(w, answer)
	})
}

// writeAskError maps answering failures onto the API error codes.
func writeAskError(w http.ResponseWriter, err error) {
	switch {
	case errors.Is(err, answering.ErrEmptyQuestion):
		apiErrors.WriteError(w, apiErrors.ErrEmptyQuestion, "question text is required", nil)

	case errors.Is(err, answering.ErrUnsafeSQL):
		apiErrors.WriteError(w, apiErrors.ErrQueryRejected, "the generated query was rejected by the safety guard", nil)

	case errors.Is(err, answering.ErrGeneration):
		apiErrors.WriteError(w, apiErrors.ErrQueryGeneration, "generating a query for the question failed", nil)

	case errors.Is(err, answering.ErrExecution):
		apiErrors.WriteError(w, apiErrors.ErrQueryExecution, "the generated query failed against the database", nil)

	case errors.Is(err, answering.ErrIntegratorDisabled):
		apiErrors.WriteError(w, apiErrors.ErrExternalService, "free-form questions need the language model integration enabled", nil)

	default:
		apiErrors.WriteError(w, apiErrors.ErrDatabaseOperation, "answering the question failed", nil)
	}
}

// GetAnswer returns a previously saved answer by its identifier.
func GetAnswer(service answering.AnsweringService) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		logger := log.ForContext(r.Context())

		id := httprouter.ParamsFromContext(r.Context()).ByName("id")

		answer, err := service.GetAnswer(id)
		if err != nil {
			logger.WithFields(log.Fields{
				"answer_id": id,
				"error":     err.Error(),
			}).Error("answers: failed to load answer")

			apiErrors.WriteError(w, apiErrors.ErrDatabaseOperation, "loading the answer failed", nil)
			return
		}

		if answer == nil {
			apiErrors.WriteError(w, apiErrors.ErrUnknownEntity, "no answer with that id", nil)
			return
		}

		respondJSON(w, answer)
	})
}

// ListAnswers returns the most recent answers, newest first.
func ListAnswers(service answering.AnsweringService) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		logger := log.ForContext(r.Context())

		limit, err := uintParam(r, "limit", 0)
		if err != nil {
			apiErrors.WriteError(w, apiErrors.ErrInvalidFormat, err.Error(), nil)
			return
		}

		answers, err := service.RecentAnswers(limit)
		if err != nil {
			logger.WithError(err).Error("answers: failed to list answers")
			apiErrors.WriteError(w, apiErrors.ErrDatabaseOperation, "listing answers failed", nil)
			return
		}

		respondJSON(w, answers)
	})
}
