package handler

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/vfg2006/content-pulse-api/internal/domain"
	"github.com/vfg2006/content-pulse-api/internal/usecases/insighting"
	"github.com/vfg2006/content-pulse-api/pkg/apiErrors"
	"github.com/vfg2006/content-pulse-api/pkg/log"
)

func GetInsights(service insighting.Insighter) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		logger := log.ForContext(r.Context())

		requester, ok := requesterFromContext(r)
		if !ok {
			apiErrors.WriteError(w, apiErrors.ErrInvalidToken, "Credenciais ausentes ou inválidas", nil)
			return
		}

		period, err := resolvePeriodFromQuery(r)
		if err != nil {
			logger.WithFields(log.Fields{
				"requester": requester,
				"period":    r.URL.Query().Get("period"),
				"error":     err.Error(),
			}).Warn("insights: invalid period parameters")

			apiErrors.WriteError(w, apiErrors.ErrInvalidPeriod, err.Error(), nil)
			return
		}

		filters := &domain.InsightFilters{
			Period:  period,
			Context: domain.ParseContextFilter(r.URL.Query().Get("context")),
		}

		logger.WithFields(log.Fields{
			"requester": requester,
			"period":    period.Preset,
			"context":   filters.Context.String(),
		}).Info("insights: building curated insight feed")

		response, err := service.GetInsights(requester, filters)
		if err != nil {
			if errors.Is(err, domain.ErrInvalidPeriod) {
				apiErrors.WriteError(w, apiErrors.ErrInvalidPeriod, err.Error(), nil)
				return
			}

			logger.WithFields(log.Fields{
				"requester": requester,
				"period":    period.Preset,
				"error":     err.Error(),
			}).Error("insights: failed to build insight feed")

			apiErrors.WriteError(w, apiErrors.ErrInternalServer, "Erro ao gerar insights", nil)
			return
		}

		logger.WithFields(log.Fields{
			"requester": requester,
			"period":    period.Preset,
			"cached":    response.Cached,
			"insights":  len(response.Insights),
		}).Info("insights: feed built successfully")

		w.Header().Set("Content-Type", "application/json")
		if err := json.NewEncoder(w).Encode(response); err != nil {
			logger.WithFields(log.Fields{
				"requester": requester,
				"error":     err.Error(),
			}).Error("insights: failed to encode response")

			http.Error(w, err.Error(), http.StatusInternalServerError)
		}
	})
}
