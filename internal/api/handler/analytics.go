package handler

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/vfg2006/content-pulse-api/internal/domain"
	"github.com/vfg2006/content-pulse-api/internal/usecases/analyzing"
	"github.com/vfg2006/content-pulse-api/pkg/apiErrors"
	"github.com/vfg2006/content-pulse-api/pkg/log"
)

func GetAnalytics(service analyzing.Analyzer) http.Handler {
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
			}).Warn("analytics: invalid period parameters")

			apiErrors.WriteError(w, apiErrors.ErrInvalidPeriod, err.Error(), nil)
			return
		}

		sortColumn, err := domain.ParseSortColumn(r.URL.Query().Get("sort_by"))
		if err != nil {
			logger.WithFields(log.Fields{
				"requester": requester,
				"sort_by":   r.URL.Query().Get("sort_by"),
			}).Warn("analytics: invalid sort_by parameter")

			apiErrors.WriteError(w, apiErrors.ErrInvalidRequest, err.Error(), nil)
			return
		}

		sortDirection, err := domain.ParseSortDirection(r.URL.Query().Get("sort_direction"))
		if err != nil {
			logger.WithFields(log.Fields{
				"requester":      requester,
				"sort_direction": r.URL.Query().Get("sort_direction"),
			}).Warn("analytics: invalid sort_direction parameter")

			apiErrors.WriteError(w, apiErrors.ErrInvalidRequest, err.Error(), nil)
			return
		}

		filters := &domain.AnalyticsFilters{
			Period:        period,
			Context:       domain.ParseContextFilter(r.URL.Query().Get("context")),
			SortColumn:    sortColumn,
			SortDirection: sortDirection,
		}

		logger.WithFields(log.Fields{
			"requester": requester,
			"period":    period.Preset,
			"context":   filters.Context.String(),
		}).Info("analytics: computing performance dashboard")

		result, err := service.GetAnalytics(requester, filters)
		if err != nil {
			if errors.Is(err, domain.ErrInvalidPeriod) {
				apiErrors.WriteError(w, apiErrors.ErrInvalidPeriod, err.Error(), nil)
				return
			}

			logger.WithFields(log.Fields{
				"requester": requester,
				"period":    period.Preset,
				"error":     err.Error(),
			}).Error("analytics: failed to compute dashboard")

			apiErrors.WriteError(w, apiErrors.ErrInternalServer, "Erro ao calcular métricas", nil)
			return
		}

		logger.WithFields(log.Fields{
			"requester": requester,
			"period":    period.Preset,
			"cached":    result.Cached,
			"top_items": len(result.TopItems),
		}).Info("analytics: dashboard computed successfully")

		w.Header().Set("Content-Type", "application/json")
		if err := json.NewEncoder(w).Encode(result); err != nil {
			logger.WithFields(log.Fields{
				"requester": requester,
				"error":     err.Error(),
			}).Error("analytics: failed to encode response")

			http.Error(w, err.Error(), http.StatusInternalServerError)
		}
	})
}
