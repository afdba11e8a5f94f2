package handler

import (
	"net/http"
	"time"

	"github.com/vfg2006/content-pulse-api/internal/domain"
	"github.com/vfg2006/content-pulse-api/pkg/middleware"
	"github.com/vfg2006/content-pulse-api/pkg/utils"
)

const defaultPeriodPreset = domain.PeriodPreset30d

// requesterFromContext extrai a identidade do solicitante das claims injetadas
// pelo middleware de autenticação
func requesterFromContext(r *http.Request) (string, bool) {
	claims, ok := r.Context().Value(middleware.ContextKeyUser).(*domain.Claims)
	if !ok || claims.UserID == "" {
		return "", false
	}
	return claims.UserID, true
}

// resolvePeriodFromQuery interpreta os parâmetros period/start_date/end_date
func resolvePeriodFromQuery(r *http.Request) (*domain.PeriodWindow, error) {
	preset := r.URL.Query().Get("period")
	if preset == "" {
		preset = defaultPeriodPreset
	}

	startDate, err := utils.ParseOptionalDate(r.URL.Query().Get("start_date"))
	if err != nil {
		return nil, domain.ErrInvalidPeriod
	}

	endDate, err := utils.ParseOptionalDate(r.URL.Query().Get("end_date"))
	if err != nil {
		return nil, domain.ErrInvalidPeriod
	}

	return domain.ResolvePeriodWindow(preset, startDate, endDate, time.Now())
}
