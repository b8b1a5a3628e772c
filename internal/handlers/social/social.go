package social

import (
	"context"
	"net/http"

	"github.com/GlebRadaev/goinvest/pkg/utils"
)

//go:generate mockgen -source=social.go -destination=mock_social.go -package=social

type Service interface {
	Public(ctx context.Context) (map[string]string, error)
}

type SocialHandler struct {
	service Service
}

func New(service Service) *SocialHandler {
	return &SocialHandler{
		service: service,
	}
}

// Public godoc
//
//	@Summary		Public social links
//	@Description	Active links keyed by platform, for the site footer
//	@Tags			Social
//	@Produce		json
//	@Success		200	{object}	map[string]string
//	@Failure		500	{object}	utils.Response	"Internal server error"
//	@Router			/api/social-links [get]
func (h *SocialHandler) Public(w http.ResponseWriter, r *http.Request) {
	links, err := h.service.Public(r.Context())
	if err != nil {
		utils.RespondWithError(w, http.StatusInternalServerError, "Internal server error")
		return
	}
	utils.RespondWithJSON(w, http.StatusOK, links)
}
