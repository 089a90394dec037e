package handler

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog/log"

	"bookshare-backend/internal/domains/recommendation/model"
	"bookshare-backend/internal/domains/recommendation/service"
	"bookshare-backend/internal/shared/response"
)

type RecommendationHandler struct {
	service service.ServiceInterface
}

func NewRecommendationHandler(svc service.ServiceInterface) *RecommendationHandler {
	return &RecommendationHandler{service: svc}
}

// GetRecommendations godoc
// GET /api/recommendations?userId=
//
// Body là RecommendationResponse trần (không bọc envelope) để giữ contract cũ.
func (h *RecommendationHandler) GetRecommendations(c *gin.Context) {
	userID := c.Query("userId")
	if userID == "" {
		response.Plain(c, http.StatusBadRequest, model.MsgUserIDRequired)
		return
	}

	result, err := h.service.GetRecommendations(c.Request.Context(), userID)
	if err != nil {
		if errors.Is(err, model.ErrUserIDRequired) {
			response.Plain(c, http.StatusBadRequest, model.MsgUserIDRequired)
			return
		}
		log.Error().Err(err).Str("user_id", userID).Msg("Recommendation pipeline failed")
		response.Plain(c, http.StatusInternalServerError, model.MsgRecommendationFailed)
		return
	}

	c.JSON(http.StatusOK, result)
}
