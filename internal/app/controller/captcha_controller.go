package controller

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/ikkim/localdir-backend/internal/app/service"
	apperrors "github.com/ikkim/localdir-backend/internal/errors"
)

type CaptchaController struct {
	challengeService service.ChallengeService
}

func NewCaptchaController(challengeService service.ChallengeService) *CaptchaController {
	return &CaptchaController{
		challengeService: challengeService,
	}
}

type GenerateCaptchaRequest struct {
	// SessionID ties the challenge to one open review form. Omitting it
	// starts a new session; re-sending it replaces the previous challenge.
	SessionID string `json:"session_id"`
}

// GenerateCaptcha 리뷰 작성용 챌린지 발급
// POST /api/v1/captcha
func (ctrl *CaptchaController) GenerateCaptcha(c *gin.Context) {
	var req GenerateCaptchaRequest
	if c.Request.ContentLength > 0 {
		if err := c.ShouldBindJSON(&req); err != nil {
			apperrors.BadRequest(c, apperrors.ValidationInvalidInput, "invalid captcha payload")
			return
		}
	}

	challenge := ctrl.challengeService.Issue(req.SessionID)

	c.JSON(http.StatusOK, challenge)
}
